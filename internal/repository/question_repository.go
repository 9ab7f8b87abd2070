package repository

import (
	"skillmatrix/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	if err := r.DB.First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *QuestionRepository) FindByComponentID(componentID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("component_id = ?", componentID).Find(&questions).Error
	return questions, err
}

// FindPool returns the cumulative question pool for an assessment: every
// question of the component whose difficulty does not exceed maxLevel.
func (r *QuestionRepository) FindPool(componentID uint, maxLevel int) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("component_id = ? AND difficulty_level <= ?", componentID, maxLevel).Find(&questions).Error
	return questions, err
}
