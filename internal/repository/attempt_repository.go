package repository

import (
	"skillmatrix/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.AssessmentAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByID(id uint) (*model.AssessmentAttempt, error) {
	var a model.AssessmentAttempt
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttemptRepository) FindByDeveloper(developerID uint) ([]model.AssessmentAttempt, error) {
	var attempts []model.AssessmentAttempt
	err := r.DB.Where("developer_id = ?", developerID).Order("started_at DESC").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) FindByStatusWithAnswers(status model.AttemptStatus) ([]model.AssessmentAttempt, error) {
	var attempts []model.AssessmentAttempt
	err := r.DB.Preload("Answers").Where("status = ?", status).Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) GetAnswers(attemptID uint) ([]model.AttemptAnswer, error) {
	var answers []model.AttemptAnswer
	err := r.DB.Where("attempt_id = ?", attemptID).Find(&answers).Error
	return answers, err
}

// FindAnswerByID is a direct indexed lookup; grading never scans attempts.
func (r *AttemptRepository) FindAnswerByID(id uint) (*model.AttemptAnswer, error) {
	var ans model.AttemptAnswer
	if err := r.DB.First(&ans, id).Error; err != nil {
		return nil, err
	}
	return &ans, nil
}
