package repository

import (
	"errors"

	"skillmatrix/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) FindByID(id uint) (*model.Assessment, error) {
	var a model.Assessment
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssessmentRepository) FindAll() ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := r.DB.Find(&assessments).Error
	return assessments, err
}

// FindOrCreate keeps one assessment per (component, level) pair. An existing
// row wins; pass mark and question count of an existing assessment are not
// overwritten.
func (r *AssessmentRepository) FindOrCreate(componentID uint, level, passMark, numQuestions int, createdBy *uint) (*model.Assessment, error) {
	var a model.Assessment
	err := r.DB.Where("component_id = ? AND level = ?", componentID, level).First(&a).Error
	if err == nil {
		return &a, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a = model.Assessment{
		ComponentID:        componentID,
		Level:              level,
		PassMarkPercentage: passMark,
		NumberOfQuestions:  numQuestions,
		CreatedByID:        createdBy,
	}
	if err := r.DB.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
