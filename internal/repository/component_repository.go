package repository

import (
	"skillmatrix/internal/model"

	"gorm.io/gorm"
)

type ComponentRepository struct {
	DB *gorm.DB
}

func NewComponentRepository(db *gorm.DB) *ComponentRepository {
	return &ComponentRepository{DB: db}
}

func (r *ComponentRepository) FindByID(id uint) (*model.Component, error) {
	var c model.Component
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ComponentRepository) FindByProjectID(projectID uint) ([]model.Component, error) {
	var components []model.Component
	err := r.DB.Where("project_id = ?", projectID).Find(&components).Error
	return components, err
}
