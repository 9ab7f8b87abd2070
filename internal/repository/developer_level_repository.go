package repository

import (
	"skillmatrix/internal/model"

	"gorm.io/gorm"
)

type DeveloperLevelRepository struct {
	DB *gorm.DB
}

func NewDeveloperLevelRepository(db *gorm.DB) *DeveloperLevelRepository {
	return &DeveloperLevelRepository{DB: db}
}

func (r *DeveloperLevelRepository) FindByDeveloper(developerID uint) ([]model.DeveloperLevel, error) {
	var levels []model.DeveloperLevel
	err := r.DB.Where("developer_id = ?", developerID).Find(&levels).Error
	return levels, err
}

func (r *DeveloperLevelRepository) FindByDeveloperAndComponent(developerID, componentID uint) (*model.DeveloperLevel, error) {
	var dl model.DeveloperLevel
	if err := r.DB.Where("developer_id = ? AND component_id = ?", developerID, componentID).First(&dl).Error; err != nil {
		return nil, err
	}
	return &dl, nil
}
