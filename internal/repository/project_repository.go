package repository

import (
	"skillmatrix/internal/model"

	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) FindByTeamID(teamID uint) ([]model.Project, error) {
	var projects []model.Project
	err := r.DB.Where("team_id = ?", teamID).Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) CountComponents(projectID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Component{}).Where("project_id = ?", projectID).Count(&count).Error
	return count, err
}
