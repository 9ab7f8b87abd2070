package repository

import (
	"skillmatrix/internal/model"

	"gorm.io/gorm"
)

type TeamRepository struct {
	DB *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) FindAll() ([]model.Team, error) {
	var teams []model.Team
	err := r.DB.Find(&teams).Error
	return teams, err
}

func (r *TeamRepository) CountProjects(teamID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Project{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}
