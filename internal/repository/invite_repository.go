package repository

import (
	"skillmatrix/internal/model"

	"gorm.io/gorm"
)

type InviteRepository struct {
	DB *gorm.DB
}

func NewInviteRepository(db *gorm.DB) *InviteRepository {
	return &InviteRepository{DB: db}
}

func (r *InviteRepository) Create(invite *model.AssessmentInvite) error {
	return r.DB.Create(invite).Error
}

func (r *InviteRepository) Update(invite *model.AssessmentInvite) error {
	return r.DB.Save(invite).Error
}

func (r *InviteRepository) FindByID(id uint) (*model.AssessmentInvite, error) {
	var invite model.AssessmentInvite
	if err := r.DB.First(&invite, id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *InviteRepository) FindByDeveloperAndStatus(developerID uint, status model.InviteStatus) ([]model.AssessmentInvite, error) {
	var invites []model.AssessmentInvite
	err := r.DB.Where("developer_id = ? AND status = ?", developerID, status).Find(&invites).Error
	return invites, err
}
