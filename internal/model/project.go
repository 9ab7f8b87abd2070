package model

// swagger:model Project
type Project struct {
	BaseModel

	TeamID      uint   `gorm:"index;type:bigint unsigned" json:"teamId"`
	Name        string `gorm:"size:191" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Project) TableName() string {
	return "projects"
}
