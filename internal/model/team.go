package model

// swagger:model Team
type Team struct {
	BaseModel

	Name        string `gorm:"size:191" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (Team) TableName() string {
	return "teams"
}
