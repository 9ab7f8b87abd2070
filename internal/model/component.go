package model

// Component is the skill unit assessments are attached to, e.g. one tech
// stack inside a project.
// swagger:model Component
type Component struct {
	BaseModel

	ProjectID   uint   `gorm:"index;type:bigint unsigned" json:"projectId"`
	Name        string `gorm:"size:191" json:"name"`
	TechStack   string `gorm:"size:100" json:"techStack"`
	Description string `gorm:"type:text" json:"description"`
}

func (Component) TableName() string {
	return "components"
}
