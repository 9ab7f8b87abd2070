package model

// Assessment is a leveled test over one component. There should be at most
// one assessment per (component, level) pair; the repository enforces this
// with lookup-or-create rather than a unique constraint.
// swagger:model Assessment
type Assessment struct {
	BaseModel

	ComponentID        uint  `gorm:"index;type:bigint unsigned" json:"componentId"`
	Level              int   `gorm:"index" json:"level"`
	PassMarkPercentage int   `gorm:"default:70" json:"passMarkPercentage"`
	NumberOfQuestions  int   `gorm:"default:10" json:"numberOfQuestions"`
	CreatedByID        *uint `gorm:"type:bigint unsigned" json:"createdById,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}
