package model

import "time"

// DeveloperLevel is the single source of truth for a developer's skill on a
// component: the highest assessment level passed so far. CurrentLevel is
// monotonically non-decreasing.
// swagger:model DeveloperLevel
type DeveloperLevel struct {
	BaseModel

	DeveloperID   uint       `gorm:"uniqueIndex:idx_developer_component;type:bigint unsigned" json:"developerId"`
	ComponentID   uint       `gorm:"uniqueIndex:idx_developer_component;type:bigint unsigned" json:"componentId"`
	CurrentLevel  int        `gorm:"default:0" json:"currentLevel"`
	LastLevelUpAt *time.Time `json:"lastLevelUpAt,omitempty"`
}

func (DeveloperLevel) TableName() string {
	return "developer_levels"
}
