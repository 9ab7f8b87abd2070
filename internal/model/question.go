package model

import "encoding/json"

type QuestionType string

const (
	QuestionMCQ         QuestionType = "MCQ"
	QuestionFillInBlank QuestionType = "FILL_IN_BLANK"
)

// Question belongs to exactly one component. The catalog creates questions;
// the assessment engine only reads them.
// swagger:model Question
type Question struct {
	BaseModel

	ComponentID     uint         `gorm:"index;type:bigint unsigned" json:"componentId"`
	QuestionText    string       `gorm:"type:text" json:"questionText"`
	Type            QuestionType `gorm:"type:varchar(20)" json:"type"`
	DifficultyLevel int          `gorm:"index" json:"difficultyLevel"`
	Options         string       `gorm:"type:json" json:"options"` // JSON array of option strings, MCQ only
	CorrectAnswer   string       `gorm:"size:2000" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// OptionList decodes the stored options column. Returns nil for
// fill-in-blank questions or malformed JSON.
func (q *Question) OptionList() []string {
	if q.Options == "" {
		return nil
	}
	var opts []string
	if err := json.Unmarshal([]byte(q.Options), &opts); err != nil {
		return nil
	}
	return opts
}
