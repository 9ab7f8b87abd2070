package model

// AttemptAnswer stores one submitted answer. Correct is meaningful only once
// Reviewed is true; MCQ answers are reviewed at submission, fill-in-blank
// answers wait for a manual verdict.
// swagger:model AttemptAnswer
type AttemptAnswer struct {
	BaseModel

	AttemptID   uint   `gorm:"index;type:bigint unsigned" json:"attemptId"`
	QuestionID  uint   `gorm:"index;type:bigint unsigned" json:"questionId"`
	GivenAnswer string `gorm:"size:2000" json:"givenAnswer"`
	Correct     bool   `gorm:"default:false" json:"correct"`
	Reviewed    bool   `gorm:"default:false" json:"reviewed"`
}

func (AttemptAnswer) TableName() string {
	return "attempt_answers"
}
