package model

import "time"

type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "IN_PROGRESS"
	// AttemptCompleted is declared for schema compatibility but no code path
	// sets it; submission goes straight to PENDING_REVIEW or GRADED.
	AttemptCompleted     AttemptStatus = "COMPLETED"
	AttemptPendingReview AttemptStatus = "PENDING_REVIEW"
	AttemptGraded        AttemptStatus = "GRADED"
)

// AssessmentAttempt is one developer's pass through a selected question set.
// Passed is meaningful only once Status is GRADED.
// swagger:model AssessmentAttempt
type AssessmentAttempt struct {
	BaseModel

	DeveloperID    uint            `gorm:"index;type:bigint unsigned" json:"developerId"`
	AssessmentID   uint            `gorm:"index;type:bigint unsigned" json:"assessmentId"`
	Score          int             `json:"score"`
	TotalQuestions int             `json:"totalQuestions"`
	Status         AttemptStatus   `gorm:"type:varchar(20);index;default:IN_PROGRESS" json:"status"`
	Passed         bool            `gorm:"default:false" json:"passed"`
	StartedAt      time.Time       `json:"startedAt"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
	Answers        []AttemptAnswer `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

func (AssessmentAttempt) TableName() string {
	return "assessment_attempts"
}
