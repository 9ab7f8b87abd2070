package model

import "time"

type InviteStatus string

const (
	InvitePending  InviteStatus = "PENDING"
	InviteAccepted InviteStatus = "ACCEPTED"
	// COMPLETED and EXPIRED are reserved for the invite lifecycle owned by
	// administrative tooling; the attempt engine never sets them.
	InviteCompleted InviteStatus = "COMPLETED"
	InviteExpired   InviteStatus = "EXPIRED"
)

// AssessmentInvite offers one assessment to one developer. Created by an
// admin, flipped to ACCEPTED when the developer starts an attempt.
// swagger:model AssessmentInvite
type AssessmentInvite struct {
	BaseModel

	DeveloperID  uint         `gorm:"index;type:bigint unsigned" json:"developerId"`
	AssessmentID uint         `gorm:"index;type:bigint unsigned" json:"assessmentId"`
	Status       InviteStatus `gorm:"type:varchar(20);default:PENDING" json:"status"`
	CompletedAt  *time.Time   `json:"completedAt,omitempty"`
}

func (AssessmentInvite) TableName() string {
	return "assessment_invites"
}
