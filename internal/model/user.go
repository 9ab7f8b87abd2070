package model

type UserRole string

const (
	RoleRoot      UserRole = "ROOT"
	RoleTeamAdmin UserRole = "TEAM_ADMIN"
	RoleDeveloper UserRole = "DEVELOPER"
)

// User is a platform account. Registration, login and password reset are
// owned by the identity service; this backend only reads identity and role.
// swagger:model User
type User struct {
	BaseModel

	Email            string   `gorm:"uniqueIndex;size:191" json:"email"`
	Password         string   `json:"-"`
	FullName         string   `json:"fullName"`
	Role             UserRole `gorm:"type:varchar(20);index" json:"role"`
	EmailVerified    bool     `gorm:"default:false" json:"emailVerified"`
	SecurityQuestion string   `json:"-"`
	SecurityAnswer   string   `json:"-"`
	Active           bool     `gorm:"default:true" json:"active"`
}

func (User) TableName() string {
	return "app_users"
}
