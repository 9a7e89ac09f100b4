package model

import (
	"time"

	"github.com/google/uuid"
)

var (
	// RoleApplicant is a candidate currently applying to the club
	RoleApplicant = "applicant"
	// RoleRecruiter can review applications and progress them through stages
	RoleRecruiter = "recruiter"
	// RoleAdmin can do everything a recruiter can, plus manage accounts
	RoleAdmin = "admin"
	// RoleMember is an accepted applicant from a past cycle
	RoleMember = "member"
	// RoleAlumni is a member who has graduated
	RoleAlumni = "alumni"
)

// User is gorm model for every account in the system, role decides authorization
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	Password       string    `json:"-"`
	GoogleID       string    `gorm:"index" json:"-"`
	Email          *string   `json:"email"`
	Tel            *string   `json:"tel"`
	ProfilePicture string    `json:"profile_picture"`
	Role           string    `gorm:"type:text;not null" json:"role"`
}

// FillGoogleInfo populates a fresh applicant account from a Google userinfo payload
func (u *User) FillGoogleInfo(info GoogleUserInfo) {
	u.GoogleID = info.GID
	u.Username = info.Email
	u.Email = &info.Email
	u.ProfilePicture = info.Picture
	u.Role = RoleApplicant
}
