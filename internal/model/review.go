package model

import (
	"time"

	"github.com/google/uuid"
)

// Review is one recruiter's rating and comment for an application at one stage
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ApplicationID uint `gorm:"not null;index" json:"application_id"`

	// ReviewerID references the recruiter/admin User.ID (uuid)
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;index" json:"reviewer_id"`
	Reviewer   User      `gorm:"foreignKey:ReviewerID;references:ID" json:"-"`

	Rating int `gorm:"not null" json:"rating"`

	// Stage records which pipeline stage the review was given at
	Stage   string `gorm:"type:text;not null" json:"stage"`
	Content string `gorm:"type:text" json:"content"`
}
