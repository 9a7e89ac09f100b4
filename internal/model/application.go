// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Stage values are persisted as-is, changing them breaks existing rows.
var (
	// StageAppReceived is the entry stage of every position track
	StageAppReceived = "APP_RECEIVED"
	// StageTechInterview is the technical interview (developer track only)
	StageTechInterview = "T_INTERVIEW"
	// StageBehavioralInterview is the behavioral interview, last stage of every track
	StageBehavioralInterview = "B_INTERVIEW"
	// StagePMChallenge is the product challenge (PM track only)
	StagePMChallenge = "PM_CHALLENGE"
	// StageAccepted is terminal, no further transitions
	StageAccepted = "ACCEPTED"
	// StageRejected is terminal, no further transitions
	StageRejected = "REJECTED"
)

// Position tracks an applicant can apply for
var (
	PositionDeveloper = "DEVELOPER"
	PositionPM        = "PM"
	PositionDesigner  = "DESIGNER"
)

// Semesters of a recruitment cycle
var (
	SemesterFall   = "FALL"
	SemesterSpring = "SPRING"
)

// Application is gorm model for one applicant's submission for one recruitment cycle
type Application struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// UserID references the applicant User.ID (uuid)
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   User      `gorm:"foreignKey:UserID;references:ID" json:"-"`

	Year     int    `gorm:"not null" json:"year"`
	Semester string `gorm:"type:text;not null" json:"semester"`
	Position string `gorm:"type:text;not null" json:"position"`
	Stage    string `gorm:"type:text;not null" json:"stage"`

	Skills pq.StringArray `gorm:"type:text[]" json:"skills"`

	Responses  []Response `gorm:"foreignKey:ApplicationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"responses"`
	Reviews    []Review   `gorm:"foreignKey:ApplicationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reviews"`
	Recruiters []User     `gorm:"many2many:application_recruiters" json:"recruiters"`

	ResumeID *int `json:"resume_id"`
	Resume   File `gorm:"foreignKey:ResumeID;references:ID" json:"-"`
}

// Response is one free-text question/answer pair on an application
type Response struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicationID uint   `gorm:"not null;index" json:"-"`
	Question      string `gorm:"type:text" json:"question"`
	Answer        string `gorm:"type:text" json:"answer"`
}
