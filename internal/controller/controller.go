// Package controller provides HTTP handlers for recruitment operations.
package controller

import "JoinUsMaybe-backend/internal/database"

// RecruitController struct holds the database connection for recruitment-related operations.
type RecruitController struct {
	DB *database.DBinstanceStruct
}

// NewRecruitController creates a new instance of RecruitController with the provided database connection.
func NewRecruitController(db *database.DBinstanceStruct) *RecruitController {
	return &RecruitController{
		DB: db,
	}
}
