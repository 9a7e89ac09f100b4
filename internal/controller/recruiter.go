package controller

import (
	"errors"
	"fmt"
	"net/http"

	"JoinUsMaybe-backend/internal/model"
	"JoinUsMaybe-backend/internal/utilities"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type createRecruiterInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type assignRecruitersInfo struct {
	RecruiterIDs []uuid.UUID `json:"recruiter_ids" binding:"required,min=1"`
}

// CreateRecruiterHandler creates a recruiter account.
// @Summary Create a recruiter account
// @Description Only admin can access this endpoint
// @Tags Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param Info body createRecruiterInfo true "Credentials for the new recruiter"
// @Success 201 {object} model.User "Created recruiter"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 409 {object} utilities.ErrorResponse "Username already exist"
// @Failure 500 {object} utilities.ErrorResponse "Database or password hashing error"
// @Router /admin/recruiters [post]
func (rc *RecruitController) CreateRecruiterHandler(c *gin.Context) {
	var info createRecruiterInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username and a password of at least 8 characters must be provided",
		})
		return
	}

	var existing model.User
	err := rc.DB.Where("username = ?", info.Username).First(&existing).Error
	switch {
	case err == nil:
		c.JSON(http.StatusConflict, utilities.ErrorResponse{
			Error: "Username already exist",
		})
		return
	case errors.Is(err, gorm.ErrRecordNotFound):
		// Do nothing
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	hashedPassword, err := utilities.HashPassword(info.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed hash password: %s", err.Error()),
		})
		return
	}

	recruiter := model.User{
		Username: info.Username,
		Password: hashedPassword,
		Role:     model.RoleRecruiter,
	}
	if err := rc.DB.Create(&recruiter).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create recruiter: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, recruiter)
}

// AssignRecruitersHandler assigns recruiters to an application.
// @Summary Assign recruiters to an application
// @Description Only admin can access this endpoint
// @Tags Admin
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Param Info body assignRecruitersInfo true "Recruiter user ids"
// @Success 200 {object} model.Application "Application with its assigned recruiters"
// @Failure 400 {object} utilities.ErrorResponse "Unknown recruiter id in list"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id}/recruiters [post]
func (rc *RecruitController) AssignRecruitersHandler(c *gin.Context) {
	var info assignRecruitersInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "At least one recruiter id must be provided",
		})
		return
	}

	application, ok := rc.fetchApplication(c)
	if !ok {
		return
	}

	var recruiters []model.User
	if err := rc.DB.
		Where("id IN ? AND role = ?", info.RecruiterIDs, model.RoleRecruiter).
		Find(&recruiters).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve recruiters: %s", err.Error()),
		})
		return
	}

	if len(recruiters) != len(info.RecruiterIDs) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "One or more ids are not recruiter accounts",
		})
		return
	}

	if err := rc.DB.Model(&application).Association("Recruiters").Replace(recruiters); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to assign recruiters: %s", err.Error()),
		})
		return
	}

	application.Recruiters = recruiters
	c.JSON(http.StatusOK, application)
}
