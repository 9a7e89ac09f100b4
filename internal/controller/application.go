package controller

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"JoinUsMaybe-backend/internal/model"
	"JoinUsMaybe-backend/internal/pipeline"
	"JoinUsMaybe-backend/internal/utilities"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type submitApplicationInfo struct {
	Position  string           `json:"position" binding:"required,oneof=DEVELOPER PM DESIGNER"`
	Skills    []string         `json:"skills"`
	Responses []model.Response `json:"responses"`
	ResumeID  *int             `json:"resume_id"`
}

// SubmitApplicationHandler handles the creation of a new application by an applicant.
// @Summary Submit an application for the current recruitment cycle
// @Description Only applicant can access this endpoint, one application per cycle
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param application body submitApplicationInfo true "Application information"
// @Success 201 {object} model.Application "Successfully submitted application"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or resume reference"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 409 {object} utilities.ErrorResponse "Already applied this cycle"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application [post]
func (rc *RecruitController) SubmitApplicationHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info submitApplicationInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	cycle := pipeline.CurrentCycle(time.Now())

	// One application per (user, year, semester): reject a second submission
	existing := model.Application{}
	if err := rc.DB.
		Where("user_id = ? AND year = ? AND semester = ?", user.ID, cycle.Year, cycle.Semester).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, utilities.ErrorResponse{
			Error: "You have already applied for the current recruitment cycle",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to check existing application",
		})
		return
	}

	application := model.Application{
		UserID:    user.ID,
		Year:      cycle.Year,
		Semester:  cycle.Semester,
		Position:  info.Position,
		Stage:     model.StageAppReceived,
		Skills:    info.Skills,
		Responses: info.Responses,
		ResumeID:  info.ResumeID,
	}

	if err := rc.DB.Create(&application).Error; err != nil {
		var pqErr *pgconn.PgError
		// Foreign key violation means ResumeID is invalid
		if errors.As(err, &pqErr) {
			if pqErr.Code == "23503" {
				c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
					Error: fmt.Sprintf("Invalid ResumeID: %s", err.Error()),
				})
				return
			}
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create application: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, application)
}

// GetMyApplicationHandler returns the caller's application for the current recruitment cycle.
// @Summary Get own application for the current cycle
// @Description Only applicant can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {object} model.Application "Application for the active cycle"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "No application for the current cycle"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application/me [get]
func (rc *RecruitController) GetMyApplicationHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var applications []model.Application
	if err := rc.DB.
		Preload("Responses").
		Preload("Reviews").
		Where("user_id = ?", user.ID).
		Order("id ASC").
		Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve applications: %s", err.Error()),
		})
		return
	}

	// Old-cycle applications are kept, only the active cycle's one counts here
	current, ok := pipeline.FindCurrentApplication(applications, time.Now())
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{
			Error: "No application for the current recruitment cycle",
		})
		return
	}

	c.JSON(http.StatusOK, current)
}

// GetApplicationsHandler lists applications with optional filters.
// @Summary List applications
// @Description Only recruiter or admin can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param position query string false "Filter by position track"
// @Param stage query string false "Filter by current stage"
// @Param year query int false "Filter by cycle year"
// @Param semester query string false "Filter by cycle semester"
// @Success 200 {array} model.Application "Matching applications"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications [get]
func (rc *RecruitController) GetApplicationsHandler(c *gin.Context) {
	query := rc.DB.Preload("Responses").Preload("Reviews").Preload("Recruiters")

	if position := c.Query("position"); position != "" {
		query = query.Where("position = ?", position)
	}
	if stage := c.Query("stage"); stage != "" {
		query = query.Where("stage = ?", stage)
	}
	if year := c.Query("year"); year != "" {
		query = query.Where("year = ?", year)
	}
	if semester := c.Query("semester"); semester != "" {
		query = query.Where("semester = ?", semester)
	}

	var applications []model.Application
	if err := query.Order("id ASC").Find(&applications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve applications: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, applications)
}

// GetApplicationByID returns one application with responses, reviews and assigned recruiters.
// @Summary Get application by id
// @Description Only recruiter or admin can access this endpoint
// @Tags Application
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Success 200 {object} model.Application
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id} [get]
func (rc *RecruitController) GetApplicationByID(c *gin.Context) {
	application, ok := rc.fetchApplication(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, application)
}

// fetchApplication loads the application referenced by the :id path param,
// writing the error response itself when the lookup fails.
func (rc *RecruitController) fetchApplication(c *gin.Context) (model.Application, bool) {
	var application model.Application
	err := rc.DB.
		Preload("Responses").
		Preload("Reviews").
		Preload("Recruiters").
		First(&application, "id = ?", c.Param("id")).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Application not found",
			})
			return application, false
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve application: %s", err.Error()),
		})
		return application, false
	}
	return application, true
}
