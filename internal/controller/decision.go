package controller

import (
	"errors"
	"fmt"
	"net/http"

	"JoinUsMaybe-backend/internal/pipeline"
	"JoinUsMaybe-backend/internal/utilities"

	"github.com/gin-gonic/gin"
)

type decisionInfo struct {
	Decision string `json:"decision" binding:"required,oneof=ACCEPT REJECT"`
}

// DecisionHandler applies an ACCEPT or REJECT decision to an application.
// REJECT always lands on REJECTED; ACCEPT advances the application along its
// position's stage sequence, ending in ACCEPTED.
// @Summary Progress an application with an accept or reject decision
// @Description Only recruiter or admin can access this endpoint
// @Tags Application
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Param decision body decisionInfo true "ACCEPT or REJECT"
// @Success 200 {object} model.Application "Application with its updated stage"
// @Failure 400 {object} utilities.ErrorResponse "Invalid decision, terminal stage, or corrupted stage data"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id}/decision [post]
func (rc *RecruitController) DecisionHandler(c *gin.Context) {
	var info decisionInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Decision must be ACCEPT or REJECT",
		})
		return
	}

	application, ok := rc.fetchApplication(c)
	if !ok {
		return
	}

	if err := pipeline.ApplyDecision(&application, info.Decision); err != nil {
		switch {
		case errors.Is(err, pipeline.ErrCannotProgress):
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: "Application cannot progress further",
			})
		case errors.Is(err, pipeline.ErrUnknownStage), errors.Is(err, pipeline.ErrUnknownPosition):
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Application stage %q is not valid for position %q", application.Stage, application.Position),
			})
		default:
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: err.Error(),
			})
		}
		return
	}

	if err := rc.DB.Model(&application).Update("stage", application.Stage).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update application stage: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, application)
}
