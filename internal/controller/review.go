package controller

import (
	"errors"
	"fmt"
	"net/http"

	"JoinUsMaybe-backend/internal/model"
	"JoinUsMaybe-backend/internal/utilities"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type createReviewInfo struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Content string `json:"content"`
}

type updateReviewInfo struct {
	Rating  int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Content string `json:"content"`
}

// CreateReviewHandler attaches a review to an application at its current stage.
// @Summary Create a review for an application
// @Description Only recruiter or admin can access this endpoint
// @Tags Review
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Application ID"
// @Param review body createReviewInfo true "Rating (1-5) and comment"
// @Success 201 {object} model.Review "Created review"
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 404 {object} utilities.ErrorResponse "Application not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applications/{id}/review [post]
func (rc *RecruitController) CreateReviewHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info createReviewInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	application, ok := rc.fetchApplication(c)
	if !ok {
		return
	}

	review := model.Review{
		ApplicationID: application.ID,
		ReviewerID:    user.ID,
		Rating:        info.Rating,
		// A review is pinned to the stage the application was in when it was written
		Stage:   application.Stage,
		Content: info.Content,
	}

	if err := rc.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to create review: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// UpdateReviewHandler lets a reviewer edit their own review's rating and comment.
// @Summary Update own review
// @Description Only the reviewer who wrote the review can edit it
// @Tags Review
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "Review ID"
// @Param review body updateReviewInfo true "New rating and/or comment"
// @Success 200 {object} model.Review "Updated review"
// @Failure 403 {object} utilities.ErrorResponse "Not the review author"
// @Failure 404 {object} utilities.ErrorResponse "Review not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /reviews/{id} [patch]
func (rc *RecruitController) UpdateReviewHandler(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var info updateReviewInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Invalid request body: %s", err.Error()),
		})
		return
	}

	var review model.Review
	if err := rc.DB.First(&review, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{
				Error: "Review not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve review: %s", err.Error()),
		})
		return
	}

	if review.ReviewerID != user.ID {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Only the review author can edit a review",
		})
		return
	}

	if info.Rating != 0 {
		review.Rating = info.Rating
	}
	if info.Content != "" {
		review.Content = info.Content
	}

	if err := rc.DB.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to update review: %s", err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, review)
}
