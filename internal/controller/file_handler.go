package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"JoinUsMaybe-backend/internal/model"
	"JoinUsMaybe-backend/internal/utilities"

	"github.com/gin-gonic/gin"
)

// UploadResumeHandler stores an uploaded resume PDF and returns its file id.
// The id can then be attached to an application submission as resume_id.
// @Summary Upload a resume
// @Description Only applicant can access this endpoint, PDF only
// @Tags File
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param resume formData file true "Resume file (pdf)"
// @Success 201 {object} model.File "Stored file record without content"
// @Failure 413 {object} utilities.ErrorResponse "File too large"
// @Failure 415 {object} utilities.ErrorResponse "Not a pdf"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /application/resume [post]
func (rc *RecruitController) UploadResumeHandler(c *gin.Context) {
	rawFile, err := c.FormFile("resume")
	var maxBytesError *http.MaxBytesError
	if errors.As(err, &maxBytesError) {
		c.JSON(http.StatusRequestEntityTooLarge, utilities.ErrorResponse{
			Error: err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to retrieve file: %s", err.Error()),
		})
		return
	}

	if strings.ToLower(filepath.Ext(rawFile.Filename)) != ".pdf" {
		c.JSON(http.StatusUnsupportedMediaType, utilities.ErrorResponse{
			Error: "Resume must be a pdf file",
		})
		return
	}

	f, err := rawFile.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
		return
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Println("Failed to close uploaded file:", err)
		}
	}()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot read file"})
		return
	}

	file := model.File{
		Content:   fileBytes,
		Extension: "pdf",
	}
	if err := rc.DB.Create(&file).Error; err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to store file: %s", err.Error()),
		})
		return
	}

	// Content already lives in the database, no need to echo it back
	file.Content = nil
	c.JSON(http.StatusCreated, file)
}

// GetFileHandler retrieves a file from the database and sends it as a
// downloadable attachment in the response.
// @Summary Download a stored file
// @Tags File
// @Produce octet-stream
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path int true "File ID"
// @Success 200 {file} binary
// @Failure 404 {object} utilities.ErrorResponse "File not found"
// @Router /file/{id} [get]
func (rc *RecruitController) GetFileHandler(c *gin.Context) {
	var file model.File
	id := c.Param("id")

	if err := rc.DB.First(&file, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{
			Error: "File not found",
		})
		return
	}

	c.Writer.Header().Set("Content-Disposition", "attachment; filename="+fmt.Sprint(file.ID)+"."+file.Extension)
	c.Data(http.StatusOK, "application/octet-stream", file.Content)
}

// UploadProfilePictureHandler pushes a picture to cloud storage and saves
// the public URL on the caller's account.
// @Summary Upload a profile picture
// @Tags File
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param picture formData file true "Picture file (jpg, jpeg or png)"
// @Success 200 {object} model.User "User with the new profile picture URL"
// @Failure 415 {object} utilities.ErrorResponse "Unsupported file extension"
// @Failure 500 {object} utilities.ErrorResponse "Storage or database error"
// @Router /profile/picture [post]
func (rc *RecruitController) UploadProfilePictureHandler(storageClient *CloudStorageClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := utilities.ExtractUser(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
			return
		}

		rawFile, err := c.FormFile("picture")
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to retrieve file: %s", err.Error()),
			})
			return
		}

		allowedExtensions := map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
		}
		extension := strings.ToLower(filepath.Ext(rawFile.Filename))
		if !allowedExtensions[extension] {
			c.JSON(http.StatusUnsupportedMediaType, utilities.ErrorResponse{
				Error: fmt.Sprintf("Unsupported file extension: %s", extension),
			})
			return
		}

		f, err := rawFile.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot open file"})
			return
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Println("Failed to close uploaded file:", err)
			}
		}()

		fileBytes, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{Error: "Cannot read file"})
			return
		}

		objectName := fmt.Sprintf("profile-pictures/%s%s", user.ID.String(), extension)
		if err := storageClient.UploadFile(objectName, bytes.NewReader(fileBytes)); err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to upload picture: %s", err.Error()),
			})
			return
		}

		user.ProfilePicture = storageClient.ObjectURL(objectName)
		if err := rc.DB.Model(&user).Update("profile_picture", user.ProfilePicture).Error; err != nil {
			c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
				Error: fmt.Sprintf("Failed to update user information: %s", err.Error()),
			})
			return
		}

		c.JSON(http.StatusOK, user)
	}
}
