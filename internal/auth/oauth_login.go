package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	// Auto load .env file
	_ "github.com/joho/godotenv/autoload"
)

// ApplicantGoogleLoginHandler handles Google login authentication for applicants, exchanges code
// for user info, checks and creates user in the database, generates an access token, and returns
// user information with the access token.
// @Summary Handles Google login authentication for applicants
// @Description Checks and creates user in the database, generates an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param Code body code true "Authentication code from google"
// @Success 200 {object} model.LoginResponse "Login success"
// @Success 201 {object} model.LoginResponse "Register success"
// @Failure 400 {object} utilities.ErrorResponse "Fail to receive token or fetch user info"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/google/applicant [post]
func (h *OauthLoginHandler) ApplicantGoogleLoginHandler(c *gin.Context) {

	uInfo, err := h.getUserInfo(c)
	if err != nil {
		return
	}

	h.loginOrRegisterUser(uInfo, c)
}

// Callback retrieves a query parameter named "code" from the request and returns it
// in a JSON response.
// @Summary Retrieves a query parameter named "code" from the request and returns it in a JSON response
// @Tags Auth
// @Produce json
// @Param Code query string false "Authentication code from google"
// @Success 200 {object} code
// @Router /auth/google/callback [get]
func (h *OauthLoginHandler) Callback(c *gin.Context) {
	aCode := c.Query("code")
	c.JSON(http.StatusOK, code{
		Code: aCode,
	})
}
