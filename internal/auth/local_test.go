package auth

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"JoinUsMaybe-backend/internal/database"
	"JoinUsMaybe-backend/internal/model"
	"JoinUsMaybe-backend/internal/utilities"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
)

var testDB *database.DBinstanceStruct
var testTeardown func(context.Context, ...testcontainers.TerminateOption) error

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	var err error
	testTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := testTeardown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "teardown error: %v\n", err)
	}
}

// Helper: validate access token in response and return claims.
func assertValidAccessToken(t *testing.T, resp map[string]interface{}) *jwt.RegisteredClaims {
	t.Helper()
	tokenStr, ok := resp["access_token"].(string)
	assert.True(t, ok, "access_token not a string")
	token, err := ValidatedToken(tokenStr)
	assert.NoError(t, err)
	assert.True(t, token.Valid)
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	assert.True(t, ok, "claims type mismatch")
	assert.NotEmpty(t, claims.Subject, "token subject empty")
	assert.Equal(t, JwtIssuer, claims.Issuer)
	return claims
}

func TestRegisterApplicant(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"username": "test_applicant_user",
		"password": "password123",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code, "unexpected status, body: %s", rec.Body.String())

	assert.Contains(t, resp, "access_token")

	claims := assertValidAccessToken(t, resp)

	userVal, ok := resp["user"]
	assert.True(t, ok, "user key missing in response")
	userObj, ok := userVal.(map[string]interface{})
	assert.True(t, ok, "user object has wrong type")

	// Self-registration only creates applicant accounts
	assert.Equal(t, model.RoleApplicant, userObj["role"])

	if idVal, ok := userObj["id"].(string); ok {
		assert.Equal(t, idVal, claims.Subject, "JWT subject should match user id")
	}
}

func TestRegisterPasswordTooShort(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"username": "short_pwd_user",
		"password": "1234567", // 7 chars
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errMsg, _ := resp["error"].(string)
	assert.Contains(t, errMsg, "Password should longer or equal to 8 characters")
}

func TestRegisterDuplicateUsername(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"username": database.TestApplicant1.Username, // seeded username
		"password": "password123",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errMsg, _ := resp["error"].(string)
	assert.Equal(t, "Username already exist", errMsg)
}

func TestRegisterMissingFields(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)

	payload := map[string]string{
		"username": "lonely_username",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalRegisterHandler, "/register", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	errMsg, _ := resp["error"].(string)
	assert.Contains(t, errMsg, "Username and password must be provided")
}

func TestLoginApplicantSuccess(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	payload := map[string]string{
		"username": database.TestApplicant1.Username,
		"password": database.TestSeedPassword,
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())
	assert.Contains(t, resp, "access_token")

	claims := assertValidAccessToken(t, resp)
	userVal, ok := resp["user"]
	assert.True(t, ok)
	if uMap, ok := userVal.(map[string]interface{}); ok {
		if idVal, ok := uMap["id"].(string); ok {
			assert.Equal(t, idVal, claims.Subject)
		}
	}
}

func TestLoginRecruiterSuccess(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	payload := map[string]string{
		"username": database.TestRecruiter1.Username,
		"password": database.TestSeedPassword,
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	assert.Contains(t, resp, "access_token")
	assertValidAccessToken(t, resp)
}

func TestLoginWrongPassword(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	payload := map[string]string{
		"username": database.TestApplicant1.Username,
		"password": "WrongPass999!",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	errMsg, _ := resp["error"].(string)
	assert.Equal(t, "Username or password is incorrect", errMsg)
}

func TestLoginUserNotFound(t *testing.T) {
	handler := NewLocalAuthHandler(testDB)
	payload := map[string]string{
		"username": "non_existent_user_xyz",
		"password": "SomePassword1!",
	}
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, payload)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	errMsg, _ := resp["error"].(string)
	assert.Equal(t, "Username or password is incorrect", errMsg)
}
