package utilities

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// ExtractBearerToken reads the token part of an "Authorization: Bearer ..." header.
func ExtractBearerToken(c *gin.Context) (string, error) {

	const BearerSchema = "Bearer "
	authHeader := c.GetHeader("Authorization")

	if len(authHeader) <= len(BearerSchema) {
		return "", fmt.Errorf("Invalid authorization header")
	}

	return authHeader[len(BearerSchema):], nil
}
