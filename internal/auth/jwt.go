package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// SecretKey signs every access token, set through SECRET_KEY.
var SecretKey = os.Getenv("SECRET_KEY")

// JwtIssuer is the issuer claim stamped into every token.
const JwtIssuer = "JoinUsMaybe"

// GenerateStandardToken creates a signed access token for the given user id.
// The second return value is reserved for a refresh token.
// TODO: generate refresh token
func GenerateStandardToken(userID uuid.UUID) (string, string, error) {
	return GenerateTokenWithDuration(userID, time.Hour, JwtIssuer)
}

// GenerateTokenWithDuration creates a signed token with an explicit lifetime
// and issuer. Mainly useful for tests that need expired or foreign tokens.
func GenerateTokenWithDuration(userID uuid.UUID, lifetime time.Duration, issuer string) (string, string, error) {

	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(lifetime)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	signedToken, err := accessToken.SignedString([]byte(SecretKey))
	if err != nil {
		return "", "", fmt.Errorf("Failed to sign token: %s", err)
	}

	return signedToken, "", nil
}

// ValidatedToken parses and verifies an encoded token, rejecting any signing
// method other than HMAC.
func ValidatedToken(encodedToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodedToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isValid := token.Method.(*jwt.SigningMethodHMAC); !isValid {
			return nil, fmt.Errorf("Invalid token")
		}
		return []byte(SecretKey), nil
	})
}
