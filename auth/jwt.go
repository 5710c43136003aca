package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/SolomonAgyire/Gallery/models"
)

// IssueToken signs a 24h session token for the HTTP surface.
func IssueToken(u *models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"email":   u.Email,
		"role":    "user",
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
