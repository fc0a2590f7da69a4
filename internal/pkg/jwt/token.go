package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/lapakin/lapakin/internal/pkg/models"
)

// Claims represents standard JWT claims plus custom fields
type Claims struct {
	OrgID uuid.UUID `json:"org_id"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	jwt.StandardClaims
}

// GenerateToken generates a JWT token for a portal user of an organization
func GenerateToken(orgID uuid.UUID, email, role string, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"org_id": orgID,
		"email":  email,
		"role":   role,
		"exp":    expiresAt,
		"iss":    cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a signed token and returns its claims. Only
// HMAC-signed tokens are accepted.
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
