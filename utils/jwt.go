package utils

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nu-studentlife/club-portal/models"
)

var (
	jwtSecret     []byte
	jwtSecretOnce sync.Once
)

// JWTSecret returns the signing key, loading SECRET_KEY lazily so that
// godotenv has a chance to run first. Safe under concurrent first use.
func JWTSecret() []byte {
	jwtSecretOnce.Do(func() {
		secret := os.Getenv("SECRET_KEY")
		if secret == "" {
			secret = "club-portal-dev-secret"
		}
		jwtSecret = []byte(secret)
	})
	return jwtSecret
}

type CustomClaims struct {
	UserID uint        `json:"user_id"`
	Role   models.Role `json:"role"`
	ClubID *uint       `json:"club_id,omitempty"`
	jwt.RegisteredClaims
}

func GenerateToken(user *models.User) (string, error) {
	claims := &CustomClaims{
		UserID: user.UserID,
		Role:   user.Role,
		ClubID: user.ClubID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "club-portal",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}

func ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
