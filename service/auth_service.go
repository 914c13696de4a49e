package service

import (
	"fmt"
	"time"

	"bytebank-api/config"
	"bytebank-api/logger"
	"bytebank-api/model"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWT signs an HS256 token for subject carrying role, valid for ttl.
func GenerateJWT(subject, role string, ttl time.Duration) (string, error) {
	key, err := config.AppConfig.JWTKey()
	if err != nil {
		return "", err
	}

	claims := &model.AppClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		logger.Log.WithError(err).WithField("subject", subject).Error("Failed to sign JWT")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}
