// Package jwt issues and validates the platform's signed tokens.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

const (
	AccessTokenValidity  = 24 * time.Hour
	RefreshTokenValidity = 7 * 24 * time.Hour
	ResetTokenValidity   = 30 * time.Minute
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateTokenPair creates the access and refresh tokens returned at login.
func GenerateTokenPair(userID uint, email, secret string) (accessToken, refreshToken string, err error) {
	accessClaims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"type":  "access",
		"exp":   time.Now().Add(AccessTokenValidity).Unix(),
	}
	accessToken, err = signClaims(accessClaims, secret)
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":   userID,
		"type": "refresh",
		"exp":  time.Now().Add(RefreshTokenValidity).Unix(),
	}
	refreshToken, err = signClaims(refreshClaims, secret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateResetToken creates the short-lived token embedded in password-reset
// links.
func GenerateResetToken(email, secret string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"type":  "reset",
		"exp":   time.Now().Add(ResetTokenValidity).Unix(),
	}
	return signClaims(claims, secret)
}

// ValidateAndGetClaims parses a token and returns its claims when the
// signature and expiry check out.
func ValidateAndGetClaims(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func signClaims(claims jwt.MapClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
