package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type Claims struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Role       string `json:"role,omitempty"`
	LinkedName string `json:"linkedName,omitempty"`
	TokenType  string `json:"tokenType"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenSubject identifies who a token is issued for.
type TokenSubject struct {
	UserID     string
	Email      string
	Role       string
	LinkedName string
}

func GenerateAccessToken(sub TokenSubject, secret string, expiration time.Duration) (string, error) {
	return generate(sub, TokenTypeAccess, secret, expiration)
}

func GenerateRefreshToken(sub TokenSubject, secret string, expiration time.Duration) (string, error) {
	return generate(sub, TokenTypeRefresh, secret, expiration)
}

func generate(sub TokenSubject, tokenType, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:     sub.UserID,
		Email:      sub.Email,
		Role:       sub.Role,
		LinkedName: sub.LinkedName,
		TokenType:  tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
