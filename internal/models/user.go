package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleUser       = "user"
)

type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email        string             `json:"email" bson:"email"`
	Password     string             `json:"-" bson:"password"` // Never send password to client
	Name         string             `json:"name" bson:"name"`
	Role         string             `json:"role" bson:"role"`
	LinkedName   string             `json:"linkedName,omitempty" bson:"linkedName,omitempty"`
	FCMTokens    []string           `json:"-" bson:"fcmTokens,omitempty"`
	RefreshToken string             `json:"-" bson:"refreshToken,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsAdminRole reports whether role may upload data and manage users.
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperadmin
}

// CanViewName reports whether a user with role and linkedName may open target's details.
func CanViewName(role, linkedName, target string) bool {
	if IsAdminRole(role) || role == RoleManager {
		return true
	}
	mine := NameKey(linkedName)
	return mine != "" && NameKey(target) == mine
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type CreateUserRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Name       string `json:"name"`
	Role       string `json:"role" binding:"omitempty,oneof=admin manager user superadmin"`
	LinkedName string `json:"linkedName"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type RegisterPushTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NormalizeEmail lowercases and trims an address for lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
