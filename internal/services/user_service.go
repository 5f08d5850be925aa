package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storedash-be/internal/models"
	"storedash-be/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserService manages dashboard accounts. Every operation except push token
// registration is admin-only.
type UserService struct {
	users           UserStore
	superadminEmail string
}

func NewUserService(users UserStore, superadminEmail string) *UserService {
	return &UserService{
		users:           users,
		superadminEmail: models.NormalizeEmail(superadminEmail),
	}
}

// IsSuperadminEmail reports whether email is the configured owner account.
func (s *UserService) IsSuperadminEmail(email string) bool {
	return s.superadminEmail != "" && models.NormalizeEmail(email) == s.superadminEmail
}

func (s *UserService) List(ctx context.Context, role string) ([]models.User, error) {
	if !models.IsAdminRole(role) {
		return nil, ErrForbidden
	}
	return s.users.List(ctx)
}

func (s *UserService) Create(ctx context.Context, role string, req models.CreateUserRequest) (*models.User, error) {
	if !models.IsAdminRole(role) {
		return nil, ErrForbidden
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}
	if req.Role == models.RoleSuperadmin {
		return nil, fmt.Errorf("%w: superadmin cannot be assigned", ErrForbidden)
	}

	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, ErrUserExists
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:      req.Email,
		Password:   hashed,
		Name:       strings.TrimSpace(req.Name),
		Role:       req.Role,
		LinkedName: strings.TrimSpace(req.LinkedName),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete refuses admins, superadmins and the configured owner account.
func (s *UserService) Delete(ctx context.Context, role, id string) error {
	if !models.IsAdminRole(role) {
		return ErrForbidden
	}

	target, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, primitive.ErrInvalidHex) {
			return ErrUserNotFound
		}
		return err
	}
	if models.IsAdminRole(target.Role) || s.IsSuperadminEmail(target.Email) {
		return ErrProtectedUser
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *UserService) RegisterPushToken(ctx context.Context, userID, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty push token")
	}
	return s.users.AddFCMToken(ctx, userID, token)
}
