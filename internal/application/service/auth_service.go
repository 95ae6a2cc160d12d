package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/swarnaabhushan/backoffice-api/internal/config"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
	"github.com/swarnaabhushan/backoffice-api/pkg/utils"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	saltRounds int
	log        *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, security config.SecurityConfig, log *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		saltRounds: security.SaltRounds,
		log:        log,
	}
}

// LoginInput represents login credentials
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=50"`
}

// AuthResponse is returned on a successful login
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *entity.User `json:"user"`
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateAccessToken(user.UUID, user.EmailOrEmpty(), user.Role.String())
	if err != nil {
		return nil, apperror.NewInternalError("Failed to generate token", err)
	}

	s.log.Info("user logged in", zap.String("user_id", user.UUID.String()))
	return &AuthResponse{AccessToken: token, User: user}, nil
}

// ChangePasswordInput represents a password change by a signed-in user
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=50"`
}

// ChangePassword replaces the caller's password after checking the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error {
	if err := validateInput(input); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewInvalidInputError("Current password is incorrect")
	}

	hash, err := utils.HashPassword(input.NewPassword, s.saltRounds)
	if err != nil {
		return apperror.NewInternalError("Failed to hash password", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	s.log.Info("password changed", zap.String("user_id", userID.String()))
	return nil
}
