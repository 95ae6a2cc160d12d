package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/swarnaabhushan/backoffice-api/internal/config"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
	"github.com/swarnaabhushan/backoffice-api/pkg/apperror"
	"github.com/swarnaabhushan/backoffice-api/pkg/pagination"
	"github.com/swarnaabhushan/backoffice-api/pkg/utils"
)

// UserService handles operator and customer accounts
type UserService struct {
	userRepo   repository.UserRepository
	saltRounds int
	log        *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, security config.SecurityConfig, log *zap.Logger) *UserService {
	return &UserService{
		userRepo:   userRepo,
		saltRounds: security.SaltRounds,
		log:        log,
	}
}

// CreateUserInput represents the create user input. Customers may be
// created without a password, they cannot sign in until one is set.
type CreateUserInput struct {
	Name     string    `json:"name" validate:"required,min=2,max=50"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Mobile   string    `json:"mobile" validate:"required,min=10,max=15"`
	Password string    `json:"password" validate:"omitempty,min=6,max=50"`
	Role     enum.Role `json:"role" validate:"omitempty,oneof=Admin Customer"`
	Address  string    `json:"address" validate:"max=200"`
	ImageURL string    `json:"imageUrl" validate:"omitempty,url"`
}

// UpdateUserInput represents a partial update; nil fields are left unchanged
type UpdateUserInput struct {
	Name     *string    `json:"name" validate:"omitempty,min=2,max=50"`
	Email    *string    `json:"email" validate:"omitempty,email"`
	Mobile   *string    `json:"mobile" validate:"omitempty,min=10,max=15"`
	Password *string    `json:"password" validate:"omitempty,min=6,max=50"`
	Role     *enum.Role `json:"role" validate:"omitempty,oneof=Admin Customer"`
	Address  *string    `json:"address" validate:"omitempty,max=200"`
	ImageURL *string    `json:"imageUrl" validate:"omitempty,url"`
}

func (in *UpdateUserInput) isEmpty() bool {
	return in.Name == nil && in.Email == nil && in.Mobile == nil && in.Password == nil &&
		in.Role == nil && in.Address == nil && in.ImageURL == nil
}

// SearchUsersInput filters the user listing
type SearchUsersInput struct {
	Keyword string
	Page    int
	Limit   int
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser creates a new user
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Mobile = strings.TrimSpace(input.Mobile)
	input.Email = normalizeEmail(input.Email)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if err := s.ensureUnique(ctx, nil, input.Email, input.Mobile); err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:    input.Name,
		Mobile:  input.Mobile,
		Role:    input.Role,
		Address: strings.TrimSpace(input.Address),
	}
	if user.Role == "" {
		user.Role = enum.RoleCustomer
	}
	if input.Email != "" {
		user.Email = &input.Email
	}
	if input.ImageURL != "" {
		user.ImageURL = &input.ImageURL
	}
	if input.Password != "" {
		hash, err := utils.HashPassword(input.Password, s.saltRounds)
		if err != nil {
			return nil, apperror.NewInternalError("Failed to hash password", err)
		}
		user.Password = hash
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user created", zap.String("user_id", user.UUID.String()), zap.String("role", user.Role.String()))
	return user, nil
}

// ensureUnique rejects an email or mobile already used by another user
func (s *UserService) ensureUnique(ctx context.Context, self *entity.User, email, mobile string) error {
	if email != "" {
		existing, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if existing != nil && (self == nil || existing.UUID != self.UUID) {
			return apperror.NewInvalidInputError("User with this email already exists")
		}
	}
	if mobile != "" {
		existing, err := s.userRepo.GetByMobile(ctx, mobile)
		if err != nil {
			return err
		}
		if existing != nil && (self == nil || existing.UUID != self.UUID) {
			return apperror.NewInvalidInputError("User with this mobile already exists")
		}
	}
	return nil
}

// GetUser retrieves a user by public id
func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	userID, err := parseID(id, "user id")
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// UpdateUser applies a partial update to a user
func (s *UserService) UpdateUser(ctx context.Context, id string, input *UpdateUserInput) (*entity.User, error) {
	if input == nil || input.isEmpty() {
		return nil, apperror.NewInvalidInputError("No data provided for update")
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		input.Email = &email
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	email, mobile := "", ""
	if input.Email != nil {
		email = *input.Email
	}
	if input.Mobile != nil {
		mobile = strings.TrimSpace(*input.Mobile)
	}
	if err := s.ensureUnique(ctx, user, email, mobile); err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		if email == "" {
			user.Email = nil
		} else {
			user.Email = &email
		}
	}
	if mobile != "" {
		user.Mobile = mobile
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Address != nil {
		user.Address = strings.TrimSpace(*input.Address)
	}
	if input.ImageURL != nil {
		user.ImageURL = input.ImageURL
	}
	if input.Password != nil {
		hash, err := utils.HashPassword(*input.Password, s.saltRounds)
		if err != nil {
			return nil, apperror.NewInternalError("Failed to hash password", err)
		}
		user.Password = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers lists users matching an optional keyword on name, email or mobile
func (s *UserService) ListUsers(ctx context.Context, input *SearchUsersInput) (*pagination.Result[entity.User], error) {
	params := pageParams(input.Page, input.Limit)
	users, total, err := s.userRepo.List(ctx, &repository.UserFilterParams{
		Pagination: params,
		Keyword:    strings.TrimSpace(input.Keyword),
	})
	if err != nil {
		return nil, err
	}
	return pagination.NewResult(users, total, params), nil
}

// DeleteUser soft-deletes a user
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if err := s.userRepo.SoftDelete(ctx, user.UUID); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.String("user_id", user.UUID.String()))
	return nil
}
