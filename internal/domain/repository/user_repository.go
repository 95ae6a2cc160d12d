package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/pkg/pagination"
)

// UserRepository defines the interface for user data operations.
// Lookups only see users that are not soft-deleted and return (nil, nil)
// when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// GetByIDs retrieves multiple users in a single query
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByMobile(ctx context.Context, mobile string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *UserFilterParams) ([]entity.User, int64, error)
}

// UserFilterParams contains filtering parameters for user queries
type UserFilterParams struct {
	Pagination *pagination.Params
	Keyword    string // matched against name, email and mobile
}
