package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	"github.com/swarnaabhushan/backoffice-api/pkg/pagination"
)

// ItemRepository defines the interface for catalog item data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	// GetByName matches case-insensitively among items that are not deleted
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ItemFilterParams) ([]entity.Item, int64, error)
}

// ItemFilterParams contains filtering parameters for item queries
type ItemFilterParams struct {
	Pagination *pagination.Params
	Keyword    string
}
