package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key by its key string and user ID
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	// Reserve inserts a pending key; false means the key already exists
	Reserve(ctx context.Context, ikey *entity.IdempotencyKey) (bool, error)
	// Complete records the response of a reserved key
	Complete(ctx context.Context, id uint, code int, body string) error
	// Release drops a reserved key so the request can be sent again
	Release(ctx context.Context, id uint) error
	// DeleteExpired removes expired idempotency keys (for cleanup)
	DeleteExpired(ctx context.Context) error
}
