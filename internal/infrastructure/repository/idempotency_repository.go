package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	domainRepo "github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
)

type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository creates a new idempotency repository
func NewIdempotencyRepository(db *gorm.DB) domainRepo.IdempotencyRepository {
	return &idempotencyRepository{db: db}
}

func (r *idempotencyRepository) GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error) {
	var ikey entity.IdempotencyKey
	err := r.db.WithContext(ctx).
		Where("key = ? AND user_id = ?", key, userID).
		First(&ikey).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &ikey, nil
}

func (r *idempotencyRepository) Reserve(ctx context.Context, ikey *entity.IdempotencyKey) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(ikey)
	if result.Error != nil {
		return false, translateError(result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *idempotencyRepository) Complete(ctx context.Context, id uint, code int, body string) error {
	return translateError(r.db.WithContext(ctx).Model(&entity.IdempotencyKey{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"response_code": code, "response_body": body}).Error)
}

func (r *idempotencyRepository) Release(ctx context.Context, id uint) error {
	return translateError(r.db.WithContext(ctx).Delete(&entity.IdempotencyKey{}, id).Error)
}

func (r *idempotencyRepository) DeleteExpired(ctx context.Context) error {
	return translateError(r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.IdempotencyKey{}).Error)
}
