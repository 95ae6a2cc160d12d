package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	domainRepo "github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return translateError(r.db.WithContext(ctx).Create(item).Error)
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).Scopes(NotDeleted).First(&item, "uuid = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

func (r *itemRepository) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	return translateError(r.db.WithContext(ctx).Save(item).Error)
}

func (r *itemRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("uuid = ?", id).
		Update("is_deleted", true).Error)
}

func (r *itemRepository) List(ctx context.Context, params *domainRepo.ItemFilterParams) ([]entity.Item, int64, error) {
	var items []entity.Item
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Item{}).Scopes(NotDeleted)
	if params.Keyword != "" {
		query = query.Where("LOWER(name) LIKE ?", containsPattern(params.Keyword))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	err := query.Scopes(NewestFirst, Paginate(params.Pagination)).Find(&items).Error
	return items, total, translateError(err)
}
