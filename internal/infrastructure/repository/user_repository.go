package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/entity"
	domainRepo "github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return translateError(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) first(ctx context.Context, query string, args ...interface{}) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Scopes(NotDeleted).Where(query, args...).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.first(ctx, "uuid = ?", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *userRepository) GetByMobile(ctx context.Context, mobile string) (*entity.User, error) {
	return r.first(ctx, "mobile = ?", mobile)
}

// GetByIDs retrieves multiple users by their IDs in a single query
func (r *userRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.User, error) {
	if len(ids) == 0 {
		return []entity.User{}, nil
	}
	var users []entity.User
	err := r.db.WithContext(ctx).Scopes(NotDeleted).
		Where("uuid IN ?", ids).
		Find(&users).Error
	return users, translateError(err)
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return translateError(r.db.WithContext(ctx).Save(user).Error)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return translateError(r.db.WithContext(ctx).Model(&entity.User{}).
		Where("uuid = ? AND is_deleted = ?", id, false).
		Update("password", hash).Error)
}

func (r *userRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Model(&entity.User{}).
		Where("uuid = ?", id).
		Update("is_deleted", true).Error)
}

func (r *userRepository) List(ctx context.Context, params *domainRepo.UserFilterParams) ([]entity.User, int64, error) {
	var users []entity.User
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.User{}).Scopes(NotDeleted)

	if params.Keyword != "" {
		pattern := containsPattern(params.Keyword)
		query = query.Where("(LOWER(name) LIKE ? OR LOWER(COALESCE(email, '')) LIKE ? OR mobile LIKE ?)",
			pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translateError(err)
	}

	err := query.Scopes(NewestFirst, Paginate(params.Pagination)).Find(&users).Error
	return users, total, translateError(err)
}
