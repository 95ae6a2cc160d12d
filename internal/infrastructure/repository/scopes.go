package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/swarnaabhushan/backoffice-api/pkg/daterange"
	"github.com/swarnaabhushan/backoffice-api/pkg/pagination"
)

// NotDeleted hides soft-deleted rows. Every read goes through it.
func NotDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// CreatedWithin keeps rows whose created_at falls in [start, end).
// A nil range keeps everything.
func CreatedWithin(r *daterange.Range) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if r == nil {
			return db
		}
		return db.Where("created_at >= ? AND created_at < ?", r.Start, r.End)
	}
}

// Paginate applies offset and limit. A nil params value returns every row.
func Paginate(params *pagination.Params) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params == nil {
			return db
		}
		params.Validate()
		return db.Offset(params.Offset()).Limit(params.Limit)
	}
}

// NewestFirst is the default listing order
func NewestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

// containsPattern builds a LIKE pattern for a case-insensitive substring
// match against a LOWER()ed column
func containsPattern(keyword string) string {
	return "%" + strings.ToLower(strings.TrimSpace(keyword)) + "%"
}
