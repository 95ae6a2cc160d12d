package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKey stores a processed request so a retried one replays the
// first response instead of recording a second payment
type IdempotencyKey struct {
	ID           uint      `gorm:"primaryKey"`
	Key          string    `gorm:"uniqueIndex;size:255;not null"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Endpoint     string    `gorm:"size:255;not null"` // e.g. "POST /api/payment"
	RequestHash  string    `gorm:"size:64"`
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsPending reports whether the reserving request has not finished yet
func (i *IdempotencyKey) IsPending() bool {
	return i.ResponseCode == 0
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
