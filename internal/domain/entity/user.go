package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
)

// User is either a back office operator (Admin) or a shop customer
type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UUID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Email     *string   `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Mobile    string    `gorm:"size:15;uniqueIndex;not null" json:"mobile"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      enum.Role `gorm:"size:20;not null;default:Customer" json:"role"`
	Address   string    `gorm:"size:200" json:"address"`
	ImageURL  *string   `gorm:"size:255" json:"imageUrl,omitempty"`
	IsDeleted bool      `gorm:"not null;default:false;index" json:"isDeleted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate generates the public identifier before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == uuid.Nil {
		u.UUID = uuid.New()
	}
	if u.Role == "" {
		u.Role = enum.RoleCustomer
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user may operate the back office
func (u *User) IsAdmin() bool {
	return u.Role == enum.RoleAdmin
}

// EmailOrEmpty returns the email address, or "" when none is set
func (u *User) EmailOrEmpty() string {
	if u.Email == nil {
		return ""
	}
	return *u.Email
}
