package request

import (
	"github.com/swarnaabhushan/backoffice-api/internal/application/service"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
)

// CreateUserRequest represents a user creation request
type CreateUserRequest struct {
	Name     string    `json:"name" binding:"required,min=2,max=50"`
	Email    string    `json:"email" binding:"omitempty,email"`
	Mobile   string    `json:"mobile" binding:"required,min=10,max=15"`
	Password string    `json:"password" binding:"omitempty,min=6,max=50"`
	Role     enum.Role `json:"role" binding:"omitempty,oneof=Admin Customer"`
	Address  string    `json:"address" binding:"max=200"`
	ImageURL string    `json:"imageUrl" binding:"omitempty,url"`
}

// ToInput converts the request to the service input
func (r *CreateUserRequest) ToInput() *service.CreateUserInput {
	return &service.CreateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Mobile:   r.Mobile,
		Password: r.Password,
		Role:     r.Role,
		Address:  r.Address,
		ImageURL: r.ImageURL,
	}
}

// UpdateUserRequest represents a partial user update
type UpdateUserRequest struct {
	Name     *string    `json:"name" binding:"omitempty,min=2,max=50"`
	Email    *string    `json:"email" binding:"omitempty,email"`
	Mobile   *string    `json:"mobile" binding:"omitempty,min=10,max=15"`
	Password *string    `json:"password" binding:"omitempty,min=6,max=50"`
	Role     *enum.Role `json:"role" binding:"omitempty,oneof=Admin Customer"`
	Address  *string    `json:"address" binding:"omitempty,max=200"`
	ImageURL *string    `json:"imageUrl" binding:"omitempty,url"`
}

// ToInput converts the request to the service input
func (r *UpdateUserRequest) ToInput() *service.UpdateUserInput {
	return &service.UpdateUserInput{
		Name:     r.Name,
		Email:    r.Email,
		Mobile:   r.Mobile,
		Password: r.Password,
		Role:     r.Role,
		Address:  r.Address,
		ImageURL: r.ImageURL,
	}
}
