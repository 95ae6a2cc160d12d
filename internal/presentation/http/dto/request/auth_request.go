package request

import "github.com/swarnaabhushan/backoffice-api/internal/application/service"

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=50"`
}

// ToInput converts the request to the service input
func (r *LoginRequest) ToInput() *service.LoginInput {
	return &service.LoginInput{Email: r.Email, Password: r.Password}
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=50"`
}

// ToInput converts the request to the service input
func (r *ChangePasswordRequest) ToInput() *service.ChangePasswordInput {
	return &service.ChangePasswordInput{CurrentPassword: r.CurrentPassword, NewPassword: r.NewPassword}
}
