package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/swarnaabhushan/backoffice-api/internal/application/service"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/request"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/dto/response"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles creating a customer or operator
// @Summary Create User
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateUserRequest true "User"
// @Success 201 {object} response.APIResponse
// @Router /api/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created successfully", user)
}

// List handles listing users with pagination and an optional keyword,
// read from the query string on GET and from the body on POST /search
// @Summary List Users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param keyword query string false "Matches name, email or mobile"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.APIResponse
// @Router /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	req, ok := bindSearch(c)
	if !ok {
		return
	}

	result, err := h.userService.ListUsers(c.Request.Context(), req.Users())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Users retrieved successfully", result)
}

// Get handles getting a single user by ID
// @Summary Get User
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.APIResponse
// @Router /api/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", user)
}

// Update handles a partial user update
// @Summary Update User
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request.UpdateUserRequest true "Fields to change"
// @Success 200 {object} response.APIResponse
// @Router /api/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req request.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated successfully", user)
}

// Delete handles soft-deleting a user
// @Summary Delete User
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.APIResponse
// @Router /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User deleted successfully", nil)
}
