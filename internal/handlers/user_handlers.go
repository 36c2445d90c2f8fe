package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"payment-config-service/internal/middleware"
	"payment-config-service/internal/models"
	"payment-config-service/internal/services"
)

// UserHandler exposes user CRUD and login over HTTP
type UserHandler struct {
	service   services.UserService
	jwtSecret string
	tokenTTL  time.Duration
}

// NewUserHandler creates a new user handler
func NewUserHandler(service services.UserService, jwtSecret string, tokenTTL time.Duration) *UserHandler {
	return &UserHandler{service: service, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login verifies credentials and issues a bearer token
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.LoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.service.VerifyCredentials(req.Email, req.Password)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "email or password is incorrect")
		return
	}

	now := time.Now()
	claims := middleware.Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Name:     user.Name,
		Verified: user.EmailVerifiedAt != nil,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtSecret))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	view, err := h.service.GetUser(user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Success: true, Token: token, User: view})
}

// ListUsers returns a paginated user listing
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param name query string false "Filter by name substring"
// @Param email query string false "Filter by email substring"
// @Param status_id query int false "Filter by status"
// @Success 200 {object} models.UserListResponse
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var filters models.UserFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		respondBindError(c, err)
		return
	}

	page, limit := pageParams(c)
	users, pagination, err := h.service.ListUsers(&filters, page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UserListResponse{Success: true, Data: users, Pagination: pagination})
}

// GetUser returns one user
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	user, err := h.service.GetUser(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{Success: true, Data: user})
}

// CreateUser creates a user; the password is hashed before storage
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param body body models.CreateUserRequest true "User payload"
// @Success 201 {object} models.UserResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/v1/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.UserResponse{Success: true, Data: user})
}

// UpdateUser updates a user; changing the email clears its verification
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body models.UpdateUserRequest true "Fields to update"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{Success: true, Data: user})
}

// DeleteUser soft-deletes a user
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Param force query bool false "Permanently delete"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), id, forceParam(c)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "user deleted"})
}

// RestoreUser restores a soft-deleted user
// @Summary Restore user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/v1/users/{id}/restore [post]
func (h *UserHandler) RestoreUser(c *gin.Context) {
	id := idParam(c)
	if id == 0 {
		return
	}

	user, err := h.service.RestoreUser(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{Success: true, Data: user})
}
