package models

import (
	"time"

	"gorm.io/gorm"
)

// User is an admin panel account. Email is unique.
type User struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Name            string         `json:"name" gorm:"not null"`
	Email           string         `json:"email" gorm:"not null;uniqueIndex"`
	Password        string         `json:"-" gorm:"not null"`
	StatusID        uint           `json:"statusId" gorm:"not null;index"`
	EmailVerifiedAt *time.Time     `json:"emailVerifiedAt,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`

	Status *UserStatus `json:"status,omitempty" gorm:"foreignKey:StatusID"`
}

func (User) TableName() string {
	return "users"
}

// CreateUserRequest represents a request to create a user
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=190"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	StatusID uint   `json:"statusId" binding:"required"`
}

// UpdateUserRequest represents a request to update a user
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=190"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
	StatusID *uint   `json:"statusId,omitempty"`
}

// UserFilters represents filters for user listings
type UserFilters struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	StatusID string `form:"status_id"`
}

// UserView is the client-facing user shape.
type UserView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    *LabelRef `json:"status,omitempty"`
	Verified  bool      `json:"verified"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token and the account it belongs to
type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    *UserView `json:"user"`
}

// UserResponse represents a single user response
type UserResponse struct {
	Success bool      `json:"success"`
	Data    *UserView `json:"data"`
}

// UserListResponse represents a list of users response
type UserListResponse struct {
	Success    bool            `json:"success"`
	Data       []UserView      `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}
