package user

import (
	"time"

	"github.com/salestrack/sales-api/internal/models"
	"github.com/salestrack/sales-api/internal/utils"
)

// LoginRequest é usado em POST / e POST /login.
type LoginRequest struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// CreateUserRequest é usado em POST /users.
type CreateUserRequest struct {
	UserName  string         `json:"user_name"`
	UserEmail string         `json:"user_email"`
	Password  string         `json:"password"`
	IsAdmin   utils.FlexBool `json:"is_admin"`
}

type UserDTO struct {
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name"`
	UserEmail string    `json:"user_email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

func toDTO(u models.User) UserDTO {
	return UserDTO{
		UserID:    u.ID,
		UserName:  u.UserName,
		UserEmail: u.UserEmail,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
