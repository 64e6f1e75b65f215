// Package users управляет аккаунтами магазина.
// models.go описывает структуры для пользователей и запросов аутентификации.
package users

import (
	"time"

	"github.com/shopspring/decimal"
)

// Роли аккаунтов
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User представляет аккаунт магазина.
// Поле Password хранит bcrypt-хэш и никогда не сериализуется в ответы.
type User struct {
	UserID    int64           `json:"user_id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Password  string          `json:"-"`
	Image     *string         `json:"image"`
	Wallet    decimal.Decimal `json:"wallet"`
	Role      string          `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

// RegisterRequest — тело POST /register.
type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Image    *string `json:"image"`
}

// LoginRequest — тело POST /login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest — тело PUT /users/:user_id.
type UpdateProfileRequest struct {
	Username string  `json:"username" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Image    *string `json:"image"`
}
