package models

import "time"

// User: зарегистрированный пользователь системы.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	RegisteredAt time.Time `json:"registered_at"`
}

// RegisterForm: данные формы регистрации до валидации.
type RegisterForm struct {
	FullName string `json:"full_name" form:"full_name" validate:"required,max=100"`
	Email    string `json:"email" form:"email" validate:"required,email,max=100"`
	Phone    string `json:"phone" form:"phone" validate:"omitempty,max=20"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=72"`
	Category string `json:"category" form:"category" validate:"required"`
}

// Session: данные аутентифицированной сессии. Роль проставляется при выдаче
// токена и дальше не меняется.
type Session struct {
	UserID    int64     `json:"user_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
