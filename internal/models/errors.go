package models

import (
	"errors"
	"fmt"
)

// Ошибки предметной области. Слои выше оборачивают их через fmt.Errorf("%s: %w", op, err),
// а HTTP-обработчики различают через errors.Is.
var (
	// ErrDuplicateEmail: пользователь с таким email уже зарегистрирован.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidCredentials: неверный email или пароль.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrForbidden: роль сессии не допускает операцию.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound: запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrValidation: некорректное значение поля.
	ErrValidation = errors.New("validation failed")
	// ErrInsufficientBalance: выплата превышает остаток средств.
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrValidation)
)
