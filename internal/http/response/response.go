// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов HTTP‑обработчиков: {"success", "message", "data"}.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator"

	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// Response описывает стандартную структуру JSON‑ответа сервера.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// MsgUnauthorized: ответ API на запрос без нужной роли.
const MsgUnauthorized = "Unauthorized"

// OK возвращает успешный Response с сообщением.
func OK(msg string) Response {
	return Response{Success: true, Message: msg}
}

// OKWithData возвращает успешный Response с переданными данными.
func OKWithData(data any) Response {
	return Response{Success: true, Data: data}
}

// Error возвращает Response с ошибкой и переданным сообщением.
func Error(msg string) Response {
	return Response{Success: false, Message: msg}
}

// ValidationError формирует Response на основе ошибок валидации.
// Каждое нарушение формируется в человеко‑читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) Response {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "min":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at least %s characters", err.Field(), err.Param()))
		case "max":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be at most %s characters", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}
	return Error(strings.Join(errsMsgs, ", "))
}

// FromError сопоставляет доменную ошибку HTTP‑статусу и ответу.
// Неизвестные ошибки скрываются за fallback с кодом 500.
func FromError(err error, fallback string) (int, Response) {
	switch {
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden, Error(MsgUnauthorized)
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, Error("not found")
	case errors.Is(err, models.ErrValidation):
		return http.StatusUnprocessableEntity, Error(validationMessage(err))
	case errors.Is(err, models.ErrDuplicateEmail):
		return http.StatusConflict, Error("Email already registered")
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized, Error("Invalid email or password")
	}
	return http.StatusInternalServerError, Error(fallback)
}

// validationMessage оставляет от цепочки "op: validation failed: detail" только detail.
func validationMessage(err error) string {
	msg := err.Error()
	marker := models.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return models.ErrValidation.Error()
}
