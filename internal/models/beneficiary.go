package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// BeneficiaryKind: вид подопечного.
type BeneficiaryKind string

const (
	// KindSenior: пожилой человек.
	KindSenior BeneficiaryKind = "senior"
	// KindSpecial: человек с особыми потребностями.
	KindSpecial BeneficiaryKind = "special"
)

// ParseBeneficiaryKind разбирает строку в BeneficiaryKind.
func ParseBeneficiaryKind(s string) (BeneficiaryKind, error) {
	switch k := BeneficiaryKind(s); k {
	case KindSenior, KindSpecial:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown beneficiary kind %q", ErrValidation, s)
}

// Label: название вида для отображения.
func (k BeneficiaryKind) Label() string {
	switch k {
	case KindSenior:
		return "Senior Citizen"
	case KindSpecial:
		return "Special Person"
	}
	return string(k)
}

// Role: роль пользователя, соответствующая виду подопечного.
func (k BeneficiaryKind) Role() Role {
	switch k {
	case KindSenior:
		return RoleSenior
	case KindSpecial:
		return RoleSpecial
	}
	return ""
}

// Beneficiary: подопечный, добавленный администратором. Не связан с users.
type Beneficiary struct {
	ID      int64           `json:"id"`
	Kind    BeneficiaryKind `json:"kind"`
	Name    string          `json:"name"`
	Email   string          `json:"email"`
	Age     int             `json:"age"`
	Contact string          `json:"contact"`
	AddedAt time.Time       `json:"added_at"`
}

// BeneficiaryForm: данные формы добавления подопечного.
type BeneficiaryForm struct {
	Name    string      `json:"name" form:"name" validate:"required,max=100"`
	Email   string      `json:"email" form:"email" validate:"required,email,max=100"`
	Age     json.Number `json:"age" form:"age" validate:"required"`
	Contact string      `json:"contact" form:"contact" validate:"required,max=20"`
}
