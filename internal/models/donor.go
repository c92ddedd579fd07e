package models

import (
	"encoding/json"
	"time"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
)

// Виды обязательства донора.
const (
	DonationTypeMonthly = "Monthly"
	DonationTypeOneTime = "One Time"
)

// Donor: донор, добавленный администратором. Не связан с users.
type Donor struct {
	ID            int64        `json:"id"`
	Name          string       `json:"name"`
	Age           int          `json:"age"`
	Gender        string       `json:"gender"`
	Contact       string       `json:"contact"`
	Address       string       `json:"address"`
	DonationType  string       `json:"donation_type"`
	Amount        money.Amount `json:"amount"`
	PreferredTime string       `json:"preferred_time"`
	AddedAt       time.Time    `json:"added_at"`
}

// DonorForm: данные формы добавления донора.
type DonorForm struct {
	Name          string      `json:"name" form:"name" validate:"required,max=100"`
	Age           json.Number `json:"age" form:"age" validate:"required"`
	Gender        string      `json:"gender" form:"gender" validate:"required,max=10"`
	Contact       string      `json:"contact" form:"contact" validate:"required,max=20"`
	Address       string      `json:"address" form:"address" validate:"required"`
	DonationType  string      `json:"donation_type" form:"donation_type" validate:"required,max=50"`
	Amount        json.Number `json:"amount" form:"amount" validate:"required"`
	PreferredTime string      `json:"preferred_time" form:"preferred_time" validate:"required,max=100"`
}
