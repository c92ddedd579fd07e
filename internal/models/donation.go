package models

import (
	"encoding/json"
	"time"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
)

// StatusCompleted: статус транзакции по умолчанию.
const StatusCompleted = "Completed"

// Donation: пожертвование зарегистрированного донора. Запись только добавляется,
// меняться может лишь статус.
type Donation struct {
	ID            int64        `json:"id"`
	UserID        int64        `json:"user_id"`
	DonorName     string       `json:"donor_name"`
	Email         string       `json:"email"`
	Phone         string       `json:"phone"`
	CNIC          string       `json:"cnic"`
	Amount        money.Amount `json:"amount"`
	PaymentMethod string       `json:"payment_method"`
	DonatedAt     time.Time    `json:"donated_at"`
	Status        string       `json:"status"`
}

// DonationForm: данные формы пожертвования.
type DonationForm struct {
	DonorName     string      `json:"donor_name" form:"donor_name" validate:"required,max=100"`
	Email         string      `json:"email" form:"email" validate:"required,email,max=100"`
	Phone         string      `json:"phone" form:"phone" validate:"required,max=20"`
	CNIC          string      `json:"cnic" form:"cnic" validate:"required,max=20"`
	Amount        json.Number `json:"amount" form:"amount" validate:"required"`
	PaymentMethod string      `json:"payment_method" form:"payment_method" validate:"required,max=50"`
}
