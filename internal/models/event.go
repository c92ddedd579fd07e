package models

import (
	"time"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
)

// Ключи маршрутизации событий в обменнике donations.
const (
	RoutingDonationReceived  = "donation.received"
	RoutingDonationDisbursed = "donation.disbursed"
)

// DonationEvent публикуется после фиксации пожертвования или выплаты.
// Email и Name: адресат уведомления: донор либо получатель.
type DonationEvent struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Amount     money.Amount `json:"amount"`
	Purpose    string       `json:"purpose,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}
