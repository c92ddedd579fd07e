package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
)

// RecipientSource: откуда взят получатель выплаты.
type RecipientSource string

const (
	// SourceAdmin: запись добавлена администратором.
	SourceAdmin RecipientSource = "admin"
	// SourceSelf: пользователь зарегистрировался сам.
	SourceSelf RecipientSource = "self"
)

// ParseRecipientSource разбирает строку в RecipientSource.
func ParseRecipientSource(s string) (RecipientSource, error) {
	switch src := RecipientSource(s); src {
	case SourceAdmin, SourceSelf:
		return src, nil
	}
	return "", fmt.Errorf("%w: unknown recipient source %q", ErrValidation, s)
}

// Recipient: ссылка на получателя выплаты: либо пользователь (SourceSelf),
// либо подопечный из таблицы администратора (SourceAdmin). Kind всегда задан.
type Recipient struct {
	Source RecipientSource `json:"source"`
	Kind   BeneficiaryKind `json:"kind"`
	ID     int64           `json:"id"`
}

// UserRecipient ссылается на самостоятельно зарегистрированного пользователя.
func UserRecipient(kind BeneficiaryKind, userID int64) Recipient {
	return Recipient{Source: SourceSelf, Kind: kind, ID: userID}
}

// AdminRecipient ссылается на подопечного, добавленного администратором.
func AdminRecipient(kind BeneficiaryKind, id int64) Recipient {
	return Recipient{Source: SourceAdmin, Kind: kind, ID: id}
}

func (r Recipient) String() string {
	return fmt.Sprintf("%s/%s/%d", r.Source, r.Kind, r.ID)
}

// Disbursement: выплата подопечному. Запись только добавляется.
type Disbursement struct {
	ID             int64        `json:"id"`
	Recipient      Recipient    `json:"recipient"`
	RecipientName  string       `json:"recipient_name"`
	RecipientEmail string       `json:"recipient_email"`
	Amount         money.Amount `json:"amount"`
	Purpose        string       `json:"purpose"`
	Notes          string       `json:"notes"`
	GivenAt        time.Time    `json:"given_at"`
	GivenBy        string       `json:"given_by"`
	Status         string       `json:"status"`
}

// DisbursementForm: данные формы выплаты. recipient_source по умолчанию "self".
type DisbursementForm struct {
	RecipientID     json.Number `json:"recipient_id" form:"recipient_id" validate:"required"`
	RecipientType   string      `json:"recipient_type" form:"recipient_type" validate:"required"`
	RecipientSource string      `json:"recipient_source" form:"recipient_source" validate:"omitempty"`
	Amount          json.Number `json:"amount" form:"amount" validate:"required"`
	Purpose         string      `json:"purpose" form:"purpose" validate:"required,max=200"`
	Notes           string      `json:"notes" form:"notes"`
}
