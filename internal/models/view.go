package models

import (
	"time"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
)

// Unknown подставляется в поля, которых нет у самостоятельно зарегистрированных пользователей.
const Unknown = "N/A"

// DonationTypeSelfRegistered: тип обязательства для доноров из users.
const DonationTypeSelfRegistered = "Self Registered"

// BeneficiaryView: объединённое представление подопечного для дашборда администратора.
type BeneficiaryView struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Age      string          `json:"age"`
	Contact  string          `json:"contact"`
	AddedAt  time.Time       `json:"added_date"`
	Source   RecipientSource `json:"source"`
	Kind     BeneficiaryKind `json:"kind"`
	RoleType string          `json:"role_type"`
}

// Recipient возвращает ссылку, по которой этому подопечному можно сделать выплату.
func (v BeneficiaryView) Recipient() Recipient {
	return Recipient{Source: v.Source, Kind: v.Kind, ID: v.ID}
}

// DonorView: объединённое представление донора.
type DonorView struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Age           string          `json:"age"`
	Gender        string          `json:"gender"`
	Contact       string          `json:"contact"`
	Address       string          `json:"address"`
	DonationType  string          `json:"donation_type"`
	Amount        money.Amount    `json:"amount"`
	PreferredTime string          `json:"preferred_time"`
	AddedAt       time.Time       `json:"added_date"`
	Source        RecipientSource `json:"source"`
}

// AdminDashboard: данные дашборда администратора.
type AdminDashboard struct {
	TotalUsers             int               `json:"total_users"`
	TotalDonationsReceived money.Amount      `json:"total_donations_received"`
	TotalDonationsGiven    money.Amount      `json:"total_donations_given"`
	RemainingBalance       money.Amount      `json:"remaining_balance"`
	TotalSeniors           int               `json:"total_seniors"`
	TotalSpecial           int               `json:"total_special"`
	TotalDonors            int               `json:"total_donors"`
	SeniorCitizens         []BeneficiaryView `json:"senior_citizens"`
	SpecialPeople          []BeneficiaryView `json:"special_people"`
	Donors                 []DonorView       `json:"donors"`
	Donations              []Donation        `json:"all_donations"`
	Disbursements          []Disbursement    `json:"all_received_donations"`
}

// DonorDashboard: данные дашборда донора.
type DonorDashboard struct {
	Donations   []Donation   `json:"donations"`
	TotalAmount money.Amount `json:"total_amount"`
}

// BeneficiaryDashboard: данные дашборда получателя.
type BeneficiaryDashboard struct {
	Disbursements []Disbursement `json:"received_donations"`
	TotalReceived money.Amount   `json:"total_received"`
}
