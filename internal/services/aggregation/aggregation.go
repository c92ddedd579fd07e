// Package services собирает данные дашборда администратора: объединяет записи,
// добавленные администратором, с самостоятельно зарегистрированными
// пользователями и считает остаток средств.
package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// SnapshotReader: запросы, выполняемые внутри одного снимка базы.
type SnapshotReader interface {
	CountUsers(ctx context.Context) (int, error)
	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
	ListBeneficiaries(ctx context.Context, kind models.BeneficiaryKind) ([]models.Beneficiary, error)
	ListDonors(ctx context.Context) ([]models.Donor, error)
	ListDonations(ctx context.Context) ([]models.Donation, error)
	ListDisbursements(ctx context.Context) ([]models.Disbursement, error)
}

// Snapshot выполняет fn в транзакции только для чтения с изоляцией repeatable read.
type Snapshot func(ctx context.Context, fn func(r SnapshotReader) error) error

// Service строит дашборд администратора.
type Service struct {
	snapshot Snapshot
}

// New создаёт Service.
func New(snapshot Snapshot) *Service {
	return &Service{snapshot: snapshot}
}

func orUnknown(s string) string {
	if s == "" {
		return models.Unknown
	}
	return s
}

// MergeBeneficiaries объединяет подопечных вида kind: сначала добавленные
// администратором, затем зарегистрировавшиеся сами. Порядок внутри групп сохраняется.
func MergeBeneficiaries(kind models.BeneficiaryKind, admin []models.Beneficiary, self []models.User) []models.BeneficiaryView {
	result := make([]models.BeneficiaryView, 0, len(admin)+len(self))
	for _, b := range admin {
		result = append(result, models.BeneficiaryView{
			ID:       b.ID,
			Name:     b.Name,
			Email:    b.Email,
			Age:      strconv.Itoa(b.Age),
			Contact:  b.Contact,
			AddedAt:  b.AddedAt,
			Source:   models.SourceAdmin,
			Kind:     kind,
			RoleType: kind.Label(),
		})
	}
	for _, u := range self {
		result = append(result, models.BeneficiaryView{
			ID:       u.ID,
			Name:     u.FullName,
			Email:    u.Email,
			Age:      models.Unknown,
			Contact:  orUnknown(u.Phone),
			AddedAt:  u.RegisteredAt,
			Source:   models.SourceSelf,
			Kind:     kind,
			RoleType: kind.Label(),
		})
	}
	return result
}

// MergeDonors объединяет доноров: сначала добавленные администратором,
// затем зарегистрировавшиеся сами (без обязательства, сумма 0).
func MergeDonors(admin []models.Donor, self []models.User) []models.DonorView {
	result := make([]models.DonorView, 0, len(admin)+len(self))
	for _, d := range admin {
		result = append(result, models.DonorView{
			ID:            d.ID,
			Name:          d.Name,
			Age:           strconv.Itoa(d.Age),
			Gender:        d.Gender,
			Contact:       d.Contact,
			Address:       d.Address,
			DonationType:  d.DonationType,
			Amount:        d.Amount,
			PreferredTime: d.PreferredTime,
			AddedAt:       d.AddedAt,
			Source:        models.SourceAdmin,
		})
	}
	for _, u := range self {
		result = append(result, models.DonorView{
			ID:            u.ID,
			Name:          u.FullName,
			Age:           models.Unknown,
			Gender:        models.Unknown,
			Contact:       orUnknown(u.Phone),
			Address:       models.Unknown,
			DonationType:  models.DonationTypeSelfRegistered,
			Amount:        0,
			PreferredTime: models.Unknown,
			AddedAt:       u.RegisteredAt,
			Source:        models.SourceSelf,
		})
	}
	return result
}

// Totals: итоги движения средств.
type Totals struct {
	Received  money.Amount
	Given     money.Amount
	Remaining money.Amount
}

// Balance считает полученные и выданные суммы и остаток между ними.
// Остаток может быть отрицательным, если выплаты превысили поступления.
func Balance(donations []models.Donation, disbursements []models.Disbursement) Totals {
	var t Totals
	for _, d := range donations {
		t.Received += d.Amount
	}
	for _, d := range disbursements {
		t.Given += d.Amount
	}
	t.Remaining = t.Received - t.Given
	return t
}

// AdminDashboard читает все таблицы в одном снимке и собирает дашборд.
func (s *Service) AdminDashboard(ctx context.Context) (*models.AdminDashboard, error) {
	const op = "services.aggregation.AdminDashboard"

	var dash models.AdminDashboard
	err := s.snapshot(ctx, func(r SnapshotReader) error {
		totalUsers, err := r.CountUsers(ctx)
		if err != nil {
			return err
		}

		seniors, err := s.beneficiaries(ctx, r, models.KindSenior)
		if err != nil {
			return err
		}
		special, err := s.beneficiaries(ctx, r, models.KindSpecial)
		if err != nil {
			return err
		}

		adminDonors, err := r.ListDonors(ctx)
		if err != nil {
			return err
		}
		selfDonors, err := r.ListUsersByRole(ctx, models.RoleDonor)
		if err != nil {
			return err
		}

		donations, err := r.ListDonations(ctx)
		if err != nil {
			return err
		}
		disbursements, err := r.ListDisbursements(ctx)
		if err != nil {
			return err
		}

		totals := Balance(donations, disbursements)
		donors := MergeDonors(adminDonors, selfDonors)
		dash = models.AdminDashboard{
			TotalUsers:             totalUsers,
			TotalDonationsReceived: totals.Received,
			TotalDonationsGiven:    totals.Given,
			RemainingBalance:       totals.Remaining,
			TotalSeniors:           len(seniors),
			TotalSpecial:           len(special),
			TotalDonors:            len(donors),
			SeniorCitizens:         seniors,
			SpecialPeople:          special,
			Donors:                 donors,
			Donations:              donations,
			Disbursements:          disbursements,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &dash, nil
}

func (s *Service) beneficiaries(ctx context.Context, r SnapshotReader, kind models.BeneficiaryKind) ([]models.BeneficiaryView, error) {
	admin, err := r.ListBeneficiaries(ctx, kind)
	if err != nil {
		return nil, err
	}
	self, err := r.ListUsersByRole(ctx, kind.Role())
	if err != nil {
		return nil, err
	}
	return MergeBeneficiaries(kind, admin, self), nil
}
