// Package services реализует операции администратора: ведение списков подопечных
// и доноров и выплаты из общего баланса.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/metrics"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

const maxAge = 150

// Repository описывает записи, которые ведёт администратор.
type Repository interface {
	CreateBeneficiary(ctx context.Context, b models.Beneficiary) (int64, error)
	DeleteBeneficiary(ctx context.Context, kind models.BeneficiaryKind, id int64) error
	CreateDonor(ctx context.Context, d models.Donor) (int64, error)
	DeleteDonor(ctx context.Context, id int64) error
}

// Ledger: запросы, выполняемые внутри транзакции выплаты.
type Ledger interface {
	// LockLedger сериализует выплаты до конца транзакции.
	LockLedger(ctx context.Context) error
	ResolveRecipient(ctx context.Context, r models.Recipient) (name, email string, err error)
	SumDonations(ctx context.Context) (money.Amount, error)
	SumDisbursements(ctx context.Context) (money.Amount, error)
	CreateDisbursement(ctx context.Context, d models.Disbursement) (*models.Disbursement, error)
}

// LedgerTx выполняет fn в одной транзакции записи.
type LedgerTx func(ctx context.Context, fn func(l Ledger) error) error

// Publisher отправляет события в брокер.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Service выполняет операции администратора.
type Service struct {
	log       *slog.Logger
	repo      Repository
	ledgerTx  LedgerTx
	publisher Publisher
	metrics   *metrics.Metrics
}

// New создаёт Service.
func New(log *slog.Logger, repo Repository, ledgerTx LedgerTx, publisher Publisher, m *metrics.Metrics) *Service {
	return &Service{
		log:       log,
		repo:      repo,
		ledgerTx:  ledgerTx,
		publisher: publisher,
		metrics:   m,
	}
}

func parseAge(s string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || age < 0 || age > maxAge {
		return 0, fmt.Errorf("%w: age must be a whole number between 0 and %d", models.ErrValidation, maxAge)
	}
	return age, nil
}

// ParseID разбирает идентификатор записи из пути или формы.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", models.ErrValidation, s)
	}
	return id, nil
}

func parsePositiveAmount(s string) (money.Amount, error) {
	amount, err := money.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: amount: %v", models.ErrValidation, err)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", models.ErrValidation)
	}
	return amount, nil
}

// AddBeneficiary добавляет подопечного вида kind.
func (s *Service) AddBeneficiary(ctx context.Context, kind models.BeneficiaryKind, form models.BeneficiaryForm) (int64, error) {
	const op = "services.admin.AddBeneficiary"

	if _, err := models.ParseBeneficiaryKind(string(kind)); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	age, err := parseAge(form.Age.String())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	id, err := s.repo.CreateBeneficiary(ctx, models.Beneficiary{
		Kind:    kind,
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.ToLower(strings.TrimSpace(form.Email)),
		Age:     age,
		Contact: strings.TrimSpace(form.Contact),
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// DeleteBeneficiary удаляет подопечного. Отсутствующая запись: models.ErrNotFound.
func (s *Service) DeleteBeneficiary(ctx context.Context, kind models.BeneficiaryKind, id int64) error {
	const op = "services.admin.DeleteBeneficiary"

	if err := s.repo.DeleteBeneficiary(ctx, kind, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// AddDonor добавляет донора с обязательством Monthly или One Time.
func (s *Service) AddDonor(ctx context.Context, form models.DonorForm) (int64, error) {
	const op = "services.admin.AddDonor"

	donationType := strings.TrimSpace(form.DonationType)
	if donationType != models.DonationTypeMonthly && donationType != models.DonationTypeOneTime {
		return 0, fmt.Errorf("%s: %w: donation type must be %q or %q",
			op, models.ErrValidation, models.DonationTypeMonthly, models.DonationTypeOneTime)
	}
	age, err := parseAge(form.Age.String())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	amount, err := parsePositiveAmount(form.Amount.String())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.CreateDonor(ctx, models.Donor{
		Name:          strings.TrimSpace(form.Name),
		Age:           age,
		Gender:        strings.TrimSpace(form.Gender),
		Contact:       strings.TrimSpace(form.Contact),
		Address:       strings.TrimSpace(form.Address),
		DonationType:  donationType,
		Amount:        amount,
		PreferredTime: strings.TrimSpace(form.PreferredTime),
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// DeleteDonor удаляет донора, добавленного администратором.
func (s *Service) DeleteDonor(ctx context.Context, id int64) error {
	const op = "services.admin.DeleteDonor"

	if err := s.repo.DeleteDonor(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ParseRecipient собирает ссылку на получателя из формы.
// Без recipient_source получателем считается зарегистрированный пользователь.
func ParseRecipient(form models.DisbursementForm) (models.Recipient, error) {
	kind, err := models.ParseBeneficiaryKind(strings.ToLower(strings.TrimSpace(form.RecipientType)))
	if err != nil {
		return models.Recipient{}, err
	}
	source := models.SourceSelf
	if v := strings.ToLower(strings.TrimSpace(form.RecipientSource)); v != "" {
		if source, err = models.ParseRecipientSource(v); err != nil {
			return models.Recipient{}, err
		}
	}
	id, err := ParseID(form.RecipientID.String())
	if err != nil {
		return models.Recipient{}, err
	}
	return models.Recipient{Source: source, Kind: kind, ID: id}, nil
}

// GiveDonation выплачивает сумму из общего баланса. Выплата больше остатка
// отклоняется с models.ErrInsufficientBalance, несуществующий получатель -
// models.ErrNotFound.
func (s *Service) GiveDonation(ctx context.Context, session *models.Session, form models.DisbursementForm) (*models.Disbursement, error) {
	const op = "services.admin.GiveDonation"

	if session == nil || session.Role != models.RoleAdmin {
		return nil, fmt.Errorf("%s: %w", op, models.ErrForbidden)
	}
	recipient, err := ParseRecipient(form)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	amount, err := parsePositiveAmount(form.Amount.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var created *models.Disbursement
	err = s.ledgerTx(ctx, func(l Ledger) error {
		if err := l.LockLedger(ctx); err != nil {
			return err
		}
		name, email, err := l.ResolveRecipient(ctx, recipient)
		if err != nil {
			return err
		}
		received, err := l.SumDonations(ctx)
		if err != nil {
			return err
		}
		given, err := l.SumDisbursements(ctx)
		if err != nil {
			return err
		}
		if remaining := received - given; amount > remaining {
			return fmt.Errorf("%w: remaining %s, requested %s", models.ErrInsufficientBalance, remaining, amount)
		}
		created, err = l.CreateDisbursement(ctx, models.Disbursement{
			Recipient:      recipient,
			RecipientName:  name,
			RecipientEmail: email,
			Amount:         amount,
			Purpose:        strings.TrimSpace(form.Purpose),
			Notes:          strings.TrimSpace(form.Notes),
			GivenBy:        "Admin - " + session.FullName,
			Status:         models.StatusCompleted,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.DonationGiven(created.Amount)

	event := models.DonationEvent{
		ID:         created.ID,
		Name:       created.RecipientName,
		Email:      created.RecipientEmail,
		Amount:     created.Amount,
		Purpose:    created.Purpose,
		OccurredAt: created.GivenAt,
	}
	if err := s.publisher.Publish(ctx, models.RoutingDonationDisbursed, event); err != nil {
		s.metrics.EventPublishFailed()
		s.log.Error("failed to publish disbursement event", slog.Int64("id", created.ID), sl.Err(err))
	}
	return created, nil
}
