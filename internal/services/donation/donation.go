// Package services реализует пожертвования доноров и дашборды донора и получателя.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
	"github.com/cyb3erasad/Donor-Management-System/internal/lib/sl"
	"github.com/cyb3erasad/Donor-Management-System/internal/metrics"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// Repository описывает запросы к пожертвованиям и выплатам.
type Repository interface {
	CreateDonation(ctx context.Context, d models.Donation) (*models.Donation, error)
	ListDonationsByUser(ctx context.Context, userID int64) ([]models.Donation, error)
	ListDisbursementsForRecipient(ctx context.Context, r models.Recipient) ([]models.Disbursement, error)
}

// Publisher отправляет события в брокер.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Service обрабатывает пожертвования доноров.
type Service struct {
	log       *slog.Logger
	repo      Repository
	publisher Publisher
	metrics   *metrics.Metrics
}

// New создаёт Service.
func New(log *slog.Logger, repo Repository, publisher Publisher, m *metrics.Metrics) *Service {
	return &Service{
		log:       log,
		repo:      repo,
		publisher: publisher,
		metrics:   m,
	}
}

// Submit сохраняет пожертвование донора из сессии. Сумма должна быть больше нуля.
func (s *Service) Submit(ctx context.Context, session *models.Session, form models.DonationForm) (*models.Donation, error) {
	const op = "services.donation.Submit"

	if session == nil || session.Role != models.RoleDonor {
		return nil, fmt.Errorf("%s: %w", op, models.ErrForbidden)
	}
	amount, err := money.Parse(form.Amount.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w: amount: %v", op, models.ErrValidation, err)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%s: %w: amount must be positive", op, models.ErrValidation)
	}

	d, err := s.repo.CreateDonation(ctx, models.Donation{
		UserID:        session.UserID,
		DonorName:     strings.TrimSpace(form.DonorName),
		Email:         strings.TrimSpace(form.Email),
		Phone:         strings.TrimSpace(form.Phone),
		CNIC:          strings.TrimSpace(form.CNIC),
		Amount:        amount,
		PaymentMethod: strings.TrimSpace(form.PaymentMethod),
		Status:        models.StatusCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.metrics.DonationReceived(d.Amount)

	s.publish(ctx, models.RoutingDonationReceived, models.DonationEvent{
		ID:         d.ID,
		Name:       d.DonorName,
		Email:      d.Email,
		Amount:     d.Amount,
		OccurredAt: d.DonatedAt,
	})
	return d, nil
}

// publish не возвращает ошибку: пожертвование уже сохранено.
func (s *Service) publish(ctx context.Context, key string, event models.DonationEvent) {
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.metrics.EventPublishFailed()
		s.log.Error("failed to publish donation event",
			slog.String("routing_key", key),
			slog.Int64("id", event.ID),
			sl.Err(err),
		)
	}
}

// DonorDashboard возвращает пожертвования донора, новые первыми, и их сумму.
func (s *Service) DonorDashboard(ctx context.Context, session *models.Session) (*models.DonorDashboard, error) {
	const op = "services.donation.DonorDashboard"

	if session == nil || session.Role != models.RoleDonor {
		return nil, fmt.Errorf("%s: %w", op, models.ErrForbidden)
	}
	donations, err := s.repo.ListDonationsByUser(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var total money.Amount
	for _, d := range donations {
		total += d.Amount
	}
	return &models.DonorDashboard{Donations: donations, TotalAmount: total}, nil
}

// BeneficiaryDashboard возвращает выплаты, адресованные пользователю сессии.
func (s *Service) BeneficiaryDashboard(ctx context.Context, session *models.Session) (*models.BeneficiaryDashboard, error) {
	const op = "services.donation.BeneficiaryDashboard"

	if session == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrForbidden)
	}
	kind, ok := session.Role.BeneficiaryKind()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, models.ErrForbidden)
	}
	list, err := s.repo.ListDisbursementsForRecipient(ctx, models.UserRecipient(kind, session.UserID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var total money.Amount
	for _, d := range list {
		total += d.Amount
	}
	return &models.BeneficiaryDashboard{Disbursements: list, TotalReceived: total}, nil
}
