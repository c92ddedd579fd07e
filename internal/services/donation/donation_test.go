package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
	"github.com/cyb3erasad/Donor-Management-System/internal/metrics"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
	services "github.com/cyb3erasad/Donor-Management-System/internal/services/donation"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateDonation(ctx context.Context, d models.Donation) (*models.Donation, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Donation), args.Error(1)
}

func (m *RepoMock) ListDonationsByUser(ctx context.Context, userID int64) ([]models.Donation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Donation), args.Error(1)
}

func (m *RepoMock) ListDisbursementsForRecipient(ctx context.Context, r models.Recipient) ([]models.Disbursement, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Disbursement), args.Error(1)
}

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(ctx context.Context, routingKey string, message any) error {
	args := m.Called(ctx, routingKey, message)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func donorSession() *models.Session {
	return &models.Session{UserID: 5, FullName: "Ali", Email: "ali@x.org", Role: models.RoleDonor}
}

func validForm(amount string) models.DonationForm {
	return models.DonationForm{
		DonorName:     "Ali",
		Email:         "ali@x.org",
		Phone:         "0300",
		CNIC:          "12345",
		Amount:        json.Number(amount),
		PaymentMethod: "Bank",
	}
}

func TestService_Submit(t *testing.T) {
	repo := new(RepoMock)
	pub := new(PublisherMock)
	reg := prometheus.NewRegistry()
	svc := services.New(newNoopLogger(), repo, pub, metrics.New(reg))

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.On("CreateDonation", mock.Anything, mock.MatchedBy(func(d models.Donation) bool {
		return d.UserID == 5 && d.Amount == money.FromUnits(50) && d.Status == models.StatusCompleted
	})).Return(&models.Donation{ID: 11, UserID: 5, DonorName: "Ali", Email: "ali@x.org", Amount: money.FromUnits(50), DonatedAt: at}, nil).Once()
	pub.On("Publish", mock.Anything, models.RoutingDonationReceived, models.DonationEvent{
		ID: 11, Name: "Ali", Email: "ali@x.org", Amount: money.FromUnits(50), OccurredAt: at,
	}).Return(nil).Once()

	d, err := svc.Submit(context.Background(), donorSession(), validForm("50.0"))
	require.NoError(t, err)
	assert.Equal(t, int64(11), d.ID)

	repo.AssertExpectations(t)
	pub.AssertExpectations(t)

	expected := `
# HELP careconnect_donations_total Number of donations submitted by donors.
# TYPE careconnect_donations_total counter
careconnect_donations_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "careconnect_donations_total"))
}

func TestService_Submit_PublishFailureIgnored(t *testing.T) {
	repo := new(RepoMock)
	pub := new(PublisherMock)
	reg := prometheus.NewRegistry()
	svc := services.New(newNoopLogger(), repo, pub, metrics.New(reg))

	repo.On("CreateDonation", mock.Anything, mock.Anything).
		Return(&models.Donation{ID: 1, Amount: money.FromUnits(10)}, nil).Once()
	pub.On("Publish", mock.Anything, models.RoutingDonationReceived, mock.Anything).
		Return(errors.New("broker down")).Once()

	_, err := svc.Submit(context.Background(), donorSession(), validForm("10"))
	require.NoError(t, err)

	expected := `
# HELP careconnect_event_publish_errors_total Donation events that could not be published.
# TYPE careconnect_event_publish_errors_total counter
careconnect_event_publish_errors_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "careconnect_event_publish_errors_total"))
}

func TestService_Submit_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		session *models.Session
		amount  string
		wantErr error
	}{
		{name: "no session", session: nil, amount: "10", wantErr: models.ErrForbidden},
		{name: "not a donor", session: &models.Session{UserID: 1, Role: models.RoleSenior}, amount: "10", wantErr: models.ErrForbidden},
		{name: "malformed amount", session: donorSession(), amount: "ten", wantErr: models.ErrValidation},
		{name: "negative amount", session: donorSession(), amount: "-5", wantErr: models.ErrValidation},
		{name: "zero amount", session: donorSession(), amount: "0", wantErr: models.ErrValidation},
		{name: "too many decimals", session: donorSession(), amount: "1.005", wantErr: models.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			pub := new(PublisherMock)
			svc := services.New(newNoopLogger(), repo, pub, metrics.Noop())

			_, err := svc.Submit(context.Background(), tt.session, validForm(tt.amount))
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "CreateDonation", mock.Anything, mock.Anything)
			pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestService_Submit_RepoError(t *testing.T) {
	repo := new(RepoMock)
	pub := new(PublisherMock)
	svc := services.New(newNoopLogger(), repo, pub, metrics.Noop())

	dbErr := errors.New("db down")
	repo.On("CreateDonation", mock.Anything, mock.Anything).Return(nil, dbErr).Once()

	_, err := svc.Submit(context.Background(), donorSession(), validForm("10"))
	assert.ErrorIs(t, err, dbErr)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_DonorDashboard(t *testing.T) {
	repo := new(RepoMock)
	svc := services.New(newNoopLogger(), repo, new(PublisherMock), metrics.Noop())

	repo.On("ListDonationsByUser", mock.Anything, int64(5)).Return([]models.Donation{
		{ID: 2, UserID: 5, Amount: money.FromUnits(30)},
		{ID: 1, UserID: 5, Amount: money.Amount(1050)},
	}, nil).Once()

	dash, err := svc.DonorDashboard(context.Background(), donorSession())
	require.NoError(t, err)
	assert.Len(t, dash.Donations, 2)
	assert.Equal(t, money.Amount(4050), dash.TotalAmount)

	_, err = svc.DonorDashboard(context.Background(), &models.Session{Role: models.RoleAdmin})
	assert.ErrorIs(t, err, models.ErrForbidden)
}

func TestService_BeneficiaryDashboard(t *testing.T) {
	tests := []struct {
		name string
		role models.Role
		kind models.BeneficiaryKind
	}{
		{name: "senior", role: models.RoleSenior, kind: models.KindSenior},
		{name: "special", role: models.RoleSpecial, kind: models.KindSpecial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			svc := services.New(newNoopLogger(), repo, new(PublisherMock), metrics.Noop())

			repo.On("ListDisbursementsForRecipient", mock.Anything, models.UserRecipient(tt.kind, 9)).
				Return([]models.Disbursement{
					{ID: 1, Amount: money.FromUnits(100)},
					{ID: 2, Amount: money.FromUnits(200)},
				}, nil).Once()

			dash, err := svc.BeneficiaryDashboard(context.Background(), &models.Session{UserID: 9, Role: tt.role})
			require.NoError(t, err)
			assert.Equal(t, money.FromUnits(300), dash.TotalReceived)
			repo.AssertExpectations(t)
		})
	}
}

func TestService_BeneficiaryDashboard_Forbidden(t *testing.T) {
	repo := new(RepoMock)
	svc := services.New(newNoopLogger(), repo, new(PublisherMock), metrics.Noop())

	for _, s := range []*models.Session{nil, {Role: models.RoleDonor}, {Role: models.RoleAdmin}} {
		_, err := svc.BeneficiaryDashboard(context.Background(), s)
		assert.ErrorIs(t, err, models.ErrForbidden)
	}
	repo.AssertNotCalled(t, "ListDisbursementsForRecipient", mock.Anything, mock.Anything)
}
