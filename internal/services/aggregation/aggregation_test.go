package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
	services "github.com/cyb3erasad/Donor-Management-System/internal/services/aggregation"
)

type ReaderMock struct {
	mock.Mock
}

func (m *ReaderMock) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *ReaderMock) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *ReaderMock) ListBeneficiaries(ctx context.Context, kind models.BeneficiaryKind) ([]models.Beneficiary, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).([]models.Beneficiary), args.Error(1)
}

func (m *ReaderMock) ListDonors(ctx context.Context) ([]models.Donor, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Donor), args.Error(1)
}

func (m *ReaderMock) ListDonations(ctx context.Context) ([]models.Donation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Donation), args.Error(1)
}

func (m *ReaderMock) ListDisbursements(ctx context.Context) ([]models.Disbursement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Disbursement), args.Error(1)
}

func snapshotOver(r services.SnapshotReader, calls *int) services.Snapshot {
	return func(_ context.Context, fn func(services.SnapshotReader) error) error {
		*calls++
		return fn(r)
	}
}

var day = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestMergeBeneficiaries(t *testing.T) {
	admin := []models.Beneficiary{
		{ID: 1, Kind: models.KindSenior, Name: "Zainab", Email: "z@x.org", Age: 71, Contact: "0333", AddedAt: day},
		{ID: 2, Kind: models.KindSenior, Name: "Karim", Email: "k@x.org", Age: 80, Contact: "0334", AddedAt: day},
	}
	self := []models.User{
		{ID: 1, FullName: "Bilal", Email: "b@x.org", Phone: "", RegisteredAt: day},
		{ID: 9, FullName: "Hina", Email: "h@x.org", Phone: "0345", RegisteredAt: day},
	}

	got := services.MergeBeneficiaries(models.KindSenior, admin, self)
	require.Len(t, got, 4)

	assert.Equal(t, models.SourceAdmin, got[0].Source)
	assert.Equal(t, "71", got[0].Age)
	assert.Equal(t, "Senior Citizen", got[0].RoleType)
	assert.Equal(t, int64(2), got[1].ID)

	assert.Equal(t, models.SourceSelf, got[2].Source)
	assert.Equal(t, models.Unknown, got[2].Age)
	assert.Equal(t, models.Unknown, got[2].Contact)
	assert.Equal(t, "0345", got[3].Contact)

	// одинаковый ID в разных источниках различается по ссылке на получателя
	assert.NotEqual(t, got[0].Recipient(), got[2].Recipient())
	assert.Equal(t, models.UserRecipient(models.KindSenior, 1), got[2].Recipient())
}

func TestMergeBeneficiaries_Empty(t *testing.T) {
	got := services.MergeBeneficiaries(models.KindSpecial, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMergeDonors(t *testing.T) {
	admin := []models.Donor{{ID: 3, Name: "Omar", Age: 40, Gender: "Male", Contact: "0300", Address: "Lahore",
		DonationType: models.DonationTypeMonthly, Amount: money.FromUnits(5000), PreferredTime: "Morning", AddedAt: day}}
	self := []models.User{{ID: 4, FullName: "Ali", Email: "a@x.org", RegisteredAt: day}}

	got := services.MergeDonors(admin, self)
	require.Len(t, got, 2)

	assert.Equal(t, "40", got[0].Age)
	assert.Equal(t, money.FromUnits(5000), got[0].Amount)
	assert.Equal(t, models.SourceAdmin, got[0].Source)

	assert.Equal(t, models.SourceSelf, got[1].Source)
	assert.Equal(t, models.DonationTypeSelfRegistered, got[1].DonationType)
	assert.Equal(t, money.Amount(0), got[1].Amount)
	for _, v := range []string{got[1].Age, got[1].Gender, got[1].Address, got[1].PreferredTime, got[1].Contact} {
		assert.Equal(t, models.Unknown, v)
	}
}

func TestBalance(t *testing.T) {
	donations := []models.Donation{{Amount: money.FromUnits(600)}, {Amount: money.FromUnits(400)}}
	disbursements := []models.Disbursement{{Amount: money.FromUnits(100)}, {Amount: money.FromUnits(200)}}

	got := services.Balance(donations, disbursements)
	assert.Equal(t, money.FromUnits(1000), got.Received)
	assert.Equal(t, money.FromUnits(300), got.Given)
	assert.Equal(t, money.FromUnits(700), got.Remaining)

	overdrawn := services.Balance(nil, []models.Disbursement{{Amount: 50}})
	assert.Equal(t, money.Amount(-50), overdrawn.Remaining)
}

func TestService_AdminDashboard(t *testing.T) {
	r := new(ReaderMock)
	r.On("CountUsers", mock.Anything).Return(4, nil)
	r.On("ListBeneficiaries", mock.Anything, models.KindSenior).
		Return([]models.Beneficiary{{ID: 1, Name: "Zainab", Age: 71}}, nil)
	r.On("ListBeneficiaries", mock.Anything, models.KindSpecial).Return([]models.Beneficiary{}, nil)
	r.On("ListUsersByRole", mock.Anything, models.RoleSenior).
		Return([]models.User{{ID: 2, FullName: "Bilal"}}, nil)
	r.On("ListUsersByRole", mock.Anything, models.RoleSpecial).
		Return([]models.User{{ID: 3, FullName: "Sara"}}, nil)
	r.On("ListUsersByRole", mock.Anything, models.RoleDonor).
		Return([]models.User{{ID: 4, FullName: "Ali"}}, nil)
	r.On("ListDonors", mock.Anything).Return([]models.Donor{}, nil)
	r.On("ListDonations", mock.Anything).
		Return([]models.Donation{{ID: 1, Amount: money.FromUnits(600)}, {ID: 2, Amount: money.FromUnits(400)}}, nil)
	r.On("ListDisbursements", mock.Anything).
		Return([]models.Disbursement{{ID: 1, Amount: money.FromUnits(300)}}, nil)

	calls := 0
	dash, err := services.New(snapshotOver(r, &calls)).AdminDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "all reads happen in one snapshot")

	assert.Equal(t, 4, dash.TotalUsers)
	assert.Equal(t, money.FromUnits(1000), dash.TotalDonationsReceived)
	assert.Equal(t, money.FromUnits(300), dash.TotalDonationsGiven)
	assert.Equal(t, money.FromUnits(700), dash.RemainingBalance)
	assert.Equal(t, 2, dash.TotalSeniors)
	assert.Equal(t, 1, dash.TotalSpecial)
	assert.Equal(t, 1, dash.TotalDonors)
	assert.Len(t, dash.Donations, 2)
	assert.Len(t, dash.Disbursements, 1)
	r.AssertExpectations(t)
}

func TestService_AdminDashboard_ReadError(t *testing.T) {
	r := new(ReaderMock)
	r.On("CountUsers", mock.Anything).Return(0, errors.New("db down"))

	calls := 0
	dash, err := services.New(snapshotOver(r, &calls)).AdminDashboard(context.Background())
	assert.Nil(t, dash)
	assert.ErrorContains(t, err, "db down")
}
