package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
	"github.com/cyb3erasad/Donor-Management-System/internal/migrations"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// setupTestDatabase поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestDatabase(t *testing.T) *Storage {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "failed to start container")

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err)

	migrationsPath, err := filepath.Abs("../../../migrations")
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB, migrationsPath))
	require.NoError(t, CheckDatabaseReady(ctx, storage))

	t.Cleanup(func() {
		_ = storage.Close()
		_ = pgContainer.Terminate(ctx)
	})
	return storage
}

func TestIntegration_Ledger(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()

	donorID, err := s.CreateUser(ctx, models.User{FullName: "Ali", Email: "ali@x.org", PasswordHash: "h", Role: models.RoleDonor})
	require.NoError(t, err)
	seniorID, err := s.CreateUser(ctx, models.User{FullName: "Bilal", Email: "bilal@x.org", PasswordHash: "h", Role: models.RoleSenior})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, models.User{FullName: "Ali 2", Email: "ali@x.org", PasswordHash: "h", Role: models.RoleDonor})
	require.ErrorIs(t, err, models.ErrDuplicateEmail)

	for _, units := range []int64{600, 400} {
		_, err := s.CreateDonation(ctx, models.Donation{
			UserID: donorID, DonorName: "Ali", Email: "ali@x.org", Phone: "0300", CNIC: "1",
			Amount: money.FromUnits(units), PaymentMethod: "Cash",
		})
		require.NoError(t, err)
	}

	err = s.InTx(ctx, nil, func(q *Queries) error {
		require.NoError(t, q.LockLedger(ctx))
		name, email, err := q.ResolveRecipient(ctx, models.UserRecipient(models.KindSenior, seniorID))
		require.NoError(t, err)
		_, err = q.CreateDisbursement(ctx, models.Disbursement{
			Recipient:     models.UserRecipient(models.KindSenior, seniorID),
			RecipientName: name, RecipientEmail: email,
			Amount: money.FromUnits(300), Purpose: "Medicine", GivenBy: "Admin - Root",
		})
		return err
	})
	require.NoError(t, err)

	received, err := s.SumDonations(ctx)
	require.NoError(t, err)
	given, err := s.SumDisbursements(ctx)
	require.NoError(t, err)
	assert.Equal(t, money.FromUnits(700), received-given)

	mine, err := s.ListDisbursementsForRecipient(ctx, models.UserRecipient(models.KindSenior, seniorID))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Bilal", mine[0].RecipientName)

	_, _, err = s.ResolveRecipient(ctx, models.UserRecipient(models.KindSpecial, seniorID))
	assert.ErrorIs(t, err, models.ErrNotFound)

	donations, err := s.ListDonationsByUser(ctx, donorID)
	require.NoError(t, err)
	assert.Len(t, donations, 2)
}

func TestIntegration_BeneficiariesAndDonors(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()

	id, err := s.CreateBeneficiary(ctx, models.Beneficiary{Kind: models.KindSenior, Name: "Zainab", Email: "z@x.org", Age: 71, Contact: "0333"})
	require.NoError(t, err)

	list, err := s.ListBeneficiaries(ctx, models.KindSenior)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, s.DeleteBeneficiary(ctx, models.KindSenior, id))
	assert.ErrorIs(t, s.DeleteBeneficiary(ctx, models.KindSenior, id), models.ErrNotFound)

	donorID, err := s.CreateDonor(ctx, models.Donor{
		Name: "Omar", Age: 40, Gender: "Male", Contact: "0300", Address: "Lahore",
		DonationType: models.DonationTypeMonthly, Amount: money.FromUnits(5000), PreferredTime: "Morning",
	})
	require.NoError(t, err)
	donors, err := s.ListDonors(ctx)
	require.NoError(t, err)
	require.Len(t, donors, 1)
	assert.Equal(t, money.FromUnits(5000), donors[0].Amount)
	require.NoError(t, s.DeleteDonor(ctx, donorID))
}

func TestIntegration_RepeatableReadSnapshot(t *testing.T) {
	s := setupTestDatabase(t)
	ctx := context.Background()

	err := s.InTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, func(q *Queries) error {
		n, err := q.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		_, err = s.CreateUser(ctx, models.User{FullName: "Late", Email: "late@x.org", PasswordHash: "h", Role: models.RoleDonor})
		require.NoError(t, err)

		n, err = q.CountUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n, "snapshot must not see concurrent writes")
		return nil
	})
	require.NoError(t, err)
}
