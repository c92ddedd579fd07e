package repository

import (
	"context"
	"fmt"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

const donationColumns = `id, user_id, donor_name, email, phone, cnic, amount, payment_method, donated_at, status`

// CreateDonation сохраняет пожертвование и возвращает его с ID и временем.
func (q *Queries) CreateDonation(ctx context.Context, d models.Donation) (*models.Donation, error) {
	const op = "storage.CreateDonation"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	if d.Status == "" {
		d.Status = models.StatusCompleted
	}

	query := `INSERT INTO donations (user_id, donor_name, email, phone, cnic, amount, payment_method, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id, donated_at`
	err := q.db.QueryRowContext(ctx, query,
		d.UserID, d.DonorName, d.Email, d.Phone, d.CNIC, int64(d.Amount), d.PaymentMethod, d.Status).
		Scan(&d.ID, &d.DonatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &d, nil
}

func (q *Queries) listDonations(ctx context.Context, op, where string, args ...any) ([]models.Donation, error) {
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := q.db.QueryContext(ctx,
		`SELECT `+donationColumns+` FROM donations `+where+` ORDER BY donated_at DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Donation, 0)
	for rows.Next() {
		var d models.Donation
		if err := rows.Scan(&d.ID, &d.UserID, &d.DonorName, &d.Email, &d.Phone, &d.CNIC,
			&d.Amount, &d.PaymentMethod, &d.DonatedAt, &d.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListDonations возвращает все пожертвования, новые первыми.
func (q *Queries) ListDonations(ctx context.Context) ([]models.Donation, error) {
	return q.listDonations(ctx, "storage.ListDonations", "")
}

// ListDonationsByUser возвращает пожертвования пользователя, новые первыми.
func (q *Queries) ListDonationsByUser(ctx context.Context, userID int64) ([]models.Donation, error) {
	return q.listDonations(ctx, "storage.ListDonationsByUser", "WHERE user_id = $1", userID)
}

// SumDonations возвращает сумму всех пожертвований.
func (q *Queries) SumDonations(ctx context.Context) (money.Amount, error) {
	const op = "storage.SumDonations"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	var total int64
	if err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0)::BIGINT FROM donations`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return money.Amount(total), nil
}
