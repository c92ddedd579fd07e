package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cyb3erasad/Donor-Management-System/internal/lib/money"
	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

const disbursementColumns = `id, recipient_source, recipient_kind, recipient_id, recipient_name, recipient_email,
	amount, purpose, notes, given_at, given_by, status`

// ResolveRecipient находит получателя выплаты и возвращает его имя и email.
// Самостоятельно зарегистрированный получатель должен иметь роль, совпадающую с Kind.
func (q *Queries) ResolveRecipient(ctx context.Context, r models.Recipient) (string, string, error) {
	const op = "storage.ResolveRecipient"
	if err := checkCtx(ctx, op); err != nil {
		return "", "", err
	}

	switch r.Source {
	case models.SourceSelf:
		var name, email string
		err := q.db.QueryRowContext(ctx,
			`SELECT full_name, email FROM users WHERE id = $1 AND role = $2`,
			r.ID, string(r.Kind.Role())).Scan(&name, &email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return "", "", fmt.Errorf("%s: recipient %s: %w", op, r, models.ErrNotFound)
			}
			return "", "", fmt.Errorf("%s: %w", op, err)
		}
		return name, email, nil
	case models.SourceAdmin:
		b, err := q.GetBeneficiary(ctx, r.Kind, r.ID)
		if err != nil {
			return "", "", fmt.Errorf("%s: recipient %s: %w", op, r, err)
		}
		return b.Name, b.Email, nil
	}
	return "", "", fmt.Errorf("%s: %w: unknown recipient source %q", op, models.ErrValidation, r.Source)
}

// CreateDisbursement сохраняет выплату и возвращает её с ID и временем.
func (q *Queries) CreateDisbursement(ctx context.Context, d models.Disbursement) (*models.Disbursement, error) {
	const op = "storage.CreateDisbursement"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	if d.Status == "" {
		d.Status = models.StatusCompleted
	}

	query := `INSERT INTO received_donations
			      (recipient_source, recipient_kind, recipient_id, recipient_name, recipient_email,
			       amount, purpose, notes, given_by, status)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id, given_at`
	err := q.db.QueryRowContext(ctx, query,
		string(d.Recipient.Source), string(d.Recipient.Kind), d.Recipient.ID, d.RecipientName, d.RecipientEmail,
		int64(d.Amount), d.Purpose, d.Notes, d.GivenBy, d.Status).
		Scan(&d.ID, &d.GivenAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &d, nil
}

func (q *Queries) listDisbursements(ctx context.Context, op, where string, args ...any) ([]models.Disbursement, error) {
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := q.db.QueryContext(ctx,
		`SELECT `+disbursementColumns+` FROM received_donations `+where+` ORDER BY given_at DESC, id DESC`, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Disbursement, 0)
	for rows.Next() {
		var d models.Disbursement
		if err := rows.Scan(&d.ID, &d.Recipient.Source, &d.Recipient.Kind, &d.Recipient.ID,
			&d.RecipientName, &d.RecipientEmail, &d.Amount, &d.Purpose, &d.Notes,
			&d.GivenAt, &d.GivenBy, &d.Status); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListDisbursements возвращает все выплаты, новые первыми.
func (q *Queries) ListDisbursements(ctx context.Context) ([]models.Disbursement, error) {
	return q.listDisbursements(ctx, "storage.ListDisbursements", "")
}

// ListDisbursementsForRecipient возвращает выплаты одному получателю, новые первыми.
func (q *Queries) ListDisbursementsForRecipient(ctx context.Context, r models.Recipient) ([]models.Disbursement, error) {
	return q.listDisbursements(ctx, "storage.ListDisbursementsForRecipient",
		"WHERE recipient_source = $1 AND recipient_kind = $2 AND recipient_id = $3",
		string(r.Source), string(r.Kind), r.ID)
}

// SumDisbursements возвращает сумму всех выплат.
func (q *Queries) SumDisbursements(ctx context.Context) (money.Amount, error) {
	const op = "storage.SumDisbursements"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	var total int64
	if err := q.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0)::BIGINT FROM received_donations`).Scan(&total); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return money.Amount(total), nil
}
