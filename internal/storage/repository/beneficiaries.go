package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// beneficiaryTable сопоставляет вид подопечного таблице. Имя таблицы
// подставляется в текст запроса, поэтому допускаются только эти значения.
func beneficiaryTable(kind models.BeneficiaryKind) (string, error) {
	switch kind {
	case models.KindSenior:
		return "senior_citizens", nil
	case models.KindSpecial:
		return "special_persons", nil
	}
	return "", fmt.Errorf("%w: unknown beneficiary kind %q", models.ErrValidation, kind)
}

// CreateBeneficiary добавляет подопечного в таблицу его вида.
func (q *Queries) CreateBeneficiary(ctx context.Context, b models.Beneficiary) (int64, error) {
	const op = "storage.CreateBeneficiary"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}
	table, err := beneficiaryTable(b.Kind)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var newID int64
	query := `INSERT INTO ` + table + ` (name, email, age, contact)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id`
	if err := q.db.QueryRowContext(ctx, query, b.Name, b.Email, b.Age, b.Contact).Scan(&newID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListBeneficiaries возвращает подопечных вида kind в порядке добавления.
func (q *Queries) ListBeneficiaries(ctx context.Context, kind models.BeneficiaryKind) ([]models.Beneficiary, error) {
	const op = "storage.ListBeneficiaries"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	table, err := beneficiaryTable(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, email, age, contact, added_at FROM `+table+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Beneficiary, 0)
	for rows.Next() {
		b := models.Beneficiary{Kind: kind}
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Age, &b.Contact, &b.AddedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetBeneficiary возвращает подопечного по виду и ID.
func (q *Queries) GetBeneficiary(ctx context.Context, kind models.BeneficiaryKind, id int64) (*models.Beneficiary, error) {
	const op = "storage.GetBeneficiary"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	table, err := beneficiaryTable(kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	b := models.Beneficiary{Kind: kind}
	err = q.db.QueryRowContext(ctx,
		`SELECT id, name, email, age, contact, added_at FROM `+table+` WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.Email, &b.Age, &b.Contact, &b.AddedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &b, nil
}

// DeleteBeneficiary удаляет подопечного. Отсутствие записи: models.ErrNotFound.
func (q *Queries) DeleteBeneficiary(ctx context.Context, kind models.BeneficiaryKind, id int64) error {
	const op = "storage.DeleteBeneficiary"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}
	table, err := beneficiaryTable(kind)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := q.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return expectOneRow(res, op)
}

func expectOneRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return nil
}
