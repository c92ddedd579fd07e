package repository

import (
	"context"
	"fmt"

	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

// CreateDonor добавляет донора, внесённого администратором.
func (q *Queries) CreateDonor(ctx context.Context, d models.Donor) (int64, error) {
	const op = "storage.CreateDonor"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	var newID int64
	query := `INSERT INTO donors (name, age, gender, contact, address, donation_type, amount, preferred_time)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`
	err := q.db.QueryRowContext(ctx, query,
		d.Name, d.Age, d.Gender, d.Contact, d.Address, d.DonationType, int64(d.Amount), d.PreferredTime).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ListDonors возвращает доноров в порядке добавления.
func (q *Queries) ListDonors(ctx context.Context) ([]models.Donor, error) {
	const op = "storage.ListDonors"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, age, gender, contact, address, donation_type, amount, preferred_time, added_at
		 FROM donors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.Donor, 0)
	for rows.Next() {
		var d models.Donor
		if err := rows.Scan(&d.ID, &d.Name, &d.Age, &d.Gender, &d.Contact, &d.Address,
			&d.DonationType, &d.Amount, &d.PreferredTime, &d.AddedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// DeleteDonor удаляет донора. Отсутствие записи: models.ErrNotFound.
func (q *Queries) DeleteDonor(ctx context.Context, id int64) error {
	const op = "storage.DeleteDonor"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := q.db.ExecContext(ctx, `DELETE FROM donors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return expectOneRow(res, op)
}
