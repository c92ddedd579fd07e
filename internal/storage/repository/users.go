package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cyb3erasad/Donor-Management-System/internal/models"
)

const userColumns = `id, full_name, email, phone, password_hash, role, registered_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.Role, &u.RegisteredAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateUser сохраняет нового пользователя и возвращает его ID.
// Повторный email возвращает models.ErrDuplicateEmail.
func (q *Queries) CreateUser(ctx context.Context, user models.User) (int64, error) {
	const op = "storage.CreateUser"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	var newID int64
	query := `INSERT INTO users (full_name, email, phone, password_hash, role)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id`
	err := q.db.QueryRowContext(ctx, query,
		user.FullName, user.Email, user.Phone, user.PasswordHash, string(user.Role)).Scan(&newID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%s: %w", op, models.ErrDuplicateEmail)
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// GetUserByEmail возвращает пользователя по email.
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	u, err := scanUser(q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// GetUserByID возвращает пользователя по ID.
func (q *Queries) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUserByID"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	u, err := scanUser(q.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// ListUsersByRole возвращает пользователей с ролью role в порядке регистрации.
func (q *Queries) ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	const op = "storage.ListUsersByRole"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := q.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY id`, string(role))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	result := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, *u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// CountUsers возвращает общее число пользователей.
func (q *Queries) CountUsers(ctx context.Context) (int, error) {
	const op = "storage.CountUsers"
	if err := checkCtx(ctx, op); err != nil {
		return 0, err
	}

	var n int
	if err := q.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
