package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// UserRepository implements domain.UserRepository using SQLite.
type UserRepository struct {
	db *sql.DB
}

// Compile-time check: UserRepository implements domain.UserRepository.
var _ domain.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO users (email, role) VALUES (?, ?)`,
		u.Email, string(u.Role),
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("inserting user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, fmt.Errorf("reading user id: %w", err)
	}

	u.ID = id
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, email, role FROM users WHERE id = ?`, id,
	))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx,
		`SELECT id, email, role FROM users WHERE email = ?`, email,
	))
}

func (r *UserRepository) scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var role string

	err := row.Scan(&u.ID, &u.Email, &role)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("scanning user: %w", err)
	}

	u.Role = domain.Role(role)
	return u, nil
}
