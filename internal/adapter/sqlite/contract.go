package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// ContractRepository implements domain.ContractRepository using SQLite.
// Contracts are insert-only; the id is the originating request's id.
type ContractRepository struct {
	db *sql.DB
}

// Compile-time check: ContractRepository implements domain.ContractRepository.
var _ domain.ContractRepository = (*ContractRepository)(nil)

func (r *ContractRepository) Create(ctx context.Context, c domain.Contract) (domain.Contract, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO contracts (id, reference, owner_id, requester_id, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Reference, c.OwnerID, c.RequesterID, string(c.Status),
		c.CreatedAt.Format(timeFormat),
	)
	if err != nil {
		return domain.Contract{}, fmt.Errorf("inserting contract: %w", err)
	}

	return c, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id int64) (domain.Contract, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, reference, owner_id, requester_id, status, created_at
		 FROM contracts WHERE id = ?`, id,
	)

	var c domain.Contract
	var status, createdAt string

	err := row.Scan(&c.ID, &c.Reference, &c.OwnerID, &c.RequesterID, &status, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Contract{}, domain.ErrContractNotFound
		}
		return domain.Contract{}, fmt.Errorf("scanning contract: %w", err)
	}

	c.Status = domain.ContractStatus(status)
	c.CreatedAt, _ = time.Parse(timeFormat, createdAt)

	return c, nil
}
