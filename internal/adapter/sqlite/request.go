package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// RequestRepository implements domain.RequestRepository using SQLite.
type RequestRepository struct {
	db *sql.DB
}

// Compile-time check: RequestRepository implements domain.RequestRepository.
var _ domain.RequestRepository = (*RequestRepository)(nil)

func (r *RequestRepository) Create(ctx context.Context, req domain.ContractRequest) (domain.ContractRequest, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO contract_requests (requester_id, property_id, status, created_at)
		 VALUES (?, ?, ?, ?)`,
		req.RequesterID, req.PropertyID, string(req.Status),
		req.CreatedAt.Format(timeFormat),
	)
	if err != nil {
		return domain.ContractRequest{}, fmt.Errorf("inserting contract request: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.ContractRequest{}, fmt.Errorf("reading request id: %w", err)
	}

	req.ID = id
	return req, nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (domain.ContractRequest, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, requester_id, property_id, status, created_at
		 FROM contract_requests WHERE id = ?`, id,
	)

	var req domain.ContractRequest
	var status, createdAt string

	err := row.Scan(&req.ID, &req.RequesterID, &req.PropertyID, &status, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ContractRequest{}, domain.ErrRequestNotFound
		}
		return domain.ContractRequest{}, fmt.Errorf("scanning contract request: %w", err)
	}

	req.Status = domain.RequestStatus(status)
	req.CreatedAt, _ = time.Parse(timeFormat, createdAt)

	return req, nil
}

func (r *RequestRepository) FindByRequesterID(ctx context.Context, requesterID int64) ([]domain.ContractRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, requester_id, property_id, status, created_at
		 FROM contract_requests WHERE requester_id = ? ORDER BY id`, requesterID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying contract requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.ContractRequest
	for rows.Next() {
		var req domain.ContractRequest
		var status, createdAt string

		if err := rows.Scan(&req.ID, &req.RequesterID, &req.PropertyID, &status, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning contract request row: %w", err)
		}

		req.Status = domain.RequestStatus(status)
		req.CreatedAt, _ = time.Parse(timeFormat, createdAt)
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *RequestRepository) Update(ctx context.Context, req domain.ContractRequest) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE contract_requests SET status = ? WHERE id = ?`,
		string(req.Status), req.ID,
	)
	if err != nil {
		return fmt.Errorf("updating contract request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRequestNotFound
	}

	return nil
}
