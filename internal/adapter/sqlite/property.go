package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/neomorfeo/leaseflow/internal/domain"
)

// PropertyRepository implements domain.PropertyRepository using SQLite.
type PropertyRepository struct {
	db *sql.DB
}

// Compile-time check: PropertyRepository implements domain.PropertyRepository.
var _ domain.PropertyRepository = (*PropertyRepository)(nil)

const propertyColumns = `id, owner_id, city, district, deposit, monthly_rent, property_type, deal_type, status, created_at, updated_at`

func (r *PropertyRepository) Create(ctx context.Context, p domain.Property) (domain.Property, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO properties (owner_id, city, district, deposit, monthly_rent, property_type, deal_type, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.OwnerID, p.Location.City, p.Location.District,
		p.Price.Deposit, p.Price.MonthlyRent,
		string(p.PropertyType), string(p.DealType), string(p.Status),
		p.CreatedAt.Format(timeFormat),
		p.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return domain.Property{}, fmt.Errorf("inserting property: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Property{}, fmt.Errorf("reading property id: %w", err)
	}

	p.ID = id
	return p, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (domain.Property, error) {
	return r.scanProperty(r.db.QueryRowContext(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE id = ?`, id,
	))
}

// FindByFilter builds the search query from the supplied predicates. Every
// supplied field is ANDed, absent fields impose no constraint, and COMPLETED
// rows never match. Price bounds compare against monthly rent for MONTHLY
// rows and against deposit otherwise.
func (r *PropertyRepository) FindByFilter(ctx context.Context, f domain.PropertyFilter) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE status != 'COMPLETED'`
	var args []any

	if f.City != nil {
		query += ` AND city = ?`
		args = append(args, *f.City)
	}

	if f.District != nil {
		query += ` AND district = ?`
		args = append(args, *f.District)
	}

	if len(f.PropertyTypes) > 0 {
		query += ` AND property_type IN (` + placeholders(len(f.PropertyTypes)) + `)`
		for _, t := range f.PropertyTypes {
			args = append(args, string(t))
		}
	}

	if len(f.DealTypes) > 0 {
		query += ` AND deal_type IN (` + placeholders(len(f.DealTypes)) + `)`
		for _, t := range f.DealTypes {
			args = append(args, string(t))
		}
	}

	const priceExpr = `CASE WHEN deal_type = 'MONTHLY' THEN monthly_rent ELSE deposit END`

	if f.MinPrice != nil {
		query += ` AND ` + priceExpr + ` >= ?`
		args = append(args, *f.MinPrice)
	}

	if f.MaxPrice != nil {
		query += ` AND ` + priceExpr + ` <= ?`
		args = append(args, *f.MaxPrice)
	}

	query += ` ORDER BY id`

	return r.queryProperties(ctx, query, args...)
}

func (r *PropertyRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]domain.Property, error) {
	return r.queryProperties(ctx,
		`SELECT `+propertyColumns+` FROM properties WHERE owner_id = ? ORDER BY id`, ownerID,
	)
}

func (r *PropertyRepository) Update(ctx context.Context, p domain.Property) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE properties SET deposit = ?, monthly_rent = ?, deal_type = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		p.Price.Deposit, p.Price.MonthlyRent, string(p.DealType), string(p.Status),
		time.Now().UTC().Format(timeFormat), p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}

	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM properties WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting property: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}

	return nil
}

// TransitionStatus performs the conditional status write. The WHERE clause
// carries the expected prior status, so of two racing callers exactly one
// sees a row change. SQLite serializes individual statements, which is all
// this primitive needs.
func (r *PropertyRepository) TransitionStatus(ctx context.Context, id int64, from, to domain.PropertyStatus) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE properties SET status = ?, updated_at = ? WHERE id = ? AND status = ?`,
		string(to), time.Now().UTC().Format(timeFormat), id, string(from),
	)
	if err != nil {
		return false, fmt.Errorf("transitioning property status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking rows affected: %w", err)
	}

	return rows > 0, nil
}

func (r *PropertyRepository) queryProperties(ctx context.Context, query string, args ...any) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	var properties []domain.Property
	for rows.Next() {
		p, err := scanPropertyFromRows(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}

	return properties, rows.Err()
}

func (r *PropertyRepository) scanProperty(row *sql.Row) (domain.Property, error) {
	var p domain.Property
	var propertyType, dealType, status, createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.OwnerID, &p.Location.City, &p.Location.District,
		&p.Price.Deposit, &p.Price.MonthlyRent,
		&propertyType, &dealType, &status, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Property{}, domain.ErrPropertyNotFound
		}
		return domain.Property{}, fmt.Errorf("scanning property: %w", err)
	}

	p.PropertyType = domain.PropertyType(propertyType)
	p.DealType = domain.DealType(dealType)
	p.Status = domain.PropertyStatus(status)
	p.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	p.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)

	return p, nil
}

func scanPropertyFromRows(rows *sql.Rows) (domain.Property, error) {
	var p domain.Property
	var propertyType, dealType, status, createdAt, updatedAt string

	err := rows.Scan(&p.ID, &p.OwnerID, &p.Location.City, &p.Location.District,
		&p.Price.Deposit, &p.Price.MonthlyRent,
		&propertyType, &dealType, &status, &createdAt, &updatedAt)
	if err != nil {
		return domain.Property{}, fmt.Errorf("scanning property row: %w", err)
	}

	p.PropertyType = domain.PropertyType(propertyType)
	p.DealType = domain.DealType(dealType)
	p.Status = domain.PropertyStatus(status)
	p.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	p.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)

	return p, nil
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
