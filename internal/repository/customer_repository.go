package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/khairulanwar/birthday-engine/internal/models"
)

type customerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

const customerColumns = `id, tenant_id, name, sender_name, save_name, phone, birth_date, age, pg_code, created_at, updated_at`

// GetBirthdayCandidates retrieves all customers that could ever receive a
// birthday message: phone and birth date both present.
func (r *customerRepository) GetBirthdayCandidates(ctx context.Context) ([]*models.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE phone IS NOT NULL
		  AND birth_date IS NOT NULL
		ORDER BY tenant_id, created_at ASC
	`

	var customers []*models.Customer
	if err := r.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, fmt.Errorf("failed to get birthday candidates: %w", err)
	}

	return customers, nil
}

func (r *customerRepository) GetByID(ctx context.Context, tenantID, customerID uuid.UUID) (*models.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE tenant_id = $1 AND id = $2
	`

	var customer models.Customer
	err := r.db.GetContext(ctx, &customer, query, tenantID, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

func (r *customerRepository) GetByIDs(ctx context.Context, tenantID uuid.UUID, customerIDs []uuid.UUID) ([]*models.Customer, error) {
	if len(customerIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT `+customerColumns+`
		FROM customers
		WHERE tenant_id = ? AND id IN (?)
	`, tenantID, customerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build customers query: %w", err)
	}

	var customers []*models.Customer
	if err := r.db.SelectContext(ctx, &customers, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}
