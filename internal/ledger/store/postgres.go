package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"caseflow/internal/ledger/models"
	id "caseflow/pkg/domain"
	txcontext "caseflow/pkg/platform/tx"
)

// PostgresStore persists ledger rows. Tenant scoping happens one level up
// through the application row.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) AddPayment(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (id, application_id, amount, currency, note, received_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(p.ID), uuid.UUID(p.ApplicationID), p.Amount, p.Currency, p.Note,
		p.ReceivedAt, p.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (s *PostgresStore) AddCost(ctx context.Context, c *models.Cost) error {
	query := `
		INSERT INTO costs (id, application_id, amount, currency, category, incurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(c.ID), uuid.UUID(c.ApplicationID), c.Amount, c.Currency, c.Category,
		c.IncurredAt, c.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert cost: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListPayments(ctx context.Context, appID id.ApplicationID) ([]*models.Payment, error) {
	query := `
		SELECT id, application_id, amount, currency, note, received_at, created_at
		FROM payments
		WHERE application_id = $1
		ORDER BY received_at, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, uuid.UUID(appID))
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []*models.Payment
	for rows.Next() {
		var (
			p                      models.Payment
			paymentID, application uuid.UUID
		)
		if err := rows.Scan(&paymentID, &application, &p.Amount, &p.Currency, &p.Note,
			&p.ReceivedAt, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		p.ID = id.PaymentID(paymentID)
		p.ApplicationID = id.ApplicationID(application)
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListCosts(ctx context.Context, appID id.ApplicationID) ([]*models.Cost, error) {
	query := `
		SELECT id, application_id, amount, currency, category, incurred_at, created_at
		FROM costs
		WHERE application_id = $1
		ORDER BY incurred_at, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, uuid.UUID(appID))
	if err != nil {
		return nil, fmt.Errorf("list costs: %w", err)
	}
	defer rows.Close()

	var out []*models.Cost
	for rows.Next() {
		var (
			c                   models.Cost
			costID, application uuid.UUID
		)
		if err := rows.Scan(&costID, &application, &c.Amount, &c.Currency, &c.Category,
			&c.IncurredAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cost: %w", err)
		}
		c.ID = id.CostID(costID)
		c.ApplicationID = id.ApplicationID(application)
		out = append(out, &c)
	}
	return out, rows.Err()
}
