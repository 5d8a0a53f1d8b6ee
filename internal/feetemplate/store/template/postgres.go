package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"caseflow/internal/feetemplate/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
	txcontext "caseflow/pkg/platform/tx"

	"github.com/google/uuid"
)

// PostgresStore persists fee templates, scoped by company on every read.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) Create(ctx context.Context, tpl *models.Template) error {
	query := `
		INSERT INTO fee_templates (
			id, company_id, name, default_price, min_price, max_price, currency,
			nationality, service_type, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(tpl.ID),
		uuid.UUID(tpl.CompanyID),
		tpl.Name,
		tpl.DefaultPrice,
		tpl.MinPrice,
		tpl.MaxPrice,
		tpl.Currency,
		tpl.Nationality,
		tpl.ServiceType,
		tpl.CreatedAt,
		tpl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fee template: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByCompanyAndID(ctx context.Context, companyID id.CompanyID, templateID id.FeeTemplateID) (*models.Template, error) {
	query := `
		SELECT id, company_id, name, default_price, min_price, max_price, currency,
		       nationality, service_type, created_at, updated_at
		FROM fee_templates
		WHERE company_id = $1 AND id = $2
	`
	var (
		tpl                models.Template
		tplID, companyUUID uuid.UUID
	)
	err := s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(companyID), uuid.UUID(templateID)).Scan(
		&tplID, &companyUUID, &tpl.Name, &tpl.DefaultPrice, &tpl.MinPrice, &tpl.MaxPrice,
		&tpl.Currency, &tpl.Nationality, &tpl.ServiceType, &tpl.CreatedAt, &tpl.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan fee template: %w", err)
	}
	tpl.ID = id.FeeTemplateID(tplID)
	tpl.CompanyID = id.CompanyID(companyUUID)
	return &tpl, nil
}

func (s *PostgresStore) ListByCompany(ctx context.Context, companyID id.CompanyID) ([]*models.Template, error) {
	query := `
		SELECT id, company_id, name, default_price, min_price, max_price, currency,
		       nationality, service_type, created_at, updated_at
		FROM fee_templates
		WHERE company_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, uuid.UUID(companyID))
	if err != nil {
		return nil, fmt.Errorf("list fee templates: %w", err)
	}
	defer rows.Close()

	var out []*models.Template
	for rows.Next() {
		var (
			tpl                models.Template
			tplID, companyUUID uuid.UUID
		)
		if err := rows.Scan(
			&tplID, &companyUUID, &tpl.Name, &tpl.DefaultPrice, &tpl.MinPrice, &tpl.MaxPrice,
			&tpl.Currency, &tpl.Nationality, &tpl.ServiceType, &tpl.CreatedAt, &tpl.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan fee template: %w", err)
		}
		tpl.ID = id.FeeTemplateID(tplID)
		tpl.CompanyID = id.CompanyID(companyUUID)
		out = append(out, &tpl)
	}
	return out, rows.Err()
}
