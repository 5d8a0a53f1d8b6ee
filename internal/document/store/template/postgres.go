package template

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	appmodels "caseflow/internal/application/models"
	"caseflow/internal/document/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
	txcontext "caseflow/pkg/platform/tx"

	"github.com/google/uuid"
)

// PostgresStore persists document templates. The unique index on
// (company_id, stage, name) backs CreateIfNameAvailable.
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

func (s *PostgresStore) CreateIfNameAvailable(ctx context.Context, tpl *models.Template) error {
	query := `
		INSERT INTO document_templates (id, company_id, stage, name, required, required_from, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(tpl.ID),
		uuid.UUID(tpl.CompanyID),
		string(tpl.Stage),
		tpl.Name,
		tpl.Required,
		string(tpl.RequiredFrom),
		tpl.CreatedAt,
		tpl.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert document template: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByCompanyAndID(ctx context.Context, companyID id.CompanyID, templateID id.DocumentTemplateID) (*models.Template, error) {
	query := `
		SELECT id, company_id, stage, name, required, required_from, created_at, updated_at
		FROM document_templates
		WHERE company_id = $1 AND id = $2
	`
	return scanTemplate(s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(companyID), uuid.UUID(templateID)))
}

func (s *PostgresStore) ListByCompanyAndStage(ctx context.Context, companyID id.CompanyID, stage appmodels.Stage) ([]*models.Template, error) {
	query := `
		SELECT id, company_id, stage, name, required, required_from, created_at, updated_at
		FROM document_templates
		WHERE company_id = $1 AND stage = $2
		ORDER BY created_at, id
	`
	return s.list(ctx, query, uuid.UUID(companyID), string(stage))
}

func (s *PostgresStore) ListByCompany(ctx context.Context, companyID id.CompanyID) ([]*models.Template, error) {
	query := `
		SELECT id, company_id, stage, name, required, required_from, created_at, updated_at
		FROM document_templates
		WHERE company_id = $1
		ORDER BY stage, created_at, id
	`
	return s.list(ctx, query, uuid.UUID(companyID))
}

func (s *PostgresStore) Update(ctx context.Context, companyID id.CompanyID, tpl *models.Template) error {
	query := `
		UPDATE document_templates
		SET stage = $3, name = $4, required = $5, required_from = $6, updated_at = $7
		WHERE company_id = $1 AND id = $2
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(companyID),
		uuid.UUID(tpl.ID),
		string(tpl.Stage),
		tpl.Name,
		tpl.Required,
		string(tpl.RequiredFrom),
		tpl.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("update document template: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) Delete(ctx context.Context, companyID id.CompanyID, templateID id.DocumentTemplateID) error {
	query := `DELETE FROM document_templates WHERE company_id = $1 AND id = $2`
	res, err := s.execer(ctx).ExecContext(ctx, query, uuid.UUID(companyID), uuid.UUID(templateID))
	if err != nil {
		return fmt.Errorf("delete document template: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]*models.Template, error) {
	rows, err := s.execer(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list document templates: %w", err)
	}
	defer rows.Close()

	var out []*models.Template
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, tpl)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (*models.Template, error) {
	var (
		tpl                   models.Template
		templateID, companyID uuid.UUID
		stage, requiredFrom   string
	)
	err := row.Scan(&templateID, &companyID, &stage, &tpl.Name, &tpl.Required, &requiredFrom, &tpl.CreatedAt, &tpl.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan document template: %w", err)
	}
	tpl.ID = id.DocumentTemplateID(templateID)
	tpl.CompanyID = id.CompanyID(companyID)
	tpl.Stage = appmodels.Stage(stage)
	tpl.RequiredFrom = appmodels.RequiredFrom(requiredFrom)
	return &tpl, nil
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}
