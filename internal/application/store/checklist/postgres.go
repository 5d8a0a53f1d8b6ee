package checklist

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"caseflow/internal/application/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
	txcontext "caseflow/pkg/platform/tx"

	"github.com/google/uuid"
)

// PostgresStore persists checklist items. Tenant scoping happens one level up
// through the application row; items are only reachable through an
// application the caller already loaded within their company.
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

// CreateIfAbsent inserts the item unless one already exists for the same
// (application, document name, stage); the unique index carries the
// idempotence guarantee. Returns true when a row was created.
func (s *PostgresStore) CreateIfAbsent(ctx context.Context, item *models.ChecklistItem) (bool, error) {
	query := `
		INSERT INTO checklist_items (
			id, application_id, document_name, status, stage, required_from, required,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (application_id, document_name, stage) DO NOTHING
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(item.ID),
		uuid.UUID(item.ApplicationID),
		item.DocumentName,
		string(item.Status),
		string(item.Stage),
		string(item.RequiredFrom),
		item.Required,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert checklist item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return n == 1, nil
}

func (s *PostgresStore) ListByApplication(ctx context.Context, appID id.ApplicationID) ([]*models.ChecklistItem, error) {
	query := `
		SELECT id, application_id, document_name, status, stage, required_from, required,
		       created_at, updated_at
		FROM checklist_items
		WHERE application_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.execer(ctx).QueryContext(ctx, query, uuid.UUID(appID))
	if err != nil {
		return nil, fmt.Errorf("list checklist items: %w", err)
	}
	defer rows.Close()

	var out []*models.ChecklistItem
	for rows.Next() {
		var (
			item                        models.ChecklistItem
			itemID, applicationID       uuid.UUID
			status, stage, requiredFrom string
		)
		if err := rows.Scan(
			&itemID, &applicationID, &item.DocumentName, &status, &stage, &requiredFrom,
			&item.Required, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan checklist item: %w", err)
		}
		item.ID = id.ChecklistItemID(itemID)
		item.ApplicationID = id.ApplicationID(applicationID)
		item.Status = models.DocumentStatus(status)
		item.Stage = models.Stage(stage)
		item.RequiredFrom = models.RequiredFrom(requiredFrom)
		out = append(out, &item)
	}
	return out, rows.Err()
}

func (s *PostgresStore) UpdateStatus(ctx context.Context, appID id.ApplicationID, itemID id.ChecklistItemID, status models.DocumentStatus, updatedAt time.Time) error {
	query := `
		UPDATE checklist_items SET status = $3, updated_at = $4
		WHERE application_id = $1 AND id = $2
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(appID), uuid.UUID(itemID), string(status), updatedAt)
	if err != nil {
		return fmt.Errorf("update checklist item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteByApplication(ctx context.Context, appID id.ApplicationID) error {
	query := `DELETE FROM checklist_items WHERE application_id = $1`
	if _, err := s.execer(ctx).ExecContext(ctx, query, uuid.UUID(appID)); err != nil {
		return fmt.Errorf("delete checklist items: %w", err)
	}
	return nil
}
