package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"caseflow/internal/directory/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
	txcontext "caseflow/pkg/platform/tx"

	"github.com/google/uuid"
)

// PostgresStore reads directory rows. Lookups are unscoped: the application
// service compares the returned CompanyID against the caller's tenant, which
// is how cross-tenant references are detected rather than silently treated
// as absent.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type dbExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *PostgresStore) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

func (s *PostgresStore) FindCandidate(ctx context.Context, candidateID id.CandidateID) (*models.Candidate, error) {
	query := `SELECT id, company_id, first_name, last_name, nationality, created_at FROM candidates WHERE id = $1`
	var (
		c              models.Candidate
		cID, companyID uuid.UUID
	)
	err := s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(candidateID)).Scan(
		&cID, &companyID, &c.FirstName, &c.LastName, &c.Nationality, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan candidate: %w", err)
	}
	c.ID = id.CandidateID(cID)
	c.CompanyID = id.CompanyID(companyID)
	return &c, nil
}

func (s *PostgresStore) FindClient(ctx context.Context, clientID id.ClientID) (*models.Client, error) {
	query := `SELECT id, company_id, name, created_at FROM clients WHERE id = $1`
	var (
		c              models.Client
		cID, companyID uuid.UUID
	)
	err := s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(clientID)).Scan(
		&cID, &companyID, &c.Name, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan client: %w", err)
	}
	c.ID = id.ClientID(cID)
	c.CompanyID = id.CompanyID(companyID)
	return &c, nil
}

func (s *PostgresStore) FindBroker(ctx context.Context, brokerID id.BrokerID) (*models.Broker, error) {
	query := `SELECT id, company_id, name, phone, email, address, created_at FROM brokers WHERE id = $1`
	var (
		b              models.Broker
		bID, companyID uuid.UUID
	)
	err := s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(brokerID)).Scan(
		&bID, &companyID, &b.Name, &b.Contact.Phone, &b.Contact.Email, &b.Contact.Address, &b.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan broker: %w", err)
	}
	b.ID = id.BrokerID(bID)
	b.CompanyID = id.CompanyID(companyID)
	return &b, nil
}
