package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"caseflow/internal/application/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
	txcontext "caseflow/pkg/platform/tx"

	"github.com/google/uuid"
)

// PostgresStore persists applications. Every query predicate includes
// company_id; a row outside the caller's company is indistinguishable from an
// absent one.
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

const applicationColumns = `
	id, company_id, shareable_link, status, type,
	candidate_id, client_id, from_client_id, broker_id, fee_template_id,
	final_fee_amount, lawyer_service_requested, lawyer_fee_cost, lawyer_fee_charge,
	exact_arrival_date, permit_expiry_date, labour_permit_date, residency_permit_date,
	created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, app *models.Application) error {
	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(app.ID),
		uuid.UUID(app.CompanyID),
		app.ShareableLink,
		string(app.Status),
		string(app.Type),
		uuid.UUID(app.CandidateID),
		uuid.UUID(app.ClientID),
		optionalUUID((*uuid.UUID)(app.FromClientID)),
		optionalUUID((*uuid.UUID)(app.BrokerID)),
		optionalUUID((*uuid.UUID)(app.FeeTemplateID)),
		app.FinalFeeAmount,
		app.LawyerServiceRequested,
		app.LawyerFeeCost,
		app.LawyerFeeCharge,
		app.ExactArrivalDate,
		app.PermitExpiryDate,
		app.LabourPermitDate,
		app.ResidencyPermitDate,
		app.CreatedAt,
		app.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByCompanyAndID(ctx context.Context, companyID id.CompanyID, appID id.ApplicationID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE company_id = $1 AND id = $2`
	row := s.execer(ctx).QueryRowContext(ctx, query, uuid.UUID(companyID), uuid.UUID(appID))
	return scanApplication(row)
}

func (s *PostgresStore) FindByShareableLink(ctx context.Context, link string) (*models.Application, error) {
	// The one unscoped lookup: possession of the token is the authorization.
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE shareable_link = $1`
	row := s.execer(ctx).QueryRowContext(ctx, query, link)
	return scanApplication(row)
}

func (s *PostgresStore) ListByCompany(ctx context.Context, companyID id.CompanyID) ([]*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE company_id = $1 ORDER BY created_at, id`
	rows, err := s.execer(ctx).QueryContext(ctx, query, uuid.UUID(companyID))
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var out []*models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Update(ctx context.Context, companyID id.CompanyID, app *models.Application) error {
	query := `
		UPDATE applications SET
			status = $3, final_fee_amount = $4,
			lawyer_service_requested = $5, lawyer_fee_cost = $6, lawyer_fee_charge = $7,
			exact_arrival_date = $8, permit_expiry_date = $9,
			labour_permit_date = $10, residency_permit_date = $11,
			broker_id = $12, fee_template_id = $13,
			updated_at = $14
		WHERE company_id = $1 AND id = $2
	`
	res, err := s.execer(ctx).ExecContext(ctx, query,
		uuid.UUID(companyID),
		uuid.UUID(app.ID),
		string(app.Status),
		app.FinalFeeAmount,
		app.LawyerServiceRequested,
		app.LawyerFeeCost,
		app.LawyerFeeCharge,
		app.ExactArrivalDate,
		app.PermitExpiryDate,
		app.LabourPermitDate,
		app.ResidencyPermitDate,
		optionalUUID((*uuid.UUID)(app.BrokerID)),
		optionalUUID((*uuid.UUID)(app.FeeTemplateID)),
		app.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update application: %w", err)
	}
	return requireRow(res)
}

func (s *PostgresStore) Delete(ctx context.Context, companyID id.CompanyID, appID id.ApplicationID) error {
	query := `DELETE FROM applications WHERE company_id = $1 AND id = $2`
	res, err := s.execer(ctx).ExecContext(ctx, query, uuid.UUID(companyID), uuid.UUID(appID))
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	return requireRow(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*models.Application, error) {
	var (
		app                                     models.Application
		appID, companyID, candidateID, clientID uuid.UUID
		fromClientID, brokerID, feeTemplateID   *uuid.UUID
		status, appType                         string
	)
	err := row.Scan(
		&appID, &companyID, &app.ShareableLink, &status, &appType,
		&candidateID, &clientID, &fromClientID, &brokerID, &feeTemplateID,
		&app.FinalFeeAmount, &app.LawyerServiceRequested, &app.LawyerFeeCost, &app.LawyerFeeCharge,
		&app.ExactArrivalDate, &app.PermitExpiryDate, &app.LabourPermitDate, &app.ResidencyPermitDate,
		&app.CreatedAt, &app.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan application: %w", err)
	}

	app.ID = id.ApplicationID(appID)
	app.CompanyID = id.CompanyID(companyID)
	app.CandidateID = id.CandidateID(candidateID)
	app.ClientID = id.ClientID(clientID)
	app.Status = models.Stage(status)
	app.Type = models.ApplicationType(appType)
	if fromClientID != nil {
		v := id.ClientID(*fromClientID)
		app.FromClientID = &v
	}
	if brokerID != nil {
		v := id.BrokerID(*brokerID)
		app.BrokerID = &v
	}
	if feeTemplateID != nil {
		v := id.FeeTemplateID(*feeTemplateID)
		app.FeeTemplateID = &v
	}
	return &app, nil
}

func optionalUUID(u *uuid.UUID) any {
	if u == nil {
		return nil
	}
	return *u
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
