// Package service implements the application lifecycle: the state machine
// that advances a case through its immigration stages and keeps the document
// checklist in step with every transition.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"caseflow/internal/application/cache"
	"caseflow/internal/application/metrics"
	"caseflow/internal/application/models"
	"caseflow/internal/audit"
	dirmodels "caseflow/internal/directory/models"
	feemodels "caseflow/internal/feetemplate/models"
	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/sentinel"
	"caseflow/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

// ApplicationStore abstracts application persistence. Every method that reads
// or mutates takes the company explicitly; there is no unscoped variant for
// the engine to misuse.
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	FindByCompanyAndID(ctx context.Context, companyID id.CompanyID, appID id.ApplicationID) (*models.Application, error)
	ListByCompany(ctx context.Context, companyID id.CompanyID) ([]*models.Application, error)
	Update(ctx context.Context, companyID id.CompanyID, app *models.Application) error
	Delete(ctx context.Context, companyID id.CompanyID, appID id.ApplicationID) error
}

// ChecklistStore abstracts checklist item persistence.
type ChecklistStore interface {
	ListByApplication(ctx context.Context, appID id.ApplicationID) ([]*models.ChecklistItem, error)
	UpdateStatus(ctx context.Context, appID id.ApplicationID, itemID id.ChecklistItemID, status models.DocumentStatus, updatedAt time.Time) error
	DeleteByApplication(ctx context.Context, appID id.ApplicationID) error
}

// DirectoryStore resolves the entities an application relates to. Lookups are
// deliberately unscoped so the service can tell a cross-tenant reference from
// an absent one.
type DirectoryStore interface {
	FindCandidate(ctx context.Context, candidateID id.CandidateID) (*dirmodels.Candidate, error)
	FindClient(ctx context.Context, clientID id.ClientID) (*dirmodels.Client, error)
	FindBroker(ctx context.Context, brokerID id.BrokerID) (*dirmodels.Broker, error)
}

// ChecklistGenerator materializes the checklist for a stage. Must be
// idempotent; it is called inside the create and transition transactions.
type ChecklistGenerator interface {
	Generate(ctx context.Context, appID id.ApplicationID, stage models.Stage, companyID id.CompanyID) ([]*models.ChecklistItem, error)
}

// FeeValidator bounds fee amounts against the tenant's fee templates.
type FeeValidator interface {
	Validate(ctx context.Context, templateID *id.FeeTemplateID, amount int64, identity tenant.Identity) error
	Get(ctx context.Context, templateID id.FeeTemplateID, identity tenant.Identity) (*feemodels.Template, error)
}

// TxRunner executes a callback as one atomic unit of work.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// AuditPublisher records lifecycle actions.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service orchestrates the application lifecycle.
type Service struct {
	apps      ApplicationStore
	checklist ChecklistStore
	directory DirectoryStore
	generator ChecklistGenerator
	fees      FeeValidator
	txRunner  TxRunner

	listCache cache.ListCache
	auditor   AuditPublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithListCache(c cache.ListCache) Option {
	return func(s *Service) {
		s.listCache = c
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs the lifecycle service.
func New(
	apps ApplicationStore,
	checklist ChecklistStore,
	directory DirectoryStore,
	generator ChecklistGenerator,
	fees FeeValidator,
	txRunner TxRunner,
	opts ...Option,
) *Service {
	s := &Service{
		apps:      apps,
		checklist: checklist,
		directory: directory,
		generator: generator,
		fees:      fees,
		txRunner:  txRunner,
		listCache: cache.Noop{},
		logger:    slog.Default(),
		tracer:    otel.Tracer("caseflow/application"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInput carries the fields of a new application.
type CreateInput struct {
	Type          models.ApplicationType
	CandidateID   id.CandidateID
	ClientID      id.ClientID
	FromClientID  *id.ClientID
	BrokerID      *id.BrokerID
	FeeTemplateID *id.FeeTemplateID

	LawyerServiceRequested bool
	LawyerFeeCost          *int64
	LawyerFeeCharge        *int64
}

// Create validates relations, assigns a fresh shareable link, and persists
// the application together with its initial-stage checklist in one atomic
// unit. The caller must treat the returned application as the new source of
// truth; the tenant's cached list is dropped here.
func (s *Service) Create(ctx context.Context, input CreateInput, identity tenant.Identity) (*models.Application, []*models.ChecklistItem, error) {
	ctx, span := s.tracer.Start(ctx, "application.Create")
	defer span.End()
	start := time.Now()

	if err := s.checkRelations(ctx, input, identity); err != nil {
		return nil, nil, err
	}

	link, err := models.NewShareableLink()
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate shareable link")
	}

	now := requestcontext.Now(ctx)
	app, err := models.NewApplication(id.NewApplicationID(), identity.CompanyID, input.Type, input.CandidateID, input.ClientID, link, now)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvariantViolation) {
			return nil, nil, dErrors.New(dErrors.CodeValidation, dErrors.MessageOf(err))
		}
		return nil, nil, err
	}
	app.FromClientID = input.FromClientID
	app.BrokerID = input.BrokerID
	app.FeeTemplateID = input.FeeTemplateID
	app.LawyerServiceRequested = input.LawyerServiceRequested
	if input.LawyerServiceRequested {
		app.LawyerFeeCost = input.LawyerFeeCost
		app.LawyerFeeCharge = input.LawyerFeeCharge
	}

	var created []*models.ChecklistItem
	err = s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.apps.Create(ctx, app); err != nil {
			if errors.Is(err, sentinel.ErrConflict) {
				return dErrors.New(dErrors.CodeConflict, "application already exists")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create application")
		}
		created, err = s.generator.Generate(ctx, app.ID, app.Status, identity.CompanyID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	s.afterWrite(ctx, identity, app.ID, audit.ActionCreated, string(app.Status))
	if s.metrics != nil {
		s.metrics.ObserveCreate(start)
		s.metrics.AddChecklistItems(len(created))
	}
	return app, created, nil
}

// Get returns one application of the caller's company, with its checklist.
func (s *Service) Get(ctx context.Context, appID id.ApplicationID, identity tenant.Identity) (*models.Application, []*models.ChecklistItem, error) {
	app, err := s.load(ctx, appID, identity)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.checklist.ListByApplication(ctx, appID)
	if err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load checklist")
	}
	return app, items, nil
}

// List returns the caller's company applications, serving from the list
// cache when warm.
func (s *Service) List(ctx context.Context, identity tenant.Identity) ([]*models.Application, error) {
	if apps, hit, err := s.listCache.Get(ctx, identity.CompanyID); err == nil && hit {
		return apps, nil
	}

	apps, err := s.apps.ListByCompany(ctx, identity.CompanyID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list applications")
	}
	if err := s.listCache.Set(ctx, identity.CompanyID, apps); err != nil {
		s.logger.WarnContext(ctx, "failed to warm application list cache", "error", err)
	}
	return apps, nil
}

// Transition advances the application to next through the normal path:
// forward neighbour, the renewal loop, or a cancellation. Stage skips are
// rejected; that is what Override is for. Status update and checklist
// generation for the new stage happen inside one transaction, so the
// checklist always matches the persisted status.
func (s *Service) Transition(ctx context.Context, appID id.ApplicationID, next models.Stage, effectiveDate *time.Time, identity tenant.Identity) (*models.Application, error) {
	ctx, span := s.tracer.Start(ctx, "application.Transition")
	defer span.End()
	start := time.Now()

	app, err := s.load(ctx, appID, identity)
	if err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	if err := app.Advance(next, now); err != nil {
		return nil, err
	}
	applyStageDate(app, next, effectiveDate)

	if err := s.persistTransition(ctx, app, identity); err != nil {
		return nil, err
	}

	s.afterWrite(ctx, identity, app.ID, audit.ActionTransition, string(next))
	if s.metrics != nil {
		s.metrics.ObserveTransition(string(next), start)
	}
	return app, nil
}

// Override is the explicit escape hatch for data correction: it moves a
// non-terminal application to any stage, skipping the adjacency rule. Admin
// only, and always logged as an override so the trail distinguishes it from
// a normal advance. Checklist items are generated for the target stage only;
// stages skipped over are not materialized retroactively.
func (s *Service) Override(ctx context.Context, appID id.ApplicationID, next models.Stage, identity tenant.Identity) (*models.Application, error) {
	ctx, span := s.tracer.Start(ctx, "application.Override")
	defer span.End()

	if err := tenant.RequireAdmin(identity); err != nil {
		return nil, err
	}

	app, err := s.load(ctx, appID, identity)
	if err != nil {
		return nil, err
	}

	if err := app.CanOverride(next); err != nil {
		return nil, err
	}
	from := app.Status
	app.ApplyOverride(next, requestcontext.Now(ctx))

	if err := s.persistTransition(ctx, app, identity); err != nil {
		return nil, err
	}

	s.logger.WarnContext(ctx, "stage override applied",
		"application_id", app.ID.String(),
		"from_stage", string(from),
		"to_stage", string(next),
		"actor_id", identity.UserID.String(),
	)
	s.afterWrite(ctx, identity, app.ID, audit.ActionOverride, string(from)+" -> "+string(next))
	if s.metrics != nil {
		s.metrics.Overrides.Inc()
	}
	return app, nil
}

// Delete removes an application and its checklist items in one atomic unit.
func (s *Service) Delete(ctx context.Context, appID id.ApplicationID, identity tenant.Identity) error {
	if _, err := s.load(ctx, appID, identity); err != nil {
		return err
	}

	err := s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checklist.DeleteByApplication(ctx, appID); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete checklist")
		}
		if err := s.apps.Delete(ctx, identity.CompanyID, appID); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "application not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to delete application")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.afterWrite(ctx, identity, appID, audit.ActionDeleted, "")
	return nil
}

// SetFinalFee records the agreed fee after validating it against the
// application's fee template, when one is attached. Applications without a
// template price freely.
func (s *Service) SetFinalFee(ctx context.Context, appID id.ApplicationID, amount int64, identity tenant.Identity) (*models.Application, error) {
	app, err := s.load(ctx, appID, identity)
	if err != nil {
		return nil, err
	}

	if err := s.fees.Validate(ctx, app.FeeTemplateID, amount, identity); err != nil {
		return nil, err
	}
	if err := app.SetFinalFee(amount, requestcontext.Now(ctx)); err != nil {
		return nil, err
	}

	if err := s.apps.Update(ctx, identity.CompanyID, app); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update application")
	}

	s.afterWrite(ctx, identity, app.ID, audit.ActionFeeSet, "")
	return app, nil
}

// UpdateChecklistItem moves a checklist item through the document workflow
// (pending → received → submitted). The item must belong to an application
// of the caller's company.
func (s *Service) UpdateChecklistItem(ctx context.Context, appID id.ApplicationID, itemID id.ChecklistItemID, status models.DocumentStatus, identity tenant.Identity) error {
	if !status.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "invalid document status")
	}
	if _, err := s.load(ctx, appID, identity); err != nil {
		return err
	}
	if err := s.checklist.UpdateStatus(ctx, appID, itemID, status, requestcontext.Now(ctx)); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "checklist item not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update checklist item")
	}
	return nil
}

// load fetches an application scoped to the caller's company. Foreign rows
// and absent rows both come back as not found.
func (s *Service) load(ctx context.Context, appID id.ApplicationID, identity tenant.Identity) (*models.Application, error) {
	app, err := s.apps.FindByCompanyAndID(ctx, identity.CompanyID, appID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}
	return app, nil
}

// persistTransition writes the new status and generates the new stage's
// checklist inside one transaction. The generator reads the post-write
// status, so a retried or concurrent transition can never leave a checklist
// that mismatches the persisted stage.
func (s *Service) persistTransition(ctx context.Context, app *models.Application, identity tenant.Identity) error {
	var created []*models.ChecklistItem
	err := s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.apps.Update(ctx, identity.CompanyID, app); err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "application not found")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update application")
		}
		var err error
		created, err = s.generator.Generate(ctx, app.ID, app.Status, identity.CompanyID)
		return err
	})
	if err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.AddChecklistItems(len(created))
	}
	return nil
}

// checkRelations verifies that every referenced entity exists and belongs to
// the caller's company. A reference into another tenant is a security
// violation internally, surfaced to the caller as not-found.
func (s *Service) checkRelations(ctx context.Context, input CreateInput, identity tenant.Identity) error {
	if !input.Type.IsValid() {
		return dErrors.New(dErrors.CodeValidation, "invalid application type")
	}
	if input.CandidateID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "candidate is required")
	}
	if input.ClientID.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "client is required")
	}
	if input.Type == models.TypeGuarantorChange && input.FromClientID == nil {
		return dErrors.New(dErrors.CodeValidation, "guarantor change requires the previous client")
	}
	if input.Type == models.TypeNewCandidate && input.FromClientID != nil {
		return dErrors.New(dErrors.CodeValidation, "new candidate applications cannot have a previous client")
	}

	candidate, err := s.directory.FindCandidate(ctx, input.CandidateID)
	if err != nil {
		return relationErr(err, "candidate")
	}
	if candidate.CompanyID != identity.CompanyID {
		return dErrors.New(dErrors.CodeCrossTenant, "candidate belongs to another company")
	}

	client, err := s.directory.FindClient(ctx, input.ClientID)
	if err != nil {
		return relationErr(err, "client")
	}
	if client.CompanyID != identity.CompanyID {
		return dErrors.New(dErrors.CodeCrossTenant, "client belongs to another company")
	}

	if input.FromClientID != nil {
		fromClient, err := s.directory.FindClient(ctx, *input.FromClientID)
		if err != nil {
			return relationErr(err, "previous client")
		}
		if fromClient.CompanyID != identity.CompanyID {
			return dErrors.New(dErrors.CodeCrossTenant, "previous client belongs to another company")
		}
	}

	if input.BrokerID != nil {
		broker, err := s.directory.FindBroker(ctx, *input.BrokerID)
		if err != nil {
			return relationErr(err, "broker")
		}
		if broker.CompanyID != identity.CompanyID {
			return dErrors.New(dErrors.CodeCrossTenant, "broker belongs to another company")
		}
	}

	if input.FeeTemplateID != nil {
		// The fee template store is company-scoped, so a foreign template is
		// already indistinguishable from an absent one.
		if _, err := s.fees.Get(ctx, *input.FeeTemplateID, identity); err != nil {
			return err
		}
	}

	if !input.LawyerServiceRequested && (input.LawyerFeeCost != nil || input.LawyerFeeCharge != nil) {
		return dErrors.New(dErrors.CodeValidation, "lawyer fees require the lawyer service")
	}
	return nil
}

func relationErr(err error, kind string) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.Newf(dErrors.CodeValidation, "%s does not exist", kind)
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load "+kind)
}

// applyStageDate fills the date field that becomes meaningful at the entered
// stage, when the caller supplied one.
func applyStageDate(app *models.Application, stage models.Stage, date *time.Time) {
	if date == nil {
		return
	}
	switch stage {
	case models.StageWorkerArrived:
		app.ExactArrivalDate = date
	case models.StageLabourPermitProcessing:
		app.LabourPermitDate = date
	case models.StageResidencyPermitProcessing:
		app.ResidencyPermitDate = date
	case models.StageActiveEmployment:
		app.PermitExpiryDate = date
	}
}

// afterWrite drops the stale tenant list and emits the audit event. Both are
// best-effort: the committed transaction is the source of truth.
func (s *Service) afterWrite(ctx context.Context, identity tenant.Identity, appID id.ApplicationID, action audit.Action, detail string) {
	if err := s.listCache.Invalidate(ctx, identity.CompanyID); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate application list cache",
			"company_id", identity.CompanyID.String(), "error", err)
	}
	if s.auditor != nil {
		_ = s.auditor.Emit(ctx, audit.Event{
			CompanyID:     identity.CompanyID,
			ActorID:       identity.UserID,
			ApplicationID: appID,
			Action:        action,
			Detail:        detail,
		})
	}
}
