package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"caseflow/internal/application/checklist"
	"caseflow/internal/application/models"
	appstore "caseflow/internal/application/store/application"
	checkliststore "caseflow/internal/application/store/checklist"
	"caseflow/internal/audit"
	dirmodels "caseflow/internal/directory/models"
	dirstore "caseflow/internal/directory/store"
	docmodels "caseflow/internal/document/models"
	docstore "caseflow/internal/document/store/template"
	feemodels "caseflow/internal/feetemplate/models"
	feeservice "caseflow/internal/feetemplate/service"
	feestore "caseflow/internal/feetemplate/store/template"
	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/tx"
	"caseflow/pkg/requestcontext"
)

type recordingAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recordingAuditor) Emit(_ context.Context, event audit.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAuditor) actions() []audit.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	actions := make([]audit.Action, len(r.events))
	for i, e := range r.events {
		actions[i] = e.Action
	}
	return actions
}

type LifecycleSuite struct {
	suite.Suite
	ctx context.Context
	now time.Time

	apps      *appstore.InMemoryStore
	items     *checkliststore.InMemoryStore
	directory *dirstore.InMemoryStore
	docs      *docstore.InMemoryStore
	fees      *feestore.InMemoryStore
	auditor   *recordingAuditor
	service   *Service

	company   id.CompanyID
	admin     tenant.Identity
	staff     tenant.Identity
	candidate id.CandidateID
	client    id.ClientID
	broker    id.BrokerID
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(LifecycleSuite))
}

func (s *LifecycleSuite) SetupTest() {
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)

	s.apps = appstore.NewInMemory()
	s.items = checkliststore.NewInMemory()
	s.directory = dirstore.NewInMemory()
	s.docs = docstore.NewInMemory()
	s.fees = feestore.NewInMemory()
	s.auditor = &recordingAuditor{}

	s.company = id.NewCompanyID()
	s.admin = tenant.Identity{UserID: id.NewUserID(), CompanyID: s.company, Role: id.RoleAdmin}
	s.staff = tenant.Identity{UserID: id.NewUserID(), CompanyID: s.company, Role: id.RoleStaff}

	s.candidate = id.NewCandidateID()
	s.directory.SeedCandidate(&dirmodels.Candidate{ID: s.candidate, CompanyID: s.company, FirstName: "Amal", LastName: "Perera", Nationality: "LK"})
	s.client = id.NewClientID()
	s.directory.SeedClient(&dirmodels.Client{ID: s.client, CompanyID: s.company, Name: "Al Noor Trading"})
	s.broker = id.NewBrokerID()
	s.directory.SeedBroker(&dirmodels.Broker{ID: s.broker, CompanyID: s.company, Name: "Island Recruiters"})

	generator := checklist.New(docstoreCatalog{s.docs}, s.items)
	s.service = New(s.apps, s.items, s.directory, generator, feeservice.New(s.fees), tx.NopRunner{},
		WithAuditPublisher(s.auditor),
	)
}

// docstoreCatalog adapts the template store to the generator's read contract
// without going through the admin-gated catalog service.
type docstoreCatalog struct {
	store *docstore.InMemoryStore
}

func (c docstoreCatalog) ListForStage(ctx context.Context, companyID id.CompanyID, stage models.Stage) ([]*docmodels.Template, error) {
	return c.store.ListByCompanyAndStage(ctx, companyID, stage)
}

func (s *LifecycleSuite) seedTemplate(stage models.Stage, name string, required bool, from models.RequiredFrom) {
	tpl, err := docmodels.NewTemplate(id.NewDocumentTemplateID(), s.company, stage, name, required, from, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.docs.CreateIfNameAvailable(s.ctx, tpl))
}

func (s *LifecycleSuite) createApplication() *models.Application {
	app, _, err := s.service.Create(s.ctx, CreateInput{
		Type:        models.TypeNewCandidate,
		CandidateID: s.candidate,
		ClientID:    s.client,
	}, s.staff)
	s.Require().NoError(err)
	return app
}

// advanceTo walks the happy path up to target using normal transitions.
func (s *LifecycleSuite) advanceTo(app *models.Application, target models.Stage) *models.Application {
	order := []models.Stage{
		models.StagePendingMOL,
		models.StageMOLAuthReceived,
		models.StageVisaProcessing,
		models.StageVisaReceived,
		models.StageWorkerArrived,
		models.StageLabourPermitProcessing,
		models.StageResidencyPermitProcessing,
		models.StageActiveEmployment,
		models.StageContractEnded,
	}
	current := app
	started := false
	for _, stage := range order {
		if stage == current.Status {
			started = true
			continue
		}
		if !started {
			continue
		}
		var err error
		current, err = s.service.Transition(s.ctx, app.ID, stage, nil, s.staff)
		s.Require().NoError(err)
		if stage == target {
			break
		}
	}
	s.Require().Equal(target, current.Status)
	return current
}

// Runs as its own test method so the seeded templates cannot leak into the
// empty-catalog cases below.
func (s *LifecycleSuite) TestCreateGeneratesInitialChecklist() {
	s.seedTemplate(models.StagePendingMOL, "Passport Copy", true, models.RequiredFromOffice)
	s.seedTemplate(models.StagePendingMOL, "Signed Offer Letter", true, models.RequiredFromClient)

	app, items, err := s.service.Create(s.ctx, CreateInput{
		Type:        models.TypeNewCandidate,
		CandidateID: s.candidate,
		ClientID:    s.client,
		BrokerID:    &s.broker,
	}, s.staff)
	s.Require().NoError(err)
	s.Equal(models.StagePendingMOL, app.Status)
	s.Equal(s.company, app.CompanyID)
	s.GreaterOrEqual(len(app.ShareableLink), models.MinShareableLinkLength)

	s.Require().Len(items, 2)
	s.Equal("Passport Copy", items[0].DocumentName)
	s.Equal(models.DocumentPending, items[0].Status)
	s.Equal("Signed Offer Letter", items[1].DocumentName)

	s.Equal([]audit.Action{audit.ActionCreated}, s.auditor.actions())
}

func (s *LifecycleSuite) TestCreate() {
	s.Run("creates with an empty checklist when no templates match", func() {
		app, items, err := s.service.Create(s.ctx, CreateInput{
			Type:        models.TypeNewCandidate,
			CandidateID: s.candidate,
			ClientID:    s.client,
		}, s.staff)
		s.Require().NoError(err)
		s.Empty(items)
		s.Equal(models.StagePendingMOL, app.Status)
	})

	s.Run("assigns distinct shareable links", func() {
		first := s.createApplication()
		second := s.createApplication()
		s.NotEqual(first.ShareableLink, second.ShareableLink)
	})

	s.Run("rejects an unknown candidate", func() {
		_, _, err := s.service.Create(s.ctx, CreateInput{
			Type:        models.TypeNewCandidate,
			CandidateID: id.NewCandidateID(),
			ClientID:    s.client,
		}, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects guarantor change without the previous client", func() {
		_, _, err := s.service.Create(s.ctx, CreateInput{
			Type:        models.TypeGuarantorChange,
			CandidateID: s.candidate,
			ClientID:    s.client,
		}, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects previous client on a new candidate application", func() {
		_, _, err := s.service.Create(s.ctx, CreateInput{
			Type:         models.TypeNewCandidate,
			CandidateID:  s.candidate,
			ClientID:     s.client,
			FromClientID: &s.client,
		}, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects lawyer fees without the lawyer service", func() {
		cost := int64(50000)
		_, _, err := s.service.Create(s.ctx, CreateInput{
			Type:          models.TypeNewCandidate,
			CandidateID:   s.candidate,
			ClientID:      s.client,
			LawyerFeeCost: &cost,
		}, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *LifecycleSuite) TestCrossTenantRelations() {
	other := id.NewCompanyID()
	foreignCandidate := id.NewCandidateID()
	s.directory.SeedCandidate(&dirmodels.Candidate{ID: foreignCandidate, CompanyID: other, FirstName: "Rami", LastName: "Haddad"})
	foreignClient := id.NewClientID()
	s.directory.SeedClient(&dirmodels.Client{ID: foreignClient, CompanyID: other, Name: "Foreign Co"})
	foreignBroker := id.NewBrokerID()
	s.directory.SeedBroker(&dirmodels.Broker{ID: foreignBroker, CompanyID: other, Name: "Foreign Broker"})

	s.Run("rejects a candidate from another company", func() {
		_, _, err := s.service.Create(s.ctx, CreateInput{
			Type:        models.TypeNewCandidate,
			CandidateID: foreignCandidate,
			ClientID:    s.client,
		}, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeCrossTenant))
	})

	s.Run("rejects a client from another company", func() {
		_, _, err := s.service.Create(s.ctx, CreateInput{
			Type:        models.TypeNewCandidate,
			CandidateID: s.candidate,
			ClientID:    foreignClient,
		}, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeCrossTenant))
	})

	s.Run("rejects a broker from another company", func() {
		_, _, err := s.service.Create(s.ctx, CreateInput{
			Type:        models.TypeNewCandidate,
			CandidateID: s.candidate,
			ClientID:    s.client,
			BrokerID:    &foreignBroker,
		}, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeCrossTenant))
	})
}

func (s *LifecycleSuite) TestTenantIsolation() {
	app := s.createApplication()
	outsider := tenant.Identity{UserID: id.NewUserID(), CompanyID: id.NewCompanyID(), Role: id.RoleAdmin}

	s.Run("foreign company cannot read the application", func() {
		_, _, err := s.service.Get(s.ctx, app.ID, outsider)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("foreign company cannot transition it", func() {
		_, err := s.service.Transition(s.ctx, app.ID, models.StageMOLAuthReceived, nil, outsider)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("foreign company cannot delete it", func() {
		err := s.service.Delete(s.ctx, app.ID, outsider)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

		_, _, err = s.service.Get(s.ctx, app.ID, s.staff)
		s.Require().NoError(err)
	})

	s.Run("foreign company sees an empty list", func() {
		apps, err := s.service.List(s.ctx, outsider)
		s.Require().NoError(err)
		s.Empty(apps)
	})
}

// Runs as its own test method so only StagePendingMOL carries a template and
// the transition target has none.
func (s *LifecycleSuite) TestTransitionKeepsEarlierItems() {
	s.seedTemplate(models.StagePendingMOL, "Entry Form", true, models.RequiredFromClient)
	app := s.createApplication()

	_, err := s.service.Transition(s.ctx, app.ID, models.StageMOLAuthReceived, nil, s.staff)
	s.Require().NoError(err)

	items, err := s.items.ListByApplication(s.ctx, app.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 1)
	s.Equal("Entry Form", items[0].DocumentName)
}

func (s *LifecycleSuite) TestTransition() {
	s.Run("advances to the next stage and grows the checklist", func() {
		s.seedTemplate(models.StagePendingMOL, "Passport Copy", true, models.RequiredFromOffice)
		s.seedTemplate(models.StageMOLAuthReceived, "MOL Authorization Letter", true, models.RequiredFromOffice)
		app := s.createApplication()

		updated, err := s.service.Transition(s.ctx, app.ID, models.StageMOLAuthReceived, nil, s.staff)
		s.Require().NoError(err)
		s.Equal(models.StageMOLAuthReceived, updated.Status)

		items, err := s.items.ListByApplication(s.ctx, app.ID)
		s.Require().NoError(err)
		s.Require().Len(items, 2)
		s.Equal("Passport Copy", items[0].DocumentName)
		s.Equal("MOL Authorization Letter", items[1].DocumentName)
		s.Equal(models.StageMOLAuthReceived, items[1].Stage)
	})

	s.Run("rejects skipping a stage", func() {
		app := s.createApplication()

		_, err := s.service.Transition(s.ctx, app.ID, models.StageVisaProcessing, nil, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		current, _, err := s.service.Get(s.ctx, app.ID, s.staff)
		s.Require().NoError(err)
		s.Equal(models.StagePendingMOL, current.Status)
	})

	s.Run("rejects moving backwards", func() {
		app := s.createApplication()
		s.advanceTo(app, models.StageVisaProcessing)

		_, err := s.service.Transition(s.ctx, app.ID, models.StageMOLAuthReceived, nil, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("allows the renewal loop in both directions", func() {
		app := s.createApplication()
		s.advanceTo(app, models.StageActiveEmployment)

		renewed, err := s.service.Transition(s.ctx, app.ID, models.StageRenewalPending, nil, s.staff)
		s.Require().NoError(err)
		s.Equal(models.StageRenewalPending, renewed.Status)

		active, err := s.service.Transition(s.ctx, app.ID, models.StageActiveEmployment, nil, s.staff)
		s.Require().NoError(err)
		s.Equal(models.StageActiveEmployment, active.Status)
	})

	s.Run("allows cancellation from any non-terminal stage", func() {
		app := s.createApplication()
		s.advanceTo(app, models.StageVisaReceived)

		cancelled, err := s.service.Transition(s.ctx, app.ID, models.StageCancelledPreArrival, nil, s.staff)
		s.Require().NoError(err)
		s.Equal(models.StageCancelledPreArrival, cancelled.Status)
	})

	s.Run("rejects leaving a terminal stage", func() {
		app := s.createApplication()
		_, err := s.service.Transition(s.ctx, app.ID, models.StageCancelledPreArrival, nil, s.staff)
		s.Require().NoError(err)

		_, err = s.service.Transition(s.ctx, app.ID, models.StageMOLAuthReceived, nil, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("records the arrival date when the worker arrives", func() {
		app := s.createApplication()
		s.advanceTo(app, models.StageVisaReceived)

		arrival := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
		updated, err := s.service.Transition(s.ctx, app.ID, models.StageWorkerArrived, &arrival, s.staff)
		s.Require().NoError(err)
		s.Require().NotNil(updated.ExactArrivalDate)
		s.Equal(arrival, *updated.ExactArrivalDate)
	})
}

func (s *LifecycleSuite) TestTransitionIdempotentChecklist() {
	// Re-entering a stage via the renewal loop must not duplicate items.
	s.seedTemplate(models.StageActiveEmployment, "Employment Contract", true, models.RequiredFromClient)
	app := s.createApplication()
	s.advanceTo(app, models.StageActiveEmployment)

	_, err := s.service.Transition(s.ctx, app.ID, models.StageRenewalPending, nil, s.staff)
	s.Require().NoError(err)
	_, err = s.service.Transition(s.ctx, app.ID, models.StageActiveEmployment, nil, s.staff)
	s.Require().NoError(err)

	items, err := s.items.ListByApplication(s.ctx, app.ID)
	s.Require().NoError(err)
	count := 0
	for _, item := range items {
		if item.DocumentName == "Employment Contract" {
			count++
		}
	}
	s.Equal(1, count)
}

func (s *LifecycleSuite) TestOverride() {
	s.Run("admin can skip stages", func() {
		s.seedTemplate(models.StageVisaProcessing, "Visa Application Form", true, models.RequiredFromOffice)
		app := s.createApplication()

		updated, err := s.service.Override(s.ctx, app.ID, models.StageVisaProcessing, s.admin)
		s.Require().NoError(err)
		s.Equal(models.StageVisaProcessing, updated.Status)

		items, err := s.items.ListByApplication(s.ctx, app.ID)
		s.Require().NoError(err)
		s.Require().Len(items, 1)
		s.Equal("Visa Application Form", items[0].DocumentName)

		s.Contains(s.auditor.actions(), audit.ActionOverride)
	})

	s.Run("skipped stages are not materialized retroactively", func() {
		s.seedTemplate(models.StageMOLAuthReceived, "MOL Authorization Letter", true, models.RequiredFromOffice)
		app := s.createApplication()

		_, err := s.service.Override(s.ctx, app.ID, models.StageVisaReceived, s.admin)
		s.Require().NoError(err)

		items, err := s.items.ListByApplication(s.ctx, app.ID)
		s.Require().NoError(err)
		for _, item := range items {
			s.NotEqual(models.StageMOLAuthReceived, item.Stage)
		}
	})

	s.Run("staff cannot override", func() {
		app := s.createApplication()

		_, err := s.service.Override(s.ctx, app.ID, models.StageVisaReceived, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("cannot override out of a terminal stage", func() {
		app := s.createApplication()
		_, err := s.service.Transition(s.ctx, app.ID, models.StageCancelledPreArrival, nil, s.staff)
		s.Require().NoError(err)

		_, err = s.service.Override(s.ctx, app.ID, models.StageActiveEmployment, s.admin)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *LifecycleSuite) TestDelete() {
	s.seedTemplate(models.StagePendingMOL, "Passport Copy", true, models.RequiredFromOffice)
	app := s.createApplication()

	s.Require().NoError(s.service.Delete(s.ctx, app.ID, s.staff))

	_, _, err := s.service.Get(s.ctx, app.ID, s.staff)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	items, err := s.items.ListByApplication(s.ctx, app.ID)
	s.Require().NoError(err)
	s.Empty(items)
}

func (s *LifecycleSuite) TestSetFinalFee() {
	s.Run("free pricing without a template", func() {
		app := s.createApplication()

		updated, err := s.service.SetFinalFee(s.ctx, app.ID, 999_00, s.staff)
		s.Require().NoError(err)
		s.Require().NotNil(updated.FinalFeeAmount)
		s.Equal(int64(999_00), *updated.FinalFeeAmount)
	})

	s.Run("template bounds the amount", func() {
		tpl, err := feemodels.NewTemplate(id.NewFeeTemplateID(), s.company, "Standard Placement",
			2500_00, 2000_00, 3000_00, "AED", "", "", s.now)
		s.Require().NoError(err)
		s.Require().NoError(s.fees.Create(s.ctx, tpl))

		app, _, err := s.service.Create(s.ctx, CreateInput{
			Type:          models.TypeNewCandidate,
			CandidateID:   s.candidate,
			ClientID:      s.client,
			FeeTemplateID: &tpl.ID,
		}, s.staff)
		s.Require().NoError(err)

		_, err = s.service.SetFinalFee(s.ctx, app.ID, 1999_99, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))

		updated, err := s.service.SetFinalFee(s.ctx, app.ID, 2000_00, s.staff)
		s.Require().NoError(err)
		s.Equal(int64(2000_00), *updated.FinalFeeAmount)

		updated, err = s.service.SetFinalFee(s.ctx, app.ID, 3000_00, s.staff)
		s.Require().NoError(err)
		s.Equal(int64(3000_00), *updated.FinalFeeAmount)

		_, err = s.service.SetFinalFee(s.ctx, app.ID, 3000_01, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects a negative amount", func() {
		app := s.createApplication()
		_, err := s.service.SetFinalFee(s.ctx, app.ID, -1, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *LifecycleSuite) TestUpdateChecklistItem() {
	s.seedTemplate(models.StagePendingMOL, "Passport Copy", true, models.RequiredFromOffice)
	app := s.createApplication()
	items, err := s.items.ListByApplication(s.ctx, app.ID)
	s.Require().NoError(err)
	s.Require().Len(items, 1)

	s.Run("moves an item through the document workflow", func() {
		err := s.service.UpdateChecklistItem(s.ctx, app.ID, items[0].ID, models.DocumentReceived, s.staff)
		s.Require().NoError(err)

		got, err := s.items.ListByApplication(s.ctx, app.ID)
		s.Require().NoError(err)
		s.Equal(models.DocumentReceived, got[0].Status)
	})

	s.Run("rejects an unknown item", func() {
		err := s.service.UpdateChecklistItem(s.ctx, app.ID, id.NewChecklistItemID(), models.DocumentReceived, s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("rejects an invalid status", func() {
		err := s.service.UpdateChecklistItem(s.ctx, app.ID, items[0].ID, models.DocumentStatus("archived"), s.staff)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *LifecycleSuite) TestList() {
	first := s.createApplication()
	second := s.createApplication()

	apps, err := s.service.List(s.ctx, s.staff)
	s.Require().NoError(err)
	s.Require().Len(apps, 2)
	got := map[id.ApplicationID]bool{apps[0].ID: true, apps[1].ID: true}
	s.True(got[first.ID])
	s.True(got[second.ID])
}
