package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"caseflow/internal/application/models"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store   *InMemoryStore
	company id.CompanyID
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.company = id.NewCompanyID()
}

func (s *InMemoryStoreSuite) newApplication() *models.Application {
	link, err := models.NewShareableLink()
	s.Require().NoError(err)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	app, err := models.NewApplication(id.NewApplicationID(), s.company, models.TypeNewCandidate, id.NewCandidateID(), id.NewClientID(), link, now)
	s.Require().NoError(err)
	return app
}

func (s *InMemoryStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	found, err := s.store.FindByCompanyAndID(ctx, s.company, app.ID)
	s.Require().NoError(err)
	s.Equal(app.ID, found.ID)

	// The store hands back copies, not aliases.
	found.Status = models.StageContractEnded
	again, err := s.store.FindByCompanyAndID(ctx, s.company, app.ID)
	s.Require().NoError(err)
	s.Equal(models.StagePendingMOL, again.Status)
}

func (s *InMemoryStoreSuite) TestCreateDuplicateConflicts() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))
	s.Require().ErrorIs(s.store.Create(ctx, app), sentinel.ErrConflict)

	other := s.newApplication()
	other.ShareableLink = app.ShareableLink
	s.Require().ErrorIs(s.store.Create(ctx, other), sentinel.ErrConflict)
}

func (s *InMemoryStoreSuite) TestFindScopedToCompany() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	_, err := s.store.FindByCompanyAndID(ctx, id.NewCompanyID(), app.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestFindByShareableLink() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	found, err := s.store.FindByShareableLink(ctx, app.ShareableLink)
	s.Require().NoError(err)
	s.Equal(app.ID, found.ID)

	_, err = s.store.FindByShareableLink(ctx, "missing-token")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestUpdate() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	app.Status = models.StageMOLAuthReceived
	s.Require().NoError(s.store.Update(ctx, s.company, app))

	found, err := s.store.FindByCompanyAndID(ctx, s.company, app.ID)
	s.Require().NoError(err)
	s.Equal(models.StageMOLAuthReceived, found.Status)

	s.Require().ErrorIs(s.store.Update(ctx, id.NewCompanyID(), app), sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestListByCompany() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, s.newApplication()))
	s.Require().NoError(s.store.Create(ctx, s.newApplication()))

	apps, err := s.store.ListByCompany(ctx, s.company)
	s.Require().NoError(err)
	s.Len(apps, 2)

	other, err := s.store.ListByCompany(ctx, id.NewCompanyID())
	s.Require().NoError(err)
	s.Empty(other)
}

func (s *InMemoryStoreSuite) TestDelete() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	s.Require().ErrorIs(s.store.Delete(ctx, id.NewCompanyID(), app.ID), sentinel.ErrNotFound)
	s.Require().NoError(s.store.Delete(ctx, s.company, app.ID))
	s.Require().ErrorIs(s.store.Delete(ctx, s.company, app.ID), sentinel.ErrNotFound)
}
