//go:build integration

package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"caseflow/internal/application/models"
	"caseflow/internal/application/store/application"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
	"caseflow/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *application.PostgresStore

	company   id.CompanyID
	candidate id.CandidateID
	client    id.ClientID
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = application.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateAll(ctx))

	s.company = id.NewCompanyID()
	s.candidate = id.NewCandidateID()
	s.client = id.NewClientID()

	_, err := s.postgres.DB.ExecContext(ctx,
		`INSERT INTO candidates (id, company_id, first_name, last_name) VALUES ($1, $2, 'Amal', 'Perera')`,
		uuid.UUID(s.candidate), uuid.UUID(s.company))
	s.Require().NoError(err)
	_, err = s.postgres.DB.ExecContext(ctx,
		`INSERT INTO clients (id, company_id, name) VALUES ($1, $2, 'Al Noor Trading')`,
		uuid.UUID(s.client), uuid.UUID(s.company))
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) newApplication() *models.Application {
	link, err := models.NewShareableLink()
	s.Require().NoError(err)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	app, err := models.NewApplication(id.NewApplicationID(), s.company, models.TypeNewCandidate, s.candidate, s.client, link, now)
	s.Require().NoError(err)
	return app
}

func (s *PostgresStoreSuite) TestCreateAndFind() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	found, err := s.store.FindByCompanyAndID(ctx, s.company, app.ID)
	s.Require().NoError(err)
	s.Equal(app.ID, found.ID)
	s.Equal(models.StagePendingMOL, found.Status)
	s.Equal(app.ShareableLink, found.ShareableLink)
	s.Nil(found.FinalFeeAmount)
	s.Nil(found.ExactArrivalDate)
}

func (s *PostgresStoreSuite) TestFindScopedToCompany() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	_, err := s.store.FindByCompanyAndID(ctx, id.NewCompanyID(), app.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestFindByShareableLinkIsUnscoped() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	found, err := s.store.FindByShareableLink(ctx, app.ShareableLink)
	s.Require().NoError(err)
	s.Equal(app.ID, found.ID)

	_, err = s.store.FindByShareableLink(ctx, "no-such-token-anywhere")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestDuplicateLinkConflicts() {
	ctx := context.Background()
	first := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, first))

	second := s.newApplication()
	second.ShareableLink = first.ShareableLink
	s.Require().ErrorIs(s.store.Create(ctx, second), sentinel.ErrConflict)
}

func (s *PostgresStoreSuite) TestUpdate() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	arrival := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	fee := int64(2500_00)
	app.Status = models.StageMOLAuthReceived
	app.ExactArrivalDate = &arrival
	app.FinalFeeAmount = &fee
	app.UpdatedAt = app.UpdatedAt.Add(time.Hour)
	s.Require().NoError(s.store.Update(ctx, s.company, app))

	found, err := s.store.FindByCompanyAndID(ctx, s.company, app.ID)
	s.Require().NoError(err)
	s.Equal(models.StageMOLAuthReceived, found.Status)
	s.Require().NotNil(found.ExactArrivalDate)
	s.True(found.ExactArrivalDate.Equal(arrival))
	s.Require().NotNil(found.FinalFeeAmount)
	s.Equal(fee, *found.FinalFeeAmount)
}

func (s *PostgresStoreSuite) TestUpdateForeignCompanyNotFound() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	s.Require().ErrorIs(s.store.Update(ctx, id.NewCompanyID(), app), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestListByCompany() {
	ctx := context.Background()
	first := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, first))
	second := s.newApplication()
	second.CreatedAt = second.CreatedAt.Add(time.Minute)
	s.Require().NoError(s.store.Create(ctx, second))

	apps, err := s.store.ListByCompany(ctx, s.company)
	s.Require().NoError(err)
	s.Require().Len(apps, 2)
	s.Equal(first.ID, apps[0].ID)
	s.Equal(second.ID, apps[1].ID)

	other, err := s.store.ListByCompany(ctx, id.NewCompanyID())
	s.Require().NoError(err)
	s.Empty(other)
}

func (s *PostgresStoreSuite) TestDelete() {
	ctx := context.Background()
	app := s.newApplication()
	s.Require().NoError(s.store.Create(ctx, app))

	s.Require().NoError(s.store.Delete(ctx, s.company, app.ID))
	_, err := s.store.FindByCompanyAndID(ctx, s.company, app.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)

	s.Require().ErrorIs(s.store.Delete(ctx, s.company, app.ID), sentinel.ErrNotFound)
}
