package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	appmodels "caseflow/internal/application/models"
	"caseflow/internal/document/models"
	docstore "caseflow/internal/document/store/template"
	"caseflow/internal/tenant"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/requestcontext"
)

type CatalogSuite struct {
	suite.Suite
	ctx context.Context
	now time.Time

	store   *docstore.InMemoryStore
	service *Service

	company id.CompanyID
	admin   tenant.Identity
	staff   tenant.Identity
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) SetupTest() {
	s.now = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)

	s.store = docstore.NewInMemory()
	s.service = New(s.store)

	s.company = id.NewCompanyID()
	s.admin = tenant.Identity{UserID: id.NewUserID(), CompanyID: s.company, Role: id.RoleAdmin}
	s.staff = tenant.Identity{UserID: id.NewUserID(), CompanyID: s.company, Role: id.RoleStaff}
}

func (s *CatalogSuite) create(stage appmodels.Stage, name string) *models.Template {
	tpl, err := s.service.Create(s.ctx, CreateInput{
		Stage:        stage,
		Name:         name,
		Required:     true,
		RequiredFrom: appmodels.RequiredFromClient,
	}, s.admin)
	s.Require().NoError(err)
	return tpl
}

func (s *CatalogSuite) TestCreate() {
	tpl, err := s.service.Create(s.ctx, CreateInput{
		Stage:        appmodels.StagePendingMOL,
		Name:         "Passport Copy",
		Required:     true,
		RequiredFrom: appmodels.RequiredFromClient,
	}, s.admin)
	s.Require().NoError(err)
	s.Equal(s.company, tpl.CompanyID)
	s.Equal("Passport Copy", tpl.Name)
	s.True(tpl.CreatedAt.Equal(s.now))
}

func (s *CatalogSuite) TestCreateRequiresAdmin() {
	_, err := s.service.Create(s.ctx, CreateInput{
		Stage:        appmodels.StagePendingMOL,
		Name:         "Passport Copy",
		Required:     true,
		RequiredFrom: appmodels.RequiredFromClient,
	}, s.staff)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *CatalogSuite) TestCreateDuplicateName() {
	s.create(appmodels.StagePendingMOL, "Passport Copy")

	_, err := s.service.Create(s.ctx, CreateInput{
		Stage:        appmodels.StagePendingMOL,
		Name:         "Passport Copy",
		Required:     false,
		RequiredFrom: appmodels.RequiredFromOffice,
	}, s.admin)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *CatalogSuite) TestListIsOpenToStaff() {
	s.create(appmodels.StagePendingMOL, "Passport Copy")

	templates, err := s.service.List(s.ctx, s.staff)
	s.Require().NoError(err)
	s.Len(templates, 1)
}

func (s *CatalogSuite) TestListForStageScopedToCompany() {
	s.create(appmodels.StagePendingMOL, "Passport Copy")

	templates, err := s.service.ListForStage(s.ctx, id.NewCompanyID(), appmodels.StagePendingMOL)
	s.Require().NoError(err)
	s.Empty(templates)
}

func (s *CatalogSuite) TestUpdate() {
	created := s.create(appmodels.StagePendingMOL, "Passport Copy")

	name := "Passport Biodata Page"
	required := false
	tpl, err := s.service.Update(s.ctx, created.ID, UpdateInput{Name: &name, Required: &required}, s.admin)
	s.Require().NoError(err)
	s.Equal(name, tpl.Name)
	s.False(tpl.Required)
	s.Equal(appmodels.RequiredFromClient, tpl.RequiredFrom, "absent fields keep their value")
}

func (s *CatalogSuite) TestUpdateRequiresAdmin() {
	created := s.create(appmodels.StagePendingMOL, "Passport Copy")

	name := "Anything"
	_, err := s.service.Update(s.ctx, created.ID, UpdateInput{Name: &name}, s.staff)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}

func (s *CatalogSuite) TestUpdateUnknownTemplate() {
	name := "Anything"
	_, err := s.service.Update(s.ctx, id.NewDocumentTemplateID(), UpdateInput{Name: &name}, s.admin)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CatalogSuite) TestUpdateForeignCompany() {
	created := s.create(appmodels.StagePendingMOL, "Passport Copy")

	outsider := tenant.Identity{UserID: id.NewUserID(), CompanyID: id.NewCompanyID(), Role: id.RoleAdmin}
	name := "Anything"
	_, err := s.service.Update(s.ctx, created.ID, UpdateInput{Name: &name}, outsider)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CatalogSuite) TestDelete() {
	created := s.create(appmodels.StagePendingMOL, "Passport Copy")

	s.Require().NoError(s.service.Delete(s.ctx, created.ID, s.admin))

	templates, err := s.service.List(s.ctx, s.admin)
	s.Require().NoError(err)
	s.Empty(templates)

	err = s.service.Delete(s.ctx, created.ID, s.admin)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *CatalogSuite) TestDeleteRequiresAdmin() {
	created := s.create(appmodels.StagePendingMOL, "Passport Copy")

	err := s.service.Delete(s.ctx, created.ID, s.staff)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
}
