//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"caseflow/internal/directory/store"
	id "caseflow/pkg/domain"
	"caseflow/pkg/platform/sentinel"
	"caseflow/pkg/testutil/containers"
)

type DirectoryPostgresSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore

	company id.CompanyID
}

func TestDirectoryPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(DirectoryPostgresSuite))
}

func (s *DirectoryPostgresSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
}

func (s *DirectoryPostgresSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateAll(ctx))
	s.company = id.NewCompanyID()
}

func (s *DirectoryPostgresSuite) TestFindCandidate() {
	ctx := context.Background()
	candidateID := id.NewCandidateID()
	_, err := s.postgres.DB.ExecContext(ctx,
		`INSERT INTO candidates (id, company_id, first_name, last_name, nationality) VALUES ($1, $2, 'Amal', 'Perera', 'LK')`,
		uuid.UUID(candidateID), uuid.UUID(s.company))
	s.Require().NoError(err)

	c, err := s.store.FindCandidate(ctx, candidateID)
	s.Require().NoError(err)
	s.Equal("Amal", c.FirstName)
	s.Equal("Perera", c.LastName)
	s.Equal("LK", c.Nationality)
	s.Equal(s.company, c.CompanyID)

	_, err = s.store.FindCandidate(ctx, id.NewCandidateID())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *DirectoryPostgresSuite) TestFindClient() {
	ctx := context.Background()
	clientID := id.NewClientID()
	_, err := s.postgres.DB.ExecContext(ctx,
		`INSERT INTO clients (id, company_id, name) VALUES ($1, $2, 'Al Noor Trading')`,
		uuid.UUID(clientID), uuid.UUID(s.company))
	s.Require().NoError(err)

	c, err := s.store.FindClient(ctx, clientID)
	s.Require().NoError(err)
	s.Equal("Al Noor Trading", c.Name)
	s.Equal(s.company, c.CompanyID)

	_, err = s.store.FindClient(ctx, id.NewClientID())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *DirectoryPostgresSuite) TestFindBroker() {
	ctx := context.Background()
	brokerID := id.NewBrokerID()
	_, err := s.postgres.DB.ExecContext(ctx,
		`INSERT INTO brokers (id, company_id, name, phone, email) VALUES ($1, $2, 'Island Recruiters', '+94112223344', 'office@island.example')`,
		uuid.UUID(brokerID), uuid.UUID(s.company))
	s.Require().NoError(err)

	b, err := s.store.FindBroker(ctx, brokerID)
	s.Require().NoError(err)
	s.Equal("Island Recruiters", b.Name)
	s.Equal("+94112223344", b.Contact.Phone)
	s.Equal("office@island.example", b.Contact.Email)

	_, err = s.store.FindBroker(ctx, id.NewBrokerID())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
