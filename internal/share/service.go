// Package share exposes a read-only, unauthenticated view of an application
// keyed by its unguessable shareable link. The projection is what a client
// company may see: identity of the placement and the documents they owe.
// Fees, costs, internal documents and tenant identifiers never cross this
// boundary.
package share

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"caseflow/internal/application/models"
	dirmodels "caseflow/internal/directory/models"
	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
	"caseflow/pkg/platform/sentinel"
)

// ApplicationLookup resolves applications by their shareable link. The token
// itself is the authorization, so this is the one deliberately unscoped
// application read in the system.
type ApplicationLookup interface {
	FindByShareableLink(ctx context.Context, link string) (*models.Application, error)
}

// ChecklistLookup lists the checklist of an application.
type ChecklistLookup interface {
	ListByApplication(ctx context.Context, appID id.ApplicationID) ([]*models.ChecklistItem, error)
}

// DirectoryLookup resolves the names shown in the projection.
type DirectoryLookup interface {
	FindCandidate(ctx context.Context, candidateID id.CandidateID) (*dirmodels.Candidate, error)
	FindClient(ctx context.Context, clientID id.ClientID) (*dirmodels.Client, error)
}

// Projection is everything an unauthenticated link holder may see.
type Projection struct {
	CandidateFirstName string          `json:"candidate_first_name"`
	CandidateLastName  string          `json:"candidate_last_name"`
	ClientName         string          `json:"client_name"`
	Status             string          `json:"status"`
	Type               string          `json:"type"`
	CreatedAt          time.Time       `json:"created_at"`
	ArrivalDate        *string         `json:"arrival_date,omitempty"`
	Documents          []DocumentEntry `json:"documents"`
}

// DocumentEntry is one client-owed document in the projection.
type DocumentEntry struct {
	DocumentName string `json:"document_name"`
	Required     bool   `json:"required"`
	Received     bool   `json:"received"`
}

// Service resolves shareable links into projections.
type Service struct {
	apps      ApplicationLookup
	checklist ChecklistLookup
	directory DirectoryLookup
	logger    *slog.Logger
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(apps ApplicationLookup, checklist ChecklistLookup, directory DirectoryLookup, opts ...Option) *Service {
	s := &Service{apps: apps, checklist: checklist, directory: directory, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve builds the projection for a shareable link. Unknown and malformed
// tokens are the same not-found to the caller.
func (s *Service) Resolve(ctx context.Context, link string) (*Projection, error) {
	if len(link) < models.MinShareableLinkLength {
		return nil, dErrors.New(dErrors.CodeNotFound, "unknown link")
	}

	app, err := s.apps.FindByShareableLink(ctx, link)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "unknown link")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve link")
	}

	candidate, err := s.directory.FindCandidate(ctx, app.CandidateID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load candidate")
	}
	client, err := s.directory.FindClient(ctx, app.ClientID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load client")
	}
	items, err := s.checklist.ListByApplication(ctx, app.ID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load checklist")
	}

	proj := &Projection{
		CandidateFirstName: candidate.FirstName,
		CandidateLastName:  candidate.LastName,
		ClientName:         client.Name,
		Status:             string(app.Status),
		Type:               string(app.Type),
		CreatedAt:          app.CreatedAt,
		Documents:          make([]DocumentEntry, 0, len(items)),
	}
	if app.ExactArrivalDate != nil {
		d := app.ExactArrivalDate.Format("2006-01-02")
		proj.ArrivalDate = &d
	}

	// Office-collected documents are internal bookkeeping; the link holder
	// only sees what they owe.
	for _, item := range items {
		if item.RequiredFrom != models.RequiredFromClient {
			continue
		}
		proj.Documents = append(proj.Documents, DocumentEntry{
			DocumentName: item.DocumentName,
			Required:     item.Required,
			Received:     item.Status != models.DocumentPending,
		})
	}
	return proj, nil
}
