package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "caseflow/pkg/domain"
	dErrors "caseflow/pkg/domain-errors"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()
	link, err := NewShareableLink()
	require.NoError(t, err)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	app, err := NewApplication(id.NewApplicationID(), id.NewCompanyID(), TypeNewCandidate, id.NewCandidateID(), id.NewClientID(), link, now)
	require.NoError(t, err)
	return app
}

func TestNewApplication(t *testing.T) {
	app := newTestApplication(t)
	assert.Equal(t, StagePendingMOL, app.Status)
	assert.Equal(t, TypeNewCandidate, app.Type)
	assert.GreaterOrEqual(t, len(app.ShareableLink), MinShareableLinkLength)
	assert.Nil(t, app.FinalFeeAmount)
}

func TestNewApplicationInvariants(t *testing.T) {
	link, err := NewShareableLink()
	require.NoError(t, err)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		fn   func() (*Application, error)
	}{
		{"missing company", func() (*Application, error) {
			return NewApplication(id.NewApplicationID(), id.CompanyID{}, TypeNewCandidate, id.NewCandidateID(), id.NewClientID(), link, now)
		}},
		{"invalid type", func() (*Application, error) {
			return NewApplication(id.NewApplicationID(), id.NewCompanyID(), ApplicationType("SOMETHING"), id.NewCandidateID(), id.NewClientID(), link, now)
		}},
		{"missing candidate", func() (*Application, error) {
			return NewApplication(id.NewApplicationID(), id.NewCompanyID(), TypeNewCandidate, id.CandidateID{}, id.NewClientID(), link, now)
		}},
		{"missing client", func() (*Application, error) {
			return NewApplication(id.NewApplicationID(), id.NewCompanyID(), TypeNewCandidate, id.NewCandidateID(), id.ClientID{}, link, now)
		}},
		{"short link", func() (*Application, error) {
			return NewApplication(id.NewApplicationID(), id.NewCompanyID(), TypeNewCandidate, id.NewCandidateID(), id.NewClientID(), "abc", now)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.fn()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}

func TestAdvance(t *testing.T) {
	app := newTestApplication(t)
	later := app.UpdatedAt.Add(time.Hour)

	require.NoError(t, app.Advance(StageMOLAuthReceived, later))
	assert.Equal(t, StageMOLAuthReceived, app.Status)
	assert.True(t, app.UpdatedAt.Equal(later))

	err := app.Advance(StageVisaReceived, later)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	assert.Equal(t, StageMOLAuthReceived, app.Status, "failed advance must not move the stage")
}

func TestAdvanceFromTerminal(t *testing.T) {
	app := newTestApplication(t)
	now := app.UpdatedAt
	require.NoError(t, app.Advance(StageCancelledPreArrival, now))

	err := app.Advance(StageMOLAuthReceived, now)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestOverrideSkipsStages(t *testing.T) {
	app := newTestApplication(t)
	later := app.UpdatedAt.Add(time.Hour)

	require.NoError(t, app.CanOverride(StageWorkerArrived))
	app.ApplyOverride(StageWorkerArrived, later)
	assert.Equal(t, StageWorkerArrived, app.Status)

	err := app.CanOverride(Stage("NOT_A_STAGE"))
	require.Error(t, err)

	app.ApplyOverride(StageCancelledPostArrival, later)
	err = app.CanOverride(StageActiveEmployment)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestSetFinalFee(t *testing.T) {
	app := newTestApplication(t)
	later := app.UpdatedAt.Add(time.Hour)

	require.NoError(t, app.SetFinalFee(2500_00, later))
	require.NotNil(t, app.FinalFeeAmount)
	assert.Equal(t, int64(2500_00), *app.FinalFeeAmount)

	err := app.SetFinalFee(-1, later)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestShareableLinks(t *testing.T) {
	first, err := NewShareableLink()
	require.NoError(t, err)
	second, err := NewShareableLink()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(first), MinShareableLinkLength)
	assert.NotEqual(t, first, second)
}
