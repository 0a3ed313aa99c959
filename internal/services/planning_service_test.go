package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tripmigo/internal/models/db_models"
	"tripmigo/internal/repositories"
	mem "tripmigo/pkg/memcache"
	"tripmigo/pkg/utils"
)

func newPlanningService(t *testing.T) PlanningServiceInterface {
	t.Helper()
	itinerary := newItineraryService(t, nil, newTestPlaces(t, nil))
	repo := repositories.NewPlanningRepository(mem.NewMemoryStore(), time.Hour)
	return NewPlanningService(repo, itinerary, zaptest.NewLogger(t))
}

func TestPlanningService_FullFlow(t *testing.T) {
	svc := newPlanningService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, session.SessionID)
	assert.Equal(t, 1, session.CurrentStep)
	require.Len(t, session.Steps, 6)
	assert.Equal(t, "Basic Details", session.Steps[0].Title)

	steps := []map[string]any{
		{"source": "Lyon", "duration": 2, "travelers": "couple"},
		{"name": "Paris"},
		{"budget": "luxury", "style": "adventure"},
	}
	for i, data := range steps {
		resp, err := svc.UpdateStep(ctx, session.SessionID, i+1, data)
		require.NoError(t, err)
		assert.Equal(t, i+2, resp.CurrentStep)
		assert.False(t, resp.Completed)
	}

	got, err := svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.True(t, got.Steps[0].Completed)
	assert.Equal(t, "Paris", got.Steps[1].Data["name"])

	itinerary, err := svc.GenerateItinerary(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, itinerary.SessionID)
	assert.Equal(t, "Paris", itinerary.TripRequest.Destination)
	assert.Equal(t, "luxury", itinerary.TripRequest.Budget)
	assert.Equal(t, 2, itinerary.TripRequest.DurationDays)
	assert.Equal(t, []string{"sightseeing"}, itinerary.TripRequest.Interests)
	assert.Equal(t, "hotel", itinerary.TripRequest.AccommodationType)
	assert.Len(t, itinerary.Itinerary, 2)

	got, err = svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	assert.True(t, got.Steps[5].Completed)
	assert.Contains(t, got.Steps[5].Data, "itinerary")
}

func TestPlanningService_FinalStepCompilesTrip(t *testing.T) {
	svc := newPlanningService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, "")
	require.NoError(t, err)
	_, err = svc.UpdateStep(ctx, session.SessionID, db_models.StepBasicDetails, map[string]any{"duration": 4})
	require.NoError(t, err)
	_, err = svc.UpdateStep(ctx, session.SessionID, db_models.StepDestination, map[string]any{"name": "Tokyo"})
	require.NoError(t, err)
	_, err = svc.UpdateStep(ctx, session.SessionID, db_models.StepTravelPreferences, map[string]any{"budget": "medium"})
	require.NoError(t, err)

	resp, err := svc.UpdateStep(ctx, session.SessionID, db_models.StepItinerary, map[string]any{})
	require.NoError(t, err)
	assert.True(t, resp.Completed)
	assert.Equal(t, 4, resp.CurrentStep)

	got, err := svc.GetSession(ctx, session.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got.TripRequest)
	assert.Equal(t, "mid-range", got.TripRequest.Budget)
	assert.Equal(t, "solo", got.TripRequest.Travelers)
}

func TestPlanningService_Errors(t *testing.T) {
	svc := newPlanningService(t)
	ctx := context.Background()

	_, err := svc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)

	session, err := svc.StartSession(ctx, "")
	require.NoError(t, err)

	_, err = svc.UpdateStep(ctx, session.SessionID, 7, map[string]any{})
	assert.ErrorIs(t, err, utils.ErrInvalidStep)
	_, err = svc.UpdateStep(ctx, session.SessionID, 0, map[string]any{})
	assert.ErrorIs(t, err, utils.ErrInvalidStep)

	_, err = svc.GenerateItinerary(ctx, session.SessionID)
	assert.ErrorIs(t, err, utils.ErrIncompleteSession)
}

func TestCompileTripRequest_RejectsMissingDestination(t *testing.T) {
	session := db_models.NewPlanningSession("")
	session.Steps[0].Data = map[string]any{"duration": 3}
	session.Steps[1].Data = map[string]any{"name": ""}
	session.Steps[2].Data = map[string]any{"budget": "budget"}

	_, err := CompileTripRequest(session)
	assert.ErrorIs(t, err, utils.ErrIncompleteSession)
}
