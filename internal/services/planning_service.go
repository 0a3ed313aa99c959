package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tripmigo/internal/models/db_models"
	"tripmigo/internal/models/request_models"
	"tripmigo/internal/models/response_models"
	"tripmigo/internal/repositories"
	"tripmigo/pkg/utils"
)

type PlanningServiceInterface interface {
	StartSession(ctx context.Context, userID string) (response_models.PlanningSessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (response_models.PlanningSessionResponse, error)
	UpdateStep(ctx context.Context, sessionID string, step int, data map[string]any) (response_models.PlanningStepUpdateResponse, error)
	GenerateItinerary(ctx context.Context, sessionID string) (response_models.PlanningItineraryResponse, error)
}

type PlanningService struct {
	planningRepo     repositories.PlanningRepository
	itineraryService ItineraryServiceInterface
	logger           *zap.Logger
}

func NewPlanningService(
	planningRepo repositories.PlanningRepository,
	itineraryService ItineraryServiceInterface,
	logger *zap.Logger,
) PlanningServiceInterface {
	return &PlanningService{
		planningRepo:     planningRepo,
		itineraryService: itineraryService,
		logger:           logger.Named("planning"),
	}
}

func (s *PlanningService) StartSession(ctx context.Context, userID string) (response_models.PlanningSessionResponse, error) {
	session := db_models.NewPlanningSession(userID)
	if err := s.planningRepo.Insert(ctx, session); err != nil {
		return response_models.PlanningSessionResponse{}, err
	}
	return toSessionResponse(session), nil
}

func (s *PlanningService) GetSession(ctx context.Context, sessionID string) (response_models.PlanningSessionResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return response_models.PlanningSessionResponse{}, err
	}
	return toSessionResponse(session), nil
}

func (s *PlanningService) findSession(ctx context.Context, sessionID string) (*db_models.PlanningSession, error) {
	session, err := s.planningRepo.FindById(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

// UpdateStep records data for step, marks it complete and advances the
// cursor. Completing the final step compiles the trip request.
func (s *PlanningService) UpdateStep(ctx context.Context, sessionID string, step int, data map[string]any) (response_models.PlanningStepUpdateResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return response_models.PlanningStepUpdateResponse{}, err
	}
	if step < 1 || step > len(session.Steps) {
		return response_models.PlanningStepUpdateResponse{}, utils.ErrInvalidStep
	}

	session.Steps[step-1].Data = data
	session.Steps[step-1].Completed = true
	if step+1 <= len(session.Steps) {
		session.CurrentStep = step + 1
	}

	if step == db_models.StepItinerary {
		trip, err := CompileTripRequest(session)
		if err != nil {
			s.logger.Info("planning session not ready for generation", zap.String("session_id", sessionID), zap.Error(err))
			session.TripRequest = nil
		} else {
			session.TripRequest = &trip
		}
	}

	if err := s.planningRepo.Update(ctx, session); err != nil {
		return response_models.PlanningStepUpdateResponse{}, err
	}
	return response_models.PlanningStepUpdateResponse{
		SessionID:   session.ID,
		UpdatedStep: step,
		CurrentStep: session.CurrentStep,
		Completed:   step == len(session.Steps),
	}, nil
}

func (s *PlanningService) GenerateItinerary(ctx context.Context, sessionID string) (response_models.PlanningItineraryResponse, error) {
	session, err := s.findSession(ctx, sessionID)
	if err != nil {
		return response_models.PlanningItineraryResponse{}, err
	}

	if session.TripRequest == nil {
		trip, err := CompileTripRequest(session)
		if err != nil {
			return response_models.PlanningItineraryResponse{}, err
		}
		session.TripRequest = &trip
	}

	itinerary := s.itineraryService.GenerateItinerary(ctx, *session.TripRequest)

	final := &session.Steps[db_models.StepItinerary-1]
	final.Completed = true
	final.Data = map[string]any{"itinerary": itinerary}
	if err := s.planningRepo.Update(ctx, session); err != nil {
		return response_models.PlanningItineraryResponse{}, err
	}

	return response_models.PlanningItineraryResponse{
		SessionID:         session.ID,
		ItineraryResponse: itinerary,
		TripRequest:       *session.TripRequest,
	}, nil
}

// CompileTripRequest folds the data of steps 1-5 into a TripRequest. Basic
// details, destination and travel preferences are required.
func CompileTripRequest(session *db_models.PlanningSession) (request_models.TripRequest, error) {
	basic := session.StepData(db_models.StepBasicDetails)
	destination := session.StepData(db_models.StepDestination)
	prefs := session.StepData(db_models.StepTravelPreferences)
	if basic == nil || destination == nil || prefs == nil {
		return request_models.TripRequest{}, utils.ErrIncompleteSession
	}
	accommodation := session.StepData(db_models.StepAccommodation)
	activities := session.StepData(db_models.StepActivities)

	raw := map[string]any{
		"source":             valueOr(basic, "source", ""),
		"destination":        valueOr(destination, "name", ""),
		"budget":             valueOr(prefs, "budget", "mid-range"),
		"duration_days":      valueOr(basic, "duration", 3),
		"interests":          valueOr(activities, "interests", []any{"sightseeing"}),
		"constraints":        valueOr(prefs, "constraints", ""),
		"travel_style":       valueOr(prefs, "style", "relaxed"),
		"travelers":          valueOr(basic, "travelers", "solo"),
		"accommodation_type": valueOr(accommodation, "type", "hotel"),
	}
	if start, ok := basic["start_date"]; ok && start != nil {
		raw["start_date"] = start
	}

	trip, err := request_models.NormalizeTripRequest(raw)
	if err != nil {
		return request_models.TripRequest{}, fmt.Errorf("%w: %v", utils.ErrIncompleteSession, err)
	}
	return trip, nil
}

func valueOr(m map[string]any, key string, def any) any {
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return def
}

func toSessionResponse(session *db_models.PlanningSession) response_models.PlanningSessionResponse {
	steps := make([]response_models.PlanningStep, len(session.Steps))
	for i, st := range session.Steps {
		steps[i] = response_models.PlanningStep{
			Step:      st.Step,
			Title:     st.Title,
			Completed: st.Completed,
			Data:      st.Data,
		}
	}
	return response_models.PlanningSessionResponse{
		SessionID:   session.ID,
		CurrentStep: session.CurrentStep,
		Steps:       steps,
		TripRequest: session.TripRequest,
	}
}
