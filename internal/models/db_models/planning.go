package db_models

import "tripmigo/internal/models/request_models"

const (
	StepBasicDetails = iota + 1
	StepDestination
	StepTravelPreferences
	StepAccommodation
	StepActivities
	StepItinerary
)

var planningStepTitles = []string{
	"Basic Details",
	"Destination Selection",
	"Travel Preferences",
	"Accommodation",
	"Activities & Interests",
	"Itinerary Generation",
}

type PlanningStep struct {
	Step      int            `json:"step"`
	Title     string         `json:"title"`
	Completed bool           `json:"completed"`
	Data      map[string]any `json:"data,omitempty"`
}

type PlanningSession struct {
	BaseModel
	UserID      string                      `json:"user_id,omitempty"`
	Steps       []PlanningStep              `json:"steps"`
	CurrentStep int                         `json:"current_step"`
	TripRequest *request_models.TripRequest `json:"trip_request,omitempty"`
}

func NewPlanningSession(userID string) *PlanningSession {
	steps := make([]PlanningStep, len(planningStepTitles))
	for i, title := range planningStepTitles {
		steps[i] = PlanningStep{Step: i + 1, Title: title}
	}
	return &PlanningSession{UserID: userID, Steps: steps, CurrentStep: StepBasicDetails}
}

// StepData returns the data recorded for step, or nil.
func (s *PlanningSession) StepData(step int) map[string]any {
	if step < 1 || step > len(s.Steps) {
		return nil
	}
	return s.Steps[step-1].Data
}
