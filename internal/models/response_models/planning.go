package response_models

import "tripmigo/internal/models/request_models"

type PlanningStep struct {
	Step      int            `json:"step"`
	Title     string         `json:"title"`
	Completed bool           `json:"completed"`
	Data      map[string]any `json:"data,omitempty"`
}

type PlanningSessionResponse struct {
	SessionID   string                      `json:"session_id"`
	CurrentStep int                         `json:"current_step"`
	Steps       []PlanningStep              `json:"steps"`
	TripRequest *request_models.TripRequest `json:"trip_request,omitempty"`
}

type PlanningStepUpdateResponse struct {
	SessionID   string `json:"session_id"`
	UpdatedStep int    `json:"updated_step"`
	CurrentStep int    `json:"current_step"`
	Completed   bool   `json:"completed"`
}

type PlanningItineraryResponse struct {
	SessionID string `json:"session_id"`
	ItineraryResponse
	TripRequest request_models.TripRequest `json:"trip_request"`
}
