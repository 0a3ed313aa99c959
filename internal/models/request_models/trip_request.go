package request_models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
)

// TripRequest is the canonical inbound trip description. Clients send a number
// of alternate spellings; NormalizeTripRequest folds them into this shape.
type TripRequest struct {
	Source             string   `json:"source"`
	Destination        string   `json:"destination" binding:"required"`
	Budget             string   `json:"budget" binding:"required,oneof=budget mid-range luxury"`
	DurationDays       int      `json:"duration_days" binding:"required,min=1,max=30"`
	Interests          []string `json:"interests"`
	Constraints        string   `json:"constraints,omitempty"`
	TravelStyle        string   `json:"travel_style" binding:"required"`
	Travelers          string   `json:"travelers" binding:"required"`
	StartDate          string   `json:"start_date,omitempty"`
	AccommodationType  string   `json:"accommodation_type,omitempty"`
	NumberOfPeople     int      `json:"numberOfPeople,omitempty" binding:"omitempty,min=1"`
	FoodPreference     string   `json:"foodPreference,omitempty"`
	SelectedHotel      string   `json:"selectedHotel,omitempty"`
	TravelMode         string   `json:"travelMode,omitempty"`
	SelectedEssentials []string `json:"selectedEssentials,omitempty"`
}

// tripFieldAliases maps an alternate key to its canonical key. An alias is only
// applied when the canonical key is absent; order matters for keys sharing a target.
var tripFieldAliases = []struct{ alias, canonical string }{
	{"numberOfDays", "duration_days"},
	{"sourceLocation", "source"},
	{"source_location", "source"},
	{"travelStyle", "travel_style"},
	{"startDate", "start_date"},
	{"accommodationType", "accommodation_type"},
}

var budgetTierAliases = map[string]string{
	"medium":    "mid-range",
	"moderate":  "mid-range",
	"midrange":  "mid-range",
	"mid_range": "mid-range",
}

// NormalizeTripRequest applies the alias table and the derived-field rules to a
// raw JSON object, then decodes and validates the canonical request.
func NormalizeTripRequest(raw map[string]any) (TripRequest, error) {
	data := make(map[string]any, len(raw))
	for k, v := range raw {
		data[k] = v
	}

	for _, a := range tripFieldAliases {
		if _, ok := data[a.canonical]; ok {
			continue
		}
		if v, ok := data[a.alias]; ok && v != nil {
			data[a.canonical] = v
		}
	}

	if _, ok := data["travelers"]; !ok {
		if people, ok := data["numberOfPeople"].(float64); ok {
			if t := TravelersForPartySize(int(people)); t != "" {
				data["travelers"] = t
			}
		}
	}

	switch b := data["budget"].(type) {
	case float64:
		data["budget"] = BudgetTierForAmount(b)
	case string:
		tier := strings.ToLower(strings.TrimSpace(b))
		if alias, ok := budgetTierAliases[tier]; ok {
			tier = alias
		}
		data["budget"] = tier
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return TripRequest{}, fmt.Errorf("encode trip request: %w", err)
	}
	var req TripRequest
	if err := json.Unmarshal(encoded, &req); err != nil {
		return TripRequest{}, fmt.Errorf("decode trip request: %w", err)
	}
	req.Destination = strings.TrimSpace(req.Destination)

	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return TripRequest{}, err
	}
	return req, nil
}

func TravelersForPartySize(people int) string {
	switch {
	case people == 1:
		return "solo"
	case people == 2:
		return "couple"
	case people > 2:
		return "group"
	default:
		return ""
	}
}

func BudgetTierForAmount(amount float64) string {
	switch {
	case amount < 500:
		return "budget"
	case amount < 1500:
		return "mid-range"
	default:
		return "luxury"
	}
}
