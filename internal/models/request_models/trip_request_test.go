package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseTrip() map[string]any {
	return map[string]any{
		"destination":   "Kyoto",
		"budget":        "budget",
		"duration_days": float64(4),
		"travel_style":  "relaxed",
		"travelers":     "solo",
	}
}

func TestNormalizeTripRequest_Canonical(t *testing.T) {
	trip, err := NormalizeTripRequest(baseTrip())
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", trip.Destination)
	assert.Equal(t, 4, trip.DurationDays)
}

func TestNormalizeTripRequest_Aliases(t *testing.T) {
	raw := map[string]any{
		"destination":       " Kyoto ",
		"budget":            "Medium",
		"numberOfDays":      float64(3),
		"sourceLocation":    "Osaka",
		"travelStyle":       "adventure",
		"numberOfPeople":    float64(2),
		"startDate":         "2025-04-01",
		"accommodationType": "ryokan",
	}

	trip, err := NormalizeTripRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", trip.Destination)
	assert.Equal(t, "mid-range", trip.Budget)
	assert.Equal(t, 3, trip.DurationDays)
	assert.Equal(t, "Osaka", trip.Source)
	assert.Equal(t, "adventure", trip.TravelStyle)
	assert.Equal(t, "couple", trip.Travelers)
	assert.Equal(t, "2025-04-01", trip.StartDate)
	assert.Equal(t, "ryokan", trip.AccommodationType)
}

func TestNormalizeTripRequest_CanonicalWinsOverAlias(t *testing.T) {
	raw := baseTrip()
	raw["source"] = "Tokyo"
	raw["sourceLocation"] = "Osaka"
	raw["numberOfDays"] = float64(9)

	trip, err := NormalizeTripRequest(raw)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", trip.Source)
	assert.Equal(t, 4, trip.DurationDays)
}

func TestNormalizeTripRequest_NumericBudget(t *testing.T) {
	for amount, tier := range map[float64]string{100: "budget", 499: "budget", 500: "mid-range", 1499: "mid-range", 1500: "luxury"} {
		raw := baseTrip()
		raw["budget"] = amount
		trip, err := NormalizeTripRequest(raw)
		require.NoError(t, err)
		assert.Equal(t, tier, trip.Budget, "amount %v", amount)
	}
}

func TestNormalizeTripRequest_Invalid(t *testing.T) {
	tests := map[string]func(map[string]any){
		"missing destination": func(m map[string]any) { delete(m, "destination") },
		"blank destination":   func(m map[string]any) { m["destination"] = "   " },
		"unknown budget":      func(m map[string]any) { m["budget"] = "infinite" },
		"zero days":           func(m map[string]any) { m["duration_days"] = float64(0) },
		"too many days":       func(m map[string]any) { m["duration_days"] = float64(31) },
		"missing travelers":   func(m map[string]any) { delete(m, "travelers") },
		"wrong type":          func(m map[string]any) { m["duration_days"] = "four" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			raw := baseTrip()
			mutate(raw)
			_, err := NormalizeTripRequest(raw)
			assert.Error(t, err)
		})
	}
}

func TestNormalizeTripRequest_DoesNotMutateInput(t *testing.T) {
	raw := baseTrip()
	raw["numberOfDays"] = float64(2)
	delete(raw, "duration_days")

	_, err := NormalizeTripRequest(raw)
	require.NoError(t, err)
	_, ok := raw["duration_days"]
	assert.False(t, ok)
}

func TestTravelersForPartySize(t *testing.T) {
	assert.Equal(t, "", TravelersForPartySize(0))
	assert.Equal(t, "solo", TravelersForPartySize(1))
	assert.Equal(t, "couple", TravelersForPartySize(2))
	assert.Equal(t, "group", TravelersForPartySize(5))
}

func TestHotelSearchRequest_WithDefaults(t *testing.T) {
	req := HotelSearchRequest{Destination: "Rome"}.WithDefaults()
	assert.Equal(t, "medium", req.Budget)
	assert.Equal(t, 2, req.Guests)
	assert.Equal(t, 3, req.Duration)

	kept := HotelSearchRequest{Destination: "Rome", Budget: "luxury", Guests: 4, Duration: 7}.WithDefaults()
	assert.Equal(t, "luxury", kept.Budget)
	assert.Equal(t, 4, kept.Guests)
}
