package aipipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tripmigo/internal/models/request_models"
)

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr bool
	}{
		{"valid", Document{"pros": []any{}, "cons": []any{"y"}}, false},
		{"missing field", Document{"pros": []any{"x"}}, true},
		{"wrong kind", Document{"pros": "x", "cons": []any{}}, true},
		{"nil document", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ReviewSchema.Validate(tt.doc)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrReconciliationFailure)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func kyotoTrip() request_models.TripRequest {
	return request_models.TripRequest{
		Destination:  "Kyoto",
		Budget:       "mid-range",
		DurationDays: 3,
		Interests:    []string{"food"},
		TravelStyle:  "relaxed",
		Travelers:    "solo",
	}
}

func item(title, location string) map[string]any {
	return map[string]any{
		"time":     "9:00 AM",
		"title":    title,
		"location": location,
	}
}

func TestReconcileItinerary_DropsMalformedItem(t *testing.T) {
	doc := Document{
		"days": []any{
			map[string]any{
				"day": float64(1),
				"items": []any{
					item("Temple walk", "Gion"),
					map[string]any{"time": "1:00 PM"}, // no title
					item("Tea ceremony", "Uji"),
				},
			},
		},
	}

	got, err := ReconcileItinerary(doc, kyotoTrip(), zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, got.Days, 1)
	assert.Len(t, got.Days[0].Items, 2)
	assert.Equal(t, "Day 1", got.Days[0].Date)
	assert.Equal(t, "Day 1 - Exploring Kyoto", got.Days[0].Title)
	assert.Equal(t, "$1500-2400", got.TotalEstimatedCost)
	assert.NotNil(t, got.TravelTips)
}

func TestReconcileItinerary_RepairsBlankLocation(t *testing.T) {
	doc := Document{
		"days": []any{
			map[string]any{"items": []any{item("Market", ""), item("Shrine", "  "), item("Castle", "N/A")}},
		},
	}

	got, err := ReconcileItinerary(doc, kyotoTrip(), zaptest.NewLogger(t))
	require.NoError(t, err)
	for _, it := range got.Days[0].Items {
		assert.Equal(t, "Kyoto", it.Location)
	}
}

func TestReconcileItinerary_NoUsableDays(t *testing.T) {
	doc := Document{"days": []any{"day one", map[string]any{"items": []any{}}}}

	_, err := ReconcileItinerary(doc, kyotoTrip(), zaptest.NewLogger(t))
	assert.ErrorIs(t, err, ErrReconciliationFailure)
}

func hotelEntry(id string) map[string]any {
	return map[string]any{
		"id":            id,
		"name":          "Hotel " + id,
		"description":   "Nice",
		"location":      map[string]any{"address": "1 Road", "city": "Kyoto", "latitude": 35.0, "longitude": 135.7},
		"rating":        4.1,
		"reviewCount":   float64(120),
		"pricePerNight": map[string]any{"amount": float64(150), "currency": "JPY"},
		"images":        []any{"a.jpg", 3},
		"amenities":     []any{map[string]any{"name": "Pool", "available": true}, map[string]any{"available": true}},
		"category":      "medium",
	}
}

func TestReconcileHotels_DropsOneOfN(t *testing.T) {
	broken := hotelEntry("h3")
	delete(broken, "rating")

	doc := Document{"hotels": []any{hotelEntry("h1"), hotelEntry("h2"), broken, hotelEntry("h4")}}
	req := request_models.HotelSearchRequest{Destination: "Kyoto", Budget: "medium"}

	got, err := ReconcileHotels(doc, req, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Len(t, got, 3)

	h := got[0]
	assert.Equal(t, "h1", h.ID)
	assert.Equal(t, []string{"a.jpg"}, h.Images)
	assert.Len(t, h.Amenities, 1)
	assert.Equal(t, 150.0, h.PricePerNight.Amount)
	assert.Equal(t, "JPY", h.PricePerNight.Currency)
	require.NotNil(t, h.Location.Latitude)
	assert.Equal(t, 35.0, *h.Location.Latitude)
}

func TestReconcileHotels_RepairsAddress(t *testing.T) {
	entry := hotelEntry("h1")
	entry["location"] = map[string]any{"address": "", "city": ""}

	req := request_models.HotelSearchRequest{Destination: "Kyoto", Budget: "medium"}
	got, err := ReconcileHotels(Document{"hotels": []any{entry}}, req, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", got[0].Location.Address)
	assert.Equal(t, "Kyoto", got[0].Location.City)
	assert.Nil(t, got[0].Location.Latitude)
}

func TestReconcileHotels_AllDropped(t *testing.T) {
	req := request_models.HotelSearchRequest{Destination: "Kyoto"}
	_, err := ReconcileHotels(Document{"hotels": []any{map[string]any{"name": "x"}}}, req, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, ErrReconciliationFailure)
}

func TestReconcileReviews(t *testing.T) {
	doc := Document{
		"pros":              []any{"clean", 4, " "},
		"cons":              []any{"noisy"},
		"overall_sentiment": "Mostly good",
		"rating_breakdown":  map[string]any{"service": 4.2, "value": "high"},
	}

	got, err := ReconcileReviews(doc, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"clean"}, got.Pros)
	assert.Equal(t, []string{"noisy"}, got.Cons)
	assert.Equal(t, "neutral", got.OverallSentiment)
	assert.Equal(t, map[string]float64{"service": 4.2}, got.RatingBreakdown)
}

func TestReconcileReviews_AllEntriesMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"pros", Document{"pros": []any{1, 2}, "cons": []any{"noisy"}}},
		{"cons", Document{"pros": []any{"clean"}, "cons": []any{nil, map[string]any{}}}},
		{"blank strings", Document{"pros": []any{" ", ""}, "cons": []any{"noisy"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReconcileReviews(tt.doc, zaptest.NewLogger(t))
			require.Error(t, err)
			assert.Equal(t, KindReconciliationFailure, KindOf(err))
		})
	}
}

func TestReconcileReviews_EmptyArraysAreKept(t *testing.T) {
	got, err := ReconcileReviews(Document{"pros": []any{}, "cons": []any{}}, zaptest.NewLogger(t))
	require.NoError(t, err)
	assert.Empty(t, got.Pros)
	assert.Empty(t, got.Cons)
}

func TestReconcileInsights_AllHighlightsMalformed(t *testing.T) {
	_, err := ReconcileInsights(Document{"best_time_to_visit": "Spring", "highlights": []any{3, nil}})
	require.Error(t, err)
	assert.Equal(t, KindReconciliationFailure, KindOf(err))
}

func TestReconcileInsights(t *testing.T) {
	doc := Document{
		"best_time_to_visit": "Spring",
		"highlights":         []any{"Fushimi Inari"},
		"budget_estimates":   map[string]any{"budget": "$60/day", "luxury": 300},
	}

	got, err := ReconcileInsights(doc)
	require.NoError(t, err)
	assert.Equal(t, "Spring", got.BestTimeToVisit)
	assert.Equal(t, map[string]string{"budget": "$60/day"}, got.BudgetEstimates)
	assert.Empty(t, got.SafetyTips)
	assert.NotNil(t, got.SafetyTips)
}
