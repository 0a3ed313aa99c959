package aipipeline

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tripmigo/internal/models/request_models"
	"tripmigo/internal/models/response_models"
)

var ItinerarySchema = MustSchema("itinerary", Field{Name: "days", Kind: FieldArray})

const itineraryExample = `{
    "days": [
        {
            "day": 1,
            "date": "Day 1",
            "title": "Day 1 - Arrival and %[1]s Introduction",
            "items": [
                {
                    "time": "9:00 AM",
                    "title": "Activity Name",
                    "description": "Detailed description considering preferences: %[2]s, %[3]s, %[4]s",
                    "type": "activity",
                    "icon": "map-pin",
                    "duration": "2-3 hours",
                    "location": "Specific location in %[1]s",
                    "estimated_cost": "$20-40",
                    "booking_required": false
                }
            ]
        }
    ],
    "travel_tips": [
        "Practical tip considering %[4]s diet",
        "Transportation tip for %[3]s",
        "Budget tip for %[5]s level"
    ],
    "total_estimated_cost": "Budget estimate considering all selected preferences",
    "description": "AI-generated personalized itinerary for %[1]s with %[2]s, %[3]s, and %[4]s preferences"
}`

func BuildItineraryPrompt(trip request_models.TripRequest) string {
	hotel := orDefault(trip.SelectedHotel, "Mid-range hotel")
	mode := orDefault(trip.TravelMode, "Mixed transportation")
	food := orDefault(trip.FoodPreference, "Any")

	people := ""
	if trip.NumberOfPeople > 0 {
		people = fmt.Sprint(trip.NumberOfPeople)
	}

	b := NewPromptBuilder("You are an expert travel planner with deep knowledge of destinations worldwide. " +
		"Create a detailed, practical itinerary for the following trip with comprehensive planning details:")

	b.Section("Trip Details").
		Field("Source", trip.Source, "Not specified").
		Field("Destination", trip.Destination, "Not specified").
		Field("Budget Level", trip.Budget, "Not specified").
		Field("Duration", fmt.Sprintf("%d days", trip.DurationDays), "").
		Field("Number of People", people, "Based on traveler type").
		ListField("Interests", trip.Interests, "General sightseeing").
		Field("Travel Style", trip.TravelStyle, "Not specified").
		Field("Travelers", trip.Travelers, "Not specified").
		Field("Start Date", trip.StartDate, "Flexible")

	b.Section("Selected Preferences").
		Field("Accommodation", hotel, "").
		Field("Transportation", mode, "").
		Field("Food Preference", food, "").
		ListField("Essential Items", trip.SelectedEssentials, "Standard travel items").
		Field("Constraints", trip.Constraints, "None specified")

	b.Section("Instructions").
		Instruction("Create a day-by-day itinerary with specific times that considers ALL the selected preferences").
		Instruction("Include activities that match the interests and accommodation level").
		Instruction("Incorporate the selected travel mode for transportation recommendations").
		Instruction("Respect the food preference when suggesting restaurants and meals").
		Instruction("Consider the essential items when planning activities (e.g., hiking gear = outdoor activities)").
		Instruction("Include mix of activities based on budget level and travel style").
		Instruction("Add practical details like duration, location, and costs").
		Instruction("Suggest booking requirements where needed").
		Instruction("Produce exactly %d days", trip.DurationDays)

	b.Example("**Response Format (MUST be valid JSON):**",
		fmt.Sprintf(itineraryExample, trip.Destination, hotel, mode, food, trip.Budget))

	return b.String()
}

// ReconcileItinerary maps a validated document onto an Itinerary. Items without
// a title or time are dropped, as are days left without items.
func ReconcileItinerary(doc Document, trip request_models.TripRequest, logger *zap.Logger) (response_models.Itinerary, error) {
	rawDays, _ := arrayField(doc, "days")

	days := make([]response_models.ItineraryDay, 0, len(rawDays))
	for i, rd := range rawDays {
		m, ok := rd.(map[string]any)
		if !ok {
			logger.Warn("dropping itinerary day", zap.Int("index", i), zap.String("reason", "not an object"))
			continue
		}
		day, err := reconcileDay(m, i+1, trip.Destination, logger)
		if err != nil {
			logger.Warn("dropping itinerary day", zap.Int("index", i), zap.Error(err))
			continue
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return response_models.Itinerary{}, reconciliationError("itinerary: no usable days in %d entries", len(rawDays))
	}

	return response_models.Itinerary{
		Days:               days,
		TravelTips:         stringList(doc, "travel_tips"),
		TotalEstimatedCost: stringOr(doc, "total_estimated_cost", EstimatedCostRange(trip.DurationDays)),
		Description:        stringOr(doc, "description", "AI-generated itinerary for "+trip.Destination),
	}, nil
}

func reconcileDay(m map[string]any, position int, destination string, logger *zap.Logger) (response_models.ItineraryDay, error) {
	rawItems, ok := arrayField(m, "items")
	if !ok {
		return response_models.ItineraryDay{}, fmt.Errorf("missing items")
	}

	number, ok := intField(m, "day")
	if !ok || number < 1 {
		number = position
	}

	items := make([]response_models.ActivityItem, 0, len(rawItems))
	for j, ri := range rawItems {
		im, ok := ri.(map[string]any)
		if !ok {
			logger.Warn("dropping itinerary item", zap.Int("day", number), zap.Int("index", j), zap.String("reason", "not an object"))
			continue
		}
		item, err := reconcileItem(im, destination)
		if err != nil {
			logger.Warn("dropping itinerary item", zap.Int("day", number), zap.Int("index", j), zap.Error(err))
			continue
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return response_models.ItineraryDay{}, fmt.Errorf("no usable items in %d entries", len(rawItems))
	}

	return response_models.ItineraryDay{
		Day:   number,
		Date:  stringOr(m, "date", fmt.Sprintf("Day %d", number)),
		Title: stringOr(m, "title", fmt.Sprintf("Day %d - Exploring %s", number, destination)),
		Items: items,
	}, nil
}

func reconcileItem(m map[string]any, destination string) (response_models.ActivityItem, error) {
	title, ok := stringField(m, "title")
	if !ok {
		return response_models.ActivityItem{}, fmt.Errorf("missing title")
	}
	at, ok := stringField(m, "time")
	if !ok {
		return response_models.ActivityItem{}, fmt.Errorf("missing time")
	}

	location, _ := m["location"].(string)

	return response_models.ActivityItem{
		Time:            at,
		Title:           title,
		Description:     stringOr(m, "description", title),
		Type:            stringOr(m, "type", "activity"),
		Icon:            stringOr(m, "icon", "map-pin"),
		Duration:        stringOr(m, "duration", "Flexible"),
		Location:        repairLocation(location, destination),
		EstimatedCost:   stringOr(m, "estimated_cost", "Varies"),
		BookingRequired: boolOr(m, "booking_required", false),
	}, nil
}

// EstimatedCostRange formats the per-trip cost band used when no estimate is known.
func EstimatedCostRange(days int) string {
	return fmt.Sprintf("$%d-%d", 500*days, 800*days)
}

// FallbackItinerary builds a generic plan with two activities per day.
func FallbackItinerary(trip request_models.TripRequest) response_models.Itinerary {
	dest := trip.Destination
	days := make([]response_models.ItineraryDay, 0, trip.DurationDays)
	for d := 1; d <= trip.DurationDays; d++ {
		days = append(days, response_models.ItineraryDay{
			Day:   d,
			Date:  fmt.Sprintf("Day %d", d),
			Title: fmt.Sprintf("Day %d - Exploring %s", d, dest),
			Items: []response_models.ActivityItem{
				{
					Time:          "9:00 AM",
					Title:         "Morning exploration of " + dest,
					Description:   "Discover the highlights of " + dest,
					Type:          "activity",
					Icon:          "map-pin",
					Duration:      "3 hours",
					Location:      dest + " city center",
					EstimatedCost: "$30-50",
				},
				{
					Time:          "2:00 PM",
					Title:         "Local cuisine experience",
					Description:   "Try traditional dishes from " + dest,
					Type:          "food",
					Icon:          "utensils",
					Duration:      "1.5 hours",
					Location:      "Popular restaurant in " + dest,
					EstimatedCost: "$25-45",
				},
			},
		})
	}

	return response_models.Itinerary{
		Days: days,
		TravelTips: []string{
			"Book accommodations in advance for " + dest,
			"Check local weather conditions before traveling",
			"Learn basic local phrases for better experience",
		},
		TotalEstimatedCost: EstimatedCostRange(trip.DurationDays),
		Description:        "Itinerary for " + dest,
	}
}

// ItineraryUseCase wires the itinerary prompt, reconciler and fallback together.
func ItineraryUseCase(trip request_models.TripRequest, logger *zap.Logger) UseCase[response_models.Itinerary] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return UseCase[response_models.Itinerary]{
		Name:        "itinerary",
		BuildPrompt: func() string { return BuildItineraryPrompt(trip) },
		Config:      ItineraryConfig,
		Schema:      ItinerarySchema,
		Reconcile: func(doc Document) (response_models.Itinerary, error) {
			return ReconcileItinerary(doc, trip, logger)
		},
		Fallback: func() response_models.Itinerary { return FallbackItinerary(trip) },
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
