package aipipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripmigo/internal/models/request_models"
)

func TestPromptBuilder_Order(t *testing.T) {
	got := NewPromptBuilder("You are a planner.").
		Section("Trip Details").
		Field("Destination", "Porto", "Not specified").
		Field("Start Date", "", "Flexible").
		ListField("Interests", []string{" ", "wine"}, "General sightseeing").
		Section("Instructions").
		Instruction("First").
		Instruction("Second %d", 2).
		Example("Format:", `{"a": 1}`).
		String()

	assert.True(t, strings.HasPrefix(got, "You are a planner.\n"))
	assert.Contains(t, got, "- Start Date: Flexible\n")
	assert.Contains(t, got, "- Interests: wine\n")
	assert.Contains(t, got, "1. First\n2. Second 2\n")
	assert.True(t, strings.Index(got, "**Instructions:**") < strings.Index(got, `{"a": 1}`))
	assert.True(t, strings.HasSuffix(got, jsonOnlyDirective+"\n"))
}

func TestBuildItineraryPrompt_Defaults(t *testing.T) {
	got := BuildItineraryPrompt(request_models.TripRequest{
		Destination:  "Kyoto",
		Budget:       "budget",
		DurationDays: 2,
		TravelStyle:  "packed",
		Travelers:    "couple",
	})

	assert.Contains(t, got, "- Source: Not specified")
	assert.Contains(t, got, "- Duration: 2 days")
	assert.Contains(t, got, "- Number of People: Based on traveler type")
	assert.Contains(t, got, "- Interests: General sightseeing")
	assert.Contains(t, got, "- Accommodation: Mid-range hotel")
	assert.Contains(t, got, "- Constraints: None specified")
	assert.Contains(t, got, `"location": "Specific location in Kyoto"`)
}

func TestBuildHotelPrompt(t *testing.T) {
	got := BuildHotelPrompt(request_models.HotelSearchRequest{Destination: "Oslo", Budget: "luxury", Guests: 3, Duration: 4})

	assert.Contains(t, got, "- Number of Guests: 3")
	assert.Contains(t, got, "- Preferences: None specified")
	assert.Contains(t, got, `"city": "Oslo"`)
	assert.Contains(t, got, "Budget Guidelines:")
}

func TestBuildReviewPrompt_SkipsBlankReviews(t *testing.T) {
	got := BuildReviewPrompt([]string{"Loved it", "  "})
	assert.Contains(t, got, "Loved it\n")
	assert.Contains(t, got, `"overall_sentiment"`)
}

func TestBuildReviewPrompt_NumberedInstructions(t *testing.T) {
	got := BuildReviewPrompt([]string{"nice"})
	assert.Contains(t, got, "**Instructions:**")
	assert.Contains(t, got, "1. Identify the positives")
	assert.Contains(t, got, "3. Classify the overall sentiment as positive, negative or neutral")
	assert.Less(t, strings.Index(got, "1. "), strings.Index(got, "EXACT JSON format"))
}

func TestBuildInsightsPrompt_NumberedInstructions(t *testing.T) {
	got := BuildInsightsPrompt("Rome")
	assert.Contains(t, got, "1. Name the best months to visit Rome")
	assert.Contains(t, got, "6. Describe the practical ways to get around")
	assert.Contains(t, got, `"best_time_to_visit"`)
}
