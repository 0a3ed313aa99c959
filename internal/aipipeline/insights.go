package aipipeline

import "tripmigo/internal/models/response_models"

var InsightsSchema = MustSchema("destination_insights",
	Field{Name: "best_time_to_visit", Kind: FieldString},
	Field{Name: "highlights", Kind: FieldArray},
)

const insightsExample = `{
    "best_time_to_visit": "Specific months and reasons",
    "highlights": ["top attraction 1", "top attraction 2", ...],
    "local_cuisine": ["dish 1", "dish 2", ...],
    "cultural_tips": ["tip 1", "tip 2", ...],
    "budget_estimates": {
        "budget": "$50-80/day",
        "mid-range": "$100-150/day",
        "luxury": "$200+/day"
    },
    "transportation": ["option 1", "option 2", ...],
    "safety_tips": ["tip 1", "tip 2", ...]
}`

func BuildInsightsPrompt(destination string) string {
	return NewPromptBuilder("Provide comprehensive insights about "+destination+" as a travel destination.").
		Section("Instructions").
		Instruction("Name the best months to visit %s and say why", destination).
		Instruction("List the top attractions and experiences").
		Instruction("List local dishes worth trying").
		Instruction("Give cultural etiquette tips and safety advice").
		Instruction("Estimate daily costs for budget, mid-range and luxury travelers").
		Instruction("Describe the practical ways to get around").
		Example("Include the following in JSON format:", insightsExample).
		String()
}

func ReconcileInsights(doc Document) (response_models.DestinationInsights, error) {
	best, ok := stringField(doc, "best_time_to_visit")
	if !ok {
		return response_models.DestinationInsights{}, reconciliationError("insights: blank best_time_to_visit")
	}

	highlights, err := requiredStringList(doc, "highlights")
	if err != nil {
		return response_models.DestinationInsights{}, err
	}

	estimates := map[string]string{}
	if raw, ok := objectField(doc, "budget_estimates"); ok {
		for k := range raw {
			if v, ok := stringField(raw, k); ok {
				estimates[k] = v
			}
		}
	}
	if len(estimates) == 0 {
		estimates = defaultBudgetEstimates()
	}

	return response_models.DestinationInsights{
		BestTimeToVisit: best,
		Highlights:      highlights,
		LocalCuisine:    stringList(doc, "local_cuisine"),
		CulturalTips:    stringList(doc, "cultural_tips"),
		BudgetEstimates: estimates,
		Transportation:  stringList(doc, "transportation"),
		SafetyTips:      stringList(doc, "safety_tips"),
	}, nil
}

func defaultBudgetEstimates() map[string]string {
	return map[string]string{
		"budget":    "$50-80/day",
		"mid-range": "$100-150/day",
		"luxury":    "$200+/day",
	}
}

func FallbackInsights(destination string) response_models.DestinationInsights {
	return response_models.DestinationInsights{
		BestTimeToVisit: "Spring and autumn usually offer the most comfortable weather in " + destination,
		Highlights:      []string{"Historic center of " + destination, "Local markets", "Museums and galleries"},
		LocalCuisine:    []string{"Regional specialties of " + destination, "Street food"},
		CulturalTips:    []string{"Learn a few local greetings", "Respect local customs at religious sites"},
		BudgetEstimates: defaultBudgetEstimates(),
		Transportation:  []string{"Public transit", "Walking", "Taxis and ride sharing"},
		SafetyTips:      []string{"Keep valuables secure in crowded areas", "Use licensed taxis"},
	}
}

func InsightsUseCase(destination string) UseCase[response_models.DestinationInsights] {
	return UseCase[response_models.DestinationInsights]{
		Name:        "insights",
		BuildPrompt: func() string { return BuildInsightsPrompt(destination) },
		Config:      InsightsConfig,
		Schema:      InsightsSchema,
		Reconcile: func(doc Document) (response_models.DestinationInsights, error) {
			return ReconcileInsights(doc)
		},
		Fallback: func() response_models.DestinationInsights { return FallbackInsights(destination) },
	}
}
