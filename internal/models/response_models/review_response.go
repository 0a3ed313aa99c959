package response_models

type ReviewSummary struct {
	Pros             []string           `json:"pros"`
	Cons             []string           `json:"cons"`
	OverallSentiment string             `json:"overall_sentiment"` // positive, negative, neutral
	RatingBreakdown  map[string]float64 `json:"rating_breakdown,omitempty"`
}

type ReviewSummaryResponse struct {
	Summary ReviewSummary `json:"summary"`
	Source  string        `json:"source"`
}

type DestinationInsights struct {
	BestTimeToVisit string            `json:"best_time_to_visit"`
	Highlights      []string          `json:"highlights"`
	LocalCuisine    []string          `json:"local_cuisine"`
	CulturalTips    []string          `json:"cultural_tips"`
	BudgetEstimates map[string]string `json:"budget_estimates"`
	Transportation  []string          `json:"transportation"`
	SafetyTips      []string          `json:"safety_tips"`
}
