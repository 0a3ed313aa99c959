package aipipeline

import (
	"strings"

	"go.uber.org/zap"

	"tripmigo/internal/models/response_models"
)

var ReviewSchema = MustSchema("review_summary",
	Field{Name: "pros", Kind: FieldArray},
	Field{Name: "cons", Kind: FieldArray},
)

const reviewExample = `{
    "pros": ["positive point 1", "positive point 2", ...],
    "cons": ["negative point 1", "negative point 2", ...],
    "overall_sentiment": "positive/negative/neutral",
    "rating_breakdown": {
        "service": 4.2,
        "value": 3.8,
        "location": 4.5
    }
}`

var sentiments = map[string]struct{}{
	"positive": {},
	"negative": {},
	"neutral":  {},
}

func BuildReviewPrompt(reviews []string) string {
	b := NewPromptBuilder("Analyze the following reviews and provide a comprehensive summary:")

	b.Section("Reviews")
	for _, r := range reviews {
		if r = strings.TrimSpace(r); r != "" {
			b.Line(r)
		}
	}

	b.Section("Instructions").
		Instruction("Identify the positives that recur across reviews as pros").
		Instruction("Identify the complaints that recur across reviews as cons").
		Instruction("Classify the overall sentiment as positive, negative or neutral").
		Instruction("Rate service, value and location from 1 to 5 where the reviews support it")

	b.Example("Provide your analysis in this EXACT JSON format:", reviewExample)
	b.Line("").Line("Focus on common themes and provide actionable insights.")
	return b.String()
}

// ReconcileReviews keeps string pros and cons, coerces the sentiment onto
// positive/negative/neutral and drops non-numeric rating entries.
func ReconcileReviews(doc Document, logger *zap.Logger) (response_models.ReviewSummary, error) {
	pros, err := requiredStringList(doc, "pros")
	if err != nil {
		return response_models.ReviewSummary{}, err
	}
	cons, err := requiredStringList(doc, "cons")
	if err != nil {
		return response_models.ReviewSummary{}, err
	}

	summary := response_models.ReviewSummary{
		Pros:             pros,
		Cons:             cons,
		OverallSentiment: "neutral",
	}

	if s, ok := stringField(doc, "overall_sentiment"); ok {
		s = strings.ToLower(s)
		if _, known := sentiments[s]; known {
			summary.OverallSentiment = s
		} else {
			logger.Warn("unknown review sentiment", zap.String("sentiment", s))
		}
	}

	if breakdown, ok := objectField(doc, "rating_breakdown"); ok {
		summary.RatingBreakdown = make(map[string]float64, len(breakdown))
		for k := range breakdown {
			if v, ok := numberField(breakdown, k); ok {
				summary.RatingBreakdown[k] = v
			}
		}
		if len(summary.RatingBreakdown) == 0 {
			summary.RatingBreakdown = nil
		}
	}
	return summary, nil
}

func FallbackReviewSummary() response_models.ReviewSummary {
	return response_models.ReviewSummary{
		Pros:             []string{"Generally positive feedback", "Good service quality"},
		Cons:             []string{"Some minor issues reported", "Limited feedback available"},
		OverallSentiment: "positive",
	}
}

// EmptyReviewSummary is returned without a model call when there is nothing to summarize.
func EmptyReviewSummary() response_models.ReviewSummary {
	return response_models.ReviewSummary{
		Pros:             []string{"No reviews available"},
		Cons:             []string{"Insufficient data"},
		OverallSentiment: "neutral",
	}
}

func ReviewUseCase(reviews []string, logger *zap.Logger) UseCase[response_models.ReviewSummary] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return UseCase[response_models.ReviewSummary]{
		Name:        "reviews",
		BuildPrompt: func() string { return BuildReviewPrompt(reviews) },
		Config:      ReviewConfig,
		Schema:      ReviewSchema,
		Reconcile: func(doc Document) (response_models.ReviewSummary, error) {
			return ReconcileReviews(doc, logger)
		},
		Fallback: FallbackReviewSummary,
	}
}
