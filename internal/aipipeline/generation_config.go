package aipipeline

// GenerationConfig holds the sampling parameters for one call type. The values
// are fixed per use case; request handlers have no way to override them.
type GenerationConfig struct {
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

var (
	ItineraryConfig = GenerationConfig{Temperature: 0.7, TopP: 0.9, TopK: 40, MaxOutputTokens: 8192}
	HotelConfig     = GenerationConfig{Temperature: 0.6, TopP: 0.9, TopK: 40, MaxOutputTokens: 4096}
	ReviewConfig    = GenerationConfig{Temperature: 0.2, TopP: 0.8, TopK: 20, MaxOutputTokens: 1024}
	InsightsConfig  = GenerationConfig{Temperature: 0.5, TopP: 0.9, TopK: 40, MaxOutputTokens: 2048}
)
