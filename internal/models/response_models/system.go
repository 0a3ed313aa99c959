package response_models

type MapsConfig struct {
	MapsAPIKey string `json:"mapsApiKey"`
}

type AppConfig struct {
	Maps     MapsConfig `json:"maps"`
	Features []string   `json:"features"`
	Version  string     `json:"version"`
}

type HealthResponse struct {
	Status      string          `json:"status"`
	Services    map[string]bool `json:"services"`
	Environment map[string]bool `json:"environment"`
	Model       string          `json:"model,omitempty"`
}
