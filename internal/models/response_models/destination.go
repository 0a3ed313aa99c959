package response_models

type DestinationImages struct {
	Hero      string   `json:"hero" yaml:"hero"`
	Slideshow []string `json:"slideshow" yaml:"slideshow"`
	Thumbnail string   `json:"thumbnail" yaml:"thumbnail"`
}

type DestinationVideos struct {
	Hero      string `json:"hero" yaml:"hero"`
	Thumbnail string `json:"thumbnail" yaml:"thumbnail"`
}

type EstimatedCost struct {
	Budget string `json:"budget" yaml:"budget"`
	Range  string `json:"range" yaml:"range"`
}

type Destination struct {
	ID              string            `json:"id" yaml:"id"`
	Name            string            `json:"name" yaml:"name"`
	Country         string            `json:"country" yaml:"country"`
	Description     string            `json:"description" yaml:"description"`
	Images          DestinationImages `json:"images" yaml:"images"`
	Videos          DestinationVideos `json:"videos" yaml:"videos"`
	Rating          float64           `json:"rating" yaml:"rating"`
	Tags            []string          `json:"tags" yaml:"tags"`
	Highlights      []string          `json:"highlights" yaml:"highlights"`
	BestTimeToVisit string            `json:"best_time_to_visit" yaml:"best_time_to_visit"`
	EstimatedCost   EstimatedCost     `json:"estimated_cost" yaml:"estimated_cost"`
}

type TripAuthor struct {
	Name     string `json:"name" yaml:"name"`
	Avatar   string `json:"avatar" yaml:"avatar"`
	Initials string `json:"initials" yaml:"initials"`
	Location string `json:"location" yaml:"location"`
}

type SharedTrip struct {
	ID          string     `json:"id" yaml:"id"`
	User        TripAuthor `json:"user" yaml:"user"`
	Destination string     `json:"destination" yaml:"destination"`
	Duration    string     `json:"duration" yaml:"duration"`
	GroupSize   int        `json:"group_size" yaml:"group_size"`
	Highlights  []string   `json:"highlights" yaml:"highlights"`
	Date        string     `json:"date" yaml:"date"`
	Rating      int        `json:"rating" yaml:"rating"`
	Review      string     `json:"review" yaml:"review"`
}

type ItineraryTemplate struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Destination string   `json:"destination" yaml:"destination"`
	Duration    int      `json:"duration" yaml:"duration"`
	Style       string   `json:"style" yaml:"style"`
	Highlights  []string `json:"highlights" yaml:"highlights"`
}

type DestinationSuggestion struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

type DestinationListResponse struct {
	Destinations []Destination `json:"destinations"`
	Total        int           `json:"total"`
	Search       string        `json:"search,omitempty"`
	Limit        int           `json:"limit"`
}

// DestinationDetailsResponse carries catalog data plus best-effort enrichment.
// PlaceDetailsError is set instead of PlaceDetails when the lookup failed.
type DestinationDetailsResponse struct {
	Destination       Destination         `json:"destination"`
	AIInsights        DestinationInsights `json:"ai_insights"`
	InsightsSource    string              `json:"insights_source"`
	PlaceDetails      *PlaceDetails       `json:"place_details,omitempty"`
	PlaceDetailsError string              `json:"place_details_error,omitempty"`
}

type DestinationSuggestionsResponse struct {
	Suggestions []DestinationSuggestion `json:"suggestions"`
	Source      string                  `json:"source"`
}
