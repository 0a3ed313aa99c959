package response_models

type ActivityItem struct {
	Time            string `json:"time"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Type            string `json:"type"` // activity, food, transport, accommodation
	Icon            string `json:"icon"`
	Duration        string `json:"duration"`
	Location        string `json:"location"`
	EstimatedCost   string `json:"estimated_cost,omitempty"`
	BookingRequired bool   `json:"booking_required"`
}

type ItineraryDay struct {
	Day   int            `json:"day"`
	Date  string         `json:"date"`
	Title string         `json:"title"`
	Items []ActivityItem `json:"items"`
}

// Itinerary is the reconciled answer of the itinerary use case.
type Itinerary struct {
	Days               []ItineraryDay `json:"days"`
	TravelTips         []string       `json:"travel_tips"`
	TotalEstimatedCost string         `json:"total_estimated_cost"`
	Description        string         `json:"description,omitempty"`
}

type PlaceDetailsSummary struct {
	PlaceID string   `json:"place_id"`
	Rating  *float64 `json:"rating,omitempty"`
	Address string   `json:"address"`
	Photos  []string `json:"photos,omitempty"`
}

type ItineraryResponse struct {
	Itinerary          []ItineraryDay      `json:"itinerary"`
	PlaceDetails       PlaceDetailsSummary `json:"place_details"`
	TotalEstimatedCost string              `json:"total_estimated_cost"`
	TravelTips         []string            `json:"travel_tips"`
	Description        string              `json:"description"`
	Source             string              `json:"source"`
}

type OptimizedItineraryResponse struct {
	Itinerary          []ItineraryDay   `json:"itinerary"`
	Route              *DirectionsRoute `json:"route,omitempty"`
	RouteError         string           `json:"route_error,omitempty"`
	TotalEstimatedCost string           `json:"total_estimated_cost"`
	TravelTips         []string         `json:"travel_tips"`
	Optimized          bool             `json:"optimized"`
	Source             string           `json:"source"`
}
