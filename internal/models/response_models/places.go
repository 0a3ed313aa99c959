package response_models

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Place struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	Types            []string `json:"types"`
	Location         *LatLng  `json:"location,omitempty"`
	Vicinity         string   `json:"vicinity,omitempty"`
	PriceLevel       int      `json:"price_level,omitempty"`
	Photos           []string `json:"photos"`
}

type PlaceReview struct {
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating"`
	Text       string `json:"text"`
	Time       int    `json:"time"`
}

type PlaceDetails struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Address          string        `json:"address"`
	Rating           *float64      `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
	Location         *LatLng       `json:"location,omitempty"`
	Reviews          []PlaceReview `json:"reviews"`
	Photos           []string      `json:"photos"`
	Website          string        `json:"website,omitempty"`
	Phone            string        `json:"phone,omitempty"`
	OpeningHours     []string      `json:"opening_hours,omitempty"`
	OpenNow          *bool         `json:"open_now,omitempty"`
	PriceLevel       int           `json:"price_level,omitempty"`
	Types            []string      `json:"types"`
}

type RouteStep struct {
	Instruction   string `json:"instruction"`
	Distance      string `json:"distance"`
	Duration      string `json:"duration"`
	StartLocation LatLng `json:"start_location"`
	EndLocation   LatLng `json:"end_location"`
}

type DirectionsRoute struct {
	Summary          string      `json:"summary"`
	Duration         string      `json:"duration"`
	Distance         string      `json:"distance"`
	Steps            []RouteStep `json:"steps"`
	OverviewPolyline string      `json:"overview_polyline"`
}

type GeocodeResult struct {
	Address  string   `json:"address"`
	Location LatLng   `json:"location"`
	PlaceID  string   `json:"place_id"`
	Types    []string `json:"types"`
}

type PlaceSearchResponse struct {
	Results []Place `json:"results"`
	Status  string  `json:"status"`
}

type DirectionsResponse struct {
	Routes []DirectionsRoute `json:"routes"`
	Status string            `json:"status"`
}

type GeocodeResponse struct {
	Results []GeocodeResult `json:"results"`
	Status  string          `json:"status"`
}
