package response_models

type HotelLocation struct {
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Amenity struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

type Hotel struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Location      HotelLocation `json:"location"`
	Rating        float64       `json:"rating"`
	ReviewCount   int           `json:"reviewCount"`
	PricePerNight Price         `json:"pricePerNight"`
	Images        []string      `json:"images"`
	Amenities     []Amenity     `json:"amenities"`
	Category      string        `json:"category"`
}

type HotelRecommendationsResponse struct {
	Hotels      []Hotel `json:"hotels"`
	Destination string  `json:"destination"`
	Budget      string  `json:"budget"`
	Guests      int     `json:"guests"`
	Duration    int     `json:"duration"`
	Source      string  `json:"source"`
}
