package aipipeline

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tripmigo/internal/models/request_models"
	"tripmigo/internal/models/response_models"
)

var HotelSchema = MustSchema("hotels", Field{Name: "hotels", Kind: FieldArray})

type priceBand struct{ Min, Max float64 }

var hotelPriceBands = map[string]priceBand{
	"budget": {Min: 60, Max: 100},
	"medium": {Min: 120, Max: 200},
	"luxury": {Min: 250, Max: 500},
}

// HotelTier maps a requested budget onto a price-band key. Unknown tiers use medium.
func HotelTier(budget string) string {
	tier := strings.ToLower(strings.TrimSpace(budget))
	switch tier {
	case "mid-range", "midrange", "mid_range", "moderate":
		return "medium"
	}
	if _, ok := hotelPriceBands[tier]; ok {
		return tier
	}
	return "medium"
}

// HotelPriceBand returns the nightly (min, max) for budget.
func HotelPriceBand(budget string) (float64, float64) {
	b := hotelPriceBands[HotelTier(budget)]
	return b.Min, b.Max
}

const hotelExample = `{
    "hotels": [
        {
            "id": "hotel_1",
            "name": "Hotel Name",
            "description": "Brief description highlighting unique features and location benefits",
            "location": {
                "address": "Full street address",
                "city": "%s",
                "latitude": 0.0,
                "longitude": 0.0
            },
            "rating": 4.5,
            "reviewCount": 1250,
            "pricePerNight": {
                "amount": 150,
                "currency": "USD"
            },
            "images": [
                "https://example.com/hotel1-exterior.jpg",
                "https://example.com/hotel1-room.jpg",
                "https://example.com/hotel1-amenity.jpg"
            ],
            "amenities": [
                {"name": "Free WiFi", "available": true},
                {"name": "Pool", "available": true},
                {"name": "Gym", "available": true},
                {"name": "Restaurant", "available": true},
                {"name": "Spa", "available": false},
                {"name": "Parking", "available": true},
                {"name": "Bar", "available": true}
            ],
            "category": "mid-range"
        }
    ]
}`

func BuildHotelPrompt(req request_models.HotelSearchRequest) string {
	b := NewPromptBuilder("You are a travel expert specializing in hotel recommendations. " +
		"Generate a list of 6-8 hotels for the following trip:")

	b.Section("Trip Details").
		Field("Destination", req.Destination, "Not specified").
		Field("Budget Level", req.Budget, "medium").
		Field("Number of Guests", fmt.Sprint(req.Guests), "").
		Field("Duration", fmt.Sprintf("%d days", req.Duration), "").
		ListField("Preferences", req.Preferences, "None specified")

	b.Section("Instructions").
		Instruction("Recommend diverse hotel options across different price ranges within the budget level").
		Instruction("Include mix of hotel types (business, boutique, resort, etc.)").
		Instruction("Consider location convenience and local attractions").
		Instruction("Provide realistic pricing and amenities").
		Instruction("Include variety in neighborhoods/areas")

	b.Example("**Response Format (MUST be valid JSON):**", fmt.Sprintf(hotelExample, req.Destination))

	b.Line("").
		Line("Budget Guidelines:").
		Line("- Budget: $50-100/night, basic amenities, good location").
		Line("- Medium: $100-250/night, quality amenities, prime location").
		Line("- Luxury: $250+/night, premium amenities, exceptional service")

	return b.String()
}

// ReconcileHotels keeps every listing that has a name, a location object, a
// numeric rating and a numeric nightly price. Other fields are defaulted.
func ReconcileHotels(doc Document, req request_models.HotelSearchRequest, logger *zap.Logger) ([]response_models.Hotel, error) {
	raw, _ := arrayField(doc, "hotels")

	hotels := make([]response_models.Hotel, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			logger.Warn("dropping hotel", zap.Int("index", i), zap.String("reason", "not an object"))
			continue
		}
		h, err := reconcileHotel(m, i+1, req)
		if err != nil {
			logger.Warn("dropping hotel", zap.Int("index", i), zap.Error(err))
			continue
		}
		hotels = append(hotels, h)
	}
	if len(hotels) == 0 {
		return nil, reconciliationError("hotels: no usable listings in %d entries", len(raw))
	}
	return hotels, nil
}

func reconcileHotel(m map[string]any, position int, req request_models.HotelSearchRequest) (response_models.Hotel, error) {
	name, ok := stringField(m, "name")
	if !ok {
		return response_models.Hotel{}, fmt.Errorf("missing name")
	}
	loc, ok := objectField(m, "location")
	if !ok {
		return response_models.Hotel{}, fmt.Errorf("missing location")
	}
	rating, ok := numberField(m, "rating")
	if !ok {
		return response_models.Hotel{}, fmt.Errorf("missing rating")
	}
	price, ok := objectField(m, "pricePerNight")
	if !ok {
		return response_models.Hotel{}, fmt.Errorf("missing pricePerNight")
	}
	amount, ok := numberField(price, "amount")
	if !ok {
		return response_models.Hotel{}, fmt.Errorf("missing pricePerNight.amount")
	}

	address, _ := loc["address"].(string)
	city, _ := loc["city"].(string)
	location := response_models.HotelLocation{
		Address: repairLocation(address, req.Destination),
		City:    repairLocation(city, req.Destination),
	}
	if lat, ok := numberField(loc, "latitude"); ok {
		location.Latitude = &lat
	}
	if lng, ok := numberField(loc, "longitude"); ok {
		location.Longitude = &lng
	}

	reviews, _ := intField(m, "reviewCount")
	if reviews < 0 {
		reviews = 0
	}

	return response_models.Hotel{
		ID:            stringOr(m, "id", fmt.Sprintf("hotel_%d", position)),
		Name:          name,
		Description:   stringOr(m, "description", "No description available"),
		Location:      location,
		Rating:        rating,
		ReviewCount:   reviews,
		PricePerNight: response_models.Price{Amount: amount, Currency: stringOr(price, "currency", "USD")},
		Images:        stringList(m, "images"),
		Amenities:     reconcileAmenities(m),
		Category:      stringOr(m, "category", req.Budget),
	}, nil
}

func reconcileAmenities(m map[string]any) []response_models.Amenity {
	out := []response_models.Amenity{}
	raw, _ := arrayField(m, "amenities")
	for _, entry := range raw {
		am, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, ok := stringField(am, "name")
		if !ok {
			continue
		}
		out = append(out, response_models.Amenity{Name: name, Available: boolOr(am, "available", false)})
	}
	return out
}

// FallbackHotels returns three template listings priced inside the budget's band.
func FallbackHotels(destination, budget string) []response_models.Hotel {
	tier := HotelTier(budget)
	band := hotelPriceBands[tier]
	slug := strings.ReplaceAll(strings.ToLower(destination), " ", "_")
	images := func() []string {
		return []string{"/placeholder.jpg", "/placeholder.jpg", "/placeholder.jpg"}
	}
	origin := func() response_models.HotelLocation {
		zero := 0.0
		return response_models.HotelLocation{City: destination, Latitude: &zero, Longitude: &zero}
	}

	grand := origin()
	grand.Address = "123 Main Street, " + destination
	plaza := origin()
	plaza.Address = "456 Center Ave, " + destination
	boutique := origin()
	boutique.Address = "789 Historic District, " + destination

	return []response_models.Hotel{
		{
			ID:            "fallback_hotel_1_" + slug,
			Name:          "Grand " + destination + " Hotel",
			Description:   "A centrally located hotel in the heart of " + destination + " with modern amenities and excellent service.",
			Location:      grand,
			Rating:        4.2,
			ReviewCount:   1180,
			PricePerNight: response_models.Price{Amount: band.Min + 10, Currency: "USD"},
			Images:        images(),
			Amenities: []response_models.Amenity{
				{Name: "Free WiFi", Available: true},
				{Name: "Restaurant", Available: true},
				{Name: "Gym", Available: true},
				{Name: "Parking", Available: true},
			},
			Category: tier,
		},
		{
			ID:            "fallback_hotel_2_" + slug,
			Name:          destination + " Plaza",
			Description:   "Modern hotel offering comfort and convenience with easy access to " + destination + "'s attractions.",
			Location:      plaza,
			Rating:        4.5,
			ReviewCount:   950,
			PricePerNight: response_models.Price{Amount: (band.Min + band.Max) / 2, Currency: "USD"},
			Images:        images(),
			Amenities: []response_models.Amenity{
				{Name: "Free WiFi", Available: true},
				{Name: "Pool", Available: true},
				{Name: "Bar", Available: true},
				{Name: "Spa", Available: tier == "luxury"},
			},
			Category: tier,
		},
		{
			ID:            "fallback_hotel_3_" + slug,
			Name:          "Boutique " + destination,
			Description:   "Charming boutique hotel with personalized service and unique character in " + destination + ".",
			Location:      boutique,
			Rating:        4.7,
			ReviewCount:   680,
			PricePerNight: response_models.Price{Amount: band.Max - 10, Currency: "USD"},
			Images:        images(),
			Amenities: []response_models.Amenity{
				{Name: "Free WiFi", Available: true},
				{Name: "Restaurant", Available: true},
				{Name: "Bar", Available: true},
				{Name: "Parking", Available: false},
			},
			Category: tier,
		},
	}
}

func HotelUseCase(req request_models.HotelSearchRequest, logger *zap.Logger) UseCase[[]response_models.Hotel] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return UseCase[[]response_models.Hotel]{
		Name:        "hotels",
		BuildPrompt: func() string { return BuildHotelPrompt(req) },
		Config:      HotelConfig,
		Schema:      HotelSchema,
		Reconcile: func(doc Document) ([]response_models.Hotel, error) {
			return ReconcileHotels(doc, req, logger)
		},
		Fallback: func() []response_models.Hotel { return FallbackHotels(req.Destination, req.Budget) },
	}
}
