package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"tripmigo/internal/models/response_models"
)

const (
	maxSearchResults = 10
	maxNearbyResults = 20
	maxPhotos        = 5
	maxReviews       = 5

	photoEndpoint = "https://maps.googleapis.com/maps/api/place/photo"
)

var detailFields = []string{
	"place_id", "name", "formatted_address", "geometry", "rating",
	"user_ratings_total", "reviews", "website", "formatted_phone_number",
	"opening_hours", "price_level", "photos", "types",
}

// GooglePlaces implements PlacesProvider on the Google Maps web services.
type GooglePlaces struct {
	client *maps.Client
	apiKey string
	fields []maps.PlaceDetailsFieldMask
}

// NewGooglePlaces returns nil, nil when apiKey is empty.
func NewGooglePlaces(apiKey string) (*GooglePlaces, error) {
	if apiKey == "" {
		return nil, nil
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	fields := make([]maps.PlaceDetailsFieldMask, 0, len(detailFields))
	for _, f := range detailFields {
		mask, err := maps.ParsePlaceDetailsFieldMask(f)
		if err != nil {
			return nil, fmt.Errorf("place details field %q: %w", f, err)
		}
		fields = append(fields, mask)
	}

	return &GooglePlaces{client: client, apiKey: apiKey, fields: fields}, nil
}

func (g *GooglePlaces) TextSearch(ctx context.Context, query string) ([]response_models.Place, error) {
	resp, err := g.client.TextSearch(ctx, &maps.TextSearchRequest{Query: query})
	if err != nil {
		return nil, classifyMapsError("text search", err)
	}
	return g.toPlaces(resp.Results, maxSearchResults), nil
}

func (g *GooglePlaces) PlaceDetails(ctx context.Context, placeID string) (response_models.PlaceDetails, error) {
	r, err := g.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{PlaceID: placeID, Fields: g.fields})
	if err != nil {
		return response_models.PlaceDetails{}, classifyMapsError("place details", err)
	}

	details := response_models.PlaceDetails{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		Address:          r.FormattedAddress,
		Rating:           ratingPtr(r.Rating),
		UserRatingsTotal: r.UserRatingsTotal,
		Location:         &response_models.LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		Reviews:          make([]response_models.PlaceReview, 0, maxReviews),
		Photos:           g.photoURLs(r.Photos),
		Website:          r.Website,
		Phone:            r.FormattedPhoneNumber,
		PriceLevel:       r.PriceLevel,
		Types:            nonNil(r.Types),
	}
	if r.OpeningHours != nil {
		details.OpeningHours = r.OpeningHours.WeekdayText
		details.OpenNow = r.OpeningHours.OpenNow
	}
	for i, rv := range r.Reviews {
		if i == maxReviews {
			break
		}
		details.Reviews = append(details.Reviews, response_models.PlaceReview{
			AuthorName: rv.AuthorName,
			Rating:     rv.Rating,
			Text:       rv.Text,
			Time:       rv.Time,
		})
	}
	return details, nil
}

func (g *GooglePlaces) Directions(ctx context.Context, origin, destination, mode string) ([]response_models.DirectionsRoute, error) {
	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:        origin,
		Destination:   destination,
		Mode:          maps.Mode(mode),
		DepartureTime: "now",
		Alternatives:  true,
	})
	if err != nil {
		return nil, classifyMapsError("directions", err)
	}

	out := make([]response_models.DirectionsRoute, 0, len(routes))
	for _, r := range routes {
		if len(r.Legs) == 0 {
			continue
		}
		leg := r.Legs[0]
		route := response_models.DirectionsRoute{
			Summary:          r.Summary,
			Duration:         humanDuration(leg.Duration),
			Distance:         leg.Distance.HumanReadable,
			Steps:            make([]response_models.RouteStep, 0, len(leg.Steps)),
			OverviewPolyline: r.OverviewPolyline.Points,
		}
		for _, st := range leg.Steps {
			route.Steps = append(route.Steps, response_models.RouteStep{
				Instruction:   st.HTMLInstructions,
				Distance:      st.Distance.HumanReadable,
				Duration:      humanDuration(st.Duration),
				StartLocation: response_models.LatLng{Lat: st.StartLocation.Lat, Lng: st.StartLocation.Lng},
				EndLocation:   response_models.LatLng{Lat: st.EndLocation.Lat, Lng: st.EndLocation.Lng},
			})
		}
		out = append(out, route)
	}
	return out, nil
}

func (g *GooglePlaces) Geocode(ctx context.Context, address string) ([]response_models.GeocodeResult, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return nil, classifyMapsError("geocode", err)
	}

	out := make([]response_models.GeocodeResult, 0, len(results))
	for _, r := range results {
		out = append(out, response_models.GeocodeResult{
			Address:  r.FormattedAddress,
			Location: response_models.LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
			PlaceID:  r.PlaceID,
			Types:    nonNil(r.Types),
		})
	}
	return out, nil
}

func (g *GooglePlaces) NearbySearch(ctx context.Context, location response_models.LatLng, radius int, placeType string) ([]response_models.Place, error) {
	resp, err := g.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: location.Lat, Lng: location.Lng},
		Radius:   uint(radius),
		Type:     maps.PlaceType(placeType),
	})
	if err != nil {
		return nil, classifyMapsError("nearby search", err)
	}
	return g.toPlaces(resp.Results, maxNearbyResults), nil
}

func (g *GooglePlaces) toPlaces(results []maps.PlacesSearchResult, limit int) []response_models.Place {
	if len(results) > limit {
		results = results[:limit]
	}
	out := make([]response_models.Place, 0, len(results))
	for _, p := range results {
		out = append(out, response_models.Place{
			PlaceID:          p.PlaceID,
			Name:             p.Name,
			Address:          p.FormattedAddress,
			Rating:           ratingPtr(p.Rating),
			UserRatingsTotal: p.UserRatingsTotal,
			Types:            nonNil(p.Types),
			Location:         &response_models.LatLng{Lat: p.Geometry.Location.Lat, Lng: p.Geometry.Location.Lng},
			Vicinity:         p.Vicinity,
			PriceLevel:       p.PriceLevel,
			Photos:           g.photoURLs(p.Photos),
		})
	}
	return out
}

func (g *GooglePlaces) photoURLs(photos []maps.Photo) []string {
	urls := make([]string, 0, min(len(photos), maxPhotos))
	for _, p := range photos {
		if len(urls) == maxPhotos {
			break
		}
		if p.PhotoReference == "" {
			continue
		}
		urls = append(urls, PhotoURL(p.PhotoReference, g.apiKey))
	}
	return urls
}

func PhotoURL(reference, apiKey string) string {
	q := url.Values{}
	q.Set("maxwidth", "800")
	q.Set("photoreference", reference)
	q.Set("key", apiKey)
	return photoEndpoint + "?" + q.Encode()
}

// classifyMapsError maps the client's "maps: STATUS - message" errors onto
// places error kinds.
func classifyMapsError(op string, err error) *PlacesError {
	msg := err.Error()
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return placesError(PlacesRemoteFailure, "Maps provider timed out", err)
	case strings.Contains(msg, "ZERO_RESULTS"), strings.Contains(msg, "NOT_FOUND"):
		return placesError(PlacesNotFound, "No results for "+op, err)
	case strings.Contains(msg, "INVALID_REQUEST"):
		return placesError(PlacesInvalidInput, "Invalid "+op+" request", err)
	case strings.Contains(msg, "REQUEST_DENIED"), strings.Contains(msg, "OVER_QUERY_LIMIT"),
		strings.Contains(msg, "OVER_DAILY_LIMIT"):
		return placesError(PlacesUnavailable, "Maps provider rejected the request", err)
	default:
		return placesError(PlacesRemoteFailure, "Maps provider error during "+op, err)
	}
}

func ratingPtr(r float32) *float64 {
	if r <= 0 {
		return nil
	}
	v := float64(r)
	return &v
}

func humanDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	plural := func(n int, unit string) string {
		if n == 1 {
			return fmt.Sprintf("%d %s", n, unit)
		}
		return fmt.Sprintf("%d %ss", n, unit)
	}
	switch {
	case h > 0 && m > 0:
		return plural(h, "hour") + " " + plural(m, "min")
	case h > 0:
		return plural(h, "hour")
	default:
		return plural(m, "min")
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
