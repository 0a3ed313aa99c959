package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"tripmigo/internal/aipipeline"
	"tripmigo/internal/models/response_models"
)

// fixedModel answers every prompt with the same text.
type fixedModel struct {
	text  string
	calls int
}

func (m *fixedModel) Name() string { return "fixed" }

func (m *fixedModel) GenerateText(_ context.Context, _ string, _ aipipeline.GenerationConfig) (aipipeline.Completion, error) {
	m.calls++
	return aipipeline.Completion{Text: m.text}, nil
}

// newTestPipeline builds an unconfigured pipeline when model is nil.
func newTestPipeline(t *testing.T, model aipipeline.TextModel) *aipipeline.Pipeline {
	t.Helper()
	logger := zaptest.NewLogger(t)
	gw := aipipeline.NewGateway(model, logger, aipipeline.WithBaseDelay(time.Millisecond))
	return aipipeline.NewPipeline(gw, aipipeline.FirstLastExtractor{}, logger, nil)
}

type fakeProvider struct {
	places     []response_models.Place
	details    response_models.PlaceDetails
	routes     []response_models.DirectionsRoute
	geocodes   []response_models.GeocodeResult
	nearby     []response_models.Place
	err        error
	lastMode   string
	lastRadius int
	lastType   string
}

func (f *fakeProvider) TextSearch(_ context.Context, _ string) ([]response_models.Place, error) {
	return f.places, f.err
}

func (f *fakeProvider) PlaceDetails(_ context.Context, placeID string) (response_models.PlaceDetails, error) {
	if f.err != nil {
		return response_models.PlaceDetails{}, f.err
	}
	d := f.details
	d.PlaceID = placeID
	return d, nil
}

func (f *fakeProvider) Directions(_ context.Context, _, _, mode string) ([]response_models.DirectionsRoute, error) {
	f.lastMode = mode
	return f.routes, f.err
}

func (f *fakeProvider) Geocode(_ context.Context, _ string) ([]response_models.GeocodeResult, error) {
	return f.geocodes, f.err
}

func (f *fakeProvider) NearbySearch(_ context.Context, _ response_models.LatLng, radius int, placeType string) ([]response_models.Place, error) {
	f.lastRadius = radius
	f.lastType = placeType
	return f.nearby, f.err
}

func newTestPlaces(t *testing.T, provider PlacesProvider) PlacesServiceInterface {
	t.Helper()
	return NewPlacesService(provider, "maps-key", zaptest.NewLogger(t))
}

func parisProvider() *fakeProvider {
	rating := 4.6
	return &fakeProvider{
		places:   []response_models.Place{{PlaceID: "paris-1", Name: "Paris"}},
		details:  response_models.PlaceDetails{Name: "Paris", Address: "Paris, France", Rating: &rating, Photos: []string{"p1"}},
		routes:   []response_models.DirectionsRoute{{Summary: "A6", Duration: "5 hours", Distance: "465 km"}},
		geocodes: []response_models.GeocodeResult{{Address: "Paris, France", Location: response_models.LatLng{Lat: 48.85, Lng: 2.35}}},
		nearby:   []response_models.Place{{PlaceID: "louvre", Name: "Louvre"}},
	}
}
