package repositories

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"tripmigo/internal/models/response_models"
)

//go:embed data/catalog.yaml
var catalogYAML []byte

type catalog struct {
	Destinations       []response_models.Destination           `yaml:"destinations"`
	PopularTrips       []response_models.SharedTrip            `yaml:"popular_trips"`
	ItineraryTemplates []response_models.ItineraryTemplate     `yaml:"itinerary_templates"`
	StaticSuggestions  []response_models.DestinationSuggestion `yaml:"static_suggestions"`
}

type DestinationRepository interface {
	Search(search string, limit int) []response_models.Destination
	TopRated(limit int) []response_models.Destination
	FindById(id string) (*response_models.Destination, error)
	PopularTrips() []response_models.SharedTrip
	ItineraryTemplates() []response_models.ItineraryTemplate
	StaticSuggestions() []response_models.DestinationSuggestion
}

type destinationRepository struct {
	catalog catalog
}

func NewDestinationRepository() (DestinationRepository, error) {
	return newDestinationRepository(catalogYAML)
}

func newDestinationRepository(raw []byte) (DestinationRepository, error) {
	var c catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse destination catalog: %w", err)
	}
	return &destinationRepository{catalog: c}, nil
}

// Search matches name, country or any tag, case-insensitively.
func (r *destinationRepository) Search(search string, limit int) []response_models.Destination {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := make([]response_models.Destination, 0, len(r.catalog.Destinations))
	for _, d := range r.catalog.Destinations {
		if needle == "" || matchesDestination(d, needle) {
			out = append(out, d)
		}
	}
	return capped(out, limit)
}

func matchesDestination(d response_models.Destination, needle string) bool {
	if strings.Contains(strings.ToLower(d.Name), needle) || strings.Contains(strings.ToLower(d.Country), needle) {
		return true
	}
	return slices.ContainsFunc(d.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), needle)
	})
}

func (r *destinationRepository) TopRated(limit int) []response_models.Destination {
	out := slices.Clone(r.catalog.Destinations)
	slices.SortStableFunc(out, func(a, b response_models.Destination) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		}
		return 0
	})
	return capped(out, limit)
}

func (r *destinationRepository) FindById(id string) (*response_models.Destination, error) {
	for _, d := range r.catalog.Destinations {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, nil
}

func (r *destinationRepository) PopularTrips() []response_models.SharedTrip {
	return slices.Clone(r.catalog.PopularTrips)
}

func (r *destinationRepository) ItineraryTemplates() []response_models.ItineraryTemplate {
	return slices.Clone(r.catalog.ItineraryTemplates)
}

func (r *destinationRepository) StaticSuggestions() []response_models.DestinationSuggestion {
	return slices.Clone(r.catalog.StaticSuggestions)
}

func capped[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
