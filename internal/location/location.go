// Package location resolves user input to validated geographic points:
// free-form place names via Nominatim geocoding and raw coordinates via
// reverse lookup, both annotated with the local IANA timezone.
package location

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"hora-argentina/internal/providers/openstreetmap"
	"hora-argentina/internal/timezone"
	"hora-argentina/internal/types"
)

const maxSearchResults = 5

// Service resolves places to coordinates and coordinates to places
type Service interface {
	// Resolve geocodes a free-form query to candidate places
	Resolve(query string) ([]types.Place, error)

	// Reverse looks up the place and timezone at the given coordinates
	Reverse(latitude, longitude float64) (*types.Place, error)
}

// GeocodeProvider defines the interface for place lookup providers
type GeocodeProvider interface {
	Search(query string, limit int) ([]openstreetmap.SearchAPIResult, error)
	Reverse(latitude, longitude float64) (*openstreetmap.LookupAPIResponse, error)
}

// locationService implements the Service interface
type locationService struct {
	geocodeProvider GeocodeProvider
	timezoneService timezone.Service
	logger          *slog.Logger
}

// NewLocationService creates a new location service with the real
// Nominatim client and the shared timezone service
func NewLocationService(logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	return NewLocationServiceWithProviders(openstreetmap.NewClient(), tzSvc, logger), nil
}

// NewLocationServiceWithProviders creates a new location service with custom providers
// This is useful for testing with mock providers
func NewLocationServiceWithProviders(
	geocodeProvider GeocodeProvider,
	timezoneService timezone.Service,
	logger *slog.Logger,
) Service {
	return &locationService{
		geocodeProvider: geocodeProvider,
		timezoneService: timezoneService,
		logger:          logger.With("component", "location-service"),
	}
}

func (s *locationService) Resolve(query string) ([]types.Place, error) {
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}

	results, err := s.geocodeProvider.Search(query, maxSearchResults)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %q: %w", query, err)
	}

	places := make([]types.Place, 0, len(results))
	for _, r := range results {
		coords, err := parseCoords(r.Lat, r.Lon)
		if err != nil {
			s.logger.Warn("skipping geocode result with bad coordinates",
				"display_name", r.DisplayName,
				"error", err,
			)
			continue
		}

		place := types.Place{
			Coordinates: coords,
			Location: types.LocationInfo{
				Name:        r.Name,
				Province:    r.Address.State,
				Country:     r.Address.Country,
				CountryCode: r.Address.CountryCode,
			},
		}
		if place.Location.Name == "" {
			place.Location.Name = r.DisplayName
		}
		s.attachTimezone(&place)
		places = append(places, place)
	}

	return places, nil
}

func (s *locationService) Reverse(latitude, longitude float64) (*types.Place, error) {
	coords := types.NewCoords(latitude, longitude)
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.geocodeProvider.Reverse(latitude, longitude)
	if err != nil {
		return nil, fmt.Errorf("failed to reverse geocode: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("reverse geocode response is nil")
	}

	name := resp.DisplayName
	if resp.Name != "" {
		name = resp.Name
	}

	place := &types.Place{
		Coordinates: coords,
		Location: types.LocationInfo{
			Name:        name,
			Province:    resp.Address.State,
			Country:     resp.Address.Country,
			CountryCode: resp.Address.CountryCode,
		},
	}
	s.attachTimezone(place)

	return place, nil
}

// attachTimezone fills in the zone name and current UTC offset; lookup
// failure leaves the fields zero rather than failing the whole resolve
func (s *locationService) attachTimezone(place *types.Place) {
	name, offset, err := s.timezoneService.GetZoneOffset(
		place.Coordinates.Latitude,
		place.Coordinates.Longitude,
		time.Now(),
	)
	if err != nil {
		s.logger.Warn("failed to determine timezone",
			"latitude", place.Coordinates.Latitude,
			"longitude", place.Coordinates.Longitude,
			"error", err,
		)
		return
	}
	place.Timezone = name
	place.UTCOffset = offset
}

func parseCoords(lat, lon string) (types.Coords, error) {
	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return types.Coords{}, fmt.Errorf("invalid latitude %q: %w", lat, err)
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return types.Coords{}, fmt.Errorf("invalid longitude %q: %w", lon, err)
	}
	coords := types.NewCoords(latitude, longitude)
	if err := coords.Validate(); err != nil {
		return types.Coords{}, err
	}
	return coords, nil
}
