package geo

import (
	"context"
	"errors"

	"googlemaps.github.io/maps"
)

var ErrNoResults = errors.New("no geocoding results")

// Suggestion is one autocomplete hit for the address picker.
type Suggestion struct {
	PlaceID     string
	Description string
}

// Location is a resolved place: what the address form gets prefilled with
// after the user picks a suggestion or drops a pin.
type Location struct {
	PlaceID   string
	Formatted string
	Lat       float64
	Lng       float64
	City      string
	Province  string
	Postal    string
	Country   string
}

// Service wraps the Maps Places/Geocoding APIs for address picking.
type Service struct {
	client *maps.Client
}

func NewService(client *maps.Client) *Service {
	return &Service{client: client}
}

// NewClient builds the underlying Maps client from an API key.
func NewClient(apiKey string) (*maps.Client, error) {
	return maps.NewClient(maps.WithAPIKey(apiKey))
}

// Autocomplete returns address suggestions for partial user input.
func (s *Service) Autocomplete(ctx context.Context, input string) ([]Suggestion, error) {
	resp, err := s.client.PlaceAutocomplete(ctx, &maps.PlaceAutocompleteRequest{
		Input: input,
	})
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		suggestions = append(suggestions, Suggestion{
			PlaceID:     p.PlaceID,
			Description: p.Description,
		})
	}
	return suggestions, nil
}

// Resolve geocodes a picked suggestion into a full location.
func (s *Service) Resolve(ctx context.Context, placeID string) (*Location, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{PlaceID: placeID})
	if err != nil {
		return nil, err
	}
	return firstLocation(results)
}

// ReverseGeocode resolves a dropped pin into a location.
func (s *Service) ReverseGeocode(ctx context.Context, lat, lng float64) (*Location, error) {
	results, err := s.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: lat, Lng: lng},
	})
	if err != nil {
		return nil, err
	}
	return firstLocation(results)
}

func firstLocation(results []maps.GeocodingResult) (*Location, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	r := results[0]

	loc := &Location{
		PlaceID:   r.PlaceID,
		Formatted: r.FormattedAddress,
		Lat:       r.Geometry.Location.Lat,
		Lng:       r.Geometry.Location.Lng,
	}
	for _, c := range r.AddressComponents {
		for _, t := range c.Types {
			switch t {
			case "locality":
				loc.City = c.LongName
			case "administrative_area_level_1":
				loc.Province = c.LongName
			case "postal_code":
				loc.Postal = c.LongName
			case "country":
				loc.Country = c.ShortName
			}
		}
	}
	return loc, nil
}
