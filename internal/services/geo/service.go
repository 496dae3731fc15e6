package geo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/config"
)

// ErrUnsupportedLocation is returned for cities outside the configured table.
var ErrUnsupportedLocation = errors.New("unsupported location")

// City is a resolvable birth location with geographic coordinates.
type City struct {
	Name string
	Lat  float64
	Lon  float64
}

// Service resolves city names to coordinates from a fixed configured table.
type Service struct {
	cities map[string]City
}

func NewService(cities []config.CityConfig) *Service {
	table := make(map[string]City, len(cities))
	for _, c := range cities {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		table[strings.ToLower(name)] = City{Name: name, Lat: c.Lat, Lon: c.Lon}
	}
	return &Service{cities: table}
}

// Resolve looks up a city case-insensitively.
func (s *Service) Resolve(city string) (City, error) {
	c, ok := s.cities[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		return City{}, fmt.Errorf("city %q: %w", city, ErrUnsupportedLocation)
	}
	return c, nil
}
