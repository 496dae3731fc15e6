package charts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/model"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/astrologyapi"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/services/geo"
)

// ErrUnknownVariant is returned when the requested divisional chart is not a
// recognized variant.
var ErrUnknownVariant = errors.New("unknown chart variant")

// Named endpoints that predate the uniform "<variant>-chart-url" scheme.
var chartEndpointOverrides = map[enums.ChartVariant]string{
	enums.ChartD1: "horoscope-chart-url",
	enums.ChartD9: "navamsa-chart-url",
}

// EndpointForVariant maps every recognized variant to its upstream endpoint.
func EndpointForVariant(variant enums.ChartVariant) string {
	if endpoint, ok := chartEndpointOverrides[variant]; ok {
		return endpoint
	}
	return string(variant) + "-chart-url"
}

// ProfileSource yields stored birth profiles.
type ProfileSource interface {
	Get(ctx context.Context, id string) (model.UserProfile, error)
}

// Locator resolves city names to coordinates.
type Locator interface {
	Resolve(city string) (geo.City, error)
}

// ChartAPI generates divisional chart URLs.
type ChartAPI interface {
	FetchChartURL(ctx context.Context, endpoint string, req astrologyapi.ChartRequest) (json.RawMessage, error)
}

// Service builds chart requests from stored profiles and fetches chart URLs.
type Service struct {
	profiles ProfileSource
	locator  Locator
	api      ChartAPI
	timezone float64
}

func NewService(profiles ProfileSource, locator Locator, api ChartAPI, timezone float64) *Service {
	return &Service{
		profiles: profiles,
		locator:  locator,
		api:      api,
		timezone: timezone,
	}
}

// ChartURL resolves the user's birth data and fetches the chart for the
// requested variant. The upstream response passes through unmodified.
func (s *Service) ChartURL(ctx context.Context, userID, rawVariant string) (json.RawMessage, error) {
	variant, err := enums.ParseChartVariant(rawVariant)
	if err != nil {
		return nil, fmt.Errorf("variant %q: %w", rawVariant, ErrUnknownVariant)
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	city, err := s.locator.Resolve(profile.City)
	if err != nil {
		return nil, err
	}

	return s.api.FetchChartURL(ctx, EndpointForVariant(variant), BuildChartRequest(profile, city, s.timezone))
}

// BuildChartRequest explodes the profile's birth date and time into the
// calendar fields the chart API expects.
func BuildChartRequest(profile model.UserProfile, city geo.City, timezone float64) astrologyapi.ChartRequest {
	return astrologyapi.ChartRequest{
		Year:      profile.DateOfBirth.Year(),
		Month:     int(profile.DateOfBirth.Month()),
		Date:      profile.DateOfBirth.Day(),
		Hours:     profile.TimeOfBirth.Hour,
		Minutes:   profile.TimeOfBirth.Minute,
		Seconds:   profile.TimeOfBirth.Second,
		Latitude:  city.Lat,
		Longitude: city.Lon,
		Timezone:  timezone,
		Settings:  astrologyapi.DefaultChartSettings(),
	}
}
