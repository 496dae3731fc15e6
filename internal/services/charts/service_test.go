package charts

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/model"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/astrologyapi"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/services/geo"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/services/users"
)

type fakeProfiles struct {
	profile model.UserProfile
	err     error
}

func (f *fakeProfiles) Get(_ context.Context, _ string) (model.UserProfile, error) {
	return f.profile, f.err
}

type fakeLocator struct {
	city geo.City
	err  error
}

func (f *fakeLocator) Resolve(_ string) (geo.City, error) {
	return f.city, f.err
}

type fakeChartAPI struct {
	gotEndpoint string
	gotRequest  astrologyapi.ChartRequest
	response    json.RawMessage
	err         error
}

func (f *fakeChartAPI) FetchChartURL(_ context.Context, endpoint string, req astrologyapi.ChartRequest) (json.RawMessage, error) {
	f.gotEndpoint = endpoint
	f.gotRequest = req
	return f.response, f.err
}

func delhiProfile() model.UserProfile {
	tob, _ := model.ParseClockTime("07:05:30")
	return model.UserProfile{
		ID:          "6578b1a2c3d4e5f678901234",
		Name:        "Asha",
		DateOfBirth: model.NewDate(1994, time.March, 21),
		TimeOfBirth: tob,
		Gender:      enums.GenderFemale,
		State:       "Delhi",
		City:        "Delhi",
	}
}

func delhi() geo.City {
	return geo.City{Name: "Delhi", Lat: 28.6139, Lon: 77.2090}
}

func TestEndpointForVariant(t *testing.T) {
	cases := []struct {
		variant enums.ChartVariant
		want    string
	}{
		{enums.ChartD1, "horoscope-chart-url"},
		{enums.ChartD9, "navamsa-chart-url"},
		{enums.ChartD10, "d10-chart-url"},
		{enums.ChartD60, "d60-chart-url"},
	}
	for _, tc := range cases {
		if got := EndpointForVariant(tc.variant); got != tc.want {
			t.Fatalf("variant %s: got %s, want %s", tc.variant, got, tc.want)
		}
	}
}

func TestChartURLBuildsDelhiPayload(t *testing.T) {
	api := &fakeChartAPI{response: json.RawMessage(`{"output":"https://charts/img.png"}`)}
	svc := NewService(&fakeProfiles{profile: delhiProfile()}, &fakeLocator{city: delhi()}, api, 5.5)

	body, err := svc.ChartURL(context.Background(), "6578b1a2c3d4e5f678901234", "d9")
	if err != nil {
		t.Fatalf("chart url: %v", err)
	}
	if string(body) != `{"output":"https://charts/img.png"}` {
		t.Fatalf("response should pass through unmodified, got %s", body)
	}

	if api.gotEndpoint != "navamsa-chart-url" {
		t.Fatalf("unexpected endpoint: %s", api.gotEndpoint)
	}
	want := astrologyapi.ChartRequest{
		Year: 1994, Month: 3, Date: 21,
		Hours: 7, Minutes: 5, Seconds: 30,
		Latitude: 28.6139, Longitude: 77.2090, Timezone: 5.5,
		Settings: astrologyapi.DefaultChartSettings(),
	}
	if api.gotRequest != want {
		t.Fatalf("unexpected request:\n got %+v\nwant %+v", api.gotRequest, want)
	}
}

func TestChartURLAliasMatchesCanonicalVariant(t *testing.T) {
	api := &fakeChartAPI{response: json.RawMessage(`{}`)}
	svc := NewService(&fakeProfiles{profile: delhiProfile()}, &fakeLocator{city: delhi()}, api, 5.5)

	if _, err := svc.ChartURL(context.Background(), "id", "navamsa"); err != nil {
		t.Fatalf("alias variant: %v", err)
	}
	aliasEndpoint := api.gotEndpoint

	if _, err := svc.ChartURL(context.Background(), "id", "d9"); err != nil {
		t.Fatalf("canonical variant: %v", err)
	}
	if aliasEndpoint != api.gotEndpoint {
		t.Fatalf("alias resolved to %s, canonical to %s", aliasEndpoint, api.gotEndpoint)
	}
}

func TestChartURLUnknownVariant(t *testing.T) {
	svc := NewService(&fakeProfiles{profile: delhiProfile()}, &fakeLocator{city: delhi()}, &fakeChartAPI{}, 5.5)

	_, err := svc.ChartURL(context.Background(), "id", "d99")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestChartURLUnsupportedCityForEveryVariant(t *testing.T) {
	locator := &fakeLocator{err: geo.ErrUnsupportedLocation}
	svc := NewService(&fakeProfiles{profile: delhiProfile()}, locator, &fakeChartAPI{}, 5.5)

	for _, variant := range []string{"d1", "d9", "d10", "d60"} {
		_, err := svc.ChartURL(context.Background(), "id", variant)
		if !errors.Is(err, geo.ErrUnsupportedLocation) {
			t.Fatalf("variant %s: expected ErrUnsupportedLocation, got %v", variant, err)
		}
	}
}

func TestChartURLMissingProfile(t *testing.T) {
	svc := NewService(&fakeProfiles{err: users.ErrNotFound}, &fakeLocator{city: delhi()}, &fakeChartAPI{}, 5.5)

	_, err := svc.ChartURL(context.Background(), "missing", "d1")
	if !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
