package gems

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/model"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/infra/astrologyapi"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/services/geo"
)

// descriptionKey is attached to every gem record during enrichment.
const descriptionKey = "gem_description"

// ProfileSource yields stored birth profiles.
type ProfileSource interface {
	Get(ctx context.Context, id string) (model.UserProfile, error)
}

// Locator resolves city names to coordinates.
type Locator interface {
	Resolve(city string) (geo.City, error)
}

// GemAPI returns the gem category mapping for a birth record.
type GemAPI interface {
	FetchGemSuggestion(ctx context.Context, req astrologyapi.GemRequest) (map[string]astrologyapi.GemRecord, error)
}

// Describer produces a natural-language description from a prompt.
type Describer interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Config fixes the locale fields sent with every gem request.
type Config struct {
	TimezoneOffset float64
	Country        string
}

// Service fetches gem suggestions and enriches every category with a
// generated description.
type Service struct {
	profiles  ProfileSource
	locator   Locator
	api       GemAPI
	describer Describer
	cfg       Config
}

func NewService(profiles ProfileSource, locator Locator, api GemAPI, describer Describer, cfg Config) *Service {
	return &Service{
		profiles:  profiles,
		locator:   locator,
		api:       api,
		describer: describer,
		cfg:       cfg,
	}
}

// Suggest returns the upstream gem categories with a gem_description attached
// to each. Enrichment is all-or-nothing: one failed description fails the
// whole call and cancels the remaining generations.
func (s *Service) Suggest(ctx context.Context, userID string) (map[string]astrologyapi.GemRecord, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	city, err := s.locator.Resolve(profile.City)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.api.FetchGemSuggestion(ctx, astrologyapi.GemRequest{
		Name:        profile.Name,
		City:        city.Name,
		State:       profile.State,
		Country:     s.cfg.Country,
		Latitude:    city.Lat,
		Longitude:   city.Lon,
		DateOfBirth: profile.DateOfBirth.String(),
		TimeOfBirth: profile.TimeOfBirth.String(),
		Gender:      string(profile.Gender),
		Timezone:    s.cfg.TimezoneOffset,
	})
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	var mu sync.Mutex
	descriptions := make(map[string]string, len(suggestions))

	for category, record := range suggestions {
		category, record := category, record
		g.Go(func() error {
			text, err := s.describer.GenerateText(gctx, describePrompt(category, record))
			if err != nil {
				return fmt.Errorf("describe %s gem: %w", category, err)
			}
			mu.Lock()
			descriptions[category] = text
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for category, text := range descriptions {
		// A JSON null category decodes to a nil map.
		record := suggestions[category]
		if record == nil {
			record = astrologyapi.GemRecord{}
			suggestions[category] = record
		}
		record[descriptionKey] = text
	}
	return suggestions, nil
}

func describePrompt(category string, record astrologyapi.GemRecord) string {
	var b strings.Builder
	b.WriteString("Write a short, friendly paragraph about the gemstone recommended for the ")
	b.WriteString(category)
	b.WriteString(" category in vedic astrology.")
	if name, ok := record["name"].(string); ok && name != "" {
		fmt.Fprintf(&b, " The primary gem is %s.", name)
	}
	if semi, ok := record["semi_gem"].(string); ok && semi != "" {
		fmt.Fprintf(&b, " An affordable substitute is %s.", semi)
	}
	b.WriteString(" Explain its benefits and how to wear it, in plain language.")
	return b.String()
}
