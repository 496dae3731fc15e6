package horoscope

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/model"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/rules"
)

// ErrValidation marks unrecognized signs and day selectors.
var ErrValidation = errors.New("validation error")

// HoroscopeAPI fetches prediction payloads for a zodiac sign.
type HoroscopeAPI interface {
	Daily(ctx context.Context, sign enums.ZodiacSign, day enums.HoroscopeDay) (json.RawMessage, error)
	Monthly(ctx context.Context, sign enums.ZodiacSign) (json.RawMessage, error)
}

// ProfileSource yields stored birth profiles.
type ProfileSource interface {
	Get(ctx context.Context, id string) (model.UserProfile, error)
}

// Service validates horoscope requests and proxies them upstream.
type Service struct {
	api      HoroscopeAPI
	profiles ProfileSource
}

func NewService(api HoroscopeAPI, profiles ProfileSource) *Service {
	return &Service{api: api, profiles: profiles}
}

// Daily fetches the daily prediction. An empty day selects TODAY.
func (s *Service) Daily(ctx context.Context, rawSign, rawDay string) (json.RawMessage, error) {
	sign, err := enums.ParseZodiacSign(rawSign)
	if err != nil {
		return nil, fmt.Errorf("sign %q: %w", rawSign, ErrValidation)
	}
	day, err := enums.ParseHoroscopeDay(rawDay)
	if err != nil {
		return nil, fmt.Errorf("day %q: %w", rawDay, ErrValidation)
	}
	return s.api.Daily(ctx, sign, day)
}

// Monthly fetches the monthly prediction.
func (s *Service) Monthly(ctx context.Context, rawSign string) (json.RawMessage, error) {
	sign, err := enums.ParseZodiacSign(rawSign)
	if err != nil {
		return nil, fmt.Errorf("sign %q: %w", rawSign, ErrValidation)
	}
	return s.api.Monthly(ctx, sign)
}

// DailyForUser derives the zodiac sign from the stored birth date and fetches
// the daily prediction for it.
func (s *Service) DailyForUser(ctx context.Context, userID, rawDay string) (json.RawMessage, error) {
	day, err := enums.ParseHoroscopeDay(rawDay)
	if err != nil {
		return nil, fmt.Errorf("day %q: %w", rawDay, ErrValidation)
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	sign := rules.ZodiacFromBirthDate(profile.DateOfBirth)
	if sign == "" {
		return nil, fmt.Errorf("birth date %s has no zodiac sign: %w", profile.DateOfBirth, ErrValidation)
	}
	return s.api.Daily(ctx, sign, day)
}
