package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/model"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/pkg/validate"
	mongorepo "github.com/AbhigyaKrishna/margdarshak-backend/internal/repo/mongodb"
)

var (
	// ErrValidation covers malformed input and records that cannot be read
	// back into a well-formed profile.
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when no profile matches the requested id.
	ErrNotFound = errors.New("user profile not found")
	// ErrStoreUnavailable means the record store could not be reached.
	ErrStoreUnavailable = errors.New("record store unavailable")
)

// ProfileStore persists user profiles.
type ProfileStore interface {
	Insert(ctx context.Context, profile model.UserProfile) (string, error)
	FindByID(ctx context.Context, id string) (model.UserProfile, error)
}

// Service owns validation and persistence of birth-data profiles.
type Service struct {
	store ProfileStore
	now   func() time.Time
}

func NewService(store ProfileStore) *Service {
	return &Service{store: store, now: time.Now}
}

// Input is a profile submission before it has been assigned an id.
type Input struct {
	Name        string
	DateOfBirth model.Date
	TimeOfBirth model.ClockTime
	Gender      enums.Gender
	State       string
	City        string
}

func (in Input) validate() error {
	if !validate.Required(in.Name) {
		return fmt.Errorf("name is required: %w", ErrValidation)
	}
	if in.DateOfBirth.IsZero() {
		return fmt.Errorf("date of birth is required: %w", ErrValidation)
	}
	if !in.Gender.Valid() {
		return fmt.Errorf("gender %q is not recognized: %w", in.Gender, ErrValidation)
	}
	if !validate.Required(in.State) {
		return fmt.Errorf("state is required: %w", ErrValidation)
	}
	if !validate.Required(in.City) {
		return fmt.Errorf("city is required: %w", ErrValidation)
	}
	return nil
}

// Store validates the submission and persists it, returning the new id.
func (s *Service) Store(ctx context.Context, in Input) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}

	profile := model.UserProfile{
		Name:        in.Name,
		DateOfBirth: in.DateOfBirth,
		TimeOfBirth: in.TimeOfBirth,
		Gender:      in.Gender,
		State:       in.State,
		City:        in.City,
		CreatedAt:   s.now().UTC(),
	}

	id, err := s.store.Insert(ctx, profile)
	if err != nil {
		if errors.Is(err, mongorepo.ErrStoreUnavailable) {
			return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return "", fmt.Errorf("insert profile: %w", err)
	}
	return id, nil
}

// Get fetches a stored profile by id. A malformed id behaves like an absent
// record.
func (s *Service) Get(ctx context.Context, id string) (model.UserProfile, error) {
	if !validate.Required(id) {
		return model.UserProfile{}, fmt.Errorf("user id is required: %w", ErrValidation)
	}

	profile, err := s.store.FindByID(ctx, id)
	switch {
	case err == nil:
		return profile, nil
	case errors.Is(err, mongorepo.ErrNotFound), errors.Is(err, mongorepo.ErrInvalidID):
		return model.UserProfile{}, fmt.Errorf("user %q: %w", id, ErrNotFound)
	case errors.Is(err, mongorepo.ErrCorruptRecord):
		return model.UserProfile{}, fmt.Errorf("%w: %v", ErrValidation, err)
	case errors.Is(err, mongorepo.ErrStoreUnavailable):
		return model.UserProfile{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return model.UserProfile{}, fmt.Errorf("find profile: %w", err)
	}
}
