package model

import (
	"time"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
)

// UserProfile is a write-once birth-data record. ID is assigned by the
// record store on insert and immutable afterwards.
type UserProfile struct {
	ID          string       `json:"user_id,omitempty"`
	Name        string       `json:"name"`
	DateOfBirth Date         `json:"date_of_birth"`
	TimeOfBirth ClockTime    `json:"time_of_birth"`
	Gender      enums.Gender `json:"gender"`
	State       string       `json:"state"`
	City        string       `json:"city"`
	CreatedAt   time.Time    `json:"created_at"`
}
