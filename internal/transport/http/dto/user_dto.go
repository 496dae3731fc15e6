package dto

import "time"

type CreateUserRequest struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	TimeOfBirth string `json:"time_of_birth"`
	Gender      string `json:"gender"`
	State       string `json:"state"`
	City        string `json:"city"`
}

type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type UserProfileResponse struct {
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	DateOfBirth string    `json:"date_of_birth"`
	TimeOfBirth string    `json:"time_of_birth"`
	Gender      string    `json:"gender"`
	State       string    `json:"state"`
	City        string    `json:"city"`
	CreatedAt   time.Time `json:"created_at"`
}
