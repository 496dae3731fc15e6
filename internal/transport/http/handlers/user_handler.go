package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/enums"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/domain/model"
	userssvc "github.com/AbhigyaKrishna/margdarshak-backend/internal/services/users"
	"github.com/AbhigyaKrishna/margdarshak-backend/internal/transport/http/dto"
	httperrors "github.com/AbhigyaKrishna/margdarshak-backend/internal/transport/http/errors"
)

type UserHandler struct {
	service *userssvc.Service
}

func NewUserHandler(service *userssvc.Service) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "USER_SERVICE_UNAVAILABLE", "user service is unavailable")
		return
	}

	var req dto.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "invalid request body")
		return
	}

	dob, err := model.ParseDate(req.DateOfBirth)
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "date_of_birth must be formatted as YYYY-MM-DD")
		return
	}
	tob, err := model.ParseClockTime(req.TimeOfBirth)
	if err != nil {
		writeBadRequest(w, "VALIDATION_ERROR", "time_of_birth must be formatted as HH:MM:SS")
		return
	}

	id, err := h.service.Store(r.Context(), userssvc.Input{
		Name:        req.Name,
		DateOfBirth: dob,
		TimeOfBirth: tob,
		Gender:      enums.Gender(req.Gender),
		State:       req.State,
		City:        req.City,
	})
	if err != nil {
		switch {
		case errors.Is(err, userssvc.ErrValidation):
			writeBadRequest(w, "VALIDATION_ERROR", "invalid profile data")
		case errors.Is(err, userssvc.ErrStoreUnavailable):
			writeInternal(w, "STORE_UNAVAILABLE", "record store is unavailable")
		default:
			writeInternal(w, "INTERNAL_ERROR", "failed to store user profile")
		}
		return
	}

	httperrors.Write(w, http.StatusCreated, dto.CreateUserResponse{
		Message: "User data stored successfully",
		UserID:  id,
	})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeInternal(w, "USER_SERVICE_UNAVAILABLE", "user service is unavailable")
		return
	}

	profile, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeProfileError(w, err)
		return
	}

	httperrors.Write(w, http.StatusOK, dto.UserProfileResponse{
		UserID:      profile.ID,
		Name:        profile.Name,
		DateOfBirth: profile.DateOfBirth.String(),
		TimeOfBirth: profile.TimeOfBirth.String(),
		Gender:      string(profile.Gender),
		State:       profile.State,
		City:        profile.City,
		CreatedAt:   profile.CreatedAt,
	})
}
