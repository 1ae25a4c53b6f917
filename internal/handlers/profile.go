package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/middlewares"
	"github.com/vibeguard/vibeguard/internal/models"
	"github.com/vibeguard/vibeguard/internal/services"
)

// ProfileProvider reads and updates the logged-in user's profile.
type ProfileProvider interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, *models.BasicInfoDB, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, username, bio, firstName, lastName string, age int, gender, image string) error
}

// AccountDeleter removes the logged-in user's account.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// ProfileResponse bundles the user record with the basic info block
// swagger:model ProfileResponse
type ProfileResponse struct {
	User *models.UserDB      `json:"user"`
	Info *models.BasicInfoDB `json:"info,omitempty"`
}

// UpdateProfileRequest carries the profile edit fields; empty fields keep
// their previous values
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

// ProfileErrorResponse is the error payload for profile endpoints
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	Error string `json:"error"`
}

// NewGetProfileHandler returns the logged-in user's profile.
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile data"
// @Failure 404 {object} handlers.ProfileErrorResponse "User not found"
// @Router /login/profile [get]
func NewGetProfileHandler(svc ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		user, info, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "User not found."})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{User: user, Info: info})
	}
}

// NewUpdateProfileHandler applies a profile edit.
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile edit"
// @Success 200 {object} handlers.ProfileResponse "Updated profile"
// @Failure 400 {object} handlers.ProfileErrorResponse "Invalid request body"
// @Router /login/profile/update [post]
func NewUpdateProfileHandler(svc ProfileProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.UpdateProfile(r.Context(), claims.UserID,
			req.Username, req.Bio, req.FirstName, req.LastName, req.Age, req.Gender, req.Image)
		if err != nil {
			if errors.Is(err, services.ErrUserDoesNotExist) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "User not found."})
				return
			}
			logger.Log.Errorw("error while updating profile", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Error while updating profile."})
			return
		}

		user, info, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ProfileResponse{User: user, Info: info})
	}
}

// NewDeleteAccountHandler removes the logged-in user's account and
// clears the session cookie. Owned rows cascade.
// @Summary Delete account
// @Tags profile
// @Success 302 "Redirects to registration"
// @Router /login/profile/delete [post]
func NewDeleteAccountHandler(svc AccountDeleter, cookies CookieClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := svc.DeleteAccount(r.Context(), claims.UserID); err != nil {
			logger.Log.Errorw("delete profile error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		cookies.ClearCookie(w)
		http.Redirect(w, r, "/login/register", http.StatusFound)
	}
}
