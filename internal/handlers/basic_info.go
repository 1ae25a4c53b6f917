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

// BasicInfoProvider reads and writes the per-user identity block.
type BasicInfoProvider interface {
	GetBasicInfo(ctx context.Context, userID uuid.UUID) (*models.BasicInfoDB, error)
	SaveBasicInfo(ctx context.Context, userID uuid.UUID, firstName, lastName string, age int, gender, image string) (*models.BasicInfoDB, error)
}

// BasicInfoRequest carries the identity block fields
// swagger:model BasicInfoRequest
type BasicInfoRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	Image     string `json:"image"`
}

// TrackingErrorResponse is the error payload for tracking endpoints
// swagger:model TrackingErrorResponse
type TrackingErrorResponse struct {
	Error string `json:"error"`
}

// NewGetBasicInfoHandler returns the caller's identity block.
// @Summary Get basic info
// @Tags tracking
// @Produce json
// @Success 200 {object} models.BasicInfoDB "Identity block"
// @Failure 404 {object} handlers.TrackingErrorResponse "Never saved"
// @Failure 500 {object} handlers.TrackingErrorResponse "Internal server error"
// @Router /tracking/basic-info [get]
func NewGetBasicInfoHandler(svc BasicInfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		info, err := svc.GetBasicInfo(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "No user data found."})
				return
			}
			logger.Log.Errorw("error fetching basic info", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "Error fetching user data"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(info)
	}
}

// NewSaveBasicInfoHandler validates and upserts the identity block.
// @Summary Save basic info
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body handlers.BasicInfoRequest true "Identity block"
// @Success 200 {object} models.BasicInfoDB "Saved block"
// @Failure 400 {object} handlers.TrackingErrorResponse "Missing fields or bad age"
// @Failure 500 {object} handlers.TrackingErrorResponse "Internal server error"
// @Router /tracking/basic-info [post]
func NewSaveBasicInfoHandler(svc BasicInfoProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req BasicInfoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "Invalid request body"})
			return
		}

		info, err := svc.SaveBasicInfo(r.Context(), claims.UserID, req.FirstName, req.LastName, req.Age, req.Gender, req.Image)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAllFieldsRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "All fields are required."})
			case errors.Is(err, services.ErrInvalidAge):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "Age must be a number of at least 16."})
			default:
				logger.Log.Errorw("error saving basic info", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(TrackingErrorResponse{Error: "Error saving user data"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(info)
	}
}
