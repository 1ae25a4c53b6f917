package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/middlewares"
	"github.com/vibeguard/vibeguard/internal/models"
	"github.com/vibeguard/vibeguard/internal/services"
)

// FeedbackManager stores and lists user feedback.
type FeedbackManager interface {
	CreateFeedback(ctx context.Context, userID uuid.UUID, text string) error
	ListFeedback(ctx context.Context, page, limit int) ([]models.FeedbackDB, int, error)
}

// FeedbackRequest carries one feedback submission
// swagger:model FeedbackRequest
type FeedbackRequest struct {
	Text string `json:"text"`
}

// FeedbackSavedResponse confirms stored feedback
// swagger:model FeedbackSavedResponse
type FeedbackSavedResponse struct {
	Message string `json:"message"`
}

// FeedbackListResponse is one page of feedback for the admin panel
// swagger:model FeedbackListResponse
type FeedbackListResponse struct {
	Feedback    []models.FeedbackDB `json:"feedback"`
	CurrentPage int                 `json:"current_page"`
	TotalPages  int                 `json:"total_pages"`
	Total       int                 `json:"total"`
}

// FeedbackErrorResponse is the error payload for feedback endpoints
// swagger:model FeedbackErrorResponse
type FeedbackErrorResponse struct {
	Error string `json:"error"`
}

// NewCreateFeedbackHandler stores feedback from the caller, capturing
// their display name at submission time.
// @Summary Submit feedback
// @Tags feedback
// @Accept json
// @Produce json
// @Param request body handlers.FeedbackRequest true "Feedback text"
// @Success 201 {object} handlers.FeedbackSavedResponse "Feedback stored"
// @Failure 400 {object} handlers.FeedbackErrorResponse "Empty feedback"
// @Router /feedback [post]
func NewCreateFeedbackHandler(svc FeedbackManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req FeedbackRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Invalid request body"})
			return
		}

		if err := svc.CreateFeedback(r.Context(), claims.UserID, req.Text); err != nil {
			if errors.Is(err, services.ErrMissingFields) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Feedback text is required."})
				return
			}
			logger.Log.Errorw("error saving feedback", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Error saving feedback"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(FeedbackSavedResponse{Message: "Feedback submitted successfully"})
	}
}

// NewListFeedbackHandler returns one page of feedback, newest first.
// Admin only at the route level.
// @Summary List feedback
// @Tags feedback
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} handlers.FeedbackListResponse "Feedback page"
// @Failure 500 {object} handlers.FeedbackErrorResponse "Internal server error"
// @Router /admin/feedback [get]
func NewListFeedbackHandler(svc FeedbackManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}

		feedback, total, err := svc.ListFeedback(r.Context(), page, limit)
		if err != nil {
			logger.Log.Errorw("error fetching feedback", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FeedbackErrorResponse{Error: "Error fetching feedback"})
			return
		}
		if feedback == nil {
			feedback = []models.FeedbackDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FeedbackListResponse{
			Feedback:    feedback,
			CurrentPage: page,
			TotalPages:  (total + limit - 1) / limit,
			Total:       total,
		})
	}
}
