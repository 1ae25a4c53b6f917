package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/models"
	"github.com/vibeguard/vibeguard/internal/services"
)

// AdminUserManager lists users and toggles suspension.
type AdminUserManager interface {
	ListUsers(ctx context.Context, page, limit int) ([]models.UserDB, int, error)
	ToggleSuspension(ctx context.Context, userID uuid.UUID) (bool, error)
}

// UserListResponse is one page of the admin user list
// swagger:model UserListResponse
type UserListResponse struct {
	Users       []models.UserDB `json:"users"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
	Limit       int             `json:"limit"`
	Total       int             `json:"total"`
}

// SuspendResponse reports the suspension toggle outcome
// swagger:model SuspendResponse
type SuspendResponse struct {
	Suspended bool   `json:"suspended"`
	Message   string `json:"message"`
}

// AdminErrorResponse is the error payload for admin endpoints
// swagger:model AdminErrorResponse
type AdminErrorResponse struct {
	Error string `json:"error"`
}

// NewListUsersHandler returns one page of users, newest first.
// @Summary List users
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} handlers.UserListResponse "User page"
// @Failure 500 {object} handlers.AdminErrorResponse "Internal server error"
// @Router /admin/users [get]
func NewListUsersHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}

		users, total, err := svc.ListUsers(r.Context(), page, limit)
		if err != nil {
			logger.Log.Errorw("error fetching users", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Error fetching users."})
			return
		}

		if users == nil {
			users = []models.UserDB{}
		}

		totalPages := (total + limit - 1) / limit

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserListResponse{
			Users:       users,
			CurrentPage: page,
			TotalPages:  totalPages,
			Limit:       limit,
			Total:       total,
		})
	}
}

// NewSuspendUserHandler suspends an active user (only after 5 months of
// inactivity) or reactivates a suspended one, notifying by email.
// @Summary Suspend or unsuspend a user
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.SuspendResponse "New suspension state"
// @Failure 400 {object} handlers.AdminErrorResponse "Recent login or malformed ID"
// @Failure 404 {object} handlers.AdminErrorResponse "User not found"
// @Router /admin/users/{id}/suspend [post]
func NewSuspendUserHandler(svc AdminUserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Invalid user ID"})
			return
		}

		suspended, err := svc.ToggleSuspension(r.Context(), userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "User not found."})
			case errors.Is(err, services.ErrRecentLogin):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Last login is not more than 5 months"})
			default:
				logger.Log.Errorw("error suspending user", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AdminErrorResponse{Error: "Error suspending user"})
			}
			return
		}

		msg := "User unsuspended and notified"
		if suspended {
			msg = "User suspended and notified"
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SuspendResponse{Suspended: suspended, Message: msg})
	}
}
