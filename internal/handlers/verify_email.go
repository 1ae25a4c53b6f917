package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/services"
)

// EmailVerifier defines the interface for the verification service.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, email, code string) error
}

// VerifyEmailRequest represents the JSON body for email verification
// swagger:model VerifyEmailRequest
type VerifyEmailRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Verification code from the email
	// required: true
	Code string `json:"code"`
}

// VerifyEmailResponse represents a successful verification response
// swagger:model VerifyEmailResponse
type VerifyEmailResponse struct {
	// Success message
	// default: Email verified successfully
	Message string `json:"message"`
}

// VerifyEmailErrorResponse represents an error response for verification
// swagger:model VerifyEmailErrorResponse
type VerifyEmailErrorResponse struct {
	// Error message
	// default: Invalid verification code
	Error string `json:"error"`
}

// NewVerifyEmailHandler returns an HTTP handler for email verification.
// @Summary Verify email
// @Description Consumes the emailed code and marks the account verified.
// @Tags auth
// @Accept json
// @Produce json
// @Param verifyEmailRequest body handlers.VerifyEmailRequest true "Verification request"
// @Success 200 {object} handlers.VerifyEmailResponse "Email verified"
// @Failure 400 {object} handlers.VerifyEmailErrorResponse "Missing fields or invalid code"
// @Failure 404 {object} handlers.VerifyEmailErrorResponse "User not found"
// @Router /login/verify-email [post]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VerifyEmailRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Code == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(VerifyEmailErrorResponse{
				Error: "Please enter the verification code.",
			})
			return
		}

		if err := svc.VerifyEmail(r.Context(), req.Email, req.Code); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCode):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(VerifyEmailErrorResponse{
					Error: "Invalid verification code. Please try again.",
				})
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(VerifyEmailErrorResponse{
					Error: "User not found. Please register again.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(VerifyEmailErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(VerifyEmailResponse{
			Message: "Email verified successfully! You can now log in.",
		})
	}
}
