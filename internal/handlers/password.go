package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/middlewares"
	"github.com/vibeguard/vibeguard/internal/services"
)

// PasswordManager covers the three password flows.
type PasswordManager interface {
	ResetPassword(ctx context.Context, email, currentPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for an authenticated password change
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ForgotPasswordRequest starts the OTP reset flow
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ConfirmResetRequest completes the OTP reset flow
// swagger:model ConfirmResetRequest
type ConfirmResetRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"new_password"`
}

// PasswordResponse is the generic success payload for password flows
// swagger:model PasswordResponse
type PasswordResponse struct {
	Message string `json:"message"`
}

// PasswordErrorResponse is the generic error payload for password flows
// swagger:model PasswordErrorResponse
type PasswordErrorResponse struct {
	Error string `json:"error"`
}

// NewResetPasswordHandler returns an HTTP handler for the authenticated
// password change. The email comes from the session claim, not the body.
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Password change request"
// @Success 200 {object} handlers.PasswordResponse "Password updated"
// @Failure 400 {object} handlers.PasswordErrorResponse "Weak password or wrong current password"
// @Router /login/resetpassword [post]
func NewResetPasswordHandler(svc PasswordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PasswordErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.ResetPassword(r.Context(), claims.Email, req.CurrentPassword, req.NewPassword)
		if err != nil {
			writePasswordError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PasswordResponse{Message: "Password updated successfully!"})
	}
}

// NewForgotPasswordHandler returns an HTTP handler that emails a reset OTP.
// @Summary Start password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} handlers.PasswordResponse "OTP sent"
// @Failure 404 {object} handlers.PasswordErrorResponse "No user with this email"
// @Router /login/forgotpassword [post]
func NewForgotPasswordHandler(svc PasswordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PasswordErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			writePasswordError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PasswordResponse{Message: "Password reset code sent to your email."})
	}
}

// NewConfirmResetHandler returns an HTTP handler that consumes the OTP
// and sets the new password.
// @Summary Complete password reset
// @Tags auth
// @Accept json
// @Produce json
// @Param confirmResetRequest body handlers.ConfirmResetRequest true "Reset confirmation request"
// @Success 200 {object} handlers.PasswordResponse "Password reset"
// @Failure 400 {object} handlers.PasswordErrorResponse "Invalid or expired code"
// @Router /login/reset-password/verify [post]
func NewConfirmResetHandler(svc PasswordManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ConfirmResetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Code == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PasswordErrorResponse{Error: "All fields are required."})
			return
		}

		if err := svc.ConfirmPasswordReset(r.Context(), req.Email, req.Code, req.NewPassword); err != nil {
			writePasswordError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PasswordResponse{Message: "Password reset successful. You can now log in."})
	}
}

func writePasswordError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrWeakPassword):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(PasswordErrorResponse{Error: "New password must be at least 8 characters long."})
	case errors.Is(err, services.ErrInvalidEmail):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(PasswordErrorResponse{Error: "Invalid email format."})
	case errors.Is(err, services.ErrInvalidCredentials):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(PasswordErrorResponse{Error: "Incorrect current password."})
	case errors.Is(err, services.ErrInvalidCode):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(PasswordErrorResponse{Error: "Expired or invalid code. Please try again."})
	case errors.Is(err, services.ErrUserDoesNotExist):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(PasswordErrorResponse{Error: "No user found with this email."})
	case errors.Is(err, services.ErrEmailSendFailed):
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(PasswordErrorResponse{Error: "Failed to send email. Please try again."})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(PasswordErrorResponse{Error: "Internal server error"})
	}
}
