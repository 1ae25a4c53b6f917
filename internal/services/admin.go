package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/mailer"
	"github.com/vibeguard/vibeguard/internal/models"
)

var (
	// ErrRecentLogin means a suspension was refused because the user has
	// logged in within the inactivity window.
	ErrRecentLogin = errors.New("last login is not more than 5 months ago")
)

// inactivityWindow is how long a user must be inactive before an admin
// may suspend them.
const inactivityWindow = 5 // months

// UserLister reads users for the admin panel.
type UserLister interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	List(ctx context.Context, limit, offset int) ([]models.UserDB, int, error)
}

// SuspensionWriter flips the suspension flag.
type SuspensionWriter interface {
	SetSuspended(ctx context.Context, userID uuid.UUID, suspended bool) error
}

// AdminService manages the user list and suspension lifecycle.
type AdminService struct {
	users  UserLister
	writer SuspensionWriter
	mail   Sender
	events EventPublisher
}

// NewAdminService creates a new AdminService.
func NewAdminService(users UserLister, writer SuspensionWriter, mail Sender, events EventPublisher) *AdminService {
	return &AdminService{
		users:  users,
		writer: writer,
		mail:   mail,
		events: events,
	}
}

// ListUsers returns one page of users, newest registrations first.
func (svc *AdminService) ListUsers(ctx context.Context, page, limit int) ([]models.UserDB, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return svc.users.List(ctx, limit, (page-1)*limit)
}

// ToggleSuspension suspends an active user or reactivates a suspended
// one. Suspension is only allowed when the user's last login is older
// than the inactivity window (or reactivation, which is unconditional).
// The flag flips first; the notification email is best-effort and its
// failure does not roll the flag back.
func (svc *AdminService) ToggleSuspension(ctx context.Context, userID uuid.UUID) (suspended bool, err error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, ErrUserDoesNotExist
	}

	if !user.Suspended {
		cutoff := time.Now().AddDate(0, -inactivityWindow, 0)
		if user.LastLogin == nil || user.LastLogin.After(cutoff) {
			return false, ErrRecentLogin
		}

		if err := svc.writer.SetSuspended(ctx, userID, true); err != nil {
			return false, err
		}

		subject, body := mailer.SuspensionMessage(user.Username)
		if err := svc.mail.Send(user.Email, subject, body); err != nil {
			logger.Log.Warnw("suspension notice not delivered", "email", user.Email, "err", err)
		}
		svc.events.Publish(ctx, "user_suspended", userID, user.Email)
		return true, nil
	}

	if err := svc.writer.SetSuspended(ctx, userID, false); err != nil {
		return false, err
	}

	subject, body := mailer.UnsuspensionMessage(user.Username)
	if err := svc.mail.Send(user.Email, subject, body); err != nil {
		logger.Log.Warnw("unsuspension notice not delivered", "email", user.Email, "err", err)
	}
	svc.events.Publish(ctx, "user_unsuspended", userID, user.Email)
	return false, nil
}
