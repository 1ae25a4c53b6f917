package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/mailer"
	"github.com/vibeguard/vibeguard/internal/models"
	"github.com/vibeguard/vibeguard/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrWeakPassword     = errors.New("password must be at least 8 characters long")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmailRegistered  = errors.New("email already registered")
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmailSendFailed  = errors.New("failed to send verification email")

	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSuspended          = errors.New("account is suspended")
	ErrNotVerified        = errors.New("email not verified")
	ErrInvalidCode        = errors.New("invalid verification code")
)

// Code store purposes.
const (
	purposeVerify = "verify"
	purposeReset  = "reset"
)

// minPasswordLen is the registration password policy.
const minPasswordLen = 8

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
	SetVerified(ctx context.Context, email string) error
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// CodeStore holds short-lived verification codes.
type CodeStore interface {
	Set(ctx context.Context, purpose, email, code string) error
	Get(ctx context.Context, purpose, email string) (string, error)
	Delete(ctx context.Context, purpose, email string) error
}

// Sender delivers outbound mail.
type Sender interface {
	Send(to, subject, body string) error
}

// TokenIssuer mints signed session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID, email, role string) (string, error)
}

// EventPublisher emits account lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, userID uuid.UUID, email string)
}

// SelectionEraser removes a user's recorded symptom selections.
type SelectionEraser interface {
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
}

// BasicInfoEraser removes a user's identity block.
type BasicInfoEraser interface {
	Delete(ctx context.Context, userID uuid.UUID) error
}

// AuthService handles registration, verification and login.
type AuthService struct {
	reader     UserReader
	writer     UserWriter
	codes      CodeStore
	mail       Sender
	jwt        TokenIssuer
	events     EventPublisher
	selections SelectionEraser
	basicInfo  BasicInfoEraser
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, codes CodeStore, mail Sender, jwt TokenIssuer, events EventPublisher, selections SelectionEraser, basicInfo BasicInfoEraser) *AuthService {
	return &AuthService{
		reader:     reader,
		writer:     writer,
		codes:      codes,
		mail:       mail,
		jwt:        jwt,
		events:     events,
		selections: selections,
		basicInfo:  basicInfo,
	}
}

// Register creates a new unverified user and emails a verification code.
// Registering again with an unverified email resends a fresh code instead
// of erroring; a verified email is a conflict. Returns true when the code
// was a resend for an existing unverified account.
func (svc *AuthService) Register(ctx context.Context, username, email, password, confirmPassword string) (bool, error) {
	if !strings.Contains(email, "@") {
		return false, ErrInvalidEmail
	}
	if len(password) < minPasswordLen {
		return false, ErrWeakPassword
	}
	if password != confirmPassword {
		return false, ErrPasswordMismatch
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check existing user", "err", err)
		return false, err
	}

	code, err := generateCode()
	if err != nil {
		return false, err
	}

	if existing != nil {
		if existing.Verified {
			return false, ErrEmailRegistered
		}

		// Unverified re-registration restarts verification.
		if err := svc.codes.Set(ctx, purposeVerify, email, code); err != nil {
			return false, err
		}
		if err := svc.sendVerificationCode(email, code); err != nil {
			return false, ErrEmailSendFailed
		}
		return true, nil
	}

	taken, err := svc.reader.ExistsByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if taken {
		return false, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return false, err
	}

	userID, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return false, err
	}

	if err := svc.codes.Set(ctx, purposeVerify, email, code); err != nil {
		return false, err
	}
	if err := svc.sendVerificationCode(email, code); err != nil {
		return false, ErrEmailSendFailed
	}

	svc.events.Publish(ctx, "user_registered", userID, email)
	return false, nil
}

// VerifyEmail consumes a verification code and marks the account verified.
func (svc *AuthService) VerifyEmail(ctx context.Context, email, code string) error {
	saved, err := svc.codes.Get(ctx, purposeVerify, email)
	if errors.Is(err, repositories.ErrCodeNotFound) {
		return ErrInvalidCode
	}
	if err != nil {
		return err
	}
	if saved != strings.TrimSpace(code) {
		return ErrInvalidCode
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	if err := svc.writer.SetVerified(ctx, email); err != nil {
		logger.Log.Errorw("failed to mark user verified", "err", err)
		return err
	}
	if err := svc.codes.Delete(ctx, purposeVerify, email); err != nil {
		logger.Log.Warnw("failed to delete consumed code", "err", err)
	}

	svc.events.Publish(ctx, "user_verified", user.UserID, email)
	return nil
}

// Login authenticates a user and returns a session token. Check order:
// unknown email, suspension, password, verification. lastLogin is only
// touched after the password check passes.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if user.Suspended {
		return "", ErrSuspended
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "email", email)
		return "", ErrInvalidCredentials
	}

	if !user.Verified {
		return "", ErrNotVerified
	}

	if err := svc.writer.UpdateLastLogin(ctx, user.UserID, time.Now()); err != nil {
		logger.Log.Errorw("failed to update last login", "err", err)
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// ResetPassword changes the password of a logged-in user after checking
// the current one.
func (svc *AuthService) ResetPassword(ctx context.Context, email, currentPassword, newPassword string) error {
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if len(newPassword) < minPasswordLen {
		return ErrWeakPassword
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := svc.writer.UpdatePassword(ctx, email, string(hashed)); err != nil {
		return err
	}

	subject, body := mailer.PasswordResetConfirmationMessage()
	if err := svc.mail.Send(user.Email, subject, body); err != nil {
		logger.Log.Warnw("password reset confirmation not delivered", "err", err)
	}
	return nil
}

// ForgotPassword emails an OTP for the password-reset flow. The OTP
// lives in the code store with a TTL.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	otp, err := generateCode()
	if err != nil {
		return err
	}
	if err := svc.codes.Set(ctx, purposeReset, email, otp); err != nil {
		return err
	}

	subject, body := mailer.PasswordResetOTPMessage(otp)
	if err := svc.mail.Send(email, subject, body); err != nil {
		return ErrEmailSendFailed
	}
	return nil
}

// ConfirmPasswordReset consumes the OTP and sets the new password.
func (svc *AuthService) ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return ErrWeakPassword
	}

	saved, err := svc.codes.Get(ctx, purposeReset, email)
	if errors.Is(err, repositories.ErrCodeNotFound) {
		return ErrInvalidCode
	}
	if err != nil {
		return err
	}
	if saved != strings.TrimSpace(otp) {
		return ErrInvalidCode
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := svc.writer.UpdatePassword(ctx, email, string(hashed)); err != nil {
		return err
	}
	if err := svc.codes.Delete(ctx, purposeReset, email); err != nil {
		logger.Log.Warnw("failed to delete consumed otp", "err", err)
	}

	subject, body := mailer.PasswordResetConfirmationMessage()
	if err := svc.mail.Send(email, subject, body); err != nil {
		logger.Log.Warnw("password reset confirmation not delivered", "err", err)
	}
	return nil
}

// DeleteAccount removes the user together with their selections and
// basic info. The route runs inside the request transaction, so the
// three deletes commit or roll back as one.
func (svc *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	if err := svc.selections.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	if err := svc.basicInfo.Delete(ctx, userID); err != nil {
		return err
	}
	return svc.writer.Delete(ctx, userID)
}

func (svc *AuthService) sendVerificationCode(email, code string) error {
	subject, body := mailer.VerificationMessage(code)
	if err := svc.mail.Send(email, subject, body); err != nil {
		logger.Log.Errorw("verification email failed", "email", email, "err", err)
		return err
	}
	return nil
}

// generateCode returns a 6-digit numeric code.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
