package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `user_id, username, email, password_hash, role, suspended, verified, bio, image_url, created_at, last_login`

// GetByEmail returns the user with the given email, or nil when absent.
// Emails are stored lowercase; the lookup normalizes to match.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, strings.ToLower(email))

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil when absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 LIMIT 1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername reports whether a username is taken.
func (r *UserReadRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &exists, query, username); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns a page of users ordered by registration date, newest first,
// together with the total count.
func (r *UserReadRepository) List(ctx context.Context, limit, offset int) ([]models.UserDB, int, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var users []models.UserDB
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &users, query, limit, offset); err != nil {
		return nil, 0, err
	}

	var total int
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &total, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// ListActivity returns every user's registration and last-login timestamps
// for the admin summary report.
func (r *UserReadRepository) ListActivity(ctx context.Context) ([]models.UserActivity, error) {
	const query = `SELECT username, created_at, last_login FROM users ORDER BY created_at`

	var rows []models.UserActivity
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query); err != nil {
		return nil, err
	}
	return rows, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new unverified user and returns its id.
func (r *UserWriteRepository) Save(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error) {
	query := `
		INSERT INTO users (user_id, username, email, password_hash, role, suspended, verified, bio, image_url, created_at)
		VALUES ($1, $2, $3, $4, 'user', FALSE, FALSE, '', '/uploads/default.png', NOW())
		RETURNING user_id
	`
	userID := uuid.New()
	args := []any{userID, username, strings.ToLower(email), passwordHash}

	var returned uuid.UUID
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &returned, query, args...)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, username, email},
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return returned, nil
}

// SetVerified marks the user with the given email as verified.
func (r *UserWriteRepository) SetVerified(ctx context.Context, email string) error {
	const query = `UPDATE users SET verified = TRUE WHERE email = $1`
	_, err := ext(ctx, r.db).ExecContext(ctx, query, strings.ToLower(email))
	return err
}

// UpdateLastLogin records a successful login.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	const query = `UPDATE users SET last_login = $2 WHERE user_id = $1`
	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID, at)
	return err
}

// SetSuspended flips the suspension flag.
func (r *UserWriteRepository) SetSuspended(ctx context.Context, userID uuid.UUID, suspended bool) error {
	const query = `UPDATE users SET suspended = $2 WHERE user_id = $1`
	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID, suspended)
	return err
}

// UpdatePassword replaces the stored hash for the given email.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $2 WHERE email = $1`
	_, err := ext(ctx, r.db).ExecContext(ctx, query, strings.ToLower(email), passwordHash)
	return err
}

// UpdateProfile updates the mutable profile fields.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, username, bio string) error {
	const query = `UPDATE users SET username = $2, bio = $3 WHERE user_id = $1`
	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID, username, bio)
	return err
}

// Delete removes the user row. Dependent rows (basic info, selections)
// are deleted by the caller before this runs.
func (r *UserWriteRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM users WHERE user_id = $1`
	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID)
	return err
}
