package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vibeguard/vibeguard/internal/models"
)

type BasicInfoRepository struct {
	db *sqlx.DB
}

func NewBasicInfoRepository(db *sqlx.DB) *BasicInfoRepository {
	return &BasicInfoRepository{db: db}
}

// Get returns the user's basic info block, or nil when never saved.
func (r *BasicInfoRepository) Get(ctx context.Context, userID uuid.UUID) (*models.BasicInfoDB, error) {
	const query = `
		SELECT user_id, first_name, last_name, age, gender, image, updated_at
		FROM basic_info
		WHERE user_id = $1
	`

	var info models.BasicInfoDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &info, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Upsert creates or replaces the user's basic info in one statement.
func (r *BasicInfoRepository) Upsert(ctx context.Context, info models.BasicInfoDB) error {
	const query = `
		INSERT INTO basic_info (user_id, first_name, last_name, age, gender, image, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET first_name = EXCLUDED.first_name,
		    last_name  = EXCLUDED.last_name,
		    age        = EXCLUDED.age,
		    gender     = EXCLUDED.gender,
		    image      = EXCLUDED.image,
		    updated_at = NOW()
	`
	_, err := ext(ctx, r.db).ExecContext(ctx, query,
		info.UserID, info.FirstName, info.LastName, info.Age, info.Gender, info.Image)
	return err
}

// Delete removes the info block (account deletion).
func (r *BasicInfoRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM basic_info WHERE user_id = $1`
	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID)
	return err
}

type HealthDataRepository struct {
	db *sqlx.DB
}

func NewHealthDataRepository(db *sqlx.DB) *HealthDataRepository {
	return &HealthDataRepository{db: db}
}

// Add appends one measurement.
func (r *HealthDataRepository) Add(ctx context.Context, userID uuid.UUID, at time.Time, weight float64, bp string, heartRate *int, bmi *float64) error {
	const query = `
		INSERT INTO health_data (health_data_id, user_id, time, weight, bp, heart_rate, bmi)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := ext(ctx, r.db).ExecContext(ctx, query,
		uuid.New(), userID, at, weight, bp, heartRate, bmi)
	return err
}

// ListByUser returns the user's measurements, newest first.
func (r *HealthDataRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.HealthDataDB, error) {
	const query = `
		SELECT health_data_id, user_id, time, weight, bp, heart_rate, bmi
		FROM health_data
		WHERE user_id = $1
		ORDER BY time DESC
	`

	var data []models.HealthDataDB
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &data, query, userID); err != nil {
		return nil, err
	}
	return data, nil
}
