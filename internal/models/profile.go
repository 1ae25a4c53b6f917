package models

import (
	"time"

	"github.com/google/uuid"
)

// BasicInfoDB holds the identity block shown on dashboards and reports.
// One row per user, upserted.
type BasicInfoDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Age       int       `json:"age" db:"age"`
	Gender    string    `json:"gender" db:"gender"`
	Image     string    `json:"image" db:"image"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// HealthDataDB is a single health-tracking measurement
type HealthDataDB struct {
	HealthDataID uuid.UUID `json:"health_data_id" db:"health_data_id"`
	UserID       uuid.UUID `json:"user_id" db:"user_id"`
	Time         time.Time `json:"time" db:"time"`
	Weight       float64   `json:"weight" db:"weight"`
	BP           string    `json:"bp" db:"bp"`
	HeartRate    *int      `json:"heart_rate,omitempty" db:"heart_rate"`
	BMI          *float64  `json:"bmi,omitempty" db:"bmi"`
}
