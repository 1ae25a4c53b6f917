package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/models"
)

var (
	ErrAllFieldsRequired = errors.New("all fields are required")
	ErrInvalidAge        = errors.New("age must be a number of at least 16")
)

// minAge is the lower bound accepted for the basic info block.
const minAge = 16

// BasicInfoStore reads and writes the per-user identity block.
type BasicInfoStore interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.BasicInfoDB, error)
	Upsert(ctx context.Context, info models.BasicInfoDB) error
}

// HealthDataStore appends and lists health measurements.
type HealthDataStore interface {
	Add(ctx context.Context, userID uuid.UUID, at time.Time, weight float64, bp string, heartRate *int, bmi *float64) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.HealthDataDB, error)
}

// ProfileWriter updates the mutable user profile fields.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, username, bio string) error
}

// ProfileService backs the user dashboard: basic info, health tracking
// and profile edits.
type ProfileService struct {
	reader UserReader
	writer ProfileWriter
	info   BasicInfoStore
	health HealthDataStore
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader UserReader, writer ProfileWriter, info BasicInfoStore, health HealthDataStore) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
		info:   info,
		health: health,
	}
}

// GetBasicInfo returns the user's identity block, ErrNotFound when it
// was never saved.
func (svc *ProfileService) GetBasicInfo(ctx context.Context, userID uuid.UUID) (*models.BasicInfoDB, error) {
	info, err := svc.info.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrNotFound
	}
	return info, nil
}

// SaveBasicInfo validates and upserts the identity block.
func (svc *ProfileService) SaveBasicInfo(ctx context.Context, userID uuid.UUID, firstName, lastName string, age int, gender, image string) (*models.BasicInfoDB, error) {
	if firstName == "" || lastName == "" || gender == "" {
		return nil, ErrAllFieldsRequired
	}
	if age < minAge {
		return nil, ErrInvalidAge
	}
	if image == "" {
		image = "default.png"
	}

	info := models.BasicInfoDB{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
		Age:       age,
		Gender:    gender,
		Image:     image,
	}
	if err := svc.info.Upsert(ctx, info); err != nil {
		return nil, err
	}
	return &info, nil
}

// AddHealthData appends one measurement.
func (svc *ProfileService) AddHealthData(ctx context.Context, userID uuid.UUID, at time.Time, weight float64, bp string, heartRate *int, bmi *float64) error {
	if at.IsZero() || weight <= 0 || bp == "" {
		return ErrAllFieldsRequired
	}
	return svc.health.Add(ctx, userID, at, weight, bp, heartRate, bmi)
}

// ListHealthData returns the user's measurements, newest first;
// ErrNotFound when none exist.
func (svc *ProfileService) ListHealthData(ctx context.Context, userID uuid.UUID) ([]models.HealthDataDB, error) {
	data, err := svc.health.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNotFound
	}
	return data, nil
}

// GetProfile returns the user record together with the basic info block
// (nil info when never saved).
func (svc *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, *models.BasicInfoDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserDoesNotExist
	}

	info, err := svc.info.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return user, info, nil
}

// UpdateProfile applies the profile edit: username/bio on the user row,
// identity fields on the basic info block. Empty fields keep their
// previous values.
func (svc *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, username, bio, firstName, lastName string, age int, gender, image string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	if username == "" {
		username = user.Username
	}
	if bio == "" {
		bio = user.Bio
	}
	if err := svc.writer.UpdateProfile(ctx, userID, username, bio); err != nil {
		return err
	}

	prev, err := svc.info.Get(ctx, userID)
	if err != nil {
		return err
	}
	info := models.BasicInfoDB{UserID: userID}
	if prev != nil {
		info = *prev
	}
	if firstName != "" {
		info.FirstName = firstName
	}
	if lastName != "" {
		info.LastName = lastName
	}
	if age >= minAge {
		info.Age = age
	}
	if gender != "" {
		info.Gender = gender
	}
	if image != "" {
		info.Image = image
	}
	return svc.info.Upsert(ctx, info)
}
