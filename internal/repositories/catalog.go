package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vibeguard/vibeguard/internal/models"
)

// CatalogReadRepository serves the symptom-checker lookups over the
// admin-managed catalogue (body parts, symptoms, details, medicines,
// doctors). The catalogue is written elsewhere; this service only reads it.
type CatalogReadRepository struct {
	db *sqlx.DB
}

func NewCatalogReadRepository(db *sqlx.DB) *CatalogReadRepository {
	return &CatalogReadRepository{db: db}
}

// ListBodyParts returns the whole body-part catalogue.
func (r *CatalogReadRepository) ListBodyParts(ctx context.Context) ([]models.BodyPartDB, error) {
	const query = `SELECT body_part_id, name, image, created_at FROM body_parts ORDER BY name`

	var parts []models.BodyPartDB
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &parts, query); err != nil {
		return nil, err
	}
	return parts, nil
}

// ListSymptomsByBodyPart returns the symptoms belonging to a body part.
// An empty slice means the body part has no symptoms; callers surface
// that as an empty JSON array.
func (r *CatalogReadRepository) ListSymptomsByBodyPart(ctx context.Context, bodyPartID uuid.UUID) ([]models.SymptomDB, error) {
	const query = `
		SELECT symptom_id, name, body_part_id, created_at
		FROM symptoms
		WHERE body_part_id = $1
		ORDER BY name
	`

	var symptoms []models.SymptomDB
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &symptoms, query, bodyPartID); err != nil {
		return nil, err
	}
	return symptoms, nil
}

// GetSymptomByID returns a symptom, or nil when absent.
func (r *CatalogReadRepository) GetSymptomByID(ctx context.Context, symptomID uuid.UUID) (*models.SymptomDB, error) {
	const query = `SELECT symptom_id, name, body_part_id, created_at FROM symptoms WHERE symptom_id = $1`

	var symptom models.SymptomDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &symptom, query, symptomID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &symptom, nil
}

// GetSymptomDetail returns the long-form description of a symptom,
// or nil when none has been written.
func (r *CatalogReadRepository) GetSymptomDetail(ctx context.Context, symptomID uuid.UUID) (*models.SymptomDetailDB, error) {
	const query = `
		SELECT symptom_detail_id, symptom_id, overview, possible_causes, precautions, remedies, fact, lifestyle_tips, created_at
		FROM symptom_details
		WHERE symptom_id = $1
		LIMIT 1
	`

	var detail models.SymptomDetailDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &detail, query, symptomID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// ListMedicinesBySymptom returns medicines suggested for a symptom.
func (r *CatalogReadRepository) ListMedicinesBySymptom(ctx context.Context, symptomID uuid.UUID) ([]models.MedicineDB, error) {
	const query = `
		SELECT medicine_id, name, description, dose, symptom_id, created_at
		FROM medicines
		WHERE symptom_id = $1
		ORDER BY name
	`

	var medicines []models.MedicineDB
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &medicines, query, symptomID); err != nil {
		return nil, err
	}
	return medicines, nil
}

// ListDoctorsByBodyPart returns doctors treating a body part, optionally
// narrowed to a city.
func (r *CatalogReadRepository) ListDoctorsByBodyPart(ctx context.Context, bodyPartID uuid.UUID, city string) ([]models.DoctorDB, error) {
	const query = `
		SELECT doctor_id, name, city, specialization, qualification, experience,
		       satisfaction_pct, hospital_address, fee, contact, body_part_id, created_at
		FROM doctors
		WHERE body_part_id = $1
		  AND ($2 = '' OR city ILIKE $2)
		ORDER BY name
	`

	var doctors []models.DoctorDB
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &doctors, query, bodyPartID, city); err != nil {
		return nil, err
	}
	return doctors, nil
}

// GetSummaryStats returns the catalogue-wide counts for the admin report.
func (r *CatalogReadRepository) GetSummaryStats(ctx context.Context) (*models.SummaryStats, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM body_parts)                          AS total_body_parts,
			(SELECT COUNT(*) FROM symptoms)                            AS total_symptoms,
			(SELECT COUNT(*) FROM symptom_details)                     AS total_symptom_details,
			(SELECT COUNT(*) FROM medicines)                           AS total_medicines,
			(SELECT COUNT(*) FROM doctors)                             AS total_doctors,
			(SELECT COUNT(*) FROM users)                               AS total_users,
			(SELECT COUNT(*) FROM users WHERE suspended)               AS suspended_users,
			(SELECT COUNT(*) FROM users WHERE role = 'admin')          AS total_admins,
			(SELECT COUNT(*) FROM feedbacks)                           AS total_feedbacks
	`

	var stats models.SummaryStats
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &stats, query); err != nil {
		return nil, err
	}
	return &stats, nil
}
