package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/models"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrNotFound      = errors.New("not found")
)

// CatalogReader serves catalogue lookups.
type CatalogReader interface {
	ListBodyParts(ctx context.Context) ([]models.BodyPartDB, error)
	ListSymptomsByBodyPart(ctx context.Context, bodyPartID uuid.UUID) ([]models.SymptomDB, error)
	GetSymptomByID(ctx context.Context, symptomID uuid.UUID) (*models.SymptomDB, error)
	GetSymptomDetail(ctx context.Context, symptomID uuid.UUID) (*models.SymptomDetailDB, error)
	ListMedicinesBySymptom(ctx context.Context, symptomID uuid.UUID) ([]models.MedicineDB, error)
	ListDoctorsByBodyPart(ctx context.Context, bodyPartID uuid.UUID, city string) ([]models.DoctorDB, error)
}

// SelectionWriter records symptom selections.
type SelectionWriter interface {
	Save(ctx context.Context, userID, symptomID, bodyPartID uuid.UUID) (bool, error)
}

// CheckerService backs the symptom-checker wizard: catalogue lookups plus
// the selection recorder.
type CheckerService struct {
	catalog    CatalogReader
	selections SelectionWriter
}

// NewCheckerService creates a new CheckerService.
func NewCheckerService(catalog CatalogReader, selections SelectionWriter) *CheckerService {
	return &CheckerService{
		catalog:    catalog,
		selections: selections,
	}
}

// ListBodyParts returns the body-part catalogue.
func (svc *CheckerService) ListBodyParts(ctx context.Context) ([]models.BodyPartDB, error) {
	return svc.catalog.ListBodyParts(ctx)
}

// ListSymptoms returns the symptoms of a body part. An empty slice is a
// valid answer (rendered as an empty JSON array, not 404).
func (svc *CheckerService) ListSymptoms(ctx context.Context, bodyPartID uuid.UUID) ([]models.SymptomDB, error) {
	symptoms, err := svc.catalog.ListSymptomsByBodyPart(ctx, bodyPartID)
	if err != nil {
		return nil, err
	}
	if symptoms == nil {
		symptoms = []models.SymptomDB{}
	}
	return symptoms, nil
}

// GetSymptomDetail returns the detail page data for a symptom.
func (svc *CheckerService) GetSymptomDetail(ctx context.Context, symptomID uuid.UUID) (*models.SymptomDetailDB, error) {
	detail, err := svc.catalog.GetSymptomDetail(ctx, symptomID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrNotFound
	}
	return detail, nil
}

// ListMedicines returns medicines for a symptom. No medicines is treated
// as not found.
func (svc *CheckerService) ListMedicines(ctx context.Context, symptomID uuid.UUID) ([]models.MedicineDB, error) {
	medicines, err := svc.catalog.ListMedicinesBySymptom(ctx, symptomID)
	if err != nil {
		return nil, err
	}
	if len(medicines) == 0 {
		return nil, ErrNotFound
	}
	return medicines, nil
}

// ListDoctors returns doctors for a body part, optionally narrowed by
// city. No doctors is treated as not found.
func (svc *CheckerService) ListDoctors(ctx context.Context, bodyPartID uuid.UUID, city string) ([]models.DoctorDB, error) {
	doctors, err := svc.catalog.ListDoctorsByBodyPart(ctx, bodyPartID, city)
	if err != nil {
		return nil, err
	}
	if len(doctors) == 0 {
		return nil, ErrNotFound
	}
	return doctors, nil
}

// RecordSelection stores a (user, symptom, body part) selection. An
// unknown symptom id yields ErrNotFound. The write is atomic
// insert-if-absent; a repeated call for the same pair reports
// created=false and leaves exactly one row.
func (svc *CheckerService) RecordSelection(ctx context.Context, userID, symptomID, bodyPartID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || symptomID == uuid.Nil || bodyPartID == uuid.Nil {
		return false, ErrMissingFields
	}

	symptom, err := svc.catalog.GetSymptomByID(ctx, symptomID)
	if err != nil {
		return false, err
	}
	if symptom == nil {
		return false, ErrNotFound
	}

	created, err := svc.selections.Save(ctx, userID, symptomID, bodyPartID)
	if err != nil {
		logger.Log.Errorw("failed to record selection", "err", err)
		return false, err
	}
	return created, nil
}
