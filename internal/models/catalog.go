package models

import (
	"time"

	"github.com/google/uuid"
)

// BodyPartDB represents a body part in the admin catalogue
type BodyPartDB struct {
	BodyPartID uuid.UUID `json:"body_part_id" db:"body_part_id"` // Primary key
	Name       string    `json:"name" db:"name"`                 // Unique display name
	Image      string    `json:"image" db:"image"`               // Image reference
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SymptomDB represents a symptom belonging to a body part
type SymptomDB struct {
	SymptomID  uuid.UUID `json:"symptom_id" db:"symptom_id"`     // Primary key
	Name       string    `json:"name" db:"name"`                 // Display name
	BodyPartID uuid.UUID `json:"body_part_id" db:"body_part_id"` // Owning body part
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SymptomDetailDB holds the long-form description of a symptom
type SymptomDetailDB struct {
	SymptomDetailID uuid.UUID `json:"symptom_detail_id" db:"symptom_detail_id"`
	SymptomID       uuid.UUID `json:"symptom_id" db:"symptom_id"`
	Overview        string    `json:"overview" db:"overview"`
	PossibleCauses  string    `json:"possible_causes" db:"possible_causes"`
	Precautions     string    `json:"precautions" db:"precautions"`
	Remedies        string    `json:"remedies" db:"remedies"`
	Fact            string    `json:"fact" db:"fact"`
	LifestyleTips   string    `json:"lifestyle_tips" db:"lifestyle_tips"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// MedicineDB represents a medicine suggested for a symptom
type MedicineDB struct {
	MedicineID  uuid.UUID `json:"medicine_id" db:"medicine_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Dose        string    `json:"dose" db:"dose"`
	SymptomID   uuid.UUID `json:"symptom_id" db:"symptom_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// DoctorDB represents a doctor in the directory
type DoctorDB struct {
	DoctorID        uuid.UUID `json:"doctor_id" db:"doctor_id"`
	Name            string    `json:"name" db:"name"`
	City            string    `json:"city" db:"city"`
	Specialization  string    `json:"specialization" db:"specialization"`
	Qualification   string    `json:"qualification" db:"qualification"`
	Experience      int       `json:"experience" db:"experience"`
	SatisfactionPct int       `json:"satisfaction_pct" db:"satisfaction_pct"`
	HospitalAddress string    `json:"hospital_address" db:"hospital_address"`
	Fee             int       `json:"fee" db:"fee"`
	Contact         string    `json:"contact" db:"contact"`
	BodyPartID      uuid.UUID `json:"body_part_id" db:"body_part_id"` // Body part the doctor treats
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
