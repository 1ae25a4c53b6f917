package models

import (
	"time"

	"github.com/google/uuid"
)

// SelectionDB records that a user selected a symptom in the checker.
// The body part is denormalized so reports can group without an extra join
// through symptoms. At most one row exists per (user, symptom) pair,
// enforced by a unique index.
type SelectionDB struct {
	SelectionID uuid.UUID `json:"selection_id" db:"selection_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	SymptomID   uuid.UUID `json:"symptom_id" db:"symptom_id"`
	BodyPartID  uuid.UUID `json:"body_part_id" db:"body_part_id"`
	SelectedAt  time.Time `json:"selected_at" db:"selected_at"`
}

// SelectionRecord is a selection with its symptom and body-part names
// resolved. Names are pointers: a dangling reference resolves to nil.
type SelectionRecord struct {
	SymptomName  *string   `db:"symptom_name"`
	BodyPartName *string   `db:"body_part_name"`
	SelectedAt   time.Time `db:"selected_at"`
}
