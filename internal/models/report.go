package models

import "time"

// ReportEntry is a single symptom line inside a report group.
type ReportEntry struct {
	SymptomName string `json:"name"`
	Date        string `json:"date"` // Formatted long date, e.g. "January 2 2006, 3:04 pm"
}

// ReportGroup is the set of symptoms recorded for one body part.
type ReportGroup struct {
	BodyPart string        `json:"body_part"`
	Symptoms []ReportEntry `json:"symptoms"`
}

// SummaryStats are the catalogue-wide counts for the admin report.
type SummaryStats struct {
	TotalBodyParts      int `db:"total_body_parts" json:"total_body_parts"`
	TotalSymptoms       int `db:"total_symptoms" json:"total_symptoms"`
	TotalSymptomDetails int `db:"total_symptom_details" json:"total_symptom_details"`
	TotalMedicines      int `db:"total_medicines" json:"total_medicines"`
	TotalDoctors        int `db:"total_doctors" json:"total_doctors"`
	TotalUsers          int `db:"total_users" json:"total_users"`
	SuspendedUsers      int `db:"suspended_users" json:"suspended_users"`
	TotalAdmins         int `db:"total_admins" json:"total_admins"`
	TotalFeedbacks      int `db:"total_feedbacks" json:"total_feedbacks"`
}

// UserActivity is one row of the admin report's registration/login list.
type UserActivity struct {
	Username  string     `db:"username" json:"username"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	LastLogin *time.Time `db:"last_login" json:"last_login,omitempty"`
}
