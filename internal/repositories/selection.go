package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/models"
)

type SelectionWriteRepository struct {
	db *sqlx.DB
}

func NewSelectionWriteRepository(db *sqlx.DB) *SelectionWriteRepository {
	return &SelectionWriteRepository{db: db}
}

// Save records a (user, symptom, body part) selection. The insert is
// atomic: a unique index on (user_id, symptom_id) plus ON CONFLICT DO
// NOTHING guarantees at most one row per pair even under concurrent
// submissions. Returns true when a row was created, false when the pair
// already existed.
func (r *SelectionWriteRepository) Save(ctx context.Context, userID, symptomID, bodyPartID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO user_symptoms (selection_id, user_id, symptom_id, body_part_id, selected_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id, symptom_id) DO NOTHING
	`
	args := []any{uuid.New(), userID, symptomID, bodyPartID}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// DeleteByUser removes all selections for a user (account deletion).
func (r *SelectionWriteRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM user_symptoms WHERE user_id = $1`
	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID)
	return err
}

type SelectionReadRepository struct {
	db *sqlx.DB
}

func NewSelectionReadRepository(db *sqlx.DB) *SelectionReadRepository {
	return &SelectionReadRepository{db: db}
}

// ListByUser returns the user's selections with symptom and body-part
// names resolved. LEFT JOINs keep rows whose references dangle; their
// names come back nil. Order is selection time ascending and is the
// order report groups preserve.
func (r *SelectionReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SelectionRecord, error) {
	query := `
		SELECT s.name AS symptom_name, b.name AS body_part_name, us.selected_at
		FROM user_symptoms us
		LEFT JOIN symptoms s ON s.symptom_id = us.symptom_id
		LEFT JOIN body_parts b ON b.body_part_id = us.body_part_id
		WHERE us.user_id = $1
		ORDER BY us.selected_at
	`

	var records []models.SelectionRecord
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &records, query, userID)

	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(records),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountByUserAndSymptom returns the number of stored selections for a
// (user, symptom) pair. With the unique index this is 0 or 1.
func (r *SelectionReadRepository) CountByUserAndSymptom(ctx context.Context, userID, symptomID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM user_symptoms WHERE user_id = $1 AND symptom_id = $2`

	var count int
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &count, query, userID, symptomID); err != nil {
		return 0, err
	}
	return count, nil
}
