package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/models"
)

// Display names for dangling references. Two dangling body parts merge
// into one "Unknown" group on purpose.
const (
	unknownBodyPart = "Unknown"
	unnamedSymptom  = "Unnamed Symptom"
)

// SelectionReader fetches a user's recorded selections with names resolved.
type SelectionReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SelectionRecord, error)
}

// BasicInfoReader fetches the identity block for the PDF header.
type BasicInfoReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.BasicInfoDB, error)
}

// StatsReader serves the admin summary counts.
type StatsReader interface {
	GetSummaryStats(ctx context.Context) (*models.SummaryStats, error)
}

// ActivityReader lists per-user registration/login info.
type ActivityReader interface {
	ListActivity(ctx context.Context) ([]models.UserActivity, error)
}

// ReportRenderer lays report data out as a PDF byte stream.
type ReportRenderer interface {
	RenderUserReport(report []models.ReportGroup, info *models.BasicInfoDB, generatedAt time.Time) ([]byte, error)
	RenderSummaryReport(stats *models.SummaryStats, users []models.UserActivity, generatedAt time.Time) ([]byte, error)
}

// ReportService aggregates selections into grouped reports and drives
// PDF export for both the user report and the admin summary.
type ReportService struct {
	selections SelectionReader
	info       BasicInfoReader
	stats      StatsReader
	activity   ActivityReader
	renderer   ReportRenderer
}

// NewReportService creates a new ReportService.
func NewReportService(selections SelectionReader, info BasicInfoReader, stats StatsReader, activity ActivityReader, renderer ReportRenderer) *ReportService {
	return &ReportService{
		selections: selections,
		info:       info,
		stats:      stats,
		activity:   activity,
		renderer:   renderer,
	}
}

// BuildReport groups the user's selections by body-part display name.
// Groups appear in first-encounter order and entries keep the underlying
// fetch order; they are not re-sorted by time. A dangling body-part
// reference falls back to "Unknown", and colliding fallbacks merge.
func (svc *ReportService) BuildReport(ctx context.Context, userID uuid.UUID) ([]models.ReportGroup, error) {
	records, err := svc.selections.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to fetch selections", "err", err)
		return nil, err
	}

	index := make(map[string]int)
	groups := make([]models.ReportGroup, 0)

	for _, rec := range records {
		bodyPart := unknownBodyPart
		if rec.BodyPartName != nil {
			bodyPart = *rec.BodyPartName
		}
		symptom := unnamedSymptom
		if rec.SymptomName != nil {
			symptom = *rec.SymptomName
		}

		entry := models.ReportEntry{
			SymptomName: symptom,
			Date:        FormatReportTime(rec.SelectedAt),
		}

		i, ok := index[bodyPart]
		if !ok {
			index[bodyPart] = len(groups)
			groups = append(groups, models.ReportGroup{BodyPart: bodyPart, Symptoms: []models.ReportEntry{entry}})
			continue
		}
		groups[i].Symptoms = append(groups[i].Symptoms, entry)
	}

	return groups, nil
}

// UserReportPDF renders the user's grouped report as a PDF. The basic
// info block is required; without it there is no identity header.
func (svc *ReportService) UserReportPDF(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	info, err := svc.info.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, ErrNotFound
	}

	report, err := svc.BuildReport(ctx, userID)
	if err != nil {
		return nil, err
	}

	return svc.renderer.RenderUserReport(report, info, time.Now())
}

// SummaryReportPDF renders the admin-wide summary report.
func (svc *ReportService) SummaryReportPDF(ctx context.Context) ([]byte, error) {
	stats, err := svc.stats.GetSummaryStats(ctx)
	if err != nil {
		return nil, err
	}

	users, err := svc.activity.ListActivity(ctx)
	if err != nil {
		return nil, err
	}

	return svc.renderer.RenderSummaryReport(stats, users, time.Now())
}

// GetSummaryStats exposes the admin dashboard counts.
func (svc *ReportService) GetSummaryStats(ctx context.Context) (*models.SummaryStats, error) {
	return svc.stats.GetSummaryStats(ctx)
}

// FormatReportTime renders a timestamp in the report's long form,
// e.g. "January 2nd 2006, 3:04 pm".
func FormatReportTime(t time.Time) string {
	return fmt.Sprintf("%s %s %d, %s",
		t.Format("January"),
		ordinal(t.Day()),
		t.Year(),
		t.Format("3:04 pm"),
	)
}

func ordinal(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
		// 11th, 12th, 13th
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
