package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/vibeguard/vibeguard/internal/models"
)

// Layout constants (mm). pageBreakThreshold is the remaining vertical
// space below which a new page starts before the next line; chosen so no
// line is ever clipped.
const (
	pageMargin         = 18.0
	pageBreakThreshold = 25.0
	lineHeight         = 6.0
)

// Renderer produces the deterministic PDF layouts for the user symptom
// report and the admin summary report.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer {
	return &Renderer{}
}

// timeFormat renders the generation timestamp in the header.
const timeFormat = "January 2 2006, 3:04:05 pm"

// RenderUserReport lays out a user's grouped symptom report: title,
// generation timestamp, identity block, then one section per body-part
// group with one bulleted line per entry. A report with zero groups
// still renders the title and header.
func (r *Renderer) RenderUserReport(report []models.ReportGroup, info *models.BasicInfoDB, generatedAt time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, pageMargin)
	doc.AddPage()

	// Title
	doc.SetFont("Helvetica", "B", 22)
	doc.SetTextColor(0, 51, 102)
	doc.CellFormat(0, 12, "Symptom Report", "", 1, "C", false, 0, "")
	doc.Ln(2)

	// Generation timestamp
	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(128, 128, 128)
	doc.CellFormat(0, lineHeight, "Generated on: "+generatedAt.Format(timeFormat), "", 1, "R", false, 0, "")
	doc.Ln(4)

	// Identity block
	doc.SetFont("Helvetica", "", 12)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, lineHeight, fmt.Sprintf("Name: %s %s", info.FirstName, info.LastName), "", 1, "L", false, 0, "")
	doc.CellFormat(0, lineHeight, fmt.Sprintf("Age: %d", info.Age), "", 1, "L", false, 0, "")
	doc.CellFormat(0, lineHeight, fmt.Sprintf("Gender: %s", info.Gender), "", 1, "L", false, 0, "")
	doc.Ln(4)

	// Section heading
	doc.SetFont("Helvetica", "BU", 14)
	doc.SetTextColor(0, 51, 102)
	doc.CellFormat(0, 8, "Symptom Breakdown:", "", 1, "L", false, 0, "")
	doc.Ln(2)

	for _, group := range report {
		r.breakPageIfNeeded(doc)

		doc.SetFont("Helvetica", "BU", 12)
		doc.SetTextColor(0, 51, 102)
		doc.CellFormat(0, 7, group.BodyPart, "", 1, "L", false, 0, "")

		for _, entry := range group.Symptoms {
			r.breakPageIfNeeded(doc)

			doc.SetFont("Helvetica", "", 11)
			doc.SetTextColor(0, 0, 0)
			line := fmt.Sprintf("   - %s", entry.SymptomName)
			doc.CellFormat(doc.GetStringWidth(line)+2, lineHeight, line, "", 0, "L", false, 0, "")

			doc.SetFont("Helvetica", "", 10)
			doc.SetTextColor(128, 128, 128)
			doc.CellFormat(0, lineHeight, fmt.Sprintf("[%s]", entry.Date), "", 1, "L", false, 0, "")
		}
		doc.Ln(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderSummaryReport lays out the admin-wide summary: general counts,
// then every user's registration and last-login dates.
func (r *Renderer) RenderSummaryReport(stats *models.SummaryStats, users []models.UserActivity, generatedAt time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, pageMargin)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 28)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 14, "Summary Report", "", 1, "C", false, 0, "")
	doc.Ln(2)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(128, 128, 128)
	doc.CellFormat(0, lineHeight, "Generated on: "+generatedAt.Format(timeFormat), "", 1, "R", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "BU", 18)
	doc.SetTextColor(0, 0, 255)
	doc.CellFormat(0, 10, "General Statistics", "", 1, "L", false, 0, "")
	doc.Ln(2)

	counts := []struct {
		label string
		value int
	}{
		{"Total Body Parts", stats.TotalBodyParts},
		{"Total Symptoms", stats.TotalSymptoms},
		{"Total Symptom Details", stats.TotalSymptomDetails},
		{"Total Medicines", stats.TotalMedicines},
		{"Total Doctors", stats.TotalDoctors},
		{"Total Users", stats.TotalUsers},
		{"Suspended Users", stats.SuspendedUsers},
		{"Admins", stats.TotalAdmins},
		{"Total Feedbacks", stats.TotalFeedbacks},
	}

	doc.SetTextColor(0, 0, 0)
	for _, c := range counts {
		doc.SetFont("Helvetica", "", 13)
		label := fmt.Sprintf("- %s: ", c.label)
		doc.CellFormat(doc.GetStringWidth(label)+2, 7, label, "", 0, "L", false, 0, "")
		doc.SetFont("Helvetica", "B", 13)
		doc.CellFormat(0, 7, fmt.Sprintf("%d", c.value), "", 1, "L", false, 0, "")
	}
	doc.Ln(6)

	doc.SetFont("Helvetica", "BU", 18)
	doc.SetTextColor(0, 0, 255)
	doc.CellFormat(0, 10, "User Registration and Last Login Info", "", 1, "L", false, 0, "")
	doc.Ln(2)

	doc.SetTextColor(0, 0, 0)
	for _, u := range users {
		r.breakPageIfNeeded(doc)

		lastLogin := "Never"
		if u.LastLogin != nil {
			lastLogin = u.LastLogin.Format("1/2/2006")
		}

		doc.SetFont("Helvetica", "B", 13)
		doc.CellFormat(0, 7, u.Username, "", 1, "L", false, 0, "")
		doc.SetFont("Helvetica", "", 11)
		doc.CellFormat(0, lineHeight, "        Registered On: "+u.CreatedAt.Format("1/2/2006"), "", 1, "L", false, 0, "")
		doc.CellFormat(0, lineHeight, "        Last Login: "+lastLogin, "", 1, "L", false, 0, "")
		doc.Ln(2)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// breakPageIfNeeded starts a new page when the cursor is within the
// break threshold of the bottom edge.
func (r *Renderer) breakPageIfNeeded(doc *fpdf.Fpdf) {
	_, pageHeight := doc.GetPageSize()
	if doc.GetY() > pageHeight-pageBreakThreshold {
		doc.AddPage()
	}
}
