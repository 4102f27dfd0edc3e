// Package report renders a user's global analytics as a PDF document.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/sprintops/sprintops/internal/domain"
)

func Render(userName string, a domain.GlobalAnalytics) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Sprint Analytics: %s", userName))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().UTC().Format("2006-01-02 15:04 UTC")))
	pdf.Ln(12)

	section(pdf, "Task Status")
	for _, row := range a.TaskStatusBreakdown {
		line(pdf, row.Key, row.Value)
	}

	section(pdf, "Pull Request Status")
	for _, row := range a.PRStatusBreakdown {
		line(pdf, row.Key, row.Value)
	}

	section(pdf, "Average Story Points per Sprint")
	for _, row := range a.StoryPointsOverTime {
		line(pdf, row.SprintName, row.AvgPoints)
	}

	section(pdf, "Feedback by Type")
	for _, row := range a.FeedbackTypeBreakdown {
		line(pdf, row.Key, row.Value)
	}

	section(pdf, "Feedback by Source")
	for _, row := range a.FeedbackBySource {
		line(pdf, row.Key, row.Count)
	}

	section(pdf, "Skill Frequency")
	for _, row := range a.SkillsRadar {
		line(pdf, row.Skill, row.Value)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
}

func line(pdf *fpdf.Fpdf, label string, value int64) {
	pdf.Cell(100, 6, "  "+label)
	pdf.Cell(0, 6, fmt.Sprintf("%d", value))
	pdf.Ln(6)
}
