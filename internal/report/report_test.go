package report

import (
	"bytes"
	"testing"

	"github.com/sprintops/sprintops/internal/domain"
)

func TestRenderProducesPDF(t *testing.T) {
	analytics := domain.GlobalAnalytics{
		TaskStatusBreakdown: []domain.StatusCount{{Key: "Done", Value: 8}},
		PRStatusBreakdown:   []domain.StatusCount{{Key: "Merged", Value: 6}},
		StoryPointsOverTime: []domain.SprintPoints{{SprintID: "s1", SprintName: "Sprint 1", AvgPoints: 7}},
		FeedbackBySource:    []domain.SourceCount{{Key: "Peer", Count: 3}},
		SkillsRadar:         []domain.SkillCount{{Skill: "Go", Value: 4}},
	}

	pdf, err := Render("John Doe", analytics)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestRenderEmptyAnalytics(t *testing.T) {
	pdf, err := Render("Nobody", domain.GlobalAnalytics{})
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Error("output is empty")
	}
}
