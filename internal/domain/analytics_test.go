package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

// The two grouping row shapes are deliberately different: status and
// type breakdowns carry "value", the per-source grouping carries
// "count". Chart consumers bind to these keys.
func TestGroupingRowKeys(t *testing.T) {
	status, err := json.Marshal(StatusCount{Key: "Done", Value: 3})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(status); got != `{"_id":"Done","value":3}` {
		t.Errorf("StatusCount = %s", got)
	}

	source, err := json.Marshal(SourceCount{Key: "Peer", Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	if got := string(source); got != `{"_id":"Peer","count":2}` {
		t.Errorf("SourceCount = %s", got)
	}
}

func TestSprintAnalyticsHasNoSkillFrequency(t *testing.T) {
	global, err := json.Marshal(GlobalAnalytics{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(global), `"skillFrequency"`) {
		t.Errorf("global payload missing skillFrequency: %s", global)
	}

	sprint, err := json.Marshal(SprintAnalytics{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(sprint), `"skillFrequency"`) {
		t.Errorf("sprint payload must not carry skillFrequency: %s", sprint)
	}
	if !strings.Contains(string(sprint), `"skillsRadar"`) {
		t.Errorf("sprint payload missing skillsRadar: %s", sprint)
	}
}
