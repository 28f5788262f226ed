package services

import (
	"strings"
	"testing"

	"csvtogithub/models"
)

func TestParseLabels(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", []string{}},
		{"whitespace only", "   ", []string{}},
		{"single label", "backend", []string{"backend"}},
		{"multiple labels", "backend;api;cli", []string{"backend", "api", "cli"}},
		{"tokens with whitespace", " backend ; api ", []string{"backend", "api"}},
		{"empty tokens dropped", "backend;;api;", []string{"backend", "api"}},
		{"whitespace-only token dropped", "backend; ;api", []string{"backend", "api"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLabels(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseLabels(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseLabels(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseLabelsIdempotent(t *testing.T) {
	inputs := []string{
		"backend; api ;cli",
		"backend",
		"",
		" a ;; b ",
	}

	for _, input := range inputs {
		first := ParseLabels(input)
		second := ParseLabels(strings.Join(first, ";"))

		if len(first) != len(second) {
			t.Fatalf("re-split of %q changed length: %v vs %v", input, first, second)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("re-split of %q changed element %d: %q vs %q", input, i, first[i], second[i])
			}
		}
	}
}

func TestApplyPriorityLabel(t *testing.T) {
	tests := []struct {
		name     string
		labels   []string
		priority string
		want     []string
	}{
		{"critical lowercase", []string{}, "critical", []string{"critical"}},
		{"critical capitalized", []string{}, "Critical", []string{"critical"}},
		{"critical uppercase", []string{}, "CRITICAL", []string{"critical"}},
		{"already present", []string{"critical"}, "Critical", []string{"critical"}},
		{"appended after existing", []string{"backend"}, "critical", []string{"backend", "critical"}},
		{"non-critical priority", []string{"backend"}, "High", []string{"backend"}},
		{"empty priority", []string{"backend"}, "", []string{"backend"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyPriorityLabel(tt.labels, tt.priority)
			if len(got) != len(tt.want) {
				t.Fatalf("ApplyPriorityLabel(%v, %q) = %v, want %v", tt.labels, tt.priority, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ApplyPriorityLabel(%v, %q)[%d] = %q, want %q", tt.labels, tt.priority, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestApplyPriorityLabelExactlyOnce(t *testing.T) {
	priorities := []string{"critical", "Critical", "CRITICAL"}
	labelInputs := []string{"", "critical", "backend;critical", "backend"}

	for _, priority := range priorities {
		for _, input := range labelInputs {
			labels := ApplyPriorityLabel(ParseLabels(input), priority)

			count := 0
			for _, label := range labels {
				if label == "critical" {
					count++
				}
			}
			if count != 1 {
				t.Errorf("priority %q with labels %q: %d occurrences of critical, want 1 (%v)",
					priority, input, count, labels)
			}
		}
	}
}

func TestIssueTitle(t *testing.T) {
	item := models.BacklogItem{IssueID: "RECON-001", Title: "Set up CLI skeleton"}

	got := IssueTitle(item)
	want := "RECON-001: Set up CLI skeleton"
	if got != want {
		t.Errorf("IssueTitle() = %q, want %q", got, want)
	}
}

func TestBuildIssueBody(t *testing.T) {
	item := models.BacklogItem{
		IssueID:            "RECON-002",
		Type:               "Feature",
		Priority:           "High",
		Title:              "Implement DNS recon",
		Story:              "As a user I want DNS enumeration.",
		AcceptanceCriteria: "Subdomains are listed.",
		Epic:               "Recon",
		EstimatedPoints:    "5",
		Dependencies:       "RECON-001",
	}

	body := BuildIssueBody(item)

	for _, line := range []string{
		"**Type:** Feature\n",
		"**Priority:** High\n",
		"**Epic:** Recon\n",
		"**Story Points:** 5\n",
		"**Dependencies:** RECON-001\n",
	} {
		if !strings.Contains(body, line) {
			t.Errorf("body missing %q:\n%s", line, body)
		}
	}

	if got := strings.Count(body, "## Story"); got != 1 {
		t.Errorf("## Story appears %d times, want 1", got)
	}
	if got := strings.Count(body, "## Acceptance Criteria"); got != 1 {
		t.Errorf("## Acceptance Criteria appears %d times, want 1", got)
	}
	if strings.Index(body, "## Story") > strings.Index(body, "## Acceptance Criteria") {
		t.Error("## Story should come before ## Acceptance Criteria")
	}

	if !strings.Contains(body, "\n## Story\n\nAs a user I want DNS enumeration.\n") {
		t.Errorf("story section malformed:\n%s", body)
	}
	if !strings.Contains(body, "\n## Acceptance Criteria\n\nSubdomains are listed.\n") {
		t.Errorf("acceptance criteria section malformed:\n%s", body)
	}
}

func TestBuildIssueBodyDependenciesLine(t *testing.T) {
	tests := []struct {
		name         string
		dependencies string
		wantLine     bool
	}{
		{"non-empty dependencies", "RECON-001, RECON-002", true},
		{"empty dependencies", "", false},
		{"whitespace-only dependencies", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := models.BacklogItem{Type: "Task", Dependencies: tt.dependencies}
			body := BuildIssueBody(item)

			if got := strings.Contains(body, "**Dependencies:**"); got != tt.wantLine {
				t.Errorf("Dependencies line present = %v, want %v:\n%s", got, tt.wantLine, body)
			}
		})
	}
}

func TestCriticalPriorityWithEmptyLabels(t *testing.T) {
	item := models.BacklogItem{
		IssueID:  "RECON-099",
		Priority: "Critical",
		Labels:   "",
	}

	labels := ApplyPriorityLabel(ParseLabels(item.Labels), item.Priority)
	if len(labels) != 1 || labels[0] != "critical" {
		t.Errorf("labels = %v, want [critical]", labels)
	}

	body := BuildIssueBody(item)
	if strings.Contains(body, "Dependencies") {
		t.Errorf("body should not contain a Dependencies line:\n%s", body)
	}
}
