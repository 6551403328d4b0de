package finding

import (
	"sort"
	"testing"
)

func TestImpactIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		i    Impact
		want bool
	}{
		{Critical, true},
		{Serious, true},
		{Warning, true},
		{Notice, true},
		{None, true},
		{Unknown, true},
		{"moderate", false}, // engine vocabulary, not canonical
		{"CRITICAL", false}, // case-sensitive
		{"", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.i), func(t *testing.T) {
			t.Parallel()
			if got := tt.i.IsValid(); got != tt.want {
				t.Errorf("Impact(%q).IsValid() = %v, want %v", tt.i, got, tt.want)
			}
		})
	}
}

func TestImpactScoreOrdering(t *testing.T) {
	t.Parallel()

	input := []Impact{Notice, Critical, Warning, None, Serious, Unknown}
	sort.Slice(input, func(i, j int) bool {
		return input[i].Score() > input[j].Score()
	})
	expected := []Impact{Critical, Serious, Warning, Notice, None, Unknown}
	for i, s := range input {
		if s != expected[i] {
			t.Errorf("pos %d: got %s, want %s", i, s, expected[i])
		}
	}
}

func TestImpactFromAxe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Impact
	}{
		{"critical", Critical},
		{"serious", Serious},
		{"moderate", Warning},
		{"minor", Notice},
		{"Critical", Critical},
		{" serious ", Serious},
		{"", Unknown},
		{"null", Unknown},
		{"bogus", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			if got := ImpactFromAxe(tt.raw); got != tt.want {
				t.Errorf("ImpactFromAxe(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestImpactFromIssueType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Impact
	}{
		{"error", Critical},
		{"warning", Serious},
		{"notice", Notice},
		{"ERROR", Critical},
		{"", Unknown},
		{"info", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			if got := ImpactFromIssueType(tt.raw); got != tt.want {
				t.Errorf("ImpactFromIssueType(%q) = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestComplianceTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"mixed", []string{"cat.color", "wcag2aa", "wcag143", "best-practice"}, []string{"wcag2aa", "wcag143"}},
		{"none match", []string{"cat.forms", "ACT", "best-practice"}, nil},
		{"order preserved", []string{"wcag412", "wcag2a", "wcag111"}, []string{"wcag412", "wcag2a", "wcag111"}},
		{"case insensitive prefix", []string{"WCAG2AA"}, []string{"WCAG2AA"}},
		{"empty", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ComplianceTags(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("ComplianceTags(%v) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pos %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCheckOutcomeCounts(t *testing.T) {
	t.Parallel()

	o := &CheckOutcome{
		URL: "https://example.com",
		Findings: []Finding{
			{Type: Violation, Impact: Critical},
			{Type: Violation, Impact: Serious},
			{Type: NeedsReview, Impact: Unknown},
		},
		BySeverity: map[Impact]int{Critical: 1, Serious: 1},
	}

	if o.Failed() {
		t.Error("Failed() = true for outcome without error")
	}
	if got := o.Violations(); got != 2 {
		t.Errorf("Violations() = %d, want 2", got)
	}
	if got := o.CriticalCount(); got != 1 {
		t.Errorf("CriticalCount() = %d, want 1", got)
	}

	failed := &CheckOutcome{URL: "https://down.example.com", Error: "navigation timeout"}
	if !failed.Failed() {
		t.Error("Failed() = false for outcome with error")
	}
}
