package categorize

import (
	"testing"

	"github.com/a11yaudit/a11yaudit/pkg/engine"
	"github.com/a11yaudit/a11yaudit/pkg/finding"
)

func TestCountFixedSeverityDomain(t *testing.T) {
	t.Parallel()

	b := Count(nil, engine.Axe)
	if got, ok := b.BySeverity[finding.Critical]; !ok || got != 0 {
		t.Fatalf("expected zero-initialized critical bucket, got %d (present=%v)", got, ok)
	}
	if got, ok := b.BySeverity[finding.Serious]; !ok || got != 0 {
		t.Fatalf("expected zero-initialized serious bucket, got %d (present=%v)", got, ok)
	}
	if _, ok := b.BySeverity[finding.Warning]; ok {
		t.Fatal("warning bucket should not be pre-seeded for axe")
	}
	if len(b.ByTag) != 0 {
		t.Fatalf("tag map should start empty, got %v", b.ByTag)
	}
}

func TestCountPa11ySeedsExtraBuckets(t *testing.T) {
	t.Parallel()

	b := Count(nil, engine.Pa11y)
	for _, impact := range []finding.Impact{finding.Critical, finding.Serious, finding.Warning, finding.Notice} {
		if got, ok := b.BySeverity[impact]; !ok || got != 0 {
			t.Fatalf("expected zero-initialized %s bucket, got %d (present=%v)", impact, got, ok)
		}
	}
}

func TestCountSeverityAndTags(t *testing.T) {
	t.Parallel()

	findings := []finding.Finding{
		{Type: finding.Violation, Impact: finding.Critical, Tags: []string{"wcag2a", "wcag111"}},
		{Type: finding.Violation, Impact: finding.Critical, Tags: []string{"wcag2a"}},
		{Type: finding.Violation, Impact: finding.Serious, Tags: []string{"wcag2aa", "wcag143"}},
		{Type: finding.Violation, Impact: finding.Warning, Tags: nil},
	}

	b := Count(findings, engine.Axe)

	if b.BySeverity[finding.Critical] != 2 {
		t.Fatalf("critical = %d, want 2", b.BySeverity[finding.Critical])
	}
	if b.BySeverity[finding.Serious] != 1 {
		t.Fatalf("serious = %d, want 1", b.BySeverity[finding.Serious])
	}
	if b.BySeverity[finding.Warning] != 1 {
		t.Fatalf("warning = %d, want 1", b.BySeverity[finding.Warning])
	}

	wantTags := map[string]int{"wcag2a": 2, "wcag111": 1, "wcag2aa": 1, "wcag143": 1}
	if len(b.ByTag) != len(wantTags) {
		t.Fatalf("tag map = %v, want %v", b.ByTag, wantTags)
	}
	for tag, want := range wantTags {
		if b.ByTag[tag] != want {
			t.Fatalf("tag %s = %d, want %d", tag, b.ByTag[tag], want)
		}
	}
}

func TestCountMultiTagFindingIncrementsEachBucket(t *testing.T) {
	t.Parallel()

	findings := []finding.Finding{
		{Type: finding.Violation, Impact: finding.Serious, Tags: []string{"wcag2a", "wcag2aa", "wcag412"}},
	}
	b := Count(findings, engine.Axe)
	for _, tag := range []string{"wcag2a", "wcag2aa", "wcag412"} {
		if b.ByTag[tag] != 1 {
			t.Fatalf("tag %s = %d, want 1", tag, b.ByTag[tag])
		}
	}
}

func TestCountSeveritySumsToViolations(t *testing.T) {
	t.Parallel()

	findings := []finding.Finding{
		{Type: finding.Violation, Impact: finding.Critical},
		{Type: finding.Violation, Impact: finding.Serious},
		{Type: finding.NeedsReview, Impact: finding.Critical, Tags: []string{"wcag2a"}},
		{Type: finding.NeedsReview, Impact: finding.Notice},
		{Type: finding.Pass, Impact: finding.None},
	}

	b := Count(findings, engine.Axe)

	sum := 0
	for _, n := range b.BySeverity {
		sum += n
	}
	violations := 0
	for _, f := range findings {
		if f.Type == finding.Violation {
			violations++
		}
	}
	if sum != violations {
		t.Fatalf("severity counts sum to %d, want %d (violations only)", sum, violations)
	}
	if b.BySeverity[finding.Critical] != 1 {
		t.Fatalf("critical = %d, want 1: a needs-review record must not count", b.BySeverity[finding.Critical])
	}
	if b.ByTag["wcag2a"] != 1 {
		t.Fatalf("tag wcag2a = %d, want 1: tag counts cover all record types", b.ByTag["wcag2a"])
	}
}
