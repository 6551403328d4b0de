package normalize

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a11yaudit/a11yaudit/pkg/engine"
	"github.com/a11yaudit/a11yaudit/pkg/finding"
)

func axeFixture() *engine.Result {
	return &engine.Result{
		Engine: engine.Axe,
		Axe: &engine.AxeResult{
			Violations: []engine.RuleGroup{
				{
					RuleID:      "image-alt",
					Impact:      "critical",
					Description: "Images must have alternate text",
					Help:        "Images must have alternate text",
					HelpURL:     "https://dequeuniversity.com/rules/axe/4.8/image-alt",
					Tags:        []string{"cat.text-alternatives", "wcag2a", "wcag111"},
					Nodes: []engine.Node{
						{HTML: `<img src="hero.png">`, FailureSummary: "Fix any of the following:\n  Element does not have an alt attribute"},
						{HTML: `<img src="logo.png">`, FailureSummary: "Fix any of the following:\n  Element does not have an alt attribute"},
					},
				},
				{
					RuleID:      "color-contrast",
					Impact:      "serious",
					Description: "Elements must meet minimum color contrast ratio thresholds",
					Tags:        []string{"cat.color", "wcag2aa", "wcag143"},
					Nodes: []engine.Node{
						{HTML: `<p class="muted">fine print</p>`},
					},
				},
			},
		},
	}
}

func TestAxeFanOutLaw(t *testing.T) {
	t.Parallel()

	n, err := ForEngine(engine.Axe)
	require.NoError(t, err)

	got, err := n.Normalize(axeFixture(), Options{})
	require.NoError(t, err)

	// 2 violation groups with 2+1 affected elements -> 3 findings.
	require.Len(t, got, 3)
	assert.Equal(t, finding.Critical, got[0].Impact)
	assert.Equal(t, finding.Critical, got[1].Impact)
	assert.Equal(t, finding.Serious, got[2].Impact)
	for _, f := range got {
		assert.Equal(t, finding.Violation, f.Type)
		assert.Equal(t, "axe", f.Engine)
	}

	// Compliance tags filtered by prefix, category tags dropped.
	assert.Equal(t, []string{"wcag2a", "wcag111"}, got[0].Tags)
	assert.Equal(t, []string{"wcag2aa", "wcag143"}, got[2].Tags)

	// Element and failure detail survive fan-out.
	assert.Equal(t, `<img src="logo.png">`, got[1].Element)
	assert.Contains(t, got[0].FailureSummary, "alt attribute")
}

func TestAxeDeterminism(t *testing.T) {
	t.Parallel()

	n, err := ForEngine(engine.Axe)
	require.NoError(t, err)

	first, err := n.Normalize(axeFixture(), Options{IncludeNeedsReview: true})
	require.NoError(t, err)
	second, err := n.Normalize(axeFixture(), Options{IncludeNeedsReview: true})
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("normalizing the same raw input twice produced different sequences")
	}
}

func TestAxeNullImpact(t *testing.T) {
	t.Parallel()

	raw := &engine.Result{
		Engine: engine.Axe,
		Axe: &engine.AxeResult{
			Violations: []engine.RuleGroup{
				{RuleID: "frame-tested", Nodes: []engine.Node{{HTML: "<iframe></iframe>"}}},
			},
		},
	}

	n, err := ForEngine(engine.Axe)
	require.NoError(t, err)

	got, err := n.Normalize(raw, Options{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, finding.Unknown, got[0].Impact)
}

func TestAxeIncompleteAndPasses(t *testing.T) {
	t.Parallel()

	raw := &engine.Result{
		Engine: engine.Axe,
		Axe: &engine.AxeResult{
			Incomplete: []engine.RuleGroup{
				{RuleID: "color-contrast", Impact: "serious", Nodes: []engine.Node{{HTML: "<span>maybe</span>"}}},
			},
			Passes: []engine.RuleGroup{
				{RuleID: "document-title", Nodes: []engine.Node{{HTML: "<title>ok</title>"}}},
				{RuleID: "html-has-lang"}, // zero nodes: not expanded
			},
		},
	}

	n, err := ForEngine(engine.Axe)
	require.NoError(t, err)

	// Default options drop both incomplete and passes.
	got, err := n.Normalize(raw, Options{})
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = n.Normalize(raw, Options{IncludePasses: true, IncludeNeedsReview: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, finding.NeedsReview, got[0].Type)
	assert.Equal(t, finding.Serious, got[0].Impact)
	assert.Equal(t, finding.Pass, got[1].Type)
	assert.Equal(t, finding.None, got[1].Impact)
}

func TestAxeMalformed(t *testing.T) {
	t.Parallel()

	n, err := ForEngine(engine.Axe)
	require.NoError(t, err)

	for _, raw := range []*engine.Result{
		nil,
		{Engine: engine.Axe}, // missing rule-group collections
		{Engine: engine.Pa11y, Issues: []engine.Issue{}},
	} {
		_, err := n.Normalize(raw, Options{})
		assert.ErrorIs(t, err, engine.ErrMalformedResult)
	}
}

func TestPa11yFlatMapping(t *testing.T) {
	t.Parallel()

	raw := &engine.Result{
		Engine: engine.Pa11y,
		Issues: []engine.Issue{
			{Type: "error", Code: "WCAG2AA.Principle1.Guideline1_1.1_1_1.H37", Message: "Img element missing an alt attribute.", Context: `<img src="hero.png">`, Runner: "htmlcs"},
			{Type: "warning", Code: "WCAG2AA.Principle1.Guideline1_4.1_4_3.G18", Message: "Check contrast ratio.", Runner: "htmlcs"},
			{Type: "notice", Code: "WCAG2AA.Principle2.Guideline2_4.2_4_4.H77", Message: "Check link text.", Runner: "axe"},
		},
	}

	n, err := ForEngine(engine.Pa11y)
	require.NoError(t, err)

	got, err := n.Normalize(raw, Options{IncludeNeedsReview: true})
	require.NoError(t, err)

	// One finding per issue, no fan-out, one per severity bucket.
	require.Len(t, got, 3)
	assert.Equal(t, finding.Violation, got[0].Type)
	assert.Equal(t, finding.Critical, got[0].Impact)
	assert.Equal(t, finding.Violation, got[1].Type)
	assert.Equal(t, finding.Serious, got[1].Impact)
	assert.Equal(t, finding.NeedsReview, got[2].Type)
	assert.Equal(t, finding.Notice, got[2].Impact)

	assert.Equal(t, "htmlcs", got[0].Runner)
	assert.Equal(t, "pa11y", got[0].Engine)
	assert.Equal(t, `<img src="hero.png">`, got[0].Element)
}

func TestPa11yNoticeFilter(t *testing.T) {
	t.Parallel()

	raw := &engine.Result{
		Engine: engine.Pa11y,
		Issues: []engine.Issue{
			{Type: "notice", Code: "x", Message: "m"},
			{Type: "error", Code: "y", Message: "n"},
		},
	}

	n, err := ForEngine(engine.Pa11y)
	require.NoError(t, err)

	got, err := n.Normalize(raw, Options{IncludeNeedsReview: false})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "y", got[0].RuleID)
}

func TestPa11yEmptyIssueListIsNotMalformed(t *testing.T) {
	t.Parallel()

	n, err := ForEngine(engine.Pa11y)
	require.NoError(t, err)

	got, err := n.Normalize(&engine.Result{Engine: engine.Pa11y}, Options{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestForEngineUnknown(t *testing.T) {
	t.Parallel()

	_, err := ForEngine(engine.Tag("lighthouse"))
	assert.Error(t, err)
}
