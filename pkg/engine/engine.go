// Package engine defines the raw result shapes produced by the two
// accessibility-testing engines and the check-runner contract that
// the browser layer implements.
package engine

import (
	"context"
	"time"

	"github.com/a11yaudit/a11yaudit/pkg/duration"
)

// Tag identifies which testing engine produced a raw result.
type Tag string

const (
	// Axe is the DOM-rule-based engine. It reports rule groups, each
	// with zero or more affected elements.
	Axe Tag = "axe"

	// Pa11y is the combined-runner engine. It reports a flat list of
	// typed issues, each attributed to a sub-runner.
	Pa11y Tag = "pa11y"
)

// IsValid reports whether t is a recognized engine tag.
func (t Tag) IsValid() bool {
	switch t {
	case Axe, Pa11y:
		return true
	}
	return false
}

// String returns the tag as a string.
func (t Tag) String() string {
	return string(t)
}

// Node is one affected element inside a rule group.
type Node struct {
	HTML           string `json:"html"`
	FailureSummary string `json:"failureSummary,omitempty"`
}

// RuleGroup is the rule-group shape: all elements failing (or
// passing) the same check, grouped under the rule that checked them.
type RuleGroup struct {
	RuleID      string   `json:"id"`
	Impact      string   `json:"impact,omitempty"` // may be null in raw output
	Description string   `json:"description,omitempty"`
	Help        string   `json:"help,omitempty"`
	HelpURL     string   `json:"helpUrl,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Nodes       []Node   `json:"nodes"`
}

// AxeResult is the rule-group engine's raw analysis output.
type AxeResult struct {
	Violations []RuleGroup `json:"violations"`
	Incomplete []RuleGroup `json:"incomplete"`
	Passes     []RuleGroup `json:"passes"`
}

// Issue is one entry of the flat-issue shape.
type Issue struct {
	Type     string `json:"type"` // error | warning | notice
	Code     string `json:"code"`
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
	Selector string `json:"selector,omitempty"`
	Runner   string `json:"runner,omitempty"`
}

// Result is a tagged raw engine result. Exactly one of Axe or Issues
// is populated, matching Engine.
type Result struct {
	Engine Tag
	Axe    *AxeResult
	Issues []Issue
}

// Options is the configuration bundle passed to a check run.
type Options struct {
	// Tags restricts checks to the given compliance-tag values
	// (e.g. wcag2a, wcag2aa). Empty means the engine default.
	Tags []string

	// Timeout bounds the whole check: navigation plus analysis.
	Timeout time.Duration

	// Wait is the pre-analysis stabilization delay after the page
	// reports ready, giving client-side rendering a chance to settle.
	Wait time.Duration

	// ViewportWidth and ViewportHeight set the emulated viewport.
	ViewportWidth  int
	ViewportHeight int

	// Headless controls whether the browser window is shown.
	Headless bool
}

// DefaultOptions returns the option bundle used when the caller
// leaves a field at its zero value.
func DefaultOptions() Options {
	return Options{
		Tags:           []string{"wcag2a", "wcag2aa"},
		Timeout:        duration.CheckBudget,
		Wait:           duration.StabilizeWait,
		ViewportWidth:  1280,
		ViewportHeight: 1024,
		Headless:       true,
	}
}

// Runner is the external check-runner collaborator: it navigates a
// browser to url, runs one engine's analysis, and returns the raw
// result. Failures (navigation errors, timeouts) are returned as
// errors from the taxonomy in errors.go.
type Runner interface {
	// Check audits a single URL and returns the raw engine result.
	Check(ctx context.Context, url string, opts Options) (*Result, error)

	// Engine returns the tag of the engine this runner drives.
	Engine() Tag
}
