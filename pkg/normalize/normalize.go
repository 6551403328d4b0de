// Package normalize converts raw engine results into the canonical
// Finding sequence. Each engine has its own normalizer variant; both
// implement the same contract and are selected by engine tag, never
// by probing the raw structure for fields.
package normalize

import (
	"fmt"

	"github.com/a11yaudit/a11yaudit/pkg/engine"
	"github.com/a11yaudit/a11yaudit/pkg/finding"
)

// Options controls which record types are emitted. Violations are
// always emitted.
type Options struct {
	// IncludePasses emits Pass records for checks that succeeded.
	IncludePasses bool

	// IncludeNeedsReview emits NeedsReview records (incomplete axe
	// checks, combined-runner notices). Defaults to on in config.
	IncludeNeedsReview bool
}

// Normalizer converts one engine's raw result into an ordered
// Finding sequence. Implementations are pure: the same raw input
// always yields the same sequence in the same order.
type Normalizer interface {
	Normalize(raw *engine.Result, opts Options) ([]finding.Finding, error)
}

// ForEngine returns the normalizer variant for tag.
func ForEngine(tag engine.Tag) (Normalizer, error) {
	switch tag {
	case engine.Axe:
		return axeNormalizer{}, nil
	case engine.Pa11y:
		return pa11yNormalizer{}, nil
	default:
		return nil, fmt.Errorf("normalize: unknown engine %q", tag)
	}
}

// axeNormalizer handles the rule-group shape: one Finding per
// (rule, affected element) pair, in the engine's original order.
type axeNormalizer struct{}

func (axeNormalizer) Normalize(raw *engine.Result, opts Options) ([]finding.Finding, error) {
	if raw == nil || raw.Engine != engine.Axe || raw.Axe == nil {
		return nil, fmt.Errorf("normalize: %w: missing rule-group collections", engine.ErrMalformedResult)
	}

	var out []finding.Finding
	out = append(out, fanOut(raw.Axe.Violations, finding.Violation, false)...)
	if opts.IncludeNeedsReview {
		out = append(out, fanOut(raw.Axe.Incomplete, finding.NeedsReview, false)...)
	}
	if opts.IncludePasses {
		out = append(out, fanOut(raw.Axe.Passes, finding.Pass, true)...)
	}
	return out, nil
}

// fanOut expands rule groups into one Finding per affected element.
// A group with zero nodes is not expanded: there is no element to
// report. Passing groups carry no impact and normalize to None.
func fanOut(groups []engine.RuleGroup, rt finding.RecordType, passing bool) []finding.Finding {
	var out []finding.Finding
	for _, g := range groups {
		impact := finding.ImpactFromAxe(g.Impact)
		if passing {
			impact = finding.None
		}
		tags := finding.ComplianceTags(g.Tags)
		for _, n := range g.Nodes {
			out = append(out, finding.Finding{
				Type:           rt,
				Impact:         impact,
				RuleID:         g.RuleID,
				Description:    g.Description,
				Help:           g.Help,
				HelpURL:        g.HelpURL,
				Tags:           tags,
				Element:        n.HTML,
				FailureSummary: n.FailureSummary,
				Engine:         engine.Axe.String(),
			})
		}
	}
	return out
}

// pa11yNormalizer handles the flat-issue shape: one Finding per list
// entry, no element fan-out. Errors and warnings become violations
// (critical and serious class respectively); notices become
// needs-review records.
type pa11yNormalizer struct{}

func (pa11yNormalizer) Normalize(raw *engine.Result, opts Options) ([]finding.Finding, error) {
	if raw == nil || raw.Engine != engine.Pa11y {
		return nil, fmt.Errorf("normalize: %w: missing issue list", engine.ErrMalformedResult)
	}

	var out []finding.Finding
	for _, is := range raw.Issues {
		impact := finding.ImpactFromIssueType(is.Type)
		rt := finding.Violation
		if impact == finding.Notice || impact == finding.Unknown {
			rt = finding.NeedsReview
		}
		if rt == finding.NeedsReview && !opts.IncludeNeedsReview {
			continue
		}
		out = append(out, finding.Finding{
			Type:        rt,
			Impact:      impact,
			RuleID:      is.Code,
			Description: is.Message,
			Element:     is.Context,
			Engine:      engine.Pa11y.String(),
			Runner:      is.Runner,
		})
	}
	return out, nil
}
