// Package categorize computes severity and compliance-tag breakdowns
// from a normalized Finding sequence.
package categorize

import (
	"github.com/a11yaudit/a11yaudit/pkg/engine"
	"github.com/a11yaudit/a11yaudit/pkg/finding"
)

// Breakdown holds the per-URL counts consumed by the presenters and
// the exit-status decision.
type Breakdown struct {
	// BySeverity maps impact level to finding count. Critical and
	// Serious are always present, zero-initialized, because the exit
	// status and summary table read them unconditionally. Warning and
	// Notice are pre-seeded only for the combined-runner engine,
	// whose vocabulary includes them; other buckets appear when hit.
	BySeverity map[finding.Impact]int

	// ByTag maps compliance tag to finding count. The tag space is
	// open-ended, so keys appear only with count > 0.
	ByTag map[string]int
}

// Count tallies findings into a Breakdown. Only violation-type
// findings enter the severity buckets, so the bucket values always
// sum to the violation count and a needs-review or pass record can
// never trip the critical exit status. Tag buckets count every
// finding; one with multiple compliance tags increments one bucket
// per distinct tag. Findings are never deduplicated or weighted.
func Count(findings []finding.Finding, tag engine.Tag) Breakdown {
	b := Breakdown{
		BySeverity: map[finding.Impact]int{
			finding.Critical: 0,
			finding.Serious:  0,
		},
		ByTag: make(map[string]int),
	}
	if tag == engine.Pa11y {
		b.BySeverity[finding.Warning] = 0
		b.BySeverity[finding.Notice] = 0
	}

	for _, f := range findings {
		if f.Type == finding.Violation {
			b.BySeverity[f.Impact]++
		}
		for _, t := range f.Tags {
			b.ByTag[t]++
		}
	}
	return b
}
