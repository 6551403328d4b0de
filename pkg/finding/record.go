package finding

import "time"

// RecordType classifies a finding into exactly one reporting bucket.
type RecordType string

const (
	// Violation is a definite failure of a check.
	Violation RecordType = "violation"

	// NeedsReview is an incomplete or warning-level result that a
	// human must confirm.
	NeedsReview RecordType = "needs-review"

	// Pass is a check that succeeded. Only reported when the run is
	// configured to include passing records.
	Pass RecordType = "pass"
)

// IsValid reports whether r is a recognized record type.
func (r RecordType) IsValid() bool {
	switch r {
	case Violation, NeedsReview, Pass:
		return true
	}
	return false
}

// String returns the record type as a string.
func (r RecordType) String() string {
	return string(r)
}

// Finding is one normalized accessibility issue or review item tied
// to a page element. Both engines normalize into this shape.
type Finding struct {
	Type           RecordType `json:"type"`
	Impact         Impact     `json:"impact"`
	RuleID         string     `json:"rule_id,omitempty"`
	Description    string     `json:"description,omitempty"`
	Help           string     `json:"help,omitempty"`
	HelpURL        string     `json:"help_url,omitempty"`
	Tags           []string   `json:"tags,omitempty"`
	Element        string     `json:"element,omitempty"`
	FailureSummary string     `json:"failure_summary,omitempty"`
	Engine         string     `json:"engine"`
	Runner         string     `json:"runner,omitempty"`
}

// CheckOutcome is the complete result of auditing one URL. It is
// built once per URL per run and never mutated after construction.
type CheckOutcome struct {
	URL        string         `json:"url"`
	Findings   []Finding      `json:"findings"`
	BySeverity map[Impact]int `json:"by_severity"`
	ByTag      map[string]int `json:"by_tag"`
	Error      string         `json:"error,omitempty"`
	StartTime  time.Time      `json:"start_time,omitempty"`
	Duration   time.Duration  `json:"duration,omitempty"`
}

// Failed reports whether the check itself failed (navigation error,
// timeout) as opposed to completing with zero findings.
func (o *CheckOutcome) Failed() bool {
	return o.Error != ""
}

// Violations returns the number of violation-type findings.
func (o *CheckOutcome) Violations() int {
	n := 0
	for _, f := range o.Findings {
		if f.Type == Violation {
			n++
		}
	}
	return n
}

// CriticalCount returns the number of critical-impact findings,
// the bucket that drives the process exit status.
func (o *CheckOutcome) CriticalCount() int {
	return o.BySeverity[Critical]
}
