package writers

import (
	"fmt"
	"io"
	"time"

	"github.com/a11yaudit/a11yaudit/pkg/categorize"
	"github.com/a11yaudit/a11yaudit/pkg/finding"
	"github.com/a11yaudit/a11yaudit/pkg/jsonutil"
)

// JSONReport is the machine-readable counterpart of the CSV report,
// carrying the breakdown alongside the findings.
type JSONReport struct {
	URL        string                 `json:"url"`
	RunID      string                 `json:"runId"`
	Timestamp  time.Time              `json:"timestamp"`
	Engine     string                 `json:"engine"`
	Error      string                 `json:"error,omitempty"`
	BySeverity map[finding.Impact]int `json:"bySeverity"`
	ByTag      map[string]int         `json:"byTag"`
	Findings   []finding.Finding      `json:"findings"`
}

// WriteJSONReport marshals a per-URL report with indentation. A nil
// findings slice is written as an empty array so consumers can
// distinguish "audited, clean" from a missing file.
func WriteJSONReport(w io.Writer, report JSONReport) error {
	if report.Findings == nil {
		report.Findings = []finding.Finding{}
	}
	enc := jsonutil.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("json report: encode: %w", err)
	}
	return nil
}

// NewJSONReport assembles a report from a check outcome and its
// breakdown.
func NewJSONReport(outcome *finding.CheckOutcome, b categorize.Breakdown, engine, runID string) JSONReport {
	return JSONReport{
		URL:        outcome.URL,
		RunID:      runID,
		Timestamp:  outcome.StartTime,
		Engine:     engine,
		Error:      outcome.Error,
		BySeverity: b.BySeverity,
		ByTag:      b.ByTag,
		Findings:   outcome.Findings,
	}
}
