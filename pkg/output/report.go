// Package output handles report persistence: file naming, directory
// creation, and writer selection.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/a11yaudit/a11yaudit/pkg/categorize"
	"github.com/a11yaudit/a11yaudit/pkg/finding"
	"github.com/a11yaudit/a11yaudit/pkg/output/writers"
)

// ErrWrite indicates a report could not be persisted. Callers match
// with errors.Is; the wrapped error carries the OS-level detail.
var ErrWrite = errors.New("output: report write failed")

// filenameTimestamp is compact and filesystem-safe on all platforms.
const filenameTimestamp = "20060102-150405"

// SanitizeURL converts a URL into a filename fragment. The scheme is
// dropped and every byte outside [a-z0-9.-] becomes an underscore, so
// two URLs differing only in path separators still produce distinct
// but readable names.
func SanitizeURL(rawURL string) string {
	s := strings.ToLower(rawURL)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimRight(s, "/")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if out == "" {
		out = "report"
	}
	return out
}

// ReportPath builds the report path for a URL inside dir. The run ID
// keeps repeated audits of the same URL from clobbering each other
// even within the same clock second.
func ReportPath(dir, rawURL string, ts time.Time, runID, ext string) string {
	name := fmt.Sprintf("%s_%s_%s.%s", SanitizeURL(rawURL), ts.Format(filenameTimestamp), runID, ext)
	return filepath.Join(dir, name)
}

// Store persists per-URL reports under a base directory.
type Store struct {
	Dir     string
	RunID   string
	CSVOpts writers.CSVOptions
	// JSON controls whether the supplemental JSON report is written
	// alongside each CSV.
	JSON bool
}

// SaveOutcome writes the CSV report (and optionally the JSON report)
// for one audited URL, creating the output directory as needed. It
// returns the CSV path. Failed outcomes are not written; the summary
// table carries their error instead.
func (s *Store) SaveOutcome(outcome *finding.CheckOutcome, b categorize.Breakdown, engine string) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create %s: %v", ErrWrite, s.Dir, err)
	}

	csvPath := ReportPath(s.Dir, outcome.URL, outcome.StartTime, s.RunID, "csv")
	if err := s.saveCSV(csvPath, outcome.Findings); err != nil {
		return "", err
	}

	if s.JSON {
		jsonPath := ReportPath(s.Dir, outcome.URL, outcome.StartTime, s.RunID, "json")
		if err := s.saveJSON(jsonPath, outcome, b, engine); err != nil {
			return "", err
		}
	}
	return csvPath, nil
}

func (s *Store) saveCSV(path string, findings []finding.Finding) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrWrite, path, err)
	}

	cw := writers.NewCSVWriter(f, s.CSVOpts)
	if err := cw.WriteAll(findings); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}

func (s *Store) saveJSON(path string, outcome *finding.CheckOutcome, b categorize.Breakdown, engine string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrWrite, path, err)
	}
	defer f.Close()

	report := writers.NewJSONReport(outcome, b, engine, s.RunID)
	if err := writers.WriteJSONReport(f, report); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	return nil
}
