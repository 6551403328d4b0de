// Package writers persists audit results to report files.
package writers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/a11yaudit/a11yaudit/pkg/finding"
)

// UTF-8 BOM for Excel compatibility.
const utf8BOM = "\xEF\xBB\xBF"

// csvColumns is the report schema. Column order is part of the file
// contract; downstream spreadsheets and imports key on it.
var csvColumns = []string{
	"Type",
	"Impact",
	"Description",
	"Help Text",
	"Help URL",
	"Rule ID",
	"Tags",
	"Element",
	"Failure Summary",
}

// CSVOptions configures the CSV writer behavior.
type CSVOptions struct {
	// Delimiter sets the field delimiter. Comma when zero.
	Delimiter rune

	// ExcelCompatible prepends a UTF-8 BOM so Excel renders
	// non-ASCII element markup correctly.
	ExcelCompatible bool

	// SanitizeFormulas prefixes fields starting with = + - @ TAB CR
	// to prevent formula execution in spreadsheets.
	SanitizeFormulas bool

	// TruncateAt limits field length in runes (0 = no limit).
	TruncateAt int
}

// CSVWriter writes findings as CSV rows, one row per finding, in the
// order findings are handed to it. The header row is always written,
// even when no findings follow. Safe for concurrent use.
type CSVWriter struct {
	w         io.Writer
	csvWriter *csv.Writer
	mu        sync.Mutex
	opts      CSVOptions

	// headerErr holds a failed header write. Without the header the
	// file violates the column contract, so every later call fails.
	headerErr error
}

// NewCSVWriter creates a CSV writer and writes the header row
// immediately. A header write failure is reported by the first Write,
// Flush, or Close call.
func NewCSVWriter(w io.Writer, opts CSVOptions) *CSVWriter {
	cw := &CSVWriter{
		w:    w,
		opts: opts,
	}

	if opts.ExcelCompatible {
		if _, err := w.Write([]byte(utf8BOM)); err != nil {
			cw.headerErr = fmt.Errorf("csv: write BOM: %w", err)
		}
	}

	cw.csvWriter = csv.NewWriter(w)
	if opts.Delimiter != 0 {
		cw.csvWriter.Comma = opts.Delimiter
	}

	if cw.headerErr == nil {
		if err := cw.csvWriter.Write(csvColumns); err != nil {
			cw.headerErr = fmt.Errorf("csv: write header: %w", err)
		}
		cw.csvWriter.Flush()
		if err := cw.csvWriter.Error(); err != nil && cw.headerErr == nil {
			cw.headerErr = fmt.Errorf("csv: write header: %w", err)
		}
	}

	return cw
}

// Write writes a single finding as a CSV row.
func (cw *CSVWriter) Write(f finding.Finding) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.headerErr != nil {
		return cw.headerErr
	}

	row := []string{
		f.Type.String(),
		f.Impact.String(),
		f.Description,
		f.Help,
		f.HelpURL,
		f.RuleID,
		strings.Join(f.Tags, ", "),
		f.Element,
		f.FailureSummary,
	}

	for i, field := range row {
		if cw.opts.SanitizeFormulas {
			field = sanitizeForCSV(field)
		}
		if cw.opts.TruncateAt > 0 {
			field = truncateField(field, cw.opts.TruncateAt)
		}
		row[i] = field
	}

	return cw.csvWriter.Write(row)
}

// WriteAll writes every finding in order.
func (cw *CSVWriter) WriteAll(findings []finding.Finding) error {
	for _, f := range findings {
		if err := cw.Write(f); err != nil {
			return fmt.Errorf("csv: write row for rule %s: %w", f.RuleID, err)
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (cw *CSVWriter) Flush() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	if cw.headerErr != nil {
		return cw.headerErr
	}
	cw.csvWriter.Flush()
	return cw.csvWriter.Error()
}

// Close flushes buffered rows and closes the underlying writer when
// it implements io.Closer.
func (cw *CSVWriter) Close() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.headerErr != nil {
		if closer, ok := cw.w.(io.Closer); ok {
			_ = closer.Close()
		}
		return cw.headerErr
	}
	cw.csvWriter.Flush()
	if err := cw.csvWriter.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	if closer, ok := cw.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// sanitizeForCSV prefixes fields that spreadsheets would otherwise
// interpret as formulas. Element markup routinely starts with '='
// fragments after truncation, so this guards report consumers.
func sanitizeForCSV(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}

// truncateField truncates a field to maxLen runes.
func truncateField(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen > 3 {
		return string(runes[:maxLen-3]) + "..."
	}
	return string(runes[:maxLen])
}
