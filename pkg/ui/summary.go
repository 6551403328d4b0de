package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/a11yaudit/a11yaudit/pkg/finding"
)

// boxChars contains Unicode box-drawing characters.
var boxChars = struct {
	TopLeft, TopRight, BottomLeft, BottomRight, Horizontal, Vertical string
}{
	"┌", "┐", "└", "┘", "─", "│",
}

// asciiChars contains ASCII fallback characters for box drawing.
var asciiChars = struct {
	TopLeft, TopRight, BottomLeft, BottomRight, Horizontal, Vertical string
}{
	"+", "+", "+", "+", "-", "|",
}

// SummaryConfig configures the summary table renderer.
type SummaryConfig struct {
	// ColorEnabled enables ANSI color output. Auto-detected from the
	// writer when not explicitly set.
	ColorEnabled bool

	// DisableColor forces plain output regardless of terminal
	// support, overriding ColorEnabled and auto-detection.
	DisableColor bool

	// DisableUnicode forces the ASCII box-drawing fallback.
	DisableUnicode bool

	// Width sets the table width (0 = auto-detect from terminal).
	Width int

	// MaxWidth caps the table width (0 = no cap).
	MaxWidth int
}

// SummaryRow is one line of the cross-run summary.
type SummaryRow struct {
	URL      string
	Critical int
	Serious  int
	Warning  int
	Notice   int
	Total    int
	Failed   bool
	Error    string
}

// RowFromOutcome converts a check outcome into a summary row. A
// failed check carries its error; a clean check shows zero counts,
// which stays distinguishable from failure via the status column.
func RowFromOutcome(o *finding.CheckOutcome) SummaryRow {
	row := SummaryRow{URL: o.URL}
	if o.Failed() {
		row.Failed = true
		row.Error = o.Error
		return row
	}
	row.Critical = o.BySeverity[finding.Critical]
	row.Serious = o.BySeverity[finding.Serious]
	row.Warning = o.BySeverity[finding.Warning]
	row.Notice = o.BySeverity[finding.Notice]
	row.Total = len(o.Findings)
	return row
}

// SummaryTable renders the fixed-width cross-run summary: one row per
// audited URL plus a TOTAL row. Long URLs are truncated, never
// wrapped, so count columns stay aligned.
type SummaryTable struct {
	w      io.Writer
	config SummaryConfig
	rows   []SummaryRow
	chars  *struct {
		TopLeft, TopRight, BottomLeft, BottomRight, Horizontal, Vertical string
	}
}

// NewSummaryTable creates a summary table writer. Color resolution:
// an explicit off switch (DisableColor or the global no-color mode)
// always wins; otherwise ColorEnabled, falling back to terminal
// auto-detection.
func NewSummaryTable(w io.Writer, config SummaryConfig) *SummaryTable {
	switch {
	case config.DisableColor || IsNoColor():
		config.ColorEnabled = false
	case !config.ColorEnabled:
		config.ColorEnabled = ColorTerminal(w)
	}
	chars := &boxChars
	if config.DisableUnicode || !UnicodeTerminal() {
		chars = &asciiChars
	}
	return &SummaryTable{
		w:      w,
		config: config,
		chars:  chars,
	}
}

// Add appends a row.
func (st *SummaryTable) Add(row SummaryRow) {
	st.rows = append(st.rows, row)
}

// Counts column layout: 5 numeric columns of fixed width plus the
// status column.
const (
	countColWidth  = 8
	statusColWidth = 8
	minURLWidth    = 20
)

// Render writes the complete table.
func (st *SummaryTable) Render() error {
	width := st.getWidth()
	urlWidth := width - 4 - 5*(countColWidth+3) - (statusColWidth + 3)
	if urlWidth < minURLWidth {
		urlWidth = minURLWidth
		width = urlWidth + 4 + 5*(countColWidth+3) + statusColWidth + 3
	}

	sb := &strings.Builder{}
	st.writeBorder(sb, st.chars.TopLeft, st.chars.TopRight, width)
	st.writeRow(sb, urlWidth,
		"URL", "Critical", "Serious", "Warning", "Notice", "Total", "Status", nil)
	st.writeSeparator(sb, width)

	var total SummaryRow
	total.URL = "TOTAL"
	failures := 0
	for _, row := range st.rows {
		style := st.rowStyle(row)
		status := "OK"
		counts := []string{
			fmt.Sprintf("%d", row.Critical),
			fmt.Sprintf("%d", row.Serious),
			fmt.Sprintf("%d", row.Warning),
			fmt.Sprintf("%d", row.Notice),
			fmt.Sprintf("%d", row.Total),
		}
		if row.Failed {
			// Placeholder cells: a failed check produced no counts,
			// and zeros would read as a clean page.
			status = "FAILED"
			failures++
			for i := range counts {
				counts[i] = "-"
			}
		}
		st.writeRow(sb, urlWidth,
			truncateURL(row.URL, urlWidth),
			counts[0], counts[1], counts[2], counts[3], counts[4],
			status, style)

		total.Critical += row.Critical
		total.Serious += row.Serious
		total.Warning += row.Warning
		total.Notice += row.Notice
		total.Total += row.Total
	}

	st.writeSeparator(sb, width)
	totalStatus := fmt.Sprintf("%d/%d", len(st.rows)-failures, len(st.rows))
	st.writeRow(sb, urlWidth,
		total.URL,
		fmt.Sprintf("%d", total.Critical),
		fmt.Sprintf("%d", total.Serious),
		fmt.Sprintf("%d", total.Warning),
		fmt.Sprintf("%d", total.Notice),
		fmt.Sprintf("%d", total.Total),
		totalStatus, nil)
	st.writeBorder(sb, st.chars.BottomLeft, st.chars.BottomRight, width)

	if _, err := io.WriteString(st.w, sb.String()); err != nil {
		return fmt.Errorf("summary: write: %w", err)
	}
	st.writeFailures()
	return nil
}

// writeFailures lists failed URLs with their errors below the table,
// where the full error fits without breaking column alignment.
func (st *SummaryTable) writeFailures() {
	for _, row := range st.rows {
		if !row.Failed {
			continue
		}
		line := fmt.Sprintf("  FAILED %s: %s", row.URL, row.Error)
		if st.config.ColorEnabled {
			line = FailStyle.Render(line)
		}
		fmt.Fprintln(st.w, line)
	}
}

func (st *SummaryTable) rowStyle(row SummaryRow) func(...string) string {
	if !st.config.ColorEnabled {
		return nil
	}
	switch {
	case row.Failed:
		return FailStyle.Render
	case row.Critical > 0:
		return ImpactStyle(finding.Critical).Render
	case row.Total == 0:
		return PassStyle.Render
	default:
		return nil
	}
}

func (st *SummaryTable) writeBorder(sb *strings.Builder, left, right string, width int) {
	sb.WriteString(left)
	sb.WriteString(strings.Repeat(st.chars.Horizontal, width-2))
	sb.WriteString(right)
	sb.WriteString("\n")
}

func (st *SummaryTable) writeSeparator(sb *strings.Builder, width int) {
	sb.WriteString(st.chars.Vertical)
	sb.WriteString(strings.Repeat(st.chars.Horizontal, width-2))
	sb.WriteString(st.chars.Vertical)
	sb.WriteString("\n")
}

// writeRow writes one table row with fixed column widths. The style
// function, when non-nil, colors the cell text. Padding is computed
// from the plain text so ANSI codes never skew alignment.
func (st *SummaryTable) writeRow(sb *strings.Builder, urlWidth int, url, critical, serious, warning, notice, total, status string, style func(...string) string) {
	cells := []struct {
		text  string
		width int
	}{
		{url, urlWidth},
		{critical, countColWidth},
		{serious, countColWidth},
		{warning, countColWidth},
		{notice, countColWidth},
		{total, countColWidth},
		{status, statusColWidth},
	}

	sb.WriteString(st.chars.Vertical)
	for _, cell := range cells {
		text := cell.text
		pad := cell.width - len(text)
		if pad < 0 {
			pad = 0
		}
		if style != nil {
			text = style(text)
		}
		sb.WriteString(" ")
		sb.WriteString(text)
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(" ")
		sb.WriteString(st.chars.Vertical)
	}
	sb.WriteString("\n")
}

// getWidth returns the configured or auto-detected terminal width.
func (st *SummaryTable) getWidth() int {
	if st.config.Width > 0 {
		return st.config.Width
	}
	width := TerminalWidth(st.w)
	if st.config.MaxWidth > 0 && width > st.config.MaxWidth {
		return st.config.MaxWidth
	}
	return width
}

// truncateURL truncates a URL with a clear marker, never wrapping.
func truncateURL(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	if maxLen <= 5 {
		return s[:maxLen]
	}
	return s[:maxLen-5] + "[...]"
}
