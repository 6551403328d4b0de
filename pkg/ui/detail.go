package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a11yaudit/a11yaudit/pkg/categorize"
	"github.com/a11yaudit/a11yaudit/pkg/finding"
)

// severityOrder is the display order for severity counts.
var severityOrder = []finding.Impact{
	finding.Critical,
	finding.Serious,
	finding.Warning,
	finding.Notice,
	finding.None,
	finding.Unknown,
}

// DetailPresenter renders per-URL audit detail in nuclei-style
// bracketed lines.
type DetailPresenter struct {
	w io.Writer

	// Verbose adds the help URL per finding.
	Verbose bool
}

// NewDetailPresenter creates a presenter writing to w.
func NewDetailPresenter(w io.Writer) *DetailPresenter {
	return &DetailPresenter{w: w}
}

// Writer exposes the underlying writer so the summary table can share
// the same destination.
func (p *DetailPresenter) Writer() io.Writer {
	return p.w
}

// PrintProgress writes the bracketed progress line announcing a URL
// check. Format: [2/5] [axe] https://example.com
func (p *DetailPresenter) PrintProgress(index, total int, engine, url string) {
	if IsSilent() {
		return
	}
	fmt.Fprintf(p.w, "%s %s %s\n",
		BracketStyle.Render(fmt.Sprintf("[%d/%d]", index, total)),
		BracketStyle.Render("["+engine+"]"),
		URLStyle.Render(url),
	)
}

// Present renders the outcome for one URL: the severity and tag
// counts followed by one line per finding. Failure summaries span
// multiple lines and are indented under their finding.
func (p *DetailPresenter) Present(outcome *finding.CheckOutcome, b categorize.Breakdown) {
	if IsSilent() {
		return
	}

	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, URLStyle.Render(outcome.URL))

	if outcome.Failed() {
		Fprintf(p.w, "  %s %s\n", FailStyle.Render(Icon("✘", "[X]")), outcome.Error)
		return
	}

	if len(outcome.Findings) == 0 {
		Fprintf(p.w, "  %s %s\n", PassStyle.Render(Icon("✔", "[+]")), "No accessibility issues detected")
		return
	}

	p.printCounts(b)
	for _, f := range outcome.Findings {
		p.printFinding(f)
	}
}

// printCounts renders one line of severity counts and one of tag
// counts. Severities follow the fixed display order; tags are sorted
// for stable output.
func (p *DetailPresenter) printCounts(b categorize.Breakdown) {
	var parts []string
	for _, impact := range severityOrder {
		count, ok := b.BySeverity[impact]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s",
			ImpactStyle(impact).Render(impact.String()),
			StatValueStyle.Render(fmt.Sprintf("%d", count))))
	}
	fmt.Fprintf(p.w, "  %s\n", strings.Join(parts, "  "))

	if len(b.ByTag) == 0 {
		return
	}
	tags := make([]string, 0, len(b.ByTag))
	for tag := range b.ByTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	tagParts := make([]string, 0, len(tags))
	for _, tag := range tags {
		tagParts = append(tagParts, fmt.Sprintf("%s:%d", tag, b.ByTag[tag]))
	}
	fmt.Fprintf(p.w, "  %s %s\n", StatLabelStyle.Render("tags:"), strings.Join(tagParts, " "))
}

// printFinding renders one finding line (impact badge, rule id,
// description, compliance tags), the affected element snippet, and
// indented continuation lines for the failure summary.
func (p *DetailPresenter) printFinding(f finding.Finding) {
	line := fmt.Sprintf("  %s %s %s",
		ImpactBadge(f.Impact).Render(f.Impact.String()),
		RuleStyle.Render(f.RuleID),
		f.Description,
	)
	if len(f.Tags) > 0 {
		line += " " + BracketStyle.Render("["+strings.Join(f.Tags, ", ")+"]")
	}
	Fprintf(p.w, "%s\n", line)

	if f.Element != "" {
		Fprintf(p.w, "      %s\n", StatLabelStyle.Render(f.Element))
	}
	if p.Verbose && f.HelpURL != "" {
		Fprintf(p.w, "      %s\n", HelpStyle.Render(f.HelpURL))
	}

	if f.FailureSummary == "" {
		return
	}
	for _, line := range strings.Split(f.FailureSummary, "\n") {
		Fprintf(p.w, "      %s\n", StatLabelStyle.Render(line))
	}
}
