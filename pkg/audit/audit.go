// Package audit orchestrates a run: it walks the URL list, invokes
// the check runner once per URL, and feeds the results through
// normalization, categorization, report writing, and presentation.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/a11yaudit/a11yaudit/pkg/categorize"
	"github.com/a11yaudit/a11yaudit/pkg/engine"
	"github.com/a11yaudit/a11yaudit/pkg/finding"
	"github.com/a11yaudit/a11yaudit/pkg/normalize"
	"github.com/a11yaudit/a11yaudit/pkg/output"
	"github.com/a11yaudit/a11yaudit/pkg/output/exitcode"
	"github.com/a11yaudit/a11yaudit/pkg/ui"
)

// Orchestrator runs a full audit over a URL list. URLs are processed
// strictly sequentially: each check consumes a full browser instance,
// and concurrent instances contend for resources and can skew
// timing-sensitive results.
type Orchestrator struct {
	Runner    engine.Runner
	Options   engine.Options
	Normalize normalize.Options
	Store     *output.Store
	Presenter *ui.DetailPresenter
	Exit      *exitcode.Manager
}

// NewRunID returns a collision-resistant run identifier embedded in
// report filenames.
func NewRunID() string {
	return uuid.NewString()[:8]
}

// Run audits every URL in order and returns the accumulated outcomes
// with the process exit code. A single URL's failure never aborts the
// remaining loop; it is captured into that URL's outcome. An empty
// URL list is fatal and returns before any runner call.
func (o *Orchestrator) Run(ctx context.Context, urls []string) ([]*finding.CheckOutcome, exitcode.Code, string) {
	if len(urls) == 0 {
		ui.PrintError("no URLs to audit")
		code, reason := o.Exit.ExitCode()
		return nil, code, reason
	}

	normalizer, err := normalize.ForEngine(o.Runner.Engine())
	if err != nil {
		ui.PrintError(err.Error())
		o.Exit.SetConfigError()
		code, reason := o.Exit.ExitCode()
		return nil, code, reason
	}

	outcomes := make([]*finding.CheckOutcome, 0, len(urls))
	for i, url := range urls {
		if ctx.Err() != nil {
			o.Exit.SetInterrupted()
			break
		}

		o.Presenter.PrintProgress(i+1, len(urls), o.Runner.Engine().String(), url)
		outcome := o.checkOne(ctx, normalizer, url)
		outcomes = append(outcomes, outcome)
		o.Exit.Record(outcome)

		b := categorize.Breakdown{BySeverity: outcome.BySeverity, ByTag: outcome.ByTag}
		o.Presenter.Present(outcome, b)

		if !outcome.Failed() {
			if _, err := o.Store.SaveOutcome(outcome, b, o.Runner.Engine().String()); err != nil {
				// Report write failures are surfaced but never abort
				// the remaining URL loop.
				ui.PrintError(err.Error())
			}
		}
	}

	o.printSummary(outcomes)
	code, reason := o.Exit.ExitCode()
	return outcomes, code, reason
}

// checkOne runs a single check and folds any failure into the
// outcome. Failures never propagate past this boundary.
func (o *Orchestrator) checkOne(ctx context.Context, normalizer normalize.Normalizer, url string) *finding.CheckOutcome {
	outcome := &finding.CheckOutcome{
		URL:       url,
		StartTime: time.Now(),
	}
	defer func() {
		outcome.Duration = time.Since(outcome.StartTime)
	}()

	raw, err := o.Runner.Check(ctx, url, o.Options)
	if err != nil {
		outcome.Error = failureMessage(err)
		return outcome
	}

	findings, err := normalizer.Normalize(raw, o.Normalize)
	if err != nil {
		outcome.Error = failureMessage(err)
		return outcome
	}

	outcome.Findings = findings
	b := categorize.Count(findings, o.Runner.Engine())
	outcome.BySeverity = b.BySeverity
	outcome.ByTag = b.ByTag
	return outcome
}

// failureMessage renders a check error with its remediation hint.
func failureMessage(err error) string {
	if hint := engine.RemediationHint(err); hint != "" {
		return fmt.Sprintf("%s (%s)", err, hint)
	}
	return err.Error()
}

// printSummary renders the cross-run table once at the end.
func (o *Orchestrator) printSummary(outcomes []*finding.CheckOutcome) {
	if len(outcomes) == 0 {
		return
	}
	st := ui.NewSummaryTable(o.Presenter.Writer(), ui.SummaryConfig{MaxWidth: 140})
	for _, outcome := range outcomes {
		st.Add(ui.RowFromOutcome(outcome))
	}
	if err := st.Render(); err != nil {
		ui.PrintError(err.Error())
	}
}
