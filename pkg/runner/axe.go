package runner

import (
	"context"
	"errors"
	"fmt"

	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/a11yaudit/a11yaudit/pkg/engine"
	"github.com/a11yaudit/a11yaudit/pkg/jsonutil"
)

// AxeRunner drives the DOM-rule-based engine: it injects the axe-core
// bundle into the audited page and collects the rule-group result.
type AxeRunner struct {
	cfg Config
}

// NewAxeRunner creates a runner for the rule-group engine.
func NewAxeRunner(cfg Config) *AxeRunner {
	return &AxeRunner{cfg: cfg.withDefaults()}
}

// Engine returns the axe tag.
func (r *AxeRunner) Engine() engine.Tag {
	return engine.Axe
}

// buildAxeRunJS produces the analysis expression. When tags are given
// the run is restricted to them via axe's runOnly option; otherwise
// axe's full default rule set applies.
func buildAxeRunJS(tags []string) (string, error) {
	options := "{}"
	if len(tags) > 0 {
		tagsJSON, err := jsonutil.Marshal(tags)
		if err != nil {
			return "", fmt.Errorf("axe: encode tags: %w", err)
		}
		options = fmt.Sprintf(`{runOnly: {type: "tag", values: %s}}`, tagsJSON)
	}
	return fmt.Sprintf(`axe.run(document, %s).then(r => JSON.stringify(r))`, options), nil
}

// Check audits url and returns the raw rule-group result. The whole
// check runs inside opts.Timeout; the analysis itself is raced
// against the remaining budget and classifies as AnalysisTimeout when
// the timer fires first.
func (r *AxeRunner) Check(ctx context.Context, url string, opts engine.Options) (*engine.Result, error) {
	checkCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	s := newSession(checkCtx, r.cfg, opts)
	defer s.cancel()

	if err := s.navigate(url, opts); err != nil {
		return nil, err
	}
	if err := s.injectScript(r.cfg.AxeScriptURL, `typeof window.axe !== 'undefined'`); err != nil {
		return nil, err
	}

	runJS, err := buildAxeRunJS(opts.Tags)
	if err != nil {
		return nil, err
	}

	var raw string
	err = chromedp.Run(s.ctx,
		chromedp.Evaluate(runJS, &raw, func(p *cdpruntime.EvaluateParams) *cdpruntime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: axe analysis of %s", engine.ErrAnalysisTimeout, url)
		}
		return nil, fmt.Errorf("axe analysis of %s: %w", url, err)
	}

	var result engine.AxeResult
	if err := jsonutil.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("%w: decode axe payload: %v", engine.ErrMalformedResult, err)
	}

	return &engine.Result{Engine: engine.Axe, Axe: &result}, nil
}
