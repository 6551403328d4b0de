package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cdpruntime "github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/a11yaudit/a11yaudit/pkg/engine"
	"github.com/a11yaudit/a11yaudit/pkg/jsonutil"
)

// Pa11yRunner drives the combined-runner engine: it injects the
// HTML_CodeSniffer bundle and collects its flat message list.
type Pa11yRunner struct {
	cfg Config
}

// NewPa11yRunner creates a runner for the flat-issue engine.
func NewPa11yRunner(cfg Config) *Pa11yRunner {
	return &Pa11yRunner{cfg: cfg.withDefaults()}
}

// Engine returns the pa11y tag.
func (r *Pa11yRunner) Engine() engine.Tag {
	return engine.Pa11y
}

// standardFromTags maps compliance tags onto the sniffer's standard
// name. The strictest requested level wins; no recognized tag falls
// back to WCAG2AA, the engine's conventional default.
func standardFromTags(tags []string) string {
	standard := ""
	for _, tag := range tags {
		switch strings.ToLower(tag) {
		case "wcag2aaa":
			return "WCAG2AAA"
		case "wcag2aa":
			standard = "WCAG2AA"
		case "wcag2a":
			if standard == "" {
				standard = "WCAG2A"
			}
		}
	}
	if standard == "" {
		standard = "WCAG2AA"
	}
	return standard
}

// buildSnifferJS produces the analysis expression: run the sniffer
// against the document, then serialize its messages into the
// flat-issue shape. Message type 1 is error, 2 warning, 3 notice.
func buildSnifferJS(standard string) string {
	return fmt.Sprintf(`new Promise(function(resolve, reject) {
	window.HTMLCS.process(%q, document, function() {
		var issues = window.HTMLCS.getMessages().map(function(m) {
			return {
				type: m.type === 1 ? "error" : m.type === 2 ? "warning" : "notice",
				code: m.code,
				message: m.msg,
				context: m.element && m.element.outerHTML ? m.element.outerHTML.substring(0, 300) : "",
				selector: "",
				runner: "htmlcs"
			};
		});
		resolve(JSON.stringify(issues));
	}, function() {
		reject(new Error("sniffer failed"));
	});
})`, standard)
}

// Check audits url and returns the raw flat-issue result.
func (r *Pa11yRunner) Check(ctx context.Context, url string, opts engine.Options) (*engine.Result, error) {
	checkCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	s := newSession(checkCtx, r.cfg, opts)
	defer s.cancel()

	if err := s.navigate(url, opts); err != nil {
		return nil, err
	}
	if err := s.injectScript(r.cfg.HTMLCSScriptURL, `typeof window.HTMLCS !== 'undefined'`); err != nil {
		return nil, err
	}

	var raw string
	err := chromedp.Run(s.ctx,
		chromedp.Evaluate(buildSnifferJS(standardFromTags(opts.Tags)), &raw, func(p *cdpruntime.EvaluateParams) *cdpruntime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: sniffer analysis of %s", engine.ErrAnalysisTimeout, url)
		}
		return nil, fmt.Errorf("sniffer analysis of %s: %w", url, err)
	}

	var issues []engine.Issue
	if err := jsonutil.Unmarshal([]byte(raw), &issues); err != nil {
		return nil, fmt.Errorf("%w: decode sniffer payload: %v", engine.ErrMalformedResult, err)
	}

	return &engine.Result{Engine: engine.Pa11y, Issues: issues}, nil
}
