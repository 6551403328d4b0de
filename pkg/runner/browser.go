// Package runner drives a headless Chrome instance through chromedp
// and executes one accessibility engine's analysis per check.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"

	"github.com/a11yaudit/a11yaudit/pkg/duration"
	"github.com/a11yaudit/a11yaudit/pkg/engine"
)

// Config holds browser-level settings shared by both engine runners.
type Config struct {
	// ChromiumPath overrides the browser binary location. Empty uses
	// chromedp's default lookup.
	ChromiumPath string

	// AxeScriptURL and HTMLCSScriptURL locate the engine bundles
	// injected into the audited page. Defaults point at the pinned
	// CDN builds.
	AxeScriptURL    string
	HTMLCSScriptURL string
}

// Pinned engine bundle versions. Audits must be reproducible, so
// these never float to "latest".
const (
	defaultAxeScript    = "https://cdnjs.cloudflare.com/ajax/libs/axe-core/4.10.2/axe.min.js"
	defaultHTMLCSScript = "https://cdnjs.cloudflare.com/ajax/libs/html_codesniffer/2.5.1/HTMLCS.min.js"
)

// DefaultConfig returns the browser config with pinned script URLs.
func DefaultConfig() Config {
	return Config{
		AxeScriptURL:    defaultAxeScript,
		HTMLCSScriptURL: defaultHTMLCSScript,
	}
}

func (c Config) withDefaults() Config {
	if c.AxeScriptURL == "" {
		c.AxeScriptURL = defaultAxeScript
	}
	if c.HTMLCSScriptURL == "" {
		c.HTMLCSScriptURL = defaultHTMLCSScript
	}
	return c
}

// session is one browser lifetime: allocated for a single check and
// torn down when the check completes.
type session struct {
	ctx    context.Context
	cancel func()
}

// newSession launches a browser. The returned cancel tears the
// browser down with a bounded shutdown: chromedp's graceful cancel
// can block on Chrome child processes (GPU, renderer), so after
// duration.BrowserShutdown the process tree is force-killed.
func newSession(ctx context.Context, cfg Config, opts engine.Options) *session {
	var allocOpts []chromedp.ExecAllocatorOption

	if opts.Headless {
		allocOpts = append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)
	} else {
		// DefaultExecAllocatorOptions carries Headless at index 2.
		// Copy everything around it to get a visible browser.
		defaults := chromedp.DefaultExecAllocatorOptions[:]
		allocOpts = append(allocOpts, defaults[0], defaults[1])
		allocOpts = append(allocOpts, defaults[3:]...)
	}

	allocOpts = append(allocOpts,
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("window-size", fmt.Sprintf("%d,%d", opts.ViewportWidth, opts.ViewportHeight)),
	)
	if cfg.ChromiumPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(cfg.ChromiumPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	cancel := func() {
		// Capture the browser process before cancelling. After cancel
		// the process reference may be nil.
		var proc *os.Process
		if c := chromedp.FromContext(browserCtx); c != nil && c.Browser != nil {
			proc = c.Browser.Process()
		}

		done := make(chan struct{})
		go func() {
			browserCancel()
			allocCancel()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(duration.BrowserShutdown):
			killProcessTree(proc)
		}
	}

	return &session{ctx: browserCtx, cancel: cancel}
}

// navigate loads the page and waits for the stabilization delay. The
// navigation has its own budget inside the overall check timeout so a
// hung page load classifies as NavigationTimeout, not a generic error.
func (s *session) navigate(url string, opts engine.Options) error {
	navCtx, cancel := context.WithTimeout(s.ctx, duration.PageLoad)
	defer cancel()

	err := chromedp.Run(navCtx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetDeviceMetricsOverride(
				int64(opts.ViewportWidth), int64(opts.ViewportHeight), 1, false,
			).Do(ctx)
		}),
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %s", engine.ErrNavigationTimeout, url)
		}
		return fmt.Errorf("navigate %s: %w", url, err)
	}

	if opts.Wait > 0 {
		if err := chromedp.Run(s.ctx, chromedp.Sleep(opts.Wait)); err != nil {
			return fmt.Errorf("stabilize %s: %w", url, err)
		}
	}
	return nil
}

// injectScript loads an engine bundle into the page and waits for its
// global to appear.
func (s *session) injectScript(scriptURL, globalExpr string) error {
	injectCtx, cancel := context.WithTimeout(s.ctx, duration.ScriptInject)
	defer cancel()

	inject := fmt.Sprintf(
		`(function(){var s=document.createElement('script');s.src=%q;document.head.appendChild(s);})()`,
		scriptURL,
	)

	var ready bool
	err := chromedp.Run(injectCtx,
		chromedp.Evaluate(inject, nil),
		chromedp.Poll(globalExpr, &ready),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: engine script did not load from %s", engine.ErrAnalysisTimeout, scriptURL)
		}
		return fmt.Errorf("inject %s: %w", scriptURL, err)
	}
	return nil
}
