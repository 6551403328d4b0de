// Package duration provides canonical time constants for the entire
// codebase. Reference these instead of scattering hardcoded
// time.Duration values through the audit loop.
package duration

import "time"

const (
	// CheckBudget bounds a full per-URL check: navigation plus
	// analysis (30s). This is the value raced against the engine run.
	CheckBudget = 30 * time.Second

	// PageLoad is the navigation-only deadline inside a check (20s).
	PageLoad = 20 * time.Second

	// StabilizeWait is the default pre-analysis delay after the page
	// reports ready, letting client-side rendering settle (500ms).
	StabilizeWait = 500 * time.Millisecond

	// ScriptInject bounds injection of an engine script into the
	// page (5s).
	ScriptInject = 5 * time.Second

	// BrowserShutdown bounds graceful browser teardown before the
	// process tree is force-killed (5s).
	BrowserShutdown = 5 * time.Second
)
