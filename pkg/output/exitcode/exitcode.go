// Package exitcode provides semantic exit codes for CI/CD integration.
// Exit codes communicate audit outcomes to automation pipelines.
//
// Exit codes:
//   - 0: Success (no critical findings)
//   - 1: Failures (critical findings detected, or nothing was audited)
//   - 2: Invalid configuration
//   - 3: Audit interrupted
package exitcode

import (
	"fmt"
	"sync"

	"github.com/a11yaudit/a11yaudit/pkg/finding"
)

// Code represents a semantic exit code for CI/CD pipelines.
type Code int

const (
	// Success indicates the audit completed with no critical findings.
	Success Code = 0
	// Failures indicates critical findings were detected or the URL
	// list was empty.
	Failures Code = 1
	// Configuration indicates invalid configuration was provided.
	Configuration Code = 2
	// Interrupted indicates the audit was interrupted (e.g. SIGINT).
	Interrupted Code = 3
)

var codeStrings = map[Code]string{
	Success:       "success",
	Failures:      "failures_detected",
	Configuration: "invalid_configuration",
	Interrupted:   "audit_interrupted",
}

var codeDescriptions = map[Code]string{
	Success:       "Audit completed with no critical findings",
	Failures:      "Critical accessibility findings were detected",
	Configuration: "Invalid configuration provided",
	Interrupted:   "Audit was interrupted by user or signal",
}

// Manager tracks audit outcomes and determines the process exit code.
type Manager struct {
	mu        sync.Mutex
	criticals int
	failures  int
	audited   int

	configError bool
	interrupted bool
}

// New creates an exit code manager.
func New() *Manager {
	return &Manager{}
}

// Record tallies one per-URL outcome. Failed checks count toward the
// audited total; a failed check yields zero findings, never a crash.
func (m *Manager) Record(outcome *finding.CheckOutcome) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.audited++
	if outcome.Failed() {
		m.failures++
		return
	}
	m.criticals += outcome.CriticalCount()
}

// SetConfigError marks that a configuration error occurred.
func (m *Manager) SetConfigError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configError = true
}

// SetInterrupted marks that the audit was interrupted.
func (m *Manager) SetInterrupted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interrupted = true
}

// ExitCode returns the exit code and a human-readable reason.
//
// Priority order (highest to lowest):
//  1. Interrupted
//  2. Configuration error
//  3. Nothing audited
//  4. Critical findings
//  5. Success
func (m *Manager) ExitCode() (Code, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.interrupted {
		return Interrupted, codeDescriptions[Interrupted]
	}
	if m.configError {
		return Configuration, codeDescriptions[Configuration]
	}
	if m.audited == 0 {
		return Failures, "No URLs were audited"
	}
	if m.criticals > 0 {
		return Failures, fmt.Sprintf("%s (count: %d)", codeDescriptions[Failures], m.criticals)
	}
	return Success, codeDescriptions[Success]
}

// Stats returns the recorded critical-finding and failed-check counts.
func (m *Manager) Stats() (criticals, failures int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.criticals, m.failures
}

// CodeString returns the short name of an exit code.
func CodeString(code Code) string {
	if s, ok := codeStrings[code]; ok {
		return s
	}
	return fmt.Sprintf("unknown_code_%d", code)
}
