package engine

import "errors"

// Sentinel errors for check failure modes. Callers should use
// errors.Is() to check for these; the orchestrator converts them
// into a failed CheckOutcome with a remediation hint.
var (
	// ErrNavigationTimeout indicates the page did not load within the
	// configured deadline.
	ErrNavigationTimeout = errors.New("engine: navigation timeout")

	// ErrAnalysisTimeout indicates navigation succeeded but the
	// engine's analysis did not finish within the remaining budget.
	ErrAnalysisTimeout = errors.New("engine: analysis timeout")

	// ErrMalformedResult indicates the raw result is structurally
	// unusable (missing the top-level findings collection entirely).
	// Missing optional fields never produce this error; they degrade
	// to empty values during normalization.
	ErrMalformedResult = errors.New("engine: malformed engine result")
)

// RemediationHint returns a user-facing hint for a check failure, or
// the empty string when the error carries no standard remediation.
func RemediationHint(err error) string {
	switch {
	case errors.Is(err, ErrNavigationTimeout):
		return "check connectivity to the target, retry, or raise the page timeout"
	case errors.Is(err, ErrAnalysisTimeout):
		return "the page may be too large for the analysis budget; raise the check timeout"
	default:
		return ""
	}
}
