package finding

import "strings"

// Impact represents the severity of an accessibility finding.
// All values are lowercase strings matching the vocabularies the
// engines themselves emit, so serialized findings stay greppable
// against raw engine output.
type Impact string

const (
	// Critical represents a blocker for assistive-technology users
	// (missing alt text, broken ARIA, unlabeled form controls).
	Critical Impact = "critical"

	// Serious represents a significant barrier requiring prompt fix
	// (insufficient contrast, missing landmarks).
	Serious Impact = "serious"

	// Warning represents a check that likely fails but needs a human
	// to confirm.
	Warning Impact = "warning"

	// Notice represents an informational pointer to a best practice.
	Notice Impact = "notice"

	// None is used for passing records, which carry no impact.
	None Impact = "none"

	// Unknown is the fallback when an engine omits the impact field.
	Unknown Impact = "unknown"
)

// IsValid reports whether i is a recognized impact level.
func (i Impact) IsValid() bool {
	switch i {
	case Critical, Serious, Warning, Notice, None, Unknown:
		return true
	}
	return false
}

// Score returns a numeric score for sorting and comparison.
// Critical=5, Serious=4, Warning=3, Notice=2, None=1, Unknown=0.
func (i Impact) Score() int {
	switch i {
	case Critical:
		return 5
	case Serious:
		return 4
	case Warning:
		return 3
	case Notice:
		return 2
	case None:
		return 1
	default:
		return 0
	}
}

// String returns the impact as a string.
func (i Impact) String() string {
	return string(i)
}

// ImpactFromAxe maps an axe rule-group impact to the canonical enum.
// Axe reports "critical", "serious", "moderate", and "minor"; a null
// or absent impact maps to Unknown, never an error. The same policy
// applies to both engine paths so a missing impact is always Unknown.
func ImpactFromAxe(raw string) Impact {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "critical":
		return Critical
	case "serious":
		return Serious
	case "moderate":
		return Warning
	case "minor":
		return Notice
	case "":
		return Unknown
	default:
		return Unknown
	}
}

// ImpactFromIssueType maps a combined-runner issue type to the
// canonical enum: error->Critical, warning->Serious, notice->Notice.
func ImpactFromIssueType(raw string) Impact {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "error":
		return Critical
	case "warning":
		return Serious
	case "notice":
		return Notice
	default:
		return Unknown
	}
}
