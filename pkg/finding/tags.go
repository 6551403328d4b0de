package finding

import "strings"

// compliancePrefix is the naming convention for compliance-standard
// tags attached to engine rules (wcag2a, wcag2aa, wcag21aa, wcag143,
// ...). Engines also attach category tags like "cat.color" and
// "best-practice"; those are dropped, not errored.
const compliancePrefix = "wcag"

// IsComplianceTag reports whether tag identifies a compliance
// standard rather than an engine-internal category.
func IsComplianceTag(tag string) bool {
	return strings.HasPrefix(strings.ToLower(tag), compliancePrefix)
}

// ComplianceTags filters a rule's full tag set down to compliance
// tags, preserving the engine's original order. Returns nil when no
// tag matches.
func ComplianceTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		if IsComplianceTag(t) {
			out = append(out, t)
		}
	}
	return out
}
