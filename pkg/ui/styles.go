package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/a11yaudit/a11yaudit/pkg/finding"
)

// Color palette inspired by top security tools
var (
	// Brand colors
	Primary   = lipgloss.Color("#7D56F4") // Purple - brand color
	Secondary = lipgloss.Color("#00D4AA") // Cyan/Teal

	// Severity colors (matching axe-core impact taxonomy)
	CriticalColor = lipgloss.Color("#FF0000") // Bright red
	SeriousColor  = lipgloss.Color("#FF6B6B") // Red/Orange
	WarningColor  = lipgloss.Color("#FFD93D") // Yellow
	NoticeColor   = lipgloss.Color("#4D96FF") // Blue
	PassColor     = lipgloss.Color("#6BCB77") // Green

	// Status colors
	Failure = lipgloss.Color("#FF3838") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray
)

// Pre-configured styles
var (
	BannerStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	VersionStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	ConfigLabelStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Width(15)

	ConfigValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FAFAFA"))

	StatLabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	StatValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	// Bracketed metadata (nuclei-style)
	BracketStyle = lipgloss.NewStyle().
			Foreground(Muted)

	PassStyle = lipgloss.NewStyle().
			Foreground(PassColor).
			Bold(true)

	FailStyle = lipgloss.NewStyle().
			Foreground(Failure).
			Bold(true)

	WarnStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	DividerStyle = lipgloss.NewStyle().
			Foreground(Muted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	URLStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Underline(true)

	RuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#3B3B4F")).
			Padding(0, 1)
)

// ImpactStyle returns the style for an impact level.
func ImpactStyle(impact finding.Impact) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch impact {
	case finding.Critical:
		return base.Foreground(CriticalColor)
	case finding.Serious:
		return base.Foreground(SeriousColor)
	case finding.Warning:
		return base.Foreground(WarningColor)
	case finding.Notice:
		return base.Foreground(NoticeColor)
	case finding.None:
		return base.Foreground(PassColor)
	default:
		return base.Foreground(Muted)
	}
}

// ImpactBadge returns the badge style for an impact level, used in
// per-finding detail lines.
func ImpactBadge(impact finding.Impact) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	switch impact {
	case finding.Critical:
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(CriticalColor)
	case finding.Serious:
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(SeriousColor)
	case finding.Warning:
		return base.Foreground(lipgloss.Color("#000000")).Background(WarningColor)
	case finding.Notice:
		return base.Foreground(lipgloss.Color("#FFFFFF")).Background(NoticeColor)
	default:
		return base.Foreground(Muted)
	}
}
