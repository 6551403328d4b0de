package ui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Version information - these can be overridden at build time via ldflags:
// go build -ldflags "-X github.com/a11yaudit/a11yaudit/pkg/ui.Version=1.0.0"
var (
	Version   = "1.4.2"
	BuildDate = "2026-08-12"
	Commit    = "dev"
)

// Global UI state
var (
	silentMode  bool
	noColorMode bool
	uiMu        sync.RWMutex
)

// SetSilent enables or disables silent mode (suppresses most output)
func SetSilent(silent bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	silentMode = silent
}

// IsSilent returns whether silent mode is enabled
func IsSilent() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return silentMode
}

// SetNoColor disables colored output
func SetNoColor(noColor bool) {
	uiMu.Lock()
	defer uiMu.Unlock()
	noColorMode = noColor
	if noColor {
		// Use ASCII profile to disable colors
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// IsNoColor returns whether color is disabled
func IsNoColor() bool {
	uiMu.RLock()
	defer uiMu.RUnlock()
	return noColorMode
}

// ASCII art banner - nuclei/httpx inspired design
const bannerArt = `
        ___ ___                          __ _ __
  ____ <  <  / __  ______ ___  ______ _/ /(_) /_
 / __ ` + "`" + `/ / / / / / / / __ ` + "`" + `/ / / / __ ` + "`" + `/ __/ / __/
/ /_/ / / / / /_/ / / /_/ / /_/ / /_/ / /_/ / /_
\__,_/_/_/_/\__, (_)__,_/\__,_/\__,_/\__/_/\__/
           /____/
`

// Separator line
const bannerSeparator = "________________________________________________"

// PrintBanner prints the httpx/nuclei-style application banner with version info
func PrintBanner() {
	if IsSilent() {
		return
	}
	lines := strings.Split(bannerArt, "\n")
	for _, line := range lines {
		if line != "" {
			fmt.Fprintln(os.Stderr, BannerStyle.Render(line))
		}
	}
	fmt.Fprintf(os.Stderr, "                    v%s\n\n", VersionStyle.Render(Version))
}

// printOption prints a configuration option in ffuf/nuclei style
// Format:  :: Option              : Value
func printOption(name, value string) {
	fmt.Fprintf(os.Stderr, " :: %-20s : %s\n", ConfigLabelStyle.Render(name), ConfigValueStyle.Render(value))
}

// PrintConfigBanner prints the configuration banner like ffuf/nuclei.
// This shows all the current settings before the audit starts.
// Uses ordered keys for consistent display.
func PrintConfigBanner(options map[string]string) {
	if IsSilent() {
		return
	}

	order := []string{
		"Targets", "Engine", "Tags", "Timeout", "Wait",
		"Viewport", "Headless", "Output", "Include Passes", "Include Notices",
	}

	printed := make(map[string]bool)
	for _, name := range order {
		if value, ok := options[name]; ok && value != "" {
			printOption(name, value)
			printed[name] = true
		}
	}
	for name, value := range options {
		if !printed[name] && value != "" {
			printOption(name, value)
		}
	}

	fmt.Fprintf(os.Stderr, "%s\n\n", DividerStyle.Render(bannerSeparator))
}

// PrintSuccess prints a success message (to stderr)
func PrintSuccess(message string) {
	if IsSilent() {
		return
	}
	fmt.Fprintln(os.Stderr, PassStyle.Render("  [+] "+message))
}

// PrintError prints an error message (to stderr)
func PrintError(message string) {
	fmt.Fprintln(os.Stderr, FailStyle.Render("  [X] "+message))
}

// PrintWarning prints a warning message (to stderr)
func PrintWarning(message string) {
	fmt.Fprintln(os.Stderr, WarnStyle.Render("  [!] "+message))
}

// PrintInfo prints an info message (to stderr)
func PrintInfo(message string) {
	if IsSilent() {
		return
	}
	fmt.Fprintf(os.Stderr, "  %s %s\n", BracketStyle.Render("*"), message)
}
