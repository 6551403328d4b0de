// Package input resolves the audit target list from CLI flags, list
// files, and piped stdin.
package input

import (
	"bufio"
	"os"
	"strings"
)

// TargetSource consolidates every way a target URL can reach the
// auditor. Sources are merged in order (flag URLs, then the list
// file, then piped stdin), deduplicated, and normalized. Blank lines
// and #-comments are skipped so a target file can be annotated.
type TargetSource struct {
	URLs     []string // from -u flags, repeated or comma-separated
	ListFile string   // from -l flag, one URL per line
	Stdin    bool     // read piped targets from stdin
}

// GetTargets returns the deduplicated, normalized target list. An
// empty result is not an error here; the orchestrator decides what an
// empty run means.
func (ts *TargetSource) GetTargets() ([]string, error) {
	var targets []string
	seen := make(map[string]bool)

	add := func(raw string) {
		t := normalizeTarget(raw)
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		targets = append(targets, t)
	}

	for _, u := range ts.URLs {
		add(u)
	}

	if ts.ListFile != "" {
		lines, err := readTargetFile(ts.ListFile)
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			add(line)
		}
	}

	if ts.Stdin {
		lines, err := readPipedTargets()
		if err != nil {
			return nil, err
		}
		for _, line := range lines {
			add(line)
		}
	}

	return targets, nil
}

// normalizeTarget trims a raw target and prefixes https:// when no
// scheme is given. Comments and blank lines normalize to "".
func normalizeTarget(raw string) string {
	t := strings.TrimSpace(raw)
	if t == "" || strings.HasPrefix(t, "#") {
		return ""
	}
	if !strings.HasPrefix(t, "http://") && !strings.HasPrefix(t, "https://") {
		t = "https://" + t
	}
	return t
}

func readTargetFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// readPipedTargets reads stdin when it is a pipe. An interactive
// terminal yields nothing rather than blocking on user input.
func readPipedTargets() ([]string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, nil
	}

	var lines []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
