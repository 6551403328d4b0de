package runner

import (
	"strings"
	"testing"

	"github.com/a11yaudit/a11yaudit/pkg/engine"
)

func TestForEngine(t *testing.T) {
	t.Parallel()

	r, err := ForEngine(engine.Axe, Config{})
	if err != nil {
		t.Fatalf("ForEngine(axe) error = %v", err)
	}
	if r.Engine() != engine.Axe {
		t.Fatalf("Engine() = %s, want axe", r.Engine())
	}

	r, err = ForEngine(engine.Pa11y, Config{})
	if err != nil {
		t.Fatalf("ForEngine(pa11y) error = %v", err)
	}
	if r.Engine() != engine.Pa11y {
		t.Fatalf("Engine() = %s, want pa11y", r.Engine())
	}

	if _, err := ForEngine(engine.Tag("lighthouse"), Config{}); err == nil {
		t.Fatal("unknown engine should error")
	}
}

func TestBuildAxeRunJS(t *testing.T) {
	t.Parallel()

	js, err := buildAxeRunJS([]string{"wcag2a", "wcag2aa"})
	if err != nil {
		t.Fatalf("buildAxeRunJS() error = %v", err)
	}
	if !strings.Contains(js, `runOnly`) {
		t.Fatalf("tagged run should restrict rules: %s", js)
	}
	if !strings.Contains(js, `"wcag2a"`) || !strings.Contains(js, `"wcag2aa"`) {
		t.Fatalf("tags missing from run options: %s", js)
	}

	js, err = buildAxeRunJS(nil)
	if err != nil {
		t.Fatalf("buildAxeRunJS(nil) error = %v", err)
	}
	if strings.Contains(js, "runOnly") {
		t.Fatalf("untagged run should use engine defaults: %s", js)
	}
}

func TestStandardFromTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tags []string
		want string
	}{
		{nil, "WCAG2AA"},
		{[]string{"wcag2a"}, "WCAG2A"},
		{[]string{"wcag2a", "wcag2aa"}, "WCAG2AA"},
		{[]string{"wcag2aaa", "wcag2a"}, "WCAG2AAA"},
		{[]string{"section508"}, "WCAG2AA"},
		{[]string{"WCAG2AA"}, "WCAG2AA"},
	}
	for _, tt := range tests {
		if got := standardFromTags(tt.tags); got != tt.want {
			t.Errorf("standardFromTags(%v) = %q, want %q", tt.tags, got, tt.want)
		}
	}
}

func TestConfigWithDefaults(t *testing.T) {
	t.Parallel()

	cfg := Config{}.withDefaults()
	if cfg.AxeScriptURL == "" || cfg.HTMLCSScriptURL == "" {
		t.Fatal("defaults should pin both script URLs")
	}

	custom := Config{AxeScriptURL: "file:///opt/axe.min.js"}.withDefaults()
	if custom.AxeScriptURL != "file:///opt/axe.min.js" {
		t.Fatal("explicit script URL should be preserved")
	}
}
