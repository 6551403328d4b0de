// Package config parses the CLI flag surface and the optional YAML
// config file into one resolved configuration.
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/a11yaudit/a11yaudit/pkg/duration"
	"github.com/a11yaudit/a11yaudit/pkg/engine"
	"github.com/a11yaudit/a11yaudit/pkg/input"
	"github.com/a11yaudit/a11yaudit/pkg/normalize"
)

// Config holds all CLI configuration options.
type Config struct {
	// Target settings
	URLs     input.StringSliceFlag // Target URL(s) to audit
	ListFile string                // File containing target URLs
	Stdin    bool                  // Read targets piped to stdin

	// Engine settings
	Engine string   // axe or pa11y
	Tags   []string // Compliance tags restricting checks

	// Check settings
	Timeout        time.Duration // Per-check budget (navigation + analysis)
	Wait           time.Duration // Pre-analysis stabilization delay
	ViewportWidth  int
	ViewportHeight int
	Headless       bool
	ChromiumPath   string // Browser binary override

	// Output settings
	OutputDir     string // Report directory
	JSONReport    bool   // Write JSON report alongside CSV
	ExcelCSV      bool   // UTF-8 BOM on CSV output
	IncludePasses bool   // Include passing records
	IncludeReview bool   // Include needs-review records (on by default)
	Verbose       bool
	Silent        bool
	NoColor       bool
}

// fileConfig is the YAML config file shape. Flags given explicitly on
// the command line win over file values.
type fileConfig struct {
	URLs           []string `yaml:"urls"`
	Engine         string   `yaml:"engine"`
	Tags           []string `yaml:"tags"`
	TimeoutSec     int      `yaml:"timeout"`
	WaitMS         int      `yaml:"wait"`
	ViewportWidth  int      `yaml:"viewportWidth"`
	ViewportHeight int      `yaml:"viewportHeight"`
	Headless       *bool    `yaml:"headless"`
	OutputDir      string   `yaml:"outputDir"`
	JSONReport     *bool    `yaml:"jsonReport"`
	IncludePasses  *bool    `yaml:"includePasses"`
	IncludeReview  *bool    `yaml:"includeNotices"`
}

// ParseFlags parses command line arguments and the optional config
// file, returning the resolved Config and the target URL list. A
// single positional argument overrides the configured URL list,
// restricting the run to that one URL.
func ParseFlags() (*Config, []string, error) {
	cfg := defaultConfig()

	var tags input.StringSliceFlag
	var configFile string
	timeoutSec := flag.Int("timeout", int(duration.CheckBudget/time.Second), "Per-check timeout in seconds")
	waitMS := flag.Int("wait", int(duration.StabilizeWait/time.Millisecond), "Stabilization wait in milliseconds")

	// === INPUT ===
	flag.Var(&cfg.URLs, "u", "Target URL(s) - comma-separated or repeated")
	flag.Var(&cfg.URLs, "url", "Target URL(s) (alias)")
	flag.StringVar(&cfg.ListFile, "l", "", "File containing target URLs")
	flag.BoolVar(&cfg.Stdin, "stdin", false, "Read target URLs from stdin")
	flag.StringVar(&configFile, "config", "", "YAML config file")

	// === ENGINE ===
	flag.StringVar(&cfg.Engine, "engine", string(engine.Axe), "Engine: axe or pa11y")
	flag.StringVar(&cfg.Engine, "e", string(engine.Axe), "Engine (alias)")
	flag.Var(&tags, "tags", "Compliance tags (e.g., wcag2a,wcag2aa)")
	flag.Var(&tags, "t", "Compliance tags (alias)")

	// === CHECK ===
	flag.IntVar(&cfg.ViewportWidth, "width", cfg.ViewportWidth, "Viewport width")
	flag.IntVar(&cfg.ViewportHeight, "height", cfg.ViewportHeight, "Viewport height")
	flag.BoolVar(&cfg.Headless, "headless", true, "Run the browser headless")
	flag.StringVar(&cfg.ChromiumPath, "browser", "", "Browser binary path override")

	// === OUTPUT ===
	flag.StringVar(&cfg.OutputDir, "output", cfg.OutputDir, "Report directory")
	flag.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Report directory (alias)")
	flag.BoolVar(&cfg.JSONReport, "json", false, "Write JSON report alongside CSV")
	flag.BoolVar(&cfg.ExcelCSV, "excel", false, "Excel-compatible CSV (UTF-8 BOM)")
	flag.BoolVar(&cfg.IncludePasses, "include-passes", false, "Include passing records")
	flag.BoolVar(&cfg.IncludeReview, "include-notices", true, "Include needs-review records")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose (alias)")
	flag.BoolVar(&cfg.Silent, "silent", false, "Silent mode - no progress")
	flag.BoolVar(&cfg.Silent, "s", false, "Silent (alias)")
	flag.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&cfg.NoColor, "nc", false, "No color (alias)")

	flag.Parse()

	cfg.Timeout = time.Duration(*timeoutSec) * time.Second
	cfg.Wait = time.Duration(*waitMS) * time.Millisecond
	if len(tags) > 0 {
		cfg.Tags = tags
	}

	if configFile != "" {
		if err := cfg.applyFile(configFile); err != nil {
			return nil, nil, err
		}
	}

	if !engine.Tag(cfg.Engine).IsValid() {
		return nil, nil, fmt.Errorf("%w: unknown engine %q", ErrInvalidConfig, cfg.Engine)
	}
	if cfg.OutputDir == "" {
		return nil, nil, fmt.Errorf("%w: output directory", ErrMissingRequired)
	}

	urls, err := cfg.resolveTargets(flag.Args())
	if err != nil {
		return nil, nil, err
	}
	return cfg, urls, nil
}

func defaultConfig() *Config {
	opts := engine.DefaultOptions()
	return &Config{
		Engine:         string(engine.Axe),
		Tags:           opts.Tags,
		Timeout:        opts.Timeout,
		Wait:           opts.Wait,
		ViewportWidth:  opts.ViewportWidth,
		ViewportHeight: opts.ViewportHeight,
		Headless:       opts.Headless,
		OutputDir:      "reports",
	}
}

// applyFile merges file values into cfg. File URLs extend the flag
// URLs; scalar file values apply only where the flag kept its default,
// approximated by overwriting with non-zero file values.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrInvalidConfig, path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
	}

	c.URLs = append(c.URLs, fc.URLs...)
	if fc.Engine != "" {
		c.Engine = fc.Engine
	}
	if len(fc.Tags) > 0 {
		c.Tags = fc.Tags
	}
	if fc.TimeoutSec > 0 {
		c.Timeout = time.Duration(fc.TimeoutSec) * time.Second
	}
	if fc.WaitMS > 0 {
		c.Wait = time.Duration(fc.WaitMS) * time.Millisecond
	}
	if fc.ViewportWidth > 0 {
		c.ViewportWidth = fc.ViewportWidth
	}
	if fc.ViewportHeight > 0 {
		c.ViewportHeight = fc.ViewportHeight
	}
	if fc.Headless != nil {
		c.Headless = *fc.Headless
	}
	if fc.OutputDir != "" {
		c.OutputDir = fc.OutputDir
	}
	if fc.JSONReport != nil {
		c.JSONReport = *fc.JSONReport
	}
	if fc.IncludePasses != nil {
		c.IncludePasses = *fc.IncludePasses
	}
	if fc.IncludeReview != nil {
		c.IncludeReview = *fc.IncludeReview
	}
	return nil
}

// resolveTargets builds the final URL list. A positional argument
// restricts the run to that single URL regardless of configured
// lists.
func (c *Config) resolveTargets(args []string) ([]string, error) {
	if len(args) > 1 {
		return nil, fmt.Errorf("%w: at most one positional URL accepted, got %d", ErrInvalidConfig, len(args))
	}
	if len(args) == 1 {
		ts := &input.TargetSource{URLs: []string{args[0]}}
		return ts.GetTargets()
	}

	ts := &input.TargetSource{
		URLs:     c.URLs,
		ListFile: c.ListFile,
		Stdin:    c.Stdin,
	}
	return ts.GetTargets()
}

// EngineTag returns the configured engine as a typed tag.
func (c *Config) EngineTag() engine.Tag {
	return engine.Tag(c.Engine)
}

// NormalizeOptions converts the record-type toggles into normalizer
// options.
func (c *Config) NormalizeOptions() normalize.Options {
	return normalize.Options{
		IncludePasses:      c.IncludePasses,
		IncludeNeedsReview: c.IncludeReview,
	}
}

// EngineOptions converts the configuration into the runner option
// bundle.
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		Tags:           c.Tags,
		Timeout:        c.Timeout,
		Wait:           c.Wait,
		ViewportWidth:  c.ViewportWidth,
		ViewportHeight: c.ViewportHeight,
		Headless:       c.Headless,
	}
}
