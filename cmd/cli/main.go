package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/a11yaudit/a11yaudit/pkg/audit"
	"github.com/a11yaudit/a11yaudit/pkg/config"
	"github.com/a11yaudit/a11yaudit/pkg/output"
	"github.com/a11yaudit/a11yaudit/pkg/output/exitcode"
	"github.com/a11yaudit/a11yaudit/pkg/output/writers"
	"github.com/a11yaudit/a11yaudit/pkg/runner"
	"github.com/a11yaudit/a11yaudit/pkg/ui"
)

func main() {
	cfg, urls, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERR] Configuration error: %v\n", err)
		os.Exit(int(exitcode.Configuration))
	}

	ui.SetSilent(cfg.Silent)
	if cfg.NoColor {
		ui.SetNoColor(true)
	}

	if !cfg.Silent {
		ui.PrintBanner()
		printConfig(cfg, urls)
	}

	checkRunner, err := runner.ForEngine(cfg.EngineTag(), runner.Config{
		ChromiumPath: cfg.ChromiumPath,
	})
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(int(exitcode.Configuration))
	}

	// Graceful shutdown: first interrupt cancels the URL loop, the
	// deferred browser teardown still runs.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr)
		ui.PrintWarning("Interrupt received, shutting down gracefully...")
		cancel()
	}()

	presenter := ui.NewDetailPresenter(os.Stdout)
	presenter.Verbose = cfg.Verbose

	orch := &audit.Orchestrator{
		Runner:    checkRunner,
		Options:   cfg.EngineOptions(),
		Normalize: cfg.NormalizeOptions(),
		Store: &output.Store{
			Dir:   cfg.OutputDir,
			RunID: audit.NewRunID(),
			CSVOpts: writers.CSVOptions{
				ExcelCompatible:  cfg.ExcelCSV,
				SanitizeFormulas: true,
			},
			JSON: cfg.JSONReport,
		},
		Presenter: presenter,
		Exit:      exitcode.New(),
	}

	outcomes, code, reason := orch.Run(ctx, urls)
	for _, outcome := range outcomes {
		if !outcome.Failed() {
			ui.PrintInfo("Reports written to " + cfg.OutputDir)
			break
		}
	}
	if reason != "" && !cfg.Silent {
		if code == exitcode.Success {
			ui.PrintSuccess(reason)
		} else {
			ui.PrintError(reason)
		}
	}
	os.Exit(int(code))
}

func printConfig(cfg *config.Config, urls []string) {
	options := map[string]string{
		"Targets":  fmt.Sprintf("%d", len(urls)),
		"Engine":   cfg.Engine,
		"Tags":     strings.Join(cfg.Tags, ", "),
		"Timeout":  cfg.Timeout.String(),
		"Wait":     cfg.Wait.String(),
		"Viewport": fmt.Sprintf("%dx%d", cfg.ViewportWidth, cfg.ViewportHeight),
		"Headless": fmt.Sprintf("%t", cfg.Headless),
		"Output":   cfg.OutputDir,
	}
	if len(urls) == 1 {
		options["Targets"] = urls[0]
	}
	if cfg.IncludePasses {
		options["Include Passes"] = "true"
	}
	if !cfg.IncludeReview {
		options["Include Notices"] = "false"
	}
	ui.PrintConfigBanner(options)
}
