package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"atrisure/internal/catalog"
	"atrisure/internal/config"
	"atrisure/internal/export"
	"atrisure/internal/telemetry"
	"atrisure/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"
)

// options are the command-line overrides layered on config.Config.
type options struct {
	cfg         config.Config
	noAltScreen bool
}

func parseFlags(cfg config.Config) options {
	opts := options{cfg: cfg}

	flag.StringVar(&opts.cfg.ExportDir, "export-dir", cfg.ExportDir, "directory CSV exports are written to")
	flag.StringVar(&opts.cfg.DefaultModule, "module", cfg.DefaultModule, "module shown at startup")
	flag.StringVar(&opts.cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	flag.StringVar(&opts.cfg.LogFile, "log-file", cfg.LogFile, "file structured logs are appended to")
	flag.StringVar(&opts.cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP endpoint; empty disables tracing")
	flag.BoolVar(&opts.noAltScreen, "no-alt-screen", false, "render inline instead of using the alternate screen")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: atrisure [flags]\n\n")
		fmt.Fprintf(os.Stderr, "AtriSure Nexus is a terminal workspace for insurance brokers.\n")
		fmt.Fprintf(os.Stderr, "Settings also come from ATRISURE_* environment variables.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return opts
}

// openLogger points slog at a file; the terminal belongs to the UI.
func openLogger(cfg config.Config) (*slog.Logger, func() error, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(export.ExpandHome(cfg.LogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, f.Close, nil
}

func run(opts options) error {
	logger, closeLog, err := openLogger(opts.cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	slog.SetDefault(logger)

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{
		Endpoint:    opts.cfg.OTelEndpoint,
		ServiceName: opts.cfg.OTelService,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown", "err", err)
		}
	}()

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	store, err := export.NewStore(opts.cfg.ExportDir)
	if err != nil {
		return err
	}
	logger.Info("starting", "module", opts.cfg.DefaultModule, "exports", store.BaseDir(), "tracing", opts.cfg.OTelEndpoint != "")

	model := ui.NewAppModel(ui.Options{
		Catalog:       cat,
		Exports:       store,
		DefaultModule: opts.cfg.DefaultModule,
		Logger:        logger,
	}).WithContext(ctx)

	var progOpts []tea.ProgramOption
	if !opts.noAltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model.AsTeaModel(), progOpts...).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := run(parseFlags(cfg)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
