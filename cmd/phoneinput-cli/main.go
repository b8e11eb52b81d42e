package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goliatone/go-phoneinput/components/countries"
	"github.com/goliatone/go-phoneinput/components/phoneinput"
	"github.com/goliatone/go-phoneinput/pkg/renderers/tui"
)

func main() {
	configPath := flag.String("config", "", "YAML field configuration file")
	country := flag.String("country", "", "initial country abbreviation (overrides config)")
	label := flag.String("label", "", "field label (overrides config)")
	value := flag.String("value", "", "initial phone value")
	required := flag.Bool("required", false, "require a phone number")
	regions := flag.String("regions", "", "file listing selectable region codes, one per line (overrides config)")
	format := flag.String("format", string(tui.OutputFormatJSON), "output format: json, form or pretty")
	serve := flag.String("serve", "", "serve the field and the country directory on this address instead of prompting")
	env := flag.String("env", "production", "environment; development enables debug text logs")
	flag.Parse()

	logger := newLogger(*env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("load config", slog.String("path", *configPath), slog.Any("error", err))
		os.Exit(1)
	}
	applyFlags(&cfg, *country, *label, *value, *required)
	if err := applyRegionsFile(&cfg, *regions); err != nil {
		logger.Error("load regions", slog.String("path", *regions), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Debug("field configured",
		slog.String("label", cfg.Label),
		slog.String("country", cfg.Country),
		slog.Bool("required", cfg.Required),
	)

	if *serve != "" {
		if err := runServer(ctx, logger, *serve, cfg); err != nil {
			logger.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	field := phoneinput.New(cfg.Options()...)
	defer field.Unmount()

	renderer := tui.New(tui.WithOutputFormat(tui.OutputFormat(*format)))
	out, err := renderer.Render(ctx, field)
	if err != nil {
		logger.Error("prompt failed", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(strings.TrimRight(string(out), "\n"))
}

func loadConfig(path string) (phoneinput.Config, error) {
	if strings.TrimSpace(path) == "" {
		return phoneinput.Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return phoneinput.Config{}, err
	}
	defer func() { _ = f.Close() }()
	return phoneinput.LoadConfig(f)
}

func applyFlags(cfg *phoneinput.Config, country, label, value string, required bool) {
	if country != "" {
		cfg.Country = country
	}
	if label != "" {
		cfg.Label = label
	}
	if value != "" {
		cfg.Value = &value
	}
	if required {
		cfg.Required = true
	}
}

// applyRegionsFile restricts the country list to the regions read from path.
func applyRegionsFile(cfg *phoneinput.Config, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	regions, err := countries.LoadRegions(f)
	if err != nil {
		return err
	}
	if len(regions) == 0 {
		return fmt.Errorf("no regions in %s", path)
	}
	cfg.Regions = regions
	return nil
}

func newLogger(env string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if strings.EqualFold(env, "development") {
		opts.Level = slog.LevelDebug
		return slog.New(slog.NewTextHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, opts))
}
