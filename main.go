// minifetch prints a short, colorized summary of the host: user@host, OS,
// architecture, kernel, uptime, package counts, shell, memory and CPU.
//
// Usage:
//
//	minifetch [flags]
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/minifetch/config.toml)
//	-color string   Override the color mode (auto|always|never)
//	-theme string   Override the theme name
//	-print-config   Print the effective configuration as TOML and exit
//	-list-themes    List the built-in themes and exit
//	-verbose        Enable debug logging
//	-version        Print version and exit
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/tinyland/lab/minifetch/pkg/components"
	"gitlab.com/tinyland/lab/minifetch/pkg/config"
	"gitlab.com/tinyland/lab/minifetch/pkg/packages"
	"gitlab.com/tinyland/lab/minifetch/pkg/summary"
	"gitlab.com/tinyland/lab/minifetch/pkg/sysinfo"
	"gitlab.com/tinyland/lab/minifetch/pkg/theme"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		colorMode   = flag.String("color", "", "Override the color mode (auto|always|never)")
		themeName   = flag.String("theme", "", "Override the theme name")
		printConfig = flag.Bool("print-config", false, "Print the effective configuration as TOML and exit")
		listThemes  = flag.Bool("list-themes", false, "List the built-in themes and exit")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("minifetch %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *listThemes {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	// Diagnostics go to stderr; stdout carries only the summary.
	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *colorMode != "" {
		cfg.Color = config.ColorMode(*colorMode)
	}
	if *themeName != "" {
		cfg.Theme = *themeName
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	if *printConfig {
		if err := config.Encode(os.Stdout, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode config: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Cancel running package managers on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("failed to print summary", "err", err)
		stop()
		os.Exit(1)
	}
}

func loadConfig(path string, logger *slog.Logger) (*config.Config, error) {
	if path != "" {
		logger.Debug("loading config", "path", path)
		return config.LoadFromFile(path)
	}
	return config.Load(logger)
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	src := summary.Sources{
		System: sysinfo.NewReader(),
		Packages: packages.NewCounter(logger,
			packages.WithTimeout(cfg.Packages.Timeout.Duration)),
		Logger: logger,
	}
	order := cfg.Order()
	snap := summary.Collect(ctx, src, order)
	lines := summary.Lines(snap, order, cfg.SummaryOptions())

	r := components.NewRenderer(os.Stdout, cfg.Color)
	printer := components.NewPrinter(
		components.NewStyles(r, resolveTheme(cfg, logger)),
		components.PrintOptions{Align: cfg.Align, Separator: cfg.Title.Separator},
	)
	return printer.Fprint(os.Stdout, lines)
}

// resolveTheme returns the theme file's palette when one is configured,
// otherwise the named built-in. Problems fall back to the default theme.
func resolveTheme(cfg *config.Config, logger *slog.Logger) theme.Theme {
	if cfg.ThemeFile != "" {
		t, err := theme.LoadFile(cfg.ThemeFile)
		if err == nil {
			return t
		}
		logger.Warn("failed to load theme file", "path", cfg.ThemeFile, "err", err)
	}
	t, ok := theme.Lookup(cfg.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Theme, "available", theme.Names())
		return theme.Get(theme.DefaultName)
	}
	return t
}
