package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/zliel/rsmd"
	"github.com/zliel/rsmd/site"
)

const appVersion = "1.2.0"

func main() {
	var (
		outputDir   string
		configPath  string
		themeName   string
		recursive   bool
		watch       bool
		listThemes  bool
		verbose     bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("rsmd", pflag.ExitOnError)
	flags.StringVarP(&outputDir, "output", "o", "./output", "Output directory for the generated site")
	flags.StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVarP(&themeName, "theme", "t", "", "Built-in theme name (overrides config)")
	flags.BoolVarP(&recursive, "recursive", "r", false, "Recurse into subdirectories of the input")
	flags.BoolVar(&watch, "watch", false, "Rebuild whenever the input directory changes")
	flags.BoolVar(&listThemes, "list-themes", false, "List available themes")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&showVersion, "version", false, "Print version and exit")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "rsmd %s\n", appVersion)
		fmt.Fprintln(os.Stderr, "Usage: rsmd [flags] <input-dir>")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if showVersion {
		fmt.Println("rsmd", appVersion)
		return
	}
	if listThemes {
		for _, name := range rsmd.AvailableThemes() {
			fmt.Println(name)
		}
		return
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	args := flags.Args()
	if len(args) != 1 {
		flags.Usage()
		os.Exit(2)
	}
	inputDir := args[0]

	cfg, err := rsmd.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(2)
	}
	if themeName != "" {
		if _, ok := rsmd.ThemeByName(themeName); !ok {
			fmt.Fprintf(os.Stderr, "unknown theme %q; available: %v\n", themeName, rsmd.AvailableThemes())
			os.Exit(2)
		}
		cfg.HTML.Theme = themeName
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	builder := site.NewBuilder(cfg, recursive, logger)
	if watch {
		err = builder.Watch(ctx, inputDir, outputDir)
	} else {
		err = builder.Build(ctx, inputDir, outputDir)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "build: %v\n", err)
		os.Exit(1)
	}
}
