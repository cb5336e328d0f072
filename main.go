package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/hay-kot/popwire/internal/commands"
	"github.com/hay-kot/popwire/internal/core/config"
	"github.com/hay-kot/popwire/internal/interop"
	"github.com/hay-kot/popwire/internal/printer"
	"github.com/hay-kot/popwire/internal/store/jsonfile"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info", ""); err != nil {
		panic(err)
	}

	var (
		p     = printer.New(os.Stderr)
		ctx   = printer.NewContext(context.Background(), p)
		flags = &commands.Flags{}
	)

	app := &cli.Command{
		Name:      "popwire",
		Usage:     "Build, check and project popup dialog options",
		UsageText: "popwire [global options] command [command options]",
		Description: `Popwire turns popup option presets into the wire records a dialog engine
consumes. Callbacks never cross the wire: the record only says which ones
exist, and popwire keeps the callables on this side.

Run 'popwire project presets/*.yaml' to print projected records.
Run 'popwire fields' to browse every option the engine understands.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("POPWIRE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to a rotated log file (optional)",
				Sources:     cli.EnvVars("POPWIRE_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("POPWIRE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := setupLogger(flags.LogLevel, flags.LogFile); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			flags.Registry = interop.New(
				log.With().Str("component", "interop").Logger(),
				interop.Config{
					GateTimeout: cfg.Interop.GateTimeout,
					EntryTTL:    cfg.Interop.EntryTTL,
				},
			)

			journalPath := cfg.Journal.Path
			if journalPath == "" {
				journalPath = commands.DefaultJournalPath()
			}
			flags.Journal = jsonfile.NewJournalStore(journalPath, cfg.Journal.MaxEntries)
			return ctx, nil
		},
	}

	app = commands.NewProjectCmd(flags).Register(app)
	app = commands.NewLintCmd(flags).Register(app)
	app = commands.NewDiffCmd(flags).Register(app)
	app = commands.NewResolveCmd(flags).Register(app)
	app = commands.NewJournalCmd(flags).Register(app)
	app = commands.NewFieldsCmd(flags).Register(app)
	app = commands.NewNewCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)
	app = commands.NewConfigCmd(flags).Register(app)

	exitCode := 0
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		printer.Ctx(ctx).FatalError(err)
		exitCode = 1
	}

	os.Exit(exitCode)
}

func setupLogger(level string, logFile string) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		// Create log directory if it doesn't exist
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		// Write to both console and the rotated file
		output = io.MultiWriter(
			zerolog.ConsoleWriter{Out: os.Stderr},
			&lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			},
		)
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}
