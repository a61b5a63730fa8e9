package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tender/internal/commands"
	"github.com/colonyops/tender/internal/core/config"
	"github.com/colonyops/tender/internal/core/logging"
	"github.com/colonyops/tender/internal/core/notify"
	"github.com/colonyops/tender/internal/core/rfp"
	"github.com/colonyops/tender/internal/core/styles"
	"github.com/colonyops/tender/internal/data/db"
	"github.com/colonyops/tender/internal/data/stores"
	"github.com/colonyops/tender/internal/printer"
	"github.com/colonyops/tender/internal/tender"
	"github.com/colonyops/tender/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		tenderApp = &tender.App{}
		database  *db.DB
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "tender",
		Usage:     "Procurement workbench for RFPs, applicants and contracts",
		UsageText: "tender [global options] command [command options]",
		Description: `Tender lists requests for proposal, tracks the vendors bidding on them,
compares RFPs side by side and exports the comparison to a spreadsheet.

Every change is recorded in a local activity log. Document links, login and
the query assistant talk to the hosted backend configured under backend.url.

Run 'tender' with no arguments to open the interactive workbench.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("TENDER_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/tender.log, '-' for stderr)",
				Sources:     cli.EnvVars("TENDER_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("TENDER_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("TENDER_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logFile := flags.LogFile
			if logFile == "" {
				logFile = (&config.Config{DataDir: flags.DataDir}).LogFile()
			}

			logger, closer, err := logutils.New(flags.LogLevel, logFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger.Hook(logging.ContextHook{})
			logCloser = closer

			// 'config validate' reports problems itself, so it gets the
			// unvalidated config.
			load := config.Load
			if c.Args().First() == "config" {
				load = config.Parse
			}
			cfg, err := load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			palette, ok := styles.GetPalette(cfg.TUI.Theme)
			if !ok {
				palette, _ = styles.GetPalette(styles.DefaultTheme)
			}
			styles.SetTheme(palette)

			dbOpts := db.OpenOptions{
				MaxOpenConns: cfg.Database.MaxOpenConns,
				MaxIdleConns: cfg.Database.MaxIdleConns,
				BusyTimeout:  cfg.Database.BusyTimeout,
			}
			p := printer.New(c.Root().Writer, c.Root().ErrWriter)

			var backup string
			database, backup, err = stores.OpenDB(cfg.DataDir, dbOpts)
			if err != nil {
				return ctx, fmt.Errorf("open database: %w", err)
			}
			if backup != "" {
				log.Warn().Str("backup", backup).Msg("database was corrupt, started a fresh one")
				p.Warnf("The database was unreadable and has been reset; the old file was kept at %s", backup)
			}

			bus := notify.NewBus(stores.NewNotifyStore(database))

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*tenderApp = *tender.NewApp(
				cfg,
				database,
				rfp.SeedCatalog(),
				stores.NewActivityStore(database),
				bus,
			)

			ctx = printer.NewContext(ctx, p)
			ctx = logging.WithUser(ctx, tenderApp.Auth.CurrentUser())
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if database != nil {
				if err := database.Close(); err != nil {
					log.Error().Err(err).Msg("failed to close database")
					return err
				}
			}

			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, tenderApp)

	app = tuiCmd.Register(app)
	app = commands.NewRFPsCmd(flags, tenderApp).Register(app)
	app = commands.NewCompareCmd(flags, tenderApp).Register(app)
	app = commands.NewCatalogCmd(flags, tenderApp).Register(app)
	app = commands.NewActivityCmd(flags, tenderApp).Register(app)
	app = commands.NewLinksCmd(flags, tenderApp).Register(app)
	app = commands.NewAuthCmd(flags, tenderApp).Register(app)
	app = commands.NewAskCmd(flags, tenderApp).Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)

	// Register TUI flags on root command
	app.Flags = append(app.Flags, tuiCmd.Flags()...)

	// Set TUI as default action when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'tender --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
