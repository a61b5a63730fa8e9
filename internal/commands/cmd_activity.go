package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/core/table"
	"github.com/colonyops/tender/internal/printer"
	"github.com/colonyops/tender/internal/tender"
	"github.com/colonyops/tender/pkg/iojson"
)

type ActivityCmd struct {
	flags *Flags
	app   *tender.App

	limit      int
	rfpID      string
	jsonOutput bool
	out        string
	yes        bool
}

type activityJSON struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	RFPID     string    `json:"rfp_id,omitempty"`
}

// NewActivityCmd creates the activity command group
func NewActivityCmd(flags *Flags, app *tender.App) *ActivityCmd {
	return &ActivityCmd{flags: flags, app: app}
}

// Register adds the activity command to the application
func (cmd *ActivityCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "activity",
		Usage: "Inspect and export the activity log",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List recent activity, newest first",
				UsageText: "tender activity ls [--limit N] [--rfp ID] [--json]",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "limit",
						Aliases:     []string{"n"},
						Usage:       "maximum entries to show (0 for all)",
						Value:       20,
						Destination: &cmd.limit,
					},
					&cli.StringFlag{
						Name:        "rfp",
						Usage:       "only show entries recorded against this RFP",
						Destination: &cmd.rfpID,
					},
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:      "export",
				Usage:     "Write the activity log to activity_log.csv",
				UsageText: "tender activity export [--out dir]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "out",
						Aliases:     []string{"o"},
						Usage:       "directory for the CSV file (defaults to export.dir)",
						Destination: &cmd.out,
					},
				},
				Action: cmd.runExport,
			},
			{
				Name:      "clear",
				Usage:     "Delete every activity entry",
				UsageText: "tender activity clear [--yes]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "yes",
						Aliases:     []string{"y"},
						Usage:       "skip the confirmation prompt",
						Destination: &cmd.yes,
					},
				},
				Action: cmd.runClear,
			},
		},
	})
	return app
}

func (cmd *ActivityCmd) entries(ctx context.Context) ([]activity.Entry, error) {
	if cmd.rfpID == "" {
		return cmd.app.Workbench.Activity(ctx, cmd.limit)
	}

	entries, err := cmd.app.Workbench.ActivityForRFP(ctx, cmd.rfpID)
	if err != nil {
		return nil, err
	}
	if cmd.limit > 0 && len(entries) > cmd.limit {
		entries = entries[:cmd.limit]
	}
	return entries, nil
}

func (cmd *ActivityCmd) runLs(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.entries(ctx)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, e := range entries {
			line := activityJSON{
				ID:        e.ID,
				Timestamp: e.Timestamp,
				User:      e.User,
				Action:    e.Action,
				Details:   e.Details,
				RFPID:     e.RFPID,
			}
			if err := iojson.WriteLine(out, line); err != nil {
				return fmt.Errorf("encode activity: %w", err)
			}
		}
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "No activity recorded\n")
		return nil
	}

	p := table.NewPresenter(activity.Columns(time.Now), activity.RowID, max(len(entries), 1))
	p.SetRows(entries)
	return writeTable(out, p)
}

func (cmd *ActivityCmd) runExport(ctx context.Context, _ *cli.Command) error {
	dir := cmd.out
	if dir == "" {
		dir = cmd.app.Config.Export.Dir
	}

	path, err := cmd.app.Workbench.ExportActivityTo(ctx, dir)
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Success("Activity exported", path)
	return nil
}

func (cmd *ActivityCmd) runClear(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	if !cmd.yes {
		if err := requireTerminal(); err != nil {
			return fmt.Errorf("confirm clear: %w (use --yes)", err)
		}

		var ok bool
		err := huh.NewConfirm().
			Title("Clear the activity log?").
			Description("Every recorded entry is deleted. Export first if you need a copy.").
			Value(&ok).
			Run()
		if errors.Is(err, huh.ErrUserAborted) || (err == nil && !ok) {
			p.Infof("Clear cancelled")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := cmd.app.Workbench.ClearActivity(ctx); err != nil {
		return err
	}
	p.Successf("Activity cleared")
	return nil
}
