package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tender/internal/core/table"
	"github.com/colonyops/tender/internal/printer"
	"github.com/colonyops/tender/internal/tender"
)

type CompareCmd struct {
	flags *Flags
	app   *tender.App

	out    string
	noSave bool
}

// NewCompareCmd creates a new compare command
func NewCompareCmd(flags *Flags, app *tender.App) *CompareCmd {
	return &CompareCmd{flags: flags, app: app}
}

// Register adds the compare command to the application
func (cmd *CompareCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "compare",
		Usage:     "Compare RFPs side by side and export the matrix",
		UsageText: "tender compare <id> <id> [id...] [--out dir] [--no-save]",
		Description: `Prints the selected RFPs as a field-by-item matrix and writes it to an
xlsx workbook named rfp_comparison_<date>.xlsx.

At least two RFP IDs are required.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "directory for the workbook (defaults to export.dir)",
				Destination: &cmd.out,
			},
			&cli.BoolFlag{
				Name:        "no-save",
				Usage:       "print the matrix without writing a workbook",
				Destination: &cmd.noSave,
			},
		},
		ShellComplete: RFPIDCompleter(cmd.app),
		Action:        cmd.run,
	})
	return app
}

func (cmd *CompareCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	ids := c.Args().Slice()
	if len(ids) < 2 {
		return fmt.Errorf("pick at least two RFPs to compare, got %d", len(ids))
	}

	comparison, err := cmd.app.Workbench.CompareRFPs(ids)
	if err != nil {
		return err
	}

	if err := writeComparison(c, comparison); err != nil {
		return err
	}
	if cmd.noSave {
		return nil
	}

	dir := cmd.out
	if dir == "" {
		dir = cmd.app.Config.Export.Dir
	}
	path, err := cmd.app.Workbench.ExportComparisonTo(ctx, dir, comparison)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(c.Root().Writer)
	p.Success("Comparison exported", path)
	return nil
}

func writeComparison(c *cli.Command, comparison table.Comparison) error {
	tw := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
	header := append([]string{strings.ToUpper(table.FieldLabel)}, comparison.Header[1:]...)
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range comparison.Rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
