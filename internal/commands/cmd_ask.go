package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/tender"
	"github.com/colonyops/tender/pkg/iojson"
)

type AskCmd struct {
	flags *Flags
	app   *tender.App

	rfpID      string
	jsonOutput bool
}

// NewAskCmd creates a new ask command
func NewAskCmd(flags *Flags, app *tender.App) *AskCmd {
	return &AskCmd{flags: flags, app: app}
}

// Register adds the ask command to the application
func (cmd *AskCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ask",
		Usage:     "Ask the RFP assistant a question",
		UsageText: "tender ask [--rfp ID] <question...>",
		Description: `Sends the question to the backend's rfp-query function and prints the answer.
Use --rfp to scope the question to one RFP.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "rfp",
				Usage:       "scope the question to an RFP",
				Destination: &cmd.rfpID,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the raw answer as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *AskCmd) run(ctx context.Context, c *cli.Command) error {
	if !cmd.app.Config.Backend.Enabled() {
		return backend.ErrNotConfigured
	}

	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("usage: tender ask <question>")
	}

	rfpID := cmd.rfpID
	if rfpID != "" {
		r, err := cmd.app.Workbench.FindRFP(rfpID)
		if err != nil {
			return err
		}
		rfpID = r.ID
	}

	answer, err := cmd.app.Assistant.Ask(ctx, question, rfpID)
	if err != nil {
		return fmt.Errorf("ask: %w", err)
	}

	out := c.Root().Writer
	if cmd.jsonOutput {
		return iojson.WriteLine(out, answer)
	}

	_, _ = fmt.Fprintln(out, answer.Answer)
	if len(answer.Sources) > 0 {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, muted("Sources:"))
		for _, s := range answer.Sources {
			_, _ = fmt.Fprintln(out, muted("  "+s))
		}
	}
	return nil
}
