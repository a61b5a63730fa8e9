package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/validate"
	"github.com/colonyops/tender/internal/printer"
	"github.com/colonyops/tender/internal/tender"
	"github.com/colonyops/tender/pkg/iojson"
)

type LinksCmd struct {
	flags *Flags
	app   *tender.App

	rfpID      string
	activeOnly bool
	jsonOutput bool

	link     string
	inactive bool
	activate bool
	yes      bool
}

// NewLinksCmd creates the links command group
func NewLinksCmd(flags *Flags, app *tender.App) *LinksCmd {
	return &LinksCmd{flags: flags, app: app}
}

// Register adds the links command to the application
func (cmd *LinksCmd) Register(app *cli.Command) *cli.Command {
	rfpFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:        "rfp",
			Usage:       "RFP ID the link belongs to",
			Destination: &cmd.rfpID,
		}
	}
	urlFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:        "url",
			Aliases:     []string{"u"},
			Usage:       "document URL",
			Destination: &cmd.link,
		}
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "links",
		Usage: "Manage contract document links on the backend",
		Description: `Document links are stored in the backend's process_document_links table.
Listing works with the anonymous key; changes require 'tender login'.`,
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List document links",
				UsageText: "tender links ls [--rfp ID] [--active] [--json]",
				Flags: []cli.Flag{
					rfpFlag(),
					&cli.BoolFlag{
						Name:        "active",
						Usage:       "only show active links",
						Destination: &cmd.activeOnly,
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
				Name:      "add",
				Usage:     "Attach a document link to an RFP",
				UsageText: "tender links add [--rfp ID] [--url URL] [--inactive]",
				Description: `Creates a link for the signed-in user. Missing values are prompted for
when stdin is a terminal.`,
				Flags: []cli.Flag{
					rfpFlag(),
					urlFlag(),
					&cli.BoolFlag{
						Name:        "inactive",
						Usage:       "store the link as inactive",
						Destination: &cmd.inactive,
					},
				},
				Action: cmd.runAdd,
			},
			{
				Name:      "update",
				Usage:     "Change a link's URL or active flag",
				UsageText: "tender links update <id> [--url URL] [--activate | --deactivate]",
				Flags: []cli.Flag{
					urlFlag(),
					&cli.BoolFlag{
						Name:        "activate",
						Usage:       "mark the link active",
						Destination: &cmd.activate,
					},
					&cli.BoolFlag{
						Name:        "deactivate",
						Usage:       "mark the link inactive",
						Destination: &cmd.inactive,
					},
				},
				Action: cmd.runUpdate,
			},
			{
				Name:      "rm",
				Usage:     "Delete a document link",
				UsageText: "tender links rm <id> [--yes]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "yes",
						Aliases:     []string{"y"},
						Usage:       "skip the confirmation prompt",
						Destination: &cmd.yes,
					},
				},
				Action: cmd.runRm,
			},
		},
	})
	return app
}

func (cmd *LinksCmd) requireBackend() error {
	if !cmd.app.Config.Backend.Enabled() {
		return backend.ErrNotConfigured
	}
	return nil
}

func (cmd *LinksCmd) runLs(ctx context.Context, c *cli.Command) error {
	if err := cmd.requireBackend(); err != nil {
		return err
	}

	f := backend.LinkFilter{RFPID: cmd.rfpID}
	if cmd.activeOnly {
		active := true
		f.IsActive = &active
	}

	links, err := cmd.app.Links.List(ctx, f)
	if err != nil {
		return err
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, l := range links {
			if err := iojson.WriteLine(out, l); err != nil {
				return fmt.Errorf("encode link: %w", err)
			}
		}
		return nil
	}

	if len(links) == 0 {
		fmt.Fprintf(os.Stderr, "No document links found\n")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tRFP\tLINK\tACTIVE\tADDED BY\tUPDATED")
	for _, l := range links {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%s\n",
			l.ID, l.RFPID, l.DocumentLink, l.IsActive, l.CreatedBy, humanize.Time(l.UpdatedAt))
	}
	return w.Flush()
}

func (cmd *LinksCmd) runAdd(ctx context.Context, _ *cli.Command) error {
	if err := cmd.requireBackend(); err != nil {
		return err
	}

	if cmd.rfpID == "" || cmd.link == "" {
		if err := requireTerminal(); err != nil {
			return fmt.Errorf("missing --rfp or --url: %w", err)
		}
		if err := cmd.addForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	r, err := cmd.app.Workbench.FindRFP(cmd.rfpID)
	if err != nil {
		return err
	}

	link, err := cmd.app.Links.Create(ctx, backend.NewLink{
		RFPID:        r.ID,
		DocumentLink: cmd.link,
		IsActive:     !cmd.inactive,
	})
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Success("Document link added", link.ID)
	return nil
}

func (cmd *LinksCmd) addForm() error {
	active := !cmd.inactive
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("RFP").
				Description("ID such as RFP-001").
				Validate(func(s string) error {
					if err := validate.Required(s); err != nil {
						return err
					}
					_, err := cmd.app.Workbench.FindRFP(s)
					return err
				}).
				Value(&cmd.rfpID),
			huh.NewInput().
				Title("Document URL").
				Validate(validate.Link).
				Value(&cmd.link),
			huh.NewConfirm().
				Title("Active?").
				Value(&active),
		),
	).Run()
	cmd.inactive = !active
	return err
}

func (cmd *LinksCmd) runUpdate(ctx context.Context, c *cli.Command) error {
	if err := cmd.requireBackend(); err != nil {
		return err
	}

	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("usage: tender links update <id> [--url URL] [--activate | --deactivate]")
	}
	if cmd.activate && cmd.inactive {
		return fmt.Errorf("--activate and --deactivate are mutually exclusive")
	}

	var patch backend.LinkPatch
	if cmd.link != "" {
		patch.DocumentLink = &cmd.link
	}
	if cmd.activate || cmd.inactive {
		active := cmd.activate
		patch.IsActive = &active
	}

	link, err := cmd.app.Links.Update(ctx, id, patch)
	if err != nil {
		return err
	}

	printer.Ctx(ctx).Success("Document link updated", fmt.Sprintf("%s (active: %t)", link.DocumentLink, link.IsActive))
	return nil
}

func (cmd *LinksCmd) runRm(ctx context.Context, c *cli.Command) error {
	if err := cmd.requireBackend(); err != nil {
		return err
	}

	p := printer.Ctx(ctx)

	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("usage: tender links rm <id>")
	}

	if !cmd.yes {
		if err := requireTerminal(); err != nil {
			return fmt.Errorf("confirm delete: %w (use --yes)", err)
		}
		var ok bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete document link %s?", id)).
			Value(&ok).
			Run()
		if errors.Is(err, huh.ErrUserAborted) || (err == nil && !ok) {
			p.Infof("Delete cancelled")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if err := cmd.app.Links.Delete(ctx, id); err != nil {
		return err
	}
	p.Success("Document link deleted", id)
	return nil
}
