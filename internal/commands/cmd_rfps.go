package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/rfp"
	"github.com/colonyops/tender/internal/core/styles"
	"github.com/colonyops/tender/internal/core/validate"
	"github.com/colonyops/tender/internal/printer"
	"github.com/colonyops/tender/internal/tender"
	"github.com/colonyops/tender/pkg/iojson"
)

type RFPsCmd struct {
	flags *Flags
	app   *tender.App

	// ls flags
	page       int
	pageSize   int
	sort       string
	filter     string
	jsonOutput bool

	// new flags
	input iojson.FileReader[rfpInput]
}

// rfpInput is the JSON shape accepted by 'tender rfps new -f'.
type rfpInput struct {
	Title       string  `json:"title"`
	Department  string  `json:"department"`
	Owner       string  `json:"owner"`
	Budget      float64 `json:"budget"`
	Deadline    string  `json:"deadline"`
	Description string  `json:"description"`
}

func (in rfpInput) values() map[string]string {
	return map[string]string{
		"title":       in.Title,
		"department":  in.Department,
		"owner":       in.Owner,
		"budget":      strconv.FormatFloat(in.Budget, 'f', -1, 64),
		"deadline":    in.Deadline,
		"description": in.Description,
	}
}

// rfpJSON is one line of 'tender rfps ls --json'.
type rfpJSON struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Department string     `json:"department"`
	Owner      string     `json:"owner"`
	Status     rfp.Status `json:"status"`
	Budget     float64    `json:"budget"`
	Deadline   time.Time  `json:"deadline"`
	Step       string     `json:"workflow_step"`
	Applicants int        `json:"applicants"`
}

// NewRFPsCmd creates the rfps command group
func NewRFPsCmd(flags *Flags, app *tender.App) *RFPsCmd {
	return &RFPsCmd{flags: flags, app: app}
}

// Register adds the rfps command to the application
func (cmd *RFPsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:    "rfps",
		Aliases: []string{"rfp"},
		Usage:   "List, inspect and create requests for proposal",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List RFPs one page at a time",
				UsageText: "tender rfps ls [--page N] [--page-size N] [--sort key[:desc]] [--filter glob] [--json]",
				Description: `Prints one page of the RFP table with the catalog summary underneath.

Sort keys: id, title, department, owner, status, budget, deadline, step, applicants.
Filters are glob patterns matched against every column, e.g. 'cloud*' or '*IT*'.`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "page",
						Usage:       "page number to print",
						Value:       1,
						Destination: &cmd.page,
					},
					&cli.IntFlag{
						Name:        "page-size",
						Usage:       "rows per page (defaults to table.page_size)",
						Destination: &cmd.pageSize,
					},
					&cli.StringFlag{
						Name:        "sort",
						Usage:       "sort column, optionally suffixed with :desc",
						Destination: &cmd.sort,
					},
					&cli.StringFlag{
						Name:        "filter",
						Usage:       "glob pattern matched against any column",
						Destination: &cmd.filter,
					},
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output every matching row as JSON lines",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:          "show",
				Usage:         "Show one RFP with applicants, SLAs and documents",
				UsageText:     "tender rfps show <id>",
				ShellComplete: RFPIDCompleter(cmd.app),
				Action:        cmd.runShow,
			},
			{
				Name:      "new",
				Usage:     "Create an RFP",
				UsageText: "tender rfps new [-f rfp.json]",
				Description: `Creates a draft RFP. Without input an interactive form prompts for the fields.

JSON input:
  {"title": "...", "department": "...", "owner": "a@b.co", "budget": 90000,
   "deadline": "2026-12-01", "description": "..."}`,
				Flags:  []cli.Flag{cmd.input.Flag()},
				Action: cmd.runNew,
			},
		},
	})

	return app
}

func (cmd *RFPsCmd) runLs(ctx context.Context, c *cli.Command) error {
	wb := cmd.app.Workbench
	p := wb.RFPPresenter()
	if cmd.pageSize > 0 {
		p.Pager().SetSize(cmd.pageSize)
	}

	if cmd.sort != "" {
		key, dir := parseSort(cmd.sort)
		if err := p.SetSort(key, dir); err != nil {
			return fmt.Errorf("sort: %w", err)
		}
	}
	if cmd.filter != "" {
		if err := p.SetFilter(cmd.filter); err != nil {
			return fmt.Errorf("filter: %w", err)
		}
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, e := range p.Entries() {
			r := e.Row
			line := rfpJSON{
				ID:         r.ID,
				Title:      r.Title,
				Department: r.Department,
				Owner:      r.Owner,
				Status:     r.Status,
				Budget:     r.Budget,
				Deadline:   r.Deadline,
				Step:       r.WorkflowStep,
				Applicants: len(wb.Catalog().Applicants(r.ID)),
			}
			if err := iojson.WriteLine(out, line); err != nil {
				return fmt.Errorf("encode rfp: %w", err)
			}
		}
		return nil
	}

	p.Pager().GoToPage(cmd.page)
	if err := writeTable(out, p); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, muted(pageFooter(p)))
	_, _ = fmt.Fprintln(out, styles.SummaryStyle.Render(summaryLine(wb.Catalog().Summary())))
	return nil
}

func (cmd *RFPsCmd) runShow(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("usage: tender rfps show <id>")
	}

	detail, err := cmd.app.Workbench.Detail(ctx, id)
	if err != nil {
		return err
	}

	if cmd.app.Config.Backend.Enabled() {
		links, err := cmd.app.Links.List(ctx, backend.LinkFilter{RFPID: detail.RFP.ID})
		detail.Links, detail.LinksErr = links, err
		if detail.Links == nil && err == nil {
			detail.Links = []backend.DocumentLink{}
		}
	} else {
		detail.LinksErr = backend.ErrNotConfigured
	}

	md := detail.Markdown(time.Now())
	out := c.Root().Writer

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Warn().Err(err).Msg("markdown renderer unavailable")
		_, _ = fmt.Fprint(out, md)
		return nil
	}

	rendered, err := r.Render(md)
	if err != nil {
		log.Warn().Err(err).Msg("render markdown")
		rendered = md
	}
	_, _ = fmt.Fprint(out, rendered)
	return nil
}

func (cmd *RFPsCmd) runNew(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	var values map[string]string
	if cmd.input.Provided() {
		in, err := cmd.input.Read()
		if err != nil {
			return err
		}
		values = in.values()
	} else {
		v, err := cmd.runForm()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("form: %w", err)
		}
		values = v
	}

	draft, err := rfp.DraftFromValues(values)
	if err != nil {
		return err
	}

	created, err := cmd.app.Workbench.CreateRFP(ctx, draft)
	if err != nil {
		return err
	}

	p.Success("RFP created", fmt.Sprintf("%s %s", created.ID, created.Title))
	p.Infof("The demo catalog is held in memory; %s lasts for this run only", created.ID)
	return nil
}

func (cmd *RFPsCmd) runForm() (map[string]string, error) {
	var title, department, budget, deadline, description string
	owner := cmd.app.Workbench.User()
	if validate.Email(owner) != nil {
		owner = ""
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Validate(validate.Required).Value(&title),
			huh.NewInput().Title("Department").Validate(validate.Required).Value(&department),
			huh.NewInput().Title("Owner email").Validate(validate.Email).Value(&owner),
		).Title("Basics"),
		huh.NewGroup(
			huh.NewInput().Title("Budget").Placeholder("250000").Validate(amountInput).Value(&budget),
			huh.NewInput().Title("Deadline").Placeholder(rfp.DateLayout).Validate(dateInput).Value(&deadline),
			huh.NewText().Title("Summary").Description("Describe the scope").Value(&description),
		).Title("Commercials"),
	).Run()
	if err != nil {
		return nil, err
	}

	return map[string]string{
		"title":       title,
		"department":  department,
		"owner":       owner,
		"budget":      budget,
		"deadline":    deadline,
		"description": description,
	}, nil
}
