package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tender/internal/core/rfp"
	"github.com/colonyops/tender/internal/core/table"
	"github.com/colonyops/tender/internal/tender"
)

// CatalogCmd lists the secondary catalog tables: applicants, contracts and users.
type CatalogCmd struct {
	flags *Flags
	app   *tender.App

	rfpID string
	sort  string
}

// NewCatalogCmd creates the applicants, contracts and users commands
func NewCatalogCmd(flags *Flags, app *tender.App) *CatalogCmd {
	return &CatalogCmd{flags: flags, app: app}
}

// Register adds the catalog listing commands to the application
func (cmd *CatalogCmd) Register(app *cli.Command) *cli.Command {
	sortFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:        "sort",
			Usage:       "sort column, optionally suffixed with :desc",
			Destination: &cmd.sort,
		}
	}

	app.Commands = append(app.Commands,
		&cli.Command{
			Name:  "applicants",
			Usage: "Vendors that submitted proposals",
			Commands: []*cli.Command{
				{
					Name:      "ls",
					Usage:     "List applicants with bid, score and workflow step",
					UsageText: "tender applicants ls [--rfp ID] [--sort key[:desc]]",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:        "rfp",
							Usage:       "only show applicants for this RFP",
							Destination: &cmd.rfpID,
						},
						sortFlag(),
					},
					Action: func(ctx context.Context, c *cli.Command) error {
						rows := cmd.app.Workbench.Catalog().Applicants(cmd.rfpID)
						return listRows(c, rfp.ApplicantColumns(), rfp.ApplicantRowID, rows, cmd.sort)
					},
				},
			},
		},
		&cli.Command{
			Name:  "contracts",
			Usage: "Awarded contracts",
			Commands: []*cli.Command{
				{
					Name:      "ls",
					Usage:     "List contracts",
					UsageText: "tender contracts ls [--sort key[:desc]]",
					Flags:     []cli.Flag{sortFlag()},
					Action: func(ctx context.Context, c *cli.Command) error {
						rows := cmd.app.Workbench.Catalog().Contracts()
						return listRows(c, rfp.ContractColumns(), rfp.ContractRowID, rows, cmd.sort)
					},
				},
			},
		},
		&cli.Command{
			Name:  "users",
			Usage: "Workbench accounts and roles",
			Commands: []*cli.Command{
				{
					Name:      "ls",
					Usage:     "List users with their role and last activity",
					UsageText: "tender users ls [--sort key[:desc]]",
					Flags:     []cli.Flag{sortFlag()},
					Action: func(ctx context.Context, c *cli.Command) error {
						rows := cmd.app.Workbench.Catalog().Users()
						return listRows(c, rfp.UserColumns(), rfp.UserRowID, rows, cmd.sort)
					},
				},
			},
		},
	)
	return app
}

// listRows prints every row through a presenter so sorting and cell
// rendering match the TUI.
func listRows[R any](c *cli.Command, cols []table.Column[R], id table.IDFunc[R], rows []R, sort string) error {
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "No rows found\n")
		return nil
	}

	p := table.NewPresenter(cols, id, len(rows))
	p.SetRows(rows)
	if sort != "" {
		key, dir := parseSort(sort)
		if err := p.SetSort(key, dir); err != nil {
			return fmt.Errorf("sort: %w", err)
		}
	}
	return writeTable(c.Root().Writer, p)
}
