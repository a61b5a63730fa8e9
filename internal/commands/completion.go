package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tender/internal/tender"
)

// RFPIDCompleter returns a ShellCompleteFunc that suggests catalog RFP IDs
// as positional completions. Set this as the ShellComplete field on any
// cli.Command that accepts RFP IDs as arguments.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func RFPIDCompleter(app *tender.App) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if app.Workbench == nil {
			return
		}

		w := cmd.Root().Writer
		for _, r := range app.Workbench.Catalog().RFPs() {
			_, _ = fmt.Fprintln(w, r.ID)
		}
	}
}
