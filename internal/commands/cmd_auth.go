package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/validate"
	"github.com/colonyops/tender/internal/printer"
	"github.com/colonyops/tender/internal/tender"
)

type AuthCmd struct {
	flags *Flags
	app   *tender.App

	email    string
	password string
}

// NewAuthCmd creates the login and logout commands
func NewAuthCmd(flags *Flags, app *tender.App) *AuthCmd {
	return &AuthCmd{flags: flags, app: app}
}

// Register adds the login, logout and whoami commands to the application
func (cmd *AuthCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:      "login",
			Usage:     "Sign in to the backend with email and password",
			UsageText: "tender login [--email EMAIL] [--password PASSWORD]",
			Description: `Exchanges the credentials for an access token and stores the session in
<data-dir>/session.json. Missing values are prompted for when stdin is a terminal.`,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:        "email",
					Aliases:     []string{"e"},
					Usage:       "account email",
					Sources:     cli.EnvVars("TENDER_EMAIL"),
					Destination: &cmd.email,
				},
				&cli.StringFlag{
					Name:        "password",
					Usage:       "account password",
					Sources:     cli.EnvVars("TENDER_PASSWORD"),
					Destination: &cmd.password,
				},
			},
			Action: cmd.runLogin,
		},
		&cli.Command{
			Name:   "logout",
			Usage:  "Sign out and remove the stored session",
			Action: cmd.runLogout,
		},
		&cli.Command{
			Name:   "whoami",
			Usage:  "Print the user recorded in the activity log",
			Action: cmd.runWhoami,
		},
	)
	return app
}

func (cmd *AuthCmd) runLogin(ctx context.Context, _ *cli.Command) error {
	if !cmd.app.Config.Backend.Enabled() {
		return backend.ErrNotConfigured
	}

	if cmd.email == "" || cmd.password == "" {
		if err := requireTerminal(); err != nil {
			return fmt.Errorf("missing --email or --password: %w", err)
		}
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Email").Validate(validate.Email).Value(&cmd.email),
				huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Validate(validate.Required).Value(&cmd.password),
			),
		).Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("form: %w", err)
		}
	}

	s, err := cmd.app.Auth.Login(ctx, cmd.app.Workbench, backend.Credentials{Email: cmd.email, Password: cmd.password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	printer.Ctx(ctx).Success("Signed in", s.User.Email)
	return nil
}

func (cmd *AuthCmd) runLogout(ctx context.Context, _ *cli.Command) error {
	if err := cmd.app.Auth.Logout(ctx, cmd.app.Workbench); err != nil {
		return err
	}
	printer.Ctx(ctx).Successf("Signed out")
	return nil
}

func (cmd *AuthCmd) runWhoami(ctx context.Context, c *cli.Command) error {
	s, err := cmd.app.Auth.Session()
	if errors.Is(err, backend.ErrNotAuthenticated) {
		_, _ = fmt.Fprintln(c.Root().Writer, cmd.app.Config.User)
		fmt.Fprintf(os.Stderr, "Not signed in; using the configured local user\n")
		return nil
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(c.Root().Writer, s.User.Email)
	return nil
}
