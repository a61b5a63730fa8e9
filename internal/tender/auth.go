package tender

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/core/config"
	"github.com/colonyops/tender/internal/core/logging"
)

// AuthService manages the stored backend session.
type AuthService struct {
	client *backend.Client
	cfg    *config.Config
	log    zerolog.Logger
}

// NewAuthService creates an AuthService.
func NewAuthService(client *backend.Client, cfg *config.Config) *AuthService {
	return &AuthService{
		client: client,
		cfg:    cfg,
		log:    logging.Component("auth"),
	}
}

// Session returns the stored session, or backend.ErrNotAuthenticated.
func (a *AuthService) Session() (backend.Session, error) {
	return backend.LoadSession(a.cfg.SessionFile())
}

// CurrentUser returns the signed-in email, or the configured local user.
func (a *AuthService) CurrentUser() string {
	s, err := a.Session()
	if err != nil || s.User.Email == "" {
		return a.cfg.User
	}
	return s.User.Email
}

// Client returns a backend client carrying the stored access token, or the
// anonymous client when no session exists.
func (a *AuthService) Client() *backend.Client {
	s, err := a.Session()
	if err != nil {
		return a.client
	}
	return a.client.WithToken(s.AccessToken)
}

// AuthedClient is Client but fails with backend.ErrNotAuthenticated when no
// session exists.
func (a *AuthService) AuthedClient() (*backend.Client, backend.Session, error) {
	s, err := a.Session()
	if err != nil {
		return nil, backend.Session{}, err
	}
	return a.client.WithToken(s.AccessToken), s, nil
}

// Login signs in and stores the session.
func (a *AuthService) Login(ctx context.Context, wb *Workbench, creds backend.Credentials) (backend.Session, error) {
	s, err := a.client.SignIn(ctx, creds)
	if err != nil {
		return backend.Session{}, err
	}
	if err := backend.SaveSession(a.cfg.SessionFile(), s); err != nil {
		return backend.Session{}, err
	}

	wb.Record(ctx, activity.ActionLogin, "Signed in", "")
	wb.bus.Success("Signed in", s.User.Email)
	return s, nil
}

// Logout revokes the session remotely when possible and always removes it locally.
func (a *AuthService) Logout(ctx context.Context, wb *Workbench) error {
	client, s, err := a.AuthedClient()
	if errors.Is(err, backend.ErrNotAuthenticated) {
		return a.clear()
	}
	if err != nil {
		return err
	}

	if err := client.SignOut(ctx); err != nil {
		a.log.Warn().Err(err).Msg("remote sign out failed, clearing local session")
	}

	// Record before clearing so the entry carries the signed-in user.
	wb.Record(ctx, activity.ActionLogout, "Signed out", "")
	if err := a.clear(); err != nil {
		return err
	}
	wb.bus.Info("Signed out", s.User.Email)
	return nil
}

func (a *AuthService) clear() error {
	if err := backend.ClearSession(a.cfg.SessionFile()); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
