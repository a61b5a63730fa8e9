package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tender/internal/core/validate"
)

// Session is the token pair returned by a password sign-in.
type Session struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int64       `json:"expires_in"`
	ExpiresAt    int64       `json:"expires_at"`
	User         SessionUser `json:"user"`
}

// SessionUser identifies the signed-in account.
type SessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Expired reports whether the access token has passed its expiry.
// Sessions without an expiry never expire.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt > 0 && now.Unix() >= s.ExpiresAt
}

// Credentials are the inputs to a password sign-in.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks the credentials before any network call.
func (c Credentials) Validate() error {
	return criterio.ValidateStruct(
		validate.EmailField("email", c.Email),
		validate.RequiredField("password", c.Password),
	)
}

// SignIn exchanges an email and password for a session.
func (c *Client) SignIn(ctx context.Context, creds Credentials) (Session, error) {
	if err := creds.Validate(); err != nil {
		return Session{}, err
	}

	var s Session
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/token",
		query:  url.Values{"grant_type": {"password"}},
		body: map[string]string{
			"email":    creds.Email,
			"password": creds.Password,
		},
	}, &s)
	if err != nil {
		return Session{}, fmt.Errorf("sign in: %w", err)
	}

	if s.ExpiresAt == 0 && s.ExpiresIn > 0 {
		s.ExpiresAt = time.Now().Add(time.Duration(s.ExpiresIn) * time.Second).Unix()
	}
	if s.User.Email == "" {
		s.User.Email = creds.Email
	}

	c.log.Info().Str("user", s.User.Email).Msg("signed in")
	return s, nil
}

// SignOut revokes the client's current access token.
func (c *Client) SignOut(ctx context.Context) error {
	if !c.Authenticated() {
		return ErrNotAuthenticated
	}
	if err := c.do(ctx, request{method: http.MethodPost, path: "/auth/v1/logout"}, nil); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

// SaveSession writes s to path, readable only by the current user.
func SaveSession(path string, s Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("chmod session: %w", err)
	}
	return nil
}

// LoadSession reads a session written by SaveSession. A missing or expired
// session yields ErrNotAuthenticated.
func LoadSession(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, ErrNotAuthenticated
	}
	if err != nil {
		return Session{}, fmt.Errorf("read session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("decode session: %w", err)
	}
	if s.AccessToken == "" || s.Expired(time.Now()) {
		return Session{}, ErrNotAuthenticated
	}
	return s, nil
}

// ClearSession removes the stored session. A missing file is not an error.
func ClearSession(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
