// Package tender wires the workbench services that commands and the TUI consume.
package tender

import (
	"github.com/colonyops/tender/internal/backend"
	"github.com/colonyops/tender/internal/core/activity"
	"github.com/colonyops/tender/internal/core/config"
	"github.com/colonyops/tender/internal/core/notify"
	"github.com/colonyops/tender/internal/core/rfp"
	"github.com/colonyops/tender/internal/data/db"
)

// App is the central entry point for all tender operations.
// Commands and TUI consume App instead of cherry-picking raw dependencies.
type App struct {
	Workbench *Workbench
	Auth      *AuthService
	Links     *LinkService
	Assistant *AssistantService

	Bus    *notify.Bus
	Config *config.Config
	DB     *db.DB
}

// NewApp constructs an App from explicit dependencies.
func NewApp(
	cfg *config.Config,
	database *db.DB,
	catalog *rfp.Catalog,
	activityStore activity.Store,
	bus *notify.Bus,
) *App {
	client := backend.NewClient(cfg.Backend)
	auth := NewAuthService(client, cfg)
	wb := NewWorkbench(catalog, activityStore, bus, cfg, auth.CurrentUser)

	return &App{
		Workbench: wb,
		Auth:      auth,
		Links:     NewLinkService(auth, wb),
		Assistant: NewAssistantService(auth, wb),
		Bus:       bus,
		Config:    cfg,
		DB:        database,
	}
}
