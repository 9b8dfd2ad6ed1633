// Package store persists scans, facilities, and playbooks behind a driver
// interface with SQLite and Postgres implementations.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/flux-imaging/prospect-cli/internal/config"
	"github.com/flux-imaging/prospect-cli/internal/model"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = eris.New("store: not found")

// Store defines the persistence interface for scans and playbooks.
type Store interface {
	// Scans
	SaveScan(ctx context.Context, intel *model.WebsiteIntelligence) (*model.Scan, error)
	GetScan(ctx context.Context, scanID string) (*model.Scan, error)
	GetLatestScanByURL(ctx context.Context, url string) (*model.Scan, error)
	ListScans(ctx context.Context, limit int) ([]model.Scan, error)

	// Facilities
	SaveFacility(ctx context.Context, facility *model.Facility) error
	ListFacilities(ctx context.Context) ([]model.Facility, error)

	// Playbooks
	SavePlaybook(ctx context.Context, playbook *model.Playbook) error
	GetPlaybook(ctx context.Context, playbookID string) (*model.Playbook, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}

// Open creates a Store for the configured driver.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return NewSQLite(cfg.DatabaseURL)
	case "postgres":
		return NewPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", cfg.Driver)
	}
}
