package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// Pool is the subset of pgxpool.Pool the store uses. pgxmock satisfies it
// for unit tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool Pool
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}
	pgxCfg.MaxConns = 10
	pgxCfg.MinConns = 2
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS scans (
	id           TEXT PRIMARY KEY,
	url          TEXT NOT NULL,
	status       TEXT NOT NULL,
	intelligence JSONB NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS facilities (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	location    TEXT NOT NULL DEFAULT '',
	website     TEXT NOT NULL DEFAULT '',
	pain_points TEXT NOT NULL DEFAULT '',
	contact     TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS playbooks (
	id            TEXT PRIMARY KEY,
	facility_name TEXT NOT NULL,
	website       TEXT NOT NULL DEFAULT '',
	scan_id       TEXT NOT NULL DEFAULT '',
	sections      JSONB NOT NULL,
	generated_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scans_url ON scans(url);
CREATE INDEX IF NOT EXISTS idx_scans_created_at ON scans(created_at);
CREATE INDEX IF NOT EXISTS idx_facilities_name ON facilities(name);
CREATE INDEX IF NOT EXISTS idx_playbooks_facility ON playbooks(facility_name);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) SaveScan(ctx context.Context, intel *model.WebsiteIntelligence) (*model.Scan, error) {
	scan := &model.Scan{
		ID:           uuid.New().String(),
		URL:          intel.URL,
		Status:       model.StatusFor(intel),
		Intelligence: intel,
		CreatedAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(intel)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal intelligence")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO scans (id, url, status, intelligence, created_at) VALUES ($1, $2, $3, $4, $5)`,
		scan.ID, scan.URL, string(scan.Status), payload, scan.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert scan")
	}
	return scan, nil
}

func (s *PostgresStore) GetScan(ctx context.Context, scanID string) (*model.Scan, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, url, status, intelligence, created_at FROM scans WHERE id = $1`, scanID)
	return pgScanFromRow(row)
}

func (s *PostgresStore) GetLatestScanByURL(ctx context.Context, url string) (*model.Scan, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, url, status, intelligence, created_at FROM scans WHERE url = $1 ORDER BY created_at DESC LIMIT 1`, url)
	return pgScanFromRow(row)
}

func pgScanFromRow(row pgx.Row) (*model.Scan, error) {
	var scan model.Scan
	var status string
	var payload []byte
	err := row.Scan(&scan.ID, &scan.URL, &status, &payload, &scan.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: scan row")
	}
	scan.Status = model.ScanStatus(status)
	if err := json.Unmarshal(payload, &scan.Intelligence); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal intelligence")
	}
	return &scan, nil
}

func (s *PostgresStore) ListScans(ctx context.Context, limit int) ([]model.Scan, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, url, status, intelligence, created_at FROM scans ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list scans")
	}
	defer rows.Close()

	var scans []model.Scan
	for rows.Next() {
		scan, err := pgScanFromRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, *scan)
	}
	return scans, eris.Wrap(rows.Err(), "postgres: iterate scans")
}

func (s *PostgresStore) SaveFacility(ctx context.Context, facility *model.Facility) error {
	if facility.ID == "" {
		facility.ID = uuid.New().String()
	}
	if facility.CreatedAt.IsZero() {
		facility.CreatedAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO facilities (id, name, location, website, pain_points, contact, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			location = EXCLUDED.location,
			website = EXCLUDED.website,
			pain_points = EXCLUDED.pain_points,
			contact = EXCLUDED.contact`,
		facility.ID, facility.Name, facility.Location, facility.Website,
		facility.PainPoints, facility.Contact, facility.CreatedAt,
	)
	return eris.Wrap(err, "postgres: save facility")
}

func (s *PostgresStore) ListFacilities(ctx context.Context) ([]model.Facility, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, location, website, pain_points, contact, created_at FROM facilities ORDER BY name`)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list facilities")
	}
	defer rows.Close()

	var facilities []model.Facility
	for rows.Next() {
		var f model.Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.Location, &f.Website, &f.PainPoints, &f.Contact, &f.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan facility")
		}
		facilities = append(facilities, f)
	}
	return facilities, eris.Wrap(rows.Err(), "postgres: iterate facilities")
}

func (s *PostgresStore) SavePlaybook(ctx context.Context, playbook *model.Playbook) error {
	if playbook.ID == "" {
		playbook.ID = uuid.New().String()
	}
	sections, err := json.Marshal(playbook.Sections)
	if err != nil {
		return eris.Wrap(err, "postgres: marshal sections")
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO playbooks (id, facility_name, website, scan_id, sections, generated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		playbook.ID, playbook.FacilityName, playbook.Website, playbook.ScanID,
		sections, playbook.GeneratedAt,
	)
	return eris.Wrap(err, "postgres: insert playbook")
}

func (s *PostgresStore) GetPlaybook(ctx context.Context, playbookID string) (*model.Playbook, error) {
	var p model.Playbook
	var sections []byte
	err := s.pool.QueryRow(ctx,
		`SELECT id, facility_name, website, scan_id, sections, generated_at FROM playbooks WHERE id = $1`,
		playbookID,
	).Scan(&p.ID, &p.FacilityName, &p.Website, &p.ScanID, &sections, &p.GeneratedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "postgres: get playbook")
	}
	if err := json.Unmarshal(sections, &p.Sections); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal sections")
	}
	return &p, nil
}
