package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS scans (
	id           TEXT PRIMARY KEY,
	url          TEXT NOT NULL,
	status       TEXT NOT NULL,
	intelligence TEXT NOT NULL,
	created_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS facilities (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	location    TEXT NOT NULL DEFAULT '',
	website     TEXT NOT NULL DEFAULT '',
	pain_points TEXT NOT NULL DEFAULT '',
	contact     TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS playbooks (
	id            TEXT PRIMARY KEY,
	facility_name TEXT NOT NULL,
	website       TEXT NOT NULL DEFAULT '',
	scan_id       TEXT NOT NULL DEFAULT '',
	sections      TEXT NOT NULL,
	generated_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_scans_url ON scans(url);
CREATE INDEX IF NOT EXISTS idx_scans_created_at ON scans(created_at);
CREATE INDEX IF NOT EXISTS idx_facilities_name ON facilities(name);
CREATE INDEX IF NOT EXISTS idx_playbooks_facility ON playbooks(facility_name);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveScan(ctx context.Context, intel *model.WebsiteIntelligence) (*model.Scan, error) {
	scan := &model.Scan{
		ID:           uuid.New().String(),
		URL:          intel.URL,
		Status:       model.StatusFor(intel),
		Intelligence: intel,
		CreatedAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(intel)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal intelligence")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO scans (id, url, status, intelligence, created_at) VALUES (?, ?, ?, ?, ?)`,
		scan.ID, scan.URL, string(scan.Status), string(payload), scan.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert scan")
	}
	return scan, nil
}

func (s *SQLiteStore) GetScan(ctx context.Context, scanID string) (*model.Scan, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, url, status, intelligence, created_at FROM scans WHERE id = ?`, scanID)
	return scanFromRow(row)
}

func (s *SQLiteStore) GetLatestScanByURL(ctx context.Context, url string) (*model.Scan, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, url, status, intelligence, created_at FROM scans WHERE url = ? ORDER BY created_at DESC LIMIT 1`, url)
	return scanFromRow(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFromRow(row rowScanner) (*model.Scan, error) {
	var scan model.Scan
	var status, payload string
	err := row.Scan(&scan.ID, &scan.URL, &status, &payload, &scan.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan row")
	}
	scan.Status = model.ScanStatus(status)
	if err := json.Unmarshal([]byte(payload), &scan.Intelligence); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal intelligence")
	}
	return &scan, nil
}

func (s *SQLiteStore) ListScans(ctx context.Context, limit int) ([]model.Scan, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, status, intelligence, created_at FROM scans ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list scans")
	}
	defer rows.Close()

	var scans []model.Scan
	for rows.Next() {
		scan, err := scanFromRow(rows)
		if err != nil {
			return nil, err
		}
		scans = append(scans, *scan)
	}
	return scans, eris.Wrap(rows.Err(), "sqlite: iterate scans")
}

func (s *SQLiteStore) SaveFacility(ctx context.Context, facility *model.Facility) error {
	if facility.ID == "" {
		facility.ID = uuid.New().String()
	}
	if facility.CreatedAt.IsZero() {
		facility.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO facilities (id, name, location, website, pain_points, contact, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		facility.ID, facility.Name, facility.Location, facility.Website,
		facility.PainPoints, facility.Contact, facility.CreatedAt,
	)
	return eris.Wrap(err, "sqlite: save facility")
}

func (s *SQLiteStore) ListFacilities(ctx context.Context) ([]model.Facility, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, location, website, pain_points, contact, created_at FROM facilities ORDER BY name`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list facilities")
	}
	defer rows.Close()

	var facilities []model.Facility
	for rows.Next() {
		var f model.Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.Location, &f.Website, &f.PainPoints, &f.Contact, &f.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan facility")
		}
		facilities = append(facilities, f)
	}
	return facilities, eris.Wrap(rows.Err(), "sqlite: iterate facilities")
}

func (s *SQLiteStore) SavePlaybook(ctx context.Context, playbook *model.Playbook) error {
	if playbook.ID == "" {
		playbook.ID = uuid.New().String()
	}
	sections, err := json.Marshal(playbook.Sections)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal sections")
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO playbooks (id, facility_name, website, scan_id, sections, generated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		playbook.ID, playbook.FacilityName, playbook.Website, playbook.ScanID,
		string(sections), playbook.GeneratedAt,
	)
	return eris.Wrap(err, "sqlite: insert playbook")
}

func (s *SQLiteStore) GetPlaybook(ctx context.Context, playbookID string) (*model.Playbook, error) {
	var p model.Playbook
	var sections string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, facility_name, website, scan_id, sections, generated_at FROM playbooks WHERE id = ?`,
		playbookID,
	).Scan(&p.ID, &p.FacilityName, &p.Website, &p.ScanID, &sections, &p.GeneratedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get playbook")
	}
	if err := json.Unmarshal([]byte(sections), &p.Sections); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal sections")
	}
	return &p, nil
}
