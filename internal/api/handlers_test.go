package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-imaging/prospect-cli/internal/config"
	"github.com/flux-imaging/prospect-cli/internal/intel"
	"github.com/flux-imaging/prospect-cli/internal/model"
	"github.com/flux-imaging/prospect-cli/internal/store"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	scans     map[string]*model.Scan
	playbooks map[string]*model.Playbook
}

func newMemStore() *memStore {
	return &memStore{
		scans:     make(map[string]*model.Scan),
		playbooks: make(map[string]*model.Playbook),
	}
}

func (m *memStore) SaveScan(_ context.Context, intelligence *model.WebsiteIntelligence) (*model.Scan, error) {
	scan := &model.Scan{
		ID:           fmt.Sprintf("scan-%d", len(m.scans)+1),
		URL:          intelligence.URL,
		Status:       model.StatusFor(intelligence),
		Intelligence: intelligence,
	}
	m.scans[scan.ID] = scan
	return scan, nil
}

func (m *memStore) GetScan(_ context.Context, scanID string) (*model.Scan, error) {
	scan, ok := m.scans[scanID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return scan, nil
}

func (m *memStore) GetLatestScanByURL(_ context.Context, url string) (*model.Scan, error) {
	for _, s := range m.scans {
		if s.URL == url {
			return s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) ListScans(_ context.Context, _ int) ([]model.Scan, error) {
	out := make([]model.Scan, 0, len(m.scans))
	for _, s := range m.scans {
		out = append(out, *s)
	}
	return out, nil
}

func (m *memStore) SaveFacility(_ context.Context, _ *model.Facility) error { return nil }

func (m *memStore) ListFacilities(_ context.Context) ([]model.Facility, error) { return nil, nil }

func (m *memStore) SavePlaybook(_ context.Context, pb *model.Playbook) error {
	m.playbooks[pb.ID] = pb
	return nil
}

func (m *memStore) GetPlaybook(_ context.Context, playbookID string) (*model.Playbook, error) {
	pb, ok := m.playbooks[playbookID]
	if !ok {
		return nil, store.ErrNotFound
	}
	return pb, nil
}

func (m *memStore) Migrate(_ context.Context) error { return nil }
func (m *memStore) Close() error                    { return nil }

func newTestServer(st store.Store) *Server {
	scanner := intel.NewScanner(config.ScanConfig{
		MaxPages:         2,
		Concurrency:      2,
		FetchTimeoutSecs: 5,
		TimeoutSecs:      30,
		RequestsPerSec:   100,
	}, nil)
	return NewServer(config.ServerConfig{Port: 0}, scanner, st, nil)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(newMemStore())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleScan(t *testing.T) {
	site := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Example Imaging</title></head><body>
<p>Our imaging center offers comprehensive radiology services every day.</p>
</body></html>`)
	}))
	defer site.Close()

	st := newMemStore()
	srv := newTestServer(st)

	body := strings.NewReader(fmt.Sprintf(`{"url":%q}`, site.URL))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scan", body))

	require.Equal(t, http.StatusOK, rec.Code)

	var scan model.Scan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scan))
	assert.NotEmpty(t, scan.ID)
	assert.Equal(t, model.ScanStatusComplete, scan.Status)
	require.NotNil(t, scan.Intelligence)
	assert.Equal(t, "Example Imaging", scan.Intelligence.PageTitle)

	// persisted
	assert.Len(t, st.scans, 1)
}

func TestHandleScanBadRequest(t *testing.T) {
	srv := newTestServer(newMemStore())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(`{`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGetScanNotFound(t *testing.T) {
	srv := newTestServer(newMemStore())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scans/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleListScans(t *testing.T) {
	st := newMemStore()
	_, err := st.SaveScan(context.Background(), &model.WebsiteIntelligence{URL: "https://example.com", PagesScanned: 1})
	require.NoError(t, err)

	srv := newTestServer(st)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/scans", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var scans []model.Scan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scans))
	assert.Len(t, scans, 1)
}

func TestHandlePlaybookUnconfigured(t *testing.T) {
	srv := newTestServer(newMemStore())

	body := strings.NewReader(`{"facility_name":"Example Imaging"}`)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/playbooks", body))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
