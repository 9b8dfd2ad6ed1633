package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func sampleIntelligence(url string) *model.WebsiteIntelligence {
	return &model.WebsiteIntelligence{
		URL:          url,
		BaseURL:      url,
		PagesScanned: 3,
		TechnologyStack: model.TechStack{
			PACSVendor: "Siemens",
			RISVendor:  "Unknown",
			EMRSystem:  "Epic",
		},
		LocationCount:     2,
		AnnualStudyVolume: 40000,
		ScanTimestamp:     time.Now().UTC(),
	}
}

func TestSQLiteScanRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	scan, err := st.SaveScan(ctx, sampleIntelligence("https://example.com"))
	require.NoError(t, err)
	require.NotEmpty(t, scan.ID)
	assert.Equal(t, model.ScanStatusComplete, scan.Status)

	got, err := st.GetScan(ctx, scan.ID)
	require.NoError(t, err)
	assert.Equal(t, scan.ID, got.ID)
	assert.Equal(t, "https://example.com", got.URL)
	require.NotNil(t, got.Intelligence)
	assert.Equal(t, "Siemens", got.Intelligence.TechnologyStack.PACSVendor)
	assert.Equal(t, 40000, got.Intelligence.AnnualStudyVolume)
}

func TestSQLiteGetScanNotFound(t *testing.T) {
	st := newTestStore(t)

	_, err := st.GetScan(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteGetLatestScanByURL(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := sampleIntelligence("https://example.com")
	first.PagesScanned = 1
	_, err := st.SaveScan(ctx, first)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	second := sampleIntelligence("https://example.com")
	second.PagesScanned = 5
	_, err = st.SaveScan(ctx, second)
	require.NoError(t, err)

	got, err := st.GetLatestScanByURL(ctx, "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Intelligence.PagesScanned)

	_, err = st.GetLatestScanByURL(ctx, "https://other.example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteListScans(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, u := range []string{"https://a.example.com", "https://b.example.com", "https://c.example.com"} {
		_, err := st.SaveScan(ctx, sampleIntelligence(u))
		require.NoError(t, err)
	}

	scans, err := st.ListScans(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, scans, 2)

	all, err := st.ListScans(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSQLiteFailedScanStatus(t *testing.T) {
	st := newTestStore(t)

	intel := &model.WebsiteIntelligence{
		URL:   "https://down.example.com",
		Error: "no pages could be scanned",
	}
	scan, err := st.SaveScan(context.Background(), intel)
	require.NoError(t, err)
	assert.Equal(t, model.ScanStatusFailed, scan.Status)
}

func TestSQLiteFacilities(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	f := &model.Facility{Name: "Example Imaging", Location: "Austin, TX", Website: "https://example.com"}
	require.NoError(t, st.SaveFacility(ctx, f))
	assert.NotEmpty(t, f.ID)

	// saving again with the same ID updates in place
	f.Location = "Dallas, TX"
	require.NoError(t, st.SaveFacility(ctx, f))

	facilities, err := st.ListFacilities(ctx)
	require.NoError(t, err)
	require.Len(t, facilities, 1)
	assert.Equal(t, "Dallas, TX", facilities[0].Location)
}

func TestSQLitePlaybookRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	pb := &model.Playbook{
		FacilityName: "Example Imaging",
		Website:      "https://example.com",
		Sections: []model.PlaybookSection{
			{Title: "Website Intelligence Analysis", Body: "Findings here."},
		},
		GeneratedAt: time.Now().UTC(),
	}
	require.NoError(t, st.SavePlaybook(ctx, pb))
	require.NotEmpty(t, pb.ID)

	got, err := st.GetPlaybook(ctx, pb.ID)
	require.NoError(t, err)
	assert.Equal(t, "Example Imaging", got.FacilityName)
	require.Len(t, got.Sections, 1)
	assert.Equal(t, "Findings here.", got.Sections[0].Body)

	_, err = st.GetPlaybook(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
