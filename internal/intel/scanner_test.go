package intel

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-imaging/prospect-cli/internal/config"
	"github.com/flux-imaging/prospect-cli/internal/model"
)

func testScanConfig() config.ScanConfig {
	return config.ScanConfig{
		MaxPages:         3,
		Concurrency:      2,
		FetchTimeoutSecs: 5,
		TimeoutSecs:      30,
		RequestsPerSec:   100,
	}
}

func TestScanWebsite(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `<html>
<head><title>Example Imaging Center</title><meta name="description" content="Imaging services in Austin"></head>
<body>
<p>Example Imaging Center performs 42,000 studies per year across the region.</p>
<p>Our Siemens syngo PACS platform replaced an aging system last year. We migrated off Centricity during the project.</p>
<p>Reach our scheduling team at scheduling@example.com for appointments.</p>
</body></html>`)
	})
	mux.HandleFunc("/about", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>About</title></head><body>
<p>We offer MRI, CT scan, and ultrasound services with a focus on workflow efficiency.</p>
<p>Email scheduling@example.com or billing@example.com with any questions today.</p>
</body></html>`)
	})
	mux.HandleFunc("/about-us", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	scanner := NewScanner(testScanConfig(), NewStaticDirectory())
	intel := scanner.ScanWebsite(context.Background(), srv.URL, 0)

	require.NotNil(t, intel)
	assert.Empty(t, intel.Error)
	assert.Equal(t, 2, intel.PagesScanned)
	assert.Equal(t, srv.URL, intel.BaseURL)

	// homepage fields come from the homepage, not arrival order
	assert.Equal(t, "Example Imaging Center", intel.PageTitle)
	assert.Equal(t, "Imaging services in Austin", intel.MetaDescription)

	// explicit study volume wins over any estimate
	assert.Equal(t, 42000, intel.AnnualStudyVolume)

	// Siemens outscores the single Centricity mention
	assert.Equal(t, "Siemens", intel.TechnologyStack.PACSVendor)

	// emails deduplicated across pages
	assert.ElementsMatch(t, []string{"scheduling@example.com", "billing@example.com"}, intel.EmailsFound)

	assert.Equal(t, 1, intel.LocationCount)
	assert.False(t, intel.ScanTimestamp.IsZero())

	// raw HTML is dropped from the returned records
	for _, p := range intel.PagesData {
		assert.Empty(t, p.HTML)
	}
}

func TestScanWebsiteNoPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	scanner := NewScanner(testScanConfig(), NewStaticDirectory())
	intel := scanner.ScanWebsite(context.Background(), srv.URL, 0)

	require.NotNil(t, intel)
	assert.Equal(t, "no pages could be scanned", intel.Error)
	assert.Equal(t, 0, intel.PagesScanned)
	assert.Equal(t, 1, intel.LocationCount)
	assert.Equal(t, "Unknown", intel.TechnologyStack.PACSVendor)
	assert.Empty(t, intel.PainPoints)
	assert.False(t, intel.ScanTimestamp.IsZero())
}

func TestScanWebsiteInvalidURL(t *testing.T) {
	scanner := NewScanner(testScanConfig(), nil)
	intel := scanner.ScanWebsite(context.Background(), "http://", 0)

	require.NotNil(t, intel)
	assert.Contains(t, intel.Error, "invalid url")
	assert.Equal(t, 0, intel.PagesScanned)
}

func TestScanFacilityCompetitors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><head><title>Home</title></head><body>
<p>A community imaging provider serving families across the metro area.</p>
</body></html>`)
	}))
	defer srv.Close()

	scanner := NewScanner(testScanConfig(), NewStaticDirectory())
	facility := model.Facility{
		Name:     "Example Imaging",
		Location: "Austin, TX",
		Website:  srv.URL,
	}
	intel := scanner.ScanFacility(context.Background(), facility, 1)

	require.NotEmpty(t, intel.CompetitorInformation)
	assert.Equal(t, "Austin Radiological Association", intel.CompetitorInformation[0].Name)
}

func TestAppendUnique(t *testing.T) {
	got := appendUnique([]string{"a", "b"}, []string{"b", "c", "a", "c"})
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
