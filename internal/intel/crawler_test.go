package intel

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTargets(t *testing.T) {
	targets := BuildTargets("https://example.com", 5)
	require.Len(t, targets, 5)
	assert.Equal(t, "https://example.com/", targets[0])
	assert.Equal(t, "https://example.com/about", targets[1])

	all := BuildTargets("https://example.com", 0)
	assert.Len(t, all, len(targetPaths))

	// trailing slash on the base does not double up
	targets = BuildTargets("https://example.com/", 2)
	assert.Equal(t, "https://example.com/", targets[0])
	assert.Equal(t, "https://example.com/about", targets[1])
}

func TestCrawlKeepsTargetOrder(t *testing.T) {
	mux := http.NewServeMux()
	for _, path := range []string{"/", "/about", "/services"} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `<html><head><title>%s</title></head><body><p>Radiology and imaging content for this page.</p></body></html>`, r.URL.Path)
		})
	}
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	crawler := NewCrawler(NewFetcher(FetchOptions{}), 5)
	targets := []string{
		srv.URL + "/",
		srv.URL + "/broken",
		srv.URL + "/about",
		srv.URL + "/services",
	}

	pages := crawler.Crawl(context.Background(), targets)
	require.Len(t, pages, 3)
	assert.Equal(t, srv.URL+"/", pages[0].URL)
	assert.Equal(t, srv.URL+"/about", pages[1].URL)
	assert.Equal(t, srv.URL+"/services", pages[2].URL)
}

func TestCrawlAllFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	crawler := NewCrawler(NewFetcher(FetchOptions{}), 2)
	pages := crawler.Crawl(context.Background(), []string{srv.URL + "/", srv.URL + "/about"})
	assert.Empty(t, pages)
}

func TestCleanURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"  example.com ", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/path", "https://example.com/path"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanURL(tt.in), tt.in)
	}
}

func TestBaseURL(t *testing.T) {
	base, err := BaseURL("https://example.com/deep/path?q=1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", base)
}
