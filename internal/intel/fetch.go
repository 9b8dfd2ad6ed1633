package intel

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const maxBodyBytes = 512 * 1024

// FetchOptions configures the page fetcher.
type FetchOptions struct {
	UserAgent      string
	Timeout        time.Duration
	RequestsPerSec float64
}

// Fetcher retrieves raw HTML for single URLs. Every failure is returned as
// an error for the caller to absorb; the fetcher never retries (a dropped
// page is cheaper than a hung scan).
type Fetcher struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// NewFetcher creates a Fetcher with the given options, filling in defaults
// for anything unset.
func NewFetcher(opts FetchOptions) *Fetcher {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "Mozilla/5.0 (compatible; ProspectBot/1.0)"
	}
	if opts.RequestsPerSec == 0 {
		opts.RequestsPerSec = 10
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: opts.Timeout,
				}).DialContext,
				TLSHandshakeTimeout: opts.Timeout,
			},
		},
		userAgent: opts.UserAgent,
		limiter:   rate.NewLimiter(rate.Limit(opts.RequestsPerSec), int(opts.RequestsPerSec)),
	}
}

// Fetch retrieves the raw HTML body of a URL. Non-2xx statuses are errors.
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", eris.Wrap(err, "fetch: rate limit wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return "", eris.Wrap(err, "fetch: create request")
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "fetch: execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", eris.Errorf("fetch: status %d for %s", resp.StatusCode, targetURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", eris.Wrap(err, "fetch: read body")
	}

	return string(body), nil
}
