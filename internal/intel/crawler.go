package intel

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// targetPaths are the common healthcare-site sections visited on every scan,
// in priority order. The homepage must stay first: top-level title and
// description fields are taken from it.
var targetPaths = []string{
	"/", "/about", "/about-us", "/technology", "/services", "/solutions",
	"/radiology", "/imaging", "/our-team", "/staff", "/careers", "/jobs",
	"/it", "/information-technology", "/medical-imaging", "/pacs",
	"/locations", "/our-locations", "/centers", "/find-us",
	"/equipment", "/technologies", "/modalities", "/patient-info",
	"/patient-portal", "/for-patients", "/appointments",
	"/contact", "/contact-us", "/leadership", "/physicians",
	"/news", "/press", "/blog", "/events",
}

// Crawler fetches a bounded set of candidate pages concurrently and parses
// each into a PageRecord. A failed or unparseable page is dropped; the rest
// of the scan proceeds.
type Crawler struct {
	fetcher     *Fetcher
	concurrency int
}

// NewCrawler creates a Crawler over the given fetcher. Concurrency below 1
// is raised to 1.
func NewCrawler(fetcher *Fetcher, concurrency int) *Crawler {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Crawler{fetcher: fetcher, concurrency: concurrency}
}

// BuildTargets joins the candidate paths onto the base URL and truncates to
// maxPages. The result is immutable for the rest of the scan.
func BuildTargets(baseURL string, maxPages int) []string {
	paths := targetPaths
	if maxPages > 0 && maxPages < len(paths) {
		paths = paths[:maxPages]
	}
	targets := make([]string, 0, len(paths))
	for _, p := range paths {
		targets = append(targets, joinURL(baseURL, p))
	}
	return targets
}

// Crawl fetches every target concurrently with a bounded pool and returns
// the successfully parsed records in target order. Completion order is
// irrelevant: each fetch writes into its own slot.
func (c *Crawler) Crawl(ctx context.Context, targets []string) []model.PageRecord {
	records := make([]*model.PageRecord, len(targets))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, target := range targets {
		i, target := i, target
		g.Go(func() error {
			html, err := c.fetcher.Fetch(gCtx, target)
			if err != nil {
				zap.L().Warn("crawler: page fetch failed",
					zap.String("url", target),
					zap.Error(err),
				)
				return nil
			}

			rec, err := ParsePage(html, target)
			if err != nil {
				zap.L().Warn("crawler: page parse failed",
					zap.String("url", target),
					zap.Error(err),
				)
				return nil
			}
			if rec == nil {
				return nil
			}

			mu.Lock()
			records[i] = rec
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	pages := make([]model.PageRecord, 0, len(records))
	for _, rec := range records {
		if rec != nil {
			pages = append(pages, *rec)
		}
	}
	return pages
}

// CleanURL normalizes a user-supplied URL, prefixing https:// if no scheme
// is present.
func CleanURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return raw
}

// BaseURL reduces a URL to scheme://host.
func BaseURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	return u.Scheme + "://" + u.Host, nil
}

func joinURL(base, path string) string {
	if path == "/" {
		return strings.TrimSuffix(base, "/") + "/"
	}
	return strings.TrimSuffix(base, "/") + path
}
