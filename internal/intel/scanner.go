package intel

import (
	"context"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/flux-imaging/prospect-cli/internal/config"
	"github.com/flux-imaging/prospect-cli/internal/model"
)

// Scanner orchestrates the crawler and every signal extractor into one
// WebsiteIntelligence record. It never returns an error to the caller:
// failures are absorbed into the record (empty facets, "Unknown" vendors,
// or the Error field) so downstream consumers always receive well-formed
// data.
type Scanner struct {
	crawler   *Crawler
	directory CompetitorDirectory
	cfg       config.ScanConfig
}

// NewScanner creates a Scanner from config. A nil directory disables the
// competitor facet.
func NewScanner(cfg config.ScanConfig, directory CompetitorDirectory) *Scanner {
	fetcher := NewFetcher(FetchOptions{
		UserAgent:      cfg.UserAgent,
		Timeout:        time.Duration(cfg.FetchTimeoutSecs) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
	})
	return &Scanner{
		crawler:   NewCrawler(fetcher, cfg.Concurrency),
		directory: directory,
		cfg:       cfg,
	}
}

// ScanWebsite scans a website and returns its intelligence record. maxPages
// bounds total fetch attempts; zero or negative falls back to the
// configured default.
func (s *Scanner) ScanWebsite(ctx context.Context, rawURL string, maxPages int) *model.WebsiteIntelligence {
	return s.scan(ctx, rawURL, maxPages, "")
}

// ScanFacility scans a facility's website, using its location string to
// seed the regional-competitor lookup.
func (s *Scanner) ScanFacility(ctx context.Context, facility model.Facility, maxPages int) *model.WebsiteIntelligence {
	return s.scan(ctx, facility.Website, maxPages, facility.Location)
}

func (s *Scanner) scan(ctx context.Context, rawURL string, maxPages int, location string) *model.WebsiteIntelligence {
	if maxPages <= 0 {
		maxPages = s.cfg.MaxPages
	}

	clean := CleanURL(rawURL)
	intel := emptyIntelligence(clean)

	base, err := BaseURL(clean)
	if err != nil || !strings.Contains(base, "://") || strings.HasSuffix(base, "://") {
		intel.Error = "invalid url: " + rawURL
		intel.ScanTimestamp = time.Now().UTC()
		return intel
	}
	intel.BaseURL = base
	if u, perr := url.Parse(base); perr == nil {
		intel.Domain = u.Host
	}

	// Scan-level deadline on top of the per-fetch timeouts, so many
	// near-timeout fetches cannot sum to an unbounded wait.
	if s.cfg.TimeoutSecs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSecs)*time.Second)
		defer cancel()
	}

	targets := BuildTargets(base, maxPages)
	zap.L().Info("scanner: starting scan",
		zap.String("base_url", base),
		zap.Int("targets", len(targets)),
	)

	pages := s.crawler.Crawl(ctx, targets)
	intel.PagesScanned = len(pages)

	if len(pages) == 0 {
		intel.Error = "no pages could be scanned"
		intel.ScanTimestamp = time.Now().UTC()
		zap.L().Warn("scanner: scan produced no pages", zap.String("base_url", base))
		return intel
	}

	// Homepage fields are matched by URL, not arrival order.
	for _, p := range pages {
		if p.URL == targets[0] {
			intel.PageTitle = p.Title
			intel.MetaDescription = p.MetaDescription
			break
		}
	}

	intel.TermCounts = countSiteTerms(pages)

	for _, p := range pages {
		intel.EmailsFound = appendUnique(intel.EmailsFound, p.Emails)
		intel.JobOpenings = appendUnique(intel.JobOpenings, p.JobListings)
	}

	// Each extractor is independent; a failure in one defaults its facet
	// and leaves the others alone.
	s.extract("key_personnel", func() { intel.KeyPersonnel = FindKeyPersonnel(pages) })
	s.extract("tech_stack", func() { intel.TechnologyStack = AnalyzeTechStack(pages) })
	s.extract("equipment", func() { intel.EquipmentInformation = ExtractEquipment(pages) })
	s.extract("growth_indicators", func() { intel.GrowthIndicators = IdentifyGrowthIndicators(pages) })
	s.extract("pain_points", func() { intel.PainPoints = IdentifyPainPoints(pages) })
	s.extract("locations", func() { intel.LocationCount = ExtractLocationCount(pages) })
	s.extract("study_volume", func() {
		intel.AnnualStudyVolume = EstimateStudyVolume(pages, intel.LocationCount, intel.TechnologyStack.Modalities)
	})
	s.extract("implementation_dates", func() { intel.TechnologyImplementationDates = ExtractImplementationDates(pages) })
	s.extract("refresh_cycle", func() { intel.TechnologyRefreshCycle = IdentifyRefreshCycle(pages) })
	s.extract("budget_cycle", func() { intel.BudgetCycleInfo = AnalyzeBudgetCycle(pages) })
	s.extract("accreditations", func() { intel.Accreditations = ExtractAccreditations(pages) })
	s.extract("competitors", func() {
		if s.directory == nil {
			return
		}
		region := ExtractRegion(location, pages)
		competitors, derr := s.directory.LookupCompetitors(ctx, region)
		if derr != nil {
			zap.L().Warn("scanner: competitor lookup failed", zap.Error(derr))
			return
		}
		intel.CompetitorInformation = competitors
	})

	if intel.LocationCount < 1 {
		intel.LocationCount = 1
	}

	intel.RadiologyMentions = sumCategory(intel.TermCounts, "imaging_terms")
	intel.PACSMentions = sumCategory(intel.TermCounts, "pacs_terms")
	intel.WorkflowMentions = sumCategory(intel.TermCounts, "workflow_terms")
	intel.ModernizationMentions = sumCategory(intel.TermCounts, "modernization_terms")
	intel.DICOMMentions = strings.Count(strings.ToLower(joinContent(pages)), "dicom")

	intel.HasIntegrationPainPoints, intel.HasWorkflowPainPoints, intel.HasLegacySystemPainPoints = painPointFlags(intel.PainPoints)

	// Raw HTML is working data for the extraction phase only.
	for i := range pages {
		pages[i].HTML = ""
	}
	intel.PagesData = pages

	intel.ScanTimestamp = time.Now().UTC()
	zap.L().Info("scanner: scan complete",
		zap.String("base_url", base),
		zap.Int("pages_scanned", intel.PagesScanned),
		zap.Int("pain_points", len(intel.PainPoints)),
		zap.Int("growth_indicators", len(intel.GrowthIndicators)),
	)

	return intel
}

// extract runs one extractor, absorbing any panic so a bad facet never
// aborts the scan.
func (s *Scanner) extract(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("scanner: extractor failed",
				zap.String("extractor", name),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}

func emptyIntelligence(cleanURL string) *model.WebsiteIntelligence {
	return &model.WebsiteIntelligence{
		URL:           cleanURL,
		LocationCount: 1,
		TermCounts:    map[string]map[string]int{},
		TechnologyStack: model.TechStack{
			PACSVendor:    "Unknown",
			RISVendor:     "Unknown",
			EMRSystem:     "Unknown",
			ITEnvironment: map[string]string{},
		},
	}
}

// countSiteTerms counts every dictionary term over the whole corpus,
// keeping only terms that appeared.
func countSiteTerms(pages []model.PageRecord) map[string]map[string]int {
	lower := strings.ToLower(joinContent(pages))
	counts := make(map[string]map[string]int, len(termCategories))
	for _, cat := range termCategories {
		catCounts := make(map[string]int)
		for _, term := range cat.Terms {
			if n := strings.Count(lower, term); n > 0 {
				catCounts[term] = n
			}
		}
		counts[cat.Name] = catCounts
	}
	return counts
}

func sumCategory(counts map[string]map[string]int, category string) int {
	total := 0
	for _, n := range counts[category] {
		total += n
	}
	return total
}

func appendUnique(dst []string, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range src {
		if !seen[s] {
			seen[s] = true
			dst = append(dst, s)
		}
	}
	return dst
}
