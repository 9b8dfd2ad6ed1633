package intel

import (
	"context"
	"regexp"
	"strings"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// CompetitorDirectory looks up competitor organizations for a region. The
// scanner treats it as a pluggable data source; StaticDirectory is the
// built-in reference table, and a live search provider can be swapped in
// without touching the scanner.
type CompetitorDirectory interface {
	LookupCompetitors(ctx context.Context, region string) ([]model.Competitor, error)
}

// sharedChallenges annotate every directory entry: the industry problems a
// regional competitor's customers have in common with the prospect.
var sharedChallenges = []string{
	"Integration of multiple PACS systems across locations",
	"Managing large volumes of imaging data",
	"Secure sharing of images with referring physicians",
	"Compliance with changing healthcare regulations",
	"Staff shortages and efficiency challenges",
}

// StaticDirectory is a fixed state-keyed table of example competitor
// organizations. Reference data, not a live lookup.
type StaticDirectory struct{}

// NewStaticDirectory returns the built-in competitor table.
func NewStaticDirectory() *StaticDirectory {
	return &StaticDirectory{}
}

var staticCompetitors = map[string][]model.Competitor{
	"TX": {
		{Name: "Austin Radiological Association", Website: "https://www.ausrad.com", Description: "Large multi-specialty imaging practice serving central Texas"},
		{Name: "Southwest Diagnostic Imaging Center", Website: "https://www.swdic.com", Description: "Comprehensive outpatient imaging center in Dallas"},
		{Name: "Green Imaging", Website: "https://greenimaging.net", Description: "Affordable imaging centers across Texas"},
	},
	"CA": {
		{Name: "RadNet", Website: "https://www.radnet.com", Description: "Largest network of imaging centers in California"},
		{Name: "Dignity Health", Website: "https://www.dignityhealth.org", Description: "Hospital system with multiple imaging locations"},
	},
	"FL": {
		{Name: "Radiology Associates of Florida", Website: "https://www.raflorida.com", Description: "Radiology group serving multiple hospitals in Florida"},
		{Name: "Tower Radiology", Website: "https://www.towerradiologycenters.com", Description: "Multiple outpatient centers in the Tampa area"},
	},
	"NY": {
		{Name: "Lenox Hill Radiology", Website: "https://www.lenoxhillradiology.com", Description: "Network of outpatient radiology centers in NY area"},
		{Name: "Zwanger-Pesiri Radiology", Website: "https://www.zprad.com", Description: "Large radiology group with multiple locations"},
	},
}

var genericCompetitors = []model.Competitor{
	{Name: "RadNet", Website: "https://www.radnet.com", Description: "National chain of imaging centers"},
	{Name: "American Radiology", Website: "https://www.americanradiology.com", Description: "Radiology services throughout the US"},
}

var stateNames = map[string]string{
	"texas": "TX", "california": "CA", "florida": "FL", "new york": "NY",
}

// LookupCompetitors returns the competitors for a state code or name, or
// the generic national entries for unrecognized regions. An empty region
// returns nothing.
func (d *StaticDirectory) LookupCompetitors(_ context.Context, region string) ([]model.Competitor, error) {
	if region == "" {
		return nil, nil
	}

	code := strings.ToUpper(region)
	if mapped, ok := stateNames[strings.ToLower(region)]; ok {
		code = mapped
	}

	entries, ok := staticCompetitors[code]
	if !ok {
		entries = genericCompetitors
	}

	out := make([]model.Competitor, len(entries))
	for i, e := range entries {
		e.SharedChallenges = sharedChallenges
		out[i] = e
	}
	return out, nil
}

var stateCodeRe = regexp.MustCompile(`,\s*([A-Z]{2})\b`)

var regionPhraseRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)located in (\w+)`),
	regexp.MustCompile(`(?i)based in (\w+)`),
	regexp.MustCompile(`(?i)serving (\w+)`),
	regexp.MustCompile(`(?i)throughout (\w+)`),
}

// ExtractRegion pulls a US state code from the facility's location string,
// falling back to location-pattern phrases in the scraped text.
func ExtractRegion(location string, pages []model.PageRecord) string {
	if m := stateCodeRe.FindStringSubmatch(location); m != nil {
		return m[1]
	}

	content := joinContent(pages)
	for _, re := range regionPhraseRes {
		if m := re.FindStringSubmatch(content); m != nil {
			return m[1]
		}
	}
	return ""
}
