package intel

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

var locationCountRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s+locations`),
	regexp.MustCompile(`(?i)(\d+)\s+centers`),
	regexp.MustCompile(`(?i)(\d+)\s+facilities`),
	regexp.MustCompile(`(?i)(\d+)\s+offices`),
	regexp.MustCompile(`(?i)(\d+)\s+clinics`),
	regexp.MustCompile(`(?i)serving\s+(\d+)\s+locations`),
}

var addressIndicators = []string{"suite", "street", "drive", "lane", "road", "ave", "blvd"}

// ExtractLocationCount estimates how many physical sites the facility
// operates. Explicit numeric phrases ("12 locations") win, taking the
// largest number found anywhere in the corpus. Otherwise distinct
// heading/address blocks on location-style pages are counted. Never
// returns less than 1.
func ExtractLocationCount(pages []model.PageRecord) int {
	if n := explicitLocationCount(joinContent(pages)); n > 0 {
		return n
	}
	if n := countLocationBlocks(pages); n > 0 {
		return n
	}
	return 1
}

func explicitLocationCount(content string) int {
	best := 0
	for _, re := range locationCountRes {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}
	}
	return best
}

// countLocationBlocks counts distinct heading/address text blocks on pages
// whose URL suggests a locations listing.
func countLocationBlocks(pages []model.PageRecord) int {
	names := make(map[string]bool)

	for _, page := range pages {
		if !containsAny(strings.ToLower(page.URL), "location", "centers", "find-us") {
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
		if err != nil {
			continue
		}

		doc.Find("h2, h3, h4, h5, address").Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 10 {
				names[text] = true
			}
		})

		doc.Find("li").Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 10 && containsAny(strings.ToLower(text), addressIndicators...) {
				names[text] = true
			}
		})
	}

	return len(names)
}
