package intel

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// minTextLen filters out nav fragments and button labels when collecting
// body text.
const minTextLen = 15

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// ParsePage extracts a PageRecord from raw HTML. Returns nil when the HTML
// is empty. A parse failure on one page never affects others; the caller
// drops the page.
func ParsePage(html, pageURL string) (*model.PageRecord, error) {
	if strings.TrimSpace(html) == "" {
		return nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, eris.Wrap(err, "parser: parse html")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, eris.Wrap(err, "parser: parse page url")
	}

	rec := &model.PageRecord{
		URL:             pageURL,
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		MetaDescription: strings.TrimSpace(doc.Find(`meta[name="description"]`).AttrOr("content", "")),
		HTML:            html,
	}

	rec.Content = extractBodyText(doc)
	rec.ContentLength = len(rec.Content)
	rec.Links, rec.Emails = extractLinksAndEmails(doc, base, rec.Content)
	rec.JobListings = extractJobListings(doc, pageURL)
	rec.TermCounts = countTerms(rec.Content)

	return rec, nil
}

// extractBodyText concatenates heading, paragraph, and list-item text long
// enough to be prose.
func extractBodyText(doc *goquery.Document) string {
	var parts []string
	doc.Find("h1, h2, h3, h4, h5, p, li").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) > minTextLen {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// extractLinksAndEmails walks every anchor, keeping same-domain navigational
// links and harvesting addresses from mailto targets. Emails found in body
// text are merged in, deduplicated in first-seen order.
func extractLinksAndEmails(doc *goquery.Document, base *url.URL, content string) ([]model.Link, []string) {
	var links []model.Link
	var emails []string
	seenEmail := make(map[string]bool)

	addEmail := func(addr string) {
		if addr != "" && !seenEmail[addr] {
			seenEmail[addr] = true
			emails = append(emails, addr)
		}
	}

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") || strings.HasPrefix(href, "tel:") {
			return
		}
		if strings.HasPrefix(href, "mailto:") {
			addEmail(emailRe.FindString(strings.TrimPrefix(href, "mailto:")))
			return
		}

		parsed, err := url.Parse(href)
		if err != nil {
			return
		}
		absolute := base.ResolveReference(parsed)
		if absolute.Host != base.Host {
			return
		}
		absolute.Fragment = ""

		links = append(links, model.Link{
			URL:  absolute.String(),
			Text: strings.TrimSpace(s.Text()),
		})
	})

	for _, addr := range emailRe.FindAllString(content, -1) {
		addEmail(addr)
	}

	return links, emails
}

// extractJobListings collects imaging/IT job titles from headings and
// anchors, but only on pages whose path suggests a careers section.
func extractJobListings(doc *goquery.Document, pageURL string) []string {
	lower := strings.ToLower(pageURL)
	if !containsAny(lower, "/career", "/job") {
		return nil
	}

	var jobs []string
	seen := make(map[string]bool)
	doc.Find("h1, h2, h3, h4, h5, a").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) <= 5 || seen[text] {
			return
		}
		if containsAny(strings.ToLower(text), jobTitleKeywords...) {
			seen[text] = true
			jobs = append(jobs, text)
		}
	})
	return jobs
}

// countTerms counts each dictionary term's occurrences in the page content,
// keeping only terms that appeared.
func countTerms(content string) map[string][]model.TermCount {
	lower := strings.ToLower(content)
	counts := make(map[string][]model.TermCount, len(termCategories))
	for _, cat := range termCategories {
		var matches []model.TermCount
		for _, term := range cat.Terms {
			if n := strings.Count(lower, term); n > 0 {
				matches = append(matches, model.TermCount{Term: term, Count: n})
			}
		}
		counts[cat.Name] = matches
	}
	return counts
}
