package intel

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// maxSiblingLookahead bounds how far past a name heading we look for a
// matching title element.
const maxSiblingLookahead = 3

// FindKeyPersonnel extracts name/title pairs from pages that look like
// leadership or team pages. A heading or emphasized element is treated as a
// name when one of the next few sibling elements contains a leadership
// title keyword.
func FindKeyPersonnel(pages []model.PageRecord) []model.Personnel {
	var personnel []model.Personnel

	for _, page := range pages {
		if !containsAny(strings.ToLower(page.URL), "about", "team", "staff", "leadership", "physician") {
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
		if err != nil {
			zap.L().Debug("personnel: parse failed", zap.String("url", page.URL), zap.Error(err))
			continue
		}

		doc.Find("h2, h3, h4, h5, strong").Each(func(_ int, s *goquery.Selection) {
			name := strings.TrimSpace(s.Text())
			if name == "" {
				return
			}

			title := findNearbyTitle(s)
			if title != "" {
				personnel = append(personnel, model.Personnel{
					Name:  name,
					Title: title,
					URL:   page.URL,
				})
			}
		})
	}

	return personnel
}

// findNearbyTitle scans the next few sibling elements for leadership-title
// text.
func findNearbyTitle(s *goquery.Selection) string {
	sibling := s.Next()
	for i := 0; i < maxSiblingLookahead && sibling.Length() > 0; i++ {
		text := strings.TrimSpace(sibling.Text())
		if containsAny(strings.ToLower(text), leadershipTitles...) {
			return text
		}
		sibling = sibling.Next()
	}
	return ""
}
