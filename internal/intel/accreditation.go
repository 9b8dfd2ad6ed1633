package intel

import (
	"regexp"
	"strings"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

var accreditationYearRe = regexp.MustCompile(`(20\d\d)`)

// ExtractAccreditations finds mentions of known accreditation bodies,
// recording the containing sentence and any 4-digit year found in it.
func ExtractAccreditations(pages []model.PageRecord) []model.Accreditation {
	var accreditations []model.Accreditation

	for _, page := range pages {
		content := strings.ToLower(page.Content)
		var sentences []string

		for _, org := range accreditationOrgs {
			orgLower := strings.ToLower(org)
			if !strings.Contains(content, orgLower) {
				continue
			}
			if sentences == nil {
				sentences = splitSentences(content)
			}
			for _, sentence := range sentences {
				if !strings.Contains(sentence, orgLower) {
					continue
				}
				year := ""
				if m := accreditationYearRe.FindStringSubmatch(sentence); m != nil {
					year = m[1]
				}
				accreditations = append(accreditations, model.Accreditation{
					Organization: org,
					Year:         year,
					Context:      sentence,
					Page:         page.URL,
				})
			}
		}
	}

	return accreditations
}
