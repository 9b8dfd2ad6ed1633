package intel

import (
	"regexp"
	"strings"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

var implementationTerms = []string{
	"implemented", "deployed", "installed", "upgraded to",
	"migrated to", "adopted", "switched to", "partnered with",
}

var implementationTechTerms = []string{
	"pacs", "ris", "emr", "ehr", "vna", "radiology information system",
	"electronic health record", "vendor neutral archive", "cloud",
}

var implementationYearRe = regexp.MustCompile(`\b(20\d\d)\b`)

// ExtractImplementationDates finds sentences pairing an implementation verb
// with a technology term and a 2000s year, recording when systems went in.
func ExtractImplementationDates(pages []model.PageRecord) []model.ImplementationMention {
	var mentions []model.ImplementationMention

	for _, page := range pages {
		content := strings.ToLower(page.Content)
		for _, sentence := range splitSentences(content) {
			if !containsAny(sentence, implementationTerms...) || !containsAny(sentence, implementationTechTerms...) {
				continue
			}
			m := implementationYearRe.FindStringSubmatch(sentence)
			if m == nil {
				continue
			}

			tech := "Technology system"
			for _, t := range implementationTechTerms {
				if strings.Contains(sentence, t) {
					tech = strings.ToUpper(t)
					break
				}
			}

			mentions = append(mentions, model.ImplementationMention{
				Technology: tech,
				Year:       m[1],
				Context:    sentence,
				Page:       page.URL,
			})
		}
	}

	return mentions
}
