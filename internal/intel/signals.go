package intel

import (
	"strings"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// IdentifyGrowthIndicators mines sentences mentioning expansion or
// investment language. One sentence can produce several mentions when it
// contains several keywords.
func IdentifyGrowthIndicators(pages []model.PageRecord) []model.SignalMention {
	return mineSignals(pages, growthTerms)
}

// IdentifyPainPoints mines sentences mentioning operational friction.
func IdentifyPainPoints(pages []model.PageRecord) []model.SignalMention {
	return mineSignals(pages, painTerms)
}

func mineSignals(pages []model.PageRecord, terms []string) []model.SignalMention {
	var signals []model.SignalMention

	for _, page := range pages {
		content := strings.ToLower(page.Content)
		var sentences []string // split lazily, most pages have no matches

		for _, term := range terms {
			if !strings.Contains(content, term) {
				continue
			}
			if sentences == nil {
				sentences = splitSentences(content)
			}
			for _, sentence := range sentences {
				if strings.Contains(sentence, term) {
					signals = append(signals, model.SignalMention{
						Indicator: term,
						Context:   sentence,
						Page:      page.URL,
					})
				}
			}
		}
	}

	return signals
}

// painPointFlags derives the boolean pain-point summary flags.
func painPointFlags(painPoints []model.SignalMention) (integration, workflow, legacy bool) {
	for _, p := range painPoints {
		ctx := strings.ToLower(p.Context)
		if strings.Contains(ctx, "integration") {
			integration = true
		}
		if strings.Contains(ctx, "workflow") {
			workflow = true
		}
		if containsAny(ctx, "legacy", "outdated", "obsolete") {
			legacy = true
		}
	}
	return integration, workflow, legacy
}
