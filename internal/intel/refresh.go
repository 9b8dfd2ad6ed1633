package intel

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

var refreshTerms = []string{
	"refresh", "upgrade", "replace", "update", "modernize",
	"new system", "implementation", "migration",
}

var refreshTechTerms = []string{
	"system", "pacs", "ris", "equipment", "workstation", "server",
	"infrastructure", "software", "hardware",
}

var refreshTimeTerms = []string{
	"years", "annually", "cycle", "schedule", "phase",
}

var cycleYearsRe = regexp.MustCompile(`(\d+)[\s-]*year`)

var equipmentAgeRes = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[\s-]*year[\s-]*old`),
	regexp.MustCompile(`installed (\d+) years ago`),
	regexp.MustCompile(`purchased (\d+) years ago`),
}

// IdentifyRefreshCycle infers how often the facility replaces technology.
// Sentences combining a refresh term, a technology term, and a time term are
// taken as explicit statements. With none, equipment-age mentions are
// averaged; failing that, the industry-standard cycle is reported.
func IdentifyRefreshCycle(pages []model.PageRecord) []model.RefreshCycle {
	var indicators []model.RefreshCycle

	for _, page := range pages {
		content := strings.ToLower(page.Content)
		for _, sentence := range splitSentences(content) {
			if !containsAny(sentence, refreshTerms...) ||
				!containsAny(sentence, refreshTechTerms...) ||
				!containsAny(sentence, refreshTimeTerms...) {
				continue
			}

			years := "Unknown"
			if m := cycleYearsRe.FindStringSubmatch(sentence); m != nil {
				years = m[1]
			}
			indicators = append(indicators, model.RefreshCycle{
				CycleYears: years,
				Context:    sentence,
				Page:       page.URL,
			})
		}
	}

	if len(indicators) > 0 {
		return indicators
	}

	if inferred, ok := inferCycleFromEquipmentAge(pages); ok {
		return []model.RefreshCycle{inferred}
	}

	return []model.RefreshCycle{{
		InferredCycle: "Typical 5-7 year cycle for healthcare imaging technology",
		Source:        "Industry standard",
	}}
}

// inferCycleFromEquipmentAge averages "N years old" style mentions on the
// first page that has any.
func inferCycleFromEquipmentAge(pages []model.PageRecord) (model.RefreshCycle, bool) {
	for _, page := range pages {
		content := strings.ToLower(page.Content)
		var ages []int
		for _, re := range equipmentAgeRes {
			for _, m := range re.FindAllStringSubmatch(content, -1) {
				if n, err := strconv.Atoi(m[1]); err == nil {
					ages = append(ages, n)
				}
			}
		}
		if len(ages) == 0 {
			continue
		}

		sum := 0
		for _, a := range ages {
			sum += a
		}
		avg := float64(sum) / float64(len(ages))
		return model.RefreshCycle{
			InferredCycle: fmt.Sprintf("Approximately %.1f years based on current equipment age mentions", avg),
			Source:        "Age mentions in content",
		}, true
	}
	return model.RefreshCycle{}, false
}
