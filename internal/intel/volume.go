package intel

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

var volumeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+(?:,\d+)?)\s+(?:studies|exams|scans|images|imaging procedures|procedures|patients)\s+(?:per|a|each)\s+(?:year|annually)`),
	regexp.MustCompile(`(?i)annual\s+volume\s+of\s+(\d+(?:,\d+)?)`),
	regexp.MustCompile(`(?i)performs?\s+(?:over|about|approximately)?\s*(\d+(?:,\d+)?)\s+(?:studies|exams|procedures)`),
	regexp.MustCompile(`(?i)serving\s+(?:over|about|approximately)?\s*(\d+(?:,\d+)?)\s+patients`),
}

// facilityTypeIndicators classify the facility for the estimation fallback,
// checked in order with first match winning.
var facilityTypeIndicators = []struct {
	Type       string
	Indicators []string
	BaseVolume int
}{
	{"hospital", []string{"hospital", "medical center", "health system"}, 50000},
	{"imaging_center", []string{"imaging center", "diagnostic center", "radiology center"}, 20000},
	{"physician_practice", []string{"physician practice", "medical practice", "clinic"}, 5000},
	{"outpatient", []string{"outpatient", "ambulatory"}, 15000},
}

const defaultBaseVolume = 10000

// comprehensiveModalityCount is the service-mix threshold above which the
// estimate is scaled up by half.
const comprehensiveModalityCount = 4

// EstimateStudyVolume returns the annual imaging study volume. An explicit
// numeric mention in the content always wins, taking the largest value
// found. With no mention the estimate is a base volume for the inferred
// facility type, multiplied by location count and adjusted for a broad
// modality mix. The fallback is a heuristic, not a measurement.
func EstimateStudyVolume(pages []model.PageRecord, locationCount int, modalities []string) int {
	content := joinContent(pages)

	if v := explicitStudyVolume(content); v > 0 {
		return v
	}

	base := defaultBaseVolume
	lower := strings.ToLower(content)
	for _, ft := range facilityTypeIndicators {
		if containsAny(lower, ft.Indicators...) {
			base = ft.BaseVolume
			break
		}
	}

	if locationCount < 1 {
		locationCount = 1
	}
	estimated := base * locationCount
	if len(modalities) > comprehensiveModalityCount {
		estimated = estimated * 3 / 2
	}
	return estimated
}

func explicitStudyVolume(content string) int {
	best := 0
	for _, re := range volumeRes {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			raw := strings.ReplaceAll(m[1], ",", "")
			if n, err := strconv.Atoi(raw); err == nil && n > best {
				best = n
			}
		}
	}
	return best
}
