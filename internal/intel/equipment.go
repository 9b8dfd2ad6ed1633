package intel

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// equipmentTerms map each equipment type to the keywords that imply it.
var equipmentTerms = []struct {
	Type  string
	Terms []string
}{
	{"CT Scanner", []string{"ct scanner", "computed tomography", "ct scan"}},
	{"MRI", []string{"mri", "magnetic resonance", "tesla"}},
	{"X-Ray", []string{"x-ray", "radiography", "digital radiography"}},
	{"Ultrasound", []string{"ultrasound", "sonogram", "doppler"}},
	{"Mammography", []string{"mammogram", "mammography", "breast imaging"}},
	{"PET", []string{"pet scan", "pet/ct", "positron emission"}},
	{"Nuclear Medicine", []string{"nuclear medicine", "spect", "gamma camera"}},
}

var teslaRe = regexp.MustCompile(`(\d+\.?\d*)\s*tesla`)

var titleCaser = cases.Title(language.English)

// ExtractEquipment finds imaging-equipment mentions across all pages. For
// each equipment type, only the first matching sentence per page is
// recorded, which keeps repeated boilerplate from flooding the result. A
// vendor named in the same sentence is attached; MRI sentences are also
// checked for a Tesla field strength.
func ExtractEquipment(pages []model.PageRecord) []model.EquipmentMention {
	var mentions []model.EquipmentMention

	for _, page := range pages {
		content := strings.ToLower(page.Content)
		sentences := splitSentences(content)

		for _, equip := range equipmentTerms {
			mention, found := findEquipmentInPage(sentences, equip.Type, equip.Terms, page.URL)
			if found {
				mentions = append(mentions, mention)
			}
		}
	}

	return mentions
}

func findEquipmentInPage(sentences []string, equipType string, terms []string, pageURL string) (model.EquipmentMention, bool) {
	for _, term := range terms {
		for _, sentence := range sentences {
			if !strings.Contains(sentence, term) {
				continue
			}

			vendor := "Unknown"
			for _, v := range equipmentVendors {
				if strings.Contains(sentence, v) {
					vendor = titleCaser.String(v)
					break
				}
			}

			modelInfo := ""
			if strings.Contains(sentence, "tesla") && strings.Contains(sentence, "mri") {
				if m := teslaRe.FindStringSubmatch(sentence); m != nil {
					modelInfo = m[1] + "T"
				}
			}

			return model.EquipmentMention{
				Type:      equipType,
				Vendor:    vendor,
				ModelInfo: modelInfo,
				Source:    pageURL,
			}, true
		}
	}
	return model.EquipmentMention{}, false
}
