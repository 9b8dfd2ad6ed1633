package intel

import (
	"sort"
	"strings"
)

// Vendor maps a canonical vendor name to the keyword variants that count as
// a mention of it.
type Vendor struct {
	Name     string
	Keywords []string
}

// pacsVendors are the PACS products recognized in site content.
var pacsVendors = []Vendor{
	{Name: "GE Healthcare", Keywords: []string{"ge healthcare", "ge pacs", "centricity"}},
	{Name: "Philips", Keywords: []string{"philips", "intellispace"}},
	{Name: "Siemens", Keywords: []string{"siemens", "syngo"}},
	{Name: "Fujifilm", Keywords: []string{"fujifilm", "synapse"}},
	{Name: "Agfa", Keywords: []string{"agfa", "impax", "enterprise imaging"}},
	{Name: "Carestream", Keywords: []string{"carestream", "vue pacs"}},
	{Name: "Merge (IBM)", Keywords: []string{"merge", "merge pacs"}},
	{Name: "Sectra", Keywords: []string{"sectra"}},
	{Name: "Intelerad", Keywords: []string{"intelerad"}},
	{Name: "Change Healthcare", Keywords: []string{"change healthcare", "mckesson"}},
	{Name: "Hyland", Keywords: []string{"hyland", "acuo", "nilread"}},
}

// risVendors are the RIS products recognized in site content.
var risVendors = []Vendor{
	{Name: "Epic Radiant", Keywords: []string{"epic", "radiant"}},
	{Name: "Cerner", Keywords: []string{"cerner", "radnet"}},
	{Name: "Meditech", Keywords: []string{"meditech"}},
	{Name: "Allscripts", Keywords: []string{"allscripts"}},
	{Name: "GE Healthcare", Keywords: []string{"ge", "centricity ris"}},
	{Name: "Merge (IBM)", Keywords: []string{"merge ris"}},
	{Name: "Fujifilm", Keywords: []string{"fujifilm ris", "synapse ris"}},
}

// emrVendors are the EMR/EHR systems recognized in site content.
var emrVendors = []Vendor{
	{Name: "Epic", Keywords: []string{"epic", "epic systems", "epic emr", "epic ehr"}},
	{Name: "Cerner", Keywords: []string{"cerner", "cerner millennium", "cerner ehr"}},
	{Name: "Meditech", Keywords: []string{"meditech", "meditech ehr"}},
	{Name: "Allscripts", Keywords: []string{"allscripts", "allscripts professional"}},
	{Name: "athenahealth", Keywords: []string{"athenahealth", "athenaclinicals"}},
	{Name: "eClinicalWorks", Keywords: []string{"eclinicalworks", "ecw"}},
	{Name: "NextGen", Keywords: []string{"nextgen", "nextgen healthcare"}},
	{Name: "Greenway", Keywords: []string{"greenway", "greenway health", "prime suite"}},
}

// equipmentVendors are searched for in the same sentence as an equipment term.
var equipmentVendors = []string{
	"ge", "siemens", "philips", "toshiba", "canon", "hitachi", "samsung", "fujifilm",
}

// pickVendor counts each vendor's keyword occurrences in the lowercased
// content and returns the canonical name with the highest total, or
// "Unknown" if nothing matched. Ties break lexicographically on canonical
// name so repeated scans of the same content give the same answer.
func pickVendor(content string, vendors []Vendor) string {
	best := "Unknown"
	bestCount := 0
	names := make([]string, 0, len(vendors))
	counts := make(map[string]int, len(vendors))

	for _, v := range vendors {
		total := 0
		for _, kw := range v.Keywords {
			total += strings.Count(content, kw)
		}
		if total > 0 {
			counts[v.Name] = total
			names = append(names, v.Name)
		}
	}

	sort.Strings(names)
	for _, name := range names {
		if counts[name] > bestCount {
			best = name
			bestCount = counts[name]
		}
	}
	return best
}
