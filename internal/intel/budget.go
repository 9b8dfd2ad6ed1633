package intel

import (
	"regexp"
	"strings"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

var fiscalYearRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)fiscal\s+year\s+(?:begins|starts|commences)\s+(?:on|in)\s+(\w+)`),
	regexp.MustCompile(`(?i)(?:fy|fiscal year|budget year)\s+(?:begins|starts|runs)\s+(?:from\s+)?(\w+)`),
}

var budgetPlanningRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)budget\s+(?:requests|planning|process)\s+(?:begins|starts)\s+(\d+)\s+months`),
	regexp.MustCompile(`(?i)capital\s+(?:requests|expenditures|planning)\s+(?:due|submitted|completed)\s+by\s+(\w+)`),
}

// AnalyzeBudgetCycle infers when the facility's fiscal year starts and how
// far ahead it plans capital purchases. Explicit statements win; otherwise
// the facility type sets the defaults (hospitals and academic centers run
// July fiscal years, government October, everyone else January).
func AnalyzeBudgetCycle(pages []model.PageRecord) model.BudgetCycle {
	content := joinContent(pages)
	var cycle model.BudgetCycle

	for _, re := range fiscalYearRes {
		if m := re.FindStringSubmatch(content); m != nil {
			cycle.FiscalYearStart = m[1]
			break
		}
	}
	for _, re := range budgetPlanningRes {
		if m := re.FindStringSubmatch(content); m != nil {
			cycle.PlanningTimeframe = m[1]
			break
		}
	}

	facilityType := ""
	lower := strings.ToLower(content)
	for _, t := range []string{"hospital", "imaging center", "academic", "govt"} {
		if strings.Contains(lower, t) {
			facilityType = t
			break
		}
	}

	if cycle.FiscalYearStart == "" {
		switch facilityType {
		case "hospital", "academic":
			cycle.FiscalYearStart = "July"
		case "govt":
			cycle.FiscalYearStart = "October"
		default:
			cycle.FiscalYearStart = "January"
		}
	}

	if cycle.PlanningTimeframe == "" {
		switch facilityType {
		case "hospital", "academic":
			cycle.PlanningTimeframe = "3-4 months before fiscal year start"
		case "govt":
			cycle.PlanningTimeframe = "6-9 months before fiscal year start"
		default:
			cycle.PlanningTimeframe = "2-3 months before fiscal year start"
		}
	}

	return cycle
}
