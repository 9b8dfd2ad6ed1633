package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

func TestAnalyzeBudgetCycleExplicit(t *testing.T) {
	pages := []model.PageRecord{
		pageWithContent("https://example.com/about",
			"Our fiscal year begins in October. Capital requests due by June each cycle."),
	}
	cycle := AnalyzeBudgetCycle(pages)
	assert.Equal(t, "October", cycle.FiscalYearStart)
	assert.Equal(t, "June", cycle.PlanningTimeframe)
}

func TestAnalyzeBudgetCycleDefaults(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantStart    string
		wantPlanning string
	}{
		{
			name:         "hospital",
			content:      "Example Hospital serves the region.",
			wantStart:    "July",
			wantPlanning: "3-4 months before fiscal year start",
		},
		{
			name:         "unclassified",
			content:      "A diagnostic imaging provider.",
			wantStart:    "January",
			wantPlanning: "2-3 months before fiscal year start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := []model.PageRecord{pageWithContent("https://example.com/", tt.content)}
			cycle := AnalyzeBudgetCycle(pages)
			assert.Equal(t, tt.wantStart, cycle.FiscalYearStart)
			assert.Equal(t, tt.wantPlanning, cycle.PlanningTimeframe)
		})
	}
}
