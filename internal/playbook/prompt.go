package playbook

import (
	"fmt"
	"strings"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// systemPrompt is the shared system instruction for every playbook section.
const systemPrompt = `You are an expert medical imaging sales strategist. You build sales playbooks for companies selling PACS, VNA, enterprise imaging, and imaging IT modernization solutions to healthcare facilities.

Rules:
- Ground every claim in the facility context and website intelligence provided
- Where the intelligence is missing or limited, say so and fall back to industry norms for the facility type
- Be specific: name systems, roles, and numbers from the context rather than generic advice
- Write in clear markdown with short sections and bullet points
- Never invent personnel names, vendor names, or statistics that are not in the context`

// sectionSpec pairs a playbook section title with the instruction that
// generates it.
type sectionSpec struct {
	Title       string
	Instruction string
}

var sectionSpecs = []sectionSpec{
	{
		Title: "Website Intelligence Analysis",
		Instruction: `Analyze the website intelligence and produce an actionable report:
1. Current technology landscape: identified PACS/RIS/EMR vendors, infrastructure, and modalities, with what they imply about the facility's imaging IT maturity.
2. Pain point assessment: prioritize the identified pain points by urgency and map each to the class of solution that addresses it.
3. Buying signals: modernization language, refresh-cycle evidence, budget timing, job postings, and growth indicators.
4. Top 3 sales opportunities, each tied to specific language found on the website.`,
	},
	{
		Title: "Deal Qualification",
		Instruction: `Qualify this opportunity:
1. Estimate deal size from location count, annual study volume, and facility type.
2. Score closing probability 1-10 with rationale.
3. Identify likely decision-makers by role (use named personnel where available) and the approval chain.
4. Timing: when to engage, based on budget cycle and refresh cycle evidence.`,
	},
	{
		Title: "Value Propositions",
		Instruction: `Write value propositions tailored to this facility:
1. One headline value proposition per identified pain point category (integration, workflow, legacy systems).
2. Quantified impact estimates appropriate for the facility's scale (study volume, locations).
3. Competitive positioning against the incumbent vendors identified in the technology stack.`,
	},
	{
		Title: "Outreach Plan",
		Instruction: `Draft an outreach plan:
1. A first-touch email (subject plus body, under 150 words) referencing something specific from the website.
2. A follow-up call framework with three discovery questions grounded in the identified pain points.
3. Objection handling for the three most likely objections given the incumbent systems and budget cycle.`,
	},
}

// noWebsiteData is the context block used when a scan failed or no
// intelligence exists.
const noWebsiteData = "No website data available."

// ContextSummary renders website intelligence as the human-readable block
// embedded in every section prompt. A nil record or one with a scan error
// degrades to a no-data marker so generation still proceeds on facility
// details alone.
func ContextSummary(intel *model.WebsiteIntelligence) string {
	if intel == nil || intel.Error != "" {
		return noWebsiteData
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Website URL: %s\n", orUnknown(intel.URL))
	fmt.Fprintf(&sb, "Website Title: %s\n", orUnknown(intel.PageTitle))
	fmt.Fprintf(&sb, "Pages Scanned: %d\n", intel.PagesScanned)

	sb.WriteString("\n## Content Analysis\n")
	fmt.Fprintf(&sb, "Radiology/Imaging Mentions: %d\n", intel.RadiologyMentions)
	fmt.Fprintf(&sb, "PACS Mentions: %d\n", intel.PACSMentions)
	fmt.Fprintf(&sb, "DICOM Mentions: %d\n", intel.DICOMMentions)
	fmt.Fprintf(&sb, "Workflow Mentions: %d\n", intel.WorkflowMentions)
	fmt.Fprintf(&sb, "Modernization Mentions: %d\n", intel.ModernizationMentions)

	sb.WriteString("\n## Identified Technology Stack\n")
	fmt.Fprintf(&sb, "PACS Vendor: %s\n", orUnknown(intel.TechnologyStack.PACSVendor))
	fmt.Fprintf(&sb, "RIS Vendor: %s\n", orUnknown(intel.TechnologyStack.RISVendor))
	fmt.Fprintf(&sb, "EMR System: %s\n", orUnknown(intel.TechnologyStack.EMRSystem))
	fmt.Fprintf(&sb, "Infrastructure: %s\n", joinOrUnknown(intel.TechnologyStack.Infrastructure))
	fmt.Fprintf(&sb, "Modalities: %s\n", joinOrUnknown(intel.TechnologyStack.Modalities))

	sb.WriteString("\n## Facility Scale\n")
	fmt.Fprintf(&sb, "Locations: %d\n", intel.LocationCount)
	fmt.Fprintf(&sb, "Estimated Annual Study Volume: %d\n", intel.AnnualStudyVolume)

	if len(intel.KeyPersonnel) > 0 {
		sb.WriteString("\n## Key Personnel\n")
		for _, p := range intel.KeyPersonnel {
			fmt.Fprintf(&sb, "- %s, %s\n", p.Name, p.Title)
		}
	}

	if len(intel.PainPoints) > 0 {
		sb.WriteString("\n## Identified Pain Points\n")
		for _, pp := range intel.PainPoints {
			fmt.Fprintf(&sb, "- [%s] %s\n", pp.Indicator, pp.Context)
		}
	}

	if len(intel.GrowthIndicators) > 0 {
		sb.WriteString("\n## Growth Indicators\n")
		for _, g := range intel.GrowthIndicators {
			fmt.Fprintf(&sb, "- [%s] %s\n", g.Indicator, g.Context)
		}
	}

	if len(intel.JobOpenings) > 0 {
		sb.WriteString("\n## Job Openings\n")
		for _, j := range intel.JobOpenings {
			fmt.Fprintf(&sb, "- %s\n", j)
		}
	}

	if intel.BudgetCycleInfo.FiscalYearStart != "" || intel.BudgetCycleInfo.PlanningTimeframe != "" {
		sb.WriteString("\n## Budget Cycle\n")
		fmt.Fprintf(&sb, "Fiscal Year Start: %s\n", orUnknown(intel.BudgetCycleInfo.FiscalYearStart))
		fmt.Fprintf(&sb, "Planning Timeframe: %s\n", orUnknown(intel.BudgetCycleInfo.PlanningTimeframe))
	}

	if len(intel.TechnologyRefreshCycle) > 0 {
		sb.WriteString("\n## Technology Refresh Evidence\n")
		for _, rc := range intel.TechnologyRefreshCycle {
			if rc.CycleYears != "" {
				fmt.Fprintf(&sb, "- %s year cycle: %s\n", rc.CycleYears, rc.Context)
			} else {
				fmt.Fprintf(&sb, "- %s (%s)\n", rc.InferredCycle, rc.Source)
			}
		}
	}

	if len(intel.CompetitorInformation) > 0 {
		sb.WriteString("\n## Regional Competitors\n")
		for _, c := range intel.CompetitorInformation {
			fmt.Fprintf(&sb, "- %s: %s\n", c.Name, c.Description)
		}
	}

	return sb.String()
}

// facilityContext renders the facility details block for prompts.
func facilityContext(facility model.Facility) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Facility Name: %s\n", orUnknown(facility.Name))
	fmt.Fprintf(&sb, "Location: %s\n", orUnknown(facility.Location))
	fmt.Fprintf(&sb, "Website: %s\n", orUnknown(facility.Website))
	if facility.PainPoints != "" {
		fmt.Fprintf(&sb, "Known Pain Points: %s\n", facility.PainPoints)
	}
	if facility.Contact != "" {
		fmt.Fprintf(&sb, "Contact: %s\n", facility.Contact)
	}
	return sb.String()
}

// buildUserMessage assembles one section's user prompt.
func buildUserMessage(spec sectionSpec, facility model.Facility, intelSummary string) string {
	return fmt.Sprintf(`%s

FACILITY CONTEXT:
%s
WEBSITE INTELLIGENCE SUMMARY:
%s`, spec.Instruction, facilityContext(facility), intelSummary)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func joinOrUnknown(items []string) string {
	if len(items) == 0 {
		return "Unknown"
	}
	return strings.Join(items, ", ")
}
