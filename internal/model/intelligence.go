package model

import "time"

// EquipmentMention is one imaging-equipment reference found on a page.
// Vendor is "Unknown" when no vendor name appeared in the same sentence.
type EquipmentMention struct {
	Type      string `json:"type"`
	Vendor    string `json:"vendor"`
	ModelInfo string `json:"model_info,omitempty"`
	Source    string `json:"source"`
}

// Personnel is a name/title pair extracted from a leadership or team page.
type Personnel struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// SignalMention records a growth or pain-point keyword together with the
// sentence it appeared in.
type SignalMention struct {
	Indicator string `json:"indicator"`
	Context   string `json:"context"`
	Page      string `json:"page"`
}

// TechStack summarizes the vendor environment inferred from page content.
// Every vendor field defaults to "Unknown" when no keyword matched.
type TechStack struct {
	PACSVendor     string            `json:"pacs_vendor"`
	RISVendor      string            `json:"ris_vendor"`
	EMRSystem      string            `json:"emr_system"`
	Infrastructure []string          `json:"infrastructure"`
	Modalities     []string          `json:"modalities"`
	ITEnvironment  map[string]string `json:"it_environment"`
}

// Competitor is a regional competitor organization from the directory.
type Competitor struct {
	Name             string   `json:"name"`
	Website          string   `json:"website"`
	Description      string   `json:"description"`
	SharedChallenges []string `json:"shared_challenges"`
}

// ImplementationMention records a technology paired with the year it was
// implemented, as stated on the site.
type ImplementationMention struct {
	Technology string `json:"technology"`
	Year       string `json:"year"`
	Context    string `json:"context"`
	Page       string `json:"page"`
}

// RefreshCycle is one inference about how often the facility replaces
// technology. Either CycleYears/Context/Page are set (explicit mention) or
// InferredCycle/Source are (fallback inference).
type RefreshCycle struct {
	CycleYears    string `json:"cycle_years,omitempty"`
	Context       string `json:"context,omitempty"`
	Page          string `json:"page,omitempty"`
	InferredCycle string `json:"inferred_cycle,omitempty"`
	Source        string `json:"source,omitempty"`
}

// BudgetCycle holds the inferred fiscal-year timing.
type BudgetCycle struct {
	FiscalYearStart   string `json:"fiscal_year_start"`
	PlanningTimeframe string `json:"planning_timeframe"`
}

// Accreditation records an accreditation-body mention and any year found in
// the same sentence.
type Accreditation struct {
	Organization string `json:"organization"`
	Year         string `json:"year,omitempty"`
	Context      string `json:"context"`
	Page         string `json:"page"`
}

// WebsiteIntelligence is the aggregate result of one website scan. It is
// fully populated before being returned and never mutated afterwards.
type WebsiteIntelligence struct {
	URL             string `json:"url"`
	BaseURL         string `json:"base_url"`
	Domain          string `json:"domain"`
	PagesScanned    int    `json:"pages_scanned"`
	PageTitle       string `json:"page_title"`
	MetaDescription string `json:"meta_description"`

	PagesData []PageRecord `json:"pages_data"`

	TermCounts   map[string]map[string]int `json:"term_counts"`
	EmailsFound  []string                  `json:"emails_found"`
	JobOpenings  []string                  `json:"job_openings"`
	KeyPersonnel []Personnel               `json:"key_personnel"`

	TechnologyStack      TechStack          `json:"technology_stack"`
	EquipmentInformation []EquipmentMention `json:"equipment_information"`
	GrowthIndicators     []SignalMention    `json:"growth_indicators"`
	PainPoints           []SignalMention    `json:"pain_points"`

	LocationCount     int `json:"location_count"`
	AnnualStudyVolume int `json:"annual_study_volume"`

	CompetitorInformation         []Competitor            `json:"competitor_information"`
	TechnologyImplementationDates []ImplementationMention `json:"technology_implementation_dates"`
	TechnologyRefreshCycle        []RefreshCycle          `json:"technology_refresh_cycle"`
	BudgetCycleInfo               BudgetCycle             `json:"budget_cycle_info"`
	Accreditations                []Accreditation         `json:"accreditations"`

	RadiologyMentions     int `json:"radiology_mentions"`
	PACSMentions          int `json:"pacs_mentions"`
	DICOMMentions         int `json:"dicom_mentions"`
	WorkflowMentions      int `json:"workflow_mentions"`
	ModernizationMentions int `json:"modernization_mentions"`

	HasIntegrationPainPoints  bool `json:"has_integration_pain_points"`
	HasWorkflowPainPoints     bool `json:"has_workflow_pain_points"`
	HasLegacySystemPainPoints bool `json:"has_legacy_system_pain_points"`

	ScanTimestamp time.Time `json:"scan_timestamp"`
	Error         string    `json:"error,omitempty"`
}
