package model

import "time"

// Facility is a target prospect: a medical-imaging organization the sales
// team wants a playbook for.
type Facility struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Website    string    `json:"website,omitempty"`
	PainPoints string    `json:"pain_points,omitempty"`
	Contact    string    `json:"contact,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ScanStatus tracks a persisted scan's lifecycle.
type ScanStatus string

const (
	ScanStatusComplete ScanStatus = "complete"
	ScanStatusPartial  ScanStatus = "partial"
	ScanStatusFailed   ScanStatus = "failed"
)

// Scan is a persisted website-intelligence record.
type Scan struct {
	ID           string               `json:"id"`
	URL          string               `json:"url"`
	Status       ScanStatus           `json:"status"`
	Intelligence *WebsiteIntelligence `json:"intelligence"`
	CreatedAt    time.Time            `json:"created_at"`
}

// StatusFor derives the persisted status from a scan result.
func StatusFor(intel *WebsiteIntelligence) ScanStatus {
	switch {
	case intel == nil || intel.PagesScanned == 0:
		return ScanStatusFailed
	case intel.Error != "":
		return ScanStatusPartial
	default:
		return ScanStatusComplete
	}
}
