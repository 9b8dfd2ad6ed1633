package model

import "time"

// PlaybookSection is one generated block of a sales playbook.
type PlaybookSection struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

// Playbook is the generated sales document for one facility, assembled from
// website intelligence plus generated text sections.
type Playbook struct {
	ID           string            `json:"id" yaml:"id"`
	FacilityName string            `json:"facility_name" yaml:"facility_name"`
	Website      string            `json:"website,omitempty" yaml:"website,omitempty"`
	Sections     []PlaybookSection `json:"sections" yaml:"sections"`
	ScanID       string            `json:"scan_id,omitempty" yaml:"scan_id,omitempty"`
	GeneratedAt  time.Time         `json:"generated_at" yaml:"generated_at"`
}
