package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

func TestEstimateStudyVolumeExplicit(t *testing.T) {
	pages := []model.PageRecord{
		pageWithContent("https://example.com/", "Our radiologists read 42,000 studies per year across the network."),
	}
	assert.Equal(t, 42000, EstimateStudyVolume(pages, 1, nil))

	// the largest explicit number wins
	pages = append(pages, pageWithContent("https://example.com/about",
		"The main campus performs approximately 55,000 exams and our annual volume of 60,000 keeps growing."))
	assert.Equal(t, 60000, EstimateStudyVolume(pages, 1, nil))
}

func TestEstimateStudyVolumeByFacilityType(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		locations  int
		modalities []string
		want       int
	}{
		{
			name:      "hospital base",
			content:   "Example Hospital is a regional medical center.",
			locations: 1,
			want:      50000,
		},
		{
			name:      "imaging center with locations",
			content:   "Our imaging center network serves the metro area.",
			locations: 3,
			want:      60000,
		},
		{
			name:      "clinic",
			content:   "A family clinic with imaging services.",
			locations: 1,
			want:      5000,
		},
		{
			name:      "unclassified default",
			content:   "We provide diagnostic services.",
			locations: 1,
			want:      10000,
		},
		{
			name:       "broad modality mix scales up",
			content:    "Example Hospital campus.",
			locations:  1,
			modalities: []string{"CT", "MRI", "Ultrasound", "X-ray", "Mammography"},
			want:       75000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := []model.PageRecord{pageWithContent("https://example.com/", tt.content)}
			assert.Equal(t, tt.want, EstimateStudyVolume(pages, tt.locations, tt.modalities))
		})
	}
}
