package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

func TestExtractEquipment(t *testing.T) {
	pages := []model.PageRecord{
		pageWithContent("https://example.com/equipment",
			"Our new Siemens 3 Tesla MRI delivers exceptional detail. "+
				"The department also runs a CT scanner for emergency cases. "+
				"A second MRI mention should not create a duplicate."),
	}

	mentions := ExtractEquipment(pages)
	require.Len(t, mentions, 2)

	byType := make(map[string]model.EquipmentMention, len(mentions))
	for _, m := range mentions {
		byType[m.Type] = m
	}

	mri, ok := byType["MRI"]
	require.True(t, ok)
	assert.Equal(t, "Siemens", mri.Vendor)
	assert.Equal(t, "3T", mri.ModelInfo)
	assert.Equal(t, "https://example.com/equipment", mri.Source)

	ct, ok := byType["CT Scanner"]
	require.True(t, ok)
	assert.Equal(t, "Unknown", ct.Vendor)
	assert.Empty(t, ct.ModelInfo)
}

func TestExtractEquipmentNone(t *testing.T) {
	pages := []model.PageRecord{
		pageWithContent("https://example.com/", "We love our patients and our community."),
	}
	assert.Empty(t, ExtractEquipment(pages))
}
