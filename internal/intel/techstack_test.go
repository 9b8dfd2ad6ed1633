package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

func TestAnalyzeTechStack(t *testing.T) {
	pages := []model.PageRecord{
		pageWithContent("https://example.com/technology",
			"Our Siemens syngo PACS offers integration with Epic Radiant and a vendor neutral archive. "+
				"We run MRI, CT scan, ultrasound, and mammography services in the cloud with strong data security."),
	}

	stack := AnalyzeTechStack(pages)
	assert.Equal(t, "Siemens", stack.PACSVendor)
	assert.Equal(t, "Epic Radiant", stack.RISVendor)
	assert.Equal(t, "Epic", stack.EMRSystem)
	assert.Contains(t, stack.Infrastructure, "Cloud-based")
	assert.Contains(t, stack.Infrastructure, "VNA")
	assert.ElementsMatch(t, []string{"CT", "MRI", "Ultrasound", "Mammography"}, stack.Modalities)
	assert.Equal(t, "High", stack.ITEnvironment["security_focus"])
	assert.Equal(t, "High", stack.ITEnvironment["integration_focus"])
}

func TestAnalyzeTechStackUnknown(t *testing.T) {
	pages := []model.PageRecord{
		pageWithContent("https://example.com/", "We care deeply about our patients."),
	}

	stack := AnalyzeTechStack(pages)
	assert.Equal(t, "Unknown", stack.PACSVendor)
	assert.Equal(t, "Unknown", stack.RISVendor)
	assert.Equal(t, "Unknown", stack.EMRSystem)
	assert.Empty(t, stack.Infrastructure)
	assert.Empty(t, stack.Modalities)
}
