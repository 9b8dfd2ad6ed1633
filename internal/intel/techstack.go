package intel

import (
	"strings"

	"github.com/flux-imaging/prospect-cli/internal/model"
)

// modalityTerms map each modality tag to the content keywords that imply it.
var modalityTerms = []struct {
	Name  string
	Terms []string
}{
	{"CT", []string{"ct scan", "computed tomography", "ct scanner"}},
	{"MRI", []string{"mri", "magnetic resonance", "mri scanner"}},
	{"Ultrasound", []string{"ultrasound", "sonography", "doppler"}},
	{"X-ray", []string{"x-ray", "radiography", "digital radiography"}},
	{"Mammography", []string{"mammography", "mammogram", "breast imaging"}},
	{"Nuclear Medicine", []string{"nuclear medicine", "pet", "pet/ct", "spect"}},
	{"Interventional", []string{"interventional", "angiography", "fluoroscopy"}},
	{"Dental", []string{"dental", "cone beam", "cbct", "panoramic"}},
}

// AnalyzeTechStack infers the facility's vendor environment from all page
// content. Every vendor field is "Unknown" when no keyword matched.
func AnalyzeTechStack(pages []model.PageRecord) model.TechStack {
	content := strings.ToLower(joinContent(pages))

	return model.TechStack{
		PACSVendor:     pickVendor(content, pacsVendors),
		RISVendor:      pickVendor(content, risVendors),
		EMRSystem:      pickVendor(content, emrVendors),
		Infrastructure: identifyInfrastructure(content),
		Modalities:     identifyModalities(content),
		ITEnvironment:  identifyITEnvironment(content),
	}
}

func identifyInfrastructure(content string) []string {
	var elements []string
	if containsAny(content, "cloud", "aws", "azure", "google cloud") {
		elements = append(elements, "Cloud-based")
	}
	if containsAny(content, "on-premise", "on-prem", "local server", "data center") {
		elements = append(elements, "On-premise")
	}
	if containsAny(content, "vmware", "virtualization", "virtual server") {
		elements = append(elements, "Virtualized Environment")
	}
	if containsAny(content, "san", "nas", "storage area network", "network attached storage") {
		elements = append(elements, "Enterprise Storage")
	}
	if containsAny(content, "vendor neutral archive", "vna") {
		elements = append(elements, "VNA")
	}
	if containsAny(content, "enterprise imaging", "integrated imaging") {
		elements = append(elements, "Enterprise Imaging Strategy")
	}
	return elements
}

func identifyModalities(content string) []string {
	var modalities []string
	for _, m := range modalityTerms {
		if containsAny(content, m.Terms...) {
			modalities = append(modalities, m.Name)
		}
	}
	return modalities
}

func identifyITEnvironment(content string) map[string]string {
	env := make(map[string]string)

	if containsAny(content, "it staff shortage", "limited it resources", "outsourced it") {
		env["staffing"] = "Limited IT resources"
	} else if containsAny(content, "in-house it", "it department", "technology team") {
		env["staffing"] = "In-house IT department"
	}

	if containsAny(content, "hipaa compliance", "data security", "cybersecurity") {
		env["security_focus"] = "High"
	}
	if containsAny(content, "interoperability", "integration", "connected systems") {
		env["integration_focus"] = "High"
	}
	if containsAny(content, "budget constraints", "cost-effective", "affordable") {
		env["budget_constraints"] = "High"
	}

	return env
}
