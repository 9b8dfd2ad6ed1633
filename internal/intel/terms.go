package intel

// TermCategory is one named dictionary of healthcare-IT keywords counted
// across all scanned content.
type TermCategory struct {
	Name  string
	Terms []string
}

// termCategories are the dictionaries counted into per-page and site-wide
// term counts. Order is fixed so scans are reproducible.
var termCategories = []TermCategory{
	{
		Name: "pacs_terms",
		Terms: []string{
			"pacs", "picture archiving", "image archiving", "archiving system",
			"imaging system", "radiological information", "ris",
		},
	},
	{
		Name: "vendor_terms",
		Terms: []string{
			"ge healthcare", "siemens", "philips", "agfa", "fujifilm", "carestream",
			"mckesson", "merge", "intelerad", "sectra", "cerner", "epic", "allscripts",
			"meditech", "nuance", "hyland", "change healthcare", "ibm watson",
		},
	},
	{
		Name: "imaging_terms",
		Terms: []string{
			"ct scan", "mri", "ultrasound", "x-ray", "radiograph", "fluoroscopy",
			"mammography", "nuclear medicine", "pet scan", "radiology", "imaging",
			"radiologist", "sonographer", "modality", "dicom", "3t", "1.5t", "tesla",
		},
	},
	{
		Name: "workflow_terms",
		Terms: []string{
			"workflow", "efficiency", "productivity", "throughput", "turnaround time",
			"report", "dictation", "voice recognition", "integration", "interface",
			"downtime", "reliability", "upgrade", "migration", "replacement",
			"interoperability", "referring physician", "portal",
		},
	},
	{
		Name: "pain_point_terms",
		Terms: []string{
			"challenge", "issue", "problem", "difficult", "slow", "outdated",
			"legacy", "obsolete", "maintenance", "support", "cost", "expensive",
			"budget", "compliance", "hipaa", "security", "patient safety",
			"burnout", "shortage", "manual", "error", "inefficient",
		},
	},
	{
		Name: "technology_stack",
		Terms: []string{
			"cloud", "server", "storage", "virtualization", "vmware", "microsoft",
			"linux", "database", "sql", "oracle", "redundancy", "backup", "disaster recovery",
			"high availability", "san", "nas", "vendor neutral archive", "vna",
		},
	},
	{
		Name: "modernization_terms",
		Terms: []string{
			"upgrade", "implementation", "project", "initiative", "strategic",
			"roadmap", "plan", "future", "investment", "transform", "improvement",
			"modernize", "enhance", "optimize", "expansion", "growth",
		},
	},
}

// growthTerms flag expansion and investment language.
var growthTerms = []string{
	"expansion", "growing", "new facility", "new location",
	"construction", "renovation", "upgrade", "investment",
	"strategic plan", "future", "initiative", "advancing",
	"state-of-the-art", "cutting edge", "innovation",
}

// painTerms flag operational friction language.
var painTerms = []string{
	"challenge", "difficult", "problem", "issue", "obstacle",
	"inefficient", "slow", "legacy", "outdated", "obsolete",
	"burden", "costly", "expensive", "time-consuming", "manual",
	"error", "mistake", "downtime", "failure", "compliance",
	"backlog", "delay", "wait time", "turnaround",
}

// jobTitleKeywords identify imaging/IT roles in careers-page headings.
var jobTitleKeywords = []string{
	"specialist", "technologist", "engineer",
	"analyst", "administrator", "director", "manager",
}

// leadershipTitles identify personnel titles on team pages.
var leadershipTitles = []string{
	"ceo", "cio", "cto", "chief", "director", "president", "vp", "vice president",
	"head", "manager", "lead", "principal", "radiologist", "chairman", "founder",
	"administrator", "medical director",
}

// accreditationOrgs are the accreditation bodies searched for in content.
var accreditationOrgs = []string{
	"ACR", "American College of Radiology", "Joint Commission", "JCAHO",
	"IAC", "Intersocietal Accreditation Commission", "FDA", "Food and Drug",
	"CAP", "College of American Pathologists", "AIUM", "American Institute of Ultrasound in Medicine",
}
