// Package taxonomy holds the static lookup tables driving extraction,
// classification, and scoring: skill vocabularies, domain keyword sets,
// weighted skill-category taxonomies, and education-relevance tiers.
// Tables are loaded once and injected; they are never mutated at runtime.
package taxonomy

// Domain category identifiers
const (
	DomainNetworkInfra    = "network-infrastructure"
	DomainFullStack       = "full-stack"
	DomainGeneralSoftware = "general-software"
	DomainFinance         = "finance"
)

// DefaultDomain is the classifier fallback when no domain meets the
// keyword threshold.
const DefaultDomain = DomainGeneralSoftware

// SkillCategory is one weighted group of skills within a domain taxonomy
type SkillCategory struct {
	Name   string   `yaml:"name"`
	Weight int      `yaml:"weight"` // relative weight; weights in a domain sum to 100
	Skills []string `yaml:"skills"`
}

// EducationRelevance maps degree keywords to relevance tiers for one domain
type EducationRelevance struct {
	HighlyRelevant   []string `yaml:"highlyRelevant"`   // sub-score 15
	SomewhatRelevant []string `yaml:"somewhatRelevant"` // sub-score 10
	NotRelevant      []string `yaml:"notRelevant"`      // sub-score 3
}

// BonusRule awards a small fixed addend for domain-specific evidence:
// either an exact phrase in the raw resume text, or a combination of
// skills all present on the candidate.
type BonusRule struct {
	Phrase string   `yaml:"phrase,omitempty"`
	Skills []string `yaml:"skills,omitempty"`
	Points int      `yaml:"points"`
	Reason string   `yaml:"reason"`
}

// MismatchRule describes when a cross-domain penalty applies: if the
// candidate's skills hit the marker vocabulary of a different domain and
// the raw skill score stays below Threshold, Penalty is subtracted.
type MismatchRule struct {
	Markers   []string `yaml:"markers"`
	Threshold float64  `yaml:"threshold"`
	Penalty   int      `yaml:"penalty"`
}

// DomainTaxonomy bundles everything scoring needs for one domain
type DomainTaxonomy struct {
	Name       string             `yaml:"name"`
	Keywords   []string           `yaml:"keywords"` // classifier primary keywords
	Categories []SkillCategory    `yaml:"categories"`
	Bonuses    []BonusRule        `yaml:"bonuses,omitempty"`
	Education  EducationRelevance `yaml:"education"`
	Mismatch   *MismatchRule      `yaml:"mismatch,omitempty"`
}

// Table is the full injected lookup structure
type Table struct {
	Domains          map[string]*DomainTaxonomy `yaml:"domains"`
	SkillVocabulary  []string                   `yaml:"skillVocabulary"`
	NameSkipWords    []string                   `yaml:"nameSkipWords"`
	DegreePrecedence []DegreeLevel              `yaml:"degreePrecedence"`
}

// DegreeLevel maps degree keywords to a canonical education label.
// Order in the precedence slice runs highest credential first.
type DegreeLevel struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// Default returns the built-in table. Callers get a fresh value each time
// so a hot-reloaded override never aliases the builtin.
func Default() *Table {
	return &Table{
		Domains: map[string]*DomainTaxonomy{
			DomainNetworkInfra:    networkInfraTaxonomy(),
			DomainFullStack:       fullStackTaxonomy(),
			DomainGeneralSoftware: generalSoftwareTaxonomy(),
			DomainFinance:         financeTaxonomy(),
		},
		SkillVocabulary:  skillVocabulary(),
		NameSkipWords:    nameSkipWords(),
		DegreePrecedence: degreePrecedence(),
	}
}

func networkInfraTaxonomy() *DomainTaxonomy {
	return &DomainTaxonomy{
		Name: DomainNetworkInfra,
		Keywords: []string{
			"network", "router", "switch", "firewall", "cisco", "ccna", "ccnp",
			"lan", "wan", "vpn", "infrastructure", "datacenter", "noc",
			"routing", "switching", "mpls", "bgp", "ospf",
		},
		Categories: []SkillCategory{
			{
				Name:   "routing-switching",
				Weight: 35,
				Skills: []string{"cisco", "routing", "switching", "bgp", "ospf", "eigrp", "vlan", "mpls", "stp"},
			},
			{
				Name:   "security",
				Weight: 25,
				Skills: []string{"firewall", "vpn", "ipsec", "acl", "fortinet", "palo alto", "asa", "nat"},
			},
			{
				Name:   "infrastructure",
				Weight: 25,
				Skills: []string{"dns", "dhcp", "tcp/ip", "subnetting", "wireshark", "load balancer", "f5", "monitoring"},
			},
			{
				Name:   "automation",
				Weight: 15,
				Skills: []string{"python", "ansible", "linux", "bash", "netconf", "terraform"},
			},
		},
		Bonuses: []BonusRule{
			{Phrase: "network engineer", Points: 5, Reason: "works as a network engineer"},
			{Skills: []string{"cisco", "wireshark"}, Points: 3, Reason: "hands-on cisco and wireshark tooling"},
			{Skills: []string{"bgp", "ospf"}, Points: 3, Reason: "knows both major routing protocols"},
		},
		Education: EducationRelevance{
			HighlyRelevant:   []string{"computer", "information technology", "electronics", "telecommunication", "network"},
			SomewhatRelevant: []string{"engineering", "science", "electrical"},
			NotRelevant:      []string{"commerce", "arts", "accounting", "finance"},
		},
		Mismatch: &MismatchRule{
			Markers:   []string{"accounting", "bookkeeping", "tally", "taxation", "auditing", "payroll", "ledger"},
			Threshold: 30,
			Penalty:   35,
		},
	}
}

func fullStackTaxonomy() *DomainTaxonomy {
	return &DomainTaxonomy{
		Name: DomainFullStack,
		Keywords: []string{
			"full stack", "fullstack", "full-stack", "frontend", "backend",
			"react", "angular", "node", "web developer", "mern", "mean",
			"javascript", "typescript", "api development", "web application",
		},
		Categories: []SkillCategory{
			{
				Name:   "frontend",
				Weight: 30,
				Skills: []string{"html", "css", "javascript", "typescript", "react", "angular", "vue", "redux", "tailwind", "bootstrap"},
			},
			{
				Name:   "backend",
				Weight: 30,
				Skills: []string{"node", "express", "python", "django", "java", "spring", "go", "rest api", "graphql", "php"},
			},
			{
				Name:   "database",
				Weight: 20,
				Skills: []string{"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite", "orm"},
			},
			{
				Name:   "devops",
				Weight: 20,
				Skills: []string{"git", "docker", "kubernetes", "aws", "ci/cd", "linux", "nginx", "jenkins"},
			},
		},
		Bonuses: []BonusRule{
			{Phrase: "full stack", Points: 5, Reason: "works across the full stack"},
			{Skills: []string{"react", "node"}, Points: 3, Reason: "covers both ends of the mern stack"},
			{Skills: []string{"docker", "ci/cd"}, Points: 2, Reason: "ships with containerized delivery"},
		},
		Education: EducationRelevance{
			HighlyRelevant:   []string{"computer", "software", "information technology"},
			SomewhatRelevant: []string{"engineering", "science", "mathematics", "electronics"},
			NotRelevant:      []string{"commerce", "arts", "accounting", "finance"},
		},
		Mismatch: &MismatchRule{
			Markers:   []string{"accounting", "bookkeeping", "tally", "taxation", "auditing", "payroll", "ledger"},
			Threshold: 30,
			Penalty:   35,
		},
	}
}

func generalSoftwareTaxonomy() *DomainTaxonomy {
	return &DomainTaxonomy{
		Name: DomainGeneralSoftware,
		Keywords: []string{
			"software", "developer", "engineer", "programming", "sde",
			"application", "coding", "it ", "technology",
		},
		Categories: []SkillCategory{
			{
				Name:   "languages",
				Weight: 35,
				Skills: []string{"python", "java", "javascript", "c++", "c#", "go", "typescript", "ruby", "kotlin", "swift"},
			},
			{
				Name:   "fundamentals",
				Weight: 25,
				Skills: []string{"data structures", "algorithms", "oop", "design patterns", "sql", "rest api"},
			},
			{
				Name:   "tooling",
				Weight: 20,
				Skills: []string{"git", "docker", "linux", "jenkins", "jira", "agile"},
			},
			{
				Name:   "platforms",
				Weight: 20,
				Skills: []string{"aws", "azure", "gcp", "kubernetes", "android", "spring", "django", "react", "node"},
			},
		},
		Bonuses: []BonusRule{
			{Phrase: "software engineer", Points: 4, Reason: "works as a software engineer"},
			{Skills: []string{"data structures", "algorithms"}, Points: 3, Reason: "solid cs fundamentals"},
		},
		Education: EducationRelevance{
			HighlyRelevant:   []string{"computer", "software", "information technology"},
			SomewhatRelevant: []string{"engineering", "science", "mathematics", "electronics"},
			NotRelevant:      []string{"commerce", "arts", "accounting"},
		},
		Mismatch: &MismatchRule{
			Markers:   []string{"accounting", "bookkeeping", "tally", "taxation", "auditing", "payroll", "ledger"},
			Threshold: 30,
			Penalty:   30,
		},
	}
}

func financeTaxonomy() *DomainTaxonomy {
	return &DomainTaxonomy{
		Name: DomainFinance,
		Keywords: []string{
			"accountant", "accounting", "finance", "financial", "audit",
			"taxation", "bookkeeping", "tally", "gst", "payroll", "ledger",
			"accounts payable", "accounts receivable",
		},
		Categories: []SkillCategory{
			{
				Name:   "accounting-core",
				Weight: 40,
				Skills: []string{"accounting", "bookkeeping", "ledger", "reconciliation", "journal entries", "accounts payable", "accounts receivable"},
			},
			{
				Name:   "compliance",
				Weight: 25,
				Skills: []string{"taxation", "gst", "tds", "auditing", "compliance", "income tax"},
			},
			{
				Name:   "tools",
				Weight: 25,
				Skills: []string{"tally", "excel", "sap", "quickbooks", "erp", "ms office"},
			},
			{
				Name:   "reporting",
				Weight: 10,
				Skills: []string{"financial reporting", "budgeting", "payroll", "mis", "forecasting"},
			},
		},
		Bonuses: []BonusRule{
			{Phrase: "chartered accountant", Points: 5, Reason: "chartered accountant credential"},
			{Skills: []string{"tally", "gst"}, Points: 3, Reason: "practical tally and gst work"},
		},
		Education: EducationRelevance{
			HighlyRelevant:   []string{"commerce", "accounting", "finance", "chartered accountant", "cpa", "mba"},
			SomewhatRelevant: []string{"economics", "business", "management"},
			NotRelevant:      []string{"computer", "engineering", "electronics"},
		},
		Mismatch: &MismatchRule{
			Markers:   []string{"python", "java", "javascript", "react", "docker", "kubernetes", "c++", "programming"},
			Threshold: 30,
			Penalty:   40,
		},
	}
}

func skillVocabulary() []string {
	return []string{
		// languages
		"python", "java", "javascript", "typescript", "c++", "c#", "go", "ruby",
		"php", "kotlin", "swift", "scala", "rust", "r", "matlab", "perl",
		// web
		"html", "css", "react", "angular", "vue", "redux", "node", "express",
		"django", "flask", "spring", "rest api", "graphql", "tailwind",
		"bootstrap", "jquery", "next.js", "webpack",
		// data
		"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
		"elasticsearch", "kafka", "spark", "hadoop", "pandas", "numpy",
		"machine learning", "deep learning", "tensorflow", "pytorch",
		// infra
		"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "ansible",
		"jenkins", "ci/cd", "linux", "bash", "nginx", "git", "github",
		// networking
		"cisco", "ccna", "ccnp", "routing", "switching", "bgp", "ospf", "eigrp",
		"vlan", "mpls", "firewall", "vpn", "ipsec", "dns", "dhcp", "tcp/ip",
		"subnetting", "wireshark", "load balancer", "f5", "nat", "stp",
		"fortinet", "palo alto",
		// finance
		"accounting", "bookkeeping", "tally", "taxation", "gst", "tds",
		"auditing", "payroll", "ledger", "reconciliation", "excel", "sap",
		"quickbooks", "erp", "ms office", "financial reporting", "budgeting",
		"accounts payable", "accounts receivable", "journal entries",
		"compliance", "income tax", "mis", "forecasting",
		// general
		"data structures", "algorithms", "oop", "design patterns", "agile",
		"jira", "scrum", "testing", "selenium", "junit", "microservices",
	}
}

func nameSkipWords() []string {
	return []string{
		"resume", "curriculum", "vitae", "profile", "summary", "objective",
		"experience", "education", "skills", "projects", "certifications",
		"achievements", "contact", "address", "email", "phone", "mobile",
		"bachelor", "master", "diploma", "degree", "university", "college",
		"engineer", "developer", "manager", "analyst", "consultant",
		"accountant", "administrator", "architect", "intern", "fresher",
		"java", "python", "javascript", "react", "node", "cisco", "tally",
		"linkedin", "github", "portfolio", "references", "declaration",
		"technical", "professional", "personal", "career",
	}
}

func degreePrecedence() []DegreeLevel {
	return []DegreeLevel{
		{Label: "PhD", Keywords: []string{"phd", "ph.d", "doctorate", "doctoral"}},
		{Label: "Master's", Keywords: []string{"master", "m.tech", "mtech", "m.sc", "msc", "mba", "mca", "m.e", "m.com", "mcom", "pgdm", "post graduate"}},
		{Label: "Bachelor's", Keywords: []string{"bachelor", "b.tech", "btech", "b.sc", "bsc", "bca", "b.e", "bba", "b.com", "bcom", "undergraduate"}},
		{Label: "Diploma", Keywords: []string{"diploma", "polytechnic"}},
		{Label: "12th", Keywords: []string{"12th", "hsc", "higher secondary", "intermediate", "senior secondary"}},
		{Label: "10th", Keywords: []string{"10th", "ssc", "matriculation", "secondary school"}},
	}
}
