package config

// HomeID is the reserved navigation id for the module grid.
const HomeID = "home"

// DefaultHighlightStyle is the chroma style used for fenced code blocks.
const DefaultHighlightStyle = "github"

// DefaultModules is the curated DevOps course this browser was first built
// for. A config file with a modules list replaces it.
var DefaultModules = []Module{
	{
		ID:       "module-01",
		Name:     "Introduction to DevOps & DevSecOps",
		Path:     "./Module 01: Introduction to DevOps & DevSecOps/README.md",
		Category: "Foundation",
		Order:    1,
	},
	{
		ID:       "module-02",
		Name:     "Linux & Shell Scripting",
		Path:     "./Module 02: Linux & Shell Scripting/README.md",
		Category: "Foundation",
		Order:    2,
		Files: []ModuleFile{
			{Name: "Linux Basics", Path: "./Module 02: Linux & Shell Scripting/README.md", Icon: "🐧"},
			{Name: "Shell Scripting", Path: "./Module 02: Linux & Shell Scripting/shell-script.md", Icon: "💻"},
		},
	},
	{
		ID:       "module-03",
		Name:     "Git Version Control",
		Path:     "./Module 03: GIT/README.md",
		Category: "Foundation",
		Order:    3,
	},
	{
		ID:       "module-04",
		Name:     "Build Tools",
		Path:     "./Module 04: Build Tools/README.md",
		Category: "Build & Deploy",
		Order:    4,
	},
	{
		ID:       "module-05",
		Name:     "Docker Containerization",
		Path:     "./Module 05: Docker/README.md",
		Category: "Build & Deploy",
		Order:    5,
		Files: []ModuleFile{
			{Name: "Docker Basics", Path: "./Module 05: Docker/README.md", Icon: "🐳"},
			{Name: "Docker Compose", Path: "./Module 05: Docker/docker-compose.md", Icon: "📦"},
		},
	},
	{
		ID:       "module-06",
		Name:     "CI/CD Pipeline Automation",
		Path:     "./Module 06: CI-CD/Readme.md",
		Category: "Automation & Quality",
		Order:    6,
		AltPaths: []string{"./Module 06: CI-CD/README.md"},
	},
	{
		ID:       "module-07",
		Name:     "SonarQube Code Quality",
		Path:     "./Module 07: SonarQube/README.md",
		Category: "Automation & Quality",
		Order:    7,
	},
	{
		ID:       "module-08",
		Name:     "Security Tools & DevSecOps",
		Path:     "./Module 08: Security Tools/README.md",
		Category: "Security & Management",
		Order:    8,
	},
	{
		ID:       "module-09",
		Name:     "Nexus Artifact Management",
		Path:     "./Module 09: Nexus Artifact Management/README.md",
		Category: "Security & Management",
		Order:    9,
	},
	{
		ID:       "module-10",
		Name:     "Kubernetes",
		Path:     "./Module 10: Kubernetes/README.md",
		Category: "Advanced Orchestration",
		Order:    10,
	},
	{
		ID:       "module-11",
		Name:     "Infrastructure as Code (IaC)",
		Path:     "./Module 11: Infrastructure as Code (IaC)/README.md",
		Category: "Advanced Orchestration",
		Order:    11,
	},
}

// DefaultConfig returns a Config with sensible defaults: the built-in course
// served from the current directory.
func DefaultConfig() *Config {
	modules := make([]Module, len(DefaultModules))
	copy(modules, DefaultModules)
	return &Config{
		Title:    "DevOps Course",
		Subtitle: "Course modules and reference notes",
		Source: SourceConfig{
			Type: SourceFS,
			Dir:  ".",
		},
		Server: ServerConfig{
			Port:    8080,
			DataDir: ".docbrowser",
		},
		Highlight: DefaultHighlightStyle,
		Modules:   modules,
	}
}
