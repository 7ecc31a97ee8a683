package config

// ModuleFile is one selectable page of a module with several files.
type ModuleFile struct {
	Name string `yaml:"name" json:"name" koanf:"name"`
	Path string `yaml:"path" json:"path" koanf:"path"`
	Icon string `yaml:"icon,omitempty" json:"icon,omitempty" koanf:"icon"`
}

// Module describes one documentation unit in the curated list. Modules are
// treated as immutable once the configuration has been loaded.
type Module struct {
	ID       string       `yaml:"id" json:"id" koanf:"id"`
	Name     string       `yaml:"name" json:"name" koanf:"name"`
	Category string       `yaml:"category" json:"category" koanf:"category"`
	Order    int          `yaml:"order" json:"order" koanf:"order"`
	Path     string       `yaml:"path" json:"path" koanf:"path"`
	AltPaths []string     `yaml:"alt_paths,omitempty" json:"alt_paths,omitempty" koanf:"alt_paths"`
	Files    []ModuleFile `yaml:"files,omitempty" json:"files,omitempty" koanf:"files"`
}

// HasFiles reports whether the module exposes several selectable pages.
func (m Module) HasFiles() bool { return len(m.Files) > 0 }

// SourceType selects the transport used to retrieve module markdown.
type SourceType string

const (
	SourceHTTP SourceType = "http"
	SourceFS   SourceType = "fs"
)

// SourceConfig tells the fetcher where module markdown lives.
type SourceConfig struct {
	Type SourceType `yaml:"type" koanf:"type"`
	// Dir is the content root for the fs source.
	Dir string `yaml:"dir,omitempty" koanf:"dir"`
	// URL is the site the markdown is hosted on for the http source, e.g.
	// https://user.github.io/course/. It also drives deployment root detection.
	URL string `yaml:"url,omitempty" koanf:"url"`
	// BasePath overrides deployment root detection when set.
	BasePath string `yaml:"base_path,omitempty" koanf:"base_path"`
}

// ServerConfig holds settings for the web shell.
type ServerConfig struct {
	Port     int    `yaml:"port" koanf:"port"`
	AllowAll bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	DataDir  string `yaml:"data_dir" koanf:"data_dir"`
}

// Config is the top-level docbrowser configuration, corresponding to docbrowser.yml.
type Config struct {
	Title     string       `yaml:"title" koanf:"title"`
	Subtitle  string       `yaml:"subtitle" koanf:"subtitle"`
	Source    SourceConfig `yaml:"source" koanf:"source"`
	Server    ServerConfig `yaml:"server" koanf:"server"`
	Highlight string       `yaml:"highlight_style" koanf:"highlight_style"`
	Modules   []Module     `yaml:"modules" koanf:"modules"`
}
