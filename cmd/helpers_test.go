package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ziadkadry99/docbrowser/internal/catalog"
	"github.com/ziadkadry99/docbrowser/internal/config"
	"github.com/ziadkadry99/docbrowser/internal/fetcher"
	"github.com/ziadkadry99/docbrowser/internal/resolver"
)

func TestDeploymentRoot(t *testing.T) {
	tests := []struct {
		name string
		src  config.SourceConfig
		want resolver.Root
	}{
		{"fs", config.SourceConfig{Type: config.SourceFS, Dir: "."}, "/"},
		{"github pages", config.SourceConfig{Type: config.SourceHTTP, URL: "https://me.github.io/devops-course/"}, "/devops-course/"},
		{"custom domain", config.SourceConfig{Type: config.SourceHTTP, URL: "https://docs.example.com/"}, "/"},
		{"base path wins", config.SourceConfig{Type: config.SourceHTTP, URL: "https://me.github.io/x/", BasePath: "course"}, "/course/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := deploymentRoot(tt.src); got != tt.want {
				t.Errorf("deploymentRoot = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssetBase(t *testing.T) {
	tests := []struct {
		name string
		src  config.SourceConfig
		want string
	}{
		{"fs", config.SourceConfig{Type: config.SourceFS}, "/content/"},
		{"github pages", config.SourceConfig{Type: config.SourceHTTP, URL: "https://me.github.io/course/index.html"}, "https://me.github.io/course/"},
		{"custom domain", config.SourceConfig{Type: config.SourceHTTP, URL: "https://docs.example.com/notes"}, "https://docs.example.com/notes/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := assetBase(tt.src, deploymentRoot(tt.src)); got != tt.want {
				t.Errorf("assetBase = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRootDetectorFollowsEnv(t *testing.T) {
	src := config.SourceConfig{Type: config.SourceHTTP, URL: "https://me.github.io/course/"}
	det := rootDetector(src)
	if got := det.Detect(); got != "/course/" {
		t.Fatalf("Detect = %q", got)
	}
	t.Setenv(config.EnvPrefix+"SOURCE__URL", "https://me.github.io/moved/")
	if got := det.Detect(); got != "/moved/" {
		t.Errorf("Detect after override = %q, want /moved/", got)
	}

	if got := rootDetector(config.SourceConfig{Type: config.SourceFS}).Detect(); got != "/" {
		t.Errorf("fs detector = %q", got)
	}
}

func TestNewTransport(t *testing.T) {
	tr, err := newTransport(config.SourceConfig{Type: config.SourceFS, Dir: "content"})
	if err != nil {
		t.Fatal(err)
	}
	if fs, ok := tr.(*fetcher.FSTransport); !ok || fs.Dir != "content" {
		t.Errorf("fs transport = %#v", tr)
	}

	tr, err = newTransport(config.SourceConfig{Type: config.SourceHTTP, URL: "https://me.github.io/course"})
	if err != nil {
		t.Fatal(err)
	}
	if h, ok := tr.(*fetcher.HTTPTransport); !ok || h.Base.String() != "https://me.github.io/course/" {
		t.Errorf("http transport = %#v", tr)
	}

	if _, err := newTransport(config.SourceConfig{Type: "ftp"}); err == nil {
		t.Error("expected error for unknown source type")
	}
}

func TestModulesCommandJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docbrowser.yml")
	yml := `title: Test
source:
  type: fs
  dir: .
modules:
  - id: b
    name: Second
    category: Later
    order: 2
    path: ./b/README.md
  - id: a
    name: First
    category: Start
    order: 1
    path: ./a/README.md
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "modules", "--json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		modulesJSON = false
		cfgFile = config.DefaultPath
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	var cats []catalog.Category
	if err := json.Unmarshal(out.Bytes(), &cats); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, out.String())
	}
	if len(cats) != 2 || cats[0].Name != "Later" || cats[1].Modules[0].ID != "a" {
		t.Errorf("categories = %+v", cats)
	}
}
