package resolver

import (
	"reflect"
	"testing"

	"github.com/ziadkadry99/docbrowser/internal/config"
)

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"README.md", "README.md"},
		{"Module 01: Introduction to DevOps & DevSecOps", "Module%2001%3A%20Introduction%20to%20DevOps%20%26%20DevSecOps"},
		{"Infrastructure as Code (IaC)", "Infrastructure%20as%20Code%20(IaC)"},
		{"a+b=c?", "a%2Bb%3Dc%3F"},
		{"it's~fine!*", "it's~fine!*"},
		{"café", "caf%C3%A9"},
	}
	for _, tt := range tests {
		if got := EncodeComponent(tt.input); got != tt.want {
			t.Errorf("EncodeComponent(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestEncodePath(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"./Module 03: GIT/README.md", "Module%2003%3A%20GIT/README.md"},
		{"../shared/notes one.md", "../shared/notes%20one.md"},
		{"docs/./a b.md", "docs/./a%20b.md"},
		{"/abs/x y.md", "/abs/x%20y.md"},
		{"plain.md", "plain.md"},
	}
	for _, tt := range tests {
		if got := EncodePath(tt.input); got != tt.want {
			t.Errorf("EncodePath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeRoot(t *testing.T) {
	tests := []struct {
		input string
		want  Root
	}{
		{"", "/"},
		{"/", "/"},
		{"repo", "/repo/"},
		{"/repo", "/repo/"},
		{"/repo/", "/repo/"},
	}
	for _, tt := range tests {
		if got := NormalizeRoot(tt.input); got != tt.want {
			t.Errorf("NormalizeRoot(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDetectRoot(t *testing.T) {
	tests := []struct {
		url  string
		want Root
	}{
		{"https://user.github.io/devops-course/", "/devops-course/"},
		{"https://user.github.io/devops-course/index.html", "/devops-course/"},
		{"https://user.github.io/", "/"},
		{"https://user.github.io/index.html", "/"},
		{"http://localhost:8080/course/", "/"},
		{"https://docs.example.com/course/", "/"},
		{"::not a url", "/"},
	}
	for _, tt := range tests {
		if got := DetectRoot(tt.url); got != tt.want {
			t.Errorf("DetectRoot(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestCandidatesOrder(t *testing.T) {
	mod := config.Module{
		ID:       "module-06",
		Path:     "./Module 06: CI-CD/Readme.md",
		AltPaths: []string{"./Module 06: CI-CD/README.md", "./Module 06: CI-CD/index.md"},
	}
	got := Candidates(Request{Module: mod, Root: "/course/", Redetected: "/other/"})
	want := []string{
		"/course/Module%2006%3A%20CI-CD/Readme.md",
		"/course/Module%2006%3A%20CI-CD/README.md",
		"/course/Module%2006%3A%20CI-CD/index.md",
		"/Module%2006%3A%20CI-CD/Readme.md",
		"/other/Module%2006%3A%20CI-CD/Readme.md",
		"Module%2006%3A%20CI-CD/Readme.md",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates =\n%v\nwant\n%v", got, want)
	}
}

func TestCandidatesAtLeastAltsPlusOne(t *testing.T) {
	for n := 0; n < 4; n++ {
		mod := config.Module{ID: "m", Path: "m/README.md"}
		for i := 0; i < n; i++ {
			mod.AltPaths = append(mod.AltPaths, "m/alt"+string(rune('a'+i))+".md")
		}
		got := Candidates(Request{Module: mod, Root: "/repo/", Redetected: "/repo/"})
		if len(got) < n+1 {
			t.Errorf("n=%d: %d candidates, want at least %d", n, len(got), n+1)
		}
		if got[0] != "/repo/m/README.md" {
			t.Errorf("n=%d: first candidate = %q", n, got[0])
		}
	}
}

func TestCandidatesCollapseWithoutRoot(t *testing.T) {
	mod := config.Module{ID: "m", Path: "./Module 03: GIT/README.md"}
	for _, root := range []Root{"", "/"} {
		got := Candidates(Request{Module: mod, Root: root, Redetected: root})
		if len(got) != 1 || got[0] != "Module%2003%3A%20GIT/README.md" {
			t.Errorf("root %q: Candidates = %v, want single bare path", root, got)
		}
	}
}

func TestCandidatesSubFile(t *testing.T) {
	mod := config.Module{
		ID:       "module-05",
		Path:     "./Module 05: Docker/README.md",
		AltPaths: []string{"./Module 05: Docker/readme.md"},
		Files: []config.ModuleFile{
			{Name: "Docker Basics", Path: "./Module 05: Docker/README.md"},
			{Name: "Docker Compose", Path: "./Module 05: Docker/docker-compose.md"},
		},
	}

	got := Candidates(Request{Module: mod, File: 1, Root: "/"})
	want := []string{"Module%2005%3A%20Docker/docker-compose.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sub-file candidates = %v, want %v", got, want)
	}

	// The first sub-file is the primary page, so alternates still apply.
	got = Candidates(Request{Module: mod, File: 0, Root: "/"})
	if len(got) != 2 || got[1] != "Module%2005%3A%20Docker/readme.md" {
		t.Errorf("primary sub-file candidates = %v", got)
	}

	// Out of range falls back to the primary path.
	got = Candidates(Request{Module: mod, File: 9, Root: "/"})
	if got[0] != "Module%2005%3A%20Docker/README.md" {
		t.Errorf("out of range first candidate = %q", got[0])
	}
}

func TestCandidatesDeterministic(t *testing.T) {
	mod := config.DefaultModules[5]
	req := Request{Module: mod, Root: "/course/", Redetected: "/"}
	first := Candidates(req)
	for i := 0; i < 10; i++ {
		if got := Candidates(req); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestDir(t *testing.T) {
	if got := Dir("./Module 05: Docker/README.md"); got != "Module%2005%3A%20Docker" {
		t.Errorf("Dir = %q", got)
	}
	if got := Dir("README.md"); got != "" {
		t.Errorf("Dir of a bare file = %q", got)
	}
}
