package anchor

import (
	"regexp"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"3. AWS CloudFormation & CDK", "3-aws-cloudformation--cdk"},
		{"Getting Started", "getting-started"},
		{"  Hello   World  ", "hello-world"},
		{"What is CI/CD?", "what-is-cicd"},
		{"10. Pods, Services and Ingress", "10-pods-services-and-ingress"},
		{"1.Intro", "1-intro"},
		{"snake_case stays", "snake_case-stays"},
		{"pre-existing-hyphens", "pre-existing-hyphens"},
		// Hyphen runs are kept, like GitHub's table-of-contents links.
		{"CI - CD", "ci---cd"},
		{"- leading and trailing -", "leading-and-trailing"},
		{"Café au lait", "caf-au-lait"},
		{"1.5 release notes", "1-5-release-notes"},
		{"🚀", ""},
		{"4. 🚀", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"3. AWS CloudFormation & CDK",
		"Getting Started",
		"What is CI/CD?",
		"Docker Compose (v2) — services",
		"10. Pods, Services and Ingress",
	}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestIDFallback(t *testing.T) {
	pattern := regexp.MustCompile(`^heading-[0-9a-f]{9}$`)
	a, b := ID("!!!"), ID("!!!")
	if !pattern.MatchString(a) {
		t.Errorf("fallback id %q does not match %s", a, pattern)
	}
	if a == b {
		t.Errorf("fallback ids should differ, both %q", a)
	}
	if got := ID("Overview"); got != "overview" {
		t.Errorf("ID(Overview) = %q", got)
	}
}
