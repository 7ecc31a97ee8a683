// Package anchor assigns heading identifiers and resolves hash fragments to
// headings, tolerating drift between a table-of-contents generator and the
// renderer.
package anchor

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var ordinalPrefix = regexp.MustCompile(`^(\d+)\.\s*`)

// Slugify derives a heading identifier from its visible text, matching the
// links GitHub-style tables of contents generate:
//
//	"3. AWS CloudFormation & CDK" -> "3-aws-cloudformation--cdk"
//
// Each run of whitespace becomes one hyphen; characters other than ASCII
// word characters and hyphens are dropped, so a removed symbol between two
// spaces leaves a double hyphen. A leading "N. " ordinal is kept as "N-".
// The result may be empty; see ID.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))

	var ordinal string
	if m := ordinalPrefix.FindStringSubmatch(s); m != nil {
		ordinal = m[1]
		s = s[len(m[0]):]
	}

	words := strings.Fields(s)
	for i, w := range words {
		words[i] = keepSlugChars(w)
	}
	slug := strings.Trim(strings.Join(words, "-"), "-")

	if ordinal != "" && slug != "" {
		slug = ordinal + "-" + slug
	}
	return slug
}

// ID is Slugify with a random fallback for text that leaves nothing behind.
func ID(text string) string {
	if slug := Slugify(text); slug != "" {
		return slug
	}
	return FallbackID()
}

// FallbackID returns a random "heading-xxxxxxxxx" identifier.
func FallbackID() string {
	return "heading-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}

func keepSlugChars(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c == '-' || c == '_' ||
			'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
