package anchor

import (
	"net/url"
	"strings"
)

// Heading is one heading of a rendered document, in document order.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Text  string `json:"text"`
}

// Rule records which matching rule resolved a fragment.
type Rule int

const (
	RuleNone Rule = iota
	// RuleExact matched the identifier as given.
	RuleExact
	// RuleDecoded matched after percent-decoding.
	RuleDecoded
	// RuleSubstring matched an identifier containing the target, or contained by it.
	RuleSubstring
	// RuleText matched the heading text loosely.
	RuleText
)

func (r Rule) String() string {
	switch r {
	case RuleExact:
		return "exact"
	case RuleDecoded:
		return "decoded"
	case RuleSubstring:
		return "substring"
	case RuleText:
		return "text"
	default:
		return "none"
	}
}

// MarshalText lets Rule appear as a string in JSON payloads.
func (r Rule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Resolution is a fragment matched to a heading.
type Resolution struct {
	Heading Heading `json:"heading"`
	Index   int     `json:"index"`
	Rule    Rule    `json:"rule"`
	// Target is the fragment as requested, without the leading '#'.
	Target string `json:"target"`
	// Changed is set when the visible fragment should be rewritten to
	// Heading.ID.
	Changed bool `json:"changed"`
}

// Resolve finds the heading a fragment refers to. The rules are tried in a
// fixed order and the first rule with a match decides:
//
//   - exact identifier match
//   - identifier match after percent-decoding the target
//   - substring match either way between identifier and target; the last
//     such heading wins
//   - loose text match: the lowercased heading text and the decoded target
//     with hyphens read as spaces contain one another; the first such
//     heading in document order wins
//
// ok is false when no heading matches.
func Resolve(headings []Heading, fragment string) (res Resolution, ok bool) {
	target := strings.TrimPrefix(fragment, "#")
	if target == "" {
		return Resolution{}, false
	}
	found := func(i int, rule Rule) (Resolution, bool) {
		h := headings[i]
		return Resolution{
			Heading: h,
			Index:   i,
			Rule:    rule,
			Target:  target,
			Changed: h.ID != target,
		}, true
	}

	if i := indexByID(headings, target); i >= 0 {
		return found(i, RuleExact)
	}

	decoded := target
	if d, err := url.PathUnescape(target); err == nil {
		decoded = d
	}
	if decoded != target {
		if i := indexByID(headings, decoded); i >= 0 {
			return found(i, RuleDecoded)
		}
	}

	last := -1
	for i, h := range headings {
		if h.ID == "" {
			continue
		}
		if strings.Contains(h.ID, target) || strings.Contains(target, h.ID) {
			last = i
		}
	}
	if last >= 0 {
		return found(last, RuleSubstring)
	}

	idText := strings.ToLower(strings.ReplaceAll(decoded, "-", " "))
	for i, h := range headings {
		text := strings.ToLower(strings.TrimSpace(h.Text))
		if text == "" {
			continue
		}
		if strings.Contains(text, idText) || strings.Contains(idText, text) {
			return found(i, RuleText)
		}
	}

	return Resolution{Target: target}, false
}

func indexByID(headings []Heading, id string) int {
	for i, h := range headings {
		if h.ID == id {
			return i
		}
	}
	return -1
}
