package render

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/ziadkadry99/docbrowser/internal/anchor"
	"github.com/ziadkadry99/docbrowser/internal/resolver"
)

var (
	headingsKey    = parser.NewContextKey()
	assetPrefixKey = parser.NewContextKey()
)

var attrID = []byte("id")

// headingTransformer gives every heading without an explicit {#id} a slug
// identifier, records all headings in document order, and points relative
// images at the page's directory.
type headingTransformer struct{}

func (t *headingTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	src := reader.Source()
	prefix, _ := pc.Get(assetPrefixKey).(string)

	var headings []anchor.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			label := plainText(node, src)
			id := existingID(node)
			if id == "" {
				id = anchor.ID(label)
				node.SetAttribute(attrID, []byte(id))
			}
			headings = append(headings, anchor.Heading{Level: node.Level, ID: id, Text: label})
		case *ast.Image:
			node.Destination = []byte(assetURL(prefix, string(node.Destination)))
		}
		return ast.WalkContinue, nil
	})

	pc.Set(headingsKey, headings)
}

func existingID(n ast.Node) string {
	v, ok := n.Attribute(attrID)
	if !ok {
		return ""
	}
	switch id := v.(type) {
	case []byte:
		return string(id)
	case string:
		return id
	}
	return ""
}

// plainText is the visible text of an inline container: escapes and
// character references are resolved and image alt text is left out.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Image:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			b.Write(visible(t, src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.AutoLink:
			b.Write(t.Label(src))
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func visible(t *ast.Text, src []byte) []byte {
	v := t.Segment.Value(src)
	if t.IsRaw() {
		return v
	}
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}

// assetPrefix is base plus the encoded directory of the module path.
func assetPrefix(base, path string) string {
	dir := resolver.Dir(path)
	if dir == "" {
		return base
	}
	return base + dir + "/"
}

func assetURL(prefix, src string) string {
	switch {
	case src == "",
		strings.HasPrefix(src, "http"),
		strings.HasPrefix(src, "//"),
		strings.HasPrefix(src, "/"),
		strings.HasPrefix(src, "data:"),
		strings.HasPrefix(src, "#"):
		return src
	}
	return prefix + strings.TrimPrefix(src, "./")
}
