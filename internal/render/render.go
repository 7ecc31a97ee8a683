// Package render converts module markdown to HTML and collects the heading
// identifiers used for anchor navigation.
package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/ziadkadry99/docbrowser/internal/anchor"
)

// RenderError wraps a failure inside the markdown converter.
type RenderError struct {
	Path string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Path, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Options configures a Renderer.
type Options struct {
	// HighlightStyle is a chroma style name, "github" when empty.
	HighlightStyle string
	// AssetBase prefixes relative image sources together with the page's
	// directory, e.g. "/content/" or "https://user.github.io/course/".
	AssetBase string
}

// Document is a rendered page.
type Document struct {
	HTML     string
	Headings []anchor.Heading
}

// Renderer is a configured goldmark pipeline. It is safe for concurrent use.
type Renderer struct {
	md        goldmark.Markdown
	assetBase string
}

// New builds a Renderer with GFM, hard line breaks, heading attributes,
// slug heading identifiers and syntax highlighting. Fences with an unknown or
// missing language are highlighted by guessing the language.
func New(opts Options) *Renderer {
	style := opts.HighlightStyle
	if style == "" {
		style = "github"
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithGuessLanguage(true),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAttribute(),
			parser.WithASTTransformers(
				util.Prioritized(&headingTransformer{}, 100),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithUnsafe(),
		),
	)

	return &Renderer{md: md, assetBase: opts.AssetBase}
}

// Render converts source to HTML. path is the raw module path the markdown
// was loaded for; relative images are resolved against its directory.
func (r *Renderer) Render(path string, source []byte) (doc *Document, err error) {
	defer func() {
		if p := recover(); p != nil {
			doc, err = nil, &RenderError{Path: path, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	pc := parser.NewContext()
	pc.Set(assetPrefixKey, assetPrefix(r.assetBase, path))

	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf, parser.WithContext(pc)); err != nil {
		return nil, &RenderError{Path: path, Err: err}
	}

	headings, _ := pc.Get(headingsKey).([]anchor.Heading)
	return &Document{HTML: buf.String(), Headings: headings}, nil
}
