// Package browser joins the catalog, resolver, fetcher and renderer into
// page loads, and keeps per-session navigation state.
package browser

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ziadkadry99/docbrowser/internal/anchor"
	"github.com/ziadkadry99/docbrowser/internal/catalog"
	"github.com/ziadkadry99/docbrowser/internal/config"
	"github.com/ziadkadry99/docbrowser/internal/fetcher"
	"github.com/ziadkadry99/docbrowser/internal/render"
	"github.com/ziadkadry99/docbrowser/internal/resolver"
)

// Page is one loaded module page.
type Page struct {
	Module    config.Module       `json:"module"`
	FileIndex int                 `json:"file_index"`
	Files     []config.ModuleFile `json:"files,omitempty"`
	// Requested is the raw path that was asked for.
	Requested string `json:"requested"`
	// Path is the candidate that served the markdown.
	Path     string           `json:"path"`
	Attempts int              `json:"attempts"`
	Markdown []byte           `json:"-"`
	HTML     string           `json:"html,omitempty"`
	Headings []anchor.Heading `json:"headings,omitempty"`
}

// Service loads module pages. Roots are fixed at construction; the detector
// is consulted again for the re-detection candidate.
type Service struct {
	catalog  *catalog.Catalog
	fetcher  *fetcher.Fetcher
	renderer *render.Renderer
	root     resolver.Root
	detector resolver.Detector
	logger   *log.Logger
}

// Options wires a Service.
type Options struct {
	Catalog  *catalog.Catalog
	Fetcher  *fetcher.Fetcher
	Renderer *render.Renderer
	Root     resolver.Root
	Detector resolver.Detector
	Logger   *log.Logger
}

// NewService returns a Service. Detector defaults to the fixed root.
func NewService(opts Options) *Service {
	if opts.Detector == nil {
		opts.Detector = resolver.StaticRoot(opts.Root)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Root == "" {
		opts.Root = resolver.DefaultRoot
	}
	return &Service{
		catalog:  opts.Catalog,
		fetcher:  opts.Fetcher,
		renderer: opts.Renderer,
		root:     opts.Root,
		detector: opts.Detector,
		logger:   opts.Logger,
	}
}

// Catalog returns the module catalog.
func (s *Service) Catalog() *catalog.Catalog { return s.catalog }

// Root returns the deployment root detected at startup.
func (s *Service) Root() resolver.Root { return s.root }

// Lookup returns the module with the given id.
func (s *Service) Lookup(id string) (config.Module, error) {
	m, err := s.catalog.Lookup(id)
	if err != nil {
		s.logger.Error("module not found", "id", id)
	}
	return m, err
}

// Candidates returns the fetch order for a module page. A path that served
// the page before goes first.
func (s *Service) Candidates(m config.Module, file int) []string {
	file = fileIndex(m, file)
	candidates := resolver.Candidates(resolver.Request{
		Module:     m,
		File:       file,
		Root:       s.root,
		Redetected: s.detector.Detect(),
	})
	last, ok := s.catalog.Resolved(m.ID, file)
	if !ok {
		return candidates
	}
	out := []string{last}
	for _, c := range candidates {
		if c != last {
			out = append(out, c)
		}
	}
	return out
}

// Fetch retrieves the markdown of a module page without rendering it.
func (s *Service) Fetch(ctx context.Context, id string, file int) (*Page, error) {
	m, err := s.Lookup(id)
	if err != nil {
		return nil, err
	}
	file = fileIndex(m, file)
	requested := resolver.Request{Module: m, File: file}.SelectedPath()

	res, err := s.fetcher.Fetch(ctx, requested, s.Candidates(m, file))
	if err != nil {
		return nil, fmt.Errorf("loading module %s: %w", id, err)
	}
	s.catalog.Remember(m.ID, file, res.Path)

	return &Page{
		Module:    m,
		FileIndex: file,
		Files:     m.Files,
		Requested: requested,
		Path:      res.Path,
		Attempts:  res.Attempts,
		Markdown:  res.Body,
	}, nil
}

// Load fetches and renders a module page.
func (s *Service) Load(ctx context.Context, id string, file int) (*Page, error) {
	page, err := s.Fetch(ctx, id, file)
	if err != nil {
		return nil, err
	}
	doc, err := s.renderer.Render(page.Requested, page.Markdown)
	if err != nil {
		s.logger.Error("render failed", "module", id, "err", err)
		return nil, err
	}
	page.HTML = doc.HTML
	page.Headings = doc.Headings
	return page, nil
}

// Resolve matches a hash fragment against the page's headings. Misses are
// logged and otherwise ignored.
func (s *Service) Resolve(page *Page, fragment string) (anchor.Resolution, bool) {
	if page == nil {
		return anchor.Resolution{}, false
	}
	res, ok := anchor.Resolve(page.Headings, fragment)
	if !ok {
		s.logger.Warn("target element not found for hash", "hash", fragment, "module", page.Module.ID)
		return res, false
	}
	s.logger.Debug("anchor resolved", "hash", fragment, "id", res.Heading.ID, "rule", res.Rule)
	return res, true
}

// fileIndex clamps a sub-file selection; modules without sub-files only
// have page 0.
func fileIndex(m config.Module, file int) int {
	if file < 0 || file >= len(m.Files) {
		return 0
	}
	return file
}
