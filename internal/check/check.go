// Package check verifies that every configured module page can be located
// and rendered, and finds markdown in the content directory that no module
// points at.
package check

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ziadkadry99/docbrowser/internal/browser"
	"github.com/ziadkadry99/docbrowser/internal/config"
	"github.com/ziadkadry99/docbrowser/internal/progress"
)

// PageResult is the outcome of loading one module page.
type PageResult struct {
	Module   config.Module
	File     int
	FileName string
	// Path is the candidate that served the page; empty on failure.
	Path     string
	Attempts int
	Err      error
}

// OK reports whether the page loaded.
func (p PageResult) OK() bool { return p.Err == nil }

// Report collects the results of a check run.
type Report struct {
	Pages   []PageResult
	Orphans []string
}

// Failed returns the number of pages that did not load.
func (r *Report) Failed() int {
	n := 0
	for _, p := range r.Pages {
		if !p.OK() {
			n++
		}
	}
	return n
}

// Options configures a Checker.
type Options struct {
	// ContentDir enables the orphan scan when markdown is read from disk.
	ContentDir string
	Reporter   progress.Reporter
	Logger     *log.Logger
}

// Checker walks the catalog through a browser service.
type Checker struct {
	svc        *browser.Service
	contentDir string
	reporter   progress.Reporter
	logger     *log.Logger
}

// New returns a Checker.
func New(svc *browser.Service, opts Options) *Checker {
	if opts.Reporter == nil {
		opts.Reporter = progress.Discard
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Checker{
		svc:        svc,
		contentDir: opts.ContentDir,
		reporter:   opts.Reporter,
		logger:     opts.Logger,
	}
}

type pageRef struct {
	module config.Module
	file   int
	name   string
}

// Run loads every page of every module in listing order. Page failures are
// recorded in the report; only cancellation and orphan scan errors are
// returned.
func (c *Checker) Run(ctx context.Context) (*Report, error) {
	var refs []pageRef
	var modules []config.Module
	for _, cat := range c.svc.Catalog().Categories() {
		for _, m := range cat.Modules {
			modules = append(modules, m)
			if !m.HasFiles() {
				refs = append(refs, pageRef{module: m, name: m.Name})
				continue
			}
			for i, f := range m.Files {
				refs = append(refs, pageRef{module: m, file: i, name: f.Name})
			}
		}
	}

	report := &Report{}
	c.reporter.Start(len(refs))
	for i, ref := range refs {
		if err := ctx.Err(); err != nil {
			c.reporter.Finish()
			return nil, err
		}
		c.reporter.Update(i, fmt.Sprintf("%s (%s)", ref.module.ID, ref.name))

		res := PageResult{Module: ref.module, File: ref.file, FileName: ref.name}
		page, err := c.svc.Load(ctx, ref.module.ID, ref.file)
		if err != nil {
			res.Err = err
			c.logger.Debug("page failed", "module", ref.module.ID, "file", ref.file, "err", err)
		} else {
			res.Path = page.Path
			res.Attempts = page.Attempts
		}
		report.Pages = append(report.Pages, res)
		c.reporter.Update(i+1, ref.module.ID)
	}
	c.reporter.Finish()

	if c.contentDir != "" {
		orphans, err := Orphans(c.contentDir, modules)
		if err != nil {
			return nil, err
		}
		report.Orphans = orphans
	}
	return report, nil
}
