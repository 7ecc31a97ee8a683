package browser

import (
	"context"
	"errors"
	"sync"

	"github.com/ziadkadry99/docbrowser/internal/anchor"
	"github.com/ziadkadry99/docbrowser/internal/config"
)

// NarrowWidth is the widest viewport, in CSS pixels, that shows the sidebar
// as an overlay.
const NarrowWidth = 768

// ErrSuperseded is returned by a load that finished after a newer
// navigation started. Its result is discarded.
var ErrSuperseded = errors.New("navigation superseded")

// View is what the content area shows.
type View string

const (
	ViewHome   View = "home"
	ViewModule View = "module"
)

// State is the navigation state of one browsing session.
type State struct {
	View        View   `json:"view"`
	ModuleID    string `json:"module_id,omitempty"`
	FileIndex   int    `json:"file_index"`
	Hash        string `json:"hash,omitempty"`
	SidebarOpen bool   `json:"sidebar_open"`
	Width       int    `json:"width,omitempty"`
}

// Pages is what a Navigator needs from the page layer.
type Pages interface {
	Lookup(id string) (config.Module, error)
	Load(ctx context.Context, id string, file int) (*Page, error)
	Resolve(page *Page, fragment string) (anchor.Resolution, bool)
}

// Navigator tracks what one session is looking at. Every navigation gets a
// sequence number and cancels the load before it, so a slow response can
// never replace content the reader navigated to later.
type Navigator struct {
	pages Pages

	mu     sync.Mutex
	state  State
	page   *Page
	seq    uint64
	cancel context.CancelFunc
}

// NewNavigator returns a Navigator showing the home view.
func NewNavigator(pages Pages) *Navigator {
	return &Navigator{pages: pages, state: State{View: ViewHome}}
}

// State returns a snapshot of the navigation state.
func (n *Navigator) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Page returns the page currently displayed, or nil on the home view.
func (n *Navigator) Page() *Page {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.page
}

// Navigate shows the home view (id "home") or loads a module page. An
// unknown module leaves the state untouched. When the load fails the state
// still moves to the module so the caller can show an error panel for it.
func (n *Navigator) Navigate(ctx context.Context, id string, file int) (*Page, error) {
	if id != config.HomeID {
		if _, err := n.pages.Lookup(id); err != nil {
			return nil, err
		}
	}

	n.mu.Lock()
	n.seq++
	seq := n.seq
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	if n.state.Width > 0 && n.state.Width <= NarrowWidth {
		n.state.SidebarOpen = false
	}
	if id == config.HomeID {
		n.state.View = ViewHome
		n.state.ModuleID = ""
		n.state.FileIndex = 0
		n.page = nil
		n.mu.Unlock()
		return nil, nil
	}
	loadCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel
	n.mu.Unlock()

	page, err := n.pages.Load(loadCtx, id, file)

	n.mu.Lock()
	defer n.mu.Unlock()
	if seq != n.seq {
		return nil, ErrSuperseded
	}
	cancel()
	n.cancel = nil

	n.state.View = ViewModule
	n.state.ModuleID = id
	if err != nil {
		n.state.FileIndex = file
		n.page = nil
		return nil, err
	}
	n.state.FileIndex = page.FileIndex
	n.page = page
	return page, nil
}

// Hash resolves the fragment against the current page. Only a match is
// recorded; when a fuzzy rule matched, the heading id is recorded instead of
// the fragment. A miss leaves the state untouched.
func (n *Navigator) Hash(fragment string) (anchor.Resolution, bool) {
	n.mu.Lock()
	page := n.page
	n.mu.Unlock()

	res, ok := n.pages.Resolve(page, fragment)
	if !ok {
		return res, false
	}

	n.mu.Lock()
	if n.page == page {
		n.state.Hash = fragment
		if res.Changed {
			n.state.Hash = "#" + res.Heading.ID
		}
	}
	n.mu.Unlock()
	return res, true
}

// ToggleSidebar opens or closes the sidebar and returns the new state.
func (n *Navigator) ToggleSidebar() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.SidebarOpen = !n.state.SidebarOpen
	return n.state.SidebarOpen
}

// Escape closes an open sidebar.
func (n *Navigator) Escape() {
	n.mu.Lock()
	n.state.SidebarOpen = false
	n.mu.Unlock()
}

// Resize records the viewport width. Growing past NarrowWidth closes the
// overlay sidebar.
func (n *Navigator) Resize(width int) {
	n.mu.Lock()
	n.state.Width = width
	if width > NarrowWidth {
		n.state.SidebarOpen = false
	}
	n.mu.Unlock()
}

// Close cancels any in-flight load.
func (n *Navigator) Close() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.seq++
	n.mu.Unlock()
}
