// Package catalog holds the curated module list in listing order and
// remembers where each module's markdown was last found.
package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/ziadkadry99/docbrowser/internal/config"
)

// ErrModuleNotRegistered is returned when a module id is not in the catalog.
var ErrModuleNotRegistered = errors.New("module not registered")

// Category is a group of modules, in listing order.
type Category struct {
	Name    string          `json:"name"`
	Modules []config.Module `json:"modules"`
}

// Catalog indexes modules by id and groups them by category. Categories keep
// the order in which they first appear in the configuration; modules within a
// category are sorted by Order.
type Catalog struct {
	modules    []config.Module
	byID       map[string]int
	categories []Category

	mu       sync.RWMutex
	resolved map[pageKey]string
}

type pageKey struct {
	id   string
	file int
}

// New builds a Catalog. It fails when two modules share an id.
func New(modules []config.Module) (*Catalog, error) {
	c := &Catalog{
		modules:  make([]config.Module, len(modules)),
		byID:     make(map[string]int, len(modules)),
		resolved: make(map[pageKey]string),
	}
	copy(c.modules, modules)

	catIndex := make(map[string]int)
	for i, m := range c.modules {
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate module id %q", m.ID)
		}
		c.byID[m.ID] = i

		idx, ok := catIndex[m.Category]
		if !ok {
			idx = len(c.categories)
			catIndex[m.Category] = idx
			c.categories = append(c.categories, Category{Name: m.Category})
		}
		c.categories[idx].Modules = append(c.categories[idx].Modules, m)
	}

	for i := range c.categories {
		mods := c.categories[i].Modules
		sort.SliceStable(mods, func(a, b int) bool {
			return mods[a].Order < mods[b].Order
		})
	}
	return c, nil
}

// Lookup returns the module with the given id.
func (c *Catalog) Lookup(id string) (config.Module, error) {
	i, ok := c.byID[id]
	if !ok {
		return config.Module{}, fmt.Errorf("%w: %s", ErrModuleNotRegistered, id)
	}
	return c.modules[i], nil
}

// Modules returns every module in configuration order.
func (c *Catalog) Modules() []config.Module {
	out := make([]config.Module, len(c.modules))
	copy(out, c.modules)
	return out
}

// Categories returns the modules grouped for the sidebar and the grid.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		out[i] = Category{Name: cat.Name, Modules: append([]config.Module(nil), cat.Modules...)}
	}
	return out
}

// Len returns the number of registered modules.
func (c *Catalog) Len() int { return len(c.modules) }

// Resolved returns the path that last served the given module page.
func (c *Catalog) Resolved(id string, file int) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.resolved[pageKey{id, file}]
	return p, ok
}

// Remember records the path that served a module page so the next load
// tries it first.
func (c *Catalog) Remember(id string, file int, path string) {
	c.mu.Lock()
	c.resolved[pageKey{id, file}] = path
	c.mu.Unlock()
}
