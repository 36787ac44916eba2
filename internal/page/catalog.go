package page

import (
	"fmt"
	"sort"

	"github.com/atomicstack/pageflow/internal/logging"
	"github.com/atomicstack/pageflow/internal/logging/events"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Factory builds a page from the flattened ledger strings.
type Factory func(inputs []string) Page

// entry is a registered factory.
type entry struct {
	ID      ID
	Factory Factory
}

// Catalog maps identifiers to page and overlay factories. Factories are read
// only after registration.
type Catalog struct {
	pages    map[ID]*entry
	overlays map[ID]*entry
	order    []ID
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		pages:    make(map[ID]*entry),
		overlays: make(map[ID]*entry),
	}
}

// Register associates id with a factory that reads ledger strings.
// Registering the same id twice replaces the factory but keeps its position.
func (c *Catalog) Register(id ID, factory Factory) {
	if factory == nil {
		return
	}
	if e, ok := c.pages[id]; ok {
		e.Factory = factory
		return
	}
	c.pages[id] = &entry{ID: id, Factory: factory}
	c.order = append(c.order, id)
}

// RegisterStatic associates id with a zero-argument factory.
func (c *Catalog) RegisterStatic(id ID, build func() Page) {
	if build == nil {
		return
	}
	c.Register(id, func([]string) Page { return build() })
}

// RegisterOverlay associates an overlay id with its factory.
func (c *Catalog) RegisterOverlay(id ID, build func() Page) {
	if build == nil {
		return
	}
	c.overlays[id] = &entry{ID: id, Factory: func([]string) Page { return build() }}
}

// Has reports whether a page factory is registered for id.
func (c *Catalog) Has(id ID) bool {
	_, ok := c.pages[id]
	return ok
}

// IDs returns page identifiers in registration order.
func (c *Catalog) IDs() []ID {
	return append([]ID(nil), c.order...)
}

// Instantiate builds page id. Unknown ids are logged and reported with ok=false.
func (c *Catalog) Instantiate(id ID, inputs []string) (Page, bool) {
	e, ok := c.pages[id]
	if !ok {
		logging.Errorf("no page factory registered for %q", id)
		events.Page.Missing(string(id))
		return Page{}, false
	}
	return build(e, inputs)
}

// Overlay builds overlay id.
func (c *Catalog) Overlay(id ID) (Page, bool) {
	e, ok := c.overlays[id]
	if !ok {
		logging.Errorf("no overlay factory registered for %q", id)
		events.Page.Missing(string(id))
		return Page{}, false
	}
	return build(e, nil)
}

// Overlays builds every id in ids, skipping unknown ones.
func (c *Catalog) Overlays(ids []ID) []Page {
	out := make([]Page, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.Overlay(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// RequiredInputs instantiates every registered page and collects the input
// slots they declare, in registration order.
func (c *Catalog) RequiredInputs(inputs []string) []InputSlot {
	var slots []InputSlot
	for _, id := range c.order {
		p, ok := build(c.pages[id], inputs)
		if !ok {
			continue
		}
		slots = append(slots, p.Inputs...)
	}
	return slots
}

// Suggest ranks registered page ids by fuzzy similarity to name.
func (c *Catalog) Suggest(name string) []ID {
	if name == "" || len(c.order) == 0 {
		return nil
	}
	targets := make([]string, len(c.order))
	for i, id := range c.order {
		targets[i] = string(id)
	}
	ranks := fuzzy.RankFindNormalizedFold(name, targets)
	sort.Sort(ranks)
	out := make([]ID, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, c.order[rank.OriginalIndex])
	}
	return out
}

// Lookup resolves a user-supplied page name, explaining unknown names with
// the closest registered ids.
func (c *Catalog) Lookup(name string) (ID, error) {
	id := ID(name)
	if c.Has(id) {
		return id, nil
	}
	if suggestions := c.Suggest(name); len(suggestions) > 0 {
		return "", fmt.Errorf("unknown page %q (did you mean %q?)", name, suggestions[0])
	}
	return "", fmt.Errorf("unknown page %q", name)
}

func build(e *entry, inputs []string) (p Page, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.Errorf("page factory %q panicked: %v", e.ID, r)
			events.Page.FactoryPanic(string(e.ID), r)
			p, ok = Page{}, false
		}
	}()
	p = e.Factory(append([]string(nil), inputs...))
	if p.ID == "" {
		p.ID = e.ID
	}
	return p, true
}
