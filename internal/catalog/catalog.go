// Package catalog holds the fixed list of generation template identifiers
// that @-references on a command line may denote.
package catalog

import "strings"

// Template is one catalog entry. Family names the prompt script; Variant is
// empty for the bare entry.
type Template struct {
	Name    string // full entry text, e.g. "component:functional"
	Family  string // e.g. "component"
	Variant string // e.g. "functional"
}

// Catalog is an ordered, immutable set of templates.
type Catalog struct {
	entries []Template
	byName  map[string]Template
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New([]Template{
		{Name: "component", Family: "component"},
		{Name: "component:functional", Family: "component", Variant: "functional"},
		{Name: "component:class", Family: "component", Variant: "class"},
		{Name: "hook", Family: "hook"},
		{Name: "hook:state", Family: "hook", Variant: "state"},
		{Name: "hook:effect", Family: "hook", Variant: "effect"},
		{Name: "form", Family: "form"},
		{Name: "page", Family: "page"},
		{Name: "layout", Family: "layout"},
	})
}

// New builds a Catalog from entries, preserving their order.
func New(entries []Template) *Catalog {
	byName := make(map[string]Template, len(entries))
	for _, t := range entries {
		byName[t.Name] = t
	}
	return &Catalog{entries: entries, byName: byName}
}

// Entries returns the entry texts in catalog order. The completion engine
// matches these by prefix.
func (c *Catalog) Entries() []string {
	out := make([]string, len(c.entries))
	for i, t := range c.entries {
		out[i] = t.Name
	}
	return out
}

// Lookup resolves a template reference, with or without its "@" sigil.
func (c *Catalog) Lookup(ref string) (Template, bool) {
	t, ok := c.byName[strings.TrimPrefix(ref, "@")]
	return t, ok
}
