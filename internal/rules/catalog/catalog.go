// Package catalog holds the static rules catalog: entries, the published
// category enumeration and an id index.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Category groups rule entries in the reference UI.
type Category string

const (
	CategoryCombat     Category = "Combat"
	CategorySkills     Category = "Skills"
	CategoryCyberware  Category = "Cyberware"
	CategoryNetrunning Category = "Netrunning"
	CategoryEquipment  Category = "Equipment"
	CategoryVehicles   Category = "Vehicles"
)

var publishedCategories = []Category{
	CategoryCombat,
	CategorySkills,
	CategoryCyberware,
	CategoryNetrunning,
	CategoryEquipment,
	CategoryVehicles,
}

// Categories returns the published category enumeration in display order.
func Categories() []Category {
	out := make([]Category, len(publishedCategories))
	copy(out, publishedCategories)
	return out
}

// Published reports whether c is part of the published enumeration.
func (c Category) Published() bool {
	for _, known := range publishedCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Entry is one rule in the catalog.
type Entry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Content     string   `json:"content"`
	Related     []string `json:"related,omitempty"`
	QuickRef    bool     `json:"quick_ref"`
	Page        int      `json:"page,omitempty"`
}

func (e Entry) clone() Entry {
	if e.Related != nil {
		e.Related = append([]string(nil), e.Related...)
	}
	return e
}

var (
	// ErrEmptyID is returned when an entry has a blank id.
	ErrEmptyID = errors.New("entry id is required")
	// ErrDuplicateID is returned when two entries share an id.
	ErrDuplicateID = errors.New("duplicate entry id")
)

// Catalog is an immutable, ordered set of entries. It is safe for concurrent
// reads.
type Catalog struct {
	entries []Entry
	index   map[string]int
	meta    Metadata
}

// Metadata describes where a catalog came from.
type Metadata struct {
	SystemID      string `json:"system_id"`
	SystemVersion string `json:"system_version"`
	Source        string `json:"source"`
	Locale        string `json:"locale"`
}

// New builds a catalog from entries, keeping their order. Entries are copied.
func New(meta Metadata, entries []Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
		meta:    meta,
	}
	for i, entry := range entries {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyID)
		}
		if _, exists := c.index[id]; exists {
			return nil, fmt.Errorf("entry %d: %w %q", i, ErrDuplicateID, id)
		}
		entry.ID = id
		c.index[id] = len(c.entries)
		c.entries = append(c.entries, entry.clone())
	}
	return c, nil
}

// MustNew is New that panics on error. Intended for fixtures.
func MustNew(meta Metadata, entries []Entry) *Catalog {
	c, err := New(meta, entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Metadata returns the catalog's source metadata.
func (c *Catalog) Metadata() Metadata {
	if c == nil {
		return Metadata{}
	}
	return c.meta
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of all entries in catalog order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	for i, entry := range c.entries {
		out[i] = entry.clone()
	}
	return out
}

// Each calls fn for every entry in catalog order until fn returns false.
// The entry passed to fn must not be retained past the call.
func (c *Catalog) Each(fn func(Entry) bool) {
	if c == nil {
		return
	}
	for _, entry := range c.entries {
		if !fn(entry) {
			return
		}
	}
}

// Lookup returns the entry with id.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i].clone(), true
}

// Contains reports whether id is in the catalog.
func (c *Catalog) Contains(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[id]
	return ok
}

// CategoryOrder returns each distinct category in order of first appearance,
// including categories outside the published enumeration.
func (c *Catalog) CategoryOrder() []Category {
	if c == nil {
		return nil
	}
	seen := map[Category]struct{}{}
	var out []Category
	for _, entry := range c.entries {
		if _, ok := seen[entry.Category]; ok {
			continue
		}
		seen[entry.Category] = struct{}{}
		out = append(out, entry.Category)
	}
	return out
}
