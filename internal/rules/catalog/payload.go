package catalog

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// SystemID identifies the ruleset a catalog file must target.
	SystemID = "nightcity"
	// SystemVersion is the catalog payload version this build reads.
	SystemVersion = "v1"
)

// Payload is the versioned catalog data file.
type Payload struct {
	SystemID      string `json:"system_id" yaml:"system_id"`
	SystemVersion string `json:"system_version" yaml:"system_version"`
	Source        string `json:"source" yaml:"source"`
	Locale        string `json:"locale" yaml:"locale"`
	Items         []Item `json:"items" yaml:"items"`
}

// Item is one entry as written in a catalog data file.
type Item struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Category    string   `json:"category" yaml:"category"`
	Subcategory string   `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	Content     string   `json:"content" yaml:"content"`
	Related     []string `json:"related,omitempty" yaml:"related,omitempty"`
	QuickRef    bool     `json:"quick_ref" yaml:"quick_ref"`
	Page        int      `json:"page,omitempty" yaml:"page,omitempty"`
}

// Format selects the payload encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from a file extension; anything that is not
// .json is read as YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// DecodePayload decodes data without validating it.
func DecodePayload(data []byte, format Format) (Payload, error) {
	var payload Payload
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&payload); err != nil {
			return Payload{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&payload); err != nil {
			return Payload{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return Payload{}, fmt.Errorf("unsupported catalog format %q", format)
	}
	return payload, nil
}

// Validate checks the payload header and item ids.
func (p Payload) Validate() error {
	if strings.TrimSpace(p.SystemID) != SystemID {
		return fmt.Errorf("system_id must be %q, got %q", SystemID, p.SystemID)
	}
	if strings.TrimSpace(p.SystemVersion) != SystemVersion {
		return fmt.Errorf("system_version must be %q, got %q", SystemVersion, p.SystemVersion)
	}
	if strings.TrimSpace(p.Source) == "" {
		return fmt.Errorf("source is required")
	}
	if strings.TrimSpace(p.Locale) == "" {
		return fmt.Errorf("locale is required")
	}
	seen := make(map[string]struct{}, len(p.Items))
	for i, item := range p.Items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return fmt.Errorf("items[%d]: %w", i, ErrEmptyID)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("items[%d]: %w %q", i, ErrDuplicateID, id)
		}
		seen[id] = struct{}{}
		if strings.TrimSpace(item.Title) == "" {
			return fmt.Errorf("items[%d] %q: title is required", i, id)
		}
	}
	return nil
}

// Metadata returns the payload header.
func (p Payload) Metadata() Metadata {
	return Metadata{
		SystemID:      strings.TrimSpace(p.SystemID),
		SystemVersion: strings.TrimSpace(p.SystemVersion),
		Source:        strings.TrimSpace(p.Source),
		Locale:        strings.TrimSpace(p.Locale),
	}
}

// Entries converts payload items to entries. Unknown categories are kept
// as-is.
func (p Payload) Entries() []Entry {
	entries := make([]Entry, 0, len(p.Items))
	for _, item := range p.Items {
		entries = append(entries, Entry{
			ID:          strings.TrimSpace(item.ID),
			Title:       strings.TrimSpace(item.Title),
			Category:    Category(strings.TrimSpace(item.Category)),
			Subcategory: strings.TrimSpace(item.Subcategory),
			Content:     item.Content,
			Related:     item.Related,
			QuickRef:    item.QuickRef,
			Page:        item.Page,
		})
	}
	return entries
}

// PayloadFromCatalog converts a catalog back to its data file form.
func PayloadFromCatalog(c *Catalog) Payload {
	meta := c.Metadata()
	payload := Payload{
		SystemID:      meta.SystemID,
		SystemVersion: meta.SystemVersion,
		Source:        meta.Source,
		Locale:        meta.Locale,
	}
	for _, entry := range c.Entries() {
		payload.Items = append(payload.Items, Item{
			ID:          entry.ID,
			Title:       entry.Title,
			Category:    string(entry.Category),
			Subcategory: entry.Subcategory,
			Content:     entry.Content,
			Related:     entry.Related,
			QuickRef:    entry.QuickRef,
			Page:        entry.Page,
		})
	}
	return payload
}

// Parse decodes, validates and builds a catalog.
func Parse(data []byte, format Format) (*Catalog, error) {
	payload, err := DecodePayload(data, format)
	if err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	return New(payload.Metadata(), payload.Entries())
}

// LoadFile reads a catalog data file from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// LoadFS reads a catalog data file from fsys.
func LoadFS(fsys fs.FS, name string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	c, err := Parse(data, FormatForPath(name))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", name, err)
	}
	return c, nil
}

//go:embed data/rules.yaml
var bundled embed.FS

// Bundled returns the catalog shipped with the binary.
func Bundled() (*Catalog, error) {
	return LoadFS(bundled, "data/rules.yaml")
}

// BundledPayload returns the raw bundled data file.
func BundledPayload() ([]byte, error) {
	return fs.ReadFile(bundled, "data/rules.yaml")
}
