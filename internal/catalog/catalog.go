package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed glassyui.json
var defaultJSON []byte

// Descriptor describes one catalog entry.
type Descriptor struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Route       string `json:"route" yaml:"route"`
	Status      string `json:"status,omitempty" yaml:"status,omitempty"`
}

// Catalog is an immutable ordered set of descriptors.
type Catalog struct {
	name    string
	source  string
	entries []Descriptor
}

// file mirrors the on-disk catalog layout shared by the JSON and YAML forms.
type file struct {
	Name       string       `json:"name" yaml:"name"`
	Components []Descriptor `json:"components" yaml:"components"`
}

// New builds a catalog from descriptors, copying the slice so later
// mutations by the caller are not observed.
func New(name string, entries []Descriptor) *Catalog {
	dup := make([]Descriptor, len(entries))
	copy(dup, entries)
	return &Catalog{name: name, entries: dup}
}

// Default returns the bundled GlassyUI catalog.
func Default() *Catalog {
	cat, err := LoadBytes(defaultJSON, ".json")
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	cat.source = "embedded"
	return cat
}

// Name returns the catalog's display name.
func (c *Catalog) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Source returns where the catalog was loaded from.
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// At returns the descriptor at index i.
func (c *Catalog) At(i int) Descriptor {
	return c.entries[i]
}

// All returns a copy of the descriptors in catalog order.
func (c *Catalog) All() []Descriptor {
	if c == nil {
		return nil
	}
	dup := make([]Descriptor, len(c.entries))
	copy(dup, c.entries)
	return dup
}

// Equal reports whether two catalogs hold the same name and descriptors.
func (c *Catalog) Equal(other *Catalog) bool {
	if c == nil || other == nil {
		return c == other
	}
	if c.name != other.name || len(c.entries) != len(other.entries) {
		return false
	}
	for i := range c.entries {
		if c.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// Validate checks every descriptor and returns all problems found.
func (c *Catalog) Validate() []error {
	var errs []error
	titles := make(map[string]bool, len(c.entries))
	for i, d := range c.entries {
		title := strings.TrimSpace(d.Title)
		if title == "" {
			errs = append(errs, fmt.Errorf("components[%d]: title is required", i))
			continue
		}
		route := strings.TrimSpace(d.Route)
		switch {
		case route == "":
			errs = append(errs, fmt.Errorf("component %q: route is required", title))
		case !strings.HasPrefix(route, "/"):
			errs = append(errs, fmt.Errorf("component %q: route %q must start with /", title, route))
		}
		key := strings.ToLower(title)
		if titles[key] {
			errs = append(errs, fmt.Errorf("component %q: duplicate title", title))
			continue
		}
		titles[key] = true
	}
	return errs
}

// LoadBytes parses catalog data. ext selects the decoder: ".yaml" and ".yml"
// use YAML, anything else JSON.
func LoadBytes(data []byte, ext string) (*Catalog, error) {
	var raw file
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse catalog yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse catalog json: %w", err)
		}
	}

	cat := New(strings.TrimSpace(raw.Name), raw.Components)
	if errs := cat.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation failed: %w", errors.Join(errs...))
	}
	return cat, nil
}

// LoadFile reads a single catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := LoadBytes(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cat.source = path
	return cat, nil
}

// IsPattern reports whether value contains glob metacharacters.
func IsPattern(value string) bool {
	return strings.ContainsAny(value, "*?[{")
}

// LoadPattern loads a plain path or every file matching a doublestar glob.
// Matches are loaded in lexical order and concatenated; the first file with
// a name names the merged catalog.
func LoadPattern(pattern string) (*Catalog, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return Default(), nil
	}
	if !IsPattern(pattern) {
		return LoadFile(pattern)
	}
	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, fmt.Errorf("invalid catalog pattern %q", pattern)
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob catalog pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no catalog files match %q", pattern)
	}
	sort.Strings(matches)

	var (
		name    string
		entries []Descriptor
	)
	for _, path := range matches {
		part, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		if name == "" {
			name = part.name
		}
		entries = append(entries, part.entries...)
	}

	merged := New(name, entries)
	if errs := merged.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("merged catalog validation failed: %w", errors.Join(errs...))
	}
	merged.source = pattern
	return merged, nil
}
