// Package sizes maps symbolic size names to target widths.
package sizes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownSize is returned when a name is not registered in the catalog
var ErrUnknownSize = errors.New("sizes: unknown size")

// Entry is a named target width
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Width int    `json:"width" yaml:"width"`
}

// Catalog is an immutable, ordered set of named widths
type Catalog struct {
	entries []Entry
	byName  map[string]int
	byWidth map[int]struct{}
}

// Widths used by the publishing templates
var defaultEntries = []Entry{
	{"thumb", 256},
	{"max", 556},
	{"half", 273},
	{"full_ad", 536},
	{"half_ad", 253},
	{"grid2", 140},
	{"grid3", 222},
	{"grid4", 304},
	{"grid5", 386},
	{"grid6", 468},
	{"grid7", 550},
	{"grid8", 632},
	{"grid9", 714},
	{"grid10", 796},
	{"grid11", 878},
	{"grid12", 960},
}

// DefaultEntries returns a copy of the built-in catalog entries
func DefaultEntries() []Entry {
	return append([]Entry(nil), defaultEntries...)
}

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(defaultEntries)
	if err != nil {
		panic(err)
	}
	return c
}

// New builds a catalog from entries. Names must be non-empty and unique
// ignoring case, widths must be positive.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("sizes: catalog cannot be empty")
	}

	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
		byWidth: make(map[int]struct{}, len(entries)),
	}
	for _, e := range entries {
		key := normalize(e.Name)
		if key == "" {
			return nil, fmt.Errorf("sizes: entry with width %d has no name", e.Width)
		}
		if e.Width <= 0 {
			return nil, fmt.Errorf("sizes: %q must have a positive width, got %d", e.Name, e.Width)
		}
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("sizes: duplicate entry %q", e.Name)
		}
		c.byName[key] = e.Width
		c.byWidth[e.Width] = struct{}{}
		c.entries = append(c.entries, Entry{Name: key, Width: e.Width})
	}
	return c, nil
}

// Resolve returns the width registered under name. A bare number is
// accepted when it equals one of the registered widths.
func (c *Catalog) Resolve(name string) (int, error) {
	key := normalize(name)
	if w, ok := c.byName[key]; ok {
		return w, nil
	}
	if w, err := strconv.Atoi(key); err == nil {
		if _, ok := c.byWidth[w]; ok {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSize, name)
}

// Entries returns the catalog entries in registration order
func (c *Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Names returns the registered names in registration order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
