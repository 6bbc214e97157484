package sizes

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.Len() != len(defaultEntries) {
		t.Errorf("Expected %d entries, got %d", len(defaultEntries), c.Len())
	}

	names := c.Names()
	if names[0] != "thumb" || names[1] != "max" {
		t.Errorf("Expected registration order to be kept, got %v", names[:2])
	}
}

func TestResolve(t *testing.T) {
	c := Default()

	tests := []struct {
		name     string
		expected int
	}{
		{"max", 556},
		{"MAX", 556},
		{"Half", 273},
		{" grid12 ", 960},
		{"full_ad", 536},
		{"thumb", 256},
		{"556", 556},
		{"140", 140},
	}

	for _, test := range tests {
		width, err := c.Resolve(test.name)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", test.name, err)
			continue
		}
		if width != test.expected {
			t.Errorf("Resolve(%q) = %d, expected %d", test.name, width, test.expected)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	c := Default()

	for _, name := range []string{"bogus", "", "grid1", "ma", "maxx", "557", "-1"} {
		if _, err := c.Resolve(name); !errors.Is(err, ErrUnknownSize) {
			t.Errorf("Resolve(%q): expected ErrUnknownSize, got %v", name, err)
		}
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty", nil},
		{"no name", []Entry{{"", 100}}},
		{"zero width", []Entry{{"small", 0}}},
		{"negative width", []Entry{{"small", -5}}},
		{"duplicate", []Entry{{"small", 100}, {"SMALL", 200}}},
	}

	for _, test := range tests {
		if _, err := New(test.entries); err == nil {
			t.Errorf("%s: expected an error", test.name)
		}
	}
}

func TestEntriesIsACopy(t *testing.T) {
	c, err := New([]Entry{{"Small", 100}, {"large", 800}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	entries := c.Entries()
	entries[0].Width = 1

	want := []Entry{{"small", 100}, {"large", 800}}
	if diff := cmp.Diff(want, c.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
}
