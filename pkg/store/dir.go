package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/menta2k/image-derivative/internal/utils"
	"github.com/menta2k/image-derivative/pkg/codec"
	"github.com/menta2k/image-derivative/pkg/types"
)

// ErrConflict is returned when a Dir is asked to write a file it already
// wrote, such as two sources sharing a base name.
var ErrConflict = errors.New("store: output file already written")

// Dir writes derivatives as files into a directory, named
// <prefix><name>_<use_for>.<ext>. With metadata enabled a JSON file with
// the descriptive fields is written next to each image. A Dir never
// overwrites a file it wrote itself. It is safe for concurrent use.
type Dir struct {
	root     string
	prefix   string
	metadata bool

	mu      sync.Mutex
	written map[string]bool
}

// NewDir creates a Dir store rooted at root, creating it if needed
func NewDir(root, prefix string, metadata bool) (*Dir, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("store: output directory is required")
	}
	if err := utils.EnsureDir(root); err != nil {
		return nil, fmt.Errorf("store: failed to create output directory: %w", err)
	}
	return &Dir{root: root, prefix: prefix, metadata: metadata, written: make(map[string]bool)}, nil
}

// Path returns the file d is written to
func (s *Dir) Path(d *types.Derivative) string {
	return utils.OutputPath(s.root, s.prefix, d.Name, "_"+d.UseFor, codec.ExtensionFor(d.Type))
}

// Save writes d to disk
func (s *Dir) Save(d *types.Derivative) error {
	path := s.Path(d)
	if err := s.claim(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, d.Data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if !s.metadata {
		return nil
	}

	meta, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(path+".json", meta, 0644); err != nil {
		return fmt.Errorf("failed to write metadata for %s: %w", path, err)
	}
	return nil
}

func (s *Dir) claim(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.written[path] {
		return fmt.Errorf("%w: %s", ErrConflict, path)
	}
	s.written[path] = true
	return nil
}
