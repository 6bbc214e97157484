package derivative

import (
	"fmt"

	"github.com/menta2k/image-derivative/pkg/codec"
	"github.com/menta2k/image-derivative/pkg/sizes"
)

// Config holds the fixed geometry of the derivatives
type Config struct {
	// DisplayCap is the widest preview a selection is ever drawn on
	DisplayCap  int
	ThumbWidth  int
	ThumbHeight int
	Sizes       []sizes.Entry
	Codec       codec.Options
}

// DefaultConfig returns the publishing defaults
func DefaultConfig() Config {
	return Config{
		DisplayCap:  410,
		ThumbWidth:  256,
		ThumbHeight: 192,
		Sizes:       sizes.DefaultEntries(),
		Codec:       codec.DefaultOptions(),
	}
}

// Validate checks the geometry values
func (c Config) Validate() error {
	if c.DisplayCap < 1 {
		return fmt.Errorf("display cap must be positive, got %d", c.DisplayCap)
	}
	if c.ThumbWidth < 1 || c.ThumbHeight < 1 {
		return fmt.Errorf("thumbnail size must be positive, got %dx%d", c.ThumbWidth, c.ThumbHeight)
	}
	return nil
}
