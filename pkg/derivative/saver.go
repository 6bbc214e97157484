package derivative

import "github.com/menta2k/image-derivative/pkg/types"

// Saver persists generated derivatives. Save is called once per
// derivative, after encoding. Implementations used with GenerateBatch must
// be safe for concurrent use.
type Saver interface {
	Save(d *types.Derivative) error
}

// SaverFunc adapts a function to the Saver interface
type SaverFunc func(d *types.Derivative) error

// Save calls f(d)
func (f SaverFunc) Save(d *types.Derivative) error {
	return f(d)
}
