package derivative

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/menta2k/image-derivative/pkg/geometry"
	"github.com/menta2k/image-derivative/pkg/types"
)

// Batch lists the derivatives to produce from one source
type Batch struct {
	Thumbnail bool
	Selection geometry.Selection
	Names     []string
	Widths    []int
}

// GenerateBatch produces every derivative in b concurrently. Names and
// widths are checked before any work starts. Results are ordered as the
// thumbnail, then Names, then Widths. On failure the first error is
// returned; derivatives already saved by then stay saved. A width requested
// more than once, by name or number, is generated and saved once.
func (f *Factory) GenerateBatch(src types.ImageAsset, b Batch) ([]*types.Derivative, error) {
	widths := make([]int, 0, len(b.Names)+len(b.Widths))
	for _, name := range b.Names {
		w, err := f.catalog.Resolve(name)
		if err != nil {
			return nil, err
		}
		widths = append(widths, w)
	}
	for _, w := range b.Widths {
		if w <= 0 {
			return nil, fmt.Errorf("%w: width %d", ErrInvalidSize, w)
		}
		widths = append(widths, w)
	}
	if _, err := f.codecs.Lookup(src.Type); err != nil {
		return nil, err
	}

	// Each distinct width is generated once; repeats share the result.
	var unique []int
	slot := make(map[int]int, len(widths))
	for _, w := range widths {
		if _, ok := slot[w]; !ok {
			slot[w] = len(unique)
			unique = append(unique, w)
		}
	}

	var thumb *types.Derivative
	wide := make([]*types.Derivative, len(unique))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	if b.Thumbnail {
		g.Go(func() error {
			d, err := f.GenerateThumbnail(src, b.Selection)
			if err != nil {
				return err
			}
			thumb = d
			return nil
		})
	}
	for i, w := range unique {
		g.Go(func() error {
			d, err := f.GenerateVariableWidth(src, w)
			if err != nil {
				return err
			}
			wide[i] = d
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]*types.Derivative, 0, len(widths)+1)
	if b.Thumbnail {
		results = append(results, thumb)
	}
	for _, w := range widths {
		results = append(results, wide[slot[w]])
	}
	return results, nil
}
