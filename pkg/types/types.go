package types

import "fmt"

// ImageAsset is a stored image as handed over by the asset store.
// The core only reads it.
type ImageAsset struct {
	Data        []byte `json:"-"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TargetSize is the exact size a derivative measures after resampling
type TargetSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String returns the size formatted as WxH
func (s TargetSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// UseForThumbnail tags derivatives produced from a crop selection
const UseForThumbnail = "thumbnail"

// WideUseFor returns the use_for tag of a width-scaled derivative
func WideUseFor(width int) string {
	return fmt.Sprintf("%d_wide", width)
}

// Derivative is a newly generated variant of an ImageAsset
type Derivative struct {
	Data        []byte `json:"-"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Size        int    `json:"size"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	UseFor      string `json:"use_for"`
}

// NewDerivative copies the descriptive fields of src onto a derivative
// holding data.
func NewDerivative(src ImageAsset, data []byte, size TargetSize, useFor string) *Derivative {
	return &Derivative{
		Data:        data,
		Type:        src.Type,
		Name:        src.Name,
		Description: src.Description,
		Size:        len(data),
		Width:       size.Width,
		Height:      size.Height,
		UseFor:      useFor,
	}
}
