package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/menta2k/image-derivative/pkg/types"
)

var landscape = types.TargetSize{Width: 256, Height: 192}

func TestThumbnailTarget(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selection
		expected types.TargetSize
	}{
		{"landscape", Selection{0, 0, 200, 100}, types.TargetSize{Width: 256, Height: 192}},
		{"portrait", Selection{0, 0, 100, 200}, types.TargetSize{Width: 192, Height: 256}},
		{"square", Selection{10, 10, 110, 110}, types.TargetSize{Width: 192, Height: 256}},
		{"offset landscape", Selection{300, 50, 401, 150}, types.TargetSize{Width: 256, Height: 192}},
		{"no selection", NoSelection, types.TargetSize{Width: 256, Height: 192}},
	}

	for _, test := range tests {
		got := ThumbnailTarget(test.sel, 256, 192)
		if got != test.expected {
			t.Errorf("%s: expected %s, got %s", test.name, test.expected, got)
		}
	}
}

func TestToNativePassThrough(t *testing.T) {
	tr := NewTransformer(410)

	for _, width := range []int{100, 300, 410} {
		sel := Selection{5, 7, 60, 80}
		got, err := tr.ToNative(sel, width, 200, landscape)
		if err != nil {
			t.Fatalf("ToNative failed for width %d: %v", width, err)
		}
		want := Rect{5, 7, 60, 80}
		if got != want {
			t.Errorf("width %d: expected %+v, got %+v", width, want, got)
		}
	}
}

func TestToNativeScales(t *testing.T) {
	tr := NewTransformer(410)

	got, err := tr.ToNative(Selection{10, 10, 100, 100}, 820, 600, landscape)
	if err != nil {
		t.Fatalf("ToNative failed: %v", err)
	}

	want := Rect{20, 20, 200, 200}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToNative mismatch (-want +got):\n%s", diff)
	}
}

func TestToNativeUsesUniformRatio(t *testing.T) {
	tr := NewTransformer(410)

	// A 1230x300 image is shown at 410x100; the bottom right corner of the
	// preview must land on the bottom right corner of the source.
	got, err := tr.ToNative(Selection{0, 0, 410, 100}, 1230, 300, landscape)
	if err != nil {
		t.Fatalf("ToNative failed: %v", err)
	}

	want := Rect{0, 0, 1230, 300}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestToNativeDefaultSelection(t *testing.T) {
	tr := NewTransformer(410)

	got, err := tr.ToNative(NoSelection, 1000, 1000, landscape)
	if err != nil {
		t.Fatalf("ToNative failed: %v", err)
	}

	want := Rect{0, 0, 1000, 750}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestToNativeDefaultSelectionIgnoresHeight(t *testing.T) {
	raw := DefaultRect(1000, landscape)
	if raw != (Rect{0, 0, 1000, 750}) {
		t.Errorf("unexpected default rect %+v", raw)
	}
	if raw.Within(1000, 600) {
		t.Error("expected default rect to overflow a 1000x600 image")
	}

	got, err := NewTransformer(410).ToNative(NoSelection, 1000, 600, landscape)
	if err != nil {
		t.Fatalf("ToNative failed: %v", err)
	}
	if got != (Rect{0, 0, 1000, 600}) {
		t.Errorf("expected clamped rect, got %+v", got)
	}
}

func TestToNativeClamps(t *testing.T) {
	tr := NewTransformer(410)

	got, err := tr.ToNative(Selection{0, 50, 500, 500}, 400, 300, landscape)
	if err != nil {
		t.Fatalf("ToNative failed: %v", err)
	}

	want := Rect{0, 50, 400, 300}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestToNativeHugeCoordinates(t *testing.T) {
	tr := NewTransformer(410)

	for _, x2 := range []int{5000, math.MaxInt32, math.MaxInt} {
		got, err := tr.ToNative(Selection{0, 0, x2, 100}, 820, 600, landscape)
		if err != nil {
			t.Fatalf("X2=%d: ToNative failed: %v", x2, err)
		}
		want := Rect{0, 0, 820, 200}
		if got != want {
			t.Errorf("X2=%d: expected %+v, got %+v", x2, want, got)
		}
	}
}

func TestOverflows(t *testing.T) {
	tr := NewTransformer(410)

	tests := []struct {
		name     string
		sel      Selection
		expected bool
	}{
		{"inside", Selection{10, 10, 100, 100}, false},
		{"preview edge", Selection{0, 0, 410, 300}, false},
		{"right", Selection{10, 10, 411, 100}, true},
		{"below", Selection{10, 10, 100, 301}, true},
		{"huge", Selection{0, 0, math.MaxInt, 100}, true},
		{"no selection", NoSelection, false},
	}

	for _, test := range tests {
		if got := tr.Overflows(test.sel, 820, 600); got != test.expected {
			t.Errorf("%s: Overflows = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestToNativeInvalid(t *testing.T) {
	tr := NewTransformer(410)

	tests := []struct {
		name   string
		sel    Selection
		width  int
		height int
	}{
		{"zero width", Selection{10, 10, 10, 50}, 400, 300},
		{"zero height", Selection{10, 10, 50, 10}, 400, 300},
		{"reversed x", Selection{50, 10, 10, 50}, 400, 300},
		{"reversed y", Selection{10, 50, 50, 10}, 400, 300},
		{"outside", Selection{500, 10, 600, 50}, 400, 300},
		{"below", Selection{10, 400, 50, 450}, 400, 300},
		{"empty image", Selection{0, 0, 10, 10}, 0, 0},
	}

	for _, test := range tests {
		_, err := tr.ToNative(test.sel, test.width, test.height, landscape)
		if !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("%s: expected ErrInvalidSelection, got %v", test.name, err)
		}
	}
}

func TestRatio(t *testing.T) {
	tr := NewTransformer(410)

	tests := []struct {
		width    int
		expected float64
	}{
		{200, 1},
		{410, 1},
		{820, 2},
		{1025, 2.5},
	}

	for _, test := range tests {
		if got := tr.Ratio(test.width); got != test.expected {
			t.Errorf("Ratio(%d) = %f, expected %f", test.width, got, test.expected)
		}
	}

	if got := NewTransformer(0).Ratio(5000); got != 1 {
		t.Errorf("expected ratio 1 without a display cap, got %f", got)
	}
}

func BenchmarkToNative(b *testing.B) {
	tr := NewTransformer(410)
	sel := Selection{10, 20, 300, 250}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.ToNative(sel, 4000, 3000, landscape)
	}
}
