package imagederivative

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/menta2k/image-derivative/pkg/derivative"
	"github.com/menta2k/image-derivative/pkg/store"
)

// createTestImage creates a simple test image
func createTestImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	// Create a pattern with a bright subject in the center
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x > width/3 && x < 2*width/3 && y > height/3 && y < 2*height/3 {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			} else {
				img.Set(x, y, color.RGBA{64, 64, 64, 255})
			}
		}
	}

	return img
}

func writeTestFile(t *testing.T, name string, width, height int) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, createTestImage(width, height)); err != nil {
		t.Fatalf("png.Encode failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestNew(t *testing.T) {
	deriver, err := New(store.NewMemory())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if deriver.Factory() == nil {
		t.Error("factory is nil")
	}

	if _, err := New(nil); err == nil {
		t.Error("Expected error without a saver")
	}
}

func TestLoadAsset(t *testing.T) {
	path := writeTestFile(t, "photo.png", 40, 30)

	asset, err := LoadAsset(path, "")
	if err != nil {
		t.Fatalf("LoadAsset failed: %v", err)
	}
	if asset.Type != "image/png" || asset.Name != "photo.png" || len(asset.Data) == 0 {
		t.Errorf("Unexpected asset %s %s (%d bytes)", asset.Type, asset.Name, len(asset.Data))
	}

	// No extension: the type comes from the content
	sniffed, err := LoadAsset(writeTestFile(t, "upload", 40, 30), "")
	if err != nil {
		t.Fatalf("LoadAsset failed: %v", err)
	}
	if sniffed.Type != "image/png" {
		t.Errorf("Expected sniffed image/png, got %s", sniffed.Type)
	}

	explicit, err := LoadAsset(path, "image/x-png")
	if err != nil {
		t.Fatalf("LoadAsset failed: %v", err)
	}
	if explicit.Type != "image/x-png" {
		t.Errorf("Expected explicit type to win, got %s", explicit.Type)
	}
}

func TestLoadAssetErrors(t *testing.T) {
	if _, err := LoadAsset(filepath.Join(t.TempDir(), "missing.png"), ""); err == nil {
		t.Error("Expected error for missing file")
	}

	_, err := LoadAssetFromReader(bytes.NewReader([]byte("plain text")), "notes", "")
	if !errors.Is(err, derivative.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestGenerate(t *testing.T) {
	saver := store.NewMemory()
	deriver, err := New(saver)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	asset, err := LoadAsset(writeTestFile(t, "photo.png", 820, 600), "")
	if err != nil {
		t.Fatalf("LoadAsset failed: %v", err)
	}
	asset.Description = "Sunset"

	thumb, err := deriver.GenerateThumbnail(asset, 10, 100, 10, 100)
	if err != nil {
		t.Fatalf("GenerateThumbnail failed: %v", err)
	}
	if thumb.Width != 192 || thumb.Height != 256 || thumb.Description != "Sunset" {
		t.Errorf("Unexpected thumbnail %+v", thumb)
	}

	none, err := deriver.GenerateThumbnail(asset, -1, 0, 0, 0)
	if err != nil {
		t.Fatalf("GenerateThumbnail without selection failed: %v", err)
	}
	if none.Width != 256 || none.Height != 192 {
		t.Errorf("Expected 256x192, got %dx%d", none.Width, none.Height)
	}

	wide, err := deriver.GenerateNamedWidth(asset, "Max")
	if err != nil {
		t.Fatalf("GenerateNamedWidth failed: %v", err)
	}
	if wide.UseFor != "556_wide" {
		t.Errorf("Expected 556_wide, got %s", wide.UseFor)
	}

	custom, err := deriver.GenerateVariableWidth(asset, 410)
	if err != nil {
		t.Fatalf("GenerateVariableWidth failed: %v", err)
	}
	if custom.Width != 410 || custom.Height != 300 {
		t.Errorf("Expected 410x300, got %dx%d", custom.Width, custom.Height)
	}

	batch, err := deriver.GenerateBatch(asset, derivative.Batch{Names: []string{"grid2", "grid3"}})
	if err != nil {
		t.Fatalf("GenerateBatch failed: %v", err)
	}
	if len(batch) != 2 {
		t.Errorf("Expected 2 derivatives, got %d", len(batch))
	}

	if len(saver.Saved()) != 6 {
		t.Errorf("Expected 6 saves, got %d", len(saver.Saved()))
	}
}

func TestGetVersion(t *testing.T) {
	version := GetVersion()
	if version == "" {
		t.Error("Version should not be empty")
	}

	if version != Version {
		t.Errorf("GetVersion() returned %s, expected %s", version, Version)
	}
}

func BenchmarkGenerateNamedWidth(b *testing.B) {
	deriver, err := New(store.NewMemory())
	if err != nil {
		b.Fatal(err)
	}
	var buf bytes.Buffer
	png.Encode(&buf, createTestImage(1920, 1080))
	asset, err := LoadAssetFromReader(&buf, "bench.png", "")
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		deriver.GenerateNamedWidth(asset, "max")
	}
}
