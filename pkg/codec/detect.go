package codec

import (
	"bytes"
	"path/filepath"
	"strings"
)

var (
	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gif87a        = []byte("GIF87a")
	gif89a        = []byte("GIF89a")
	riffSignature = []byte("RIFF")
	webpSignature = []byte("WEBP")
)

var extensionTypes = map[string]string{
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"jpe":  "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

var typeExtensions = map[string]string{
	"image/jpeg":  "jpg",
	"image/pjpeg": "jpg",
	"image/png":   "png",
	"image/x-png": "png",
	"image/gif":   "gif",
	"image/webp":  "webp",
}

// Sniff returns the type tag matching the magic bytes of data, or an
// empty string if the format is not recognized.
func Sniff(data []byte) string {
	switch {
	case bytes.HasPrefix(data, jpegSignature):
		return "image/jpeg"
	case bytes.HasPrefix(data, pngSignature):
		return "image/png"
	case bytes.HasPrefix(data, gif87a), bytes.HasPrefix(data, gif89a):
		return "image/gif"
	case len(data) >= 12 && bytes.HasPrefix(data, riffSignature) && bytes.Equal(data[8:12], webpSignature):
		return "image/webp"
	}
	return ""
}

// TypeForFile returns the type tag implied by the extension of filename
func TypeForFile(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return extensionTypes[ext]
}

// ExtensionFor returns the file extension, without dot, for a type tag
func ExtensionFor(tag string) string {
	return typeExtensions[NormalizeTag(tag)]
}
