// Package utils holds the file system helpers shared by the CLI and the
// directory store.
package utils

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/menta2k/image-derivative/pkg/codec"
)

var unsafeChars = strings.NewReplacer(
	"/", "_", "\\", "_", ":", "_", "*", "_", "?", "_",
	"\"", "_", "<", "_", ">", "_", "|", "_",
)

// EnsureDir creates dir and any missing parents
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// OutputPath builds dir/<prefix><base><suffix>.<ext> for a derivative of
// the source called name. The source extension is dropped; ext falls back
// to it, then to jpg.
func OutputPath(dir, prefix, name, suffix, ext string) string {
	base := SanitizeFilename(filepath.Base(name))
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = "image"
	}

	if ext == "" {
		ext = strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	}
	if ext == "" {
		ext = "jpg"
	}
	return filepath.Join(dir, prefix+stem+suffix+"."+ext)
}

// ListImageFiles walks dir and returns every file whose extension maps to
// an image type tag, in lexical order. Hidden directories are skipped.
func ListImageFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != dir && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if codec.TypeForFile(path) != "" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// IsFile reports whether path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// SanitizeFilename replaces path separators and characters that are not
// allowed in file names, and trims surrounding spaces and dots.
func SanitizeFilename(filename string) string {
	return strings.Trim(unsafeChars.Replace(filename), " .")
}

// FormatFileSize formats a byte count as B, KB, MB, ...
func FormatFileSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
