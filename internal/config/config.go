package config

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/menta2k/image-derivative/pkg/codec"
	"github.com/menta2k/image-derivative/pkg/derivative"
	"github.com/menta2k/image-derivative/pkg/sizes"
)

// Config holds the application configuration
type Config struct {
	Geometry GeometryConfig `json:"geometry" yaml:"geometry"`
	Sizes    []sizes.Entry  `json:"sizes" yaml:"sizes"`
	Codec    CodecConfig    `json:"codec" yaml:"codec"`
	Output   OutputConfig   `json:"output" yaml:"output"`
}

// GeometryConfig holds the selection preview cap and thumbnail size
type GeometryConfig struct {
	DisplayCap  int `json:"display_cap" yaml:"display_cap"`
	ThumbWidth  int `json:"thumb_width" yaml:"thumb_width"`
	ThumbHeight int `json:"thumb_height" yaml:"thumb_height"`
}

// CodecConfig holds encoder settings
type CodecConfig struct {
	JPEGQuality    int     `json:"jpeg_quality" yaml:"jpeg_quality"`
	PNGCompression string  `json:"png_compression" yaml:"png_compression"`
	GIFColors      int     `json:"gif_colors" yaml:"gif_colors"`
	EnableWebP     bool    `json:"enable_webp" yaml:"enable_webp"`
	WebPQuality    float32 `json:"webp_quality" yaml:"webp_quality"`
	WebPLossless   bool    `json:"webp_lossless" yaml:"webp_lossless"`
}

// OutputConfig holds configuration for the directory store
type OutputConfig struct {
	OutputDir     string `json:"output_dir" yaml:"output_dir"`
	Prefix        string `json:"prefix" yaml:"prefix"`
	WriteMetadata bool   `json:"write_metadata" yaml:"write_metadata"`
}

var pngCompressionLevels = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"speed":   png.BestSpeed,
	"best":    png.BestCompression,
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Geometry: GeometryConfig{
			DisplayCap:  410,
			ThumbWidth:  256,
			ThumbHeight: 192,
		},
		Sizes: sizes.DefaultEntries(),
		Codec: CodecConfig{
			JPEGQuality:    90,
			PNGCompression: "default",
			GIFColors:      256,
			EnableWebP:     false,
			WebPQuality:    90,
			WebPLossless:   false,
		},
		Output: OutputConfig{
			OutputDir:     "./output",
			Prefix:        "",
			WriteMetadata: false,
		},
	}
}

// LoadFromFile loads configuration from a JSON or YAML file. Values
// missing from the file keep their defaults.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if isYAML(filename) {
		err = yaml.Unmarshal(data, config)
	} else {
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a JSON or YAML file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var data []byte
	var err error
	if isYAML(filename) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Geometry.DisplayCap < 1 {
		return fmt.Errorf("geometry.display_cap must be positive")
	}

	if c.Geometry.ThumbWidth < 1 || c.Geometry.ThumbHeight < 1 {
		return fmt.Errorf("geometry.thumb_width and geometry.thumb_height must be positive")
	}

	if _, err := sizes.New(c.Sizes); err != nil {
		return fmt.Errorf("sizes: %w", err)
	}

	if c.Codec.JPEGQuality < 1 || c.Codec.JPEGQuality > 100 {
		return fmt.Errorf("codec.jpeg_quality must be between 1 and 100")
	}

	if _, ok := pngCompressionLevels[strings.ToLower(c.Codec.PNGCompression)]; !ok {
		return fmt.Errorf("codec.png_compression must be one of default, none, speed, best")
	}

	if c.Codec.GIFColors < 1 || c.Codec.GIFColors > 256 {
		return fmt.Errorf("codec.gif_colors must be between 1 and 256")
	}

	if c.Codec.WebPQuality < 0 || c.Codec.WebPQuality > 100 {
		return fmt.Errorf("codec.webp_quality must be between 0 and 100")
	}

	return nil
}

// FactoryConfig converts the configuration for derivative.New
func (c *Config) FactoryConfig() derivative.Config {
	return derivative.Config{
		DisplayCap:  c.Geometry.DisplayCap,
		ThumbWidth:  c.Geometry.ThumbWidth,
		ThumbHeight: c.Geometry.ThumbHeight,
		Sizes:       append([]sizes.Entry(nil), c.Sizes...),
		Codec: codec.Options{
			JPEGQuality:    c.Codec.JPEGQuality,
			PNGCompression: pngCompressionLevels[strings.ToLower(c.Codec.PNGCompression)],
			GIFColors:      c.Codec.GIFColors,
			EnableWebP:     c.Codec.EnableWebP,
			WebPQuality:    c.Codec.WebPQuality,
			WebPLossless:   c.Codec.WebPLossless,
		},
	}
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "image-derivative", "config.json")
}

func isYAML(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".yaml" || ext == ".yml"
}
