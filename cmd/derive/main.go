package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	imagederivative "github.com/menta2k/image-derivative"
	"github.com/menta2k/image-derivative/internal/config"
	"github.com/menta2k/image-derivative/internal/utils"
	"github.com/menta2k/image-derivative/pkg/derivative"
	"github.com/menta2k/image-derivative/pkg/geometry"
	"github.com/menta2k/image-derivative/pkg/store"
)

func main() {
	var in, outDir, configPath, initConfig, typ string
	var thumb, sizeList, description, logLevel, prefix string
	var width int
	var metadata, list bool

	flag.StringVar(&in, "in", "", "input image file or directory (jpg/png/gif)")
	flag.StringVar(&outDir, "out", "", "output directory (default from config)")
	flag.StringVar(&prefix, "prefix", "", "prefix for output file names")
	flag.StringVar(&configPath, "config", "", "config file, JSON or YAML (default ~/.config/image-derivative/config.json if present)")
	flag.StringVar(&initConfig, "init-config", "", "write the default config to this path and exit")
	flag.StringVar(&typ, "type", "", "type tag of the input, e.g. image/jpeg (default: detect)")

	flag.StringVar(&thumb, "thumb", "", "thumbnail selection x1,y1,x2,y2 on the preview, or none for the default crop")
	flag.StringVar(&sizeList, "sizes", "", "comma separated named widths, or all")
	flag.IntVar(&width, "width", 0, "extra derivative at this width")
	flag.StringVar(&description, "description", "", "description stored with each derivative")
	flag.BoolVar(&metadata, "metadata", false, "write a JSON metadata file next to each derivative")

	flag.StringVar(&logLevel, "log-level", "info", "log level: debug|info|warn|error")
	flag.BoolVar(&list, "list", false, "list the named widths and exit")

	flag.Parse()

	if initConfig != "" {
		if err := config.Default().SaveToFile(initConfig); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", initConfig)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	if list {
		for _, e := range cfg.Sizes {
			fmt.Printf("%-10s %5d\n", e.Name, e.Width)
		}
		return
	}

	if in == "" {
		log.Fatalf("usage: %s -in input.jpg|dir [-thumb x1,y1,x2,y2|none] [-sizes max,half|all] [-width 400] [-out outdir] [-config config.yaml]", filepath.Base(os.Args[0]))
	}

	batch, err := parseBatch(thumb, sizeList, width, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if outDir == "" {
		outDir = cfg.Output.OutputDir
	}
	if prefix == "" {
		prefix = cfg.Output.Prefix
	}
	saver, err := store.NewDir(outDir, prefix, metadata || cfg.Output.WriteMetadata)
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(logLevel)}))
	deriver, err := imagederivative.NewWithConfig(cfg.FactoryConfig(), saver, derivative.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	inputs := []string{in}
	if utils.IsDir(in) {
		inputs, err = utils.ListImageFiles(in)
		if err != nil {
			log.Fatal(err)
		}
	}

	failed := 0
	for _, path := range inputs {
		asset, err := imagederivative.LoadAsset(path, typ)
		if err != nil {
			log.Printf("load %s failed: %v", path, err)
			failed++
			continue
		}
		asset.Description = description

		results, err := deriver.GenerateBatch(asset, batch)
		if err != nil {
			log.Printf("derive %s failed: %v", path, err)
			failed++
			continue
		}
		for _, d := range results {
			log.Printf("wrote %s (%dx%d, %s)", saver.Path(d), d.Width, d.Height, utils.FormatFileSize(int64(d.Size)))
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if def := config.GetConfigPath(); utils.IsFile(def) {
			path = def
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		cfg, err = config.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func parseBatch(thumb, sizeList string, width int, cfg *config.Config) (derivative.Batch, error) {
	var batch derivative.Batch

	switch strings.ToLower(strings.TrimSpace(thumb)) {
	case "":
	case "none":
		batch.Thumbnail = true
		batch.Selection = geometry.NoSelection
	default:
		sel, err := parseSelection(thumb)
		if err != nil {
			return batch, err
		}
		batch.Thumbnail = true
		batch.Selection = sel
	}

	if strings.EqualFold(strings.TrimSpace(sizeList), "all") {
		for _, e := range cfg.Sizes {
			batch.Names = append(batch.Names, e.Name)
		}
	} else {
		for _, name := range strings.Split(sizeList, ",") {
			if name = strings.TrimSpace(name); name != "" {
				batch.Names = append(batch.Names, name)
			}
		}
	}

	if width > 0 {
		batch.Widths = append(batch.Widths, width)
	}

	if !batch.Thumbnail && len(batch.Names) == 0 && len(batch.Widths) == 0 {
		return batch, fmt.Errorf("nothing to do: pass -thumb, -sizes or -width")
	}
	return batch, nil
}

func parseSelection(s string) (geometry.Selection, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geometry.Selection{}, fmt.Errorf("selection must be x1,y1,x2,y2, got %q", s)
	}

	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return geometry.Selection{}, fmt.Errorf("invalid selection value %q: %w", p, err)
		}
		v[i] = n
	}
	return geometry.Selection{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
