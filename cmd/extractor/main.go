package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ccamcli/internal/archive"
	"ccamcli/internal/config"
)

func main() {
	baseDir := flag.String("dir", "", "base directory (defaults to the executable directory)")
	flag.Parse()

	paths, cfg, err := initialize(*baseDir)
	if err != nil {
		slog.Error("Initialization failed", "error", err)
		os.Exit(1)
	}

	logger := config.SetupLogger(cfg.Logging)
	logger.Info("Starting archive extraction",
		slog.String("archives_dir", paths.ArchivesDir),
		slog.String("tables_dir", paths.TablesDir))

	count, err := archive.ExtractAll(paths.ArchivesDir, paths.TablesDir)
	if err != nil {
		logger.Error("Extraction failed", "error", err)
		os.Exit(1)
	}

	files, err := archive.FindDBFFiles(paths.TablesDir)
	if err != nil {
		logger.Error("Failed to list extracted tables", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Archives extraites: %d\n", count)
	fmt.Printf("Fichiers DBF disponibles: %d\n", len(files))
	for _, f := range files {
		fmt.Printf("  %-32s %10d octets\n", f.Name, f.Size)
	}
}

func initialize(baseDir string) (*config.Paths, *config.Config, error) {
	var paths *config.Paths
	if baseDir != "" {
		paths = config.NewPaths(baseDir)
	} else {
		var err error
		paths, err = config.GetPaths()
		if err != nil {
			return nil, nil, err
		}
	}

	cfg, err := config.Load(paths.ConfigFile)
	if err != nil {
		return nil, nil, err
	}
	if cfg.DataDir != "" {
		paths.ApplyDataDir(cfg.DataDir)
	}

	if err := paths.EnsureDirectories(); err != nil {
		return nil, nil, err
	}

	return paths, cfg, nil
}
