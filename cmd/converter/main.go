package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ccamcli/internal/ccam"
	"ccamcli/internal/config"
	"ccamcli/internal/dbf"
)

func main() {
	baseDir := flag.String("dir", "", "base directory (defaults to the executable directory)")
	force := flag.Bool("force", false, "re-parse tables even when a cache file exists")
	flag.Parse()

	paths, cfg, err := initialize(*baseDir)
	if err != nil {
		slog.Error("Initialization failed", "error", err)
		os.Exit(1)
	}

	logger := config.SetupLogger(cfg.Logging)
	logger.Info("Starting table conversion",
		slog.String("tables_dir", paths.TablesDir),
		slog.String("cache_dir", paths.CacheDir),
		slog.Bool("force", *force))

	var converted, skipped, failed int
	for _, name := range ccam.RequiredTables {
		cachePath := paths.GetCachePath(name)

		if !*force {
			if _, err := os.Stat(cachePath); err == nil {
				logger.Info("Cache up to date", slog.String("table", name))
				skipped++
				continue
			}
		}

		table, err := dbf.ReadTable(paths.GetTablePath(name))
		if err != nil {
			logger.Error("Failed to parse table",
				slog.String("table", name),
				"error", err)
			failed++
			continue
		}

		if err := dbf.SaveCache(table, cachePath); err != nil {
			logger.Error("Failed to write cache",
				slog.String("table", name),
				"error", err)
			failed++
			continue
		}

		logger.Info("Table cached",
			slog.String("table", name),
			slog.Int("rows", table.NumRows()))
		converted++
	}

	fmt.Printf("Tables converties: %d, ignorées: %d, en échec: %d\n", converted, skipped, failed)
	if failed > 0 {
		os.Exit(1)
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
