package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ccamcli/internal/analysis"
	"ccamcli/internal/ccam"
	"ccamcli/internal/config"
	apperrors "ccamcli/internal/errors"
	"ccamcli/internal/exporter"
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
	logger.Info("Starting price evolution analysis",
		slog.String("tables_dir", paths.TablesDir),
		slog.String("output_dir", paths.ByMenuDir))

	ds, err := ccam.LoadDataset(paths)
	if err != nil {
		fatal(logger, "Failed to load tables", err)
	}

	merged, err := ds.Join(ccam.TableActeIvite, ccam.EvolutionPipeline())
	if err != nil {
		fatal(logger, "Join pipeline failed", err)
	}

	filters := ccam.DefaultFilters()
	filtered, err := filters.Apply(merged)
	if err != nil {
		fatal(logger, "Filter stage failed", err)
	}

	menuTable, ok := ds.Table(ccam.TableMenu)
	if !ok {
		fatal(logger, "Menu table is not loaded", nil)
	}
	hierarchy, err := ccam.NewHierarchy(menuTable)
	if err != nil {
		fatal(logger, "Failed to build menu hierarchy", err)
	}

	grilleTable, ok := ds.Table(ccam.TableGrille)
	if !ok {
		fatal(logger, "Grid table is not loaded", nil)
	}
	grilleLabels, err := ccam.GrilleLabels(grilleTable)
	if err != nil {
		fatal(logger, "Failed to read grid labels", err)
	}

	menus, err := analysis.MenuCodes(filtered)
	if err != nil {
		fatal(logger, "Failed to enumerate menus", err)
	}
	fmt.Printf("Menus à analyser: %d\n", len(menus))

	workbook := exporter.NewMenuWorkbook(paths.ByMenuDir, cfg.TopN, cfg.MaxFilenameLen)

	var written, skipped, failed int
	for i, menuCod := range menus {
		rows, err := analysis.EvolutionsForMenu(filtered, menuCod, filters.Grilles, grilleLabels)
		if err != nil {
			if apperrors.IsType(err, apperrors.ErrTypeEmptyGroup) {
				logger.Warn("No data for menu", slog.Int("menu_cod", menuCod))
				skipped++
				continue
			}
			fatal(logger, "Evolution analysis failed", err)
		}

		label, _ := hierarchy.Label(menuCod)
		filename, err := workbook.Export(menuCod, label, rows)
		if err != nil {
			logger.Error("Workbook export failed",
				slog.Int("menu_cod", menuCod),
				"error", err)
			failed++
			continue
		}

		fmt.Printf("[%d/%d] %s → %s (%d évolutions)\n",
			i+1, len(menus), hierarchy.Path(menuCod), filename, len(rows))
		written++
	}

	fmt.Printf("Classeurs écrits: %d, menus vides: %d, en échec: %d\n", written, skipped, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
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
