package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ccamcli/internal/analysis"
	"ccamcli/internal/ccam"
	"ccamcli/internal/config"
	"ccamcli/internal/dbf"
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
	logger.Info("Starting price table analysis",
		slog.String("table", ccam.TablePuBase),
		slog.String("reports_dir", paths.ReportsDir))

	table, err := dbf.LoadTable(ccam.TablePuBase,
		paths.GetTablePath(ccam.TablePuBase),
		paths.GetCachePath(ccam.TablePuBase))
	if err != nil {
		fatal(logger, "Failed to load price table", err)
	}

	frame := ccam.FrameFromTable(table)
	if frame.Err != nil {
		fatal(logger, "Failed to build price frame", frame.Err)
	}
	logger.Info("Price table loaded", slog.Int("rows", frame.Nrow()))

	printer := exporter.NewConsolePrinter(os.Stdout)
	writer := exporter.NewCSVWriter(paths)

	describe, err := analysis.DescribeColumn(frame, "pu_base", "aap_cod")
	if err != nil {
		fatal(logger, "Failed to describe prices", err)
	}
	distinctGrilles, err := analysis.DistinctCount(frame, "grille_cod")
	if err != nil {
		fatal(logger, "Failed to count grids", err)
	}
	printer.PrintGlobalStats(describe, distinctGrilles)

	percentiles, err := analysis.Percentiles(frame, "pu_base")
	if err != nil {
		fatal(logger, "Failed to compute percentiles", err)
	}
	printer.PrintPercentiles(percentiles)

	grilleStats, err := analysis.GroupStats(frame, "grille_cod", "pu_base", "aap_cod")
	if err != nil {
		fatal(logger, "Failed to analyze grids", err)
	}
	printer.PrintGroupStats("Analyse par grille tarifaire", "Grille", grilleStats)
	if err := writer.ExportGrilleAnalysis(grilleStats); err != nil {
		fatal(logger, "Failed to export grid analysis", err)
	}

	topExpensive := analysis.TopNMaps(frame.Maps(), "pu_base", cfg.TopN)
	if err := writer.ExportTopExpensive(topExpensive, cfg.TopN); err != nil {
		fatal(logger, "Failed to export most expensive acts", err)
	}

	zeroRecords, zeroActes, err := analysis.ZeroPriceCount(frame)
	if err != nil {
		fatal(logger, "Failed to count zero prices", err)
	}
	fmt.Printf("Enregistrements à 0 €: %d (%d actes)\n", zeroRecords, zeroActes)

	variations, err := analysis.VariationsByActe(frame)
	if err != nil {
		fatal(logger, "Failed to analyze per-act variations", err)
	}
	if err := writer.ExportActeAnalysis(variations); err != nil {
		fatal(logger, "Failed to export per-act analysis", err)
	}

	topVariations := analysis.TopVariations(variations, cfg.TopN)
	printer.PrintTopVariations(topVariations)
	if err := writer.ExportTopVariations(topVariations); err != nil {
		fatal(logger, "Failed to export top variations", err)
	}

	years, err := analysis.TemporalStats(frame)
	if err != nil {
		fatal(logger, "Failed to analyze modification years", err)
	}
	printer.PrintTemporalStats(years)
	if err := writer.ExportTemporalAnalysis(years); err != nil {
		fatal(logger, "Failed to export temporal analysis", err)
	}

	if err := writer.ExportFullData(frame); err != nil {
		fatal(logger, "Failed to export full price table", err)
	}

	fmt.Printf("Rapports écrits dans %s\n", paths.ReportsDir)
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
