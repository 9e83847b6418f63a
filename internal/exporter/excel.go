package exporter

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"ccamcli/internal/analysis"
	apperrors "ccamcli/internal/errors"
)

const (
	sheetEvolution   = "Evolution_prix"
	sheetGrilleStats = "Stats_par_grille"
	sheetTop         = "Top_evolutions"
)

// MenuWorkbook builds the per-menu price evolution XLSX files.
type MenuWorkbook struct {
	outputDir  string
	topN       int
	maxNameLen int
}

// NewMenuWorkbook creates a workbook builder writing into outputDir.
func NewMenuWorkbook(outputDir string, topN, maxNameLen int) *MenuWorkbook {
	return &MenuWorkbook{outputDir: outputDir, topN: topN, maxNameLen: maxNameLen}
}

// Filename derives the workbook file name from the menu code and label:
// `<code>_<sanitized label>.xlsx`. An empty label means the menu code is
// unknown and yields the `Menu_<code>` placeholder.
func (mw *MenuWorkbook) Filename(menuCod int, label string) string {
	if label == "" {
		label = fmt.Sprintf("Menu_%d", menuCod)
	} else {
		label = SanitizeFilename(label, mw.maxNameLen)
	}
	return fmt.Sprintf("%d_%s.xlsx", menuCod, label)
}

// Export writes one workbook for a menu group: the raw evolution rows, the
// by-grid summary and the top evolutions, each on its own sheet. Returns
// the file name written.
func (mw *MenuWorkbook) Export(menuCod int, label string, rows []analysis.EvolutionRow) (string, error) {
	filename := mw.Filename(menuCod, label)
	fullPath := filepath.Join(mw.outputDir, filename)

	slog.Info("Writing menu workbook",
		slog.Int("menu_cod", menuCod),
		slog.String("file", filename),
		slog.Int("rows", len(rows)))

	f := excelize.NewFile()
	defer f.Close()

	if err := writeEvolutionSheet(f, rows); err != nil {
		return "", err
	}
	if err := writeGrilleStatsSheet(f, analysis.StatsByGrille(rows)); err != nil {
		return "", err
	}
	if err := writeTopSheet(f, analysis.TopEvolutions(rows, mw.topN)); err != nil {
		return "", err
	}

	// Drop the implicit default sheet so only the three report sheets remain.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := f.SaveAs(fullPath); err != nil {
		return "", apperrors.NewStorageError("save workbook", err).WithContext("path", fullPath)
	}

	return filename, nil
}

func writeEvolutionSheet(f *excelize.File, rows []analysis.EvolutionRow) error {
	header := []interface{}{"cod_acte", "nom_court", "nom_long", "activite",
		"activite_libelle", "grille_cod", "grille_libelle",
		"date_premiere_modif", "prix_initial", "date_derniere_modif",
		"prix_actuel", "evolution_euros", "evolution_pct", "nb_modifications"}

	records := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		records = append(records, []interface{}{
			row.CodActe, row.NomCourt, row.NomLong, row.Activite,
			row.ActiviteLibelle, row.GrilleCod, row.GrilleLibelle,
			row.DatePremiereModif, row.PrixInitial, row.DateDerniereModif,
			row.PrixActuel, row.EvolutionEuros, row.EvolutionPct,
			row.NbModifications,
		})
	}

	return writeSheet(f, sheetEvolution, header, records)
}

func writeGrilleStatsSheet(f *excelize.File, stats []analysis.GrilleStats) error {
	header := []interface{}{"grille_cod", "grille_libelle", "Nb_actes",
		"Prix_initial_moyen", "Prix_actuel_moyen",
		"Evolution_€_moyenne", "Evolution_%_moyenne"}

	records := make([][]interface{}, 0, len(stats))
	for _, s := range stats {
		records = append(records, []interface{}{
			s.GrilleCod, s.GrilleLibelle, s.NbActes,
			s.PrixInitialMoyen, s.PrixActuelMoyen,
			s.EvolutionEurosMoyenne, s.EvolutionPctMoyenne,
		})
	}

	return writeSheet(f, sheetGrilleStats, header, records)
}

func writeTopSheet(f *excelize.File, rows []analysis.EvolutionRow) error {
	header := []interface{}{"cod_acte", "nom_court", "grille_cod",
		"prix_initial", "prix_actuel", "evolution_euros", "evolution_pct"}

	records := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		records = append(records, []interface{}{
			row.CodActe, row.NomCourt, row.GrilleCod,
			row.PrixInitial, row.PrixActuel,
			row.EvolutionEuros, row.EvolutionPct,
		})
	}

	return writeSheet(f, sheetTop, header, records)
}

func writeSheet(f *excelize.File, name string, header []interface{}, records [][]interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header of %s: %w", name, err)
	}
	for i, record := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(name, cell, &record); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", i+2, name, err)
		}
	}

	return nil
}
