package exporter

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"ccamcli/internal/analysis"
)

// Typed report writers for the analyzer. Each one renders a slice of
// analysis results as a CSV report under the reports directory, floats
// with two decimals throughout.

// ExportGrilleAnalysis writes the per-grid price statistics.
func (w *CSVWriter) ExportGrilleAnalysis(stats []analysis.GroupStat) error {
	headers := []string{"grille_cod", "Nb_entrées", "Prix_moyen", "Prix_médian",
		"Prix_min", "Prix_max", "Écart_type", "Nb_actes_uniques"}

	records := make([][]string, 0, len(stats))
	for _, s := range stats {
		records = append(records, []string{
			s.Key,
			formatInt(s.Count),
			formatFloat(s.Mean),
			formatFloat(s.Median),
			formatFloat(s.Min),
			formatFloat(s.Max),
			formatFloat(s.Std),
			formatInt(s.Distinct),
		})
	}

	return w.WriteSimpleCSV("analyse_par_grille.csv", headers, records)
}

// ExportTopExpensive writes the n most expensive tariff records.
func (w *CSVWriter) ExportTopExpensive(rows []map[string]interface{}, n int) error {
	headers := []string{"aap_cod", "grille_cod", "pu_base", "apdt_modif"}

	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, []string{
			renderCell(row["aap_cod"]),
			renderCell(row["grille_cod"]),
			renderCell(row["pu_base"]),
			renderCell(row["apdt_modif"]),
		})
	}

	return w.WriteSimpleCSV(fmt.Sprintf("top_%d_actes_plus_chers.csv", n), headers, records)
}

func acteVariationRecords(variations []analysis.ActeVariation) [][]string {
	records := make([][]string, 0, len(variations))
	for _, v := range variations {
		records = append(records, []string{
			formatInt(v.AapCod),
			formatInt(v.NbPrix),
			formatFloat(v.PrixMoyen),
			formatFloat(v.PrixMin),
			formatFloat(v.PrixMax),
			formatFloat(v.PrixStd),
			formatInt(v.NbGrilles),
			formatFloat(v.Variation),
			formatFloat(v.VariationPct),
		})
	}
	return records
}

var acteVariationHeaders = []string{"aap_cod", "Nb_entrées", "Prix_moyen",
	"Prix_min", "Prix_max", "Écart_type", "Nb_grilles_uniques",
	"Variation_prix", "Variation_%"}

// ExportActeAnalysis writes the per-act price variation across grids.
func (w *CSVWriter) ExportActeAnalysis(variations []analysis.ActeVariation) error {
	return w.WriteSimpleCSV("analyse_par_acte.csv", acteVariationHeaders,
		acteVariationRecords(variations))
}

// ExportTopVariations writes the acts with the widest price spread.
func (w *CSVWriter) ExportTopVariations(variations []analysis.ActeVariation) error {
	return w.WriteSimpleCSV("top_variations_prix.csv", acteVariationHeaders,
		acteVariationRecords(variations))
}

// ExportTemporalAnalysis writes the by-year modification statistics.
func (w *CSVWriter) ExportTemporalAnalysis(years []analysis.YearStat) error {
	headers := []string{"annee_modif", "Nb_modifications", "Prix_moyen", "Prix_médian"}

	records := make([][]string, 0, len(years))
	for _, y := range years {
		records = append(records, []string{
			y.Year,
			formatInt(y.NbTarifs),
			formatFloat(y.PrixMoyen),
			formatFloat(y.PrixMedian),
		})
	}

	return w.WriteSimpleCSV("analyse_temporelle.csv", headers, records)
}

// ExportFullData dumps the whole price table as one CSV.
func (w *CSVWriter) ExportFullData(df dataframe.DataFrame) error {
	records := df.Records()
	if len(records) == 0 {
		return w.WriteSimpleCSV("pu_base_complete.csv", nil, nil)
	}
	return w.WriteSimpleCSV("pu_base_complete.csv", records[0], records[1:])
}

// renderCell renders a dataframe cell for CSV output, keeping the two
// decimal convention for floats.
func renderCell(v interface{}) string {
	switch val := v.(type) {
	case float64:
		return formatFloat(val)
	case int:
		return formatInt(val)
	case string:
		return val
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}
