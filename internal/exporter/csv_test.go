package exporter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccamcli/internal/analysis"
	"ccamcli/internal/config"
)

func testWriter(t *testing.T) (*CSVWriter, *config.Paths) {
	t.Helper()
	paths := config.NewPaths(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())
	return NewCSVWriter(paths), paths
}

func TestWriteSimpleCSV(t *testing.T) {
	w, paths := testWriter(t)

	err := w.WriteSimpleCSV("report.csv", []string{"a", "b"}, [][]string{
		{"1", "2"},
		{"3", "4"},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(paths.GetReportPath("report.csv"))
	require.NoError(t, err)

	// UTF-8 BOM first, then header and records.
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, content[:3])
	assert.Equal(t, "a,b\n1,2\n3,4\n", string(content[3:]))
}

func TestWriteCSV_AbsolutePath(t *testing.T) {
	w, _ := testWriter(t)

	target := filepath.Join(t.TempDir(), "nested", "out.csv")
	err := w.WriteCSV(target, WriteOptions{Headers: []string{"x"}, Records: [][]string{{"1"}}})
	require.NoError(t, err)

	// The parent directory is created on demand.
	_, err = os.Stat(target)
	assert.NoError(t, err)
}

func TestExportGrilleAnalysis(t *testing.T) {
	w, paths := testWriter(t)

	err := w.ExportGrilleAnalysis([]analysis.GroupStat{
		{Key: "3", Describe: analysis.Describe{Count: 4, Mean: 20.875, Median: 11.75, Min: 10, Max: 50, Std: 19.5, Distinct: 2}},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(paths.GetReportPath("analyse_par_grille.csv"))
	require.NoError(t, err)

	text := string(content[3:])
	assert.Contains(t, text, "grille_cod,Nb_entrées,Prix_moyen")
	// Floats carry exactly two decimals.
	assert.Contains(t, text, "3,4,20.88,11.75,10.00,50.00,19.50,2")
}

func TestExportTemporalAnalysis(t *testing.T) {
	w, paths := testWriter(t)

	err := w.ExportTemporalAnalysis([]analysis.YearStat{
		{Year: "2020", NbTarifs: 2, PrixMoyen: 30, PrixMedian: 30},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(paths.GetReportPath("analyse_temporelle.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "2020,2,30.00,30.00")
}

func TestExportTopExpensive(t *testing.T) {
	w, paths := testWriter(t)

	err := w.ExportTopExpensive([]map[string]interface{}{
		{"aap_cod": 11, "grille_cod": 3, "pu_base": 50.0, "apdt_modif": "2020-05-01"},
	}, 20)
	require.NoError(t, err)

	content, err := os.ReadFile(paths.GetReportPath("top_20_actes_plus_chers.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "11,3,50.00,2020-05-01")
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "13.40", formatFloat(13.4))
	assert.Equal(t, "0.00", formatFloat(0))
	assert.Equal(t, "-2.50", formatFloat(-2.5))
}
