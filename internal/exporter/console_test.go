package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"ccamcli/internal/analysis"
)

func TestConsolePrinter_GlobalStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePrinter(&buf)

	p.PrintGlobalStats(analysis.Describe{
		Count: 5, Mean: 20.7, Median: 12, Min: 10, Max: 50, Std: 17.1, Distinct: 2,
	}, 3)

	out := buf.String()
	assert.Contains(t, out, "Statistiques globales")
	assert.Contains(t, out, "20.70")
	assert.Contains(t, out, "Actes uniques")
}

func TestConsolePrinter_Percentiles(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePrinter(&buf)

	p.PrintPercentiles([]analysis.Percentile{
		{Percent: 10, Value: 10},
		{Percent: 99, Value: 49.5},
	})

	out := buf.String()
	assert.Contains(t, out, "10%")
	assert.Contains(t, out, "99%")
	assert.Contains(t, out, "49.50")
}

func TestConsolePrinter_GroupStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewConsolePrinter(&buf)

	p.PrintGroupStats("Analyse par grille tarifaire", "Grille", []analysis.GroupStat{
		{Key: "3", Describe: analysis.Describe{Count: 4, Mean: 20.875}},
	})

	out := buf.String()
	assert.Contains(t, out, "Analyse par grille tarifaire")
	assert.Contains(t, out, "20.88")
}
