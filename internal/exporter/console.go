package exporter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"ccamcli/internal/analysis"
)

// ConsolePrinter renders analysis results as text tables for the operator.
type ConsolePrinter struct {
	out io.Writer
}

// NewConsolePrinter creates a printer writing to the given destination.
func NewConsolePrinter(out io.Writer) *ConsolePrinter {
	return &ConsolePrinter{out: out}
}

// PrintGlobalStats renders the whole-table price summary.
func (p *ConsolePrinter) PrintGlobalStats(d analysis.Describe, distinctGrilles int) {
	fmt.Fprintln(p.out, "Statistiques globales")

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Indicateur", "Valeur"})
	table.Append([]string{"Enregistrements", formatInt(d.Count)})
	table.Append([]string{"Actes uniques", formatInt(d.Distinct)})
	table.Append([]string{"Grilles tarifaires", formatInt(distinctGrilles)})
	table.Append([]string{"Prix moyen (€)", formatFloat(d.Mean)})
	table.Append([]string{"Prix médian (€)", formatFloat(d.Median)})
	table.Append([]string{"Prix min (€)", formatFloat(d.Min)})
	table.Append([]string{"Prix max (€)", formatFloat(d.Max)})
	table.Append([]string{"Écart-type (€)", formatFloat(d.Std)})
	table.Render()
}

// PrintPercentiles renders the price distribution points.
func (p *ConsolePrinter) PrintPercentiles(percentiles []analysis.Percentile) {
	fmt.Fprintln(p.out, "Distribution des prix")

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Percentile", "Prix (€)"})
	for _, pct := range percentiles {
		table.Append([]string{fmt.Sprintf("%d%%", pct.Percent), formatFloat(pct.Value)})
	}
	table.Render()
}

// PrintGroupStats renders per-group statistics under a title.
func (p *ConsolePrinter) PrintGroupStats(title, keyName string, stats []analysis.GroupStat) {
	fmt.Fprintln(p.out, title)

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{keyName, "Nb", "Moyen", "Médian", "Min", "Max", "Écart-type", "Actes"})
	for _, s := range stats {
		table.Append([]string{
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
	table.Render()
}

// PrintTopVariations renders the acts with the widest price spread.
func (p *ConsolePrinter) PrintTopVariations(variations []analysis.ActeVariation) {
	fmt.Fprintln(p.out, "Plus grandes variations de prix entre grilles")

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Acte", "Prix min", "Prix max", "Variation", "Grilles"})
	for _, v := range variations {
		table.Append([]string{
			formatInt(v.AapCod),
			formatFloat(v.PrixMin),
			formatFloat(v.PrixMax),
			formatFloat(v.Variation),
			formatInt(v.NbGrilles),
		})
	}
	table.Render()
}

// PrintTemporalStats renders the by-year modification counts.
func (p *ConsolePrinter) PrintTemporalStats(years []analysis.YearStat) {
	fmt.Fprintln(p.out, "Modifications par année")

	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Année", "Nb", "Prix moyen", "Prix médian"})
	for _, y := range years {
		table.Append([]string{
			y.Year,
			formatInt(y.NbTarifs),
			formatFloat(y.PrixMoyen),
			formatFloat(y.PrixMedian),
		})
	}
	table.Render()
}
