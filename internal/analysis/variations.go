package analysis

import (
	"sort"

	"github.com/go-gota/gota/dataframe"

	apperrors "ccamcli/internal/errors"
)

// ActeVariation summarizes the price dispersion of one act across all of
// its tariff records: how many prices were recorded, over how many grids,
// and the spread between the cheapest and the most expensive one.
type ActeVariation struct {
	AapCod       int
	NbPrix       int
	PrixMoyen    float64
	PrixMin      float64
	PrixMax      float64
	PrixStd      float64
	NbGrilles    int
	Variation    float64
	VariationPct float64
}

// YearStat is the tariff activity of one calendar year.
type YearStat struct {
	Year       string
	NbTarifs   int
	PrixMoyen  float64
	PrixMedian float64
}

// VariationsByActe computes the per-act price dispersion over the raw
// price table, sorted by act code. The relative variation is zero when the
// minimum price is zero.
func VariationsByActe(df dataframe.DataFrame) ([]ActeVariation, error) {
	for _, col := range []string{"aap_cod", "pu_base", "grille_cod"} {
		if !hasColumn(df, col) {
			return nil, apperrors.NewSchemaError("price table", col)
		}
	}

	type acc struct {
		prices  []float64
		grilles map[int]bool
	}

	var order []int
	grouped := make(map[int]*acc)
	for _, row := range df.Maps() {
		code := toInt(row["aap_cod"])
		a, seen := grouped[code]
		if !seen {
			a = &acc{grilles: make(map[int]bool)}
			grouped[code] = a
			order = append(order, code)
		}
		a.prices = append(a.prices, toFloat(row["pu_base"]))
		a.grilles[toInt(row["grille_cod"])] = true
	}
	sort.Ints(order)

	result := make([]ActeVariation, 0, len(order))
	for _, code := range order {
		a := grouped[code]
		min := minOf(a.prices)
		max := maxOf(a.prices)

		variationPct := 0.0
		if min != 0 {
			variationPct = (max - min) / min * 100
		}

		result = append(result, ActeVariation{
			AapCod:       code,
			NbPrix:       len(a.prices),
			PrixMoyen:    round2(meanOf(a.prices)),
			PrixMin:      min,
			PrixMax:      max,
			PrixStd:      round2(stdOf(a.prices)),
			NbGrilles:    len(a.grilles),
			Variation:    round2(max - min),
			VariationPct: round2(variationPct),
		})
	}

	return result, nil
}

// ZeroPriceCount counts the tariff records priced at exactly zero and the
// distinct acts they belong to.
func ZeroPriceCount(df dataframe.DataFrame) (records int, actes int, err error) {
	for _, col := range []string{"aap_cod", "pu_base"} {
		if !hasColumn(df, col) {
			return 0, 0, apperrors.NewSchemaError("price table", col)
		}
	}

	seen := make(map[string]bool)
	for _, row := range df.Maps() {
		if toFloat(row["pu_base"]) != 0 {
			continue
		}
		records++
		seen[toString(row["aap_cod"])] = true
	}

	return records, len(seen), nil
}

// TopVariations returns the n acts with the widest price spread across
// grids. Ties keep the stable order of the input.
func TopVariations(variations []ActeVariation, n int) []ActeVariation {
	sorted := append([]ActeVariation(nil), variations...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Variation > sorted[j].Variation
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// TemporalStats buckets the tariff records by the year of their
// modification date, sorted chronologically. Records without a parsable
// date are counted under an empty year.
func TemporalStats(df dataframe.DataFrame) ([]YearStat, error) {
	for _, col := range []string{"apdt_modif", "pu_base"} {
		if !hasColumn(df, col) {
			return nil, apperrors.NewSchemaError("price table", col)
		}
	}

	var order []string
	grouped := make(map[string][]float64)
	for _, row := range df.Maps() {
		date := toString(row["apdt_modif"])
		year := ""
		if len(date) >= 4 {
			year = date[:4]
		}
		if _, seen := grouped[year]; !seen {
			order = append(order, year)
		}
		grouped[year] = append(grouped[year], toFloat(row["pu_base"]))
	}
	sort.Strings(order)

	result := make([]YearStat, 0, len(order))
	for _, year := range order {
		prices := grouped[year]
		result = append(result, YearStat{
			Year:       year,
			NbTarifs:   len(prices),
			PrixMoyen:  round2(meanOf(prices)),
			PrixMedian: round2(medianOf(prices)),
		})
	}

	return result, nil
}
