package analysis

import (
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	apperrors "ccamcli/internal/errors"
)

// EvolutionRow is the temporal price evolution of one act under one
// pricing grid: first and last recorded price, the absolute and relative
// change between them, and the number of recorded modifications.
type EvolutionRow struct {
	CodActe           int
	NomCourt          string
	NomLong           string
	Activite          int
	ActiviteLibelle   string
	GrilleCod         int
	GrilleLibelle     string
	DatePremiereModif string
	PrixInitial       float64
	DateDerniereModif string
	PrixActuel        float64
	EvolutionEuros    float64
	EvolutionPct      float64
	NbModifications   int
}

// GrilleStats is the by-grid summary of a set of evolution rows, rounded
// to two decimal places.
type GrilleStats struct {
	GrilleCod             int
	GrilleLibelle         string
	NbActes               int
	PrixInitialMoyen      float64
	PrixActuelMoyen       float64
	EvolutionEurosMoyenne float64
	EvolutionPctMoyenne   float64
}

// EvolutionsForMenu restricts the merged, filtered relation to one menu
// code and computes the per-(act, grid) evolutions. Returns an EMPTY_GROUP
// error when the menu yields no rows; callers log it and continue.
func EvolutionsForMenu(df dataframe.DataFrame, menuCod int, grilles []int, grilleLabels map[int]string) ([]EvolutionRow, error) {
	group := df.Filter(dataframe.F{Colname: "menu_cod", Comparator: series.Eq, Comparando: menuCod})
	if group.Err != nil {
		return nil, group.Err
	}
	if group.Nrow() == 0 {
		return nil, apperrors.NewEmptyGroupError("menu").WithContext("menu_cod", menuCod)
	}

	return ComputeEvolutions(group.Maps(), grilles, grilleLabels), nil
}

// ComputeEvolutions derives one evolution row per (act, grid) pair present
// in the input rows. For each pair the matching rows are ordered by
// modification date ascending; the first and last record give the initial
// and current price. The percentage evolution is defined as exactly zero
// when the initial price is zero.
func ComputeEvolutions(rows []map[string]interface{}, grilles []int, grilleLabels map[int]string) []EvolutionRow {
	// Group rows per act, keeping the order of first appearance.
	var order []int
	byActe := make(map[int][]map[string]interface{})
	for _, row := range rows {
		code := toInt(row["cod_acte"])
		if _, seen := byActe[code]; !seen {
			order = append(order, code)
		}
		byActe[code] = append(byActe[code], row)
	}

	var result []EvolutionRow
	for _, code := range order {
		acteRows := byActe[code]
		info := acteRows[0]

		for _, grille := range grilles {
			var serie []map[string]interface{}
			for _, row := range acteRows {
				if toInt(row["grille_cod"]) == grille {
					serie = append(serie, row)
				}
			}
			if len(serie) == 0 {
				continue
			}

			// Dates are canonical ISO strings; lexicographic order is
			// chronological. The sort is stable so same-date rows keep
			// their input order.
			sort.SliceStable(serie, func(i, j int) bool {
				return toString(serie[i]["apdt_modif"]) < toString(serie[j]["apdt_modif"])
			})

			first := serie[0]
			last := serie[len(serie)-1]
			prixInitial := toFloat(first["pu_base"])
			prixActuel := toFloat(last["pu_base"])

			evolutionPct := 0.0
			if prixInitial != 0 {
				evolutionPct = (prixActuel - prixInitial) / prixInitial * 100
			}

			result = append(result, EvolutionRow{
				CodActe:           code,
				NomCourt:          toString(info["nom_court"]),
				NomLong:           toString(info["nom_long"]),
				Activite:          toInt(info["activ_cod"]),
				ActiviteLibelle:   toString(info["activite_libelle"]),
				GrilleCod:         grille,
				GrilleLibelle:     grilleLabels[grille],
				DatePremiereModif: toString(first["apdt_modif"]),
				PrixInitial:       prixInitial,
				DateDerniereModif: toString(last["apdt_modif"]),
				PrixActuel:        prixActuel,
				EvolutionEuros:    prixActuel - prixInitial,
				EvolutionPct:      evolutionPct,
				NbModifications:   len(serie),
			})
		}
	}

	return result
}

// StatsByGrille aggregates evolution rows per grid: act count and mean
// initial/current price and evolution, rounded to two decimals. Output is
// sorted by grid code.
func StatsByGrille(rows []EvolutionRow) []GrilleStats {
	var order []int
	grouped := make(map[int][]EvolutionRow)
	for _, row := range rows {
		if _, seen := grouped[row.GrilleCod]; !seen {
			order = append(order, row.GrilleCod)
		}
		grouped[row.GrilleCod] = append(grouped[row.GrilleCod], row)
	}
	sort.Ints(order)

	var result []GrilleStats
	for _, grille := range order {
		group := grouped[grille]

		var initial, actuel, euros, pct []float64
		for _, row := range group {
			initial = append(initial, row.PrixInitial)
			actuel = append(actuel, row.PrixActuel)
			euros = append(euros, row.EvolutionEuros)
			pct = append(pct, row.EvolutionPct)
		}

		result = append(result, GrilleStats{
			GrilleCod:             grille,
			GrilleLibelle:         group[0].GrilleLibelle,
			NbActes:               len(group),
			PrixInitialMoyen:      round2(meanOf(initial)),
			PrixActuelMoyen:       round2(meanOf(actuel)),
			EvolutionEurosMoyenne: round2(meanOf(euros)),
			EvolutionPctMoyenne:   round2(meanOf(pct)),
		})
	}

	return result
}

// TopEvolutions returns the n evolution rows with the largest absolute
// price increase. Ties keep the stable order of the input.
func TopEvolutions(rows []EvolutionRow, n int) []EvolutionRow {
	sorted := append([]EvolutionRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EvolutionEuros > sorted[j].EvolutionEuros
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// MenuCodes lists the distinct menu codes of the relation in order of
// first appearance.
func MenuCodes(df dataframe.DataFrame) ([]int, error) {
	if !hasColumn(df, "menu_cod") {
		return nil, apperrors.NewSchemaError("merged relation", "menu_cod")
	}

	seen := make(map[int]bool)
	var codes []int
	for _, rec := range df.Col("menu_cod").Records() {
		code := toInt(rec)
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	return codes, nil
}
