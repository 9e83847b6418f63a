package ccam

import (
	"ccamcli/internal/dbf"
)

// testDataset builds a small but complete CCAM dataset: two acts, one with
// prices under two grids across three dates, one priced under a single
// grid, plus a third act with no activity row (dropped by the inner joins).
func testDataset() *Dataset {
	tables := map[string]*dbf.Table{
		TableActe: {
			Name:    TableActe,
			Columns: []string{"cod_acte", "nom_court", "nom_long", "menu_cod"},
			Rows: [][]string{
				{"100", "RADIO THORAX", "Radiographie du thorax", "2"},
				{"200", "ECHO ABDO", "Echographie de l'abdomen", "1"},
				{"300", "ACTE ORPHELIN", "Acte sans activite", "2"},
			},
		},
		TableActeIvite: {
			Name:    TableActeIvite,
			Columns: []string{"cod_aa", "acte_cod", "activ_cod"},
			Rows: [][]string{
				{"1000", "100", "1"},
				{"2000", "200", "1"},
				{"2001", "200", "4"},
			},
		},
		TableActeIvitePhase: {
			Name:    TableActeIvitePhase,
			Columns: []string{"cod_aap", "aa_cod", "phase_cod"},
			Rows: [][]string{
				{"10000", "1000", "0"},
				{"20000", "2000", "0"},
				{"20010", "2001", "1"},
			},
		},
		TablePuBase: {
			Name:    TablePuBase,
			Columns: []string{"aap_cod", "grille_cod", "pu_base", "apdt_modif"},
			Rows: [][]string{
				{"10000", "3", "10", "2020-01-01"},
				{"10000", "3", "11.5", "2021-06-15"},
				{"10000", "3", "12", "2022-01-01"},
				{"10000", "5", "20", "2020-01-01"},
				{"20000", "3", "50", "2019-03-01"},
				{"20010", "3", "7", "2020-01-01"},
				{"10000", "99", "999", "2020-01-01"},
			},
		},
		TableMenu: {
			Name:    TableMenu,
			Columns: []string{"cod_menu", "libelle", "cod_pere"},
			Rows: [][]string{
				{"1", "IMAGERIE", "0"},
				{"2", "RADIOGRAPHIE", "1"},
			},
		},
		TableActivite: {
			Name:    TableActivite,
			Columns: []string{"cod_activ", "libelle"},
			Rows: [][]string{
				{"1", "Activite principale"},
				{"4", "Anesthesie"},
			},
		},
		TableGrille: {
			Name:    TableGrille,
			Columns: []string{"cod_grille", "libelle"},
			Rows: [][]string{
				{"3", "Secteur 1"},
				{"5", "Secteur 2"},
				{"99", "Grille inconnue"},
			},
		},
	}

	return &Dataset{Tables: tables}
}
