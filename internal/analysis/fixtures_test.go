package analysis

import (
	"github.com/go-gota/gota/dataframe"
)

// mergedFrame mirrors the shape of the merged, filtered relation: one row
// per tariff record, descriptive columns already joined in.
func mergedFrame() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{
		{"cod_acte", "nom_court", "nom_long", "activ_cod", "activite_libelle", "grille_cod", "grille_libelle", "phase_cod", "pu_base", "apdt_modif", "menu_cod", "aap_cod"},
		{"100", "RADIO THORAX", "Radiographie du thorax", "1", "Medecin", "3", "Secteur 1", "0", "10", "2020-01-01", "2", "11"},
		{"100", "RADIO THORAX", "Radiographie du thorax", "1", "Medecin", "3", "Secteur 1", "0", "11.5", "2021-06-15", "2", "12"},
		{"100", "RADIO THORAX", "Radiographie du thorax", "1", "Medecin", "3", "Secteur 1", "0", "12", "2022-01-01", "2", "13"},
		{"100", "RADIO THORAX", "Radiographie du thorax", "1", "Medecin", "5", "Secteur 2", "0", "20", "2021-01-01", "2", "14"},
		{"200", "SCANNER CRANE", "Scanner du crane", "2", "Chirurgien", "3", "Secteur 1", "0", "50", "2020-05-01", "1", "15"},
	})
}

func mergedGrilles() []int {
	return []int{3, 4, 5, 7, 17, 18}
}

func mergedGrilleLabels() map[int]string {
	return map[int]string{3: "Secteur 1", 5: "Secteur 2"}
}
