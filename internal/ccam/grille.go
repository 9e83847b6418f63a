package ccam

import (
	"strconv"

	"ccamcli/internal/dbf"
	apperrors "ccamcli/internal/errors"
)

// GrilleLabels maps pricing-grid codes to their labels from the grid
// reference table. Rows with an unparsable code are skipped.
func GrilleLabels(table *dbf.Table) (map[int]string, error) {
	codIdx := columnIndex(table, "cod_grille")
	if codIdx < 0 {
		return nil, apperrors.NewSchemaError(TableGrille, "cod_grille")
	}
	libIdx := columnIndex(table, "libelle")
	if libIdx < 0 {
		return nil, apperrors.NewSchemaError(TableGrille, "libelle")
	}

	labels := make(map[int]string, len(table.Rows))
	for _, row := range table.Rows {
		code, err := strconv.Atoi(row[codIdx])
		if err != nil {
			continue
		}
		labels[code] = row[libIdx]
	}

	return labels, nil
}
