package ccam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccamcli/internal/dbf"
	apperrors "ccamcli/internal/errors"
)

func TestGrilleLabels(t *testing.T) {
	labels, err := GrilleLabels(&dbf.Table{
		Name:    TableGrille,
		Columns: []string{"cod_grille", "libelle"},
		Rows: [][]string{
			{"3", "Secteur 1"},
			{"5", "Secteur 2"},
			{"broken", "IGNORÉ"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, map[int]string{3: "Secteur 1", 5: "Secteur 2"}, labels)
}

func TestGrilleLabels_MissingColumn(t *testing.T) {
	_, err := GrilleLabels(&dbf.Table{
		Name:    TableGrille,
		Columns: []string{"cod_grille"},
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
}
