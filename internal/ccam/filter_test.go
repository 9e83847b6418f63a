package ccam

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ccamcli/internal/errors"
)

func TestFilters_Apply(t *testing.T) {
	ds := testDataset()

	merged, err := ds.Join(TableActeIvite, EvolutionPipeline())
	require.NoError(t, err)

	filtered, err := DefaultFilters().Apply(merged)
	require.NoError(t, err)

	// Out of seven joined rows: one is on grid 99, one on phase 1.
	assert.Equal(t, 5, filtered.Nrow())

	for _, grille := range filtered.Col("grille_cod").Records() {
		assert.Contains(t, []string{"3", "4", "5", "7", "17", "18"}, grille)
	}
	for _, phase := range filtered.Col("phase_cod").Records() {
		assert.Equal(t, "0", phase)
	}
}

func TestFilters_Idempotent(t *testing.T) {
	ds := testDataset()

	merged, err := ds.Join(TableActeIvite, EvolutionPipeline())
	require.NoError(t, err)

	filters := DefaultFilters()
	once, err := filters.Apply(merged)
	require.NoError(t, err)

	twice, err := filters.Apply(once)
	require.NoError(t, err)

	assert.Equal(t, once.Nrow(), twice.Nrow())
	assert.Equal(t, once.Records(), twice.Records())
}

func TestFilters_MissingColumn(t *testing.T) {
	ds := testDataset()

	// The bare price table has no activ_cod/phase_cod columns.
	frame, err := ds.Frame(TablePuBase)
	require.NoError(t, err)

	_, err = DefaultFilters().Apply(frame)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
}
