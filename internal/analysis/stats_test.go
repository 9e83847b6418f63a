package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ccamcli/internal/errors"
)

func TestDescribeColumn(t *testing.T) {
	d, err := DescribeColumn(mergedFrame(), "pu_base", "cod_acte")
	require.NoError(t, err)

	assert.Equal(t, 5, d.Count)
	assert.Equal(t, 2, d.Distinct)
	assert.InDelta(t, 20.7, d.Mean, 1e-9)
	assert.Equal(t, 12.0, d.Median)
	assert.Equal(t, 10.0, d.Min)
	assert.Equal(t, 50.0, d.Max)
	assert.Greater(t, d.Std, 0.0)
}

func TestDescribeColumn_MissingColumn(t *testing.T) {
	_, err := DescribeColumn(mergedFrame(), "prix", "cod_acte")
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
}

func TestPercentiles(t *testing.T) {
	pcts, err := Percentiles(mergedFrame(), "pu_base")
	require.NoError(t, err)
	require.Len(t, pcts, len(ReportPercentiles))

	// Values never decrease as the percentile grows and stay inside the
	// observed range.
	for i, p := range pcts {
		assert.Equal(t, ReportPercentiles[i], p.Percent)
		assert.GreaterOrEqual(t, p.Value, 10.0)
		assert.LessOrEqual(t, p.Value, 50.0)
		if i > 0 {
			assert.GreaterOrEqual(t, p.Value, pcts[i-1].Value)
		}
	}
}

func TestGroupStats(t *testing.T) {
	stats, err := GroupStats(mergedFrame(), "grille_cod", "pu_base", "cod_acte")
	require.NoError(t, err)
	require.Len(t, stats, 2)

	grid3 := stats[0]
	assert.Equal(t, "3", grid3.Key)
	assert.Equal(t, 4, grid3.Count)
	assert.Equal(t, 2, grid3.Distinct)
	assert.InDelta(t, 20.875, grid3.Mean, 1e-9)
	assert.Equal(t, 10.0, grid3.Min)
	assert.Equal(t, 50.0, grid3.Max)

	grid5 := stats[1]
	assert.Equal(t, "5", grid5.Key)
	assert.Equal(t, 1, grid5.Count)
	// A single observation has no dispersion.
	assert.Equal(t, 0.0, grid5.Std)
}

func TestGroupStats_NumericKeyOrder(t *testing.T) {
	stats, err := GroupStats(mergedFrame(), "cod_acte", "pu_base", "grille_cod")
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "100", stats[0].Key)
	assert.Equal(t, "200", stats[1].Key)
}

func TestTopNMaps(t *testing.T) {
	rows := []map[string]interface{}{
		{"name": "a", "value": 1.0},
		{"name": "b", "value": 3.0},
		{"name": "c", "value": 3.0},
		{"name": "d", "value": 2.0},
	}

	top := TopNMaps(rows, "value", 3)
	require.Len(t, top, 3)
	// b and c tie at 3; b entered first and stays first.
	assert.Equal(t, "b", top[0]["name"])
	assert.Equal(t, "c", top[1]["name"])
	assert.Equal(t, "d", top[2]["name"])

	assert.Len(t, TopNMaps(rows, "value", 10), 4)
}
