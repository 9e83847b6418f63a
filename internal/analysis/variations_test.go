package analysis

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ccamcli/internal/errors"
)

// priceFrame mirrors the shape of the raw tariff table.
func priceFrame() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{
		{"aap_cod", "grille_cod", "phase_cod", "pu_base", "apdt_modif"},
		{"11", "3", "0", "10", "2020-01-01"},
		{"11", "3", "0", "12", "2022-01-01"},
		{"11", "5", "0", "20", "2021-01-01"},
		{"15", "3", "0", "50", "2020-05-01"},
	})
}

func TestVariationsByActe(t *testing.T) {
	variations, err := VariationsByActe(priceFrame())
	require.NoError(t, err)
	require.Len(t, variations, 2)

	acte11 := variations[0]
	assert.Equal(t, 11, acte11.AapCod)
	assert.Equal(t, 3, acte11.NbPrix)
	assert.Equal(t, 14.0, acte11.PrixMoyen)
	assert.Equal(t, 10.0, acte11.PrixMin)
	assert.Equal(t, 20.0, acte11.PrixMax)
	assert.Equal(t, 2, acte11.NbGrilles)
	assert.Equal(t, 10.0, acte11.Variation)
	assert.Equal(t, 100.0, acte11.VariationPct)

	acte15 := variations[1]
	assert.Equal(t, 15, acte15.AapCod)
	assert.Equal(t, 1, acte15.NbPrix)
	assert.Equal(t, 0.0, acte15.PrixStd)
	assert.Equal(t, 0.0, acte15.Variation)
	assert.Equal(t, 0.0, acte15.VariationPct)
}

func TestVariationsByActe_ZeroMinPrice(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"aap_cod", "grille_cod", "pu_base"},
		{"7", "3", "0"},
		{"7", "3", "5"},
	})
	require.NoError(t, df.Err)

	variations, err := VariationsByActe(df)
	require.NoError(t, err)
	require.Len(t, variations, 1)

	// A spread starting at zero has no meaningful relative variation.
	assert.Equal(t, 5.0, variations[0].Variation)
	assert.Equal(t, 0.0, variations[0].VariationPct)
}

func TestVariationsByActe_MissingColumn(t *testing.T) {
	df := priceFrame().Drop("pu_base")
	require.NoError(t, df.Err)

	_, err := VariationsByActe(df)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
}

func TestTopVariations(t *testing.T) {
	variations, err := VariationsByActe(priceFrame())
	require.NoError(t, err)

	top := TopVariations(variations, 1)
	require.Len(t, top, 1)
	assert.Equal(t, 11, top[0].AapCod)

	all := TopVariations(variations, 10)
	assert.Len(t, all, 2)
}

func TestZeroPriceCount(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"aap_cod", "pu_base"},
		{"7", "0"},
		{"7", "0"},
		{"8", "0"},
		{"9", "12.5"},
	})
	require.NoError(t, df.Err)

	records, actes, err := ZeroPriceCount(df)
	require.NoError(t, err)
	assert.Equal(t, 3, records)
	assert.Equal(t, 2, actes)
}

func TestTemporalStats(t *testing.T) {
	years, err := TemporalStats(priceFrame())
	require.NoError(t, err)
	require.Len(t, years, 3)

	assert.Equal(t, "2020", years[0].Year)
	assert.Equal(t, 2, years[0].NbTarifs)
	assert.Equal(t, 30.0, years[0].PrixMoyen)
	assert.Equal(t, 30.0, years[0].PrixMedian)

	assert.Equal(t, "2021", years[1].Year)
	assert.Equal(t, 1, years[1].NbTarifs)
	assert.Equal(t, 20.0, years[1].PrixMoyen)

	assert.Equal(t, "2022", years[2].Year)
	assert.Equal(t, 12.0, years[2].PrixMedian)
}

func TestTemporalStats_MissingColumn(t *testing.T) {
	df := priceFrame().Drop("apdt_modif")
	require.NoError(t, df.Err)

	_, err := TemporalStats(df)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeSchema))
}
