package ccam

import (
	"log/slog"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	apperrors "ccamcli/internal/errors"
)

// Filters are the fixed categorical allow-lists restricting the merged
// relation. All dimensions must match (logical AND); the order of
// application only changes the intermediate row counts logged.
type Filters struct {
	Grilles   []int // pricing-grid codes
	Activites []int // activity codes
	Phase     int   // exact phase code
}

// DefaultFilters returns the analysis criteria: public and private sector
// grids, the four care activities, main treatment phase.
func DefaultFilters() Filters {
	return Filters{
		Grilles:   []int{3, 4, 5, 7, 17, 18},
		Activites: []int{1, 2, 3, 4},
		Phase:     0,
	}
}

// Apply restricts the relation to rows matching every filter dimension.
// A missing filter column is a SCHEMA error.
func (f Filters) Apply(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	for _, col := range []string{"grille_cod", "activ_cod", "phase_cod"} {
		if !hasColumn(df, col) {
			return dataframe.DataFrame{}, apperrors.NewSchemaError("merged relation", col)
		}
	}

	slog.Info("Applying filters", slog.Int("rows_before", df.Nrow()))

	df = df.Filter(dataframe.F{Colname: "grille_cod", Comparator: series.In, Comparando: f.Grilles})
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	slog.Info("Grid filter applied", slog.Int("rows", df.Nrow()))

	df = df.Filter(dataframe.F{Colname: "activ_cod", Comparator: series.In, Comparando: f.Activites})
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	slog.Info("Activity filter applied", slog.Int("rows", df.Nrow()))

	df = df.Filter(dataframe.F{Colname: "phase_cod", Comparator: series.Eq, Comparando: f.Phase})
	if df.Err != nil {
		return dataframe.DataFrame{}, df.Err
	}
	slog.Info("Phase filter applied", slog.Int("rows", df.Nrow()))

	return df, nil
}
