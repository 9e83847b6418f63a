// Package ccam models the CCAM relational tables and the fixed
// join-filter pipeline that produces the merged pricing relation.
package ccam

import (
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"ccamcli/internal/config"
	"ccamcli/internal/dbf"
)

// Table identifiers, the data provider's fixed naming convention.
const (
	TableActe           = "R_ACTE"
	TableActeIvite      = "R_ACTE_IVITE"
	TableActeIvitePhase = "R_ACTE_IVITE_PHASE"
	TablePuBase         = "R_PU_BASE"
	TableMenu           = "R_MENU"
	TableActivite       = "R_ACTIVITE"
	TableGrille         = "R_TB23"
)

// RequiredTables lists every table the evolution pipeline joins.
var RequiredTables = []string{
	TableActe,
	TableActeIvite,
	TableActeIvitePhase,
	TablePuBase,
	TableMenu,
	TableActivite,
	TableGrille,
}

// Dataset holds the parsed tables for one run. Tables are loaded once and
// never mutated; every stage derives new frames from them.
type Dataset struct {
	Tables map[string]*dbf.Table
}

// LoadDataset loads every required table, preferring the parsed-table cache
// and falling back to the extracted DBF files. A missing required table
// aborts the run.
func LoadDataset(paths *config.Paths) (*Dataset, error) {
	ds := &Dataset{Tables: make(map[string]*dbf.Table, len(RequiredTables))}

	for _, name := range RequiredTables {
		table, err := dbf.LoadTable(name, paths.GetTablePath(name), paths.GetCachePath(name))
		if err != nil {
			return nil, fmt.Errorf("loading table %s: %w", name, err)
		}

		slog.Info("Table loaded",
			slog.String("table", name),
			slog.Int("rows", table.NumRows()))
		ds.Tables[name] = table
	}

	return ds, nil
}

// Table returns a loaded table by identifier.
func (d *Dataset) Table(name string) (*dbf.Table, bool) {
	t, ok := d.Tables[name]
	return t, ok
}

// Frame converts a loaded table into a dataframe with type detection.
// Empty tables still produce a frame with the declared columns so joins
// downstream do not fail on a missing column.
func (d *Dataset) Frame(name string) (dataframe.DataFrame, error) {
	table, ok := d.Tables[name]
	if !ok {
		return dataframe.DataFrame{}, fmt.Errorf("table %s is not loaded", name)
	}
	return FrameFromTable(table), nil
}

// FrameFromTable builds a dataframe from a parsed table.
func FrameFromTable(table *dbf.Table) dataframe.DataFrame {
	if table.NumRows() == 0 {
		ss := make([]series.Series, len(table.Columns))
		for i, col := range table.Columns {
			ss[i] = series.New([]string{}, series.String, col)
		}
		return dataframe.New(ss...)
	}

	return dataframe.LoadRecords(table.Records())
}
