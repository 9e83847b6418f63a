package ccam

import (
	"fmt"
	"log/slog"

	"github.com/go-gota/gota/dataframe"

	apperrors "ccamcli/internal/errors"
)

// JoinKind selects the relational join semantics of a pipeline step.
type JoinKind string

const (
	// InnerJoin keeps only rows with matching keys on both sides.
	InnerJoin JoinKind = "inner"
	// LeftJoin keeps every left row; unmatched right columns are missing.
	LeftJoin JoinKind = "left"
)

// JoinStep describes one two-table join. The dataframe library joins on a
// shared column name, so the right key is renamed to the left key's name
// and the output carries the key once, under the canonical name. Renames
// are applied to the right table before joining so no two joined tables
// ever share a label.
type JoinStep struct {
	Table    string            // right-side table identifier
	LeftKey  string            // key column in the accumulated relation
	RightKey string            // key column in the right table
	As       string            // optional output name for the coalesced key
	Kind     JoinKind
	Columns  []string          // optional projection of the right table
	Renames  map[string]string // old name -> new name, applied pre-join
}

// EvolutionPipeline is the fixed join sequence producing the merged
// pricing relation: activity rows enriched with act, phase, price, menu,
// activity and grid information.
func EvolutionPipeline() []JoinStep {
	return []JoinStep{
		{Table: TableActe, LeftKey: "acte_cod", RightKey: "cod_acte", As: "cod_acte", Kind: InnerJoin},
		{Table: TableActeIvitePhase, LeftKey: "cod_aa", RightKey: "aa_cod", Kind: InnerJoin},
		{Table: TablePuBase, LeftKey: "cod_aap", RightKey: "aap_cod", Kind: InnerJoin},
		{
			Table:    TableMenu,
			LeftKey:  "menu_cod",
			RightKey: "cod_menu",
			Kind:     LeftJoin,
			Columns:  []string{"cod_menu", "libelle", "cod_pere"},
			Renames:  map[string]string{"libelle": "menu_libelle"},
		},
		{
			Table:    TableActivite,
			LeftKey:  "activ_cod",
			RightKey: "cod_activ",
			Kind:     LeftJoin,
			Columns:  []string{"cod_activ", "libelle"},
			Renames:  map[string]string{"libelle": "activite_libelle"},
		},
		{
			Table:    TableGrille,
			LeftKey:  "grille_cod",
			RightKey: "cod_grille",
			Kind:     LeftJoin,
			Columns:  []string{"cod_grille", "libelle"},
			Renames:  map[string]string{"libelle": "grille_libelle"},
		},
	}
}

// Join runs the pipeline steps against the dataset, starting from the base
// table, and returns the merged relation. Each step logs the resulting row
// count; a key column absent on either side is a SCHEMA error.
func (d *Dataset) Join(base string, steps []JoinStep) (dataframe.DataFrame, error) {
	merged, err := d.Frame(base)
	if err != nil {
		return dataframe.DataFrame{}, err
	}

	for _, step := range steps {
		right, err := d.Frame(step.Table)
		if err != nil {
			return dataframe.DataFrame{}, err
		}

		merged, err = applyJoin(merged, right, step)
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("joining %s: %w", step.Table, err)
		}

		slog.Info("Join applied",
			slog.String("table", step.Table),
			slog.String("kind", string(step.Kind)),
			slog.String("key", step.LeftKey),
			slog.Int("rows", merged.Nrow()))
	}

	return merged, nil
}

func applyJoin(left, right dataframe.DataFrame, step JoinStep) (dataframe.DataFrame, error) {
	if !hasColumn(left, step.LeftKey) {
		return dataframe.DataFrame{}, apperrors.NewSchemaError("merged relation", step.LeftKey)
	}
	if !hasColumn(right, step.RightKey) {
		return dataframe.DataFrame{}, apperrors.NewSchemaError(step.Table, step.RightKey)
	}

	if len(step.Columns) > 0 {
		right = right.Select(step.Columns)
		if right.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("selecting columns from %s: %w", step.Table, right.Err)
		}
	}

	for oldName, newName := range step.Renames {
		right = right.Rename(newName, oldName)
		if right.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("renaming %s to %s: %w", oldName, newName, right.Err)
		}
	}

	// Coalesce the key under the canonical (left) name.
	if step.RightKey != step.LeftKey {
		right = right.Rename(step.LeftKey, step.RightKey)
		if right.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("renaming join key %s: %w", step.RightKey, right.Err)
		}
	}

	var joined dataframe.DataFrame
	switch step.Kind {
	case InnerJoin:
		joined = left.InnerJoin(right, step.LeftKey)
	case LeftJoin:
		joined = left.LeftJoin(right, step.LeftKey)
	default:
		return dataframe.DataFrame{}, fmt.Errorf("unknown join kind %q", step.Kind)
	}

	if joined.Err != nil {
		return dataframe.DataFrame{}, joined.Err
	}

	if step.As != "" && step.As != step.LeftKey {
		joined = joined.Rename(step.As, step.LeftKey)
		if joined.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("renaming join key %s to %s: %w", step.LeftKey, step.As, joined.Err)
		}
	}

	return joined, nil
}

func hasColumn(df dataframe.DataFrame, name string) bool {
	for _, col := range df.Names() {
		if col == name {
			return true
		}
	}
	return false
}
