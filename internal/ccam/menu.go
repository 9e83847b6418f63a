package ccam

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"ccamcli/internal/dbf"
	apperrors "ccamcli/internal/errors"
)

// NoMenuLabel is the sentinel path for codes that resolve to no menu.
const NoMenuLabel = "SANS_MENU"

// menuRootCode terminates the upward walk; the R_MENU tree is rooted at 0.
const menuRootCode = 0

type menuNode struct {
	label  string
	parent int
}

// Hierarchy is the menu category tree, indexed by menu code for upward
// path resolution.
type Hierarchy struct {
	nodes map[int]menuNode
}

// NewHierarchy builds the menu tree from the R_MENU table. Rows with
// unparsable codes are logged and skipped.
func NewHierarchy(table *dbf.Table) (*Hierarchy, error) {
	for _, col := range []string{"cod_menu", "libelle", "cod_pere"} {
		if !table.HasColumn(col) {
			return nil, apperrors.NewSchemaError(table.Name, col)
		}
	}

	codeIdx := columnIndex(table, "cod_menu")
	labelIdx := columnIndex(table, "libelle")
	parentIdx := columnIndex(table, "cod_pere")

	h := &Hierarchy{nodes: make(map[int]menuNode, table.NumRows())}
	for _, row := range table.Rows {
		code, err := strconv.Atoi(row[codeIdx])
		if err != nil {
			slog.Warn("Skipping menu row with unparsable code",
				slog.String("cod_menu", row[codeIdx]))
			continue
		}

		parent, err := strconv.Atoi(row[parentIdx])
		if err != nil {
			parent = menuRootCode
		}

		h.nodes[code] = menuNode{label: row[labelIdx], parent: parent}
	}

	return h, nil
}

// Label returns the label of a menu code.
func (h *Hierarchy) Label(code int) (string, bool) {
	node, ok := h.nodes[code]
	return node.label, ok
}

// Path resolves the hierarchical path of a menu code by walking parent
// pointers upward, prepending each ancestor as "<code>_<label>". The walk
// stops at the root code, at a missing node, or on a revisited code (the
// dataset is a tree, the guard only bounds a corrupt file). An empty path
// resolves to the NoMenuLabel sentinel.
func (h *Hierarchy) Path(code int) string {
	var path []string
	visited := make(map[int]bool)

	current := code
	for current != menuRootCode && !visited[current] {
		visited[current] = true

		node, ok := h.nodes[current]
		if !ok {
			break
		}

		path = append([]string{fmt.Sprintf("%d_%s", current, node.label)}, path...)
		current = node.parent
	}

	if len(path) == 0 {
		return NoMenuLabel
	}

	return strings.Join(path, " > ")
}

func columnIndex(table *dbf.Table, name string) int {
	for i, col := range table.Columns {
		if col == name {
			return i
		}
	}
	return -1
}
