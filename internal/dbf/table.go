// Package dbf reads the CCAM DBF tables into in-memory tabular structures
// with lower-cased, source-ordered column names. Text encoding is detected
// per file; parsed tables can be persisted to a flat cache to skip DBF
// parsing on later runs.
package dbf

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Table is a parsed DBF table. Columns keep the source order and are
// lower-cased; every cell is rendered to its canonical string form so the
// table can be handed to the dataframe layer unchanged.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

// Records returns the table as a header row followed by the data rows,
// the shape the dataframe loader expects.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Columns)
	records = append(records, t.Rows...)
	return records
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// HasColumn reports whether the table declares the given column.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// renderValue converts a typed DBF cell to its canonical string form.
// Dates render as 2006-01-02, floats without trailing zeros, nil as the
// empty string.
func renderValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case []byte:
		return strings.TrimSpace(string(val))
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02")
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint32:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
