package dbf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Valentin-Kaiser/go-dbase/dbase"

	apperrors "ccamcli/internal/errors"
)

// ReadTable parses the DBF file at path into a Table. The file's text
// encoding is detected first; parsing itself is delegated to the DBF
// library. A missing file is a NOT_FOUND error naming the path.
func ReadTable(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(path)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	enc, charset := DetectEncoding(path)

	table, err := dbase.OpenTable(&dbase.Config{
		Filename:   path,
		Converter:  dbase.NewDefaultConverter(enc),
		TrimSpaces: true,
	})
	if err != nil {
		return nil, apperrors.NewParsingError(fmt.Sprintf("failed to open DBF file %s", path), err)
	}
	defer table.Close()

	columns := make([]string, 0, len(table.Columns()))
	fieldNames := make([]string, 0, len(table.Columns()))
	for _, col := range table.Columns() {
		fieldNames = append(fieldNames, col.Name())
		columns = append(columns, strings.ToLower(col.Name()))
	}

	name := tableName(path)
	result := &Table{Name: name, Columns: columns}

	for !table.EOF() {
		row, err := table.Next()
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("failed to read row in %s", path), err)
		}
		if row.Deleted {
			continue
		}

		values, err := row.ToMap()
		if err != nil {
			return nil, apperrors.NewParsingError(fmt.Sprintf("failed to decode row in %s", path), err)
		}

		record := make([]string, len(fieldNames))
		for i, field := range fieldNames {
			record[i] = renderValue(values[field])
		}
		result.Rows = append(result.Rows, record)
	}

	slog.Info("Parsed DBF table",
		slog.String("table", name),
		slog.String("charset", charset),
		slog.Int("rows", result.NumRows()),
		slog.Int("columns", len(result.Columns)))

	return result, nil
}

// tableName derives the table identifier from the file path, e.g.
// data/tables/R_PU_BASE.dbf -> R_PU_BASE.
func tableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
