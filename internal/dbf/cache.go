package dbf

import (
	"encoding/gob"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "ccamcli/internal/errors"
)

// SaveCache persists a parsed table so later runs skip DBF parsing.
// The file is written atomically via a temporary sibling.
func SaveCache(table *Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create cache directory", err)
	}

	tmp := path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create cache file %s", tmp), err)
	}

	if err := gob.NewEncoder(file).Encode(table); err != nil {
		file.Close()
		os.Remove(tmp)
		return apperrors.NewStorageError(fmt.Sprintf("failed to encode cache for %s", table.Name), err)
	}

	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return apperrors.NewStorageError("failed to close cache file", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return apperrors.NewStorageError("failed to move cache file into place", err)
	}

	return nil
}

// LoadCache reads a previously persisted table. A missing cache file is a
// NOT_FOUND error so callers can fall back to the DBF source.
func LoadCache(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(path)
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to open cache file %s", path), err)
	}
	defer file.Close()

	var table Table
	if err := gob.NewDecoder(file).Decode(&table); err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to decode cache file %s", path), err)
	}

	return &table, nil
}

// LoadTable returns the named table, preferring the cache and falling back
// to parsing the DBF file.
func LoadTable(name, dbfPath, cachePath string) (*Table, error) {
	if table, err := LoadCache(cachePath); err == nil {
		slog.Info("Loaded table from cache",
			slog.String("table", name),
			slog.Int("rows", table.NumRows()))
		return table, nil
	}

	return ReadTable(dbfPath)
}
