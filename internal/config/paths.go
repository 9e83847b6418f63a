package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file locations: every path is
// resolved relative to the executable directory, never the working directory,
// so the tools behave the same wherever they are launched from.
type Paths struct {
	ExecutableDir string
	DataDir       string
	ArchivesDir   string // input ZIP archives from the CCAM distribution
	TablesDir     string // extracted DBF files
	CacheDir      string // persisted parsed tables
	OutputDir     string
	ReportsDir    string // analyzer CSV reports
	ByMenuDir     string // one XLSX per menu group

	ConfigFile string
}

// GetPaths returns the application paths relative to the executable location.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}

	return NewPaths(filepath.Dir(exe)), nil
}

// NewPaths builds the path set rooted at the given base directory.
// Layout:
//
//	base/
//	  ├── ccam.yaml            (optional settings)
//	  ├── data/
//	  │   ├── archives/        (CCAM ZIP distribution files)
//	  │   ├── tables/          (extracted DBF files)
//	  │   └── cache/           (parsed table cache)
//	  └── output/
//	      ├── reports/         (analyzer CSV reports)
//	      └── by_menu/         (per-menu evolution workbooks)
func NewPaths(baseDir string) *Paths {
	dataDir := filepath.Join(baseDir, "data")
	outputDir := filepath.Join(baseDir, "output")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       dataDir,
		ArchivesDir:   filepath.Join(dataDir, "archives"),
		TablesDir:     filepath.Join(dataDir, "tables"),
		CacheDir:      filepath.Join(dataDir, "cache"),
		OutputDir:     outputDir,
		ReportsDir:    filepath.Join(outputDir, "reports"),
		ByMenuDir:     filepath.Join(outputDir, "by_menu"),
		ConfigFile:    filepath.Join(baseDir, "ccam.yaml"),
	}
}

// ApplyDataDir re-roots the input data directories at dir, keeping the
// output directories in place. Used when the settings file overrides
// data_dir.
func (p *Paths) ApplyDataDir(dir string) {
	p.DataDir = dir
	p.ArchivesDir = filepath.Join(dir, "archives")
	p.TablesDir = filepath.Join(dir, "tables")
	p.CacheDir = filepath.Join(dir, "cache")
}

// EnsureDirectories creates all required directories if they don't exist.
// Pre-existing directories are not an error.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.ArchivesDir,
		p.TablesDir,
		p.CacheDir,
		p.OutputDir,
		p.ReportsDir,
		p.ByMenuDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetTablePath returns the path of an extracted DBF table file.
func (p *Paths) GetTablePath(tableName string) string {
	return filepath.Join(p.TablesDir, tableName+".dbf")
}

// GetCachePath returns the path of the persisted cache for a table.
func (p *Paths) GetCachePath(tableName string) string {
	return filepath.Join(p.CacheDir, tableName+".gob")
}

// GetReportPath returns the path of a CSV report file.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}
