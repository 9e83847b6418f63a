// Package archive locates the compressed CCAM distribution files and
// extracts their DBF tables.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// ExtractAll extracts every ZIP archive found in archivesDir into destDir.
// A corrupt or unreadable archive is logged and skipped; the remaining
// archives are still extracted. Returns the number of archives extracted.
func ExtractAll(archivesDir, destDir string) (int, error) {
	entries, err := os.ReadDir(archivesDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read archive directory %s: %w", archivesDir, err)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create destination directory: %w", err)
	}

	extracted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".zip") {
			continue
		}

		path := filepath.Join(archivesDir, entry.Name())
		if err := extractZip(path, destDir); err != nil {
			slog.Warn("Skipping archive",
				slog.String("archive", entry.Name()),
				slog.String("error", err.Error()))
			continue
		}

		slog.Info("Extracted archive", slog.String("archive", entry.Name()))
		extracted++
	}

	return extracted, nil
}

// extractZip extracts a single archive into destDir, rejecting member names
// that would escape the destination.
func extractZip(zipPath, destDir string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer reader.Close()

	for _, member := range reader.File {
		target := filepath.Join(destDir, filepath.Base(member.Name))
		if member.FileInfo().IsDir() {
			continue
		}
		// Base() above already flattens paths, but reject explicit traversal.
		if strings.Contains(member.Name, "..") {
			return fmt.Errorf("archive member %q has an unsafe path", member.Name)
		}

		if err := extractMember(member, target); err != nil {
			return fmt.Errorf("failed to extract %s: %w", member.Name, err)
		}
	}

	return nil
}

func extractMember(member *zip.File, target string) error {
	src, err := member.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// FindDBFFiles lists the DBF files in a directory, sorted by name.
func FindDBFFiles(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasSuffix(strings.ToLower(name), ".dbf") {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{
			Path:    filepath.Join(dir, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}
