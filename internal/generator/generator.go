package generator

import (
	"fmt"
	"path/filepath"

	"go-movie-catalog/internal/storage"
	"go-movie-catalog/internal/website"
	"go-movie-catalog/pkg/fsutils"
)

// Store constructors refuse to open a missing file, so a brand-new catalog
// has to be seeded explicitly. This package writes the starter files.

// seedContent holds the starter bytes per backend.
var seedContent = map[string][]byte{
	storage.BackendCSV:  []byte("title,year,rating,poster,notes\n"),
	storage.BackendJSON: []byte("{}\n"),
}

// SeedStoreFile writes an empty catalog file for the given backend. An
// existing file is left alone unless force is set.
func SeedStoreFile(backend, path string, force bool) error {
	content, ok := seedContent[backend]
	if !ok {
		return fmt.Errorf("unknown storage backend %q (supported: %q, %q)", backend, storage.BackendCSV, storage.BackendJSON)
	}

	if fsutils.FileExists(path) && !force {
		return fmt.Errorf("catalog file %s already exists (use -force to overwrite)", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fsutils.CreateDir(dir); err != nil {
			return fmt.Errorf("failed to create catalog directory %s: %w", dir, err)
		}
	}
	if err := fsutils.WriteFileAtomic(path, content); err != nil {
		return fmt.Errorf("failed to seed catalog file %s: %w", path, err)
	}
	return nil
}

// ExportPageTemplate writes the built-in website template to path so it
// can be customized and referenced from the website.template config key.
func ExportPageTemplate(path string, force bool) error {
	if fsutils.FileExists(path) && !force {
		return fmt.Errorf("template file %s already exists (use -force to overwrite)", path)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := fsutils.CreateDir(dir); err != nil {
			return fmt.Errorf("failed to create template directory %s: %w", dir, err)
		}
	}
	if err := fsutils.WriteFileAtomic(path, []byte(website.DefaultPageTemplate)); err != nil {
		return fmt.Errorf("failed to export page template to %s: %w", path, err)
	}
	return nil
}
