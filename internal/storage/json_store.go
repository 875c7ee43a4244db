package storage

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"go-movie-catalog/internal/model"
	"go-movie-catalog/pkg/fsutils"
)

// JSONStore implements the MovieStore interface over a single JSON
// document: a top-level object mapping each title to its attributes
// (year, rating, image-url, optional note). The whole document is parsed
// into memory at construction and rewritten in full on every mutation.
//
// Title matching policy: exact for AddMovie, case-insensitive for
// DeleteMovie and UpdateMovie. Case-insensitive scans walk titles in
// sorted order so the matched record is deterministic.
type JSONStore struct {
	filePath string
	movies   model.Catalog
}

// NewJSONStore reads and parses the backing document. The file must exist
// and contain a valid top-level mapping.
func NewJSONStore(filePath string) (*JSONStore, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", filePath, err)
	}

	var movies model.Catalog
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", filePath, err)
	}
	if movies == nil {
		movies = model.Catalog{}
	}
	return &JSONStore{filePath: filePath, movies: movies}, nil
}

// ListMovies returns the live in-memory mapping, not a copy. Callers must
// not assume isolation from subsequent mutations.
func (s *JSONStore) ListMovies() model.Catalog {
	return s.movies
}

// AddMovie inserts a record with year, rating and poster image; the note
// field stays absent until a later UpdateMovie. The title membership check
// is exact.
func (s *JSONStore) AddMovie(title string, year model.Year, rating float64, poster string) (string, error) {
	if _, exists := s.movies[title]; exists {
		return fmt.Sprintf("%s already exists in the database", title), nil
	}

	s.movies[title] = model.Attributes{
		Year:   year,
		Rating: rating,
		Poster: poster,
	}
	if err := s.persist(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s has been added to the database", title), nil
}

// DeleteMovie removes the first case-insensitive title match.
func (s *JSONStore) DeleteMovie(title string) (string, error) {
	for _, movieTitle := range slices.Sorted(maps.Keys(s.movies)) {
		if strings.EqualFold(title, movieTitle) {
			delete(s.movies, movieTitle)
			if err := s.persist(); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s has been deleted from the database", title), nil
		}
	}
	return fmt.Sprintf("%s does not exist in the database", title), nil
}

// UpdateMovie sets the note on the first case-insensitive title match,
// provided the record carries a poster image; a record without one cannot
// be annotated. The failure status deliberately does not distinguish an
// unknown title from an incomplete record.
func (s *JSONStore) UpdateMovie(title, note string) (string, error) {
	for _, movieTitle := range slices.Sorted(maps.Keys(s.movies)) {
		attrs := s.movies[movieTitle]
		if strings.EqualFold(title, movieTitle) && attrs.Poster != "" {
			attrs.Note = note
			s.movies[movieTitle] = attrs
			if err := s.persist(); err != nil {
				return "", err
			}
			return fmt.Sprintf("Note added to the movie '%s' successfully", movieTitle), nil
		}
	}
	return fmt.Sprintf("%s does not exist in the database or has no poster image", title), nil
}

// persist rewrites the whole backing document.
func (s *JSONStore) persist() error {
	// Use MarshalIndent for readable JSON files
	data, err := json.MarshalIndent(s.movies, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode catalog for %s: %w", s.filePath, err)
	}
	if err := fsutils.WriteFileAtomic(s.filePath, data); err != nil {
		return fmt.Errorf("failed to persist catalog: %w", err)
	}
	return nil
}
