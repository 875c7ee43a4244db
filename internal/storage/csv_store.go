package storage

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"

	"go-movie-catalog/internal/model"
	"go-movie-catalog/pkg/fsutils"
)

// csvHeader names the five columns of the backing file, in on-disk order.
var csvHeader = []string{"title", "year", "rating", "poster", "notes"}

// CSVStore implements the MovieStore interface over a single delimited
// text file. The whole file is parsed into an ordered row slice at
// construction; every mutation rewrites the whole file (header plus all
// rows) through an atomic temp-file-then-rename.
//
// Title matching policy: exact, case-sensitive. This differs from the
// JSON backend on purpose; see the package tests for the contract.
type CSVStore struct {
	filePath string
	rows     []model.Movie
}

// NewCSVStore reads and parses the backing file. The file must exist and
// start with the expected header line.
func NewCSVStore(filePath string) (*CSVStore, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file %s: %w", filePath, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", filePath, err)
	}
	if len(records) == 0 || !slices.Equal(records[0], csvHeader) {
		return nil, fmt.Errorf("catalog file %s is missing the header %v", filePath, csvHeader)
	}

	store := &CSVStore{filePath: filePath}
	for i, record := range records[1:] {
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("catalog file %s: row %d has %d fields, want %d", filePath, i+1, len(record), len(csvHeader))
		}
		rating, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: row %d has invalid rating %q: %w", filePath, i+1, record[2], err)
		}
		store.rows = append(store.rows, model.Movie{
			Title:  record[0],
			Year:   model.Year(record[1]),
			Rating: rating,
			Poster: record[3],
			Notes:  record[4],
		})
	}
	return store, nil
}

// ListMovies projects the working set into a title-keyed catalog. The
// projection exposes year, rating and poster but never notes; a store
// with no rows yields an empty (non-nil) catalog.
func (s *CSVStore) ListMovies() model.Catalog {
	catalog := make(model.Catalog, len(s.rows))
	for _, row := range s.rows {
		catalog[row.Title] = model.Attributes{
			Year:   row.Year,
			Rating: row.Rating,
			Poster: row.Poster,
		}
	}
	return catalog
}

// AddMovie appends a new row and rewrites the file. Adding a title that is
// already present is reported as a status, not an error.
func (s *CSVStore) AddMovie(title string, year model.Year, rating float64, poster string) (string, error) {
	if _, exists := s.ListMovies()[title]; exists {
		return fmt.Sprintf("%s already exists in the database", title), nil
	}

	s.rows = append(s.rows, model.Movie{
		Title:  title,
		Year:   year,
		Rating: rating,
		Poster: poster,
	})
	if err := s.persist(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s has been added to the database", title), nil
}

// DeleteMovie removes the row with an exactly matching title and rewrites
// the file.
func (s *CSVStore) DeleteMovie(title string) (string, error) {
	for i, row := range s.rows {
		if row.Title == title {
			s.rows = slices.Delete(s.rows, i, i+1)
			if err := s.persist(); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s has been deleted from the database", title), nil
		}
	}
	return fmt.Sprintf("%s does not exist in the database", title), nil
}

// UpdateMovie sets the notes field on the row with an exactly matching
// title. One matching pass decides both the mutation and the status; the
// file is only rewritten when something changed.
func (s *CSVStore) UpdateMovie(title, note string) (string, error) {
	for i := range s.rows {
		if s.rows[i].Title == title {
			s.rows[i].Notes = note
			if err := s.persist(); err != nil {
				return "", err
			}
			return fmt.Sprintf("%s has been updated", title), nil
		}
	}
	return fmt.Sprintf("%s does not exist", title), nil
}

// persist rewrites the whole backing file: header first, then every row
// in working-set order.
func (s *CSVStore) persist() error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := make([][]string, 0, len(s.rows)+1)
	records = append(records, csvHeader)
	for _, row := range s.rows {
		records = append(records, []string{
			row.Title,
			string(row.Year),
			strconv.FormatFloat(row.Rating, 'f', -1, 64),
			row.Poster,
			row.Notes,
		})
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to encode catalog for %s: %w", s.filePath, err)
	}

	if err := fsutils.WriteFileAtomic(s.filePath, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to persist catalog: %w", err)
	}
	return nil
}
