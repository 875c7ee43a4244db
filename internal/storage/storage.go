package storage

import (
	"fmt"

	"go-movie-catalog/internal/model"
)

// Supported backend names, selected at construction via configuration.
const (
	BackendCSV  = "csv"
	BackendJSON = "json"
)

// MovieStore defines the operations every catalog backend must support.
//
// Mutating operations return a human-readable status string for outcomes
// the store recovers from locally (duplicate title, unknown title, record
// missing its poster image). A non-nil error is reserved for unrecovered
// faults: the backing file could not be read at construction or could not
// be rewritten after a mutation.
type MovieStore interface {
	// ListMovies returns the catalog projection: a mapping from title to
	// attributes, reflecting every successful mutation in this session.
	// Which fields appear in the projection is a per-backend policy.
	ListMovies() model.Catalog

	// AddMovie inserts a new record. A title that is already present is a
	// duplicate and leaves the catalog unchanged.
	AddMovie(title string, year model.Year, rating float64, poster string) (string, error)

	// DeleteMovie removes the record matching title.
	DeleteMovie(title string) (string, error)

	// UpdateMovie sets the note on the record matching title.
	UpdateMovie(title, note string) (string, error)
}

// Open constructs the backend named by the configuration. The backing file
// must already exist and parse cleanly; a missing file is a construction
// fault, not something Open papers over.
func Open(backend, path string) (MovieStore, error) {
	switch backend {
	case BackendCSV:
		return NewCSVStore(path)
	case BackendJSON:
		return NewJSONStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (supported: %q, %q)", backend, BackendCSV, BackendJSON)
	}
}
