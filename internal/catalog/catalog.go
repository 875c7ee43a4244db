package catalog

import (
	"errors"
	"io"
	"log/slog"
	"maps"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"

	"go-movie-catalog/internal/storage"
)

// ErrEmptyCatalog is returned by aggregations that need at least one movie.
var ErrEmptyCatalog = errors.New("no movies in the database")

// Manager provides the derived read-only views over a store's catalog
// projection: statistics, random pick, keyword search and rating order.
// It never mutates the store; persistence and identity integrity stay the
// store's job.
type Manager struct {
	store  storage.MovieStore
	logger *slog.Logger
}

// NewManager creates a new Manager instance.
func NewManager(store storage.MovieStore, logger *slog.Logger) *Manager {
	if logger == nil {
		// Provide a default discard logger if none is provided
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Manager{store: store, logger: logger}
}

// Stats aggregates the ratings of the whole catalog. Best and Worst list
// every title tied at the extreme, in sorted order.
type Stats struct {
	Average     float64
	Median      float64
	Best        []string
	Worst       []string
	BestRating  float64
	WorstRating float64
}

// Stats computes average, median, best and worst over the current catalog.
func (m *Manager) Stats() (Stats, error) {
	movies := m.store.ListMovies()
	if len(movies) == 0 {
		return Stats{}, ErrEmptyCatalog
	}

	ratings := make([]float64, 0, len(movies))
	for _, attrs := range movies {
		ratings = append(ratings, attrs.Rating)
	}
	sort.Float64s(ratings)

	var sum float64
	for _, r := range ratings {
		sum += r
	}

	stats := Stats{
		Average:     sum / float64(len(ratings)),
		Median:      median(ratings),
		BestRating:  ratings[len(ratings)-1],
		WorstRating: ratings[0],
	}
	for _, title := range slices.Sorted(maps.Keys(movies)) {
		switch movies[title].Rating {
		case stats.BestRating:
			stats.Best = append(stats.Best, title)
		case stats.WorstRating:
			stats.Worst = append(stats.Worst, title)
		}
	}
	// A single movie is both best and worst.
	if stats.BestRating == stats.WorstRating {
		stats.Worst = stats.Best
	}

	m.logger.Debug("Computed catalog stats", "movies", len(movies), "average", stats.Average)
	return stats, nil
}

// median expects ratings to be sorted.
func median(ratings []float64) float64 {
	mid := len(ratings) / 2
	if len(ratings)%2 == 0 {
		return (ratings[mid-1] + ratings[mid]) / 2
	}
	return ratings[mid]
}

// Random picks one title at random. ok is false when the catalog is empty.
func (m *Manager) Random() (title string, ok bool) {
	titles := slices.Sorted(maps.Keys(m.store.ListMovies()))
	if len(titles) == 0 {
		return "", false
	}
	return titles[rand.IntN(len(titles))], true
}

// Search returns the titles containing the keyword, case-insensitively,
// in sorted order.
func (m *Manager) Search(keyword string) []string {
	var matches []string
	needle := strings.ToLower(keyword)
	for _, title := range slices.Sorted(maps.Keys(m.store.ListMovies())) {
		if strings.Contains(strings.ToLower(title), needle) {
			matches = append(matches, title)
		}
	}
	return matches
}

// RatedMovie pairs a title with its rating for ordered listings.
type RatedMovie struct {
	Title  string
	Rating float64
}

// SortedByRating returns the catalog ordered from the lowest rating to the
// highest; ties are broken by title.
func (m *Manager) SortedByRating() []RatedMovie {
	movies := m.store.ListMovies()
	rated := make([]RatedMovie, 0, len(movies))
	for title, attrs := range movies {
		rated = append(rated, RatedMovie{Title: title, Rating: attrs.Rating})
	}
	sort.Slice(rated, func(i, j int) bool {
		if rated[i].Rating != rated[j].Rating {
			return rated[i].Rating < rated[j].Rating
		}
		return rated[i].Title < rated[j].Title
	})
	return rated
}
