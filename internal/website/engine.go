package website

import (
	"bytes"
	"fmt"
	"html/template"
	"maps"
	"slices"
	"strings"

	"go-movie-catalog/internal/model"
	"go-movie-catalog/internal/storage"
	"go-movie-catalog/pkg/fsutils"
)

// Engine renders the catalog into a static HTML page.
type Engine struct {
	store storage.MovieStore
	// SiteTitle is the page heading; TemplatePath optionally points at a
	// user-supplied template file that must define a "page" template.
	SiteTitle    string
	TemplatePath string
}

// NewEngine creates a new website engine over the given store.
func NewEngine(store storage.MovieStore, siteTitle string) *Engine {
	return &Engine{store: store, SiteTitle: siteTitle}
}

// MovieCard is the per-movie data handed to the page template.
type MovieCard struct {
	Title  string
	Year   model.Year
	Poster string
	Note   string
}

// PageData is the data passed to the "page" template.
type PageData struct {
	Title  string
	Movies []MovieCard
}

// RenderPage executes the "page" template over the current catalog and
// returns the resulting HTML. Movies without a poster image are left off
// the page; titles are ordered alphabetically.
func (e *Engine) RenderPage() (string, error) {
	tmplSet, err := e.parseTemplates()
	if err != nil {
		return "", err
	}

	movies := e.store.ListMovies()
	data := PageData{Title: e.SiteTitle}
	for _, title := range slices.Sorted(maps.Keys(movies)) {
		attrs := movies[title]
		if attrs.Poster == "" {
			continue
		}
		data.Movies = append(data.Movies, MovieCard{
			Title:  title,
			Year:   attrs.Year,
			Poster: attrs.Poster,
			Note:   attrs.Note,
		})
	}

	var buf bytes.Buffer
	if err := tmplSet.ExecuteTemplate(&buf, "page", data); err != nil {
		// Check if the error message indicates the template wasn't defined
		if strings.Contains(err.Error(), "\"page\" is undefined") || strings.Contains(err.Error(), "\"page\" not defined") {
			return "", fmt.Errorf("failed to execute template: the template file must contain '{{ define \"page\" }} ... {{ end }}'")
		}
		return "", fmt.Errorf("failed to execute template 'page': %w", err)
	}
	return buf.String(), nil
}

// Generate renders the page and writes it to outputPath.
func (e *Engine) Generate(outputPath string) error {
	page, err := e.RenderPage()
	if err != nil {
		return err
	}
	if err := fsutils.WriteFileAtomic(outputPath, []byte(page)); err != nil {
		return fmt.Errorf("failed to write website to %s: %w", outputPath, err)
	}
	return nil
}

func (e *Engine) parseTemplates() (*template.Template, error) {
	if e.TemplatePath != "" {
		tmplSet, err := template.ParseFiles(e.TemplatePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", e.TemplatePath, err)
		}
		return tmplSet, nil
	}
	return template.Must(template.New("website").Parse(DefaultPageTemplate)), nil
}
