package website

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-movie-catalog/internal/model"
)

// mockStore implements the storage.MovieStore interface for testing.
type mockStore struct {
	movies model.Catalog
}

func (m *mockStore) ListMovies() model.Catalog {
	return m.movies
}

func (m *mockStore) AddMovie(title string, year model.Year, rating float64, poster string) (string, error) {
	m.movies[title] = model.Attributes{Year: year, Rating: rating, Poster: poster}
	return "", nil
}

func (m *mockStore) DeleteMovie(title string) (string, error) {
	delete(m.movies, title)
	return "", nil
}

func (m *mockStore) UpdateMovie(title, note string) (string, error) {
	attrs := m.movies[title]
	attrs.Note = note
	m.movies[title] = attrs
	return "", nil
}

func TestRenderPage(t *testing.T) {
	engine := NewEngine(&mockStore{movies: model.Catalog{
		"Up":     {Year: "2009", Rating: 8.2, Poster: "http://x/up.jpg", Note: "balloons"},
		"Heat":   {Year: "1995", Rating: 8.3, Poster: "http://x/heat.jpg"},
		"NoFace": {Year: "2001", Rating: 7.0}, // no poster, must be skipped
	}}, "My Movie App")

	page, err := engine.RenderPage()
	require.NoError(t, err)

	assert.Contains(t, page, "<title>My Movie App</title>")
	assert.Contains(t, page, `src="http://x/up.jpg"`)
	assert.Contains(t, page, `alt="Up"`)
	assert.Contains(t, page, "Year: 2009")
	assert.Contains(t, page, `<p class="movie-note">balloons</p>`)
	assert.NotContains(t, page, "NoFace")

	// No note paragraph for a movie without one.
	assert.Contains(t, page, `alt="Heat"`)
	assert.Equal(t, 1, strings.Count(page, `<p class="movie-note">`))
}

func TestRenderPage_EscapesHTML(t *testing.T) {
	engine := NewEngine(&mockStore{movies: model.Catalog{
		"<script>": {Year: "2020", Rating: 5, Poster: "http://x/p.jpg"},
	}}, "Catalog")

	page, err := engine.RenderPage()
	require.NoError(t, err)
	assert.NotContains(t, page, "<script>")
}

func TestGenerate(t *testing.T) {
	engine := NewEngine(&mockStore{movies: model.Catalog{
		"Up": {Year: "2009", Rating: 8.2, Poster: "http://x/up.jpg"},
	}}, "Catalog")

	outputPath := filepath.Join(t.TempDir(), "website.html")
	require.NoError(t, engine.Generate(outputPath))

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `alt="Up"`)
}

func TestRenderPage_CustomTemplate(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(templatePath, []byte(`{{ define "page" }}{{ len .Movies }} movies{{ end }}`), 0644))

	engine := NewEngine(&mockStore{movies: model.Catalog{
		"Up": {Year: "2009", Rating: 8.2, Poster: "http://x/up.jpg"},
	}}, "Catalog")
	engine.TemplatePath = templatePath

	page, err := engine.RenderPage()
	require.NoError(t, err)
	assert.Equal(t, "1 movies", page)
}

func TestRenderPage_CustomTemplateWithoutPageDefine(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(templatePath, []byte(`<html>no define</html>`), 0644))

	engine := NewEngine(&mockStore{movies: model.Catalog{}}, "Catalog")
	engine.TemplatePath = templatePath

	_, err := engine.RenderPage()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `{{ define "page" }}`)
}
