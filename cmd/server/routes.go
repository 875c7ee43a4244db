package main

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// routes sets up the HTTP router for the preview server.
func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// --- Handlers ---
	r.Get("/", app.catalogPageHandler)
	r.Get("/api/movies", app.listMoviesHandler)

	return r
}

// catalogPageHandler renders the catalog website on the fly, so the page
// always reflects the current backing file.
func (app *application) catalogPageHandler(w http.ResponseWriter, r *http.Request) {
	page, err := app.engine.RenderPage()
	if err != nil {
		app.logger.Error("Failed to render catalog page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// listMoviesHandler serves the raw catalog projection as JSON.
func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	data, err := json.MarshalIndent(app.store.ListMovies(), "", "  ")
	if err != nil {
		app.logger.Error("Failed to encode catalog", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
