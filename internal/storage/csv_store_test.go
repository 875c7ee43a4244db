package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go-movie-catalog/internal/model"
)

// Helper to write a CSV catalog file and return its path.
func writeCSVFixture(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	content := "title,year,rating,poster,notes\n" + strings.Join(lines, "")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Setup failed: could not write fixture %s: %v", path, err)
	}
	return path
}

func TestNewCSVStore_MissingFile(t *testing.T) {
	_, err := NewCSVStore(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("NewCSVStore() succeeded for a missing file, expected error")
	}
}

func TestNewCSVStore_MissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "movies.csv")
	if err := os.WriteFile(path, []byte("Up,2009,8.2,url1,\n"), 0644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if _, err := NewCSVStore(path); err == nil {
		t.Fatal("NewCSVStore() succeeded without a header line, expected error")
	}
}

func TestCSVStore_EmptyCatalog(t *testing.T) {
	path := writeCSVFixture(t)
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore() failed: %v", err)
	}

	catalog := store.ListMovies()
	if catalog == nil {
		t.Fatal("ListMovies() returned nil for an empty catalog, want an empty map")
	}
	if len(catalog) != 0 {
		t.Fatalf("ListMovies() returned %d entries for an empty catalog, want 0", len(catalog))
	}
}

func TestCSVStore_AddThenList(t *testing.T) {
	path := writeCSVFixture(t)
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore() failed: %v", err)
	}

	status, err := store.AddMovie("Up", "2009", 8.2, "http://x/up.jpg")
	if err != nil {
		t.Fatalf("AddMovie() failed: %v", err)
	}
	if !strings.Contains(status, "Up") || !strings.Contains(status, "added") {
		t.Errorf("AddMovie() status = %q, want a success message naming the title", status)
	}

	got, ok := store.ListMovies()["Up"]
	if !ok {
		t.Fatal("ListMovies() does not contain the added title")
	}
	want := model.Attributes{Year: "2009", Rating: 8.2, Poster: "http://x/up.jpg"}
	if got != want {
		t.Errorf("ListMovies()[\"Up\"] = %+v, want %+v", got, want)
	}
}

func TestCSVStore_DuplicateAdd(t *testing.T) {
	path := writeCSVFixture(t, "Up,2009,8.2,url1,\n")
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore() failed: %v", err)
	}

	status, err := store.AddMovie("Up", "1999", 1.0, "url2")
	if err != nil {
		t.Fatalf("AddMovie() failed: %v", err)
	}
	if !strings.Contains(status, "Up") || !strings.Contains(status, "already exists") {
		t.Errorf("AddMovie() duplicate status = %q, want a duplicate message naming the title", status)
	}

	// The prior record must be untouched.
	got := store.ListMovies()["Up"]
	want := model.Attributes{Year: "2009", Rating: 8.2, Poster: "url1"}
	if got != want {
		t.Errorf("duplicate AddMovie() altered the record: got %+v, want %+v", got, want)
	}
}

func TestCSVStore_DeleteMovie(t *testing.T) {
	path := writeCSVFixture(t, "Up,2009,8.2,url1,\n", "Heat,1995,8.3,url2,\n")
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore() failed: %v", err)
	}

	status, err := store.DeleteMovie("Up")
	if err != nil {
		t.Fatalf("DeleteMovie() failed: %v", err)
	}
	if !strings.Contains(status, "Up") || !strings.Contains(status, "deleted") {
		t.Errorf("DeleteMovie() status = %q, want a deletion message naming the title", status)
	}

	catalog := store.ListMovies()
	if len(catalog) != 1 {
		t.Fatalf("ListMovies() has %d entries after delete, want 1", len(catalog))
	}
	want := model.Attributes{Year: "1995", Rating: 8.3, Poster: "url2"}
	if catalog["Heat"] != want {
		t.Errorf("remaining record changed: got %+v, want %+v", catalog["Heat"], want)
	}
}

func TestCSVStore_DeleteMovie_NotFound(t *testing.T) {
	path := writeCSVFixture(t, "Up,2009,8.2,url1,\n")
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore() failed: %v", err)
	}
	before := store.ListMovies()

	status, err := store.DeleteMovie("Down")
	if err != nil {
		t.Fatalf("DeleteMovie() failed: %v", err)
	}
	if !strings.Contains(status, "Down") || !strings.Contains(status, "does not exist") {
		t.Errorf("DeleteMovie() status = %q, want a not-found message naming the title", status)
	}
	if !reflect.DeepEqual(before, store.ListMovies()) {
		t.Error("DeleteMovie() on a missing title changed the catalog")
	}
}

func TestCSVStore_TitleMatchIsCaseSensitive(t *testing.T) {
	path := writeCSVFixture(t, "Up,2009,8.2,url1,\n")
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore() failed: %v", err)
	}

	status, err := store.DeleteMovie("up")
	if err != nil {
		t.Fatalf("DeleteMovie() failed: %v", err)
	}
	if !strings.Contains(status, "does not exist") {
		t.Errorf("DeleteMovie(\"up\") status = %q, want not-found (matching is case-sensitive)", status)
	}
	if len(store.ListMovies()) != 1 {
		t.Error("DeleteMovie(\"up\") removed a record despite the case mismatch")
	}
}

func TestCSVStore_UpdateMovie(t *testing.T) {
	path := writeCSVFixture(t, "Up,2009,8.2,url1,\n")
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore() failed: %v", err)
	}

	status, err := store.UpdateMovie("Up", "lovely")
	if err != nil {
		t.Fatalf("UpdateMovie() failed: %v", err)
	}
	if !strings.Contains(status, "Up") || !strings.Contains(status, "updated") {
		t.Errorf("UpdateMovie() status = %q, want an update message naming the title", status)
	}

	// The projection never exposes notes, even after an update.
	if _, ok := store.ListMovies()["Up"]; !ok {
		t.Fatal("ListMovies() lost the updated record")
	}
	if note := store.ListMovies()["Up"].Note; note != "" {
		t.Errorf("ListMovies() exposes the note %q, want notes omitted from the projection", note)
	}

	// The note must still be durable in the backing file.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read back catalog file: %v", err)
	}
	if !strings.Contains(string(data), "lovely") {
		t.Errorf("backing file does not contain the note after UpdateMovie():\n%s", data)
	}
}

func TestCSVStore_UpdateMovie_NotFound(t *testing.T) {
	path := writeCSVFixture(t, "Up,2009,8.2,url1,\n")
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore() failed: %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	status, err := store.UpdateMovie("Down", "whatever")
	if err != nil {
		t.Fatalf("UpdateMovie() failed: %v", err)
	}
	if !strings.Contains(status, "Down") || !strings.Contains(status, "does not exist") {
		t.Errorf("UpdateMovie() status = %q, want a not-found message naming the title", status)
	}

	// Not-found must not trigger a rewrite.
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read back catalog file: %v", err)
	}
	if string(before) != string(after) {
		t.Error("UpdateMovie() on a missing title rewrote the backing file")
	}
}

func TestCSVStore_RoundTrip(t *testing.T) {
	path := writeCSVFixture(t)
	store, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore() failed: %v", err)
	}

	if _, err := store.AddMovie("Up", "2009", 8.2, "url1"); err != nil {
		t.Fatalf("AddMovie() failed: %v", err)
	}
	if _, err := store.AddMovie("Heat, The Sequel", "1995", 8.3, "url2"); err != nil {
		t.Fatalf("AddMovie() failed: %v", err)
	}
	if _, err := store.UpdateMovie("Up", "note, with a comma"); err != nil {
		t.Fatalf("UpdateMovie() failed: %v", err)
	}

	// A fresh instance over the file just written must see the same catalog.
	reopened, err := NewCSVStore(path)
	if err != nil {
		t.Fatalf("NewCSVStore() reopen failed: %v", err)
	}
	if !reflect.DeepEqual(store.ListMovies(), reopened.ListMovies()) {
		t.Errorf("round trip lost data.\nBefore: %+v\nAfter:  %+v", store.ListMovies(), reopened.ListMovies())
	}
	if !reflect.DeepEqual(store.rows, reopened.rows) {
		t.Errorf("round trip altered rows.\nBefore: %+v\nAfter:  %+v", store.rows, reopened.rows)
	}
}
