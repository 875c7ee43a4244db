package model

// Movie represents one catalog record as stored in the CSV backend,
// with fields in on-disk column order.
type Movie struct {
	Title  string
	Year   Year
	Rating float64
	Poster string // URL of the poster image
	Notes  string // Optional free-text annotation, empty until set
}

// Attributes holds the per-title details of a movie as exposed by the
// title-keyed catalog projection and as persisted by the JSON backend.
// The poster URL is stored under the "image-url" key in JSON documents.
type Attributes struct {
	Year   Year    `json:"year"`
	Rating float64 `json:"rating"`
	Poster string  `json:"image-url,omitempty"`
	Note   string  `json:"note,omitempty"`
}

// Catalog is the projection returned by a store's ListMovies: a mapping
// from movie title to its attributes. Which fields a backend includes in
// the projection is a per-backend policy (the CSV backend never exposes
// notes through it).
type Catalog map[string]Attributes
