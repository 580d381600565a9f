package model

import "time"

// Continent is one of the seven continent labels assigned by the
// classifier, or Unknown when no bounding box matches.
type Continent string

const (
	NorthAmerica Continent = "North America"
	SouthAmerica Continent = "South America"
	Europe       Continent = "Europe"
	Africa       Continent = "Africa"
	Asia         Continent = "Asia"
	Australia    Continent = "Australia"
	Antarctica   Continent = "Antarctica"
	Unknown      Continent = "Unknown"
)

// Continents lists every label a stored recommendation can carry,
// Unknown included. The set is closed.
var Continents = []Continent{
	NorthAmerica,
	SouthAmerica,
	Europe,
	Africa,
	Asia,
	Australia,
	Antarctica,
	Unknown,
}

// Coordinate is a geographic point. Latitude runs [-90, 90] and longitude
// [-180, 180], but nothing here enforces that; callers that produce
// coordinates from untrusted text decide how to handle out-of-range values.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a point of interest returned by the places lookup.
type Place struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Categories []string `json:"categories,omitempty"`
}

// Recommendation is one persisted place recommendation. Rows are
// append-only: no uniqueness constraint, no update path.
type Recommendation struct {
	ID          int64     `json:"id"`
	Destination string    `json:"destination"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Continent   Continent `json:"continent"`
	CreatedAt   time.Time `json:"created_at"`
}
