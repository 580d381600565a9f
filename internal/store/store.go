package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/tripscout/trip-scout/internal/model"
)

// Store persists place recommendations in DuckDB.
type Store struct {
	DB      *sql.DB
	DataDir string
}

// New opens (or creates) the recommendation database in the given data
// directory.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "trip-scout.duckdb")
	db, err := sql.Open("duckdb", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening duckdb: %w", err)
	}

	s := &Store{DB: db, DataDir: dataDir}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) migrate() error {
	// The full column set is created up front. There is no upgrade path for
	// tables written by incompatible earlier versions.
	if _, err := s.DB.Exec("CREATE SEQUENCE IF NOT EXISTS places_seq"); err != nil {
		return fmt.Errorf("creating sequence: %w", err)
	}

	_, err := s.DB.Exec(`CREATE TABLE IF NOT EXISTS places (
		id INTEGER PRIMARY KEY DEFAULT nextval('places_seq'),
		destination TEXT NOT NULL,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		continent TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT current_timestamp
	)`)
	if err != nil {
		return fmt.Errorf("creating places table: %w", err)
	}

	return nil
}

// SavePlaces appends one row per place under the given destination and
// continent, capped at max places (no cap when max <= 0). Rows are
// inserted individually rather than in one transaction, so a concurrent
// reader may observe part of a batch; with a single interactive user that
// trade-off is acceptable.
func (s *Store) SavePlaces(destination string, places []model.Place, continent model.Continent, max int) error {
	if max > 0 && len(places) > max {
		places = places[:max]
	}

	for _, p := range places {
		if _, err := s.DB.Exec("INSERT INTO places (destination, name, address, continent) VALUES (?, ?, ?, ?)",
			destination, p.Name, p.Address, string(continent)); err != nil {
			return fmt.Errorf("inserting place %q: %w", p.Name, err)
		}
	}

	return nil
}

// All returns every recommendation ordered by continent, destination,
// name.
func (s *Store) All() ([]model.Recommendation, error) {
	return s.query("SELECT id, destination, name, address, continent, created_at FROM places ORDER BY continent, destination, name")
}

// ByContinent returns recommendations for the given labels ordered by
// destination, name. An empty label set matches nothing.
func (s *Store) ByContinent(labels []model.Continent) ([]model.Recommendation, error) {
	if len(labels) == 0 {
		return nil, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(labels)), ",")
	args := make([]any, len(labels))
	for i, l := range labels {
		args[i] = string(l)
	}

	return s.query("SELECT id, destination, name, address, continent, created_at FROM places WHERE continent IN ("+placeholders+") ORDER BY destination, name", args...)
}

func (s *Store) query(q string, args ...any) ([]model.Recommendation, error) {
	rows, err := s.DB.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []model.Recommendation
	for rows.Next() {
		var r model.Recommendation
		var continent string
		if err := rows.Scan(&r.ID, &r.Destination, &r.Name, &r.Address, &continent, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Continent = model.Continent(continent)
		recs = append(recs, r)
	}

	return recs, rows.Err()
}

// Count returns the total number of stored recommendations.
func (s *Store) Count() int {
	var n int
	s.DB.QueryRow("SELECT COUNT(*) FROM places").Scan(&n)
	return n
}

// CountByContinent returns recommendation counts per continent.
func (s *Store) CountByContinent() map[model.Continent]int {
	m := make(map[model.Continent]int)
	rows, err := s.DB.Query("SELECT continent, COUNT(*) FROM places GROUP BY continent ORDER BY continent")
	if err != nil {
		return m
	}
	defer rows.Close()
	for rows.Next() {
		var c string
		var cnt int
		rows.Scan(&c, &cnt)
		m[model.Continent(c)] = cnt
	}
	return m
}
