package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tripscout/trip-scout/internal/geo"
	"github.com/tripscout/trip-scout/internal/model"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dir := filepath.Join(os.TempDir(), "trip-scout-store-test-"+t.Name())
	os.RemoveAll(dir)
	t.Cleanup(func() { os.RemoveAll(dir) })

	s, err := New(dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndQueryRoundTrip(t *testing.T) {
	s := testStore(t)

	spots := []model.Place{
		{Name: "Eiffel Tower", Address: "Champ de Mars, Paris"},
		{Name: "Louvre", Address: "Rue de Rivoli, Paris"},
	}
	if err := s.SavePlaces("Paris, France", spots, model.Europe, 5); err != nil {
		t.Fatalf("saving places: %v", err)
	}

	// Any casing and the synonym table must find the same rows.
	for _, input := range []string{"europe", "Europe", "EUROPE"} {
		recs, err := s.ByContinent(geo.ResolveContinent(input))
		if err != nil {
			t.Fatalf("querying %q: %v", input, err)
		}
		if len(recs) != 2 {
			t.Fatalf("query %q: expected 2 rows, got %d", input, len(recs))
		}
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("querying all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(all))
	}
	if all[0].Continent != model.Europe {
		t.Errorf("expected continent Europe, got %q", all[0].Continent)
	}
	if all[0].Name != "Eiffel Tower" {
		t.Errorf("expected Eiffel Tower first (name order), got %q", all[0].Name)
	}
	if all[0].CreatedAt.IsZero() {
		t.Error("expected a server-assigned timestamp")
	}
}

func TestSavePlacesAppendsDuplicates(t *testing.T) {
	s := testStore(t)

	spot := []model.Place{{Name: "Eiffel Tower", Address: "Champ de Mars"}}
	if err := s.SavePlaces("Paris, France", spot, model.Europe, 5); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.SavePlaces("Paris, France", spot, model.Europe, 5); err != nil {
		t.Fatalf("second save: %v", err)
	}

	// Append-only: identical tuples become two rows, not one.
	if n := s.Count(); n != 2 {
		t.Errorf("expected 2 rows after duplicate insert, got %d", n)
	}
}

func TestSavePlacesCap(t *testing.T) {
	s := testStore(t)

	var spots []model.Place
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		spots = append(spots, model.Place{Name: name, Address: "somewhere"})
	}

	if err := s.SavePlaces("Lagos, Nigeria", spots, model.Africa, 3); err != nil {
		t.Fatalf("saving places: %v", err)
	}
	if n := s.Count(); n != 3 {
		t.Errorf("expected cap of 3 rows, got %d", n)
	}
}

func TestByContinentEmptyLabels(t *testing.T) {
	s := testStore(t)

	if err := s.SavePlaces("Paris, France", []model.Place{{Name: "Louvre", Address: "Paris"}}, model.Europe, 5); err != nil {
		t.Fatalf("saving places: %v", err)
	}

	// A typo resolves to no labels, which must match nothing.
	recs, err := s.ByContinent(geo.ResolveContinent("eurpoe"))
	if err != nil {
		t.Fatalf("querying: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no rows, got %d", len(recs))
	}
}

func TestByContinentAmericaMatchesBoth(t *testing.T) {
	s := testStore(t)

	if err := s.SavePlaces("Austin, TX", []model.Place{{Name: "Barton Springs", Address: "Austin"}}, model.NorthAmerica, 5); err != nil {
		t.Fatalf("saving places: %v", err)
	}
	if err := s.SavePlaces("Cusco, Peru", []model.Place{{Name: "Sacsayhuaman", Address: "Cusco"}}, model.SouthAmerica, 5); err != nil {
		t.Fatalf("saving places: %v", err)
	}
	if err := s.SavePlaces("Paris, France", []model.Place{{Name: "Louvre", Address: "Paris"}}, model.Europe, 5); err != nil {
		t.Fatalf("saving places: %v", err)
	}

	recs, err := s.ByContinent(geo.ResolveContinent("america"))
	if err != nil {
		t.Fatalf("querying: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 rows across both Americas, got %d", len(recs))
	}
	// Ordered by destination.
	if recs[0].Destination != "Austin, TX" || recs[1].Destination != "Cusco, Peru" {
		t.Errorf("unexpected order: %q, %q", recs[0].Destination, recs[1].Destination)
	}
}

func TestAllOrdering(t *testing.T) {
	s := testStore(t)

	if err := s.SavePlaces("Sydney, Australia", []model.Place{{Name: "Opera House", Address: "Sydney"}}, model.Australia, 5); err != nil {
		t.Fatalf("saving places: %v", err)
	}
	if err := s.SavePlaces("Nairobi, Kenya", []model.Place{{Name: "Giraffe Centre", Address: "Nairobi"}}, model.Africa, 5); err != nil {
		t.Fatalf("saving places: %v", err)
	}

	all, err := s.All()
	if err != nil {
		t.Fatalf("querying all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(all))
	}
	// Africa sorts before Australia.
	if all[0].Continent != model.Africa || all[1].Continent != model.Australia {
		t.Errorf("unexpected continent order: %q, %q", all[0].Continent, all[1].Continent)
	}
}

func TestCountByContinent(t *testing.T) {
	s := testStore(t)

	if got := s.Count(); got != 0 {
		t.Errorf("expected empty store, got %d rows", got)
	}

	if err := s.SavePlaces("Osaka, Japan", []model.Place{
		{Name: "Osaka Castle", Address: "Osaka"},
		{Name: "Dotonbori", Address: "Osaka"},
	}, model.Asia, 5); err != nil {
		t.Fatalf("saving places: %v", err)
	}

	counts := s.CountByContinent()
	if counts[model.Asia] != 2 {
		t.Errorf("expected 2 Asia rows, got %d", counts[model.Asia])
	}
	if len(counts) != 1 {
		t.Errorf("expected 1 continent, got %d", len(counts))
	}
}
