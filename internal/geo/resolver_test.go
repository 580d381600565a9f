package geo

import (
	"reflect"
	"testing"

	"github.com/tripscout/trip-scout/internal/model"
)

func TestResolveContinent(t *testing.T) {
	tests := []struct {
		input string
		want  []model.Continent
	}{
		{"europe", []model.Continent{model.Europe}},
		{"EUROPE", []model.Continent{model.Europe}},
		{"Europe", []model.Continent{model.Europe}},
		{"  europe  ", []model.Continent{model.Europe}},
		{"america", []model.Continent{model.NorthAmerica, model.SouthAmerica}},
		{"north america", []model.Continent{model.NorthAmerica}},
		{"South America", []model.Continent{model.SouthAmerica}},
		{"oceania", []model.Continent{model.Australia}},
		{"australia", []model.Continent{model.Australia}},
		{"antarctica", []model.Continent{model.Antarctica}},
		{"africa", []model.Continent{model.Africa}},
		{"asia", []model.Continent{model.Asia}},
		// Not in the synonym table, but a canonical label.
		{"unknown", []model.Continent{model.Unknown}},
		{"UNKNOWN", []model.Continent{model.Unknown}},
		// Typos degrade to no match, never an error.
		{"eurpoe", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ResolveContinent(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveContinent(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
