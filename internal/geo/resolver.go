package geo

import (
	"strings"

	"github.com/tripscout/trip-scout/internal/model"
)

// synonyms maps lowercased user input to the stored labels it should
// search. "america" is deliberately ambiguous and searches both Americas;
// "oceania" maps onto the Australia box the classifier uses.
var synonyms = map[string][]model.Continent{
	"america":       {model.NorthAmerica, model.SouthAmerica},
	"north america": {model.NorthAmerica},
	"south america": {model.SouthAmerica},
	"europe":        {model.Europe},
	"africa":        {model.Africa},
	"asia":          {model.Asia},
	"australia":     {model.Australia},
	"oceania":       {model.Australia},
	"antarctica":    {model.Antarctica},
}

// ResolveContinent turns a user-typed continent name into the set of
// stored labels to search. Matching is case-insensitive; input that is
// neither a known synonym nor a canonical label resolves to nil rather
// than an error, and the caller reports an empty result.
func ResolveContinent(input string) []model.Continent {
	key := strings.ToLower(strings.TrimSpace(input))
	if labels, ok := synonyms[key]; ok {
		return labels
	}

	// Stored continent values are always drawn from the closed label set,
	// so matching against it is the same as matching against stored rows.
	for _, c := range model.Continents {
		if strings.EqualFold(string(c), key) {
			return []model.Continent{c}
		}
	}

	return nil
}
