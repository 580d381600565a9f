package store

import (
	"fmt"
	"strings"

	"github.com/tripscout/trip-scout/internal/model"
)

// FormatAll renders recommendations grouped by continent, then
// destination. Input is expected in (continent, destination, name) order,
// which is what All returns.
func FormatAll(recs []model.Recommendation) string {
	if len(recs) == 0 {
		return "No recommendations found."
	}

	var b strings.Builder
	var curContinent model.Continent
	var curDest string
	for _, r := range recs {
		if r.Continent != curContinent {
			if curContinent != "" {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "=== %s ===\n", r.Continent)
			curContinent = r.Continent
			curDest = ""
		}
		if r.Destination != curDest {
			fmt.Fprintf(&b, "%s:\n", r.Destination)
			curDest = r.Destination
		}
		fmt.Fprintf(&b, "  - %s (%s)\n", r.Name, r.Address)
	}

	return strings.TrimRight(b.String(), "\n")
}

// FormatByContinent renders the results of one continent query, grouped
// by destination. The empty-result message echoes the user's input with
// its original casing intact.
func FormatByContinent(input string, recs []model.Recommendation) string {
	if len(recs) == 0 {
		return fmt.Sprintf("No recommendations found for %s.", input)
	}

	var b strings.Builder
	var curDest string
	for _, r := range recs {
		if r.Destination != curDest {
			fmt.Fprintf(&b, "%s:\n", r.Destination)
			curDest = r.Destination
		}
		fmt.Fprintf(&b, "  - %s (%s)\n", r.Name, r.Address)
	}

	return strings.TrimRight(b.String(), "\n")
}
