package geo

import "github.com/tripscout/trip-scout/internal/model"

// rule pairs a continent label with its bounding-box predicate.
type rule struct {
	label model.Continent
	match func(lat, lon float64) bool
}

// rules is evaluated top to bottom, first match wins. Several boxes
// overlap (North America's high-latitude Pacific box is identical to one
// of Asia's, and Australia's box covers open ocean), so the order here is
// load-bearing, not cosmetic.
var rules = []rule{
	{model.NorthAmerica, func(lat, lon float64) bool {
		return (lon >= -168 && lon <= -52 && lat >= 7 && lat <= 72) ||
			(lon >= -180 && lon <= -130 && lat >= 51 && lat <= 72)
	}},
	{model.SouthAmerica, func(lat, lon float64) bool {
		return lon >= -82 && lon <= -34 && lat >= -56 && lat <= 13
	}},
	{model.Europe, func(lat, lon float64) bool {
		return lon >= -25 && lon <= 60 && lat >= 35 && lat <= 75
	}},
	{model.Africa, func(lat, lon float64) bool {
		return lon >= -20 && lon <= 55 && lat >= -35 && lat <= 38
	}},
	{model.Asia, func(lat, lon float64) bool {
		return (lon >= 25 && lon <= 180 && lat >= 5 && lat <= 75) ||
			(lon >= 100 && lon <= 180 && lat >= -10 && lat <= 75) ||
			(lon >= -180 && lon <= -130 && lat >= 51 && lat <= 72)
	}},
	// The second disjunct has no upper longitude bound, so longitudes past
	// 180 still land in Australia. Kept as-is; the tests pin it down.
	{model.Australia, func(lat, lon float64) bool {
		return (lon >= 110 && lon <= 180 && lat >= -50 && lat <= 10) ||
			(lon >= 130 && lat >= -50 && lat <= -10)
	}},
	{model.Antarctica, func(lat, lon float64) bool {
		return lat >= -90 && lat <= -60
	}},
}

// Classify maps a coordinate to a continent using static bounding boxes.
// It is an approximation, not a geopolitical authority: every finite input
// yields a label, with Unknown for points no box covers (mostly open ocean).
func Classify(lat, lon float64) model.Continent {
	for _, r := range rules {
		if r.match(lat, lon) {
			return r.label
		}
	}
	return model.Unknown
}
