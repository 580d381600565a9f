package advisor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tripscout/trip-scout/internal/model"
)

// ErrBadFormat reports a suggestion that does not follow the
// name-then-coordinates contract.
var ErrBadFormat = errors.New("malformed suggestion")

// ParseSuggestion extracts the destination name and coordinate pair from a
// suggestion. The first line is the destination, the second is "lat, lon";
// anything after the second line is ignored. Coordinates are passed
// through without range checks; callers reject or tolerate out-of-range
// values themselves.
func ParseSuggestion(text string) (string, model.Coordinate, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return "", model.Coordinate{}, fmt.Errorf("%w: expected at least two lines, got %d", ErrBadFormat, len(lines))
	}

	destination := strings.TrimSpace(lines[0])

	coordLine := strings.TrimSpace(lines[1])
	parts := strings.Split(coordLine, ",")
	if len(parts) != 2 {
		return "", model.Coordinate{}, fmt.Errorf("%w: expected \"lat, lon\" on line two, got %q", ErrBadFormat, coordLine)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return "", model.Coordinate{}, fmt.Errorf("%w: latitude %q is not a number", ErrBadFormat, strings.TrimSpace(parts[0]))
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return "", model.Coordinate{}, fmt.Errorf("%w: longitude %q is not a number", ErrBadFormat, strings.TrimSpace(parts[1]))
	}

	return destination, model.Coordinate{Lat: lat, Lon: lon}, nil
}
