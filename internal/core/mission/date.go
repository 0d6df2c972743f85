package mission

import (
	"fmt"
	"time"
)

// DateLayout is the wire form launch dates are written in.
const DateLayout = "2006-01-02"

// parseLayout also accepts unpadded month and day, e.g. 2024-1-1.
const parseLayout = "2006-1-2"

// ParseLaunchDate parses a YYYY-MM-DD calendar date into a UTC midnight time.
func ParseLaunchDate(raw string) (time.Time, error) {
	t, err := time.Parse(parseLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return t, nil
}

// FormatLaunchDate renders a launch date in its wire form.
func FormatLaunchDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateRange is an inclusive span of launch dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange parses both bounds of a search range. Both must be valid;
// a reversed range is not an error and simply matches nothing.
func ParseDateRange(from, to string) (DateRange, error) {
	start, err := ParseLaunchDate(from)
	if err != nil {
		return DateRange{}, err
	}
	end, err := ParseLaunchDate(to)
	if err != nil {
		return DateRange{}, err
	}
	return DateRange{From: start, To: end}, nil
}
