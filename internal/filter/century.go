package filter

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/papapumpkin/spectra/internal/periodic"
)

// ErrUnknownCentury is returned by ParseCentury for unrecognized labels.
var ErrUnknownCentury = errors.New("unknown century")

// Century buckets a discovery year. The first millennium is a single bucket;
// from the 11th century on each century is its own bucket.
type Century int

const (
	// CenturyBCE holds every year at or before zero.
	CenturyBCE Century = iota
	// CenturyFirstMillennium holds years 1 through 1000.
	CenturyFirstMillennium
	// Century11 through Century21 hold one century each.
	Century11
	Century12
	Century13
	Century14
	Century15
	Century16
	Century17
	Century18
	Century19
	Century20
	Century21
)

const centuryCount = 13

// AllCenturies returns every century bucket in chronological order.
func AllCenturies() []Century {
	out := make([]Century, centuryCount)
	for i := range out {
		out[i] = Century(i)
	}
	return out
}

// Ordinal returns the century number for numbered buckets (11..21), or 0.
func (c Century) Ordinal() int {
	if c < Century11 || c > Century21 {
		return 0
	}
	return int(c-Century11) + 11
}

// Label returns the short display label: "BCE", "1-1000", "11th" ... "21st".
func (c Century) Label() string {
	switch {
	case c == CenturyBCE:
		return "BCE"
	case c == CenturyFirstMillennium:
		return "1-1000"
	case c.Ordinal() > 0:
		return humanize.Ordinal(c.Ordinal())
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (c Century) String() string { return c.Label() }

// CenturyOf classifies a discovery year. Years after 2100 land in the 21st
// century bucket.
func CenturyOf(year int) Century {
	switch {
	case year <= 0:
		return CenturyBCE
	case year <= 1000:
		return CenturyFirstMillennium
	}
	n := (year-1)/100 + 1
	if n > 21 {
		n = 21
	}
	return Century11 + Century(n-11)
}

// ParseCentury accepts a label ("BCE", "1-1000", "18th") or a bare century
// number between 11 and 21. Matching is case-insensitive.
func ParseCentury(s string) (Century, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllCenturies() {
		if strings.ToLower(c.Label()) == norm {
			return c, nil
		}
	}
	if n, err := strconv.Atoi(norm); err == nil && n >= 11 && n <= 21 {
		return Century11 + Century(n-11), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCentury, s)
}

// ParseCenturies parses every label, failing on the first bad one.
// Duplicates are removed and the result is sorted chronologically.
func ParseCenturies(labels []string) ([]Century, error) {
	out := make([]Century, 0, len(labels))
	for _, l := range labels {
		c, err := ParseCentury(l)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// Labels converts centuries back to their labels.
func Labels(centuries []Century) []string {
	out := make([]string, len(centuries))
	for i, c := range centuries {
		out[i] = c.Label()
	}
	return out
}

// ByCenturies builds a check keeping elements discovered in any of the
// given centuries. It reports false when the set is empty, meaning no
// filtering should happen.
func ByCenturies(centuries ...Century) (Check, bool) {
	if len(centuries) == 0 {
		return Check{}, false
	}
	set := make(map[Century]bool, len(centuries))
	for _, c := range centuries {
		set[c] = true
	}
	return Check{
		Name: "century",
		Fn: func(el periodic.Element) bool {
			return set[CenturyOf(el.Year)]
		},
	}, true
}
