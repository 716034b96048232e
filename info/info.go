// Package info holds the read-only word tables and ambiguity hints the
// parser consults while walking a token stream: which words name weekdays,
// months, AM/PM markers, UTC aliases, and which are filler the parser
// should silently step over. All lookups are case-insensitive.
package info

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var caseFold = cases.Lower(language.Und)

// Info is a set of lookup tables plus the two ambiguity hints
// (DayFirst, YearFirst) and the reference year/century used to center
// two-digit years. After New, only SetTZOffset changes it. A zero Info is
// not usable; construct with New.
type Info struct {
	DayFirst  bool
	YearFirst bool

	Year    int
	Century int

	weekday map[string]int
	months  map[string]int
	hms     map[string]int
	ampm    map[string]bool
	utczone map[string]bool
	jump    map[string]bool
	pertain map[string]bool
	tzoffset map[string]int
}

// New returns the default English word tables, centered on referenceYear
// for two-digit-year resolution.
func New(referenceYear int) *Info {
	in := &Info{
		Year:    referenceYear,
		Century: referenceYear / 100 * 100,
		weekday: map[string]int{},
		months:  map[string]int{},
		hms:     map[string]int{},
		ampm:    map[string]bool{},
		utczone: map[string]bool{},
		jump:    map[string]bool{},
		pertain: map[string]bool{},
		tzoffset: map[string]int{},
	}

	fillIndexed(in.weekday, [][]string{
		{"mon", "monday"},
		{"tue", "tues", "tuesday"},
		{"wed", "wednesday"},
		{"thu", "thurs", "thursday"},
		{"fri", "friday"},
		{"sat", "saturday"},
		{"sun", "sunday"},
	}, 0)

	fillIndexed(in.months, [][]string{
		{"jan", "january"},
		{"feb", "february"},
		{"mar", "march"},
		{"apr", "april"},
		{"may"},
		{"jun", "june"},
		{"jul", "july"},
		{"aug", "august"},
		{"sep", "sept", "september"},
		{"oct", "october"},
		{"nov", "november"},
		{"dec", "december"},
	}, 1)

	fillIndexed(in.hms, [][]string{
		{"h", "hour", "hours"},
		{"m", "minute", "minutes"},
		{"s", "second", "seconds"},
	}, 0)

	in.ampm["am"] = false
	in.ampm["a"] = false
	in.ampm["pm"] = true
	in.ampm["p"] = true

	for _, w := range []string{"utc", "gmt", "z"} {
		in.utczone[w] = true
	}

	for _, w := range []string{
		" ", ".", ",", ";", "-", "/", "'", "at", "on", "and", "ad", "m", "t",
		"of", "st", "nd", "rd", "th",
	} {
		in.jump[w] = true
	}

	in.pertain["of"] = true

	return in
}

func fillIndexed(m map[string]int, groups [][]string, base int) {
	for i, group := range groups {
		for _, w := range group {
			m[w] = i + base
		}
	}
}

func lower(s string) string {
	return caseFold.String(s)
}

// IsJump reports whether s is a filler word or single-character separator
// that the core parser should skip silently.
func (in *Info) IsJump(s string) bool {
	return in.jump[lower(s)]
}

// Weekday returns the 0=Monday..6=Sunday index for s, if s names a weekday.
func (in *Info) Weekday(s string) (int, bool) {
	v, ok := in.weekday[lower(s)]
	return v, ok
}

// Month returns the 1-based month index for s, if s names a month.
func (in *Info) Month(s string) (int, bool) {
	v, ok := in.months[lower(s)]
	return v, ok
}

// HMS returns 0 (hour), 1 (minute), or 2 (second) for s, if s is an
// hour/minute/second unit word.
func (in *Info) HMS(s string) (int, bool) {
	v, ok := in.hms[lower(s)]
	return v, ok
}

// AMPM returns false for an AM marker and true for a PM marker, if s is one.
func (in *Info) AMPM(s string) (bool, bool) {
	v, ok := in.ampm[lower(s)]
	return v, ok
}

// IsPertain reports whether s is a word like "of" that links a month name
// to a following bare year ("Jan of 99").
func (in *Info) IsPertain(s string) bool {
	return in.pertain[lower(s)]
}

// IsUTCZone reports whether s is one of the recognized UTC aliases
// (UTC, GMT, Z).
func (in *Info) IsUTCZone(s string) bool {
	return in.utczone[lower(s)]
}

// SetTZOffset registers name (case-insensitively) as a timezone name
// mapping to the given number of seconds east of UTC, for use by TZOffset.
func (in *Info) SetTZOffset(name string, seconds int) {
	in.tzoffset[lower(name)] = seconds
}

// TZOffset returns the number of seconds east of UTC registered for name,
// or 0 and true for any UTC alias. The second return is false if name is
// neither a UTC alias nor a registered offset.
func (in *Info) TZOffset(name string) (int, bool) {
	if in.IsUTCZone(name) {
		return 0, true
	}
	v, ok := in.tzoffset[lower(name)]
	return v, ok
}

// ConvertYear centers a possibly two-digit year within fifty years of the
// reference year: if y is already century-specified (four digits, or the
// caller already knows the century), it is returned unchanged. Otherwise
// the configured century is added, and the result is moved back a hundred
// years if that lands it fifty or more years after the reference year, or
// forward a hundred years if it lands more than fifty years before it.
func (in *Info) ConvertYear(y int, centurySpecified bool) int {
	if y < 100 && !centurySpecified {
		y += in.Century
		if y >= in.Year+50 {
			y -= 100
		} else if y < in.Year-50 {
			y += 100
		}
	}
	return y
}
