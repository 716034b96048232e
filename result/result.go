// Package result holds ParsingResult, the mutable accumulator the core
// parser fills in as it walks a token stream. It has no behavior beyond
// field assignment and a small post-parse normalization pass.
package result

import "github.com/imarsman/fuzzytime/info"

// ParsingResult accumulates every field the core parser may assign during
// one parse. Each Has* flag distinguishes "assigned" from the int zero
// value; fields are assigned at most once except where the parser's rules
// explicitly allow an overwrite (AM/PM hour normalization, tzname/tzoffset
// interplay).
type ParsingResult struct {
	Year, Month, Day                     int
	HasYear, HasMonth, HasDay            bool
	Hour, Minute, Second, Microsecond    int
	HasHour, HasMinute, HasSecond, HasMicrosecond bool
	Weekday                              int
	HasWeekday                           bool
	AMPM                                 bool
	HasAMPM                              bool
	TZName                               string
	HasTZName                            bool
	TZOffset                             int
	HasTZOffset                          bool
	CenturySpecified                     bool
	AnyUnusedTokens                      []string
}

// Validate applies the post-parse normalization rules: two-digit years are
// centered via the ParserInfo's reference year, a bare "Z" or a zero offset
// with no tzname is folded into an explicit UTC, and a nonzero offset paired
// with a UTC-alias tzname is corrected back to zero.
func (r *ParsingResult) Validate(in *info.Info) {
	if r.HasYear && r.Year < 100 && !r.CenturySpecified {
		r.Year = in.ConvertYear(r.Year, false)
	}

	if r.TZName == "Z" || (r.HasTZOffset && r.TZOffset == 0 && !r.HasTZName) {
		r.TZName = "UTC"
		r.HasTZName = true
		r.TZOffset = 0
		r.HasTZOffset = true
	}

	if r.HasTZOffset && r.TZOffset != 0 && r.HasTZName && in.IsUTCZone(r.TZName) {
		r.TZOffset = 0
	}
}
