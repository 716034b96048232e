package parser

import "time"

// Options configures one Parse call. The zero value parses in strict mode
// with no dayfirst/yearfirst override and a default of the current local
// time at midnight.
type Options struct {
	// DayFirst and YearFirst override the ParserInfo defaults when non-nil.
	DayFirst  *bool
	YearFirst *bool

	// Fuzzy, when true, turns unrecognized tokens from a hard error into a
	// skip.
	Fuzzy bool
	// FuzzyWithTokens implies Fuzzy and additionally populates
	// Result.SkippedTokens.
	FuzzyWithTokens bool

	// Default supplies any year/month/day/hour/minute/second/microsecond
	// the input did not specify. The zero Time means "now, at midnight".
	Default time.Time

	// IgnoreTZ, when true, forces Result.Offset to nil regardless of what
	// was parsed.
	IgnoreTZ bool

	// TZInfos maps an uppercase timezone name to its offset in seconds
	// east of UTC, for names the built-in UTC/GMT/Z table doesn't cover.
	TZInfos map[string]int
}

// Result is what one Parse call produces.
type Result struct {
	Time time.Time
	// Offset is the parsed fixed UTC offset in seconds east of UTC, or nil
	// if none was determined.
	Offset *int
	// SkippedTokens holds every token the parser skipped over, in order,
	// when Options.FuzzyWithTokens is set; nil otherwise.
	SkippedTokens []string
}
