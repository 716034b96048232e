// Package parser implements the token-walking core of the fuzzy date/time
// parser: given the token stream the lex package produces, it consults
// ParserInfo's word tables to classify each token (weekday, month, AM/PM,
// timezone name, signed offset, filler) and folds ambiguous bare integers
// into a YMD resolver, before handing the finished ParsingResult to the
// assembler for final calendar synthesis.
package parser

import (
	"errors"
	"time"

	"github.com/imarsman/fuzzytime/info"
	"github.com/imarsman/fuzzytime/lex"
	"github.com/imarsman/fuzzytime/result"
	"github.com/imarsman/fuzzytime/ymd"
)

// Parse constructs a Parser with the default English word tables, using
// the current year as the two-digit-year reference, and parses timestr.
// It is the package-level convenience entry point; callers that need a
// fixed reference year (tests, reproducible batch processing) should build
// a Parser directly with New(info.New(year)).
func Parse(timestr string, opts Options) (Result, error) {
	return New(info.New(time.Now().Year())).Parse(timestr, opts)
}

// Tokenize exposes the lexer for inspection and testing.
func Tokenize(timestr string) []string {
	toks := lex.Tokenize(timestr)
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = string(t)
	}
	return out
}

// Parser walks a token stream against one immutable ParserInfo. It holds
// no per-parse state, so a single Parser may serve any number of
// concurrent Parse calls.
type Parser struct {
	Info *info.Info
}

// New returns a Parser using info's word tables and ambiguity defaults.
func New(in *info.Info) *Parser {
	return &Parser{Info: in}
}

// Parse runs the full pipeline: lex, walk, resolve YMD, validate, and
// assemble against opts.Default (or the current local time at midnight
// when Default is the zero Time).
func (p *Parser) Parse(timestr string, opts Options) (Result, error) {
	fuzzy := opts.Fuzzy || opts.FuzzyWithTokens

	dayFirst := p.Info.DayFirst
	if opts.DayFirst != nil {
		dayFirst = *opts.DayFirst
	}
	yearFirst := p.Info.YearFirst
	if opts.YearFirst != nil {
		yearFirst = *opts.YearFirst
	}

	res := &result.ParsingResult{}
	y := ymd.New()

	toks := lex.Tokenize(timestr)
	var skippedIdx []int

	i := 0
	for i < len(toks) {
		var err error
		i, err = p.step(toks, i, fuzzy, y, res, &skippedIdx)
		if err != nil {
			return Result{}, err
		}
		i++
	}

	ymdResult, err := y.Resolve(yearFirst, dayFirst)
	if err != nil {
		switch {
		case errors.Is(err, ymd.ErrAmbiguous):
			return Result{}, newInternal(ValueError, err.Error())
		case errors.Is(err, ymd.ErrEarlyResolve):
			return Result{}, newInternal(YMDEarlyResolve, err.Error())
		default:
			return Result{}, newErr(InvalidParseResult, err.Error())
		}
	}
	res.CenturySpecified = y.CenturySpecified()
	res.Year, res.HasYear = ymdResult.Year, ymdResult.HasYear
	res.Month, res.HasMonth = ymdResult.Month, ymdResult.HasMonth
	res.Day, res.HasDay = ymdResult.Day, ymdResult.HasDay

	if res.HasMonth && (res.Month < 1 || res.Month > 12) {
		return Result{}, newErr(InvalidMonth, "")
	}
	if res.HasHour && (res.Hour < 0 || res.Hour > 23) {
		return Result{}, newErr(InvalidHour, "")
	}

	res.Validate(p.Info)

	def := opts.Default
	if def.IsZero() {
		now := time.Now()
		def = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	if res.HasDay && (res.Day < 1) {
		return Result{}, newErr(InvalidDay, "")
	}

	naive := assembleNaive(res, def)

	out := Result{Time: naive}
	if !opts.IgnoreTZ {
		off, err := assembleOffset(res, opts.TZInfos)
		if err != nil {
			return Result{}, err
		}
		out.Offset = off
	}
	if opts.FuzzyWithTokens {
		skipped := make([]string, len(skippedIdx))
		for j, idx := range skippedIdx {
			skipped[j] = string(toks[idx])
		}
		out.SkippedTokens = skipped
	}

	return out, nil
}

// step classifies toks[i] and dispatches to the matching handler, returning
// the index the walk should resume from (the caller advances by one more
// after step returns, matching the reference parser's "advance by one after
// every handler, some handlers advance further" structure).
func (p *Parser) step(toks []lex.Token, i int, fuzzy bool, y *ymd.YMD, res *result.ParsingResult, skippedIdx *[]int) (int, error) {
	tok := toks[i]
	text := string(tok)
	in := p.Info

	if _, derr := toDecimal(text); derr == nil && looksNumeric(tok) {
		return parseNumericToken(toks, i, in, y, res, fuzzy)
	}

	if wd, ok := in.Weekday(text); ok {
		if res.HasWeekday {
			return i, newErr(AmbiguousWeekday, text)
		}
		res.Weekday, res.HasWeekday = wd, true
		return i, nil
	}

	if mv, ok := in.Month(text); ok {
		if err := y.Append(mv, text, ymd.Month); err != nil {
			return i, newInternal(ValueError, err.Error())
		}

		if i+1 < len(toks) {
			if toks[i+1].Is('-') || toks[i+1].Is('/') {
				sep := toks[i+1]
				if i+2 < len(toks) {
					if v, err := parseDigits(string(toks[i+2])); err == nil {
						_ = y.Append(v, string(toks[i+2]), ymd.NoLabel)
					}
				}
				if i+3 < len(toks) && toks[i+3] == sep {
					if v, err := parseDigits(string(toks[i+4])); err == nil {
						_ = y.Append(v, string(toks[i+4]), ymd.NoLabel)
					}
					i += 2
				}
				i += 2
			} else if i+4 < len(toks) && toks[i+1] == toks[i+3] && toks[i+3].IsSpace() &&
				in.IsPertain(string(toks[i+2])) {
				if v, err := parseDigits(string(toks[i+4])); err == nil {
					year := in.ConvertYear(v, false)
					if err := y.Append(year, string(toks[i+4]), ymd.Year); err != nil {
						return i, newInternal(ValueError, err.Error())
					}
				}
				i += 4
			}
		}
		return i, nil
	}

	if pm, ok := in.AMPM(text); ok {
		valid, ampmErr := ampmValid(res.HasHour, res.Hour, res.HasAMPM, fuzzy)
		if ampmErr != nil {
			return i, ampmErr
		}
		if valid {
			res.Hour = adjustAMPM(res.Hour, pm)
			res.HasHour = true
			res.AMPM, res.HasAMPM = pm, true
		} else if fuzzy {
			*skippedIdx = append(*skippedIdx, i)
		}
		return i, nil
	}

	if couldBeTZName(res, text) {
		res.TZName, res.HasTZName = text, true
		if off, ok := in.TZOffset(text); ok {
			res.TZOffset, res.HasTZOffset = off, true
		} else {
			res.HasTZOffset = false
		}

		if i+1 < len(toks) && (toks[i+1].Is('+') || toks[i+1].Is('-')) {
			// GMT+3 means "my time +3 is GMT": invert the sign of the
			// offset that follows before the offset handler below sees it.
			inverted := lex.Token("-")
			if toks[i+1].Is('-') {
				inverted = lex.Token("+")
			}
			toks[i+1] = inverted

			res.HasTZOffset = false
			if in.IsUTCZone(text) {
				res.HasTZName = false
			}
		}
		return i, nil
	}

	if res.HasHour && (tok.Is('+') || tok.Is('-')) {
		return p.offsetAfterHour(toks, i, res)
	}

	if in.IsJump(text) {
		*skippedIdx = append(*skippedIdx, i)
		return i, nil
	}

	if fuzzy {
		*skippedIdx = append(*skippedIdx, i)
		return i, nil
	}
	return i, newErr(UnrecognizedToken, text)
}

// looksNumeric filters out tokens that merely happen to parse as a decimal
// in isolation (apd accepts plain integers and decimals alike) but are not
// what the lexer would ever classify as a numeric or numeric-decimal run,
// such as "Inf" or "NaN", which apd reads as special values.
func looksNumeric(tok lex.Token) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// offsetAfterHour parses one of the three "+HHMM" / "+HH:MM" / "+HH" shapes
// following a sign token once an hour has already been assigned, then looks
// for a trailing "(TZNAME)" to attach.
func (p *Parser) offsetAfterHour(toks []lex.Token, i int, res *result.ParsingResult) (int, error) {
	in := p.Info
	signal := 1
	if toks[i].Is('-') {
		signal = -1
	}

	if i+1 >= len(toks) {
		return i, newErr(UnrecognizedToken, string(toks[i]))
	}

	var hourOffset, minOffset int
	var err error

	switch {
	case len(toks[i+1]) == 4:
		hourOffset, err = parseDigits(string(toks[i+1])[0:2])
		if err != nil {
			return i, err
		}
		minOffset, err = parseDigits(string(toks[i+1])[2:4])
		if err != nil {
			return i, err
		}
	case i+2 < len(toks) && toks[i+2].Is(':'):
		hourOffset, err = parseDigits(string(toks[i+1]))
		if err != nil {
			return i, err
		}
		minOffset, err = parseDigits(string(toks[i+3]))
		if err != nil {
			return i, err
		}
		i += 2
	case len(toks[i+1]) <= 2:
		hourOffset, err = parseDigits(string(toks[i+1]))
		if err != nil {
			return i, err
		}
		minOffset = 0
	default:
		return i, newErr(UnrecognizedToken, string(toks[i+1]))
	}

	res.TZOffset = signal * (hourOffset*3600 + minOffset*60)
	res.HasTZOffset = true

	// The offset just assigned must not disqualify the name that follows it.
	probe := *res
	probe.HasTZOffset = false
	if i+5 < len(toks) && in.IsJump(string(toks[i+2])) && toks[i+3].Is('(') &&
		toks[i+5].Is(')') && len(toks[i+4]) >= 3 && couldBeTZName(&probe, string(toks[i+4])) {
		res.TZName, res.HasTZName = string(toks[i+4]), true
		i += 4
	}

	i++
	return i, nil
}

// couldBeTZName reports whether text is a plausible timezone abbreviation:
// an hour must already be set, no tzname/tzoffset yet, length at most 5,
// and every character an ASCII uppercase letter.
func couldBeTZName(res *result.ParsingResult, text string) bool {
	if !res.HasHour || res.HasTZName || res.HasTZOffset {
		return false
	}
	if len(text) == 0 || len(text) > 5 {
		return false
	}
	for _, r := range text {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// ampmValid mirrors the reference parser's ampm_valid: in fuzzy mode a PM
// marker with no confirmed hour is simply not valid (so it gets skipped
// rather than erroring); otherwise a missing or out-of-range hour is a hard
// error in strict mode.
func ampmValid(hasHour bool, hour int, hasAMPM bool, fuzzy bool) (bool, error) {
	if !hasHour {
		if fuzzy {
			return false, nil
		}
		return false, newErr(AmPmWithoutHour, "")
	}
	if hour < 0 || hour > 12 {
		if fuzzy {
			return false, nil
		}
		return false, newErr(InvalidHour, "")
	}
	if hasAMPM {
		return false, nil
	}
	return true, nil
}
