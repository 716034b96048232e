// Package ymd resolves up to three bare integers parsed out of a date-like
// token run (e.g. the "11", "10", "03" in "10/11/03") into year, month, and
// day, honoring any of the three that arrived with an explicit label and
// the caller's dayfirst/yearfirst ambiguity hints for the rest.
package ymd

import (
	"fmt"

	"github.com/imarsman/fuzzytime/gregorian"
)

// Label identifies which calendar field a value was explicitly parsed as,
// e.g. the year in "2003-10-11" or the month in "Oct 11".
type Label int

const (
	// NoLabel means the value's field has not been determined yet.
	NoLabel Label = iota
	Year
	Month
	Day
)

// YMD accumulates up to three integer values awaiting assignment to
// year/month/day, at most one of which may carry each label.
type YMD struct {
	values           []int
	centurySpecified bool
	yIdx, mIdx, dIdx int // -1 if unset
}

// New returns an empty resolver.
func New() *YMD {
	return &YMD{yIdx: -1, mIdx: -1, dIdx: -1}
}

// CenturySpecified reports whether any appended value pinned an explicit
// century, either because its source token was more than two digits long
// or because its value exceeded 100.
func (y *YMD) CenturySpecified() bool {
	return y.centurySpecified
}

// Len returns the number of values accumulated so far.
func (y *YMD) Len() int {
	return len(y.values)
}

// Append records value (parsed from tokenText) with an optional label. A
// token of more than two digits, or a value over 100, is unambiguously a
// year: century_specified is set and the label is forced to Year, which is
// an error if the caller already labeled it Month or Day.
func (y *YMD) Append(value int, tokenText string, label Label) error {
	if len(tokenText) > 2 && isAllDigits(tokenText) {
		y.centurySpecified = true
		switch label {
		case NoLabel, Year:
			label = Year
		default:
			return fmt.Errorf("ymd: invalid label %d for token %q", label, tokenText)
		}
	}

	if value > 100 {
		y.centurySpecified = true
		switch label {
		case NoLabel:
			label = Year
		case Year:
		default:
			return fmt.Errorf("ymd: invalid label %d for token %q", label, tokenText)
		}
	}

	y.values = append(y.values, value)
	idx := len(y.values) - 1

	switch label {
	case Month:
		if y.mIdx != -1 {
			return fmt.Errorf("ymd: month already set")
		}
		y.mIdx = idx
	case Day:
		if y.dIdx != -1 {
			return fmt.Errorf("ymd: day already set")
		}
		y.dIdx = idx
	case Year:
		if y.yIdx != -1 {
			return fmt.Errorf("ymd: year already set")
		}
		y.yIdx = idx
	case NoLabel:
		// unlabeled values are resolved later by Resolve.
	}
	return nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CouldBeDay reports whether val is still plausible as the day-of-month,
// given whatever month and year have already been pinned down.
func (y *YMD) CouldBeDay(val int) bool {
	if y.dIdx != -1 {
		return false
	}
	if y.mIdx == -1 {
		return 1 <= val && val <= 31
	}
	month := y.values[y.mIdx]
	if y.yIdx == -1 {
		return 1 <= val && val <= gregorian.DaysInMonth(2000, month)
	}
	year := y.values[y.yIdx]
	return 1 <= val && val <= gregorian.DaysInMonth(year, month)
}

// Result is the resolved triple; each field is valid only if its Has* flag
// is true.
type Result struct {
	Year, Month, Day          int
	HasYear, HasMonth, HasDay bool
}

// ErrAmbiguous is returned when more than three values were accumulated:
// there is no rule left to assign them.
var ErrAmbiguous = fmt.Errorf("ymd: more than three values")

// ErrEarlyResolve is returned when resolveFromIndices is reached with a
// labeled index that doesn't actually cover every accumulated value, or
// that points past the end of the value list: Resolve was called, or
// computed its indices, before every value had a consistent label.
var ErrEarlyResolve = fmt.Errorf("ymd: resolved before all values were labeled")

// Resolve assigns the accumulated values to year/month/day using whichever
// labels were pinned during Append, breaking any remaining ambiguity with
// yearFirst and dayFirst.
func (y *YMD) Resolve(yearFirst, dayFirst bool) (Result, error) {
	n := len(y.values)

	numLabels := 0
	if y.yIdx != -1 {
		numLabels++
	}
	if y.mIdx != -1 {
		numLabels++
	}
	if y.dIdx != -1 {
		numLabels++
	}

	if (n == numLabels && numLabels > 0) || (n == 3 && numLabels == 2) {
		return y.resolveFromIndices()
	}

	if n > 3 {
		return Result{}, ErrAmbiguous
	}

	switch {
	case (n == 1 || n == 2) && y.mIdx != -1:
		var other int
		if n == 1 {
			other = y.values[0]
		} else {
			other = y.values[1-y.mIdx]
		}
		month := y.values[y.mIdx]
		if other > 31 {
			return Result{Year: other, HasYear: true, Month: month, HasMonth: true}, nil
		}
		return Result{Month: month, HasMonth: true, Day: other, HasDay: true}, nil

	case n == 2 && y.mIdx == -1:
		v0, v1 := y.values[0], y.values[1]
		if v0 > 31 {
			return Result{Year: v0, HasYear: true, Month: v1, HasMonth: true}, nil
		}
		if v1 > 31 {
			return Result{Year: v1, HasYear: true, Month: v0, HasMonth: true}, nil
		}
		if dayFirst && v1 <= 12 {
			return Result{Month: v1, HasMonth: true, Day: v0, HasDay: true}, nil
		}
		return Result{Month: v0, HasMonth: true, Day: v1, HasDay: true}, nil

	case n == 3 && y.mIdx == 0:
		v0, v1, v2 := y.values[0], y.values[1], y.values[2]
		if v1 > 31 {
			return full(v1, v0, v2), nil
		}
		return full(v2, v0, v1), nil

	case n == 3 && y.mIdx == 1:
		v0, v1, v2 := y.values[0], y.values[1], y.values[2]
		if v0 > 31 || (yearFirst && v2 <= 31) {
			return full(v0, v1, v2), nil
		}
		return full(v2, v1, v0), nil

	case n == 3 && y.mIdx == 2:
		v0, v1, v2 := y.values[0], y.values[1], y.values[2]
		if v1 > 31 {
			return full(v2, v1, v0), nil
		}
		return full(v0, v2, v1), nil

	case n == 3 && y.mIdx == -1:
		v0, v1, v2 := y.values[0], y.values[1], y.values[2]
		if v0 > 31 || y.yIdx == 0 || (yearFirst && v1 <= 12 && v2 <= 31) {
			if dayFirst && v2 <= 12 {
				return full(v0, v2, v1), nil
			}
			return full(v0, v1, v2), nil
		}
		if v0 > 12 || (dayFirst && v1 <= 12) {
			return full(v2, v1, v0), nil
		}
		return full(v2, v0, v1), nil
	}

	return Result{}, nil
}

func full(year, month, day int) Result {
	return Result{Year: year, HasYear: true, Month: month, HasMonth: true, Day: day, HasDay: true}
}

// resolveFromIndices handles the case where every value already carries a
// label, or exactly three values were collected with two of them labeled
// (the third label, and the one remaining unused value position, pair off
// by elimination).
func (y *YMD) resolveFromIndices() (Result, error) {
	yIdx, mIdx, dIdx := y.yIdx, y.mIdx, y.dIdx

	if len(y.values) == 3 {
		numLabels := 0
		for _, idx := range []int{yIdx, mIdx, dIdx} {
			if idx != -1 {
				numLabels++
			}
		}
		if numLabels == 2 {
			used := map[int]bool{}
			if yIdx != -1 {
				used[yIdx] = true
			}
			if mIdx != -1 {
				used[mIdx] = true
			}
			if dIdx != -1 {
				used[dIdx] = true
			}
			missingPos := -1
			for _, p := range []int{0, 1, 2} {
				if !used[p] {
					missingPos = p
					break
				}
			}
			switch {
			case yIdx == -1:
				yIdx = missingPos
			case mIdx == -1:
				mIdx = missingPos
			default:
				dIdx = missingPos
			}
		}
	}

	var r Result
	if yIdx != -1 {
		if yIdx >= len(y.values) {
			return Result{}, fmt.Errorf("%w: year index out of range", ErrEarlyResolve)
		}
		r.Year, r.HasYear = y.values[yIdx], true
	}
	if mIdx != -1 {
		if mIdx >= len(y.values) {
			return Result{}, fmt.Errorf("%w: month index out of range", ErrEarlyResolve)
		}
		r.Month, r.HasMonth = y.values[mIdx], true
	}
	if dIdx != -1 {
		if dIdx >= len(y.values) {
			return Result{}, fmt.Errorf("%w: day index out of range", ErrEarlyResolve)
		}
		r.Day, r.HasDay = y.values[dIdx], true
	}

	labeled := 0
	for _, idx := range []int{yIdx, mIdx, dIdx} {
		if idx != -1 {
			labeled++
		}
	}
	if labeled != len(y.values) {
		return Result{}, ErrEarlyResolve
	}

	return r, nil
}
