package parser

import (
	"time"

	"github.com/imarsman/fuzzytime/gregorian"
	"github.com/imarsman/fuzzytime/result"
)

// assembleNaive combines a ParsingResult with a default date-time to
// produce the final, zone-less calendar instant: every field the parser
// did not assign falls back to the matching field of def.
func assembleNaive(res *result.ParsingResult, def time.Time) time.Time {
	y := def.Year()
	if res.HasYear {
		y = res.Year
	}
	m := int(def.Month())
	if res.HasMonth {
		m = res.Month
	}

	d := def.Day()
	if res.HasDay {
		d = res.Day
	}
	if d > gregorian.DaysInMonth(y, m) {
		d = gregorian.DaysInMonth(y, m)
	}

	if res.HasWeekday && !res.HasDay {
		current := gregorian.Weekday(y, m, d)
		// ParsingResult.Weekday is 0=Monday..6=Sunday, matching gregorian's
		// convention directly.
		diff := res.Weekday - current
		if diff < 0 {
			diff += 7
		}
		y, m, d = gregorian.AddDays(y, m, d, diff)
	}

	h := def.Hour()
	if res.HasHour {
		h = res.Hour
	}
	min := def.Minute()
	if res.HasMinute {
		min = res.Minute
	}
	sec := def.Second()
	if res.HasSecond {
		sec = res.Second
	}
	micro := def.Nanosecond() / 1000
	if res.HasMicrosecond {
		micro = res.Microsecond
	}

	return time.Date(y, time.Month(m), d, h, min, sec, micro*1000, time.UTC)
}

// assembleOffset determines the fixed UTC offset, in seconds east, implied
// by the parsed tzoffset/tzname, consulting tzinfos for any name the parser
// didn't already resolve via the UTC-alias table. Returns nil if no offset
// could be determined, which is not itself an error: a bare unrecognized
// tzname is treated as no-offset, and nothing is logged.
func assembleOffset(res *result.ParsingResult, tzinfos map[string]int) (*int, error) {
	if res.HasTZOffset {
		off := res.TZOffset
		return &off, nil
	}
	if !res.HasTZName {
		return nil, nil
	}
	if off, ok := tzinfos[res.TZName]; ok {
		return &off, nil
	}
	// Recognized-but-unmapped tzname: not fatal, just unresolved.
	return nil, nil
}
