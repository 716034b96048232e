package parser

import (
	"strings"

	"github.com/JohnCGriffin/overflow"
	"github.com/cockroachdb/apd"

	"github.com/imarsman/fuzzytime/info"
	"github.com/imarsman/fuzzytime/lex"
	"github.com/imarsman/fuzzytime/result"
	"github.com/imarsman/fuzzytime/ymd"
)

// parseDigits converts a run of ASCII digits to an int using checked
// arithmetic, so a pathologically long digit run fails cleanly instead of
// silently wrapping.
func parseDigits(s string) (int, error) {
	n := 0
	ok := true
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, newInternal(InvalidInteger, s)
		}
		n, ok = overflow.Mul(n, 10)
		if !ok {
			return 0, newInternal(InvalidInteger, s)
		}
		n, ok = overflow.Add(n, int(r-'0'))
		if !ok {
			return 0, newInternal(InvalidInteger, s)
		}
	}
	return n, nil
}

// toDecimal parses s as an exact decimal value.
func toDecimal(s string) (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, newInternal(InvalidDecimal, s)
	}
	return d, nil
}

var (
	decimalCtx = apd.BaseContext.WithPrecision(40)
	decimalOne = apd.New(1, 0)
	decimalSixty = apd.New(60, 0)
)

// decimalFloorInt returns the integer part of d, truncated toward zero.
// d is always non-negative in this package's usage, so truncation and
// floor coincide.
func decimalFloorInt(d *apd.Decimal) (int, error) {
	intPart := new(apd.Decimal)
	if _, err := decimalCtx.QuoInteger(intPart, d, decimalOne); err != nil {
		return 0, newInternal(InvalidDecimal, d.String())
	}
	v, err := intPart.Int64()
	if err != nil {
		return 0, newInternal(InvalidDecimal, d.String())
	}
	return int(v), nil
}

// decimalFrac returns d minus its truncated integer part.
func decimalFrac(d *apd.Decimal) (*apd.Decimal, error) {
	intPart := new(apd.Decimal)
	if _, err := decimalCtx.QuoInteger(intPart, d, decimalOne); err != nil {
		return nil, newInternal(InvalidDecimal, d.String())
	}
	frac := new(apd.Decimal)
	if _, err := decimalCtx.Sub(frac, d, intPart); err != nil {
		return nil, newInternal(InvalidDecimal, d.String())
	}
	return frac, nil
}

// fracTimesSixty computes floor(60 * frac) exactly, the way a fractional
// hour or minute is split into its whole-unit remainder. apd's Mul is exact
// for terminating decimals, so "0.5 * 60" is precisely 30, never 29.999999.
func fracTimesSixty(frac *apd.Decimal) (int, error) {
	product := new(apd.Decimal)
	if _, err := decimalCtx.Mul(product, frac, decimalSixty); err != nil {
		return 0, newInternal(InvalidDecimal, frac.String())
	}
	return decimalFloorInt(product)
}

// parseMinSec splits a decimal HH:MM-style minute value into its integer
// minute and, if the value had a fractional remainder, a derived second.
func parseMinSec(value *apd.Decimal) (minute int, second *int, err error) {
	minute, err = decimalFloorInt(value)
	if err != nil {
		return 0, nil, err
	}
	frac, err := decimalFrac(value)
	if err != nil {
		return 0, nil, err
	}
	if frac.Sign() != 0 {
		s, err := fracTimesSixty(frac)
		if err != nil {
			return 0, nil, err
		}
		second = &s
	}
	return minute, second, nil
}

// parseFracSeconds splits "SS" or "SS.ffffff" into integer seconds and
// microseconds, padding the fractional digits with trailing zeros (or
// truncating them) to six places, so ".5" is 500000 microseconds.
func parseFracSeconds(s string) (seconds, micro int, err error) {
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart := s[:dot], s[dot+1:]
		seconds, err = parseDigits(intPart)
		if err != nil {
			return 0, 0, err
		}
		for len(fracPart) < 6 {
			fracPart += "0"
		}
		fracPart = fracPart[:6]
		micro, err = parseDigits(fracPart)
		if err != nil {
			return 0, 0, err
		}
		return seconds, micro, nil
	}
	seconds, err = parseDigits(s)
	return seconds, 0, err
}

// findHMSIndex looks for an hour/minute/second unit word adjacent to idx,
// at idx+1, idx+2 (if separated by a single space), idx-1, or idx-2 (if the
// value is the last token and separated by a space). Returns the token
// index and true if one was found.
func findHMSIndex(toks []lex.Token, idx int, in *info.Info) (int, bool) {
	n := len(toks)
	if idx+1 < n {
		if _, ok := in.HMS(string(toks[idx+1])); ok {
			return idx + 1, true
		}
	}
	if idx+2 < n && toks[idx+1].IsSpace() {
		if _, ok := in.HMS(string(toks[idx+2])); ok {
			return idx + 2, true
		}
	}
	if idx > 0 {
		if _, ok := in.HMS(string(toks[idx-1])); ok {
			return idx - 1, true
		}
	}
	if idx > 1 && idx == n-1 && toks[idx-1].IsSpace() {
		if _, ok := in.HMS(string(toks[idx-2])); ok {
			return idx - 2, true
		}
	}
	return 0, false
}

// assignHMS records value (the token at the numeric index, not the unit
// word) into res according to which unit hmsUnit names: 0=hour, 1=minute,
// 2=second.
func assignHMS(res *result.ParsingResult, valueRepr string, hmsUnit int) error {
	value, err := toDecimal(valueRepr)
	if err != nil {
		return err
	}
	switch hmsUnit {
	case 0:
		hour, err := decimalFloorInt(value)
		if err != nil {
			return err
		}
		res.Hour, res.HasHour = hour, true
		frac, err := decimalFrac(value)
		if err != nil {
			return err
		}
		if frac.Sign() != 0 {
			m, err := fracTimesSixty(frac)
			if err != nil {
				return err
			}
			res.Minute, res.HasMinute = m, true
		}
	case 1:
		minute, second, err := parseMinSec(value)
		if err != nil {
			return err
		}
		res.Minute, res.HasMinute = minute, true
		if second != nil {
			res.Second, res.HasSecond = *second, true
		}
	case 2:
		sec, micro, err := parseFracSeconds(valueRepr)
		if err != nil {
			return err
		}
		res.Second, res.HasSecond = sec, true
		res.Microsecond, res.HasMicrosecond = micro, true
	}
	return nil
}

// parseNumericToken is the numeric handler of the core parser: given that
// toks[idx] parses as a decimal number, it tries each of the ordered
// patterns in turn and returns the index the walk should resume from (the
// handler may itself have consumed several further tokens).
func parseNumericToken(toks []lex.Token, idx int, in *info.Info, y *ymd.YMD, res *result.ParsingResult, fuzzy bool) (int, error) {
	valueRepr := string(toks[idx])
	value, err := toDecimal(valueRepr)
	if err != nil {
		return idx, err
	}
	lenLi := len(valueRepr)
	n := len(toks)

	nextIsHMSOrColon := func(i int) bool {
		if i >= n {
			return false
		}
		if toks[i].Is(':') {
			return true
		}
		_, ok := in.HMS(string(toks[i]))
		return ok
	}

	switch {
	case y.Len() == 3 && (lenLi == 2 || lenLi == 4) && !res.HasHour &&
		(idx+1 >= n || !nextIsHMSOrColon(idx+1)):
		// YYYYMMDDTHH[MM]
		hour, err := parseDigits(valueRepr[0:2])
		if err != nil {
			return idx, err
		}
		res.Hour, res.HasHour = hour, true
		if lenLi == 4 {
			minute, err := parseDigits(valueRepr[2:4])
			if err != nil {
				return idx, err
			}
			res.Minute, res.HasMinute = minute, true
		}

	case lenLi == 6 || (lenLi > 6 && strings.IndexByte(valueRepr, '.') == 6):
		if y.Len() == 0 && !strings.Contains(valueRepr, ".") {
			// YYMMDD
			for _, span := range [][2]int{{0, 2}, {2, 4}, {4, 6}} {
				v, err := parseDigits(valueRepr[span[0]:span[1]])
				if err != nil {
					return idx, err
				}
				if err := y.Append(v, valueRepr[span[0]:span[1]], ymd.NoLabel); err != nil {
					return idx, newInternal(ValueError, err.Error())
				}
			}
		} else {
			// HHMMSS[.ffffff]
			hour, err := parseDigits(valueRepr[0:2])
			if err != nil {
				return idx, err
			}
			minute, err := parseDigits(valueRepr[2:4])
			if err != nil {
				return idx, err
			}
			sec, micro, err := parseFracSeconds(valueRepr[4:])
			if err != nil {
				return idx, err
			}
			res.Hour, res.HasHour = hour, true
			res.Minute, res.HasMinute = minute, true
			res.Second, res.HasSecond = sec, true
			res.Microsecond, res.HasMicrosecond = micro, true
		}

	case lenLi == 8 || lenLi == 12 || lenLi == 14:
		// YYYYMMDD[HH[MM[SS]]]
		year, err := parseDigits(valueRepr[0:4])
		if err != nil {
			return idx, err
		}
		if err := y.Append(year, valueRepr[0:4], ymd.Year); err != nil {
			return idx, newInternal(ValueError, err.Error())
		}
		month, err := parseDigits(valueRepr[4:6])
		if err != nil {
			return idx, err
		}
		if err := y.Append(month, valueRepr[4:6], ymd.NoLabel); err != nil {
			return idx, newInternal(ValueError, err.Error())
		}
		day, err := parseDigits(valueRepr[6:8])
		if err != nil {
			return idx, err
		}
		if err := y.Append(day, valueRepr[6:8], ymd.NoLabel); err != nil {
			return idx, newInternal(ValueError, err.Error())
		}
		if lenLi > 8 {
			hour, err := parseDigits(valueRepr[8:10])
			if err != nil {
				return idx, err
			}
			minute, err := parseDigits(valueRepr[10:12])
			if err != nil {
				return idx, err
			}
			res.Hour, res.HasHour = hour, true
			res.Minute, res.HasMinute = minute, true
			if lenLi > 12 {
				sec, err := parseDigits(valueRepr[12:])
				if err != nil {
					return idx, err
				}
				res.Second, res.HasSecond = sec, true
			}
		}

	default:
		if hmsIdx, ok := findHMSIndex(toks, idx, in); ok {
			unit, _ := in.HMS(string(toks[hmsIdx]))
			if hmsIdx < idx {
				unit++ // the label token precedes the value: shift to the next unit
			}
			if err := assignHMS(res, valueRepr, unit); err != nil {
				return idx, err
			}
			if hmsIdx > idx {
				idx = hmsIdx
			}
		} else if idx+2 < n && toks[idx+1].Is(':') {
			// HH:MM[:SS[.ffffff]]
			hour, err := decimalFloorInt(value)
			if err != nil {
				return idx, err
			}
			res.Hour, res.HasHour = hour, true

			minValue, err := toDecimal(string(toks[idx+2]))
			if err != nil {
				return idx, err
			}
			minute, second, err := parseMinSec(minValue)
			if err != nil {
				return idx, err
			}
			res.Minute, res.HasMinute = minute, true
			if second != nil {
				res.Second, res.HasSecond = *second, true
			}

			if idx+4 < n && toks[idx+3].Is(':') {
				sec, micro, err := parseFracSeconds(string(toks[idx+4]))
				if err != nil {
					return idx, err
				}
				res.Second, res.HasSecond = sec, true
				res.Microsecond, res.HasMicrosecond = micro, true
				idx += 2
			}
			idx += 2

		} else if idx+1 < n && (toks[idx+1].Is('-') || toks[idx+1].Is('/') || toks[idx+1].Is('.')) {
			sep := toks[idx+1]
			v, err := parseDigits(valueRepr)
			if err != nil {
				return idx, err
			}
			if err := y.Append(v, valueRepr, ymd.NoLabel); err != nil {
				return idx, newInternal(ValueError, err.Error())
			}

			if idx+2 < n && !in.IsJump(string(toks[idx+2])) {
				next := string(toks[idx+2])
				if nv, derr := parseDigits(next); derr == nil {
					if err := y.Append(nv, next, ymd.NoLabel); err != nil {
						return idx, newInternal(ValueError, err.Error())
					}
				} else if mv, ok := in.Month(next); ok {
					if err := y.Append(mv, next, ymd.Month); err != nil {
						return idx, newInternal(ValueError, err.Error())
					}
				}

				if idx+3 < n && toks[idx+3] == sep {
					last := string(toks[idx+4])
					if mv, ok := in.Month(last); ok {
						if err := y.Append(mv, last, ymd.Month); err != nil {
							return idx, newInternal(ValueError, err.Error())
						}
					} else if lv, derr := parseDigits(last); derr == nil {
						if err := y.Append(lv, last, ymd.NoLabel); err != nil {
							return idx, newInternal(ValueError, err.Error())
						}
					}
					idx += 2
				}
				idx++
			}
			idx++

		} else if idx+1 >= n || in.IsJump(string(toks[idx+1])) {
			if idx+2 < n {
				if ampm, ok := in.AMPM(string(toks[idx+2])); ok {
					hour, err := decimalFloorInt(value)
					if err != nil {
						return idx, err
					}
					res.Hour, res.HasHour = adjustAMPM(hour, ampm), true
					break
				}
			}
			v, err := decimalFloorInt(value)
			if err != nil {
				return idx, err
			}
			if err := y.Append(v, valueRepr, ymd.NoLabel); err != nil {
				return idx, newInternal(ValueError, err.Error())
			}

		} else if ampm, ok := in.AMPM(string(toks[idx+1])); ok && zeroToTwentyFour(value) {
			hour, err := decimalFloorInt(value)
			if err != nil {
				return idx, err
			}
			res.Hour, res.HasHour = adjustAMPM(hour, ampm), true
			idx++

		} else if dv, derr := decimalFloorInt(value); derr == nil && y.CouldBeDay(dv) {
			if err := y.Append(dv, valueRepr, ymd.NoLabel); err != nil {
				return idx, newInternal(ValueError, err.Error())
			}

		} else if !fuzzy {
			return idx, newInternal(ValueError, "could not interpret numeric token "+valueRepr)
		}
	}

	return idx, nil
}

func zeroToTwentyFour(d *apd.Decimal) bool {
	zero := apd.New(0, 0)
	twentyFour := apd.New(24, 0)
	return d.Cmp(zero) >= 0 && d.Cmp(twentyFour) < 0
}

func adjustAMPM(hour int, pm bool) int {
	switch {
	case hour < 12 && pm:
		return hour + 12
	case hour == 12 && !pm:
		return 0
	default:
		return hour
	}
}
