package info

import (
	"testing"

	"github.com/matryer/is"
)

func TestWeekdayLookupCaseInsensitive(t *testing.T) {
	is := is.New(t)
	in := New(2003)
	cases := map[string]int{
		"Sat": 5, "saturday": 5, "SATURDAY": 5,
		"Mon": 0, "Tues": 1, "Thurs": 3,
	}
	for word, want := range cases {
		got, ok := in.Weekday(word)
		is.True(ok)
		is.Equal(got, want)
	}
}

func TestMonthLookup(t *testing.T) {
	is := is.New(t)
	in := New(2003)
	cases := map[string]int{"Jan": 1, "January": 1, "Dec": 12, "Sept": 9, "September": 9}
	for word, want := range cases {
		got, ok := in.Month(word)
		is.True(ok)
		is.Equal(got, want)
	}
	_, ok := in.Month("Octobre")
	is.True(!ok)
}

func TestHMSAndAMPM(t *testing.T) {
	is := is.New(t)
	in := New(2003)

	v, ok := in.HMS("hours")
	is.True(ok)
	is.Equal(v, 0)

	v, ok = in.HMS("seconds")
	is.True(ok)
	is.Equal(v, 2)

	pm, ok := in.AMPM("pm")
	is.True(ok)
	is.True(pm)

	pm, ok = in.AMPM("a")
	is.True(ok)
	is.True(!pm)
}

func TestJumpWords(t *testing.T) {
	is := is.New(t)
	in := New(2003)
	for _, w := range []string{".", ",", "at", "on", "th", "m", "t"} {
		is.True(in.IsJump(w))
	}
	is.True(!in.IsJump("October"))
}

func TestUTCZoneAndOffset(t *testing.T) {
	is := is.New(t)
	in := New(2003)
	for _, w := range []string{"UTC", "GMT", "Z", "utc"} {
		is.True(in.IsUTCZone(w))
		off, ok := in.TZOffset(w)
		is.True(ok)
		is.Equal(off, 0)
	}

	_, ok := in.TZOffset("EST")
	is.True(!ok)

	in.SetTZOffset("EST", -5*3600)
	off, ok := in.TZOffset("EST")
	is.True(ok)
	is.Equal(off, -5*3600)
}

func TestConvertYear(t *testing.T) {
	is := is.New(t)
	in := New(2003)

	is.Equal(in.ConvertYear(99, false), 1999)
	is.Equal(in.ConvertYear(3, false), 2003)

	// Within 50 years of 2003: two-digit 60 -> 2060 is > 2003+50=2053, so
	// it should wrap back a century to 1960.
	is.Equal(in.ConvertYear(60, false), 1960)

	// Century already known (e.g. parsed from a 4-digit token): unchanged.
	is.Equal(in.ConvertYear(2099, true), 2099)
}
