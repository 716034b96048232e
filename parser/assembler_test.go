package parser

import (
	"testing"
	"time"

	"github.com/imarsman/fuzzytime/result"
)

func TestAssembleNaiveFillsUnsetFieldsFromDefault(t *testing.T) {
	def := time.Date(2020, time.June, 15, 8, 30, 0, 0, time.UTC)
	res := &result.ParsingResult{Year: 1999, HasYear: true}

	got := assembleNaive(res, def)

	if got.Year() != 1999 || got.Month() != time.June || got.Day() != 15 {
		t.Fatalf("unexpected date: %v", got)
	}
	if got.Hour() != 8 || got.Minute() != 30 {
		t.Fatalf("unexpected time of day: %v", got)
	}
}

func TestAssembleNaiveClampsDayToMonthEnd(t *testing.T) {
	def := time.Date(2021, time.January, 31, 0, 0, 0, 0, time.UTC)
	res := &result.ParsingResult{Month: 2, HasMonth: true}

	got := assembleNaive(res, def)

	if got.Month() != time.February || got.Day() != 28 {
		t.Fatalf("expected clamp to Feb 28, got %v", got)
	}
}

func TestAssembleNaiveWeekdayNeverRetreats(t *testing.T) {
	// 2021-03-10 is a Wednesday (gregorian weekday 2). Asking for the next
	// Monday (weekday 0) should land on 2021-03-15, not 2021-03-08.
	def := time.Date(2021, time.March, 10, 0, 0, 0, 0, time.UTC)
	res := &result.ParsingResult{Weekday: 0, HasWeekday: true}

	got := assembleNaive(res, def)

	if got.Year() != 2021 || got.Month() != time.March || got.Day() != 15 {
		t.Fatalf("expected 2021-03-15, got %v", got)
	}
}

func TestAssembleNaiveWeekdayIgnoredWhenDayExplicit(t *testing.T) {
	def := time.Date(2021, time.March, 10, 0, 0, 0, 0, time.UTC)
	res := &result.ParsingResult{
		Year: 2021, HasYear: true,
		Month: 3, HasMonth: true,
		Day: 10, HasDay: true,
		Weekday: 0, HasWeekday: true, // a Monday claim that conflicts with the 10th
	}

	got := assembleNaive(res, def)

	if got.Day() != 10 {
		t.Fatalf("explicit day must win over weekday inference, got %v", got)
	}
}

func TestAssembleOffsetPrefersExplicitTZOffset(t *testing.T) {
	res := &result.ParsingResult{TZOffset: 3600, HasTZOffset: true, TZName: "EST", HasTZName: true}

	off, err := assembleOffset(res, nil)
	if err != nil {
		t.Fatal(err)
	}
	if off == nil || *off != 3600 {
		t.Fatalf("expected explicit offset 3600, got %v", off)
	}
}

func TestAssembleOffsetFallsBackToTZInfos(t *testing.T) {
	res := &result.ParsingResult{TZName: "EST", HasTZName: true}

	off, err := assembleOffset(res, map[string]int{"EST": -5 * 3600})
	if err != nil {
		t.Fatal(err)
	}
	if off == nil || *off != -5*3600 {
		t.Fatalf("expected -5h offset from tzinfos, got %v", off)
	}
}

func TestAssembleOffsetUnmappedNameIsNotFatal(t *testing.T) {
	res := &result.ParsingResult{TZName: "XYZ", HasTZName: true}

	off, err := assembleOffset(res, nil)
	if err != nil {
		t.Fatal(err)
	}
	if off != nil {
		t.Fatalf("expected nil offset for unmapped name, got %v", *off)
	}
}

func TestAssembleOffsetNoTZInfoAtAll(t *testing.T) {
	res := &result.ParsingResult{}

	off, err := assembleOffset(res, nil)
	if err != nil {
		t.Fatal(err)
	}
	if off != nil {
		t.Fatalf("expected nil offset, got %v", *off)
	}
}
