package gregorian

import "testing"

func TestIsLeap(t *testing.T) {
	cases := map[int]bool{
		2000: true,
		1900: false,
		2004: true,
		2003: false,
		2400: true,
	}
	for year, want := range cases {
		if got := IsLeap(year); got != want {
			t.Errorf("IsLeap(%d) = %v, want %v", year, got, want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2003, 2); got != 28 {
		t.Errorf("DaysInMonth(2003, 2) = %d, want 28", got)
	}
	if got := DaysInMonth(2000, 2); got != 29 {
		t.Errorf("DaysInMonth(2000, 2) = %d, want 29", got)
	}
	if got := DaysInMonth(2003, 4); got != 30 {
		t.Errorf("DaysInMonth(2003, 4) = %d, want 30", got)
	}
}

func TestWeekday(t *testing.T) {
	// Sat Oct 11 2003, the reference scenario from the parser spec.
	if got := Weekday(2003, 10, 11); got != 5 {
		t.Errorf("Weekday(2003, 10, 11) = %d, want 5 (Saturday)", got)
	}
	// Jan 1 2000 was a Saturday.
	if got := Weekday(2000, 1, 1); got != 5 {
		t.Errorf("Weekday(2000, 1, 1) = %d, want 5 (Saturday)", got)
	}
	// Jan 1 1970 was a Thursday.
	if got := Weekday(1970, 1, 1); got != 3 {
		t.Errorf("Weekday(1970, 1, 1) = %d, want 3 (Thursday)", got)
	}
}

func TestAddDays(t *testing.T) {
	y, m, d := AddDays(2003, 1, 30, 5)
	if y != 2003 || m != 2 || d != 4 {
		t.Errorf("AddDays(2003,1,30,5) = %d-%d-%d, want 2003-02-04", y, m, d)
	}

	y, m, d = AddDays(2003, 12, 30, 5)
	if y != 2004 || m != 1 || d != 4 {
		t.Errorf("AddDays(2003,12,30,5) = %d-%d-%d, want 2004-01-04", y, m, d)
	}
}
