package parser

import "github.com/imarsman/fuzzytime/xfmt"

// Kind identifies which error case occurred; callers that care about a
// specific failure mode should switch on this rather than the message text.
type Kind int

const (
	_ Kind = iota
	// InvalidMonth means a numeric or compact token resolved to a month
	// value outside 1..12.
	InvalidMonth
	// InvalidDay means the resolved day value was less than 1. A day past
	// the end of its month is not an error: the assembler clamps it to the
	// month's last day.
	InvalidDay
	// InvalidHour means an hour value fell outside 0..23, or an AM/PM
	// marker was paired with an hour outside 0..12.
	InvalidHour
	// AmPmWithoutHour means an AM/PM marker appeared with no hour parsed yet.
	AmPmWithoutHour
	// AmbiguousWeekday means a weekday word was seen twice.
	AmbiguousWeekday
	// UnrecognizedToken means strict (non-fuzzy) parsing hit a token that
	// matched none of the core parser's cases. Text holds the token.
	UnrecognizedToken
	// InvalidParseResult means the YMD resolver or final validation could
	// not produce a usable year/month/day triple.
	InvalidParseResult
	// TimezoneUnsupported means a numeric offset was required but absent
	// and ignoretz was not requested.
	TimezoneUnsupported
	// Internal wraps a lower-level failure; see the embedded InternalKind.
	Internal
)

// InternalKind further classifies an Internal error.
type InternalKind int

const (
	_ InternalKind = iota
	// YMDEarlyResolve means Resolve was invoked on a YMD set whose
	// accumulated value count didn't match its labeled index count, or one
	// of whose labeled slots pointed past the end of the value list.
	YMDEarlyResolve
	// YMDValueUnset means a labeled slot had no backing value. Parse does
	// not return it; that condition is reported as YMDEarlyResolve.
	YMDValueUnset
	// InvalidDecimal means a token that looked numeric failed to parse as
	// a decimal.
	InvalidDecimal
	// InvalidInteger means a digit run failed to parse as an integer, most
	// often due to overflow.
	InvalidInteger
	// ValueError is a catch-all for a malformed internal value; Text
	// carries the detail.
	ValueError
)

// Error is the parser's single error type. Kind selects the case; Internal
// and Text are populated only for the cases that need them.
type Error struct {
	Kind     Kind
	Internal InternalKind
	Text     string
}

func (e *Error) Error() string {
	buf := new(xfmt.Buffer)
	switch e.Kind {
	case InvalidMonth:
		buf.S("invalid month")
	case InvalidDay:
		buf.S("invalid day")
	case InvalidHour:
		buf.S("invalid hour")
	case AmPmWithoutHour:
		buf.S("am/pm marker with no hour")
	case AmbiguousWeekday:
		buf.S("ambiguous weekday")
	case UnrecognizedToken:
		buf.S("unrecognized token ").S(e.Text)
	case InvalidParseResult:
		buf.S("invalid parse result ").S(e.Text)
	case TimezoneUnsupported:
		buf.S("timezone offset required but not available")
	case Internal:
		buf.S("internal error: ")
		switch e.Internal {
		case YMDEarlyResolve:
			buf.S("ymd resolved before all values were labeled")
		case YMDValueUnset:
			buf.S("ymd label ").S(e.Text).S(" has no backing value")
		case InvalidDecimal:
			buf.S("invalid decimal ").S(e.Text)
		case InvalidInteger:
			buf.S("invalid integer ").S(e.Text)
		case ValueError:
			buf.S(e.Text)
		default:
			buf.S("unknown")
		}
	default:
		buf.S("unknown parse error")
	}
	return buf.String()
}

func newErr(kind Kind, text string) *Error {
	return &Error{Kind: kind, Text: text}
}

func newInternal(kind InternalKind, text string) *Error {
	return &Error{Kind: Internal, Internal: kind, Text: text}
}
