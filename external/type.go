package external

import (
	"strconv"
	"strings"

	"github.com/calebcase/dataaccess"
)

// Type is the sign convention of an external decimal.
type Type uint8

// Sign conventions. The numeric values match the decimal type constants used
// by mainframe data access libraries.
const (
	Invalid Type = iota

	// EBCDIC digits with the sign in the zone of the last digit.
	EmbeddedTrailing
	// EBCDIC digits with the sign in the zone of the first digit.
	EmbeddedLeading
	// EBCDIC digits followed by a sign byte.
	SeparateTrailing
	// EBCDIC digits preceded by a sign byte.
	SeparateLeading
	// Unicode digits without a sign.
	UnicodeUnsigned
	// Unicode digits preceded by a sign character.
	UnicodeSeparateLeading
	// Unicode digits followed by a sign character.
	UnicodeSeparateTrailing
)

var abbrs = [...]string{
	Invalid:                 "invalid",
	EmbeddedTrailing:        "embedded-trailing",
	EmbeddedLeading:         "embedded-leading",
	SeparateTrailing:        "separate-trailing",
	SeparateLeading:         "separate-leading",
	UnicodeUnsigned:         "unicode-unsigned",
	UnicodeSeparateLeading:  "unicode-separate-leading",
	UnicodeSeparateTrailing: "unicode-separate-trailing",
}

// Types lists every valid sign convention.
var Types = []Type{
	EmbeddedTrailing,
	EmbeddedLeading,
	SeparateTrailing,
	SeparateLeading,
	UnicodeUnsigned,
	UnicodeSeparateLeading,
	UnicodeSeparateTrailing,
}

// String returns the abbreviation used by ParseType.
func (t Type) String() string {
	if int(t) < len(abbrs) {
		return abbrs[t]
	}

	return "type(" + strconv.Itoa(int(t)) + ")"
}

// ParseType accepts either the abbreviation or the numeric value of a type.
func ParseType(s string) (t Type, err error) {
	defer Error.WrapP(&err)

	s = strings.ToLower(strings.TrimSpace(s))

	for _, typ := range Types {
		if s == typ.String() {
			return typ, nil
		}
	}

	n, err := strconv.Atoi(s)
	if err == nil && n > int(Invalid) && n <= int(UnicodeSeparateTrailing) {
		return Type(n), nil
	}

	return Invalid, dataaccess.ArgumentError.New("unknown decimal type %q", s)
}

// Valid returns true for the defined conventions.
func (t Type) Valid() bool {
	return t > Invalid && t <= UnicodeSeparateTrailing
}

// Unicode returns true if the convention stores runes rather than EBCDIC
// bytes.
func (t Type) Unicode() bool {
	switch t {
	case UnicodeUnsigned, UnicodeSeparateLeading, UnicodeSeparateTrailing:
		return true
	}

	return false
}

// Separate returns true if the sign occupies its own position.
func (t Type) Separate() bool {
	switch t {
	case SeparateTrailing, SeparateLeading, UnicodeSeparateLeading, UnicodeSeparateTrailing:
		return true
	}

	return false
}

// Leading returns true if the sign is carried before the digits.
func (t Type) Leading() bool {
	switch t {
	case EmbeddedLeading, SeparateLeading, UnicodeSeparateLeading:
		return true
	}

	return false
}

// ByteLength returns the number of positions (bytes or runes) occupied by an
// external decimal of the given precision.
func ByteLength(precision int, t Type) int {
	if t.Separate() {
		return precision + 1
	}

	return precision
}

func checkType(t Type, unicode bool) error {
	if !t.Valid() {
		return dataaccess.ArgumentError.New("invalid decimal type: %s", t)
	}

	if t.Unicode() != unicode {
		if unicode {
			return dataaccess.ArgumentError.New("not a unicode decimal type: %s", t)
		}

		return dataaccess.ArgumentError.New("not an EBCDIC decimal type: %s", t)
	}

	return nil
}
