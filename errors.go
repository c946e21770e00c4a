package dataaccess

import "github.com/zeebo/errs"

// Error kinds shared by every codec package. Errors returned by the codec
// carry one of these classes (plus the class of the package that raised it)
// and can be tested with Has. Malformed operands carry both MalformedError
// and ArgumentError:
//
//	if dataaccess.OverflowError.Has(err) { ... }
var (
	// OverflowError reports significant digits lost while encoding,
	// shifting or moving with overflow checking enabled, or a decoded value
	// that does not fit the requested native width.
	OverflowError = errs.Class("decimal overflow")

	// MalformedError reports an invalid digit or sign while decoding.
	MalformedError = errs.Class("malformed operand")

	// ArgumentError reports structurally invalid call parameters such as a
	// negative shift amount or a precision below one.
	ArgumentError = errs.Class("illegal argument")

	// BoundsError reports a buffer too small for the addressed range.
	BoundsError = errs.Class("out of bounds")

	// NullError reports a required buffer that is nil.
	NullError = errs.Class("null reference")
)

// NewMalformed returns a MalformedError that also carries ArgumentError.
func NewMalformed(format string, args ...interface{}) error {
	return ArgumentError.Wrap(MalformedError.New(format, args...))
}

// CheckRange validates that buf holds size elements starting at offset.
func CheckRange[T any](name string, buf []T, offset, size int) error {
	if buf == nil {
		return NullError.New("%s is nil", name)
	}

	if offset < 0 || size < 0 || offset > len(buf)-size {
		return BoundsError.New(
			"%s: offset=%d size=%d len=%d",
			name,
			offset,
			size,
			len(buf),
		)
	}

	return nil
}

// CheckPrecision validates a digit count.
func CheckPrecision(name string, precision int) error {
	if precision < 1 {
		return ArgumentError.New("%s precision must be positive: %d", name, precision)
	}

	return nil
}
