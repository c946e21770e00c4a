package external

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/dataaccess"
	"github.com/calebcase/dataaccess/packed"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("external")

// EBCDIC code points.
const (
	ZoneDigit    byte = 0xF0
	ZonePositive byte = 0xC0
	ZoneNegative byte = 0xD0
	SignPlus     byte = 0x4E
	SignMinus    byte = 0x60
)

// digitIndex returns the position of digit n relative to offset.
func digitIndex(n int, t Type) int {
	if t.Separate() && t.Leading() {
		return n + 1
	}

	return n
}

// signIndex returns the position of the byte or rune carrying the sign.
func signIndex(precision int, t Type) int {
	switch t {
	case EmbeddedTrailing:
		return precision - 1
	case EmbeddedLeading, SeparateLeading, UnicodeSeparateLeading:
		return 0
	case SeparateTrailing, UnicodeSeparateTrailing:
		return precision
	}

	return -1
}

func prepare(buf []byte, offset, precision int, t Type) error {
	err := checkType(t, false)
	if err != nil {
		return err
	}

	err = dataaccess.CheckPrecision("external", precision)
	if err != nil {
		return err
	}

	return dataaccess.CheckRange("external", buf, offset, ByteLength(precision, t))
}

// DigitByteAt returns the byte holding digit n (counting from the most
// significant digit). The byte is returned as stored; for embedded
// conventions the zone of the sign digit carries the sign.
func DigitByteAt(buf []byte, offset, precision, n int, t Type) (b byte, err error) {
	defer Error.WrapP(&err)

	err = prepare(buf, offset, precision, t)
	if err != nil {
		return 0, err
	}

	if n < 0 || n >= precision {
		return 0, dataaccess.BoundsError.New("digit %d of precision %d", n, precision)
	}

	return buf[offset+digitIndex(n, t)], nil
}

// IsPositive reports the sign of the external decimal at offset.
func IsPositive(buf []byte, offset, precision int, t Type) (positive bool, err error) {
	defer Error.WrapP(&err)

	err = prepare(buf, offset, precision, t)
	if err != nil {
		return false, err
	}

	negative, err := sign(buf[offset:offset+ByteLength(precision, t)], precision, t)
	if err != nil {
		return false, err
	}

	return !negative, nil
}

func sign(in []byte, precision int, t Type) (negative bool, err error) {
	s := in[signIndex(precision, t)]

	switch t {
	case EmbeddedTrailing, EmbeddedLeading:
		zone := s >> 4
		switch {
		case packed.IsNegativeSign(zone):
			return true, nil
		case packed.IsValidSign(zone):
			return false, nil
		}

		return false, dataaccess.NewMalformed("invalid sign zone %#x", s)
	case SeparateTrailing, SeparateLeading:
		switch s {
		case SignPlus:
			return false, nil
		case SignMinus:
			return true, nil
		}

		return false, dataaccess.NewMalformed("invalid sign byte %#x", s)
	}

	return false, dataaccess.ArgumentError.New("invalid decimal type: %s", t)
}

// Decode reads the external decimal at offset.
func Decode(buf []byte, offset, precision int, t Type) (b packed.Block, err error) {
	defer Error.WrapP(&err)

	return decode(buf, offset, precision, t)
}

func decode(buf []byte, offset, precision int, t Type) (b packed.Block, err error) {
	err = prepare(buf, offset, precision, t)
	if err != nil {
		return packed.Block{}, err
	}

	in := buf[offset : offset+ByteLength(precision, t)]

	b.Negative, err = sign(in, precision, t)
	if err != nil {
		return packed.Block{}, err
	}

	b.Digits = make([]byte, precision)
	for n := range b.Digits {
		v := in[digitIndex(n, t)]

		d := v & 0x0F
		if d > 9 || (t.Separate() && v&0xF0 != ZoneDigit) {
			return packed.Block{}, dataaccess.NewMalformed(
				"invalid digit byte %#x at digit %d offset %d",
				v,
				n,
				offset+digitIndex(n, t),
			)
		}

		b.Digits[n] = d
	}

	return b, nil
}

// Encode writes the block as an external decimal at offset. Digits that do
// not fit are an overflow when checkOverflow is set and are dropped
// otherwise.
func Encode(b packed.Block, buf []byte, offset, precision int, t Type, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return encode(b, buf, offset, precision, t, checkOverflow)
}

func encode(b packed.Block, buf []byte, offset, precision int, t Type, checkOverflow bool) (err error) {
	err = prepare(buf, offset, precision, t)
	if err != nil {
		return err
	}

	for i, d := range b.Digits {
		if d > 9 {
			return dataaccess.ArgumentError.New("invalid digit %d at %d", d, i)
		}
	}

	fitted, lost := b.Fit(precision)
	if lost && checkOverflow {
		return dataaccess.OverflowError.New("%s does not fit in %d digits", b, precision)
	}

	out := buf[offset : offset+ByteLength(precision, t)]

	for n, d := range fitted.Digits {
		out[digitIndex(n, t)] = ZoneDigit | d
	}

	i := signIndex(precision, t)

	switch t {
	case EmbeddedTrailing, EmbeddedLeading:
		zone := ZonePositive
		if fitted.Negative {
			zone = ZoneNegative
		}

		out[i] = zone | out[i]&0x0F
	case SeparateTrailing, SeparateLeading:
		out[i] = SignPlus
		if fitted.Negative {
			out[i] = SignMinus
		}
	}

	return nil
}
