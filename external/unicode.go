package external

import (
	"github.com/calebcase/dataaccess"
	"github.com/calebcase/dataaccess/packed"
)

func prepareUnicode(buf []rune, offset, precision int, t Type) error {
	err := checkType(t, true)
	if err != nil {
		return err
	}

	err = dataaccess.CheckPrecision("unicode", precision)
	if err != nil {
		return err
	}

	return dataaccess.CheckRange("unicode", buf, offset, ByteLength(precision, t))
}

// DecodeUnicode reads the unicode decimal at offset.
func DecodeUnicode(buf []rune, offset, precision int, t Type) (b packed.Block, err error) {
	defer Error.WrapP(&err)

	return decodeUnicode(buf, offset, precision, t)
}

func decodeUnicode(buf []rune, offset, precision int, t Type) (b packed.Block, err error) {
	err = prepareUnicode(buf, offset, precision, t)
	if err != nil {
		return packed.Block{}, err
	}

	in := buf[offset : offset+ByteLength(precision, t)]

	if t.Separate() {
		switch s := in[signIndex(precision, t)]; s {
		case '+':
		case '-':
			b.Negative = true
		default:
			return packed.Block{}, dataaccess.NewMalformed("invalid sign %q", s)
		}
	}

	b.Digits = make([]byte, precision)
	for n := range b.Digits {
		r := in[digitIndex(n, t)]
		if r < '0' || r > '9' {
			return packed.Block{}, dataaccess.NewMalformed(
				"invalid digit %q at digit %d offset %d",
				r,
				n,
				offset+digitIndex(n, t),
			)
		}

		b.Digits[n] = byte(r - '0')
	}

	return b, nil
}

// EncodeUnicode writes the block as a unicode decimal at offset. The
// unsigned convention stores the magnitude only.
func EncodeUnicode(b packed.Block, buf []rune, offset, precision int, t Type, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return encodeUnicode(b, buf, offset, precision, t, checkOverflow)
}

func encodeUnicode(b packed.Block, buf []rune, offset, precision int, t Type, checkOverflow bool) (err error) {
	err = prepareUnicode(buf, offset, precision, t)
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
		out[digitIndex(n, t)] = '0' + rune(d)
	}

	if t.Separate() {
		out[signIndex(precision, t)] = '+'
		if fitted.Negative {
			out[signIndex(precision, t)] = '-'
		}
	}

	return nil
}

// PackedToUnicode converts the packed decimal at pdOffset into a unicode
// decimal at uOffset.
func PackedToUnicode(
	pd []byte, pdOffset int,
	u []rune, uOffset int,
	precision int,
	t Type,
) (err error) {
	defer Error.WrapP(&err)

	err = prepareUnicode(u, uOffset, precision, t)
	if err != nil {
		return err
	}

	b, err := packed.Decode(pd, pdOffset, precision)
	if err != nil {
		return err
	}

	return encodeUnicode(b, u, uOffset, precision, t, true)
}

// UnicodeToPacked converts the unicode decimal at uOffset into a packed
// decimal at pdOffset.
func UnicodeToPacked(
	u []rune, uOffset int,
	pd []byte, pdOffset int,
	precision int,
	t Type,
) (err error) {
	defer Error.WrapP(&err)

	b, err := decodeUnicode(u, uOffset, precision, t)
	if err != nil {
		return err
	}

	return b.Encode(pd, pdOffset, precision, true)
}
