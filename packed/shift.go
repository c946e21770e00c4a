package packed

import (
	"github.com/calebcase/dataaccess"
)

// Shifter moves packed decimal digits between buffers. The zero value
// normalizes results that are exactly zero to a positive sign.
type Shifter struct {
	// PreserveZeroSign keeps the operand sign on results that are exactly
	// zero, matching hardware before z15.
	PreserveZeroSign bool
}

// ShiftLeft writes src multiplied by 10^amount into dst.
func ShiftLeft(
	dst []byte, dstOffset, dstPrecision int,
	src []byte, srcOffset, srcPrecision int,
	amount int,
	checkOverflow bool,
) error {
	return Shifter{}.ShiftLeft(
		dst, dstOffset, dstPrecision,
		src, srcOffset, srcPrecision,
		amount,
		checkOverflow,
	)
}

// ShiftRight writes src divided by 10^amount into dst.
func ShiftRight(
	dst []byte, dstOffset, dstPrecision int,
	src []byte, srcOffset, srcPrecision int,
	amount int,
	rounded bool,
	checkOverflow bool,
) error {
	return Shifter{}.ShiftRight(
		dst, dstOffset, dstPrecision,
		src, srcOffset, srcPrecision,
		amount,
		rounded,
		checkOverflow,
	)
}

// Move copies src into dst changing precision and offset.
func Move(
	dst []byte, dstOffset, dstPrecision int,
	src []byte, srcOffset, srcPrecision int,
	checkOverflow bool,
) error {
	return Shifter{}.Move(
		dst, dstOffset, dstPrecision,
		src, srcOffset, srcPrecision,
		checkOverflow,
	)
}

// ShiftLeft writes src multiplied by 10^amount into dstPrecision digits of
// dst. Dropped non-zero high order digits are an overflow when checkOverflow
// is set and are silently discarded otherwise. Source and destination may
// overlap.
func (s Shifter) ShiftLeft(
	dst []byte, dstOffset, dstPrecision int,
	src []byte, srcOffset, srcPrecision int,
	amount int,
	checkOverflow bool,
) (err error) {
	defer Error.WrapP(&err)

	if amount < 0 {
		return dataaccess.ArgumentError.New("negative shift amount: %d", amount)
	}

	b, err := operand(dst, dstOffset, dstPrecision, src, srcOffset, srcPrecision)
	if err != nil {
		return err
	}

	// Anything shifted past the destination precision is gone, so there
	// is no need to materialize more zeros than that.
	amount = min(amount, dstPrecision)

	b.Digits = append(b.Digits, make([]byte, amount)...)

	return s.store(b, dst, dstOffset, dstPrecision, checkOverflow)
}

// ShiftRight writes src divided by 10^amount into dstPrecision digits of
// dst. With rounded set the first discarded digit rounds half up (away from
// zero); otherwise the result is truncated toward zero.
func (s Shifter) ShiftRight(
	dst []byte, dstOffset, dstPrecision int,
	src []byte, srcOffset, srcPrecision int,
	amount int,
	rounded bool,
	checkOverflow bool,
) (err error) {
	defer Error.WrapP(&err)

	if amount < 0 {
		return dataaccess.ArgumentError.New("negative shift amount: %d", amount)
	}

	b, err := operand(dst, dstOffset, dstPrecision, src, srcOffset, srcPrecision)
	if err != nil {
		return err
	}

	if amount == 0 {
		return s.store(b, dst, dstOffset, dstPrecision, checkOverflow)
	}

	n := len(b.Digits)
	keep := max(n-amount, 0)

	var round byte
	if n-amount >= 0 {
		round = b.Digits[n-amount]
	}

	b.Digits = b.Digits[:keep]
	if rounded && round >= 5 {
		b.Digits = increment(b.Digits)
	}

	return s.store(b, dst, dstOffset, dstPrecision, checkOverflow)
}

// Move copies src into dstPrecision digits of dst. Shrinking the precision
// drops high order digits subject to checkOverflow.
func (s Shifter) Move(
	dst []byte, dstOffset, dstPrecision int,
	src []byte, srcOffset, srcPrecision int,
	checkOverflow bool,
) (err error) {
	defer Error.WrapP(&err)

	b, err := operand(dst, dstOffset, dstPrecision, src, srcOffset, srcPrecision)
	if err != nil {
		return err
	}

	return s.store(b, dst, dstOffset, dstPrecision, checkOverflow)
}

// operand validates the destination range and decodes the source.
func operand(
	dst []byte, dstOffset, dstPrecision int,
	src []byte, srcOffset, srcPrecision int,
) (b Block, err error) {
	err = dataaccess.CheckPrecision("destination", dstPrecision)
	if err != nil {
		return Block{}, err
	}

	err = dataaccess.CheckPrecision("source", srcPrecision)
	if err != nil {
		return Block{}, err
	}

	err = dataaccess.CheckRange("destination", dst, dstOffset, ByteLength(dstPrecision))
	if err != nil {
		return Block{}, err
	}

	return decode(src, srcOffset, srcPrecision)
}

func (s Shifter) store(b Block, dst []byte, dstOffset, dstPrecision int, checkOverflow bool) error {
	fitted, lost := b.Fit(dstPrecision)
	if lost && checkOverflow {
		return dataaccess.OverflowError.New(
			"%s does not fit in %d digits",
			b,
			dstPrecision,
		)
	}

	if fitted.IsZero() && !s.PreserveZeroSign {
		fitted.Negative = false
	}

	put(dst[dstOffset:dstOffset+ByteLength(dstPrecision)], fitted)

	return nil
}

// increment adds one to the magnitude held in digits.
func increment(digits []byte) []byte {
	out := make([]byte, len(digits))
	copy(out, digits)

	for i := len(out) - 1; i >= 0; i-- {
		if out[i] < 9 {
			out[i]++

			return out
		}

		out[i] = 0
	}

	return append([]byte{1}, out...)
}
