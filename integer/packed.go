package integer

import (
	"math/big"

	"github.com/calebcase/dataaccess"
	"github.com/calebcase/dataaccess/packed"
)

// ShortToPacked writes v as a packed decimal.
func ShortToPacked(v int16, buf []byte, offset, precision int, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return digits(int64(v)).Encode(buf, offset, precision, checkOverflow)
}

// IntToPacked writes v as a packed decimal. When v has more digits than
// precision the high order digits are an overflow if checkOverflow is set and
// are dropped otherwise.
func IntToPacked(v int32, buf []byte, offset, precision int, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return digits(int64(v)).Encode(buf, offset, precision, checkOverflow)
}

// LongToPacked writes v as a packed decimal.
func LongToPacked(v int64, buf []byte, offset, precision int, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return digits(v).Encode(buf, offset, precision, checkOverflow)
}

// BigIntToPacked writes v as a packed decimal.
func BigIntToPacked(v *big.Int, buf []byte, offset, precision int, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	if v == nil {
		return dataaccess.NullError.New("value is nil")
	}

	return packed.FromBig(v).Encode(buf, offset, precision, checkOverflow)
}

// PackedToShort reads a packed decimal into an int16.
func PackedToShort(buf []byte, offset, precision int, checkOverflow bool) (v int16, err error) {
	defer Error.WrapP(&err)

	n, err := fromPacked(Short, buf, offset, precision, checkOverflow)

	return int16(n), err
}

// PackedToInt reads a packed decimal into an int32. When the value does not
// fit and checkOverflow is set an overflow error is returned, otherwise the
// value wraps.
func PackedToInt(buf []byte, offset, precision int, checkOverflow bool) (v int32, err error) {
	defer Error.WrapP(&err)

	n, err := fromPacked(Int, buf, offset, precision, checkOverflow)

	return int32(n), err
}

// PackedToLong reads a packed decimal into an int64.
func PackedToLong(buf []byte, offset, precision int, checkOverflow bool) (v int64, err error) {
	defer Error.WrapP(&err)

	return fromPacked(Long, buf, offset, precision, checkOverflow)
}

// PackedToBigInt reads a packed decimal of any precision.
func PackedToBigInt(buf []byte, offset, precision int) (v *big.Int, err error) {
	defer Error.WrapP(&err)

	b, err := packed.Decode(buf, offset, precision)
	if err != nil {
		return nil, err
	}

	return b.Big(), nil
}

func fromPacked(s Schema, buf []byte, offset, precision int, checkOverflow bool) (int64, error) {
	b, err := packed.Decode(buf, offset, precision)
	if err != nil {
		return 0, err
	}

	return s.value(b, checkOverflow)
}
