package integer

import (
	"math/big"

	"github.com/calebcase/dataaccess"
	"github.com/calebcase/dataaccess/external"
	"github.com/calebcase/dataaccess/packed"
)

// ShortToExternal writes v as an external decimal.
func ShortToExternal(v int16, buf []byte, offset, precision int, checkOverflow bool, t external.Type) (err error) {
	defer Error.WrapP(&err)

	return external.Encode(digits(int64(v)), buf, offset, precision, t, checkOverflow)
}

// IntToExternal writes v as an external decimal.
func IntToExternal(v int32, buf []byte, offset, precision int, checkOverflow bool, t external.Type) (err error) {
	defer Error.WrapP(&err)

	return external.Encode(digits(int64(v)), buf, offset, precision, t, checkOverflow)
}

// LongToExternal writes v as an external decimal.
func LongToExternal(v int64, buf []byte, offset, precision int, checkOverflow bool, t external.Type) (err error) {
	defer Error.WrapP(&err)

	return external.Encode(digits(v), buf, offset, precision, t, checkOverflow)
}

// BigIntToExternal writes v as an external decimal.
func BigIntToExternal(v *big.Int, buf []byte, offset, precision int, checkOverflow bool, t external.Type) (err error) {
	defer Error.WrapP(&err)

	if v == nil {
		return dataaccess.NullError.New("value is nil")
	}

	return external.Encode(packed.FromBig(v), buf, offset, precision, t, checkOverflow)
}

// ExternalToShort reads an external decimal into an int16.
func ExternalToShort(buf []byte, offset, precision int, checkOverflow bool, t external.Type) (v int16, err error) {
	defer Error.WrapP(&err)

	n, err := fromExternal(Short, buf, offset, precision, checkOverflow, t)

	return int16(n), err
}

// ExternalToInt reads an external decimal into an int32.
func ExternalToInt(buf []byte, offset, precision int, checkOverflow bool, t external.Type) (v int32, err error) {
	defer Error.WrapP(&err)

	n, err := fromExternal(Int, buf, offset, precision, checkOverflow, t)

	return int32(n), err
}

// ExternalToLong reads an external decimal into an int64.
func ExternalToLong(buf []byte, offset, precision int, checkOverflow bool, t external.Type) (v int64, err error) {
	defer Error.WrapP(&err)

	return fromExternal(Long, buf, offset, precision, checkOverflow, t)
}

// ExternalToBigInt reads an external decimal of any precision.
func ExternalToBigInt(buf []byte, offset, precision int, t external.Type) (v *big.Int, err error) {
	defer Error.WrapP(&err)

	b, err := external.Decode(buf, offset, precision, t)
	if err != nil {
		return nil, err
	}

	return b.Big(), nil
}

func fromExternal(s Schema, buf []byte, offset, precision int, checkOverflow bool, t external.Type) (int64, error) {
	b, err := external.Decode(buf, offset, precision, t)
	if err != nil {
		return 0, err
	}

	return s.value(b, checkOverflow)
}
