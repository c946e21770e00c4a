package packed

import (
	"math/big"

	"github.com/calebcase/dataaccess"
)

// Operand addresses a packed decimal inside a buffer.
type Operand struct {
	Buf       []byte
	Offset    int
	Precision int
}

func (o Operand) decode() (*big.Int, error) {
	b, err := decode(o.Buf, o.Offset, o.Precision)
	if err != nil {
		return nil, err
	}

	return b.Big(), nil
}

func binary(dst Operand, a, b Operand, checkOverflow bool, fn func(z, x, y *big.Int) error) (err error) {
	err = dataaccess.CheckPrecision("destination", dst.Precision)
	if err != nil {
		return err
	}

	err = dataaccess.CheckRange("destination", dst.Buf, dst.Offset, ByteLength(dst.Precision))
	if err != nil {
		return err
	}

	x, err := a.decode()
	if err != nil {
		return err
	}

	y, err := b.decode()
	if err != nil {
		return err
	}

	z := new(big.Int)

	err = fn(z, x, y)
	if err != nil {
		return err
	}

	return Shifter{}.store(FromBig(z), dst.Buf, dst.Offset, dst.Precision, checkOverflow)
}

// Add writes a+b into dst.
func Add(dst, a, b Operand, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return binary(dst, a, b, checkOverflow, func(z, x, y *big.Int) error {
		z.Add(x, y)

		return nil
	})
}

// Subtract writes a-b into dst.
func Subtract(dst, a, b Operand, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return binary(dst, a, b, checkOverflow, func(z, x, y *big.Int) error {
		z.Sub(x, y)

		return nil
	})
}

// Multiply writes a*b into dst.
func Multiply(dst, a, b Operand, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return binary(dst, a, b, checkOverflow, func(z, x, y *big.Int) error {
		z.Mul(x, y)

		return nil
	})
}

// Divide writes a/b truncated toward zero into dst.
func Divide(dst, a, b Operand, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return binary(dst, a, b, checkOverflow, func(z, x, y *big.Int) error {
		if y.Sign() == 0 {
			return dataaccess.ArgumentError.New("division by zero")
		}

		z.Quo(x, y)

		return nil
	})
}

// Remainder writes the remainder of a/b into dst. The result has the sign of
// a.
func Remainder(dst, a, b Operand, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return binary(dst, a, b, checkOverflow, func(z, x, y *big.Int) error {
		if y.Sign() == 0 {
			return dataaccess.ArgumentError.New("division by zero")
		}

		z.Rem(x, y)

		return nil
	})
}

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
// Negative zero compares equal to zero.
func Compare(a, b Operand) (c int, err error) {
	defer Error.WrapP(&err)

	x, err := a.decode()
	if err != nil {
		return 0, err
	}

	y, err := b.decode()
	if err != nil {
		return 0, err
	}

	return x.Cmp(y), nil
}

// Equal returns true if a == b.
func Equal(a, b Operand) (bool, error) {
	c, err := Compare(a, b)

	return c == 0, err
}

// Less returns true if a < b.
func Less(a, b Operand) (bool, error) {
	c, err := Compare(a, b)

	return c < 0, err
}

// LessOrEqual returns true if a <= b.
func LessOrEqual(a, b Operand) (bool, error) {
	c, err := Compare(a, b)

	return c <= 0, err
}

// Greater returns true if a > b.
func Greater(a, b Operand) (bool, error) {
	c, err := Compare(a, b)

	return c > 0, err
}

// GreaterOrEqual returns true if a >= b.
func GreaterOrEqual(a, b Operand) (bool, error) {
	c, err := Compare(a, b)

	return c >= 0, err
}
