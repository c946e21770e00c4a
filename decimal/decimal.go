package decimal

import (
	"math/big"

	shopspring "github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/dataaccess/external"
	"github.com/calebcase/dataaccess/integer"
	"github.com/calebcase/dataaccess/packed"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("decimal")

// Block is a fixed point base 10 decimal number.
type Block struct {
	Value *integer.Block
	Scale int32
}

// FromDecimal splits d into its unscaled value and scale.
func FromDecimal(d shopspring.Decimal) Block {
	v := integer.FromBig(d.Coefficient())

	return Block{
		Value: &v,
		Scale: -d.Exponent(),
	}
}

// Decimal returns the number held by the block.
func (b Block) Decimal() shopspring.Decimal {
	if b.Value == nil {
		return shopspring.Zero
	}

	return shopspring.NewFromBigInt(b.Value.Big(), -b.Scale)
}

// ToPacked writes the unscaled value of d as a packed decimal and returns the
// scale it was written with. The scale is not stored in the encoding; callers
// pass it back to FromPacked.
func ToPacked(d shopspring.Decimal, buf []byte, offset, precision int, checkOverflow bool) (scale int32, err error) {
	defer Error.WrapP(&err)

	b := FromDecimal(d)

	err = b.Value.Packed().Encode(buf, offset, precision, checkOverflow)
	if err != nil {
		return 0, err
	}

	return b.Scale, nil
}

// FromPacked reads a packed decimal as the unscaled value of a number with
// the given scale.
func FromPacked(buf []byte, offset, precision int, scale int32) (d shopspring.Decimal, err error) {
	defer Error.WrapP(&err)

	p, err := packed.Decode(buf, offset, precision)
	if err != nil {
		return shopspring.Zero, err
	}

	return block(p, scale).Decimal(), nil
}

// ToExternal writes the unscaled value of d as an external decimal and
// returns the scale it was written with.
func ToExternal(d shopspring.Decimal, buf []byte, offset, precision int, checkOverflow bool, t external.Type) (scale int32, err error) {
	defer Error.WrapP(&err)

	b := FromDecimal(d)

	err = external.Encode(b.Value.Packed(), buf, offset, precision, t, checkOverflow)
	if err != nil {
		return 0, err
	}

	return b.Scale, nil
}

// FromExternal reads an external decimal as the unscaled value of a number
// with the given scale.
func FromExternal(buf []byte, offset, precision int, scale int32, t external.Type) (d shopspring.Decimal, err error) {
	defer Error.WrapP(&err)

	p, err := external.Decode(buf, offset, precision, t)
	if err != nil {
		return shopspring.Zero, err
	}

	return block(p, scale).Decimal(), nil
}

// Rescale returns the unscaled value of d at the requested scale. Digits
// below the scale are truncated toward zero.
func Rescale(d shopspring.Decimal, scale int32) *big.Int {
	return d.Shift(scale).Truncate(0).BigInt()
}

func block(p packed.Block, scale int32) Block {
	v := integer.FromPacked(p)

	return Block{
		Value: &v,
		Scale: scale,
	}
}
