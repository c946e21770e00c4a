package integer

import (
	"math"
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/dataaccess"
	"github.com/calebcase/dataaccess/packed"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("integer")

// Block is a signed integer number in sign and magnitude form.
type Block struct {
	// Value is the big-endian magnitude.
	Value    []byte
	Negative bool
}

// FromBig returns the block for i.
func FromBig(i *big.Int) Block {
	data := i.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return Block{
		Value:    data,
		Negative: i.Sign() < 0,
	}
}

// Big returns the value of the block.
func (b Block) Big() *big.Int {
	i := new(big.Int).SetBytes(b.Value)
	if b.Negative {
		i.Neg(i)
	}

	return i
}

// Packed returns the decimal digits of the block.
func (b Block) Packed() packed.Block {
	p := packed.FromBig(new(big.Int).SetBytes(b.Value))
	p.Negative = b.Negative

	return p
}

// FromPacked returns the binary form of the decimal digits.
func FromPacked(p packed.Block) Block {
	i := p.Big()

	b := FromBig(i)
	b.Negative = p.Negative

	return b
}

// Schema describes the native width of a binary integer.
type Schema struct {
	// Bits is the two's complement width, at most 64.
	Bits uint64
}

// Native widths.
var (
	Short = Schema{Bits: 16}
	Int   = Schema{Bits: 32}
	Long  = Schema{Bits: 64}
)

// digits returns the decimal digits of a 64 bit value.
func digits(v int64) packed.Block {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}

	var buf [20]byte
	i := len(buf)
	for {
		i--
		buf[i] = byte(mag % 10)
		mag /= 10

		if mag == 0 {
			break
		}
	}

	return packed.Block{
		Digits:   buf[i:],
		Negative: v < 0,
	}
}

// value returns the native value of the digits. Without checkOverflow the
// result wraps the same way a narrowing integer conversion does.
func (s Schema) value(b packed.Block, checkOverflow bool) (int64, error) {
	var mag uint64
	var wrapped bool

	for _, d := range b.Digits {
		if mag > (math.MaxUint64-uint64(d))/10 {
			wrapped = true
		}

		mag = mag*10 + uint64(d)
	}

	if checkOverflow {
		limit := uint64(1) << (s.Bits - 1)

		if wrapped || mag > limit || (!b.Negative && mag == limit) {
			return 0, dataaccess.OverflowError.New(
				"%s does not fit in %d bits",
				b,
				s.Bits,
			)
		}
	}

	v := int64(mag)
	if b.Negative {
		v = -v
	}

	return v, nil
}
