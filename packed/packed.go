package packed

import (
	"math/big"
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/dataaccess"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("packed")

// Sign nibbles. The encoder writes Positive or Negative. Decoding accepts
// every nibble from 0xA through Unsigned; 0xB and 0xD are negative.
const (
	Positive byte = 0x0C
	Negative byte = 0x0D
	Unsigned byte = 0x0F
)

// ByteLength returns the number of bytes occupied by a packed decimal with
// the given precision.
func ByteLength(precision int) int {
	return precision/2 + 1
}

// IsValidSign returns true if the nibble is a sign nibble.
func IsValidSign(nibble byte) bool {
	return nibble >= 0x0A && nibble <= Unsigned
}

// IsNegativeSign returns true if the nibble is a negative sign nibble.
func IsNegativeSign(nibble byte) bool {
	return nibble == 0x0B || nibble == 0x0D
}

// Block is a decoded packed decimal operand.
type Block struct {
	// Digits holds one decimal digit (0-9) per byte, most significant
	// first.
	Digits   []byte
	Negative bool
}

// ParseBlock reads an optionally signed string of decimal digits.
func ParseBlock(s string) (b Block, err error) {
	defer Error.WrapP(&err)

	switch {
	case strings.HasPrefix(s, "-"):
		b.Negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if len(s) == 0 {
		return Block{}, dataaccess.NewMalformed("no digits")
	}

	b.Digits = make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Block{}, dataaccess.NewMalformed("invalid digit %q at %d", s[i], i)
		}

		b.Digits[i] = s[i] - '0'
	}

	return b, nil
}

// FromBig returns the block holding the digits of i.
func FromBig(i *big.Int) Block {
	text := i.Text(10)

	b := Block{
		Negative: i.Sign() < 0,
	}

	text = strings.TrimPrefix(text, "-")
	b.Digits = make([]byte, len(text))
	for j := 0; j < len(text); j++ {
		b.Digits[j] = text[j] - '0'
	}

	return b
}

// Big returns the value of the block. A negative zero becomes zero.
func (b Block) Big() *big.Int {
	i := new(big.Int)
	ten := big.NewInt(10)
	for _, d := range b.Digits {
		i.Mul(i, ten)
		i.Add(i, big.NewInt(int64(d)))
	}

	if b.Negative {
		i.Neg(i)
	}

	return i
}

// String returns the signed digits. Leading zeros are kept.
func (b Block) String() string {
	sb := &strings.Builder{}

	if b.Negative {
		sb.WriteByte('-')
	}

	if len(b.Digits) == 0 {
		sb.WriteByte('0')
	}

	for _, d := range b.Digits {
		sb.WriteByte('0' + d)
	}

	return sb.String()
}

// IsZero returns true if every digit is zero.
func (b Block) IsZero() bool {
	for _, d := range b.Digits {
		if d != 0 {
			return false
		}
	}

	return true
}

// Fit pads or truncates the digits to exactly precision digits. Lost is true
// when a non-zero high order digit was dropped.
func (b Block) Fit(precision int) (fitted Block, lost bool) {
	digits := make([]byte, precision)

	n := len(b.Digits)
	if n > precision {
		for _, d := range b.Digits[:n-precision] {
			if d != 0 {
				lost = true
			}
		}

		copy(digits, b.Digits[n-precision:])
	} else {
		copy(digits[precision-n:], b.Digits)
	}

	return Block{
		Digits:   digits,
		Negative: b.Negative,
	}, lost
}

// Encode writes the block as a packed decimal of the given precision. Unused
// leading nibbles are zero filled and the sign nibble is 0xC or 0xD.
//
// When the digits do not fit and checkOverflow is set an overflow error is
// returned and buf is left untouched. Otherwise the high order digits are
// dropped.
func (b Block) Encode(buf []byte, offset, precision int, checkOverflow bool) (err error) {
	defer Error.WrapP(&err)

	return encode(b, buf, offset, precision, checkOverflow)
}

func encode(b Block, buf []byte, offset, precision int, checkOverflow bool) (err error) {
	err = dataaccess.CheckPrecision("packed", precision)
	if err != nil {
		return err
	}

	size := ByteLength(precision)

	err = dataaccess.CheckRange("packed", buf, offset, size)
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

	put(buf[offset:offset+size], fitted)

	return nil
}

// put writes digits into out. len(out) must be len(b.Digits)/2+1.
func put(out []byte, b Block) {
	clear(out)

	start := len(out)*2 - 1 - len(b.Digits)
	for i, d := range b.Digits {
		k := start + i
		if k%2 == 0 {
			out[k/2] |= d << 4
		} else {
			out[k/2] |= d
		}
	}

	if b.Negative {
		out[len(out)-1] |= Negative
	} else {
		out[len(out)-1] |= Positive
	}
}

// Decode reads the packed decimal at offset. The padding nibble of an even
// precision is ignored.
func Decode(buf []byte, offset, precision int) (b Block, err error) {
	defer Error.WrapP(&err)

	return decode(buf, offset, precision)
}

func decode(buf []byte, offset, precision int) (b Block, err error) {
	err = dataaccess.CheckPrecision("packed", precision)
	if err != nil {
		return Block{}, err
	}

	size := ByteLength(precision)

	err = dataaccess.CheckRange("packed", buf, offset, size)
	if err != nil {
		return Block{}, err
	}

	in := buf[offset : offset+size]

	b.Digits = make([]byte, precision)
	for n := range b.Digits {
		d := digit(in, precision, n)
		if d > 9 {
			return Block{}, dataaccess.NewMalformed(
				"invalid digit nibble %#x at digit %d offset %d",
				d,
				n,
				offset,
			)
		}

		b.Digits[n] = d
	}

	sign := in[size-1] & 0x0F
	if !IsValidSign(sign) {
		return Block{}, dataaccess.NewMalformed(
			"invalid sign nibble %#x at offset %d",
			sign,
			offset+size-1,
		)
	}

	b.Negative = IsNegativeSign(sign)

	return b, nil
}

// digit returns the n-th digit nibble of in without validation.
func digit(in []byte, precision, n int) byte {
	k := len(in)*2 - 1 - precision + n
	if k%2 == 0 {
		return in[k/2] >> 4
	}

	return in[k/2] & 0x0F
}

// DigitAt returns the n-th significant digit counting from the most
// significant (n=0). The nibble is returned as stored; it is not validated.
func DigitAt(buf []byte, offset, precision, n int) (d byte, err error) {
	defer Error.WrapP(&err)

	err = dataaccess.CheckPrecision("packed", precision)
	if err != nil {
		return 0, err
	}

	size := ByteLength(precision)

	err = dataaccess.CheckRange("packed", buf, offset, size)
	if err != nil {
		return 0, err
	}

	if n < 0 || n >= precision {
		return 0, dataaccess.BoundsError.New("digit %d of precision %d", n, precision)
	}

	return digit(buf[offset:offset+size], precision, n), nil
}

// SignNibble returns the low nibble of the last byte.
func SignNibble(buf []byte, offset, precision int) (nibble byte, err error) {
	defer Error.WrapP(&err)

	err = dataaccess.CheckPrecision("packed", precision)
	if err != nil {
		return 0, err
	}

	err = dataaccess.CheckRange("packed", buf, offset, ByteLength(precision))
	if err != nil {
		return 0, err
	}

	return buf[offset+precision/2] & 0x0F, nil
}

// Status reports the problems found by Check.
type Status uint8

// Check results. A zero status is a well formed packed decimal.
const (
	Valid        Status = 0b_0000_0000
	InvalidSign  Status = 0b_0000_0001
	InvalidDigit Status = 0b_0000_0010
)

// String lists the problems in the status.
func (s Status) String() string {
	if s == Valid {
		return "valid"
	}

	var parts []string
	if s&InvalidSign != 0 {
		parts = append(parts, "invalid sign")
	}
	if s&InvalidDigit != 0 {
		parts = append(parts, "invalid digit")
	}

	return strings.Join(parts, ", ")
}

// Check inspects the packed decimal at offset without failing on malformed
// nibbles. Errors are only returned for invalid arguments.
func Check(buf []byte, offset, precision int) (s Status, err error) {
	defer Error.WrapP(&err)

	err = dataaccess.CheckPrecision("packed", precision)
	if err != nil {
		return Valid, err
	}

	size := ByteLength(precision)

	err = dataaccess.CheckRange("packed", buf, offset, size)
	if err != nil {
		return Valid, err
	}

	in := buf[offset : offset+size]

	for n := 0; n < precision; n++ {
		if digit(in, precision, n) > 9 {
			s |= InvalidDigit

			break
		}
	}

	if !IsValidSign(in[size-1] & 0x0F) {
		s |= InvalidSign
	}

	return s, nil
}

// Validate returns a malformed operand error if the packed decimal at offset
// contains an invalid digit or sign.
func Validate(buf []byte, offset, precision int) (err error) {
	defer Error.WrapP(&err)

	_, err = decode(buf, offset, precision)

	return err
}
