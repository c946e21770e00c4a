// Package decimal converts fixed point base 10 numbers to and from packed and
// external decimals.
//
// The equation for a decimal number is:
//
//	number = value * 10 ^ -scale
//
// Where value is an unscaled integer and scale is the count of digits after
// the decimal point. For example:
//
//	1.23 = 123 * 10^-2
//
// Packed and external decimals only hold the unscaled value. The scale is
// part of the record layout rather than the data, so ToPacked returns the
// scale it used and FromPacked takes it back:
//
//	USD 20.47 at precision 5 (3 bytes), scale 2
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 0 | 0 . 0 . 1 . 0 | digits 0 and 2
//	| 0 . 0 . 0 . 0 | 0 . 1 . 0 . 0 | digits 0 and 4
//	| 0 . 1 . 1 . 1 | 1 . 1 . 0 . 0 | digit 7 and sign 0xC
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// Use Rescale to bring a number to a fixed scale before encoding it.
package decimal
