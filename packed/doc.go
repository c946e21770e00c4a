// Package packed provides the packed decimal (PD) encoding.
//
// A packed decimal stores two decimal digits per byte. The low nibble of the
// last byte is the sign. The number of bytes for a precision p (count of
// significant digits) is:
//
//	bytes = p/2 + 1
//
// Odd precisions fill every nibble. Even precisions leave the high nibble of
// the first byte unused; it is written as zero and ignored when reading.
//
// # Sign Nibbles
//
//	| Nibble | Meaning  |
//	|--------|----------|
//	| 0x0-9  | Invalid  | digits are never signs
//	| 0xA    | Positive |
//	| 0xB    | Negative |
//	| 0xC    | Positive | written for positive values
//	| 0xD    | Negative | written for negative values
//	| 0xE    | Positive |
//	| 0xF    | Positive | unsigned
//	|--------|----------|
//
// # Examples
//
// +123 at precision 3 (2 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 1 | 0 . 0 . 1 . 0 | digits 1 and 2
//	| 0 . 0 . 1 . 1 | 1 . 1 . 0 . 0 | digit 3 and sign 0xC
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// -1 at precision 4 (3 bytes)
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//	|---------------|---------------|
//	| 0 . 0 . 0 . 0 | 0 . 0 . 0 . 0 | padding and digit 0
//	| 0 . 0 . 0 . 0 | 0 . 0 . 0 . 0 | digits 0 and 0
//	| 0 . 0 . 0 . 1 | 1 . 1 . 0 . 1 | digit 1 and sign 0xD
//	|---------------|---------------|
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 |
//
// # Shifting
//
// ShiftLeft, ShiftRight and Move rewrite a packed decimal with a new
// precision and offset, multiplying or dividing by a power of ten. Digits
// that no longer fit are an overflow when checking is enabled and are
// dropped otherwise. A result that is exactly zero is written with a positive
// sign unless the Shifter preserves the sign of zero.
package packed
