// Package external provides the external (zoned) decimal encoding.
//
// An external decimal stores one decimal digit per byte. In EBCDIC the digit
// bytes are 0xF0-0xF9: the high nibble is the zone and the low nibble is the
// digit. The sign is carried according to a Type:
//
//	| Type              | Bytes | Sign                                         |
//	|-------------------|-------|----------------------------------------------|
//	| EmbeddedTrailing  | p     | zone of the last digit: 0xC +, 0xD -         |
//	| EmbeddedLeading   | p     | zone of the first digit: 0xC +, 0xD -        |
//	| SeparateTrailing  | p + 1 | byte after the digits: 0x4E +, 0x60 -        |
//	| SeparateLeading   | p + 1 | byte before the digits: 0x4E +, 0x60 -       |
//	|-------------------|-------|----------------------------------------------|
//
// When reading an embedded sign every zone in 0xA-0xF is accepted, 0xB and
// 0xD being negative, the same as a packed decimal sign nibble.
//
// The Unicode conventions (UnicodeUnsigned, UnicodeSeparateLeading and
// UnicodeSeparateTrailing) store '0'-'9' runes with an optional '+' or '-'
// rune and are handled by the *Unicode functions.
//
// # Examples
//
// -123 EmbeddedTrailing at precision 3
//
//	| 0xF1 | 0xF2 | 0xD3 |
//
// -123 SeparateLeading at precision 4
//
//	| 0x60 | 0xF0 | 0xF1 | 0xF2 | 0xF3 |
package external
