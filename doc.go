// Package dataaccess holds the error kinds shared by the decimal codec
// packages.
//
// The codec converts between binary integers and the two mainframe decimal
// encodings:
//
//	| Package  | Encoding                                              |
//	|----------|-------------------------------------------------------|
//	| packed   | packed decimal: two digits per byte, trailing sign    |
//	| external | external (zoned) decimal: one digit per byte          |
//	| integer  | int16/int32/int64/big.Int to and from both encodings  |
//	| decimal  | fixed point decimals to and from both encodings       |
//	| marshal  | native binary values at offsets in either byte order  |
//	|----------|-------------------------------------------------------|
//
// Every operation addresses a caller owned buffer by offset and precision
// (count of significant digits). The codec keeps no state and never writes
// outside the addressed range; range checks happen before any byte is
// written.
//
// # Errors
//
// Errors carry the class of the package that raised them and one of the kind
// classes declared here:
//
//	| Class          | Raised for                                          |
//	|----------------|-----------------------------------------------------|
//	| OverflowError  | significant digits lost or native width exceeded    |
//	| MalformedError | invalid digit or sign, also an ArgumentError        |
//	| ArgumentError  | negative shift, precision < 1, unknown type         |
//	| BoundsError    | buffer too small for offset and precision           |
//	| NullError      | nil buffer or value                                 |
//	|----------------|-----------------------------------------------------|
package dataaccess
