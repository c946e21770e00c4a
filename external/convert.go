package external

import (
	"github.com/calebcase/dataaccess/packed"
)

// PackedToExternal converts the packed decimal at pdOffset into an external
// decimal at edOffset. Both share the same precision; the sign, including the
// sign of zero, is preserved.
func PackedToExternal(
	pd []byte, pdOffset int,
	ed []byte, edOffset int,
	precision int,
	t Type,
) (err error) {
	defer Error.WrapP(&err)

	err = prepare(ed, edOffset, precision, t)
	if err != nil {
		return err
	}

	b, err := packed.Decode(pd, pdOffset, precision)
	if err != nil {
		return err
	}

	return encode(b, ed, edOffset, precision, t, true)
}

// ExternalToPacked converts the external decimal at edOffset into a packed
// decimal at pdOffset.
func ExternalToPacked(
	ed []byte, edOffset int,
	pd []byte, pdOffset int,
	precision int,
	t Type,
) (err error) {
	defer Error.WrapP(&err)

	b, err := decode(ed, edOffset, precision, t)
	if err != nil {
		return err
	}

	return b.Encode(pd, pdOffset, precision, true)
}
