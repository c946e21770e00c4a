// Package marshal reads and writes native binary values at offsets within a
// byte array in either byte order.
package marshal

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/errs"

	"github.com/calebcase/dataaccess"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("marshal")

func order(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// WriteShort writes v at offset.
func WriteShort(v int16, buf []byte, offset int, bigEndian bool) (err error) {
	defer Error.WrapP(&err)

	err = dataaccess.CheckRange("buffer", buf, offset, 2)
	if err != nil {
		return err
	}

	order(bigEndian).PutUint16(buf[offset:], uint16(v))

	return nil
}

// WriteInt writes v at offset.
func WriteInt(v int32, buf []byte, offset int, bigEndian bool) (err error) {
	defer Error.WrapP(&err)

	err = dataaccess.CheckRange("buffer", buf, offset, 4)
	if err != nil {
		return err
	}

	order(bigEndian).PutUint32(buf[offset:], uint32(v))

	return nil
}

// WriteLong writes v at offset.
func WriteLong(v int64, buf []byte, offset int, bigEndian bool) (err error) {
	defer Error.WrapP(&err)

	err = dataaccess.CheckRange("buffer", buf, offset, 8)
	if err != nil {
		return err
	}

	order(bigEndian).PutUint64(buf[offset:], uint64(v))

	return nil
}

// WriteFloat writes the IEEE 754 bits of v at offset.
func WriteFloat(v float32, buf []byte, offset int, bigEndian bool) error {
	return WriteInt(int32(math.Float32bits(v)), buf, offset, bigEndian)
}

// WriteDouble writes the IEEE 754 bits of v at offset.
func WriteDouble(v float64, buf []byte, offset int, bigEndian bool) error {
	return WriteLong(int64(math.Float64bits(v)), buf, offset, bigEndian)
}

// ReadShort reads an int16 at offset.
func ReadShort(buf []byte, offset int, bigEndian bool) (v int16, err error) {
	defer Error.WrapP(&err)

	err = dataaccess.CheckRange("buffer", buf, offset, 2)
	if err != nil {
		return 0, err
	}

	return int16(order(bigEndian).Uint16(buf[offset:])), nil
}

// ReadInt reads an int32 at offset.
func ReadInt(buf []byte, offset int, bigEndian bool) (v int32, err error) {
	defer Error.WrapP(&err)

	err = dataaccess.CheckRange("buffer", buf, offset, 4)
	if err != nil {
		return 0, err
	}

	return int32(order(bigEndian).Uint32(buf[offset:])), nil
}

// ReadLong reads an int64 at offset.
func ReadLong(buf []byte, offset int, bigEndian bool) (v int64, err error) {
	defer Error.WrapP(&err)

	err = dataaccess.CheckRange("buffer", buf, offset, 8)
	if err != nil {
		return 0, err
	}

	return int64(order(bigEndian).Uint64(buf[offset:])), nil
}

// ReadFloat reads an IEEE 754 float32 at offset.
func ReadFloat(buf []byte, offset int, bigEndian bool) (float32, error) {
	v, err := ReadInt(buf, offset, bigEndian)

	return math.Float32frombits(uint32(v)), err
}

// ReadDouble reads an IEEE 754 float64 at offset.
func ReadDouble(buf []byte, offset int, bigEndian bool) (float64, error) {
	v, err := ReadLong(buf, offset, bigEndian)

	return math.Float64frombits(uint64(v)), err
}

// put writes the low numBytes bytes of v.
func put(v uint64, buf []byte, offset int, bigEndian bool, numBytes, width int) error {
	if numBytes < 0 || numBytes > width {
		return dataaccess.ArgumentError.New("numBytes must be in [0, %d]: %d", width, numBytes)
	}

	err := dataaccess.CheckRange("buffer", buf, offset, numBytes)
	if err != nil {
		return err
	}

	for i := 0; i < numBytes; i++ {
		b := byte(v >> (8 * i))
		if bigEndian {
			buf[offset+numBytes-1-i] = b
		} else {
			buf[offset+i] = b
		}
	}

	return nil
}

// get reads numBytes bytes, optionally sign extending the most significant
// one.
func get(buf []byte, offset int, bigEndian bool, numBytes, width int, signExtend bool) (uint64, error) {
	if numBytes < 0 || numBytes > width {
		return 0, dataaccess.ArgumentError.New("numBytes must be in [0, %d]: %d", width, numBytes)
	}

	err := dataaccess.CheckRange("buffer", buf, offset, numBytes)
	if err != nil {
		return 0, err
	}

	var v uint64
	for i := 0; i < numBytes; i++ {
		var b byte
		if bigEndian {
			b = buf[offset+numBytes-1-i]
		} else {
			b = buf[offset+i]
		}

		v |= uint64(b) << (8 * i)
	}

	if signExtend && numBytes > 0 && numBytes < 8 && v&(1<<(8*numBytes-1)) != 0 {
		v |= math.MaxUint64 << (8 * numBytes)
	}

	return v, nil
}

// WriteShortBytes writes the low numBytes (0-2) bytes of v at offset.
func WriteShortBytes(v int16, buf []byte, offset int, bigEndian bool, numBytes int) (err error) {
	defer Error.WrapP(&err)

	return put(uint64(v), buf, offset, bigEndian, numBytes, 2)
}

// WriteIntBytes writes the low numBytes (0-4) bytes of v at offset.
func WriteIntBytes(v int32, buf []byte, offset int, bigEndian bool, numBytes int) (err error) {
	defer Error.WrapP(&err)

	return put(uint64(v), buf, offset, bigEndian, numBytes, 4)
}

// WriteLongBytes writes the low numBytes (0-8) bytes of v at offset.
func WriteLongBytes(v int64, buf []byte, offset int, bigEndian bool, numBytes int) (err error) {
	defer Error.WrapP(&err)

	return put(uint64(v), buf, offset, bigEndian, numBytes, 8)
}

// ReadShortBytes reads numBytes (0-2) bytes at offset into an int16.
func ReadShortBytes(buf []byte, offset int, bigEndian bool, numBytes int, signExtend bool) (v int16, err error) {
	defer Error.WrapP(&err)

	u, err := get(buf, offset, bigEndian, numBytes, 2, signExtend)

	return int16(u), err
}

// ReadIntBytes reads numBytes (0-4) bytes at offset into an int32.
func ReadIntBytes(buf []byte, offset int, bigEndian bool, numBytes int, signExtend bool) (v int32, err error) {
	defer Error.WrapP(&err)

	u, err := get(buf, offset, bigEndian, numBytes, 4, signExtend)

	return int32(u), err
}

// ReadLongBytes reads numBytes (0-8) bytes at offset into an int64.
func ReadLongBytes(buf []byte, offset int, bigEndian bool, numBytes int, signExtend bool) (v int64, err error) {
	defer Error.WrapP(&err)

	u, err := get(buf, offset, bigEndian, numBytes, 8, signExtend)

	return int64(u), err
}
