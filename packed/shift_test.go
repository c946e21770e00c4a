package packed_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"

	"github.com/calebcase/dataaccess"
	"github.com/calebcase/dataaccess/internal/trial"
	"github.com/calebcase/dataaccess/packed"
)

func TestShiftLeft(t *testing.T) {
	type TC struct {
		Input        []byte
		Precision    int
		DstPrecision int
		Amount       int
		Check        bool
		Output       []byte
		Class        *errs.Class
		Mark         error
	}

	tcs := []TC{
		{
			Input:        []byte{0x00, 0x9C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       2,
			Check:        false,
			Output:       []byte{0x90, 0x0C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x00, 0x9C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       2,
			Check:        true,
			Output:       []byte{0x90, 0x0C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x3D},
			Precision:    3,
			DstPrecision: 3,
			Amount:       1,
			Check:        true,
			Class:        &dataaccess.OverflowError,
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x3D},
			Precision:    3,
			DstPrecision: 3,
			Amount:       1,
			Check:        false,
			Output:       []byte{0x23, 0x0D},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x3D},
			Precision:    3,
			DstPrecision: 6,
			Amount:       3,
			Check:        true,
			Output:       []byte{0x01, 0x23, 0x00, 0x0D},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x3C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       1 << 30,
			Check:        false,
			Output:       []byte{0x00, 0x0C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x3D},
			Precision:    3,
			DstPrecision: 3,
			Amount:       3,
			Check:        false,
			Output:       []byte{0x00, 0x0C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x3C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       -1,
			Check:        true,
			Class:        &dataaccess.ArgumentError,
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x00, 0x00},
			Precision:    3,
			DstPrecision: 3,
			Amount:       1,
			Check:        true,
			Class:        &dataaccess.MalformedError,
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x3C},
			Precision:    3,
			DstPrecision: 0,
			Amount:       1,
			Check:        true,
			Class:        &dataaccess.ArgumentError,
			Mark:         oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%x<<%d", i, tc.Input, tc.Amount), func(t *testing.T) {
			dst := make([]byte, packed.ByteLength(max(tc.DstPrecision, 1)))

			err := packed.ShiftLeft(dst, 0, tc.DstPrecision, tc.Input, 0, tc.Precision, tc.Amount, tc.Check)
			if tc.Class != nil {
				require.Error(t, err, tc.Mark)
				require.True(t, tc.Class.Has(err), tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, dst, tc.Mark)
		})
	}
}

func TestShiftRight(t *testing.T) {
	type TC struct {
		Input        []byte
		Precision    int
		DstPrecision int
		Amount       int
		Rounded      bool
		Check        bool
		Output       []byte
		Class        *errs.Class
		Mark         error
	}

	tcs := []TC{
		{
			Input:        []byte{0x01, 0x23, 0x00, 0x0C},
			Precision:    6,
			DstPrecision: 6,
			Amount:       2,
			Output:       []byte{0x00, 0x01, 0x23, 0x0C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x5C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       1,
			Rounded:      true,
			Output:       []byte{0x01, 0x3C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x4C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       1,
			Rounded:      true,
			Output:       []byte{0x01, 0x2C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x5D},
			Precision:    3,
			DstPrecision: 3,
			Amount:       1,
			Rounded:      true,
			Output:       []byte{0x01, 0x3D},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x9D},
			Precision:    3,
			DstPrecision: 3,
			Amount:       1,
			Rounded:      false,
			Output:       []byte{0x01, 0x2D},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x99, 0x5C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       1,
			Rounded:      true,
			Output:       []byte{0x10, 0x0C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x99, 0x5C},
			Precision:    3,
			DstPrecision: 2,
			Amount:       1,
			Rounded:      true,
			Check:        true,
			Class:        &dataaccess.OverflowError,
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x99, 0x5C},
			Precision:    3,
			DstPrecision: 2,
			Amount:       1,
			Rounded:      true,
			Check:        false,
			Output:       []byte{0x00, 0x0C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x50, 0x0C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       3,
			Rounded:      true,
			Output:       []byte{0x00, 0x1C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x3C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       5,
			Rounded:      true,
			Output:       []byte{0x00, 0x0C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x00, 0x5D},
			Precision:    3,
			DstPrecision: 1,
			Amount:       1,
			Output:       []byte{0x0C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x3C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       0,
			Rounded:      true,
			Output:       []byte{0x12, 0x3C},
			Mark:         oops.New("unexpected"),
		},
		{
			Input:        []byte{0x12, 0x3C},
			Precision:    3,
			DstPrecision: 3,
			Amount:       -2,
			Class:        &dataaccess.ArgumentError,
			Mark:         oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%x>>%d", i, tc.Input, tc.Amount), func(t *testing.T) {
			dst := make([]byte, packed.ByteLength(tc.DstPrecision))

			err := packed.ShiftRight(dst, 0, tc.DstPrecision, tc.Input, 0, tc.Precision, tc.Amount, tc.Rounded, tc.Check)
			if tc.Class != nil {
				require.Error(t, err, tc.Mark)
				require.True(t, tc.Class.Has(err), tc.Mark)

				return
			}

			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, dst, tc.Mark)
		})
	}
}

func TestMove(t *testing.T) {
	src := []byte{0x12, 0x34, 0x5C}

	t.Run("widen", func(t *testing.T) {
		dst := make([]byte, 5)
		dst[0] = 0xEE

		require.NoError(t, packed.Move(dst, 1, 7, src, 0, 5, true))
		require.Equal(t, []byte{0xEE, 0x00, 0x12, 0x34, 0x5C}, dst)
	})

	t.Run("narrow", func(t *testing.T) {
		dst := []byte{0xAA, 0xBB}

		err := packed.Move(dst, 0, 3, src, 0, 5, true)
		require.True(t, dataaccess.OverflowError.Has(err))
		require.Equal(t, []byte{0xAA, 0xBB}, dst)

		require.NoError(t, packed.Move(dst, 0, 3, src, 0, 5, false))
		require.Equal(t, []byte{0x34, 0x5C}, dst)
	})

	t.Run("normalizes sign", func(t *testing.T) {
		dst := make([]byte, 3)

		require.NoError(t, packed.Move(dst, 0, 5, []byte{0x12, 0x34, 0x5F}, 0, 5, true))
		require.Equal(t, []byte{0x12, 0x34, 0x5C}, dst)

		require.NoError(t, packed.Move(dst, 0, 5, []byte{0x12, 0x34, 0x5B}, 0, 5, true))
		require.Equal(t, []byte{0x12, 0x34, 0x5D}, dst)
	})

	t.Run("destination out of bounds", func(t *testing.T) {
		dst := []byte{0xAA}

		err := packed.Move(dst, 0, 5, src, 0, 5, true)
		require.True(t, dataaccess.BoundsError.Has(err))
		require.Equal(t, []byte{0xAA}, dst)

		err = packed.Move(nil, 0, 5, src, 0, 5, true)
		require.True(t, dataaccess.NullError.Has(err))

		err = packed.Move(dst, 0, 1, nil, 0, 5, true)
		require.True(t, dataaccess.NullError.Has(err))
	})
}

func TestShiftAlias(t *testing.T) {
	buf := []byte{0x00, 0x12, 0x3D}

	require.NoError(t, packed.ShiftLeft(buf, 0, 5, buf, 0, 5, 2, true))
	require.Equal(t, []byte{0x12, 0x30, 0x0D}, buf)

	require.NoError(t, packed.ShiftRight(buf, 0, 5, buf, 0, 5, 2, false, true))
	require.Equal(t, []byte{0x00, 0x12, 0x3D}, buf)
}

func TestZeroSign(t *testing.T) {
	src := []byte{0x5D}

	t.Run("normalized", func(t *testing.T) {
		dst := make([]byte, 1)

		require.NoError(t, packed.ShiftRight(dst, 0, 1, src, 0, 1, 1, false, true))
		require.Equal(t, []byte{0x0C}, dst)

		require.NoError(t, packed.Move(dst, 0, 1, []byte{0x0D}, 0, 1, true))
		require.Equal(t, []byte{0x0C}, dst)
	})

	t.Run("preserved", func(t *testing.T) {
		s := packed.Shifter{PreserveZeroSign: true}
		dst := make([]byte, 1)

		require.NoError(t, s.ShiftRight(dst, 0, 1, src, 0, 1, 1, false, true))
		require.Equal(t, []byte{0x0D}, dst)

		require.NoError(t, s.ShiftLeft(dst, 0, 1, src, 0, 1, 1, false))
		require.Equal(t, []byte{0x0D}, dst)

		require.NoError(t, s.Move(dst, 0, 1, []byte{0x0C}, 0, 1, true))
		require.Equal(t, []byte{0x0C}, dst)
	})
}

// randomDigits returns a random value with up to precision digits.
func randomDigits(r interface{ Intn(int) int }, precision int) string {
	n := 1 + r.Intn(precision)

	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + r.Intn(10))
	}

	if r.Intn(2) == 0 {
		return "-" + string(digits)
	}

	return string(digits)
}

func TestShiftInverse(t *testing.T) {
	r := trial.Rand(t)

	for i := 0; i < 500; i++ {
		precision := 1 + r.Intn(31)
		amount := r.Intn(20)
		value := randomDigits(r, precision)

		tr := trial.New("ShiftLeft/ShiftRight").
			With("value", value).
			With("precision", precision).
			With("amount", amount)

		src := pd(t, value, precision)
		tr = tr.With("src", src)

		mid := make([]byte, packed.ByteLength(precision+amount))
		tr.NoError(t, packed.ShiftLeft(mid, 0, precision+amount, src, 0, precision, amount, true))
		tr = tr.With("mid", mid)

		out := make([]byte, len(src))
		tr.NoError(t, packed.ShiftRight(out, 0, precision, mid, 0, precision+amount, amount, false, true))

		want, err := packed.Decode(src, 0, precision)
		tr.NoError(t, err)

		got, err := packed.Decode(out, 0, precision)
		tr.NoError(t, err)

		if diff := cmp.Diff(want.Big().String(), got.Big().String()); diff != "" {
			t.Fatalf("round trip mismatch (-want +got):\n%s\n%s", diff, tr)
		}
	}
}

func TestShiftRightRounding(t *testing.T) {
	r := trial.Rand(t)
	ten := big.NewInt(10)

	for i := 0; i < 500; i++ {
		precision := 2 + r.Intn(30)
		value := randomDigits(r, precision)

		tr := trial.New("ShiftRight").
			With("value", value).
			With("precision", precision)

		src := pd(t, value, precision)

		b, err := packed.Decode(src, 0, precision)
		tr.NoError(t, err)

		v := b.Big()
		mag := new(big.Int).Abs(v)

		q, m := new(big.Int).QuoRem(mag, ten, new(big.Int))
		if m.Int64() >= 5 {
			q.Add(q, big.NewInt(1))
		}
		if v.Sign() < 0 {
			q.Neg(q)
		}

		out := make([]byte, len(src))
		tr.NoError(t, packed.ShiftRight(out, 0, precision, src, 0, precision, 1, true, true))

		got, err := packed.Decode(out, 0, precision)
		tr.NoError(t, err)
		tr.Equal(t, q.String(), got.Big().String())
	}
}
