package integer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/calebcase/dataaccess/external"
	"github.com/calebcase/dataaccess/integer"
	"github.com/calebcase/dataaccess/packed"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestConcurrent runs conversions from many goroutines, each on its own
// buffers. The codec holds no shared state so every result must round trip.
func TestConcurrent(t *testing.T) {
	g, ctx := errgroup.WithContext(context.Background())

	for w := 0; w < 16; w++ {
		w := int64(w)

		g.Go(func() error {
			pd := make([]byte, packed.ByteLength(19))
			ed := make([]byte, external.ByteLength(19, external.SeparateLeading))

			for i := int64(0); i < 500; i++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				v := (w*1_000_003 + i) * -7919

				err := integer.LongToPacked(v, pd, 0, 19, true)
				if err != nil {
					return err
				}

				err = external.PackedToExternal(pd, 0, ed, 0, 19, external.SeparateLeading)
				if err != nil {
					return err
				}

				got, err := integer.ExternalToLong(ed, 0, 19, true, external.SeparateLeading)
				if err != nil {
					return err
				}

				if got != v {
					return integer.Error.New("worker %d: got %d want %d", w, got, v)
				}
			}

			return nil
		})
	}

	require.NoError(t, g.Wait())
}
