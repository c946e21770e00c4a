// Package trial provides test helpers that attach the inputs of an operation
// to every assertion made about it.
package trial

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"
)

// SeedEnv overrides the seed used by Rand.
const SeedEnv = "DATAACCESS_SEED"

// Rand returns a generator seeded from SeedEnv or the clock. The seed is
// logged so a failing run can be repeated.
func Rand(t testing.TB) *rand.Rand {
	t.Helper()

	seed := time.Now().UnixNano()

	if s, ok := os.LookupEnv(SeedEnv); ok {
		v, err := strconv.ParseInt(s, 10, 64)
		require.NoError(t, err, "parsing %s", SeedEnv)

		seed = v
	}

	t.Logf("%s=%d", SeedEnv, seed)

	return rand.New(rand.NewSource(seed))
}

type field struct {
	key   string
	value interface{}
}

// Trial records the inputs of one operation.
type Trial struct {
	Op     string
	fields []field
}

// New starts a trial for the named operation.
func New(op string) *Trial {
	return &Trial{
		Op: op,
	}
}

// With returns a copy of the trial with an additional input.
func (tr *Trial) With(key string, value interface{}) *Trial {
	fields := make([]field, len(tr.fields), len(tr.fields)+1)
	copy(fields, tr.fields)

	return &Trial{
		Op:     tr.Op,
		fields: append(fields, field{key, value}),
	}
}

// String renders the operation and its inputs. Byte slices are hex dumped.
func (tr *Trial) String() string {
	sb := &strings.Builder{}

	sb.WriteString(tr.Op)
	sb.WriteString("\n")

	for _, f := range tr.fields {
		switch v := f.value.(type) {
		case []byte:
			fmt.Fprintf(sb, "  %s:\n%s", f.key, spew.Sdump(v))
		default:
			fmt.Fprintf(sb, "  %s: %v\n", f.key, v)
		}
	}

	return sb.String()
}

// NoError fails the test if err is non-nil.
func (tr *Trial) NoError(t testing.TB, err error) {
	t.Helper()

	require.NoError(t, err, tr.String())
}

// Equal fails the test unless want and got are equal.
func (tr *Trial) Equal(t testing.TB, want, got interface{}) {
	t.Helper()

	require.Equal(t, want, got, tr.String())
}

// Class fails the test unless err carries the class.
func (tr *Trial) Class(t testing.TB, class *errs.Class, err error) {
	t.Helper()

	require.Error(t, err, tr.String())
	require.True(t, class.Has(err), "want %q got %v\n%s", string(*class), err, tr)
}
