package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/dataaccess"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}

	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return strings.TrimSpace(out.String()), err
}

func TestCommands(t *testing.T) {
	type TC struct {
		name string
		args []string
		want string
	}

	tcs := []TC{
		{name: "pack", args: []string{"pack", "-p", "5", "-s", "2", "20.47"}, want: "02047c"},
		{name: "pack truncates", args: []string{"pack", "-p", "5", "-s", "2", "20.479"}, want: "02047c"},
		{name: "pack unchecked", args: []string{"pack", "-p", "3", "--check-overflow=false", "123456"}, want: "456c"},
		{name: "pack external", args: []string{"pack", "-p", "3", "-t", "embedded-trailing", "--", "-123"}, want: "f1f2d3"},
		{name: "pack unicode", args: []string{"pack", "-p", "4", "-t", "unicode-separate-leading", "--", "-123"}, want: "-0123"},
		{name: "unpack", args: []string{"unpack", "-p", "5", "-s", "2", "02047c"}, want: "20.47"},
		{name: "unpack external", args: []string{"unpack", "-p", "3", "-t", "4", "60f0f1f2"}, want: "-12"},
		{name: "unpack unicode", args: []string{"unpack", "-p", "4", "-t", "unicode-separate-leading", "--", "-0123"}, want: "-123"},
		{name: "shift left", args: []string{"shift", "left", "-p", "3", "009c", "2"}, want: "900c"},
		{name: "shift right", args: []string{"shift", "right", "-p", "7", "0123000c", "2"}, want: "0001230c"},
		{name: "shift right rounded", args: []string{"shift", "right", "-p", "3", "--rounded", "--to-precision", "1", "155c", "2"}, want: "2c"},
		{name: "move", args: []string{"move", "-p", "3", "--to-precision", "5", "123d"}, want: "00123d"},
		{name: "check valid", args: []string{"check", "-p", "3", "123f"}, want: "valid"},
		{name: "check invalid", args: []string{"check", "-p", "3", "1aa7"}, want: "invalid sign, invalid digit"},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			got, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "pack", "-p", "3", "123456")
	require.True(t, dataaccess.OverflowError.Has(err))

	_, err = run(t, "pack", "-p", "0", "1")
	require.Error(t, err)

	_, err = run(t, "pack", "-t", "zoned", "1")
	require.True(t, dataaccess.ArgumentError.Has(err))

	_, err = run(t, "unpack", "-p", "3", "zz")
	require.Error(t, err)

	_, err = run(t, "unpack", "-p", "3", "12a3")
	require.Error(t, err)

	_, err = run(t, "shift", "left", "-p", "3", "--", "123c", "-1")
	require.True(t, dataaccess.ArgumentError.Has(err))

	_, err = run(t, "move", "-p", "3", "123c")
	require.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataaccess.yaml")

	err := os.WriteFile(path, []byte("precision: 5\nscale: 2\ntype: separate-trailing\n"), 0o644)
	require.NoError(t, err)

	got, err := run(t, "pack", "--config", path, "1.5")
	require.NoError(t, err)
	require.Equal(t, "f0f0f1f5f04e", got)

	got, err = run(t, "pack", "--config", path, "-t", "packed", "1.5")
	require.NoError(t, err)
	require.Equal(t, "00150c", got)
}

func TestConfigFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dataaccess.yaml")

	err := os.WriteFile(path, []byte("precision: 0\ntype: zoned\n"), 0o644)
	require.NoError(t, err)

	_, err = run(t, "pack", "--config", path, "12")
	require.Error(t, err)

	_, err = run(t, "pack", "--config", path, "-p", "3", "12")
	require.True(t, dataaccess.ArgumentError.Has(err))

	got, err := run(t, "pack", "--config", path, "-p", "3", "-t", "packed", "12")
	require.NoError(t, err)
	require.Equal(t, "012c", got)
}
