package command

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	Root.SetArgs(args)
	Root.SetIn(bytes.NewReader(stdin))
	Root.SetOut(&out)
	Root.SetErr(&bytes.Buffer{})
	err := Root.Execute()
	return out.String(), err
}

func TestFlagRegistration(t *testing.T) {
	for _, tt := range []struct {
		cmd  *cobra.Command
		flag string
		def  string
	}{
		{Inspect, "from", "utf8"},
		{Convert, "from", "utf8"},
		{Convert, "to", ""},
		{Convert, "lossy", "false"},
		{Convert, "out", ""},
	} {
		f := tt.cmd.Flags().Lookup(tt.flag)
		require.NotNil(t, f, "%s --%s should be registered", tt.cmd.Name(), tt.flag)
		assert.Equal(t, tt.def, f.DefValue)
	}
	require.NotNil(t, Root.PersistentFlags().Lookup("verbose"))
}

func TestInspect(t *testing.T) {
	out, err := run(t, []byte("H¢llo, 😁"), "inspect", "--from", "utf-8")
	require.NoError(t, err)
	assert.Contains(t, out, "UTF-8")
	assert.Contains(t, out, "valid")
	assert.Regexp(t, `units:\s+12\n`, out)
	assert.Regexp(t, `utf16 units:\s+9\n`, out)
	assert.Regexp(t, `utf32 units:\s+8\n`, out)

	out, err = run(t, []byte{0x2F, 0xC0, 0xAE, 0x2E, 0x2F}, "inspect", "--from", "utf8", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "overlong")
	assert.Contains(t, out, "at unit 1")

	_, err = run(t, nil, "inspect", "--from", "latin1")
	assert.ErrorContains(t, err, "invalid --from")
}

func TestConvert(t *testing.T) {
	out, err := run(t, []byte("a😁"), "convert", "--from", "utf8", "--to", "utf16be", "--lossy=false")
	require.NoError(t, err)
	assert.Equal(t, "\x00a\xd8\x3d\xde\x01", out)

	_, err = run(t, []byte{0xC0, 0x80}, "convert", "--from", "utf8", "--to", "utf32le", "--lossy=false")
	assert.Error(t, err)

	out, err = run(t, []byte{'a', 0xC0, 0x80}, "convert", "--from", "utf8", "--to", "utf8", "--lossy")
	require.NoError(t, err)
	assert.Equal(t, "a�", out)
}

func TestConvertFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte{0, 0, 0, 'h', 0, 0, 0, 'i'}, 0o644))

	_, err := run(t, nil, "convert", "--from", "utf32be", "--to", "utf8", "--lossy=false", "--out", dst, in)
	require.NoError(t, err)

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), got)

	_, err = run(t, nil, "convert", "--from", "utf8", "--to", "utf8", "--out", "", filepath.Join(dir, "missing"))
	assert.ErrorContains(t, err, "cannot read")
}

func TestConvertLogs(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	_, err := run(t, []byte{'a', 0xC0, 0x80}, "convert", "--from", "utf8", "--to", "utf16le", "--lossy", "--out", "")
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("replacing malformed input").Len())
	converted := logs.FilterMessage("converted").All()
	require.Len(t, converted, 1)
	assert.EqualValues(t, 3, converted[0].ContextMap()["in"])
	assert.EqualValues(t, 4, converted[0].ContextMap()["out"])
}

func TestSetLogger(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.NotPanics(t, func() { Logger().Info("discarded") })

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(zap.NewNop())
		}()
		go func() {
			defer wg.Done()
			Logger().Debug("concurrent")
		}()
	}
	wg.Wait()
}
