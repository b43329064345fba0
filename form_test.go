package transcode

import (
	"encoding/binary"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupForm(t *testing.T) {
	tests := []struct {
		name     string
		expected Form
	}{
		{"utf8", FormUTF8},
		{"UTF-8", FormUTF8},
		{"utf-16le", FormUTF16LE},
		{"UTF_16BE", FormUTF16BE},
		{"utf16", FormUTF16BE},
		{"UTF-32LE", FormUTF32LE},
		{"utf 32 be", FormUTF32BE},
		{"ucs4", FormUTF32BE},
		{"UCS-4LE", FormUTF32LE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := LookupForm(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}

	_, err := LookupForm("latin1")
	assert.ErrorIs(t, err, ErrUnknownForm)
}

func TestRegisterAlias(t *testing.T) {
	require.NoError(t, RegisterAlias("wchar_t", FormUTF32LE))
	f, err := LookupForm("WCHAR-T")
	require.NoError(t, err)
	assert.Equal(t, FormUTF32LE, f)

	assert.ErrorIs(t, RegisterAlias("", FormUTF8), ErrUnknownForm)
	assert.ErrorIs(t, RegisterAlias("--", FormUTF8), ErrUnknownForm)
	assert.ErrorIs(t, RegisterAlias("bogus", Form(42)), ErrUnknownForm)
}

func TestFormRegistryConcurrency(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := fmt.Sprintf("alias-%d", i)
			want := Form(i % int(formCount))
			assert.NoError(t, RegisterAlias(name, want))
			for range 100 {
				f, err := LookupForm("utf-16le")
				assert.NoError(t, err)
				assert.Equal(t, FormUTF16LE, f)
			}
			f, err := LookupForm(name)
			assert.NoError(t, err)
			assert.Equal(t, want, f)
		}()
	}
	wg.Wait()
}

func TestFormProperties(t *testing.T) {
	tests := []struct {
		form  Form
		name  string
		size  int
		order binary.ByteOrder
	}{
		{FormUTF8, "UTF-8", 1, NativeOrder},
		{FormUTF16LE, "UTF-16LE", 2, binary.LittleEndian},
		{FormUTF16BE, "UTF-16BE", 2, binary.BigEndian},
		{FormUTF32LE, "UTF-32LE", 4, binary.LittleEndian},
		{FormUTF32BE, "UTF-32BE", 4, binary.BigEndian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.form.String())
			assert.Equal(t, tt.size, tt.form.UnitSize())
			assert.Equal(t, tt.order, tt.form.Order())
			assert.NoError(t, tt.form.check())
		})
	}
	assert.Equal(t, "Form(42)", Form(42).String())
	assert.ErrorIs(t, Form(42).check(), ErrUnknownForm)
}

func TestSwapFor(t *testing.T) {
	assert.False(t, SwapFor(NativeOrder))
	assert.False(t, SwapFor(binary.NativeEndian))
	assert.False(t, SwapFor(FormUTF8.Order()))

	foreign := binary.ByteOrder(binary.BigEndian)
	if NativeOrder == binary.BigEndian {
		foreign = binary.LittleEndian
	}
	assert.True(t, SwapFor(foreign))
}
