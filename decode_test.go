package transcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeUTF8(t *testing.T) {
	tests := []struct {
		name     string
		src      []byte
		expected Codepoint
		consumed int
	}{
		{"Empty", nil, ReplacementChar, 0},
		{"Terminator", []byte{0x00}, 0, 1},
		{"ASCII", []byte("Ab"), 'A', 1},
		{"TwoBytes", []byte("¢"), 0xA2, 2},
		{"ThreeBytes", []byte("試"), 0x8A66, 3},
		{"FourBytes", []byte("😁"), 0x1F601, 4},
		{"Max", []byte{0xF4, 0x8F, 0xBF, 0xBF}, MaxCodepoint, 4},
		{"BadSecondByte", []byte{0xC2, 0x41}, ReplacementChar, 1},
		{"BadThirdByte", []byte{0xE8, 0xA9, 0x41}, ReplacementChar, 2},
		{"TerminatorInsideSequence", []byte{0xE8, 0x00, 0xA6}, ReplacementChar, 1},
		{"Truncated", []byte{0xE8, 0xA9}, ReplacementChar, 2},
		{"OverlongNul", []byte{0xC0, 0x80}, ReplacementChar, 2},
		{"OverlongDot", []byte{0xC0, 0xAE}, ReplacementChar, 2},
		{"OverlongThreeBytes", []byte{0xE0, 0x80, 0xAF}, ReplacementChar, 3},
		{"Surrogate", []byte{0xED, 0xA1, 0x8C}, ReplacementChar, 3},
		{"OutOfRange", []byte{0xF4, 0x90, 0x80, 0x80}, ReplacementChar, 4},
		{"FiveByteLead", []byte{0xF8, 0x88, 0x80, 0x80, 0x80}, ReplacementChar, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, n := DecodeUTF8(tt.src)
			assert.Equal(t, tt.expected, c)
			assert.Equal(t, tt.consumed, n)
		})
	}
}

func TestDecodeUTF16(t *testing.T) {
	tests := []struct {
		name     string
		src      []uint16
		swap     bool
		expected Codepoint
		consumed int
	}{
		{"Empty", nil, false, ReplacementChar, 0},
		{"ASCII", []uint16{0x41, 0x42}, false, 'A', 1},
		{"BMP", []uint16{0x8A66}, false, 0x8A66, 1},
		{"Pair", []uint16{0xD83D, 0xDE01}, false, 0x1F601, 2},
		{"FirstPair", []uint16{0xD800, 0xDC00}, false, 0x10000, 2},
		{"LastPair", []uint16{0xDBFF, 0xDFFF}, false, MaxCodepoint, 2},
		{"HighAtEnd", []uint16{0xD83D}, false, ReplacementChar, 1},
		{"HighThenBMP", []uint16{0xD83D, 0x41}, false, ReplacementChar, 1},
		{"HighThenHigh", []uint16{0xD83D, 0xD83D}, false, ReplacementChar, 1},
		{"LoneLow", []uint16{0xDE01, 0x41}, false, ReplacementChar, 1},
		{"SwappedASCII", []uint16{0x4100}, true, 'A', 1},
		{"SwappedPair", []uint16{0x3DD8, 0x01DE}, true, 0x1F601, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, n := DecodeUTF16(tt.src, tt.swap)
			assert.Equal(t, tt.expected, c)
			assert.Equal(t, tt.consumed, n)
		})
	}
}

func TestDecodeUTF32(t *testing.T) {
	tests := []struct {
		name     string
		src      []uint32
		swap     bool
		expected Codepoint
		consumed int
	}{
		{"Empty", nil, false, ReplacementChar, 0},
		{"ASCII", []uint32{'A'}, false, 'A', 1},
		{"Astral", []uint32{0x1F601}, false, 0x1F601, 1},
		{"Surrogate", []uint32{0xD800}, false, ReplacementChar, 1},
		{"OutOfRange", []uint32{0x110000}, false, ReplacementChar, 1},
		{"Swapped", []uint32{0x01F60100}, true, 0x1F601, 1},
		{"SwappedSurrogate", []uint32{0x00D80000}, true, ReplacementChar, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, n := DecodeUTF32(tt.src, tt.swap)
			assert.Equal(t, tt.expected, c)
			assert.Equal(t, tt.consumed, n)
		})
	}
}
