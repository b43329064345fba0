package transcode

// utf8Trailing gives, for a leading byte, the number of bytes that follow it in
// its sequence. Values above 3 describe sequences UTF-8 no longer allows.
// Continuation bytes (0x80..0xBF) map to 0 so a stray one is read as a single
// byte and rejected by the minimal-length check.
var utf8Trailing = [256]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x00-0x0F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x10-0x1F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x20-0x2F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x30-0x3F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x40-0x4F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x50-0x5F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x60-0x6F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x70-0x7F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x80-0x8F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0x90-0x9F
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xA0-0xAF
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 0xB0-0xBF
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xC0-0xCF
	1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, // 0xD0-0xDF
	2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, // 0xE0-0xEF
	3, 3, 3, 3, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, // 0xF0-0xFF
}

// utf8Bias is the sum of the marker bits a sequence of the indexed length
// accumulates while its bytes are shifted together. Subtracting it leaves the
// code point.
var utf8Bias = [utf8MaxSequence + 1]Codepoint{
	0,
	0,
	0xC0<<6 | 0x80,
	0xE0<<12 | 0x80<<6 | 0x80,
	0xF0<<18 | 0x80<<12 | 0x80<<6 | 0x80,
}

// utf8LeadMask holds the marker bits of a leading byte for the indexed length.
var utf8LeadMask = [utf8MaxSequence + 1]byte{
	0b00000000,
	0b00000000,
	0b11000000,
	0b11100000,
	0b11110000,
}

const (
	utf8ContinuationMark = 0b10000000
	utf8ContinuationMask = 0b11000000
	utf8PayloadMask      = 0b00111111
)

func isContinuation(b byte) bool { return b&utf8ContinuationMask == utf8ContinuationMark }
