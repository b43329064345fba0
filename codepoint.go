package transcode

// Codepoint is a candidate Unicode scalar value. All three encoding forms
// decode into it and encode from it.
type Codepoint uint32

const (
	// ReplacementChar is substituted for input that cannot be decoded.
	ReplacementChar Codepoint = 0xFFFD

	// MaxCodepoint is the last valid Unicode code point.
	MaxCodepoint Codepoint = 0x10FFFF
)

const (
	surrogateHighStart = 0xD800
	surrogateHighEnd   = 0xDBFF
	surrogateLowStart  = 0xDC00
	surrogateLowEnd    = 0xDFFF

	// Code points at or above this value need a surrogate pair in UTF-16.
	utf16OneUnitLimit = 0x10000

	utf8OneUnitLimit   = 0x80
	utf8TwoUnitLimit   = 0x800
	utf8ThreeUnitLimit = 0x10000

	utf8MaxSequence = 4
)

// ValidateCodepoint reports whether c is an admissible scalar value.
// It returns Valid, SurrogateCodepoint or OutOfRange.
func ValidateCodepoint(c Codepoint) Status {
	if surrogateHighStart <= c && c <= surrogateLowEnd {
		return SurrogateCodepoint
	}
	if c > MaxCodepoint {
		return OutOfRange
	}
	return Valid
}

// Valid reports whether c is a Unicode scalar value.
func (c Codepoint) Valid() bool { return ValidateCodepoint(c) == Valid }

func isHighSurrogate[T ~uint16 | ~uint32](u T) bool {
	return surrogateHighStart <= u && u <= surrogateHighEnd
}

func isLowSurrogate[T ~uint16 | ~uint32](u T) bool {
	return surrogateLowStart <= u && u <= surrogateLowEnd
}

// RuneLenUTF8 returns the number of bytes the minimal UTF-8 encoding of c uses.
// It does not check c for validity.
func RuneLenUTF8(c Codepoint) int {
	switch {
	case c < utf8OneUnitLimit:
		return 1
	case c < utf8TwoUnitLimit:
		return 2
	case c < utf8ThreeUnitLimit:
		return 3
	default:
		return 4
	}
}

// RuneLenUTF16 returns the number of UTF-16 units needed for c.
func RuneLenUTF16(c Codepoint) int {
	if c < utf16OneUnitLimit {
		return 1
	}
	return 2
}
