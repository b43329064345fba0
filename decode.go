package transcode

// DecodeUTF8 reads one code point from the start of src and reports how many
// bytes it consumed. Malformed input yields ReplacementChar:
//   - a trailing byte without the 10xxxxxx marker ends the sequence before that
//     byte, so a terminator inside a sequence is still seen by the caller;
//   - a sequence running past the end of src consumes the rest of src;
//   - a sequence announcing more than 4 bytes is consumed whole;
//   - surrogates, values above U+10FFFF and overlong forms are consumed whole.
//
// An empty src yields (ReplacementChar, 0).
func DecodeUTF8(src []byte) (Codepoint, int) {
	if len(src) == 0 {
		return ReplacementChar, 0
	}

	n := int(utf8Trailing[src[0]]) + 1
	avail := min(n, len(src))
	for j := 1; j < avail; j++ {
		if !isContinuation(src[j]) {
			return ReplacementChar, j
		}
	}
	if len(src) < n {
		return ReplacementChar, len(src)
	}
	if n > utf8MaxSequence {
		return ReplacementChar, n
	}

	c := utf8Sum(src[:n])
	if !c.Valid() || RuneLenUTF8(c) != n {
		return ReplacementChar, n
	}
	return c, n
}

// utf8Sum shifts the bytes of a sequence together and strips the marker bits.
// The caller guarantees 1 <= len(seq) <= 4.
func utf8Sum(seq []byte) Codepoint {
	var c Codepoint
	for _, b := range seq {
		c = c<<6 + Codepoint(b)
	}
	return c - utf8Bias[len(seq)]
}

// DecodeUTF16 reads one code point from the start of src, swapping each unit
// first when swap is set. A high surrogate needs a low surrogate right after
// it; an unpaired surrogate of either kind consumes one unit and yields
// ReplacementChar. An empty src yields (ReplacementChar, 0).
func DecodeUTF16(src []uint16, swap bool) (Codepoint, int) {
	if len(src) == 0 {
		return ReplacementChar, 0
	}

	u := swap16(src[0], swap)
	switch {
	case isHighSurrogate(u):
		if len(src) < 2 {
			return ReplacementChar, 1
		}
		t := swap16(src[1], swap)
		if !isLowSurrogate(t) {
			return ReplacementChar, 1
		}
		return combineSurrogates(u, t), 2
	case isLowSurrogate(u):
		return ReplacementChar, 1
	default:
		return Codepoint(u), 1
	}
}

// combineSurrogates joins the low 10 bits of a high and a low surrogate.
func combineSurrogates(hi, lo uint16) Codepoint {
	return (Codepoint(hi&0x3FF)<<10 | Codepoint(lo&0x3FF)) + utf16OneUnitLimit
}

// DecodeUTF32 reads one unit from src, swapping it first when swap is set.
// Surrogates and values above U+10FFFF yield ReplacementChar.
// An empty src yields (ReplacementChar, 0).
func DecodeUTF32(src []uint32, swap bool) (Codepoint, int) {
	if len(src) == 0 {
		return ReplacementChar, 0
	}
	c := Codepoint(swap32(src[0], swap))
	if !c.Valid() {
		return ReplacementChar, 1
	}
	return c, 1
}
