package transcode

// ValidateUTF8 reports whether s, up to its terminator, is well-formed UTF-8.
// It returns the Status of the first violation, or Valid.
func ValidateUTF8(s []byte) Status {
	st, _ := ValidateUTF8At(s)
	return st
}

// ValidateUTF8At is ValidateUTF8 that also returns the byte offset of the
// sequence holding the first violation, or -1 when s is valid.
//
// A leading byte announcing more than 4 bytes is Overlong, as is a code point
// written with more bytes than it needs. A trailing byte without the 10xxxxxx
// marker, including a terminator or the end of s inside a sequence, is
// BadContinuation.
func ValidateUTF8At(s []byte) (Status, int) {
	for i := 0; i < len(s) && s[i] != 0; {
		n := int(utf8Trailing[s[i]]) + 1
		if n > utf8MaxSequence {
			return Overlong, i
		}
		for j := i + 1; j < i+n; j++ {
			if j >= len(s) || !isContinuation(s[j]) {
				return BadContinuation, i
			}
		}

		c := utf8Sum(s[i : i+n])
		if st := ValidateCodepoint(c); st != Valid {
			return st, i
		}
		if RuneLenUTF8(c) != n {
			return Overlong, i
		}
		i += n
	}
	return Valid, -1
}

// ValidateUTF16 reports whether s, up to its terminator, is well-formed
// UTF-16. Units are swapped before inspection when swap is set.
func ValidateUTF16(s []uint16, swap bool) Status {
	st, _ := ValidateUTF16At(s, swap)
	return st
}

// ValidateUTF16At is ValidateUTF16 that also returns the unit offset of the
// first violation, or -1 when s is valid. Every high surrogate must be
// followed by a low surrogate and every low surrogate preceded by a high one;
// anything else is UnmatchedSurrogate.
func ValidateUTF16At(s []uint16, swap bool) (Status, int) {
	for i := 0; i < len(s) && s[i] != 0; i++ {
		u := swap16(s[i], swap)
		switch {
		case isHighSurrogate(u):
			if i+1 >= len(s) || !isLowSurrogate(swap16(s[i+1], swap)) {
				return UnmatchedSurrogate, i
			}
			// A matched pair always lands in U+10000..U+10FFFF.
			i++
		case isLowSurrogate(u):
			return UnmatchedSurrogate, i
		}
	}
	return Valid, -1
}

// ValidateUTF32 reports whether every unit of s, up to its terminator, is a
// valid code point. Units are swapped before inspection when swap is set.
func ValidateUTF32(s []uint32, swap bool) Status {
	st, _ := ValidateUTF32At(s, swap)
	return st
}

// ValidateUTF32At is ValidateUTF32 that also returns the unit offset of the
// first violation, or -1 when s is valid.
func ValidateUTF32At(s []uint32, swap bool) (Status, int) {
	for i, u := range s {
		if u == 0 {
			break
		}
		if st := ValidateCodepoint(Codepoint(swap32(u, swap))); st != Valid {
			return st, i
		}
	}
	return Valid, -1
}
