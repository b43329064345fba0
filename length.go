package transcode

// The estimators below size a destination buffer before a conversion. They
// segment the source exactly as the decoders do and report no errors, so the
// result equals the number of units the matching transcoder writes, with
// each malformed sequence counted as the U+FFFD it decodes to. The terminator is not
// counted and nothing past it, or past the end of the slice, is read.

// utf8Segment returns the index just past the sequence that starts at src[i].
// The sequence ends early at the first byte without the 10xxxxxx marker,
// which includes a terminator.
func utf8Segment(src []byte, i int) int {
	end := min(i+1+int(utf8Trailing[src[i]]), len(src))
	next := i + 1
	for next < end && isContinuation(src[next]) {
		next++
	}
	return next
}

// utf16Segment returns the index just past the sequence that starts at src[i]:
// two units for a high surrogate followed by a low one, otherwise one.
func utf16Segment(src []uint16, i int, swap bool) int {
	if isHighSurrogate(swap16(src[i], swap)) && i+1 < len(src) && isLowSurrogate(swap16(src[i+1], swap)) {
		return i + 2
	}
	return i + 1
}

// UTF8InUTF16Len returns the number of UTF-16 units src needs.
func UTF8InUTF16Len(src []byte) int {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; {
		next := utf8Segment(src, i)
		n += utf8SegmentUTF16Len(src[i:next])
		i = next
	}
	return n
}

// utf8SegmentUTF16Len returns 2 for a complete 4-byte sequence holding a
// code point beyond the BMP. Anything else decodes to a single BMP code
// point or to U+FFFD.
func utf8SegmentUTF16Len(seq []byte) int {
	if len(seq) != utf8MaxSequence || int(utf8Trailing[seq[0]])+1 != utf8MaxSequence {
		return 1
	}
	if c := utf8Sum(seq); c >= utf16OneUnitLimit && c <= MaxCodepoint {
		return 2
	}
	return 1
}

// UTF8InUTF32Len returns the number of UTF-32 units src needs.
func UTF8InUTF32Len(src []byte) int {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; i = utf8Segment(src, i) {
		n++
	}
	return n
}

// UTF16InUTF8Len returns the number of UTF-8 bytes src needs.
func UTF16InUTF8Len(src []uint16, swap bool) int {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; {
		next := utf16Segment(src, i, swap)
		if next-i == 2 {
			n += 4
		} else {
			n += RuneLenUTF8(replaceInvalid(Codepoint(swap16(src[i], swap))))
		}
		i = next
	}
	return n
}

// UTF16InUTF32Len returns the number of UTF-32 units src needs.
func UTF16InUTF32Len(src []uint16, swap bool) int {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; i = utf16Segment(src, i, swap) {
		n++
	}
	return n
}

// UTF32InUTF8Len returns the number of UTF-8 bytes src needs.
func UTF32InUTF8Len(src []uint32, swap bool) int {
	n := 0
	for _, u := range src {
		if u == 0 {
			break
		}
		n += RuneLenUTF8(replaceInvalid(Codepoint(swap32(u, swap))))
	}
	return n
}

// UTF32InUTF16Len returns the number of UTF-16 units src needs.
func UTF32InUTF16Len(src []uint32, swap bool) int {
	n := 0
	for _, u := range src {
		if u == 0 {
			break
		}
		n += RuneLenUTF16(replaceInvalid(Codepoint(swap32(u, swap))))
	}
	return n
}
