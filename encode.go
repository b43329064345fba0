package transcode

// EncodeUTF8 writes the minimal UTF-8 form of c to dst and returns the number
// of bytes written. When the sequence does not fit, dst is zero-filled and 0
// is returned. Invalid code points are written as ReplacementChar.
func EncodeUTF8(dst []byte, c Codepoint) int {
	if !c.Valid() {
		c = ReplacementChar
	}
	if c < utf8OneUnitLimit {
		if len(dst) == 0 {
			return 0
		}
		dst[0] = byte(c)
		return 1
	}

	n := RuneLenUTF8(c)
	if n > len(dst) {
		clear(dst)
		return 0
	}
	// Trailing bytes low to high, then the leading byte with what is left.
	for i := n - 1; i > 0; i-- {
		dst[i] = utf8ContinuationMark | byte(c)&utf8PayloadMask
		c >>= 6
	}
	dst[0] = utf8LeadMask[n] | byte(c)
	return n
}

// EncodeUTF16 writes c to dst as one unit or a surrogate pair, swapping each
// unit when swap is set. It returns the number of units written; when a pair
// does not fit, dst is zero-filled and 0 is returned. Invalid code points are
// written as ReplacementChar.
func EncodeUTF16(dst []uint16, c Codepoint, swap bool) int {
	if !c.Valid() {
		c = ReplacementChar
	}
	if c < utf16OneUnitLimit {
		if len(dst) == 0 {
			return 0
		}
		dst[0] = swap16(uint16(c), swap)
		return 1
	}

	if len(dst) < 2 {
		clear(dst)
		return 0
	}
	c -= utf16OneUnitLimit
	dst[0] = swap16(uint16(c>>10&0x3FF)|surrogateHighStart, swap)
	dst[1] = swap16(uint16(c&0x3FF)|surrogateLowStart, swap)
	return 2
}

// EncodeUTF32 writes c to dst as a single unit, swapped when swap is set.
// It returns 0 when dst is empty.
func EncodeUTF32(dst []uint32, c Codepoint, swap bool) int {
	if len(dst) == 0 {
		return 0
	}
	if !c.Valid() {
		c = ReplacementChar
	}
	dst[0] = swap32(uint32(c), swap)
	return 1
}
