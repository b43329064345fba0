package transcode

// Transcode converts whole code points from src to dst, decoding with from
// and encoding with to. It stops at the first of: src exhausted, the next
// code point not fitting in dst, or a decoded zero code point (the
// terminator, which is neither written nor counted).
//
// It returns the number of units written to dst and consumed from src.
// Malformed source sequences are written as U+FFFD and conversion continues;
// use the Validate functions first when a faithful result is required.
func Transcode[S, D Unit](dst []D, src []S, from Encoding[S], to Encoding[D], swap bool) (nDst, nSrc int) {
	for nDst < len(dst) && nSrc < len(src) {
		c, consumed := from.Decode(src[nSrc:], swap)
		if c == 0 {
			break
		}
		produced := to.Encode(dst[nDst:], c, swap)
		if produced == 0 {
			break
		}
		nDst += produced
		nSrc += consumed
	}
	return nDst, nSrc
}

// UTF8ToUTF16 converts UTF-8 src into UTF-16 dst, swapping the written units
// when swap is set. See Transcode.
func UTF8ToUTF16(dst []uint16, src []byte, swap bool) (nDst, nSrc int) {
	return Transcode(dst, src, UTF8, UTF16, swap)
}

// UTF8ToUTF32 converts UTF-8 src into UTF-32 dst, swapping the written units
// when swap is set. See Transcode.
func UTF8ToUTF32(dst []uint32, src []byte, swap bool) (nDst, nSrc int) {
	return Transcode(dst, src, UTF8, UTF32, swap)
}

// UTF16ToUTF8 converts UTF-16 src, swapped on read when swap is set, into
// UTF-8 dst. See Transcode.
func UTF16ToUTF8(dst []byte, src []uint16, swap bool) (nDst, nSrc int) {
	return Transcode(dst, src, UTF16, UTF8, swap)
}

// UTF16ToUTF32 converts UTF-16 src into UTF-32 dst. Both sides use the same
// byte order: swap applies to reads and writes. See Transcode.
func UTF16ToUTF32(dst []uint32, src []uint16, swap bool) (nDst, nSrc int) {
	return Transcode(dst, src, UTF16, UTF32, swap)
}

// UTF32ToUTF16 converts UTF-32 src into UTF-16 dst. Both sides use the same
// byte order: swap applies to reads and writes. See Transcode.
func UTF32ToUTF16(dst []uint16, src []uint32, swap bool) (nDst, nSrc int) {
	return Transcode(dst, src, UTF32, UTF16, swap)
}

// UTF32ToUTF8 converts UTF-32 src, swapped on read when swap is set, into
// UTF-8 dst. See Transcode.
func UTF32ToUTF8(dst []byte, src []uint32, swap bool) (nDst, nSrc int) {
	return Transcode(dst, src, UTF32, UTF8, swap)
}
