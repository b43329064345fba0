package transcode

import "golang.org/x/exp/constraints"

// unitLen counts the units of s before the first zero unit, or len(s) when
// there is none.
func unitLen[T constraints.Unsigned](s []T) int {
	for i, u := range s {
		if u == 0 {
			return i
		}
	}
	return len(s)
}

// StrlenUTF8 returns the number of bytes before the terminator.
func StrlenUTF8(s []byte) int { return unitLen(s) }

// StrlenUTF16 returns the number of 16-bit units before the terminator.
// A surrogate pair counts as two.
func StrlenUTF16(s []uint16) int { return unitLen(s) }

// StrlenUTF32 returns the number of 32-bit units before the terminator.
func StrlenUTF32(s []uint32) int { return unitLen(s) }
