package transcode

import (
	"encoding/binary"
	"math/bits"
)

// NativeOrder is the byte order of the running machine, as one of
// binary.LittleEndian or binary.BigEndian.
var NativeOrder binary.ByteOrder = nativeOrder()

func nativeOrder() binary.ByteOrder {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 1)
	if b[0] == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// SwapFor reports whether units stored in the given byte order must be
// swapped to be read natively. It is the swap flag every 16- and 32-bit
// routine of this package takes.
func SwapFor(order binary.ByteOrder) bool {
	var probe, native [2]byte
	order.PutUint16(probe[:], 1)
	binary.NativeEndian.PutUint16(native[:], 1)
	return probe != native
}

func swap16(u uint16, swap bool) uint16 {
	if swap {
		return bits.ReverseBytes16(u)
	}
	return u
}

func swap32(u uint32, swap bool) uint32 {
	if swap {
		return bits.ReverseBytes32(u)
	}
	return u
}
