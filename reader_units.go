package transcode

import (
	"encoding/binary"
	"io"
)

// UnitReader reads fixed-width code units from a byte slice in a given byte
// order.
type UnitReader struct {
	B     []byte // source slice
	N     int    // current read position
	order binary.ByteOrder
}

// NewUnitReader creates a UnitReader over b. A nil order means NativeOrder.
func NewUnitReader(b []byte, order binary.ByteOrder) *UnitReader {
	if order == nil {
		order = NativeOrder
	}
	return &UnitReader{B: b, order: order}
}

// ReadUint16 reads one 16-bit unit. It returns io.EOF when nothing is left and
// io.ErrUnexpectedEOF when a partial unit is left; the position is not moved
// in either case.
func (r *UnitReader) ReadUint16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	u := r.order.Uint16(r.B[r.N:])
	r.N += 2
	return u, nil
}

// ReadUint32 reads one 32-bit unit, with the same errors as ReadUint16.
func (r *UnitReader) ReadUint32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	u := r.order.Uint32(r.B[r.N:])
	r.N += 4
	return u, nil
}

// ReadUnits16 fills dst with 16-bit units and returns how many were read.
func (r *UnitReader) ReadUnits16(dst []uint16) (int, error) {
	for i := range dst {
		u, err := r.ReadUint16()
		if err != nil {
			return i, err
		}
		dst[i] = u
	}
	return len(dst), nil
}

// ReadUnits32 fills dst with 32-bit units and returns how many were read.
func (r *UnitReader) ReadUnits32(dst []uint32) (int, error) {
	for i := range dst {
		u, err := r.ReadUint32()
		if err != nil {
			return i, err
		}
		dst[i] = u
	}
	return len(dst), nil
}

func (r *UnitReader) need(n int) error {
	switch left := r.Available(); {
	case left == 0:
		return io.EOF
	case left < n:
		return io.ErrUnexpectedEOF
	}
	return nil
}

// Reset allows the underlying byte slice to be reused.
func (r *UnitReader) Reset() { r.N = 0 }

// Len returns the number of bytes read.
func (r *UnitReader) Len() int { return r.N }

// Size returns the size of the underlying byte slice.
func (r *UnitReader) Size() int { return len(r.B) }

// Available returns the number of bytes available for reading.
func (r *UnitReader) Available() int { return max(len(r.B)-r.N, 0) }
