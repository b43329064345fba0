package transcode

import (
	"encoding/binary"
	"io"
)

// UnitWriter writes fixed-width code units into a pre-allocated byte slice in
// a given byte order. It never grows the slice: a unit that does not fit is
// not written and io.ErrShortWrite is returned.
type UnitWriter struct {
	B     []byte // destination slice
	N     int    // current write position
	order binary.ByteOrder
}

// NewUnitWriter creates a UnitWriter over the full capacity of p. A nil order
// means NativeOrder.
func NewUnitWriter(p []byte, order binary.ByteOrder) *UnitWriter {
	if order == nil {
		order = NativeOrder
	}
	return &UnitWriter{B: p[:cap(p)], order: order}
}

// WriteUint16 writes one 16-bit unit.
func (w *UnitWriter) WriteUint16(u uint16) error {
	if w.Available() < 2 {
		return io.ErrShortWrite
	}
	w.order.PutUint16(w.B[w.N:], u)
	w.N += 2
	return nil
}

// WriteUint32 writes one 32-bit unit.
func (w *UnitWriter) WriteUint32(u uint32) error {
	if w.Available() < 4 {
		return io.ErrShortWrite
	}
	w.order.PutUint32(w.B[w.N:], u)
	w.N += 4
	return nil
}

// WriteUnits16 writes every unit of src and returns how many were written.
func (w *UnitWriter) WriteUnits16(src []uint16) (int, error) {
	for i, u := range src {
		if err := w.WriteUint16(u); err != nil {
			return i, err
		}
	}
	return len(src), nil
}

// WriteUnits32 writes every unit of src and returns how many were written.
func (w *UnitWriter) WriteUnits32(src []uint32) (int, error) {
	for i, u := range src {
		if err := w.WriteUint32(u); err != nil {
			return i, err
		}
	}
	return len(src), nil
}

// Reset allows the underlying byte slice to be reused.
func (w *UnitWriter) Reset() { w.N = 0 }

// Len returns the number of bytes written.
func (w *UnitWriter) Len() int { return w.N }

// Size returns the capacity of the underlying byte slice.
func (w *UnitWriter) Size() int { return len(w.B) }

// Available returns the number of bytes available for writing.
func (w *UnitWriter) Available() int { return len(w.B) - w.N }

// Bytes returns a slice view of the written data.
func (w *UnitWriter) Bytes() []byte { return w.B[:w.N] }
