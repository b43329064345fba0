package transcode

import "sync"

// unitPool reuses scratch unit buffers for the byte-level conversions, which
// have to widen their input into native units before transcoding.
type unitPool[T Unit] struct {
	pool sync.Pool
}

// A 4K-unit default covers most strings without a re-allocation.
const defaultPoolUnits = 4096

var (
	units16Pool unitPool[uint16]
	units32Pool unitPool[uint32]
)

// get returns a buffer of exactly n units. Its contents are unspecified.
func (p *unitPool[T]) get(n int) *[]T {
	buf, _ := p.pool.Get().(*[]T)
	if buf == nil {
		b := make([]T, 0, max(n, defaultPoolUnits))
		buf = &b
	}
	if cap(*buf) < n {
		*buf = make([]T, n)
	}
	*buf = (*buf)[:n]
	return buf
}

func (p *unitPool[T]) put(buf *[]T) {
	*buf = (*buf)[:0]
	p.pool.Put(buf)
}
