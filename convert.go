package transcode

import (
	"errors"
	"fmt"
	"io"
)

// The functions in this file work on byte buffers in a declared Form. They
// widen the input into native code units, then run the core routines with
// swap unset, so byte order is handled once on the way in and once on the
// way out. Unlike the core they allocate their results.

// text is a string held as native code units of its form's width.
type text struct {
	form Form
	u8   []byte
	u16  []uint16
	u32  []uint32
}

// loadText widens src into native units. Trailing bytes that do not make up
// a whole unit are an error in strict mode and ignored otherwise. The
// returned release func hands pooled buffers back.
func loadText(src []byte, f Form, strict bool) (text, func(), error) {
	if err := f.check(); err != nil {
		return text{}, nil, err
	}
	size := f.UnitSize()
	if !strict {
		src = src[:len(src)-len(src)%size]
	}
	// A partial last unit is read too, so the reader reports it.
	units := (len(src) + size - 1) / size

	t := text{form: f}
	r := NewUnitReader(src, f.Order())
	switch size {
	case 1:
		t.u8 = src
		return t, func() {}, nil
	case 2:
		buf := units16Pool.get(units)
		if _, err := r.ReadUnits16(*buf); err != nil {
			units16Pool.put(buf)
			return text{}, nil, readError(src, f, err)
		}
		t.u16 = *buf
		return t, func() { units16Pool.put(buf) }, nil
	default:
		buf := units32Pool.get(units)
		if _, err := r.ReadUnits32(*buf); err != nil {
			units32Pool.put(buf)
			return text{}, nil, readError(src, f, err)
		}
		t.u32 = *buf
		return t, func() { units32Pool.put(buf) }, nil
	}
}

func readError(src []byte, f Form, err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %d bytes of %s: %w", ErrUnalignedInput, len(src), f, err)
	}
	return fmt.Errorf("reading %s units: %w", f, err)
}

func (t text) validate() error {
	var (
		st  Status
		off int
	)
	switch t.form.UnitSize() {
	case 1:
		st, off = ValidateUTF8At(t.u8)
	case 2:
		st, off = ValidateUTF16At(t.u16, false)
	default:
		st, off = ValidateUTF32At(t.u32, false)
	}
	if st != Valid {
		return fmt.Errorf("%w: %s at unit %d", st.Err(), t.form, off)
	}
	return nil
}

// unitsIn returns the number of units of to's width t converts into.
func (t text) unitsIn(to Form) int {
	switch t.form.UnitSize() {
	case 1:
		switch to.UnitSize() {
		case 1:
			return StrlenUTF8(t.u8)
		case 2:
			return UTF8InUTF16Len(t.u8)
		default:
			return UTF8InUTF32Len(t.u8)
		}
	case 2:
		switch to.UnitSize() {
		case 1:
			return UTF16InUTF8Len(t.u16, false)
		case 2:
			return StrlenUTF16(t.u16)
		default:
			return UTF16InUTF32Len(t.u16, false)
		}
	default:
		switch to.UnitSize() {
		case 1:
			return UTF32InUTF8Len(t.u32, false)
		case 2:
			return UTF32InUTF16Len(t.u32, false)
		default:
			return StrlenUTF32(t.u32)
		}
	}
}

func (t text) convert(to Form, strict bool) ([]byte, error) {
	want := t.unitsIn(to)
	switch t.form.UnitSize() {
	case 1:
		return encodeTo(t.u8, UTF8, to, want, strict)
	case 2:
		return encodeTo(t.u16, UTF16, to, want, strict)
	default:
		return encodeTo(t.u32, UTF32, to, want, strict)
	}
}

// encodeTo transcodes src into to's width and serializes the units in to's
// byte order.
func encodeTo[S Unit](src []S, from Encoding[S], to Form, want int, strict bool) ([]byte, error) {
	switch to.UnitSize() {
	case 1:
		return transcodeAll(src, from, UTF8, want, strict)
	case 2:
		units, err := transcodeAll(src, from, UTF16, want, strict)
		if err != nil {
			return nil, err
		}
		out := make([]byte, 2*len(units))
		w := NewUnitWriter(out, to.Order())
		if _, err := w.WriteUnits16(units); err != nil {
			return nil, err
		}
		return w.Bytes(), nil
	default:
		units, err := transcodeAll(src, from, UTF32, want, strict)
		if err != nil {
			return nil, err
		}
		out := make([]byte, 4*len(units))
		w := NewUnitWriter(out, to.Order())
		if _, err := w.WriteUnits32(units); err != nil {
			return nil, err
		}
		return w.Bytes(), nil
	}
}

// transcodeAll converts src up to its terminator into a new slice sized by
// the estimate want. Strict input has been validated, so the estimate is
// exact and any shortfall is an error. Lossy UTF-8 to UTF-8 is sized by the
// source length, and U+FFFD may need more room than the bytes it replaces;
// the slice grows until the source is used up.
func transcodeAll[S, D Unit](src []S, from Encoding[S], to Encoding[D], want int, strict bool) ([]D, error) {
	dst := make([]D, want)
	nDst, nSrc := Transcode(dst, src, from, to, false)
	if strict {
		if nDst != want {
			return nil, fmt.Errorf("%w: expected %d units, but produced %d", ErrTruncatedData, want, nDst)
		}
		return dst, nil
	}

	for nSrc < len(src) && src[nSrc] != 0 {
		// Every code point fits in 4 units, so each pass makes progress.
		dst = append(dst[:nDst], make([]D, max(want, utf8MaxSequence))...)
		n, m := Transcode(dst[nDst:], src[nSrc:], from, to, false)
		nDst += n
		nSrc += m
	}
	return dst[:nDst], nil
}

// Validate reports whether src, bytes in form f, is well-formed up to its
// first zero unit. The error wraps the sentinel matching the violation
// (ErrOverlong, ErrUnmatchedSurrogate, ...) and names its unit offset.
func Validate(src []byte, f Form) error {
	t, release, err := loadText(src, f, true)
	if err != nil {
		return err
	}
	defer release()
	return t.validate()
}

// EncodedLen returns the number of bytes Convert(src, from, to) produces for
// well-formed src. It does not validate src.
func EncodedLen(src []byte, from, to Form) (int, error) {
	if err := to.check(); err != nil {
		return 0, err
	}
	t, release, err := loadText(src, from, true)
	if err != nil {
		return 0, err
	}
	defer release()
	return t.unitsIn(to) * to.UnitSize(), nil
}

// Convert validates src, bytes in form from, and returns it re-encoded in
// form to. Conversion stops at the first zero unit, which is not copied.
func Convert(src []byte, from, to Form) ([]byte, error) {
	if err := to.check(); err != nil {
		return nil, err
	}
	t, release, err := loadText(src, from, true)
	if err != nil {
		return nil, err
	}
	defer release()
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t.convert(to, true)
}

// ConvertLossy is Convert without validation: malformed sequences become
// U+FFFD and trailing bytes short of a whole unit are dropped. It fails only
// for unknown forms.
func ConvertLossy(src []byte, from, to Form) ([]byte, error) {
	if err := to.check(); err != nil {
		return nil, err
	}
	t, release, err := loadText(src, from, false)
	if err != nil {
		return nil, err
	}
	defer release()
	return t.convert(to, false)
}

// DecodeString converts src, bytes in form from, to a Go string.
func DecodeString(src []byte, from Form) (string, error) {
	out, err := Convert(src, from, FormUTF8)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeString converts s to bytes in form to. A NUL in s ends the string.
func EncodeString(s string, to Form) ([]byte, error) {
	return Convert([]byte(s), FormUTF8, to)
}

// UnitLen returns the number of code units of src, bytes in form f, before
// its first zero unit. Trailing bytes short of a whole unit are an error.
func UnitLen(src []byte, f Form) (int, error) {
	t, release, err := loadText(src, f, true)
	if err != nil {
		return 0, err
	}
	defer release()
	return t.unitsIn(f), nil
}
