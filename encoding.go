package transcode

// Unit is the storage element of an encoding form: 8, 16 or 32 bits wide.
type Unit interface {
	~uint8 | ~uint16 | ~uint32
}

// Encoding bundles the code point rules of one encoding form so that the
// transcoding loop is written once for all pairings.
// The swap flag is ignored by UTF-8.
type Encoding[T Unit] interface {
	// Decode reads one code point from the start of src and returns it with
	// the number of units consumed. Malformed input yields ReplacementChar.
	Decode(src []T, swap bool) (Codepoint, int)
	// Encode writes c to dst and returns the number of units written, or 0
	// when c does not fit.
	Encode(dst []T, c Codepoint, swap bool) int
	// RuneLen returns the number of units Encode writes for c.
	RuneLen(c Codepoint) int
	// Validate checks s up to its terminator and returns the first violation
	// with its unit offset, or (Valid, -1).
	Validate(s []T, swap bool) (Status, int)
}

var (
	// UTF8 is the UTF-8 encoding form.
	UTF8 Encoding[uint8] = utf8Encoding{}
	// UTF16 is the UTF-16 encoding form.
	UTF16 Encoding[uint16] = utf16Encoding{}
	// UTF32 is the UTF-32 encoding form.
	UTF32 Encoding[uint32] = utf32Encoding{}
)

type (
	utf8Encoding  struct{}
	utf16Encoding struct{}
	utf32Encoding struct{}
)

func (utf8Encoding) Decode(src []byte, _ bool) (Codepoint, int) { return DecodeUTF8(src) }
func (utf8Encoding) Encode(dst []byte, c Codepoint, _ bool) int { return EncodeUTF8(dst, c) }
func (utf8Encoding) RuneLen(c Codepoint) int                    { return RuneLenUTF8(replaceInvalid(c)) }
func (utf8Encoding) Validate(s []byte, _ bool) (Status, int)    { return ValidateUTF8At(s) }

func (utf16Encoding) Decode(src []uint16, swap bool) (Codepoint, int) {
	return DecodeUTF16(src, swap)
}

func (utf16Encoding) Encode(dst []uint16, c Codepoint, swap bool) int {
	return EncodeUTF16(dst, c, swap)
}

func (utf16Encoding) RuneLen(c Codepoint) int { return RuneLenUTF16(replaceInvalid(c)) }
func (utf16Encoding) Validate(s []uint16, swap bool) (Status, int) {
	return ValidateUTF16At(s, swap)
}

func (utf32Encoding) Decode(src []uint32, swap bool) (Codepoint, int) {
	return DecodeUTF32(src, swap)
}

func (utf32Encoding) Encode(dst []uint32, c Codepoint, swap bool) int {
	return EncodeUTF32(dst, c, swap)
}

func (utf32Encoding) RuneLen(Codepoint) int { return 1 }
func (utf32Encoding) Validate(s []uint32, swap bool) (Status, int) {
	return ValidateUTF32At(s, swap)
}

func replaceInvalid(c Codepoint) Codepoint {
	if !c.Valid() {
		return ReplacementChar
	}
	return c
}
