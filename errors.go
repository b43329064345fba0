package transcode

import "errors"

var (
	// ErrUnmatchedSurrogate indicates a UTF-16 high surrogate without a following low
	// surrogate, or a low surrogate without a preceding high surrogate.
	ErrUnmatchedSurrogate = errors.New("transcode: unmatched utf-16 surrogate")

	// ErrSurrogate indicates a decoded value inside the surrogate range U+D800..U+DFFF.
	ErrSurrogate = errors.New("transcode: surrogate code point")

	// ErrOutOfRange indicates a decoded value above U+10FFFF.
	ErrOutOfRange = errors.New("transcode: code point out of range")

	// ErrBadContinuation indicates a UTF-8 trailing byte without the 10xxxxxx marker,
	// or a sequence cut short by the terminator or the end of the buffer.
	ErrBadContinuation = errors.New("transcode: malformed utf-8 continuation byte")

	// ErrOverlong indicates a UTF-8 sequence longer than 4 bytes, or one that uses
	// more bytes than its code point requires.
	ErrOverlong = errors.New("transcode: overlong utf-8 sequence")

	// ErrUnknownForm indicates that an encoding form name is not registered.
	ErrUnknownForm = errors.New("transcode: unknown encoding form")

	// ErrUnalignedInput indicates a byte buffer whose length is not a multiple of the
	// code unit size of its declared form.
	ErrUnalignedInput = errors.New("transcode: input length is not a multiple of the unit size")

	// ErrTruncatedData indicates that a conversion produced fewer units than the
	// length estimate promised.
	ErrTruncatedData = errors.New("transcode: truncated data")
)
