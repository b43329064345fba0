package transcode

import "fmt"

// Status is the outcome of validating a code point or a string.
// The numeric values are stable and shared by all three validators.
type Status uint8

const (
	// Valid means the code point or string is well-formed.
	Valid Status = 0
	// UnmatchedSurrogate reports a UTF-16 surrogate that is not part of a high/low pair.
	UnmatchedSurrogate Status = 1
	// SurrogateCodepoint reports a decoded value in U+D800..U+DFFF.
	SurrogateCodepoint Status = 2
	// OutOfRange reports a decoded value above U+10FFFF.
	OutOfRange Status = 3
	// BadContinuation reports a malformed or missing UTF-8 continuation byte.
	BadContinuation Status = 4
	// Overlong reports a UTF-8 sequence longer than 4 bytes or longer than the
	// minimal encoding of its code point.
	Overlong Status = 6
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case UnmatchedSurrogate:
		return "unmatched surrogate"
	case SurrogateCodepoint:
		return "surrogate code point"
	case OutOfRange:
		return "out of range"
	case BadContinuation:
		return "bad continuation"
	case Overlong:
		return "overlong"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Err returns the sentinel error matching s, or nil for Valid.
func (s Status) Err() error {
	switch s {
	case Valid:
		return nil
	case UnmatchedSurrogate:
		return ErrUnmatchedSurrogate
	case SurrogateCodepoint:
		return ErrSurrogate
	case OutOfRange:
		return ErrOutOfRange
	case BadContinuation:
		return ErrBadContinuation
	case Overlong:
		return ErrOverlong
	default:
		return fmt.Errorf("transcode: unknown status %d", uint8(s))
	}
}
