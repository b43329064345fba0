package transcode

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/puzpuzpuz/xsync/v4"
)

// Form names an encoding form together with the byte order its code units
// are serialized in.
type Form uint8

const (
	// FormUTF8 is UTF-8, one byte per unit.
	FormUTF8 Form = iota
	// FormUTF16LE is UTF-16 with little-endian units.
	FormUTF16LE
	// FormUTF16BE is UTF-16 with big-endian units.
	FormUTF16BE
	// FormUTF32LE is UTF-32 with little-endian units.
	FormUTF32LE
	// FormUTF32BE is UTF-32 with big-endian units.
	FormUTF32BE

	formCount
)

var formNames = [formCount]string{
	FormUTF8:    "UTF-8",
	FormUTF16LE: "UTF-16LE",
	FormUTF16BE: "UTF-16BE",
	FormUTF32LE: "UTF-32LE",
	FormUTF32BE: "UTF-32BE",
}

func (f Form) String() string {
	if f >= formCount {
		return fmt.Sprintf("Form(%d)", uint8(f))
	}
	return formNames[f]
}

// UnitSize returns the width of one code unit in bytes.
func (f Form) UnitSize() int {
	switch f {
	case FormUTF16LE, FormUTF16BE:
		return 2
	case FormUTF32LE, FormUTF32BE:
		return 4
	default:
		return 1
	}
}

// Order returns the byte order of the code units. UTF-8 has no byte order
// and reports NativeOrder, so SwapFor(FormUTF8.Order()) is false.
func (f Form) Order() binary.ByteOrder {
	switch f {
	case FormUTF16LE, FormUTF32LE:
		return binary.LittleEndian
	case FormUTF16BE, FormUTF32BE:
		return binary.BigEndian
	default:
		return NativeOrder
	}
}

func (f Form) check() error {
	if f >= formCount {
		return fmt.Errorf("%w: %s", ErrUnknownForm, f)
	}
	return nil
}

// formRegistry maps normalized names to forms. It is safe for concurrent
// lookups and registrations.
var formRegistry = xsync.NewMap[string, Form]()

func init() {
	for name, f := range map[string]Form{
		"utf8":    FormUTF8,
		"utf16le": FormUTF16LE,
		"utf16be": FormUTF16BE,
		"utf32le": FormUTF32LE,
		"utf32be": FormUTF32BE,
		"ucs4le":  FormUTF32LE,
		"ucs4be":  FormUTF32BE,
		// Without a byte order mark Unicode defaults to big endian.
		"utf16": FormUTF16BE,
		"utf32": FormUTF32BE,
		"ucs4":  FormUTF32BE,
	} {
		formRegistry.Store(name, f)
	}
}

// normalizeFormName lowercases name and drops separators, so "UTF-16LE",
// "utf_16le" and "utf16le" are the same key.
func normalizeFormName(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ', '.':
			return -1
		}
		return r
	}, strings.ToLower(name))
}

// LookupForm resolves an encoding form by name, ignoring case and the
// separators '-', '_', ' ' and '.'.
func LookupForm(name string) (Form, error) {
	if f, ok := formRegistry.Load(normalizeFormName(name)); ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownForm, name)
}

// RegisterAlias makes name resolve to f in LookupForm. A later registration
// of the same name replaces the earlier one.
func RegisterAlias(name string, f Form) error {
	if err := f.check(); err != nil {
		return err
	}
	key := normalizeFormName(name)
	if key == "" {
		return fmt.Errorf("%w: empty name", ErrUnknownForm)
	}
	formRegistry.Store(key, f)
	return nil
}
