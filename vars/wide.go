package vars

import (
	"errors"

	"github.com/varkit/varkit/internal/wtext"
)

// WideString holds text as UTF-16 code units. It is the wide counterpart of
// string: a Value holding a WideString never compares equal to one holding a
// string, even for the same text. Use it when the width of the text type is
// part of the contract, e.g. when mirroring data from UTF-16 sources.
type WideString []uint16

// Wide converts a string to a WideString.
func Wide(s string) WideString {
	return WideString(wtext.Units(s))
}

// String converts the code units back to a string. Unpaired surrogates
// decode to U+FFFD.
func (w WideString) String() string {
	return wtext.String(w)
}

// Bytes serializes the code units as UTF-16LE, without a BOM.
func (w WideString) Bytes() []byte {
	return wtext.UnitsLE(w)
}

// ParseWide decodes UTF-16 bytes into a WideString. A leading BOM selects
// the byte order and is consumed; without one, little-endian is assumed.
// Odd-length input yields a *Error of kind ErrKindEncoding wrapping
// ErrOddLength.
func ParseWide(b []byte) (WideString, error) {
	s, err := wtext.DecodeLE(b)
	if err != nil {
		werr := &Error{Kind: ErrKindEncoding, Msg: "vars: invalid utf-16 payload", Err: err}
		if errors.Is(err, wtext.ErrOddLength) {
			werr.Err = ErrOddLength
		}
		return nil, werr
	}
	return Wide(s), nil
}
