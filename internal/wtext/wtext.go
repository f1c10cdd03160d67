// Package wtext converts between Go strings, UTF-16 code units, and
// UTF-16 little-endian byte sequences. It backs the wide-string surface
// of the vars package.
package wtext

import (
	"errors"
	"fmt"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
)

var (
	// ErrOddLength indicates a UTF-16 byte payload with an odd byte count.
	ErrOddLength = errors.New("wtext: utf-16 data has odd length")
)

// Units converts a string to UTF-16 code units.
func Units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// String converts UTF-16 code units back to a string. Unpaired surrogates
// decode to U+FFFD.
func String(u []uint16) string {
	return string(utf16.Decode(u))
}

// UnitsLE serializes UTF-16 code units as little-endian bytes, without a BOM
// and without a terminator.
func UnitsLE(u []uint16) []byte {
	b := make([]byte, len(u)*2)
	for i, cu := range u {
		b[i*2] = byte(cu)
		b[i*2+1] = byte(cu >> 8)
	}
	return b
}

// DecodeLE converts UTF-16 bytes to a string. A leading BOM, if present,
// selects the byte order and is consumed; otherwise little-endian is assumed.
func DecodeLE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", fmt.Errorf("wtext: %d bytes: %w", len(b), ErrOddLength)
	}
	if len(b) == 0 {
		return "", nil
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("wtext: utf-16 decode failed: %w", err)
	}
	return string(out), nil
}
