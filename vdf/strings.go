package vdf

import (
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/steamkit/vdf/internal/binio"
)

// utf16le decodes UTF-16LE payload bytes. The x/text decoder substitutes
// U+FFFD for malformed input instead of failing, which is the policy for
// every string in this format.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// readString consumes bytes up to and including a NUL terminator and returns
// the text before it. Invalid UTF-8 sequences are replaced, never rejected.
// Running out of input before the terminator is an I/O error.
func readString(r *binio.Reader) (string, error) {
	var buf []byte
	for {
		c, err := r.ReadU8()
		if err != nil {
			return "", err
		}
		if c == 0 {
			break
		}
		buf = append(buf, c)
	}
	return strings.ToValidUTF8(string(buf), "�"), nil
}

// readWideString consumes little-endian u16 code units up to and including a
// zero unit and decodes the run as UTF-16LE.
func readWideString(r *binio.Reader) (string, error) {
	var buf []byte
	for {
		c, err := r.ReadU16()
		if err != nil {
			return "", err
		}
		if c == 0 {
			break
		}
		buf = append(buf, byte(c), byte(c>>8))
	}
	decoded, err := utf16le.NewDecoder().Bytes(buf)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
