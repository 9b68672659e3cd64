// Package text converts between Go strings and the host's native ANSI
// encoding (Shift-JIS, code page 932).
package text

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// ErrUndecodable is returned when host bytes are not valid Shift-JIS.
var ErrUndecodable = errors.New("text: invalid Shift-JIS sequence")

// Encode converts s to Shift-JIS. Characters the encoding cannot represent
// become '?' so display strings never fail to encode.
func Encode(s string) []byte {
	enc := japanese.ShiftJIS.NewEncoder()
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < utf8.RuneSelf {
			out = append(out, byte(r))
			continue
		}
		b, err := enc.Bytes([]byte(string(r)))
		if err != nil {
			out = append(out, '?')
			continue
		}
		out = append(out, b...)
	}
	return out
}

// EncodeCString is Encode followed by a NUL terminator.
func EncodeCString(s string) []byte {
	return append(Encode(s), 0)
}

// Decode converts Shift-JIS bytes to a Go string. Unlike the x/text decoder,
// which substitutes U+FFFD, it rejects invalid input.
func Decode(b []byte) (string, error) {
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUndecodable, err)
	}
	if idx := strings.IndexRune(string(out), utf8.RuneError); idx >= 0 {
		return "", ErrUndecodable
	}
	return string(out), nil
}
