package marshal

import (
	"strings"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// decodeString transcodes raw bytes to UTF-8 given the RGSS-style
// encoding tag Ruby attaches as the string's "E"/"encoding" instance
// variable. RPG Maker XP's default distribution ships non-ASCII text as
// Shift_JIS (a.k.a. Windows-31J); everything else is assumed already
// UTF-8 or pure ASCII and passed through unchanged.
// DecodeBytes is decodeString's exported counterpart, for callers (the
// zlib-compressed Zlib schema kind) that have decompressed bytes and an
// encoding tag but no Node to hang them on.
func DecodeBytes(raw []byte, tag string) (string, error) {
	return decodeString(raw, tag)
}

func decodeString(raw []byte, tag string) (string, error) {
	switch strings.ToUpper(tag) {
	case "", "UTF-8", "US-ASCII", "ASCII-8BIT", "BINARY":
		return string(raw), nil
	case "SHIFT_JIS", "WINDOWS-31J", "SJIS", "CP932":
		out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), raw)
		if err != nil {
			return "", err
		}
		return string(out), nil
	default:
		return string(raw), nil
	}
}
