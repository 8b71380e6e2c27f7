package repair

import (
	"strings"
	"unicode/utf8"
)

// Repair decodes d into consistent Unicode text. Valid UTF-8 sequences are
// decoded as-is; any byte >= 0x80 that does not begin a valid sequence
// (including the bytes of a truncated sequence) is reinterpreted as a single
// Latin-1 code point. ASCII passes through unchanged.
func Repair(d []byte) string {
	if utf8.Valid(d) {
		return string(d)
	}
	var b strings.Builder
	b.Grow(len(d))
	for i := 0; i < len(d); {
		c := d[i]
		if c < utf8.RuneSelf {
			b.WriteByte(c)
			i++
			continue
		}
		r, size := utf8.DecodeRune(d[i:])
		if r == utf8.RuneError && size <= 1 {
			// not UTF-8 here: take the byte as Latin-1
			b.WriteRune(rune(c))
			i++
			continue
		}
		b.WriteString(string(d[i : i+size]))
		i += size
	}
	return b.String()
}

// RepairString is Repair for string payloads. An already well-formed string
// is returned unchanged without copying.
func RepairString(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return Repair([]byte(s))
}
