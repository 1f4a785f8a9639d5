package midi

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

const (
	EncodingAuto     = "auto"
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift-jis"
	EncodingLatin1   = "latin1"
)

func ValidNameEncoding(name string) bool {
	switch name {
	case EncodingAuto, EncodingUTF8, EncodingShiftJIS, EncodingLatin1:
		return true
	}
	return false
}

// decodeText turns meta event text into a string. In auto mode valid UTF-8
// is kept as is, then Shift_JIS is tried (common in files authored with
// Japanese sequencers) and Latin-1 is the fallback since it never fails.
func decodeText(b []byte, enc string) string {
	b = []byte(strings.TrimRight(string(b), "\x00"))

	switch enc {
	case EncodingUTF8:
		return strings.ToValidUTF8(string(b), "�")
	case EncodingShiftJIS:
		if s, ok := decodeWith(japanese.ShiftJIS, b); ok {
			return s
		}
		return strings.ToValidUTF8(string(b), "�")
	case EncodingLatin1:
		s, _ := decodeWith(charmap.ISO8859_1, b)
		return s
	}

	if utf8.Valid(b) {
		return string(b)
	}
	if s, ok := decodeWith(japanese.ShiftJIS, b); ok && !strings.ContainsRune(s, utf8.RuneError) {
		return s
	}
	s, _ := decodeWith(charmap.ISO8859_1, b)
	return s
}

func decodeWith(e encoding.Encoding, b []byte) (string, bool) {
	out, _, err := transform.Bytes(e.NewDecoder(), b)
	if err != nil {
		return "", false
	}
	return string(out), true
}
