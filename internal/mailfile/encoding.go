package mailfile

import (
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
)

// minConfidence is the chardet score below which a guess is ignored and
// Windows-1252, the usual culprit for pasted mail, is assumed.
const minConfidence = 50

// EnsureUTF8 returns s unchanged when it is valid UTF-8. Otherwise it guesses
// the charset and decodes; bytes that still do not decode become U+FFFD.
func EnsureUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	enc := encoding.Encoding(charmap.Windows1252)
	if res, err := chardet.NewTextDetector().DetectBest([]byte(s)); err == nil && res.Confidence >= minConfidence {
		if e := getEncodingByName(res.Charset); e != nil {
			enc = e
		}
	}

	if out, err := enc.NewDecoder().String(s); err == nil && utf8.ValidString(out) {
		return out
	}
	return sanitizeUTF8(s)
}

// getEncodingByName maps a charset label to its decoder, or nil when the
// label is unknown. Labels follow the WHATWG index, so ISO-8859-1 resolves
// to Windows-1252.
func getEncodingByName(name string) encoding.Encoding {
	if name == "" {
		return nil
	}
	e, err := htmlindex.Get(name)
	if err != nil {
		return nil
	}
	return e
}

// sanitizeUTF8 replaces every invalid byte with U+FFFD.
func sanitizeUTF8(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			b.WriteRune(utf8.RuneError)
		} else {
			b.WriteString(s[:size])
		}
		s = s[size:]
	}
	return b.String()
}
