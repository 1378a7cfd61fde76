// Package encoding wraps around the various encoding stuff in
// golang.org/x/text/encoding and golang.org/x/net/html/charset. Part of
// the reason this exists is that HTML in the wild declares encodings
// under a number of legacy aliases that the charset index does not map,
// and it's rather easier if we normalize them in one place.
package encoding

import (
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"

	"golang.org/x/net/html/charset"
)

// Load resolves an encoding label to a decoder. It returns nil if the
// label is not recognized.
func Load(name string) enc.Encoding {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf8", "utf-8":
		return unicode.UTF8
	case "shift_jis", "shift-jis", "shiftjis", "cp932":
		return japanese.ShiftJIS
	case "euc-jp", "eucjp":
		return japanese.EUCJP
	case "latin1", "latin-1", "iso8859-1":
		return charmap.ISO8859_1
	case "cp437":
		return charmap.CodePage437
	case "cp866":
		return charmap.CodePage866
	}

	e, _ := charset.Lookup(name)
	return e
}
