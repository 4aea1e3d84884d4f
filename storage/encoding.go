package storage

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding is one decoding attempt made by the loader.
type Encoding struct {
	Name    string
	decoder func() *encoding.Decoder
	// utf8Source means the raw bytes must already be valid UTF-8.
	utf8Source bool
}

var (
	// UTF8SIG strips a leading byte order mark.
	UTF8SIG = Encoding{Name: "utf-8-sig", decoder: unicode.UTF8BOM.NewDecoder, utf8Source: true}
	// UTF8 keeps a byte order mark as part of the first header name.
	UTF8 = Encoding{Name: "utf-8", decoder: unicode.UTF8.NewDecoder, utf8Source: true}
	// CP949 is the Windows code page most Korean open-data exports use.
	CP949 = Encoding{Name: "cp949", decoder: korean.EUCKR.NewDecoder}
	// EUCKR shares the x/text table with CP949, which is a superset of it.
	EUCKR = Encoding{Name: "euc-kr", decoder: korean.EUCKR.NewDecoder}
)

// DefaultEncodings is the fixed order the dataset loader tries.
var DefaultEncodings = []Encoding{UTF8SIG, UTF8, CP949, EUCKR}

var errUndecodable = errors.New("undecodable byte sequence")

// Decode converts raw bytes to UTF-8. Decoding is strict: invalid input
// fails instead of being replaced with U+FFFD.
func (e Encoding) Decode(raw []byte) ([]byte, error) {
	if e.utf8Source && !utf8.Valid(raw) {
		return nil, fmt.Errorf("%s: %w", e.Name, errUndecodable)
	}
	out, _, err := transform.Bytes(e.decoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.Name, err)
	}
	if !e.utf8Source && bytes.ContainsRune(out, utf8.RuneError) {
		return nil, fmt.Errorf("%s: %w", e.Name, errUndecodable)
	}
	return out, nil
}
