// Package charset reads the character list of an atlas from a text file.
//
// The encoding is chosen from the byte-order mark; files without one are
// read as UTF-8. Line breaks only separate lines of the file and are not
// part of the character list, so every '\n' and '\r' is dropped.
package charset

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidUTF8 is returned when a UTF-8 file contains invalid byte sequences.
var ErrInvalidUTF8 = errors.New("charset: invalid UTF-8")

// Encoding identifies the text encoding of a charset file.
type Encoding int

// Supported encodings.
const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16LE
	UTF16BE
)

var (
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
)

// String returns the codec name of e.
func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf-8"
	case UTF8BOM:
		return "utf-8-sig"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	default:
		return "unknown"
	}
}

// decoder returns the x/text encoding for e. The UTF-16 and UTF-8 BOM
// variants consume the byte-order mark.
func (e Encoding) decoder() encoding.Encoding {
	switch e {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	case UTF8BOM:
		return unicode.UTF8BOM
	default:
		return unicode.UTF8
	}
}

// Detect returns the encoding announced by the byte-order mark of data.
func Detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(data, bomUTF16BE):
		return UTF16BE
	case bytes.HasPrefix(data, bomUTF8):
		return UTF8BOM
	default:
		return UTF8
	}
}

// Decode decodes data and returns its characters with line breaks removed.
func Decode(data []byte) ([]rune, Encoding, error) {
	enc := Detect(data)
	switch {
	case enc == UTF8 && !utf8.Valid(data),
		enc == UTF8BOM && !utf8.Valid(data[len(bomUTF8):]):
		return nil, enc, ErrInvalidUTF8
	}

	text, err := enc.decoder().NewDecoder().Bytes(data)
	if err != nil {
		return nil, enc, fmt.Errorf("charset: decode %s: %w", enc, err)
	}

	s := strings.NewReplacer("\n", "", "\r", "").Replace(string(text))
	return []rune(s), enc, nil
}

// ReadFile reads and decodes the charset file at path.
func ReadFile(path string) ([]rune, Encoding, error) {
	// #nosec G304 -- Charset path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, UTF8, fmt.Errorf("charset: failed to read file: %w", err)
	}
	return Decode(data)
}
