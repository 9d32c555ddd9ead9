package textio

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ReadFile reads path and returns its content decoded to UTF-8. fallback is
// the IANA name of the encoding assumed when the content is neither
// BOM-marked nor valid UTF-8 (for example "windows-1252" or "shift_jis").
func ReadFile(path, fallback string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read sheet: %w", err)
	}
	decoded, err := Decode(data, fallback)
	if err != nil {
		return "", fmt.Errorf("decode sheet %s: %w", path, err)
	}
	return decoded, nil
}

// Decode converts raw sheet bytes to a UTF-8 string.
func Decode(data []byte, fallback string) (string, error) {
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(bytes.TrimPrefix(data, bomUTF8)), nil
	case bytes.HasPrefix(data, bomUTF16LE):
		return decodeWith(unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), data)
	case bytes.HasPrefix(data, bomUTF16BE):
		return decodeWith(unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), data)
	case utf8.Valid(data):
		return string(data), nil
	}

	enc, err := Lookup(fallback)
	if err != nil {
		return "", err
	}
	return decodeWith(enc, data)
}

// Lookup resolves an encoding by its IANA name.
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("text encoding name is empty")
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown text encoding %q", name)
	}
	return enc, nil
}

func decodeWith(enc encoding.Encoding, data []byte) (string, error) {
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
