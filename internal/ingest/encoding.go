package ingest

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Lookup resolves a roster encoding name. "utf-8-sig" mirrors the common
// spreadsheet export convention: a BOM is tolerated on read and written on save.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8-sig", "utf8-sig", "":
		return unicode.UTF8BOM, nil
	case "utf-8", "utf8":
		return unicode.UTF8, nil
	case "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "cp1252", "windows-1252":
		return charmap.Windows1252, nil
	default:
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrDecode, name)
	}
}

func isUTF8Family(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8-sig", "utf8-sig", "", "utf-8", "utf8":
		return true
	}
	return false
}

// decode converts raw input bytes to UTF-8 text. The x/text UTF-8 decoders
// substitute replacement runes instead of failing, so the UTF-8 family is
// validated explicitly to surface undecodable input as ErrDecode.
func decode(raw []byte, encName string) (string, error) {
	enc, err := Lookup(encName)
	if err != nil {
		return "", err
	}
	if isUTF8Family(encName) {
		body := raw
		if len(body) >= 3 && body[0] == 0xEF && body[1] == 0xBB && body[2] == 0xBF {
			body = body[3:]
		}
		if !utf8.Valid(body) {
			return "", fmt.Errorf("%w: input is not valid %s", ErrDecode, encName)
		}
		return string(body), nil
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return string(out), nil
}
