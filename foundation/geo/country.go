package geo

import "strings"

// NormalizeISO2 trims and uppercases a two-letter ASCII country code.
//
// The check is format-only: any two ASCII letters normalize fine, whether or
// not the ISO 3166-1 registry assigns them. Callers that treat unassigned
// codes as meaningful (passthrough countries, test fixtures) rely on that.
func NormalizeISO2(code string) (string, bool) {
	c := strings.TrimSpace(code)
	if len(c) != 2 {
		return "", false
	}

	b0, b1 := c[0], c[1]
	if !isASCIILetter(b0) || !isASCIILetter(b1) {
		return "", false
	}

	// Byte-level uppercase avoids the strings.ToUpper allocation for what is
	// always a 2-byte ASCII value here.
	return string([]byte{toUpperASCII(b0), toUpperASCII(b1)}), true
}

// IsValidISO2 reports whether a value normalizes as a two-letter ASCII code.
func IsValidISO2(code string) bool {
	_, ok := NormalizeISO2(code)
	return ok
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
