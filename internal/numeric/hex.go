package numeric

import (
	"fmt"
	"strings"

	"aethervault/internal/cipherr"

	fasthex "github.com/tmthrgd/go-hex"
)

const hexDigits = "0123456789ABCDEF"

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// IsHex reports whether s is exactly n hexadecimal digits.
func IsHex(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for i := 0; i < len(s); i++ {
		if _, ok := hexValue(s[i]); !ok {
			return false
		}
	}
	return true
}

// ValidateHex returns a format error naming what unless s is exactly n hex digits.
func ValidateHex(s string, n int, what string) error {
	if !IsHex(s, n) {
		return cipherr.Formatf("%s must be a %d-character hexadecimal string.", what, n)
	}
	return nil
}

// HexToBinary expands every hex digit into four binary digits.
func HexToBinary(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) * 4)
	for i := 0; i < len(s); i++ {
		v, ok := hexValue(s[i])
		if !ok {
			return "", fmt.Errorf("invalid hex digit %q at %d", s[i], i)
		}
		for bit := 3; bit >= 0; bit-- {
			b.WriteByte('0' + (v>>bit)&1)
		}
	}
	return b.String(), nil
}

// BinaryToHex groups bits by four, left-padding with zeros to a whole digit. Output is uppercase.
func BinaryToHex(s string) (string, error) {
	if pad := len(s) % 4; pad != 0 {
		s = strings.Repeat("0", 4-pad) + s
	}
	var b strings.Builder
	b.Grow(len(s) / 4)
	for i := 0; i < len(s); i += 4 {
		var v byte
		for _, c := range []byte(s[i : i+4]) {
			if c != '0' && c != '1' {
				return "", fmt.Errorf("invalid binary digit %q", c)
			}
			v = v<<1 | (c - '0')
		}
		b.WriteByte(hexDigits[v])
	}
	return b.String(), nil
}

// XORHex XORs two hex strings digit by digit. The shorter operand is left-padded with zeros.
func XORHex(a, b string) (string, error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	a = strings.Repeat("0", n-len(a)) + a
	b = strings.Repeat("0", n-len(b)) + b
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		x, ok := hexValue(a[i])
		if !ok {
			return "", fmt.Errorf("invalid hex digit %q", a[i])
		}
		y, ok := hexValue(b[i])
		if !ok {
			return "", fmt.Errorf("invalid hex digit %q", b[i])
		}
		out[i] = hexDigits[x^y]
	}
	return string(out), nil
}

// DecodeHex decodes an even-length hex string into bytes.
func DecodeHex(s string) ([]byte, error) {
	return fasthex.DecodeString(s)
}

// EncodeHex renders bytes as uppercase hex.
func EncodeHex(b []byte) string {
	return strings.ToUpper(fasthex.EncodeToString(b))
}
