package util

import (
	"strings"

	"github.com/tmthrgd/go-hex"
)

// IsLikelyHex reports whether s, ignoring spaces, is an even-length hex string.
func IsLikelyHex(s string) bool {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if s == "" || len(s)%2 != 0 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

// ToHex returns s as uppercase hex: hex input is normalised, anything else is encoded byte-wise.
func ToHex(s string) string {
	if IsLikelyHex(s) {
		return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	}
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

// ASCIIBlock encodes s as one cipher block of size bytes, right-padded with zero bytes.
// It reports false when s is longer than the block.
func ASCIIBlock(s string, size int) (string, bool) {
	if len(s) > size {
		return "", false
	}
	b := make([]byte, size)
	copy(b, s)
	return strings.ToUpper(hex.EncodeToString(b)), true
}
