// Package classical implements the pen-and-paper ciphers: additive, multiplicative, affine,
// Vigenère, autokey, Playfair and Hill.
//
// Every cipher strips the input down to letters. Ciphertext is returned in upper case and
// recovered plaintext in lower case.
package classical

import "strings"

// cleanUpper upper-cases s and drops everything outside A-Z.
func cleanUpper(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToUpper(s) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isLetters(s string) bool {
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z') && !(r >= 'a' && r <= 'z') {
			return false
		}
	}
	return true
}

func finish(result []byte, decrypt bool) string {
	if decrypt {
		return strings.ToLower(string(result))
	}
	return string(result)
}
