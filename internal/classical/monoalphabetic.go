package classical

import (
	"aethervault/internal/cipherr"
	"aethervault/internal/numeric"
)

// Additive shifts every letter by key.
func Additive(text string, key int, decrypt bool) (string, error) {
	if key < 0 || key > 25 {
		return "", cipherr.Domainf("Key for Additive cipher must be between 0 and 25.")
	}
	shift := key
	if decrypt {
		shift = -key
	}
	clean := cleanUpper(text)
	out := make([]byte, len(clean))
	for i := 0; i < len(clean); i++ {
		out[i] = byte(numeric.Mod(int(clean[i]-'A')+shift, 26)) + 'A'
	}
	return finish(out, decrypt), nil
}

// Multiplicative multiplies every letter index by key, which must be invertible modulo 26.
func Multiplicative(text string, key int, decrypt bool) (string, error) {
	if key < 0 || key > 25 {
		return "", cipherr.Domainf("Key for Multiplicative cipher must be between 0 and 25.")
	}
	if !numeric.IsCoprime(key, 26) {
		return "", cipherr.Algebraicf("Key %d must be coprime to 26.", key)
	}
	mult := key
	if decrypt {
		mult, _ = numeric.ModInverse(key, 26)
	}
	clean := cleanUpper(text)
	out := make([]byte, len(clean))
	for i := 0; i < len(clean); i++ {
		out[i] = byte(numeric.Mod(int(clean[i]-'A')*mult, 26)) + 'A'
	}
	return finish(out, decrypt), nil
}

// Affine computes a·p+b on encryption and a⁻¹·(c-b) on decryption.
func Affine(text string, a, b int, decrypt bool) (string, error) {
	if a < 0 || a > 25 || b < 0 || b > 25 {
		return "", cipherr.Domainf("Keys 'a' and 'b' for Affine cipher must be between 0 and 25.")
	}
	if !numeric.IsCoprime(a, 26) {
		return "", cipherr.Algebraicf("Key 'a' (%d) must be coprime to 26.", a)
	}
	clean := cleanUpper(text)
	out := make([]byte, len(clean))
	if decrypt {
		aInv, _ := numeric.ModInverse(a, 26)
		for i := 0; i < len(clean); i++ {
			out[i] = byte(numeric.Mod(aInv*(int(clean[i]-'A')-b), 26)) + 'A'
		}
	} else {
		for i := 0; i < len(clean); i++ {
			out[i] = byte(numeric.Mod(a*int(clean[i]-'A')+b, 26)) + 'A'
		}
	}
	return finish(out, decrypt), nil
}
