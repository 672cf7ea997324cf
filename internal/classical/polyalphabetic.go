package classical

import (
	"aethervault/internal/cipherr"
	"aethervault/internal/numeric"
)

// Vigenere adds the repeating key to the text. An empty key returns the cleaned text.
func Vigenere(text, key string, decrypt bool) (string, error) {
	if !isLetters(key) {
		return "", cipherr.Formatf("Key for Vigenere cipher must only contain letters.")
	}
	clean := cleanUpper(text)
	k := cleanUpper(key)
	if k == "" {
		return clean, nil
	}
	out := make([]byte, len(clean))
	for i := 0; i < len(clean); i++ {
		p := int(clean[i] - 'A')
		s := int(k[i%len(k)] - 'A')
		if decrypt {
			s = -s
		}
		out[i] = byte(numeric.Mod(p+s, 26)) + 'A'
	}
	return finish(out, decrypt), nil
}

// Autokey uses the keyword followed by the plaintext itself as key stream.
func Autokey(text, key string, decrypt bool) (string, error) {
	if !isLetters(key) {
		return "", cipherr.Formatf("Key for Autokey cipher must only contain letters.")
	}
	clean := cleanUpper(text)
	k := cleanUpper(key)
	if k == "" {
		return clean, nil
	}
	out := make([]byte, len(clean))
	if decrypt {
		// each recovered letter extends the stream for later positions
		stream := []byte(k)
		for i := 0; i < len(clean); i++ {
			p := byte(numeric.Mod(int(clean[i]-'A')-int(stream[i]-'A'), 26)) + 'A'
			out[i] = p
			stream = append(stream, p)
		}
		return finish(out, decrypt), nil
	}
	stream := (k + clean)[:len(clean)]
	for i := 0; i < len(clean); i++ {
		out[i] = byte(numeric.Mod(int(clean[i]-'A')+int(stream[i]-'A'), 26)) + 'A'
	}
	return finish(out, decrypt), nil
}
