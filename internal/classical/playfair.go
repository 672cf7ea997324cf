package classical

import (
	"strings"

	"aethervault/internal/cipherr"
	"aethervault/internal/numeric"
)

const playfairAlphabet = "ABCDEFGHIKLMNOPQRSTUVWXYZ"

// PlayfairSquare is the 5×5 key square; J is folded into I.
type PlayfairSquare [5][5]byte

// NewPlayfairSquare builds the square from the key followed by the remaining alphabet.
func NewPlayfairSquare(key string) PlayfairSquare {
	seed := strings.ReplaceAll(cleanUpper(key), "J", "I") + playfairAlphabet
	var sq PlayfairSquare
	var seen [26]bool
	n := 0
	for i := 0; i < len(seed) && n < 25; i++ {
		c := seed[i]
		if seen[c-'A'] {
			continue
		}
		seen[c-'A'] = true
		sq[n/5][n%5] = c
		n++
	}
	return sq
}

func (sq PlayfairSquare) find(c byte) (row, col int) {
	for r := 0; r < 5; r++ {
		for k := 0; k < 5; k++ {
			if sq[r][k] == c {
				return r, k
			}
		}
	}
	return 0, 0
}

func (sq PlayfairSquare) String() string {
	var b strings.Builder
	for r := 0; r < 5; r++ {
		b.Write(sq[r][:])
	}
	return b.String()
}

// PlayfairDigraphs splits text into pairs, inserting X between doubled letters
// and after an odd trailing letter.
func PlayfairDigraphs(clean string) string {
	var b strings.Builder
	for len(clean) > 0 {
		c1 := clean[0]
		if len(clean) == 1 {
			b.WriteByte(c1)
			b.WriteByte('X')
			break
		}
		c2 := clean[1]
		if c1 == c2 {
			b.WriteByte(c1)
			b.WriteByte('X')
			clean = clean[1:]
			continue
		}
		b.WriteByte(c1)
		b.WriteByte(c2)
		clean = clean[2:]
	}
	return b.String()
}

// Playfair substitutes letter pairs using the key square.
func Playfair(text, key string, decrypt bool) (string, error) {
	if !isLetters(key) {
		return "", cipherr.Formatf("Key for Playfair cipher must only contain letters.")
	}
	if !isLetters(text) {
		return "", cipherr.Formatf("Text for Playfair cipher must only contain letters.")
	}
	sq := NewPlayfairSquare(key)
	clean := strings.ReplaceAll(cleanUpper(text), "J", "I")
	if !decrypt {
		clean = PlayfairDigraphs(clean)
	}
	shift := 1
	if decrypt {
		shift = -1
	}
	out := make([]byte, 0, len(clean))
	for i := 0; i+1 < len(clean); i += 2 {
		r1, c1 := sq.find(clean[i])
		r2, c2 := sq.find(clean[i+1])
		switch {
		case r1 == r2:
			out = append(out, sq[r1][numeric.Mod(c1+shift, 5)], sq[r2][numeric.Mod(c2+shift, 5)])
		case c1 == c2:
			out = append(out, sq[numeric.Mod(r1+shift, 5)][c1], sq[numeric.Mod(r2+shift, 5)][c2])
		default:
			out = append(out, sq[r1][c2], sq[r2][c1])
		}
	}
	return finish(out, decrypt), nil
}
