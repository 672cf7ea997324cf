// Package adfgvx implements the ADFGVX cipher: a 6×6 Polybius square over A-Z0-9 followed by
// a columnar transposition.
package adfgvx

import (
	"sort"
	"strings"

	"aethervault/internal/cipherr"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	headers  = "ADFGVX"
)

// Padding fills the empty trailing cells of the transposition grid.
type Padding byte

const (
	// NoPadding leaves trailing cells empty; they contribute nothing to the output.
	NoPadding Padding = 0
	// PadX fills trailing cells with 'X'.
	PadX Padding = 'X'
)

// Result carries the output and the completed 36-character square.
type Result struct {
	Output     string `json:"output"`
	FullSquare string `json:"fullSquare"`
}

// BuildSquare keeps the first occurrence of every A-Z0-9 character of input and completes
// the square from the canonical alphabet.
func BuildSquare(input string) string {
	var seen [128]bool
	sq := make([]byte, 0, len(alphabet))
	add := func(c byte) {
		if !seen[c] {
			seen[c] = true
			sq = append(sq, c)
		}
	}
	for _, r := range strings.ToUpper(input) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			add(byte(r))
		}
	}
	for i := 0; i < len(alphabet) && len(sq) < len(alphabet); i++ {
		add(alphabet[i])
	}
	return string(sq)
}

// KeyOrder returns the column indexes of the cleaned transposition key sorted by letter,
// ties kept in key order.
func KeyOrder(transKey string) ([]int, error) {
	var key []byte
	for _, r := range strings.ToUpper(transKey) {
		if r >= 'A' && r <= 'Z' {
			key = append(key, byte(r))
		}
	}
	if len(key) == 0 {
		return nil, cipherr.Formatf("Transposition key is required for ADFGVX.")
	}
	order := make([]int, len(key))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return key[order[a]] < key[order[b]] })
	return order, nil
}

func cleanText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Encrypt fractionates text through the square and transposes it by transKey.
func Encrypt(text, square, transKey string, pad Padding) (Result, error) {
	full := BuildSquare(square)
	order, err := KeyOrder(transKey)
	if err != nil {
		return Result{}, err
	}

	clean := cleanText(text)
	frac := make([]byte, 0, 2*len(clean))
	for i := 0; i < len(clean); i++ {
		idx := strings.IndexByte(full, clean[i])
		frac = append(frac, headers[idx/6], headers[idx%6])
	}

	cols := len(order)
	rows := (len(frac) + cols - 1) / cols
	out := make([]byte, 0, rows*cols)
	for _, c := range order {
		for r := 0; r < rows; r++ {
			switch i := r*cols + c; {
			case i < len(frac):
				out = append(out, frac[i])
			case pad != NoPadding:
				out = append(out, byte(pad))
			}
		}
	}
	return Result{Output: string(out), FullSquare: full}, nil
}

// Decrypt reverses Encrypt for unpadded ciphertext. Input may only contain the letters ADFGVX.
func Decrypt(text, square, transKey string) (Result, error) {
	full := BuildSquare(square)
	order, err := KeyOrder(transKey)
	if err != nil {
		return Result{}, err
	}
	cipher := strings.ToUpper(text)
	for i := 0; i < len(cipher); i++ {
		if strings.IndexByte(headers, cipher[i]) < 0 {
			return Result{}, cipherr.Structuralf("Decryption text must contain only ADFGVX characters.")
		}
	}

	cols := len(order)
	rows := (len(cipher) + cols - 1) / cols
	// the first longCols grid columns hold one more cell than the rest
	longCols := len(cipher) % cols
	columns := make([]string, cols)
	cursor := 0
	for _, c := range order {
		n := rows
		if longCols != 0 && c >= longCols {
			n = rows - 1
		}
		columns[c] = cipher[cursor : cursor+n]
		cursor += n
	}

	frac := make([]byte, 0, len(cipher))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if r < len(columns[c]) {
				frac = append(frac, columns[c][r])
			}
		}
	}

	out := make([]byte, 0, len(frac)/2)
	for i := 0; i+1 < len(frac); i += 2 {
		r := strings.IndexByte(headers, frac[i])
		c := strings.IndexByte(headers, frac[i+1])
		out = append(out, full[r*6+c])
	}
	return Result{Output: string(out), FullSquare: full}, nil
}
