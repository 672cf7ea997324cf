package classical

import (
	"strings"

	"aethervault/internal/cipherr"
	"aethervault/internal/numeric"
)

// HillMode selects the multiplication order.
type HillMode string

const (
	// HillStandard multiplies the key by column vectors and pads with 'x'.
	HillStandard HillMode = "standard"
	// HillBook multiplies row vectors by the key and pads with 'z'.
	HillBook HillMode = "book"
)

// Matrix is a square integer matrix over Z/26.
type Matrix [][]int

func (m Matrix) square() bool {
	if len(m) == 0 {
		return false
	}
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return true
}

// Minor drops row and column.
func (m Matrix) Minor(row, col int) Matrix {
	out := make(Matrix, 0, len(m)-1)
	for i := range m {
		if i == row {
			continue
		}
		r := make([]int, 0, len(m[i])-1)
		for j := range m[i] {
			if j == col {
				continue
			}
			r = append(r, m[i][j])
		}
		out = append(out, r)
	}
	return out
}

// Determinant computes the determinant modulo 26 by Laplace expansion along the first row.
func (m Matrix) Determinant() (int, error) {
	if !m.square() {
		return 0, cipherr.Structuralf("Matrix must be square to calculate determinant.")
	}
	return m.det(), nil
}

func (m Matrix) det() int {
	switch len(m) {
	case 1:
		return numeric.Mod(m[0][0], 26)
	case 2:
		return numeric.Mod(m[0][0]*m[1][1]-m[0][1]*m[1][0], 26)
	}
	sum := 0
	sign := 1
	for j := range m[0] {
		sum += sign * m[0][j] * m.Minor(0, j).det()
		sign = -sign
	}
	return numeric.Mod(sum, 26)
}

// Inverse computes the inverse modulo 26 via the adjugate.
func (m Matrix) Inverse() (Matrix, error) {
	if !m.square() {
		return nil, cipherr.Structuralf("Matrix must be square to be inverted.")
	}
	d := m.det()
	if !numeric.IsCoprime(d, 26) {
		return nil, cipherr.Algebraicf("The determinant of the matrix (%d) is not coprime with 26. The matrix is not invertible.", d)
	}
	dInv, ok := numeric.ModInverse(d, 26)
	if !ok {
		return nil, cipherr.Algebraicf("Could not find modular inverse of the determinant (%d).", d)
	}
	n := len(m)
	if n == 1 {
		return Matrix{{dInv}}, nil
	}
	inv := newMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sign := 1
			if (i+j)%2 == 1 {
				sign = -1
			}
			cofactor := numeric.Mod(sign*m.Minor(i, j).det(), 26)
			// adjugate is the transposed cofactor matrix
			inv[j][i] = numeric.Mod(cofactor*dInv, 26)
		}
	}
	return inv, nil
}

// Mul returns m × b modulo 26.
func (m Matrix) Mul(b Matrix) (Matrix, error) {
	if len(m) == 0 || len(b) == 0 || len(m[0]) != len(b) {
		return nil, cipherr.Structuralf("Invalid dimensions for matrix multiplication.")
	}
	out := newMatrix(len(m), len(b[0]))
	for i := range m {
		for j := range b[0] {
			sum := 0
			for k := range b {
				sum += m[i][k] * b[k][j]
			}
			out[i][j] = numeric.Mod(sum, 26)
		}
	}
	return out, nil
}

func newMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]int, cols)
	}
	return m
}

// Hill encrypts or decrypts text with the key matrix.
// Decryption requires the text length to be a multiple of the matrix size.
func Hill(text string, key Matrix, mode HillMode, decrypt bool) (string, error) {
	if !key.square() {
		return "", cipherr.Structuralf("Hill cipher requires a non-empty square key matrix.")
	}
	for i, row := range key {
		for j, v := range row {
			if v < 0 || v > 25 {
				return "", cipherr.Domainf("Matrix element at [%d,%d] must be between 0 and 25.", i+1, j+1)
			}
		}
	}
	if mode != HillStandard && mode != HillBook {
		return "", cipherr.Unsupportedf("Unknown Hill cipher mode %q.", string(mode))
	}
	n := len(key)
	d := key.det()
	if !numeric.IsCoprime(d, 26) {
		return "", cipherr.Algebraicf("The determinant of the key matrix (%d) is not coprime with 26. The matrix is not invertible.", d)
	}

	clean := strings.ToLower(cleanUpper(text))
	m := key
	if decrypt {
		if len(clean)%n != 0 {
			return "", cipherr.Structuralf("Ciphertext length must be a multiple of the matrix size.")
		}
		inv, err := key.Inverse()
		if err != nil {
			return "", err
		}
		m = inv
	} else {
		pad := "x"
		if mode == HillBook {
			pad = "z"
		}
		for len(clean)%n != 0 {
			clean += pad
		}
	}
	if clean == "" {
		return "", nil
	}

	blocks := len(clean) / n
	out := make([]byte, 0, len(clean))
	if mode == HillStandard {
		// one column per block
		p := newMatrix(n, blocks)
		for c := 0; c < blocks; c++ {
			for r := 0; r < n; r++ {
				p[r][c] = int(clean[c*n+r] - 'a')
			}
		}
		res, err := m.Mul(p)
		if err != nil {
			return "", err
		}
		for c := 0; c < blocks; c++ {
			for r := 0; r < n; r++ {
				out = append(out, byte(res[r][c])+'a')
			}
		}
	} else {
		// one row per block
		p := newMatrix(blocks, n)
		for r := 0; r < blocks; r++ {
			for c := 0; c < n; c++ {
				p[r][c] = int(clean[r*n+c] - 'a')
			}
		}
		res, err := p.Mul(m)
		if err != nil {
			return "", err
		}
		for r := 0; r < blocks; r++ {
			for c := 0; c < n; c++ {
				out = append(out, byte(res[r][c])+'a')
			}
		}
	}
	if decrypt {
		return string(out), nil
	}
	return strings.ToUpper(string(out)), nil
}
