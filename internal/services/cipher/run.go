// Package cipher is the request/response boundary over the cipher engines: it parses
// form-style parameters, dispatches to the engine for the requested algorithm and renders
// typed failures as messages.
package cipher

import (
	"fmt"
	"strconv"
	"strings"

	"aethervault/internal/adfgvx"
	"aethervault/internal/aes"
	"aethervault/internal/cipherr"
	"aethervault/internal/classical"
	"aethervault/internal/des"
)

const (
	minMatrixSize = 2
	maxMatrixSize = 5
)

func parseInt(raw, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, cipherr.Formatf("%s must be an integer.", name)
	}
	return n, nil
}

// hillMatrix reads the n×n key from the "m-i-j" cells of the request.
func hillMatrix(req Request) (classical.Matrix, error) {
	size := minMatrixSize
	if strings.TrimSpace(req.MatrixSize) != "" {
		n, err := parseInt(req.MatrixSize, "Matrix size")
		if err != nil {
			return nil, err
		}
		size = n
	}
	if size < minMatrixSize || size > maxMatrixSize {
		return nil, cipherr.Domainf("Matrix size must be between %d and %d.", minMatrixSize, maxMatrixSize)
	}
	m := make(classical.Matrix, size)
	for i := 0; i < size; i++ {
		m[i] = make([]int, size)
		for j := 0; j < size; j++ {
			raw, ok := req.Matrix[fmt.Sprintf("m-%d-%d", i, j)]
			if !ok || strings.TrimSpace(raw) == "" {
				return nil, cipherr.Structuralf("Matrix element at [%d,%d] is missing.", i+1, j+1)
			}
			v, err := parseInt(raw, fmt.Sprintf("Matrix element at [%d,%d]", i+1, j+1))
			if err != nil {
				return nil, err
			}
			m[i][j] = v
		}
	}
	return m, nil
}

func (a Action) valid() bool {
	switch a {
	case Encrypt, Decrypt, EncryptNoPadding, EncryptWithPadding:
		return true
	}
	return false
}

// Run executes req and returns the engine's typed error on failure.
func Run(req Request) (Result, error) {
	if !req.Action.valid() {
		return Result{}, cipherr.Unsupportedf("Unsupported action %q.", string(req.Action))
	}
	decrypt := req.Action == Decrypt

	var (
		out string
		err error
	)
	switch req.Algorithm {
	case Additive, Multiplicative:
		var k int
		if k, err = parseInt(req.Key, "Key"); err != nil {
			return Result{}, err
		}
		if req.Algorithm == Additive {
			out, err = classical.Additive(req.Text, k, decrypt)
		} else {
			out, err = classical.Multiplicative(req.Text, k, decrypt)
		}
	case Affine:
		var a, b int
		if a, err = parseInt(req.KeyA, "Key 'a'"); err != nil {
			return Result{}, err
		}
		if b, err = parseInt(req.KeyB, "Key 'b'"); err != nil {
			return Result{}, err
		}
		out, err = classical.Affine(req.Text, a, b, decrypt)
	case Vigenere:
		out, err = classical.Vigenere(req.Text, req.Key, decrypt)
	case Autokey:
		out, err = classical.Autokey(req.Text, req.Key, decrypt)
	case Playfair:
		out, err = classical.Playfair(req.Text, req.Key, decrypt)
	case Hill:
		var m classical.Matrix
		if m, err = hillMatrix(req); err != nil {
			return Result{}, err
		}
		mode := classical.HillMode(strings.ToLower(strings.TrimSpace(req.HillMode)))
		if mode == "" {
			mode = classical.HillStandard
		}
		out, err = classical.Hill(req.Text, m, mode, decrypt)
	case ADFGVX:
		var res adfgvx.Result
		if decrypt {
			res, err = adfgvx.Decrypt(req.Text, req.Square, req.TransKey)
		} else {
			pad := adfgvx.NoPadding
			if req.Action == EncryptWithPadding {
				pad = adfgvx.PadX
			}
			res, err = adfgvx.Encrypt(req.Text, req.Square, req.TransKey, pad)
		}
		if err != nil {
			return Result{}, err
		}
		return Result{Output: res.Output, Metadata: &Metadata{FullSquare: res.FullSquare}}, nil
	case AES128:
		out, err = aes.Cipher(req.Text, req.Key, decrypt)
	case DES:
		out, err = des.Cipher(req.Text, req.Key, decrypt)
	default:
		return Result{}, cipherr.Unsupportedf("Unsupported cipher type.")
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Output: out}, nil
}

// Process runs req and renders the outcome. It never fails; errors become
// {success:false, message}.
func Process(req Request) Response {
	res, err := Run(req)
	if err != nil {
		return Response{Success: false, Message: err.Error()}
	}
	return Response{Success: true, Message: "Operation successful", Output: res.Output, Metadata: res.Metadata}
}

// TraceDES returns the full DES breakdown; its FinalPermutation equals Run's output.
func TraceDES(text, key string, decrypt bool) (*des.Breakdown, error) {
	return des.Trace(text, key, decrypt)
}

// TraceAES returns the full AES-128 breakdown; its FinalOutput equals Run's output.
func TraceAES(text, key string, decrypt bool) (*aes.Breakdown, error) {
	return aes.Trace(text, key, decrypt)
}
