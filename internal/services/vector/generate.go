// Package vector generates and validates NIST-style known-answer files for the
// DES and AES-128 engines.
package vector

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"aethervault/internal/aes"
	"aethervault/internal/des"

	"github.com/tmthrgd/go-hex"
)

type Algorithm string

const (
	DES    Algorithm = "DES"
	AES128 Algorithm = "AES128"
)

type TestMode string

const (
	// KAT encrypts random blocks once under the all-zero key.
	KAT TestMode = "KAT"
	// MCT chains MCTIterations encryptions of a random block under a random key.
	MCT TestMode = "MCT"
)

const (
	MCTIterations = 1000
	DefaultCount  = 10
	MaxCount      = 1000
)

type GenParams struct {
	Algorithm       Algorithm
	TestMode        TestMode
	Count           int
	IncludeExpected bool
}

type EncRecord struct {
	Count      int    `json:"count"`
	KeyHex     string `json:"key"`
	Iterations int    `json:"iterations"`
	Plaintext  string `json:"plaintext"`
	Ciphertext string `json:"ciphertext,omitempty"`
}

type DecRecord struct {
	Count      int    `json:"count"`
	KeyHex     string `json:"key"`
	Iterations int    `json:"iterations"`
	Ciphertext string `json:"ciphertext"`
	Plaintext  string `json:"plaintext,omitempty"`
}

type Set struct {
	Algorithm Algorithm   `json:"algorithm"`
	TestMode  TestMode    `json:"test_mode"`
	KeyBits   int         `json:"key_bits"`
	Encrypt   []EncRecord `json:"encrypt"`
	Decrypt   []DecRecord `json:"decrypt"`
}

// ParseAlgorithm accepts the catalogue ids ("des", "aes128") and a few spellings.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "")) {
	case "DES":
		return DES, nil
	case "AES128", "AES":
		return AES128, nil
	}
	return "", fmt.Errorf("unsupported algorithm %q", s)
}

func ParseTestMode(s string) (TestMode, error) {
	switch TestMode(strings.ToUpper(strings.TrimSpace(s))) {
	case KAT, "":
		return KAT, nil
	case MCT:
		return MCT, nil
	}
	return "", fmt.Errorf("unsupported test_mode %q", s)
}

// blockCipher is one single-block engine keyed by raw bytes.
type blockCipher struct {
	keyLen  int
	blkLen  int
	encrypt func(key, block []byte) []byte
	decrypt func(key, block []byte) []byte
}

func desBlock(decrypt bool) func(key, block []byte) []byte {
	return func(key, block []byte) []byte {
		out := des.Block(binary.BigEndian.Uint64(block), binary.BigEndian.Uint64(key), decrypt)
		return binary.BigEndian.AppendUint64(nil, out)
	}
}

func aesBlock(decrypt bool) func(key, block []byte) []byte {
	return func(key, block []byte) []byte {
		sch := aes.NewSchedule([16]byte(key))
		var out [16]byte
		if decrypt {
			out = aes.DecryptBlock([16]byte(block), sch)
		} else {
			out = aes.EncryptBlock([16]byte(block), sch)
		}
		return out[:]
	}
}

var engines = map[Algorithm]blockCipher{
	DES:    {keyLen: 8, blkLen: 8, encrypt: desBlock(false), decrypt: desBlock(true)},
	AES128: {keyLen: 16, blkLen: 16, encrypt: aesBlock(false), decrypt: aesBlock(true)},
}

func engineForKey(n int) (blockCipher, Algorithm, bool) {
	for alg, e := range engines {
		if e.keyLen == n {
			return e, alg, true
		}
	}
	return blockCipher{}, "", false
}

func iterate(f func(key, block []byte) []byte, key, block []byte, n int) []byte {
	out := block
	for i := 0; i < n; i++ {
		out = f(key, out)
	}
	return out
}

func randBytes(r io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("random source: %w", err)
	}
	return b, nil
}

// Generate produces p.Count encrypt and decrypt records. A nil r uses crypto/rand.
// Each decrypt record inverts the matching encrypt record.
func Generate(p GenParams, r io.Reader) (Set, error) {
	if r == nil {
		r = rand.Reader
	}
	e, ok := engines[p.Algorithm]
	if !ok {
		return Set{}, fmt.Errorf("unsupported algorithm %q", p.Algorithm)
	}
	if p.TestMode != KAT && p.TestMode != MCT {
		return Set{}, fmt.Errorf("unsupported test_mode %q", p.TestMode)
	}
	if p.Count <= 0 {
		p.Count = DefaultCount
	}
	if p.Count > MaxCount {
		return Set{}, fmt.Errorf("count must be at most %d", MaxCount)
	}

	out := Set{Algorithm: p.Algorithm, TestMode: p.TestMode, KeyBits: e.keyLen * 8}
	iterations := 1
	if p.TestMode == MCT {
		iterations = MCTIterations
	}
	for i := 0; i < p.Count; i++ {
		key := make([]byte, e.keyLen)
		if p.TestMode == MCT {
			var err error
			if key, err = randBytes(r, e.keyLen); err != nil {
				return Set{}, err
			}
		}
		pt, err := randBytes(r, e.blkLen)
		if err != nil {
			return Set{}, err
		}
		ct := iterate(e.encrypt, key, pt, iterations)

		enc := EncRecord{Count: i, KeyHex: hex.EncodeToString(key), Iterations: iterations, Plaintext: hex.EncodeToString(pt)}
		dec := DecRecord{Count: i, KeyHex: enc.KeyHex, Iterations: iterations, Ciphertext: hex.EncodeToString(ct)}
		if p.IncludeExpected {
			enc.Ciphertext = dec.Ciphertext
			dec.Plaintext = enc.Plaintext
		}
		out.Encrypt = append(out.Encrypt, enc)
		out.Decrypt = append(out.Decrypt, dec)
	}
	return out, nil
}
