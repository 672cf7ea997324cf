// Package des implements single-block DES twice: a direct path on uint64 words and a traced
// path that records every intermediate value as hex or binary text. Both produce the same
// block for the same input.
package des

import (
	"encoding/binary"

	"aethervault/internal/cipherr"
	"aethervault/internal/numeric"
)

const hexLen = 16

func validate(text, key string) error {
	if !numeric.IsHex(key, hexLen) {
		return cipherr.Formatf("DES key must be exactly 16 hexadecimal characters.")
	}
	if !numeric.IsHex(text, hexLen) {
		return cipherr.Formatf("DES input text must be exactly 16 hexadecimal characters (one 64-bit block).")
	}
	return nil
}

func parseBlock(s string) uint64 {
	raw, _ := numeric.DecodeHex(s)
	return binary.BigEndian.Uint64(raw)
}

func formatBlock(v uint64) string {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], v)
	return numeric.EncodeHex(raw[:])
}

// permute picks the bits named by table out of an inBits-wide value.
func permute(in uint64, inBits int, table []uint8) uint64 {
	var out uint64
	for _, pos := range table {
		out = out<<1 | (in>>(inBits-int(pos)))&1
	}
	return out
}

func rotateLeft28(v uint32, n uint8) uint32 {
	return (v<<n | v>>(28-n)) & 0x0FFFFFFF
}

// subkeys derives the 16 48-bit round keys in generation order.
func subkeys(key uint64) [16]uint64 {
	cd := permute(key, 64, permutedChoice1[:])
	c := uint32(cd>>28) & 0x0FFFFFFF
	d := uint32(cd) & 0x0FFFFFFF
	var ks [16]uint64
	for i, n := range shifts {
		c = rotateLeft28(c, n)
		d = rotateLeft28(d, n)
		ks[i] = permute(uint64(c)<<28|uint64(d), 56, permutedChoice2[:])
	}
	return ks
}

func feistel(r uint32, k uint64) uint32 {
	x := permute(uint64(r), 32, expansion[:]) ^ k
	var s uint32
	for j := 0; j < 8; j++ {
		six := uint8(x>>(42-6*j)) & 0x3F
		row := six>>4&2 | six&1
		col := six >> 1 & 0xF
		s = s<<4 | uint32(sBoxes[j][row][col])
	}
	return uint32(permute(uint64(s), 32, pBox[:]))
}

// Block runs the 16-round network over one 64-bit block.
func Block(in, key uint64, decrypt bool) uint64 {
	ks := subkeys(key)
	v := permute(in, 64, initialPermutation[:])
	l, r := uint32(v>>32), uint32(v)
	for i := 0; i < 16; i++ {
		k := ks[i]
		if decrypt {
			k = ks[15-i]
		}
		l, r = r, l^feistel(r, k)
	}
	// undo the swap of the last round
	return permute(uint64(r)<<32|uint64(l), 64, finalPermutation[:])
}

// Cipher encrypts or decrypts one 16-hex-digit block. Output is uppercase hex.
func Cipher(text, key string, decrypt bool) (string, error) {
	if err := validate(text, key); err != nil {
		return "", err
	}
	return formatBlock(Block(parseBlock(text), parseBlock(key), decrypt)), nil
}

func Encrypt(text, key string) (string, error) { return Cipher(text, key, false) }

func Decrypt(text, key string) (string, error) { return Cipher(text, key, true) }
