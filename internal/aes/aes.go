// Package aes implements single-block AES-128 encryption and decryption, both directly and
// with a trace of every round and every key-schedule word.
package aes

import (
	"aethervault/internal/cipherr"
	"aethervault/internal/numeric"
)

const hexLen = 32

func parseKey(key string) ([16]byte, error) {
	var k [16]byte
	if !numeric.IsHex(key, hexLen) {
		return k, cipherr.Formatf("AES-128 key must be exactly 32 hexadecimal characters.")
	}
	raw, err := numeric.DecodeHex(key)
	if err != nil {
		return k, cipherr.Formatf("AES-128 key must be exactly 32 hexadecimal characters.")
	}
	copy(k[:], raw)
	return k, nil
}

func parseBlock(text string) ([16]byte, error) {
	var b [16]byte
	if !numeric.IsHex(text, hexLen) {
		return b, cipherr.Formatf("AES-128 input text must be exactly 32 hexadecimal characters (one 128-bit block).")
	}
	raw, err := numeric.DecodeHex(text)
	if err != nil {
		return b, cipherr.Formatf("AES-128 input text must be exactly 32 hexadecimal characters (one 128-bit block).")
	}
	copy(b[:], raw)
	return b, nil
}

func parse(text, key string) ([16]byte, [16]byte, error) {
	k, err := parseKey(key)
	if err != nil {
		return [16]byte{}, k, err
	}
	b, err := parseBlock(text)
	return b, k, err
}

// EncryptBlock encrypts one block with an expanded key.
func EncryptBlock(in [16]byte, sch Schedule) [16]byte {
	s := NewState(in).AddRoundKey(sch.RoundKey(0))
	for round := 1; round <= 10; round++ {
		s = s.SubBytes().ShiftRows()
		if round < 10 {
			s = s.MixColumns()
		}
		s = s.AddRoundKey(sch.RoundKey(round))
	}
	return s.Bytes()
}

// DecryptBlock inverts EncryptBlock.
func DecryptBlock(in [16]byte, sch Schedule) [16]byte {
	s := NewState(in).AddRoundKey(sch.RoundKey(10))
	for round := 1; round <= 10; round++ {
		s = s.InvShiftRows().InvSubBytes().AddRoundKey(sch.RoundKey(10 - round))
		if round < 10 {
			s = s.InvMixColumns()
		}
	}
	return s.Bytes()
}

// Cipher encrypts or decrypts one 32-hex-digit block. Output is uppercase hex.
func Cipher(text, key string, decrypt bool) (string, error) {
	block, k, err := parse(text, key)
	if err != nil {
		return "", err
	}
	sch := expand(k)
	var out [16]byte
	if decrypt {
		out = DecryptBlock(block, sch)
	} else {
		out = EncryptBlock(block, sch)
	}
	return numeric.EncodeHex(out[:]), nil
}

func Encrypt(text, key string) (string, error) { return Cipher(text, key, false) }

func Decrypt(text, key string) (string, error) { return Cipher(text, key, true) }
