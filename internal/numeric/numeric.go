// Package numeric contains the modular-arithmetic and bit helpers shared by the cipher engines.
package numeric

import (
	"math/bits"

	"aethervault/internal/cipherr"
)

// Mod is the mathematical modulo: the result is always in [0, m).
func Mod(n, m int) int {
	return ((n % m) + m) % m
}

func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func IsCoprime(a, m int) bool {
	return GCD(a, m) == 1
}

// ModInverse searches x in [1, m) with a*x ≡ 1 (mod m).
// ok is false when no inverse exists; callers should check coprimality first.
func ModInverse(a, m int) (x int, ok bool) {
	a = Mod(a, m)
	for x = 1; x < m; x++ {
		if Mod(a*x, m) == 1 {
			return x, true
		}
	}
	return -1, false
}

// ExtendedInverse computes the inverse of a modulo m with the extended Euclidean algorithm.
func ExtendedInverse(a, m int) (int, error) {
	if m <= 0 {
		return 0, cipherr.Domainf("Modulus must be a positive integer.")
	}
	if GCD(a, m) != 1 {
		return 0, cipherr.Algebraicf("Inverse does not exist because gcd(%d, %d) is not 1.", a, m)
	}
	if m == 1 {
		return 0, nil
	}
	r0, r1 := m, Mod(a, m)
	t0, t1 := 0, 1
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, t0-q*t1
	}
	return Mod(t0, m), nil
}

// ModPow is square-and-multiply exponentiation: base^exp mod m.
func ModPow(base, exp, m int) (int, error) {
	if m <= 0 {
		return 0, cipherr.Domainf("Modulus must be a positive integer.")
	}
	if exp < 0 {
		return 0, cipherr.Domainf("Exponent must not be negative.")
	}
	if m == 1 {
		return 0, nil
	}
	result := uint64(1)
	b := uint64(Mod(base, m))
	mm := uint64(m)
	for e := exp; e > 0; e >>= 1 {
		if e&1 == 1 {
			result = mulMod(result, b, mm)
		}
		b = mulMod(b, b, mm)
	}
	return int(result), nil
}

// mulMod keeps the full 128-bit product before reducing.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// GFMul multiplies two elements of GF(2^8) modulo x^8+x^4+x^3+x+1.
func GFMul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1B
		}
		b >>= 1
	}
	return p
}
