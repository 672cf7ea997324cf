package cipher

import (
	"fmt"
	"strings"

	"aethervault/internal/cipherr"
	"aethervault/internal/numeric"
)

// GFMultipliers are the constants used by MixColumns and InvMixColumns.
var GFMultipliers = []string{"02", "03", "09", "0B", "0D", "0E"}

// GFProduct is the outcome of a GF(2^8) multiplication.
type GFProduct struct {
	Value      string `json:"value"`
	Multiplier string `json:"multiplier"`
	Result     string `json:"result"`
	Binary     string `json:"binary"`
}

// GFMultiply multiplies a hex byte by one of the MixColumns constants.
func GFMultiply(value, multiplier string) (GFProduct, error) {
	value = strings.ToUpper(strings.TrimSpace(value))
	multiplier = strings.ToUpper(strings.TrimSpace(multiplier))
	if err := numeric.ValidateHex(value, 2, "Value"); err != nil {
		return GFProduct{}, err
	}
	allowed := false
	for _, m := range GFMultipliers {
		if m == multiplier {
			allowed = true
			break
		}
	}
	if !allowed {
		return GFProduct{}, cipherr.Domainf("Multiplier must be one of %s.", strings.Join(GFMultipliers, ", "))
	}
	a, _ := numeric.DecodeHex(value)
	b, _ := numeric.DecodeHex(multiplier)
	p := numeric.GFMul(a[0], b[0])
	return GFProduct{
		Value:      value,
		Multiplier: multiplier,
		Result:     numeric.EncodeHex([]byte{p}),
		Binary:     fmt.Sprintf("%08b", p),
	}, nil
}

// ModPow computes base^exp mod m by square-and-multiply.
func ModPow(base, exp, m int) (int, error) {
	return numeric.ModPow(base, exp, m)
}

// DefaultModulus is the modulus of the classical ciphers.
const DefaultModulus = 26

// ModInverse computes a⁻¹ mod m with the extended Euclidean algorithm. A zero m means 26.
func ModInverse(a, m int) (int, error) {
	if m == 0 {
		m = DefaultModulus
	}
	return numeric.ExtendedInverse(a, m)
}
