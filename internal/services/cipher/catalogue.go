package cipher

// Info describes one algorithm for listings.
type Info struct {
	ID          Algorithm `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Params      []string  `json:"params"`
	Traceable   bool      `json:"traceable"`
}

const (
	CategoryClassical = "classical"
	CategoryBlock     = "block"
)

var catalogue = []Info{
	{Additive, "Additive", "A simple substitution cipher that shifts letters by a fixed number.", CategoryClassical, []string{"key"}, false},
	{Multiplicative, "Multiplicative", "A substitution cipher using multiplication, where the key must be coprime to 26.", CategoryClassical, []string{"key"}, false},
	{Affine, "Affine", "A combination of the additive and multiplicative ciphers.", CategoryClassical, []string{"keyA", "keyB"}, false},
	{Vigenere, "Vigenère", "A polyalphabetic substitution cipher that uses a keyword to shift letters.", CategoryClassical, []string{"key"}, false},
	{Autokey, "Autokey", "Similar to Vigenère, but the key is extended using the plaintext itself.", CategoryClassical, []string{"key"}, false},
	{Playfair, "Playfair", "A digraph substitution cipher that encrypts pairs of letters.", CategoryClassical, []string{"key"}, false},
	{Hill, "Hill Cipher", "A polygraphic substitution cipher based on linear algebra, using an invertible matrix as the key.", CategoryClassical, []string{"matrixSize", "hillMode", "matrix"}, false},
	{ADFGVX, "ADFGVX", "A fractionating transposition cipher used by the German Army in World War I.", CategoryClassical, []string{"square", "transKey"}, false},
	{AES128, "AES-128", "Encrypt/decrypt a 128-bit block using AES.", CategoryBlock, []string{"key"}, true},
	{DES, "DES", "Encrypt/decrypt a 64-bit block using DES.", CategoryBlock, []string{"key"}, true},
}

// Algorithms lists every supported algorithm in display order.
func Algorithms() []Info {
	out := make([]Info, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup finds an algorithm by id.
func Lookup(id Algorithm) (Info, bool) {
	for _, info := range catalogue {
		if info.ID == id {
			return info, true
		}
	}
	return Info{}, false
}
