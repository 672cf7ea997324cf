package vector

import (
	"strconv"
	"strings"
)

// ToTXT renders the set in the NIST .rsp layout. ITERATIONS is written only for MCT sets.
func (v Set) ToTXT() string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(string(v.Algorithm))
	b.WriteString(" ")
	b.WriteString(string(v.TestMode))
	b.WriteString("\n\n[ENCRYPT]\n\n")
	for _, r := range v.Encrypt {
		writeHeader(&b, r.Count, r.KeyHex, r.Iterations)
		writeField(&b, "PLAINTEXT", r.Plaintext)
		if r.Ciphertext != "" {
			writeField(&b, "CIPHERTEXT", r.Ciphertext)
		}
		b.WriteString("\n")
	}
	b.WriteString("[DECRYPT]\n\n")
	for _, r := range v.Decrypt {
		writeHeader(&b, r.Count, r.KeyHex, r.Iterations)
		writeField(&b, "CIPHERTEXT", r.Ciphertext)
		if r.Plaintext != "" {
			writeField(&b, "PLAINTEXT", r.Plaintext)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func writeHeader(b *strings.Builder, count int, key string, iterations int) {
	writeField(b, "COUNT", strconv.Itoa(count))
	writeField(b, "KEY", key)
	if iterations > 1 {
		writeField(b, "ITERATIONS", strconv.Itoa(iterations))
	}
}

func writeField(b *strings.Builder, name, value string) {
	b.WriteString(name)
	b.WriteString(" = ")
	b.WriteString(strings.ToLower(value))
	b.WriteString("\n")
}

// Filename is the suggested download name, e.g. "DES_KAT.txt".
func (v Set) Filename() string {
	return string(v.Algorithm) + "_" + string(v.TestMode) + ".txt"
}
