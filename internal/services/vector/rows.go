package vector

import "aethervault/internal/models"

// Rows flattens the set for persistence under batchID.
func (v Set) Rows(batchID string) []models.Vector {
	rows := make([]models.Vector, 0, len(v.Encrypt)+len(v.Decrypt))
	for _, r := range v.Encrypt {
		rows = append(rows, models.Vector{
			BatchID:   batchID,
			Algorithm: string(v.Algorithm),
			TestMode:  string(v.TestMode),
			Direction: "ENCRYPT",
			Count:     r.Count,
			KeyHex:    r.KeyHex,
			InputHex:  r.Plaintext,
			OutputHex: r.Ciphertext,
		})
	}
	for _, r := range v.Decrypt {
		rows = append(rows, models.Vector{
			BatchID:   batchID,
			Algorithm: string(v.Algorithm),
			TestMode:  string(v.TestMode),
			Direction: "DECRYPT",
			Count:     r.Count,
			KeyHex:    r.KeyHex,
			InputHex:  r.Ciphertext,
			OutputHex: r.Plaintext,
		})
	}
	return rows
}
