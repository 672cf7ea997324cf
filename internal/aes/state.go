package aes

import (
	"strings"

	"aethervault/internal/numeric"

	json "github.com/goccy/go-json"
)

func byteHex(b byte) string {
	return numeric.EncodeHex([]byte{b})
}

func rconWord(r byte) string {
	return byteHex(r) + "000000"
}

// State is the 4×4 AES state, indexed [row][column]. Byte i of a block sits at row i%4,
// column i/4.
type State [4][4]byte

// NewState lays a block out column by column.
func NewState(block [16]byte) State {
	var s State
	for i, b := range block {
		s[i%4][i/4] = b
	}
	return s
}

// Bytes reads the state back out column by column.
func (s State) Bytes() [16]byte {
	var out [16]byte
	for i := range out {
		out[i] = s[i%4][i/4]
	}
	return out
}

// Hex renders the state as a 32-digit uppercase block.
func (s State) Hex() string {
	b := s.Bytes()
	return numeric.EncodeHex(b[:])
}

// Cells renders each byte as a 2-digit uppercase hex string, row by row.
func (s State) Cells() [][]string {
	out := make([][]string, 4)
	for r := range s {
		out[r] = make([]string, 4)
		for c := range s[r] {
			out[r][c] = byteHex(s[r][c])
		}
	}
	return out
}

func (s State) String() string {
	rows := make([]string, 4)
	for r, cells := range s.Cells() {
		rows[r] = strings.Join(cells, " ")
	}
	return strings.Join(rows, "\n")
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Cells())
}

func (s State) SubBytes() State {
	for r := range s {
		for c := range s[r] {
			s[r][c] = sBox[s[r][c]]
		}
	}
	return s
}

func (s State) InvSubBytes() State {
	for r := range s {
		for c := range s[r] {
			s[r][c] = invSBox[s[r][c]]
		}
	}
	return s
}

// ShiftRows rotates row r left by r positions.
func (s State) ShiftRows() State {
	var out State
	for r := range s {
		for c := range s[r] {
			out[r][c] = s[r][(c+r)%4]
		}
	}
	return out
}

// InvShiftRows rotates row r right by r positions.
func (s State) InvShiftRows() State {
	var out State
	for r := range s {
		for c := range s[r] {
			out[r][(c+r)%4] = s[r][c]
		}
	}
	return out
}

func (s State) mix(m *[4][4]byte) State {
	var out State
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var v byte
			for k := 0; k < 4; k++ {
				v ^= numeric.GFMul(m[r][k], s[k][c])
			}
			out[r][c] = v
		}
	}
	return out
}

func (s State) MixColumns() State    { return s.mix(&mixMatrix) }
func (s State) InvMixColumns() State { return s.mix(&invMixMatrix) }

// AddRoundKey XORs the state with a round key laid out the same way.
func (s State) AddRoundKey(key [16]byte) State {
	k := NewState(key)
	for r := range s {
		for c := range s[r] {
			s[r][c] ^= k[r][c]
		}
	}
	return s
}
