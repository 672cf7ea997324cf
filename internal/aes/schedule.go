package aes

import (
	"encoding/binary"

	"aethervault/internal/numeric"
)

// WordStep records how key word Index was derived. The rotation fields are only set for
// words whose index is a multiple of four.
type WordStep struct {
	Index       int    `json:"index"`
	PrevWord    string `json:"prevWord"`
	WordMinus4  string `json:"wordMinus4"`
	Rotated     string `json:"rotated,omitempty"`
	Substituted string `json:"substituted,omitempty"`
	Rcon        string `json:"rcon,omitempty"`
	XorWithRcon string `json:"xorWithRcon,omitempty"`
	Result      string `json:"result"`
	Special     bool   `json:"isSpecial"`
}

// Schedule is the expanded AES-128 key: 44 words and the 11 round keys built from them.
type Schedule struct {
	Words     []string   `json:"words"`
	Steps     []WordStep `json:"wordSteps"`
	RoundKeys []string   `json:"subKeys"`

	keys [11][16]byte
}

func wordHex(w uint32) string {
	return numeric.EncodeHex(binary.BigEndian.AppendUint32(nil, w))
}

func subWord(w uint32) uint32 {
	return uint32(sBox[w>>24])<<24 | uint32(sBox[w>>16&0xFF])<<16 | uint32(sBox[w>>8&0xFF])<<8 | uint32(sBox[w&0xFF])
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

func expand(key [16]byte) Schedule {
	var w [44]uint32
	for i := 0; i < 4; i++ {
		w[i] = binary.BigEndian.Uint32(key[4*i:])
	}
	sch := Schedule{
		Words:     make([]string, 0, 44),
		Steps:     make([]WordStep, 0, 40),
		RoundKeys: make([]string, 0, 11),
	}
	for i := 4; i < 44; i++ {
		step := WordStep{Index: i, PrevWord: wordHex(w[i-1]), WordMinus4: wordHex(w[i-4])}
		if i%4 == 0 {
			rot := rotWord(w[i-1])
			sub := subWord(rot)
			rc := uint32(rcon[i/4-1]) << 24
			w[i] = sub ^ rc ^ w[i-4]
			step.Special = true
			step.Rotated = wordHex(rot)
			step.Substituted = wordHex(sub)
			step.Rcon = wordHex(rc)
			step.XorWithRcon = wordHex(sub ^ rc)
		} else {
			w[i] = w[i-1] ^ w[i-4]
		}
		step.Result = wordHex(w[i])
		sch.Steps = append(sch.Steps, step)
	}
	for i := range w {
		sch.Words = append(sch.Words, wordHex(w[i]))
	}
	for k := 0; k < 11; k++ {
		for j := 0; j < 4; j++ {
			binary.BigEndian.PutUint32(sch.keys[k][4*j:], w[4*k+j])
		}
		sch.RoundKeys = append(sch.RoundKeys, sch.Words[4*k]+sch.Words[4*k+1]+sch.Words[4*k+2]+sch.Words[4*k+3])
	}
	return sch
}

// ExpandKey expands a 32-hex-digit key.
func ExpandKey(key string) (Schedule, error) {
	k, err := parseKey(key)
	if err != nil {
		return Schedule{}, err
	}
	return expand(k), nil
}

// NewSchedule expands raw key bytes.
func NewSchedule(key [16]byte) Schedule { return expand(key) }

// RoundKey returns round key n (0-10) as bytes.
func (s Schedule) RoundKey(n int) [16]byte {
	return s.keys[n]
}
