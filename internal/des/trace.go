package des

import (
	"strings"

	"aethervault/internal/numeric"
)

// SubkeyStep records one round of the key schedule. Halves are 28-character binary strings.
type SubkeyStep struct {
	Round        int    `json:"round"`
	LeftHalf     string `json:"leftHalf"`
	RightHalf    string `json:"rightHalf"`
	ShiftedLeft  string `json:"shiftedLeft"`
	ShiftedRight string `json:"shiftedRight"`
	Subkey       string `json:"subkey"`
}

// KeySchedule is the PC-1 reduced key and the 16 subkeys in generation order.
type KeySchedule struct {
	PC1Key       string       `json:"pc1Key"`
	PC1KeyBinary string       `json:"pc1KeyBinary"`
	Steps        []SubkeyStep `json:"subkeySteps"`
	Subkeys      []string     `json:"subkeys"`
}

// Round records one Feistel round. NextL and NextR are the halves handed to the next round;
// they are not swapped in round 16.
type Round struct {
	Round          int    `json:"round"`
	L              string `json:"L"`
	R              string `json:"R"`
	Key            string `json:"key"`
	ExpandedR      string `json:"expandedR"`
	XoredWithKey   string `json:"xoredWithKey"`
	SBoxOutput     string `json:"sboxOutput"`
	FResult        string `json:"fResult"`
	XorWithOldLeft string `json:"xorWithOldLeft"`
	NextL          string `json:"nextL"`
	NextR          string `json:"nextR"`
	Swapped        bool   `json:"swapped"`
}

// Breakdown is the complete trace of one DES operation. FinalPermutation is the output block.
type Breakdown struct {
	PC1Key             string       `json:"pc1Key"`
	PC1KeyBinary       string       `json:"pc1KeyBinary"`
	SubkeySteps        []SubkeyStep `json:"subkeySteps"`
	Subkeys            []string     `json:"subkeys"`
	InitialPermutation string       `json:"initialPermutation"`
	Rounds             []Round      `json:"rounds"`
	FinalPermutation   string       `json:"finalPermutation"`
}

func bitsOf(hex string) string {
	b, _ := numeric.HexToBinary(hex)
	return b
}

func hexOf(bits string) string {
	h, _ := numeric.BinaryToHex(bits)
	return h
}

func xorHex(a, b string) string {
	x, _ := numeric.XORHex(a, b)
	return x
}

// permuteText applies table to the binary expansion of hex.
func permuteText(table []uint8, hex string) string {
	bits := bitsOf(hex)
	out := make([]byte, len(table))
	for i, pos := range table {
		out[i] = bits[pos-1]
	}
	return hexOf(string(out))
}

func rotateText(half string, round int) string {
	n := int(shifts[round-1])
	return half[n:] + half[:n]
}

// Schedule derives the key schedule of a 16-hex-digit key.
func Schedule(key string) (KeySchedule, error) {
	if err := validate(strings.Repeat("0", hexLen), key); err != nil {
		return KeySchedule{}, err
	}
	pc1 := permuteText(permutedChoice1[:], key)
	ks := KeySchedule{
		PC1Key:       pc1,
		PC1KeyBinary: bitsOf(pc1),
		Steps:        make([]SubkeyStep, 0, 16),
		Subkeys:      make([]string, 0, 16),
	}
	cd := ks.PC1KeyBinary
	for round := 1; round <= 16; round++ {
		left, right := cd[:28], cd[28:]
		sl, sr := rotateText(left, round), rotateText(right, round)
		cd = sl + sr
		sub := permuteText(permutedChoice2[:], hexOf(cd))
		ks.Steps = append(ks.Steps, SubkeyStep{
			Round:        round,
			LeftHalf:     left,
			RightHalf:    right,
			ShiftedLeft:  sl,
			ShiftedRight: sr,
			Subkey:       sub,
		})
		ks.Subkeys = append(ks.Subkeys, sub)
	}
	return ks, nil
}

func substitute(xored string) string {
	bits := bitsOf(xored)
	var out strings.Builder
	for j := 0; j < 8; j++ {
		chunk := bits[j*6 : j*6+6]
		row := (chunk[0]-'0')<<1 | (chunk[5] - '0')
		var col uint8
		for _, c := range []byte(chunk[1:5]) {
			col = col<<1 | (c - '0')
		}
		out.WriteByte("0123456789ABCDEF"[sBoxes[j][row][col]])
	}
	return out.String()
}

// Trace runs DES over one block and records the key schedule and every round.
func Trace(text, key string, decrypt bool) (*Breakdown, error) {
	if err := validate(text, key); err != nil {
		return nil, err
	}
	ks, err := Schedule(key)
	if err != nil {
		return nil, err
	}

	active := make([]string, 16)
	for i, k := range ks.Subkeys {
		if decrypt {
			active[15-i] = k
		} else {
			active[i] = k
		}
	}

	bd := &Breakdown{
		PC1Key:       ks.PC1Key,
		PC1KeyBinary: ks.PC1KeyBinary,
		SubkeySteps:  ks.Steps,
		Subkeys:      ks.Subkeys,
		Rounds:       make([]Round, 0, 16),
	}
	block := permuteText(initialPermutation[:], text)
	bd.InitialPermutation = block

	for i := 0; i < 16; i++ {
		l, r := block[:8], block[8:]
		expanded := permuteText(expansion[:], r)
		xored := xorHex(expanded, active[i])
		sbox := substitute(xored)
		f := permuteText(pBox[:], sbox)
		mixed := xorHex(l, f)

		rd := Round{
			Round:          i + 1,
			L:              l,
			R:              r,
			Key:            active[i],
			ExpandedR:      expanded,
			XoredWithKey:   xored,
			SBoxOutput:     sbox,
			FResult:        f,
			XorWithOldLeft: mixed,
			NextL:          r,
			NextR:          mixed,
			Swapped:        true,
		}
		if i == 15 {
			rd.NextL, rd.NextR, rd.Swapped = mixed, r, false
		}
		bd.Rounds = append(bd.Rounds, rd)
		block = rd.NextL + rd.NextR
	}

	bd.FinalPermutation = permuteText(finalPermutation[:], block)
	return bd, nil
}
