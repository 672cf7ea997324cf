package aes

// EncryptionRound records one encryption round. AfterMixColumns is nil in round 10.
type EncryptionRound struct {
	Round            int    `json:"round"`
	InputState       State  `json:"inputState"`
	AfterSubBytes    State  `json:"afterSubBytes"`
	AfterShiftRows   State  `json:"afterShiftRows"`
	AfterMixColumns  *State `json:"afterMixColumns,omitempty"`
	AfterAddRoundKey State  `json:"afterAddRoundKey"`
	RoundKey         string `json:"roundKey"`
}

// DecryptionRound records one decryption round. AfterInvMixColumns is nil in round 10.
type DecryptionRound struct {
	Round              int    `json:"round"`
	InputState         State  `json:"inputState"`
	AfterInvShiftRows  State  `json:"afterInvShiftRows"`
	AfterInvSubBytes   State  `json:"afterInvSubBytes"`
	AfterAddRoundKey   State  `json:"afterAddRoundKey"`
	AfterInvMixColumns *State `json:"afterInvMixColumns,omitempty"`
	RoundKey           string `json:"roundKey"`
}

// Action names the direction of a traced operation.
type Action string

const (
	ActionEncrypt Action = "encrypt"
	ActionDecrypt Action = "decrypt"
)

// Breakdown is the full trace of one AES-128 operation. Exactly one of Encryption and
// Decryption is set, according to Action.
type Breakdown struct {
	Action       Action            `json:"action"`
	InitialState State             `json:"initialState"`
	WordSteps    []WordStep        `json:"wordSteps"`
	SubKeys      []string          `json:"subKeys"`
	Encryption   []EncryptionRound `json:"encryptionRounds,omitempty"`
	Decryption   []DecryptionRound `json:"decryptionRounds,omitempty"`
	FinalOutput  string            `json:"finalOutput"`
}

// Trace runs AES-128 over one block and records the key expansion and every round.
func Trace(text, key string, decrypt bool) (*Breakdown, error) {
	block, k, err := parse(text, key)
	if err != nil {
		return nil, err
	}
	sch := expand(k)
	bd := &Breakdown{
		Action:       ActionEncrypt,
		InitialState: NewState(block),
		WordSteps:    sch.Steps,
		SubKeys:      sch.RoundKeys,
	}

	if decrypt {
		bd.Action = ActionDecrypt
		s := bd.InitialState.AddRoundKey(sch.RoundKey(10))
		for round := 1; round <= 10; round++ {
			rd := DecryptionRound{Round: round, InputState: s, RoundKey: sch.RoundKeys[10-round]}
			rd.AfterInvShiftRows = s.InvShiftRows()
			rd.AfterInvSubBytes = rd.AfterInvShiftRows.InvSubBytes()
			rd.AfterAddRoundKey = rd.AfterInvSubBytes.AddRoundKey(sch.RoundKey(10 - round))
			s = rd.AfterAddRoundKey
			if round < 10 {
				mixed := s.InvMixColumns()
				rd.AfterInvMixColumns = &mixed
				s = mixed
			}
			bd.Decryption = append(bd.Decryption, rd)
		}
		bd.FinalOutput = s.Hex()
		return bd, nil
	}

	s := bd.InitialState.AddRoundKey(sch.RoundKey(0))
	for round := 1; round <= 10; round++ {
		rd := EncryptionRound{Round: round, InputState: s, RoundKey: sch.RoundKeys[round]}
		rd.AfterSubBytes = s.SubBytes()
		rd.AfterShiftRows = rd.AfterSubBytes.ShiftRows()
		s = rd.AfterShiftRows
		if round < 10 {
			mixed := s.MixColumns()
			rd.AfterMixColumns = &mixed
			s = mixed
		}
		rd.AfterAddRoundKey = s.AddRoundKey(sch.RoundKey(round))
		s = rd.AfterAddRoundKey
		bd.Encryption = append(bd.Encryption, rd)
	}
	bd.FinalOutput = s.Hex()
	return bd, nil
}
