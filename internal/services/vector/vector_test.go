package vector

import (
	stdaes "crypto/aes"
	stddes "crypto/des"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmthrgd/go-hex"
)

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func TestGenerateKnownAnswers(t *testing.T) {
	cases := []struct {
		alg     Algorithm
		keyBits int
		want    string
	}{
		{DES, 64, "8ca64de9c1b123a7"},
		{AES128, 128, "66e94bd4ef8a2c3b884cfa59ca342b2e"},
	}
	for _, tc := range cases {
		t.Run(string(tc.alg), func(t *testing.T) {
			set, err := Generate(GenParams{Algorithm: tc.alg, TestMode: KAT, Count: 2, IncludeExpected: true}, zeroReader{})
			require.NoError(t, err)
			assert.Equal(t, tc.keyBits, set.KeyBits)
			require.Len(t, set.Encrypt, 2)
			require.Len(t, set.Decrypt, 2)
			assert.Equal(t, tc.want, set.Encrypt[0].Ciphertext)
			assert.Equal(t, tc.want, set.Decrypt[1].Ciphertext)
			assert.Equal(t, set.Encrypt[1].Plaintext, set.Decrypt[1].Plaintext)
			assert.Equal(t, 1, set.Encrypt[0].Iterations)
		})
	}
}

func TestGenerateDefaultsAndErrors(t *testing.T) {
	set, err := Generate(GenParams{Algorithm: DES, TestMode: KAT}, nil)
	require.NoError(t, err)
	assert.Len(t, set.Encrypt, DefaultCount)
	assert.Empty(t, set.Encrypt[0].Ciphertext)
	assert.Empty(t, set.Decrypt[0].Plaintext)

	_, err = Generate(GenParams{Algorithm: "RC4", TestMode: KAT}, nil)
	assert.Error(t, err)
	_, err = Generate(GenParams{Algorithm: DES, TestMode: "MMT"}, nil)
	assert.Error(t, err)
	_, err = Generate(GenParams{Algorithm: DES, TestMode: KAT, Count: MaxCount + 1}, nil)
	assert.Error(t, err)
}

func TestMonteCarloMatchesStdlib(t *testing.T) {
	set, err := Generate(GenParams{Algorithm: DES, TestMode: MCT, Count: 1, IncludeExpected: true}, nil)
	require.NoError(t, err)
	rec := set.Encrypt[0]
	assert.Equal(t, MCTIterations, rec.Iterations)

	key, _ := hex.DecodeString(rec.KeyHex)
	blk, err := stddes.NewCipher(key)
	require.NoError(t, err)
	buf, _ := hex.DecodeString(rec.Plaintext)
	for i := 0; i < MCTIterations; i++ {
		blk.Encrypt(buf, buf)
	}
	assert.Equal(t, hex.EncodeToString(buf), rec.Ciphertext)

	set, err = Generate(GenParams{Algorithm: AES128, TestMode: MCT, Count: 1, IncludeExpected: true}, nil)
	require.NoError(t, err)
	rec = set.Encrypt[0]
	key, _ = hex.DecodeString(rec.KeyHex)
	ablk, err := stdaes.NewCipher(key)
	require.NoError(t, err)
	buf, _ = hex.DecodeString(rec.Plaintext)
	for i := 0; i < MCTIterations; i++ {
		ablk.Encrypt(buf, buf)
	}
	assert.Equal(t, hex.EncodeToString(buf), rec.Ciphertext)
}

func TestTXTRoundTrip(t *testing.T) {
	for _, mode := range []TestMode{KAT, MCT} {
		for _, alg := range []Algorithm{DES, AES128} {
			set, err := Generate(GenParams{Algorithm: alg, TestMode: mode, Count: 3, IncludeExpected: true}, nil)
			require.NoError(t, err)
			txt := set.ToTXT()
			assert.True(t, strings.HasPrefix(txt, "# "+string(alg)+" "+string(mode)))
			assert.Contains(t, txt, "[ENCRYPT]")
			assert.Contains(t, txt, "[DECRYPT]")
			assert.Equal(t, mode == MCT, strings.Contains(txt, "ITERATIONS = 1000"))

			recs, err := ParseFile(strings.NewReader(txt))
			require.NoError(t, err)
			require.Len(t, recs, 6)
			assert.Equal(t, "ENCRYPT", recs[0].Mode)
			assert.Equal(t, "DECRYPT", recs[5].Mode)

			res, err := Validate(recs)
			require.NoError(t, err)
			assert.Equal(t, alg, res.Algorithm)
			assert.Equal(t, 6, res.Total)
			assert.Equal(t, 6, res.Passed, "%s %s", alg, mode)
			assert.Zero(t, res.Failed)
		}
	}
}

func TestValidateReportsMismatch(t *testing.T) {
	file := `[ENCRYPT]

COUNT = 0
KEY = 133457799bbcdff1
PLAINTEXT = 0123456789abcdef
CIPHERTEXT = 85e813540f0ab405

COUNT = 1
KEY = 133457799bbcdff1
PLAINTEXT = 0123456789abcdef
CIPHERTEXT = 0000000000000000

[DECRYPT]

COUNT = 0
KEY = 000102030405060708090a0b0c0d0e0f
CIPHERTEXT = 69c4e0d86a7b0430d8cdb78070b4c55a
PLAINTEXT = 00112233445566778899aabbccddeeff
`
	recs, err := ParseFile(strings.NewReader(file))
	require.NoError(t, err)
	res, err := Validate(recs)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Passed)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, Mismatch{Count: 1, Mode: "ENCRYPT", Expected: "0000000000000000", Got: "85e813540f0ab405"}, res.Failures[0])
}

func TestParseAndValidateErrors(t *testing.T) {
	_, err := ParseFile(strings.NewReader("[ENCRYPT]\nCOUNT = x\n"))
	assert.ErrorContains(t, err, "line 2")

	_, err = ParseFile(strings.NewReader("[ENCRYPT]\nCOUNT = 0\nKEY = zz\n"))
	assert.Error(t, err)

	recs, err := ParseFile(strings.NewReader("[ENCRYPT]\nCOUNT = 0\nKEY = 0011\nPLAINTEXT = 00\nCIPHERTEXT = 00\n"))
	require.NoError(t, err)
	_, err = Validate(recs)
	assert.ErrorContains(t, err, "key length")

	recs, err = ParseFile(strings.NewReader("COUNT = 0\nKEY = 133457799bbcdff1\nPLAINTEXT = 0123456789abcdef\nCIPHERTEXT = 85e813540f0ab405\n"))
	require.NoError(t, err)
	_, err = Validate(recs)
	assert.ErrorContains(t, err, "unknown section")

	recs, err = ParseFile(strings.NewReader("[ENCRYPT]\nCOUNT = 0\nKEY = 133457799bbcdff1\nPLAINTEXT = 0123456789abcdef\n"))
	require.NoError(t, err)
	_, err = Validate(recs)
	assert.ErrorContains(t, err, "block size")
}

func TestRows(t *testing.T) {
	set, err := Generate(GenParams{Algorithm: AES128, TestMode: KAT, Count: 2, IncludeExpected: true}, zeroReader{})
	require.NoError(t, err)
	batch := uuid.NewString()
	rows := set.Rows(batch)
	require.Len(t, rows, 4)
	assert.Equal(t, "ENCRYPT", rows[0].Direction)
	assert.Equal(t, "DECRYPT", rows[3].Direction)
	assert.Equal(t, batch, rows[2].BatchID)
	assert.Equal(t, rows[0].OutputHex, rows[2].InputHex)
	assert.Equal(t, "AES128_KAT.txt", set.Filename())
}

func TestParseNames(t *testing.T) {
	a, err := ParseAlgorithm("aes128")
	require.NoError(t, err)
	assert.Equal(t, AES128, a)
	a, err = ParseAlgorithm("des")
	require.NoError(t, err)
	assert.Equal(t, DES, a)
	_, err = ParseAlgorithm("hill")
	assert.Error(t, err)

	m, err := ParseTestMode("")
	require.NoError(t, err)
	assert.Equal(t, KAT, m)
	m, err = ParseTestMode("mct")
	require.NoError(t, err)
	assert.Equal(t, MCT, m)
	_, err = ParseTestMode("mmt")
	assert.Error(t, err)
}

func TestSelfTest(t *testing.T) {
	vectors, ok := SelfTest()
	require.True(t, ok)
	for _, v := range vectors {
		for _, b := range v.Blocks {
			assert.True(t, b.OK, v.Name)
			assert.Equal(t, b.Ciphertext, b.Computed, v.Name)
		}
	}
}
