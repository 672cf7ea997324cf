package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"aethervault/internal/auth"
	"aethervault/internal/des"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCipherCommands(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"additive", []string{"encrypt", "-a", "additive", "-k", "3", "-t", "hello"}, "KHOOR\n"},
		{"affine decrypt", []string{"decrypt", "-a", "affine", "--key-a", "5", "--key-b", "8", "-t", "IHHWVCSWFRCP"}, "affinecipher\n"},
		{"vigenere", []string{"encrypt", "-a", "vigenere", "-k", "LEMON", "-t", "attack at dawn"}, "LXFOPVEFRNHR\n"},
		{"hill", []string{"encrypt", "-a", "hill", "--matrix", "3,3;2,5", "-t", "help"}, "HIAT\n"},
		{"hill book", []string{"encrypt", "-a", "hill", "--matrix", "3,3;2,5", "--hill-mode", "book", "-t", "help me"}, "DPLESE\n"},
		{"des", []string{"encrypt", "-a", "des", "-k", "133457799BBCDFF1", "-t", "0123456789ABCDEF"}, "85E813540F0AB405\n"},
		{"adfgvx", []string{"encrypt", "-a", "adfgvx", "--square", "ph0qg64mea1yl2nofdxkr3cvs5zw7bj9uti8", "--trans-key", "privacy", "-t", "attack at 1200am"},
			"XDFGGDDDXVDFDGXFGGGAGGVDDGAD\nsquare: PH0QG64MEA1YL2NOFDXKR3CVS5ZW7BJ9UTI8\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCipherFailures(t *testing.T) {
	_, err := run(t, "encrypt", "-a", "multiplicative", "-k", "13", "-t", "hello")
	assert.EqualError(t, err, "Key 13 must be coprime to 26.")

	out, err := run(t, "encrypt", "-a", "multiplicative", "-k", "13", "-t", "hello", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"success": false`)

	_, err = run(t, "encrypt", "-t", "hello")
	assert.Error(t, err)

	_, err = run(t, "encrypt", "-a", "vigenere", "--ascii", "-t", "x")
	assert.ErrorContains(t, err, "--ascii")
}

func TestASCIIBlockInput(t *testing.T) {
	want, err := des.Encrypt("4445530000000000", "133457799BBCDFF1")
	require.NoError(t, err)
	out, err := run(t, "encrypt", "-a", "des", "--ascii", "-t", "DES", "-k", "133457799BBCDFF1")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
}

func TestTraceCommand(t *testing.T) {
	out, err := run(t, "trace", "des", "-t", "0123456789ABCDEF", "-k", "133457799BBCDFF1")
	require.NoError(t, err)
	assert.Contains(t, out, `"finalPermutation": "85E813540F0AB405"`)

	out, err = run(t, "trace", "aes", "-d", "-t", "69c4e0d86a7b0430d8cdb78070b4c55a", "-k", "000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	assert.Contains(t, out, `"finalOutput": "00112233445566778899AABBCCDDEEFF"`)

	_, err = run(t, "trace", "rc4")
	assert.Error(t, err)
}

func TestHelperCommands(t *testing.T) {
	out, err := run(t, "gf-mul", "57", "02")
	require.NoError(t, err)
	assert.Equal(t, "57 x 02 = AE (10101110)\n", out)

	out, err = run(t, "mod-inverse", "3")
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)

	_, err = run(t, "mod-inverse", "2", "26")
	assert.EqualError(t, err, "Inverse does not exist because gcd(2, 26) is not 1.")

	out, err = run(t, "mod-pow", "1099511627776", "2", "2305843009213693951")
	require.NoError(t, err)
	assert.Equal(t, "524288\n", out)

	_, err = run(t, "mod-pow", "4", "13", "0")
	assert.EqualError(t, err, "Modulus must be a positive integer.")

	_, err = run(t, "mod-pow", "4", "x", "7")
	assert.EqualError(t, err, "EXP must be an integer")

	out, err = run(t, "hash-password", "s3cret")
	require.NoError(t, err)
	assert.NoError(t, auth.CheckPassword(strings.TrimSpace(out), "s3cret"))
}

func TestVectorCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "des.txt")
	out, err := run(t, "vectors", "generate", "-a", "des", "-m", "MCT", "-n", "2", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	out, err = run(t, "vectors", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"passed": 4`)

	_, err = run(t, "vectors", "generate", "-a", "hill")
	assert.Error(t, err)
}

func TestSelfTestCommand(t *testing.T) {
	out, err := run(t, "selftest")
	require.NoError(t, err)
	assert.NotContains(t, out, `"ok": false`)
}
