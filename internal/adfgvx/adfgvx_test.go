package adfgvx

import (
	"sort"
	"strings"
	"testing"

	"aethervault/internal/cipherr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = "ph0qg64mea1yl2nofdxkr3cvs5zw7bj9uti8"

func TestBuildSquare(t *testing.T) {
	assert.Equal(t, "PH0QG64MEA1YL2NOFDXKR3CVS5ZW7BJ9UTI8", BuildSquare(square))
	assert.Equal(t, "HELOWRD42ABCFGIJKMNPQSTUVXYZ01356789", BuildSquare("hello world 42"))
	assert.Equal(t, alphabet, BuildSquare(""))

	for _, in := range []string{"", "zzzz", "!!??", "9876543210zyxwvutsrqponmlkjihgfedcbaEXTRA"} {
		got := []byte(BuildSquare(in))
		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		want := []byte(alphabet)
		sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
		assert.Equal(t, string(want), string(got), "input %q", in)
	}
}

func TestKeyOrder(t *testing.T) {
	order, err := KeyOrder("PRIVACY")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 2, 0, 1, 3, 6}, order)

	order, err = KeyOrder("b-a-b-a")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 0, 2}, order)

	_, err = KeyOrder("1234")
	require.EqualError(t, err, "Transposition key is required for ADFGVX.")
	assert.ErrorIs(t, err, cipherr.ErrFormat)
}

func TestEncrypt(t *testing.T) {
	res, err := Encrypt("attack at 1200am", square, "privacy", NoPadding)
	require.NoError(t, err)
	assert.Equal(t, "XDFGGDDDXVDFDGXFGGGAGGVDDGAD", res.Output)
	assert.Equal(t, "PH0QG64MEA1YL2NOFDXKR3CVS5ZW7BJ9UTI8", res.FullSquare)

	res, err = Encrypt("hello", "", "cab", NoPadding)
	require.NoError(t, err)
	assert.Equal(t, "DDXAXFDVDF", res.Output)

	res, err = Encrypt("hello", "", "cab", PadX)
	require.NoError(t, err)
	assert.Equal(t, "DDXXAXFXDVDF", res.Output)

	_, err = Encrypt("hello", "", "", NoPadding)
	assert.ErrorIs(t, err, cipherr.ErrFormat)
}

func TestDecrypt(t *testing.T) {
	res, err := Decrypt("XDFGGDDDXVDFDGXFGGGAGGVDDGAD", square, "privacy")
	require.NoError(t, err)
	assert.Equal(t, "ATTACKAT1200AM", res.Output)

	res, err = Decrypt("ddxaxfdvdf", "", "cab")
	require.NoError(t, err)
	assert.Equal(t, "HELLO", res.Output)

	_, err = Decrypt("ADFGVXZ", square, "privacy")
	require.EqualError(t, err, "Decryption text must contain only ADFGVX characters.")
	assert.ErrorIs(t, err, cipherr.ErrStructural)

	res, err = Decrypt("", square, "privacy")
	require.NoError(t, err)
	assert.Equal(t, "", res.Output)
}

func TestRoundTrip(t *testing.T) {
	texts := []string{"a", "attack at dawn", "The 3 quick brown foxes, 42 lazy dogs!", "0123456789", strings.Repeat("xyz", 17)}
	keys := []string{"k", "ab", "ba", "zebra", "cargo", "mississippi", "longtranspositionkey"}
	squares := []string{"", square, "secret42"}
	for _, sq := range squares {
		for _, key := range keys {
			for _, text := range texts {
				enc, err := Encrypt(text, sq, key, NoPadding)
				require.NoError(t, err)
				dec, err := Decrypt(enc.Output, sq, key)
				require.NoError(t, err)
				assert.Equal(t, cleanText(text), dec.Output, "square %q key %q text %q", sq, key, text)
			}
		}
	}
}
