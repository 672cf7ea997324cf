package classical

import (
	"strings"
	"testing"

	"aethervault/internal/cipherr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdditive(t *testing.T) {
	out, err := Additive("Hello, World!", 3, false)
	require.NoError(t, err)
	assert.Equal(t, "KHOORZRUOG", out)

	out, err = Additive("KHOOR", 3, true)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, err = Additive("abc", 26, false)
	require.EqualError(t, err, "Key for Additive cipher must be between 0 and 25.")
	assert.ErrorIs(t, err, cipherr.ErrDomain)

	_, err = Additive("abc", -1, true)
	assert.ErrorIs(t, err, cipherr.ErrDomain)
}

func TestAdditiveRoundTrip(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog!"
	want := "thequickbrownfoxjumpsoverthelazydog"
	for k := 0; k <= 25; k++ {
		enc, err := Additive(text, k, false)
		require.NoError(t, err)
		dec, err := Additive(strings.ToLower(enc), k, true)
		require.NoError(t, err)
		assert.Equal(t, want, dec, "key %d", k)
	}
}

func TestMultiplicative(t *testing.T) {
	out, err := Multiplicative("hello", 7, false)
	require.NoError(t, err)
	assert.Equal(t, "XCZZU", out)

	out, err = Multiplicative("XCZZU", 7, true)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, err = Multiplicative("hello", 13, false)
	require.EqualError(t, err, "Key 13 must be coprime to 26.")
	assert.ErrorIs(t, err, cipherr.ErrAlgebraic)

	_, err = Multiplicative("hello", 30, false)
	assert.ErrorIs(t, err, cipherr.ErrDomain)
}

func TestAffine(t *testing.T) {
	out, err := Affine("affine cipher", 5, 8, false)
	require.NoError(t, err)
	assert.Equal(t, "IHHWVCSWFRCP", out)

	out, err = Affine("IHHWVCSWFRCP", 5, 8, true)
	require.NoError(t, err)
	assert.Equal(t, "affinecipher", out)

	_, err = Affine("x", 4, 1, false)
	require.EqualError(t, err, "Key 'a' (4) must be coprime to 26.")
	assert.ErrorIs(t, err, cipherr.ErrAlgebraic)

	_, err = Affine("x", 3, 26, false)
	assert.ErrorIs(t, err, cipherr.ErrDomain)
}

func TestVigenere(t *testing.T) {
	out, err := Vigenere("attack at dawn", "LEMON", false)
	require.NoError(t, err)
	assert.Equal(t, "LXFOPVEFRNHR", out)

	out, err = Vigenere("LXFOPVEFRNHR", "lemon", true)
	require.NoError(t, err)
	assert.Equal(t, "attackatdawn", out)

	out, err = Vigenere("attack at dawn", "", false)
	require.NoError(t, err)
	assert.Equal(t, "ATTACKATDAWN", out)

	_, err = Vigenere("attack", "lem0n", false)
	require.EqualError(t, err, "Key for Vigenere cipher must only contain letters.")
	assert.ErrorIs(t, err, cipherr.ErrFormat)
}

func TestAutokey(t *testing.T) {
	out, err := Autokey("attack at dawn", "QUEENLY", false)
	require.NoError(t, err)
	assert.Equal(t, "QNXEPVYTWTWP", out)

	out, err = Autokey("QNXEPVYTWTWP", "QUEENLY", true)
	require.NoError(t, err)
	assert.Equal(t, "attackatdawn", out)

	// key longer than the text
	enc, err := Autokey("hi", "longkey", false)
	require.NoError(t, err)
	dec, err := Autokey(enc, "longkey", true)
	require.NoError(t, err)
	assert.Equal(t, "hi", dec)

	_, err = Autokey("attack", "two words", false)
	assert.ErrorIs(t, err, cipherr.ErrFormat)
}

func TestPlayfairSquare(t *testing.T) {
	assert.Equal(t, "PLAYFIREXMBCDGHKNOQSTUVWZ", NewPlayfairSquare("playfair example").String())
	assert.Equal(t, "MONARCHYBDEFGIKLPQSTUVWXZ", NewPlayfairSquare("monarchy").String())
	assert.Equal(t, "ABCDEFGHIKLMNOPQRSTUVWXYZ", NewPlayfairSquare("").String())
	assert.Equal(t, "IABCDEFGHKLMNOPQRSTUVWXYZ", NewPlayfairSquare("J").String())
}

func TestPlayfairDigraphs(t *testing.T) {
	assert.Equal(t, "BALXLOON", PlayfairDigraphs("BALLOON"))
	assert.Equal(t, "ABCX", PlayfairDigraphs("ABC"))
	assert.Equal(t, "AXAX", PlayfairDigraphs("AA"))
	assert.Equal(t, "", PlayfairDigraphs(""))
}

func TestPlayfair(t *testing.T) {
	out, err := Playfair("hidethegoldinthetreestump", "playfairexample", false)
	require.NoError(t, err)
	assert.Equal(t, "BMODZBXDNABEKUDMUIXMMOUVIF", out)

	out, err = Playfair(out, "playfairexample", true)
	require.NoError(t, err)
	assert.Equal(t, "hidethegoldinthetrexestump", out)

	out, err = Playfair("balloon", "monarchy", false)
	require.NoError(t, err)
	assert.Equal(t, "IBSUPMNA", out)

	_, err = Playfair("hide the gold", "playfair", false)
	require.EqualError(t, err, "Text for Playfair cipher must only contain letters.")
	assert.ErrorIs(t, err, cipherr.ErrFormat)

	_, err = Playfair("hide", "play fair", false)
	assert.ErrorIs(t, err, cipherr.ErrFormat)
}

func TestMatrixDeterminantAndInverse(t *testing.T) {
	k := Matrix{{3, 3}, {2, 5}}
	d, err := k.Determinant()
	require.NoError(t, err)
	assert.Equal(t, 9, d)

	inv, err := k.Inverse()
	require.NoError(t, err)
	assert.Equal(t, Matrix{{15, 17}, {20, 9}}, inv)

	id, err := k.Mul(inv)
	require.NoError(t, err)
	assert.Equal(t, Matrix{{1, 0}, {0, 1}}, id)

	k3 := Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}
	d, err = k3.Determinant()
	require.NoError(t, err)
	assert.Equal(t, 25, d)
	inv, err = k3.Inverse()
	require.NoError(t, err)
	assert.Equal(t, Matrix{{8, 5, 10}, {21, 8, 21}, {21, 12, 8}}, inv)

	_, err = Matrix{{2, 4}, {6, 8}}.Inverse()
	assert.ErrorIs(t, err, cipherr.ErrAlgebraic)

	_, err = Matrix{{1, 2}}.Determinant()
	assert.ErrorIs(t, err, cipherr.ErrStructural)
}

func TestHill(t *testing.T) {
	k := Matrix{{3, 3}, {2, 5}}

	out, err := Hill("help", k, HillStandard, false)
	require.NoError(t, err)
	assert.Equal(t, "HIAT", out)

	out, err = Hill("HIAT", k, HillStandard, true)
	require.NoError(t, err)
	assert.Equal(t, "help", out)

	out, err = Hill("help me!", k, HillStandard, false)
	require.NoError(t, err)
	assert.Equal(t, "HIATWS", out)

	out, err = Hill("help me", k, HillBook, false)
	require.NoError(t, err)
	assert.Equal(t, "DPLESE", out)

	k3 := Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}
	out, err = Hill("act", k3, HillStandard, false)
	require.NoError(t, err)
	assert.Equal(t, "POH", out)

	out, err = Hill("act", k3, HillBook, false)
	require.NoError(t, err)
	assert.Equal(t, "QRT", out)

	out, err = Hill("", k, HillStandard, false)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestHillRoundTrip(t *testing.T) {
	keys := []Matrix{
		{{3, 3}, {2, 5}},
		{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}},
		{{1, 2, 3, 4}, {0, 1, 2, 3}, {0, 0, 1, 2}, {0, 0, 0, 1}},
		{{1, 2, 3, 4, 5}, {0, 1, 2, 3, 4}, {0, 0, 1, 2, 3}, {0, 0, 0, 1, 2}, {0, 0, 0, 0, 1}},
	}
	for _, mode := range []HillMode{HillStandard, HillBook} {
		pad := "x"
		if mode == HillBook {
			pad = "z"
		}
		for _, k := range keys {
			text := "the quick brown fox"
			want := "thequickbrownfox"
			for len(want)%len(k) != 0 {
				want += pad
			}
			enc, err := Hill(text, k, mode, false)
			require.NoError(t, err)
			dec, err := Hill(enc, k, mode, true)
			require.NoError(t, err)
			assert.Equal(t, want, dec, "mode %s size %d", mode, len(k))
		}
	}

	enc, err := Hill("the quick brown fox", keys[3], HillStandard, false)
	require.NoError(t, err)
	assert.Equal(t, "BNSEUBPLJRFPNHOHWIRX", enc)
}

func TestHillErrors(t *testing.T) {
	_, err := Hill("help", Matrix{{2, 4}, {6, 8}}, HillStandard, false)
	require.EqualError(t, err, "The determinant of the key matrix (18) is not coprime with 26. The matrix is not invertible.")
	assert.ErrorIs(t, err, cipherr.ErrAlgebraic)

	_, err = Hill("HIA", Matrix{{3, 3}, {2, 5}}, HillStandard, true)
	require.EqualError(t, err, "Ciphertext length must be a multiple of the matrix size.")
	assert.ErrorIs(t, err, cipherr.ErrStructural)

	_, err = Hill("help", Matrix{{3, 3}, {2, 26}}, HillStandard, false)
	require.EqualError(t, err, "Matrix element at [2,2] must be between 0 and 25.")
	assert.ErrorIs(t, err, cipherr.ErrDomain)

	_, err = Hill("help", Matrix{{3, 3}, {2}}, HillStandard, false)
	assert.ErrorIs(t, err, cipherr.ErrStructural)

	_, err = Hill("help", Matrix{{3, 3}, {2, 5}}, HillMode("diagonal"), false)
	assert.ErrorIs(t, err, cipherr.ErrUnsupported)
}
