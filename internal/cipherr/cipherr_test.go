package cipherr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindSentinels(t *testing.T) {
	err := Algebraicf("The determinant of the key matrix (%d) is not coprime with 26.", 4)
	require.EqualError(t, err, "The determinant of the key matrix (4) is not coprime with 26.")
	assert.ErrorIs(t, err, ErrAlgebraic)
	assert.NotErrorIs(t, err, ErrFormat)
	assert.Equal(t, Algebraic, KindOf(err))

	wrapped := fmt.Errorf("hill: %w", err)
	assert.ErrorIs(t, wrapped, ErrAlgebraic)
	assert.Equal(t, Algebraic, KindOf(wrapped))
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("boom")))
	assert.Equal(t, "unknown", Kind(0).String())
	assert.Equal(t, "structural", Structural.String())
}
