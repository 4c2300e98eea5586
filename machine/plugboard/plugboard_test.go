package plugboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotorworks/enigma/machine/alphabet"
	"github.com/rotorworks/enigma/machine/permutation"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		pairs   [][2]int
		wantErr bool
	}{
		{name: "empty board"},
		{name: "two pairs", pairs: [][2]int{{0, 1}, {4, 16}}},
		{name: "overlapping pairs", pairs: [][2]int{{0, 1}, {1, 2}}, wantErr: true},
		{name: "degenerate pair", pairs: [][2]int{{3, 3}}, wantErr: true},
		{name: "out of range", pairs: [][2]int{{0, 26}}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.pairs)
			if tt.wantErr {
				assert.ErrorIs(t, err, permutation.ErrInvalidPermutation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApply(t *testing.T) {
	p, err := New([][2]int{{0, 1}, {4, 16}})
	require.NoError(t, err)

	assert.Equal(t, 1, p.Apply(0))
	assert.Equal(t, 0, p.Apply(1))
	assert.Equal(t, 16, p.Apply(4))
	assert.Equal(t, 4, p.Apply(16))

	// Unplugged letters map to themselves.
	assert.Equal(t, 2, p.Apply(2))
	assert.Equal(t, 25, p.Apply(25))
}

func TestApplyIsInvolution(t *testing.T) {
	p, err := New([][2]int{{0, 1}, {4, 16}, {7, 19}})
	require.NoError(t, err)

	for x := 0; x < alphabet.Size; x++ {
		assert.Equal(t, x, p.Apply(p.Apply(x)))
	}
}

func TestFromPermutation(t *testing.T) {
	swaps, err := permutation.FromSwaps(alphabet.Size, [][2]int{{2, 9}})
	require.NoError(t, err)
	_, err = FromPermutation(swaps)
	assert.NoError(t, err)

	// A three-cycle is a permutation but not a plugboard.
	cycle := permutation.NewBuilder(alphabet.Size).Swap(0, 1).Swap(1, 2).Build()
	_, err = FromPermutation(cycle)
	assert.ErrorIs(t, err, permutation.ErrInvalidPermutation)

	_, err = FromPermutation(permutation.Identity(10))
	assert.ErrorIs(t, err, permutation.ErrInvalidPermutation)
}
