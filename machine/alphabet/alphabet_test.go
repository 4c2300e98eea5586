package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want int
		ok   bool
	}{
		{name: "lowercase a", r: 'a', want: 0, ok: true},
		{name: "lowercase z", r: 'z', want: 25, ok: true},
		{name: "uppercase folds", r: 'M', want: 12, ok: true},
		{name: "digit rejected", r: '7', ok: false},
		{name: "space rejected", r: ' ', ok: false},
		{name: "non-ascii letter rejected", r: 'é', ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Index(tt.r)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLowerUpperRoundTrip(t *testing.T) {
	for i := 0; i < Size; i++ {
		lo, ok := Index(Lower(i))
		assert.True(t, ok)
		assert.Equal(t, i, lo)

		up, ok := Index(Upper(i))
		assert.True(t, ok)
		assert.Equal(t, i, up)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(0))
	assert.True(t, Valid(Size-1))
	assert.False(t, Valid(-1))
	assert.False(t, Valid(Size))
}
