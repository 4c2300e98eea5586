package machine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotorworks/enigma/machine/rotor"
)

// goldenConfig wires rotors I, II, III left to right at offsets c, d, e
// with two plugs and the historical B reflector shifted by 5.
func goldenConfig() Config {
	return Config{
		Plugboard: []string{"ab", "eq"},
		Rotors: []RotorConfig{
			{Wiring: Rotors["I"].Wiring, Notch: Rotors["I"].Notch, Offset: "c"},
			{Wiring: Rotors["II"].Wiring, Notch: Rotors["II"].Notch, Offset: "d"},
			{Wiring: Rotors["III"].Wiring, Notch: Rotors["III"].Notch, Offset: "e"},
		},
		Reflector: ReflectorConfig{Wiring: Reflectors["B"], Offset: 5},
	}
}

func plainConfig() Config {
	return Config{
		Rotors: []RotorConfig{
			{Wiring: Rotors["I"].Wiring, Notch: Rotors["I"].Notch, Offset: "a"},
			{Wiring: Rotors["II"].Wiring, Notch: Rotors["II"].Notch, Offset: "a"},
			{Wiring: Rotors["III"].Wiring, Notch: Rotors["III"].Notch, Offset: "a"},
		},
		Reflector: ReflectorConfig{Wiring: Reflectors["B"]},
	}
}

func TestEncodeTextGolden(t *testing.T) {
	m, err := New(goldenConfig())
	require.NoError(t, err)
	assert.Equal(t, "bxuiz", m.EncodeText("hello"))

	m, err = New(goldenConfig())
	require.NoError(t, err)
	assert.Equal(t, "Bxuiz Ktnsw", m.EncodeText("Hello World"))
}

func TestEncodeTextFromRest(t *testing.T) {
	m, err := New(plainConfig())
	require.NoError(t, err)
	assert.Equal(t, "bdzgo", m.EncodeText("aaaaa"))
}

func TestEncodeTextRoundTrip(t *testing.T) {
	text := "Attack at Dawn! Hold the western bridge; send word by pigeon."

	enc, err := New(goldenConfig())
	require.NoError(t, err)
	ciphertext := enc.EncodeText(text)
	assert.NotEqual(t, text, ciphertext)

	dec, err := New(goldenConfig())
	require.NoError(t, err)
	assert.Equal(t, text, dec.EncodeText(ciphertext))
}

func TestEncodeTextPassesThroughNonLetters(t *testing.T) {
	m, err := New(goldenConfig())
	require.NoError(t, err)

	out := m.EncodeText("a1 b2-c3\n")
	assert.Len(t, out, 9)
	assert.Equal(t, byte('1'), out[1])
	assert.Equal(t, byte('2'), out[4])
	assert.Equal(t, byte('\n'), out[8])
}

func TestNoLetterEncodesToItself(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog again and again"
	m, err := New(goldenConfig())
	require.NoError(t, err)

	out := m.EncodeText(text)
	require.Len(t, out, len(text))
	for i := range text {
		if text[i] == ' ' {
			continue
		}
		assert.NotEqual(t, text[i], out[i], "letter %d maps to itself", i)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	a, err := New(goldenConfig())
	require.NoError(t, err)
	b, err := New(goldenConfig())
	require.NoError(t, err)

	text := strings.Repeat("determinism ", 10)
	assert.Equal(t, a.EncodeText(text), b.EncodeText(text))
}

func TestOffsetsAdvanceWithLetters(t *testing.T) {
	m, err := New(plainConfig())
	require.NoError(t, err)

	m.EncodeText("aaa")
	assert.Equal(t, [rotor.BankSize]int{0, 0, 3}, m.Offsets())

	// Non-letters do not step the rotors.
	m.EncodeText(" ,;\t")
	assert.Equal(t, [rotor.BankSize]int{0, 0, 3}, m.Offsets())
}

func TestReset(t *testing.T) {
	m, err := New(goldenConfig())
	require.NoError(t, err)

	first := m.EncodeText("hello")
	m.Reset()
	assert.Equal(t, first, m.EncodeText("hello"))
}

func TestNewValidation(t *testing.T) {
	mutate := func(f func(*Config)) Config {
		cfg := goldenConfig()
		f(&cfg)
		return cfg
	}

	tests := []struct {
		name string
		cfg  Config
	}{
		{
			name: "too few rotors",
			cfg:  mutate(func(c *Config) { c.Rotors = c.Rotors[:2] }),
		},
		{
			name: "too many rotors",
			cfg:  mutate(func(c *Config) { c.Rotors = append(c.Rotors, c.Rotors[0]) }),
		},
		{
			name: "rotor wiring too short",
			cfg:  mutate(func(c *Config) { c.Rotors[0].Wiring = "abc" }),
		},
		{
			name: "rotor wiring not a bijection",
			cfg:  mutate(func(c *Config) { c.Rotors[1].Wiring = strings.Repeat("a", 26) }),
		},
		{
			name: "rotor notch not a letter",
			cfg:  mutate(func(c *Config) { c.Rotors[0].Notch = "1" }),
		},
		{
			name: "rotor offset two letters",
			cfg:  mutate(func(c *Config) { c.Rotors[2].Offset = "ab" }),
		},
		{
			name: "rotor ring not a letter",
			cfg:  mutate(func(c *Config) { c.Rotors[0].Ring = "?" }),
		},
		{
			name: "plugboard pair too long",
			cfg:  mutate(func(c *Config) { c.Plugboard = []string{"abc"} }),
		},
		{
			name: "plugboard pair degenerate",
			cfg:  mutate(func(c *Config) { c.Plugboard = []string{"aa"} }),
		},
		{
			name: "plugboard pairs overlap",
			cfg:  mutate(func(c *Config) { c.Plugboard = []string{"ab", "bc"} }),
		},
		{
			name: "reflector not involutive",
			cfg:  mutate(func(c *Config) { c.Reflector.Wiring = "rcpdnugiozlmhetwsjxykvfqab" }),
		},
		{
			name: "reflector offset out of range",
			cfg:  mutate(func(c *Config) { c.Reflector.Offset = 26 }),
		},
		{
			name: "reflector offset negative",
			cfg:  mutate(func(c *Config) { c.Reflector.Offset = -1 }),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.cfg)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestConfigClone(t *testing.T) {
	cfg := goldenConfig()
	clone := cfg.Clone()

	clone.Plugboard[0] = "xy"
	clone.Rotors[0].Offset = "z"

	assert.Equal(t, "ab", cfg.Plugboard[0])
	assert.Equal(t, "c", cfg.Rotors[0].Offset)
}

func TestParseWiring(t *testing.T) {
	p, err := ParseWiring(Rotors["I"].Wiring)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Apply(0)) // a -> e

	_, err = ParseWiring("short")
	assert.Error(t, err)

	_, err = ParseWiring("abcdefghijklmnopqrstuvwxy!")
	assert.Error(t, err)
}

func TestParseSymbol(t *testing.T) {
	i, err := ParseSymbol("q")
	require.NoError(t, err)
	assert.Equal(t, 16, i)

	i, err = ParseSymbol("Q")
	require.NoError(t, err)
	assert.Equal(t, 16, i)

	_, err = ParseSymbol("")
	assert.Error(t, err)
	_, err = ParseSymbol("qq")
	assert.Error(t, err)
	_, err = ParseSymbol("!")
	assert.Error(t, err)
}

func TestParsePairs(t *testing.T) {
	pairs, err := ParsePairs([]string{"ab", " EQ "})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}, {4, 16}}, pairs)

	_, err = ParsePairs([]string{"a"})
	assert.Error(t, err)
	_, err = ParsePairs([]string{"a1"})
	assert.Error(t, err)
}

func TestCatalog(t *testing.T) {
	for name, cr := range Rotors {
		_, err := ParseWiring(cr.Wiring)
		assert.NoError(t, err, "rotor %s wiring", name)
		_, err = ParseSymbol(cr.Notch)
		assert.NoError(t, err, "rotor %s notch", name)
	}
	for name, wiring := range Reflectors {
		cfg := plainConfig()
		cfg.Reflector = ReflectorConfig{Wiring: wiring}
		_, err := New(cfg)
		assert.NoError(t, err, "reflector %s", name)
	}
	assert.Equal(t, []string{"I", "II", "III", "IV", "V"}, RotorNames())
}
