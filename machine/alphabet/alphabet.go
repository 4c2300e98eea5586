// Package alphabet defines the 26-symbol letter alphabet the machine
// operates on.  Every other package works in index space [0, Size) and
// uses this package to move between runes and indices.
package alphabet

// Size is the number of symbols in the alphabet.
const Size = 26

// Index returns the alphabet index of r.  Letters are case-insensitive;
// the second return value is false for anything that is not an ASCII
// letter.
func Index(r rune) (int, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), true
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true
	default:
		return 0, false
	}
}

// Lower returns the lowercase letter for index i.
func Lower(i int) rune {
	return rune('a' + i)
}

// Upper returns the uppercase letter for index i.
func Upper(i int) rune {
	return rune('A' + i)
}

// Valid reports whether i is a valid alphabet index.
func Valid(i int) bool {
	return i >= 0 && i < Size
}
