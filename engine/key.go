package engine

import "unicode"

// KeyKind classifies keystrokes understood by the match engine
type KeyKind int

const (
	KeyChar KeyKind = iota
	KeyBackspace
	KeyEscape
	KeyEnter
)

// Key is a presentation-independent keystroke
type Key struct {
	Kind KeyKind
	Rune rune // Set for KeyChar only
}

// CharKey builds a character keystroke
func CharKey(r rune) Key {
	return Key{Kind: KeyChar, Rune: r}
}

// Normalized returns the lower-cased rune and whether it is in [a-z0-9]
func (k Key) Normalized() (byte, bool) {
	if k.Kind != KeyChar {
		return 0, false
	}
	r := unicode.ToLower(k.Rune)
	if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
		return byte(r), true
	}
	return 0, false
}
