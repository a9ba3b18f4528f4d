package session

// KeyKind classifies an input event.
type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEscape
	KeyAbort
)

// Key is one input event. Text is set for KeyRune and may hold several
// characters when the terminal delivers them together.
type Key struct {
	Kind KeyKind
	Text string
}

func Runes(s string) Key { return Key{Kind: KeyRune, Text: s} }
