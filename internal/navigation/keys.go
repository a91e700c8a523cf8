package navigation

// Key is a key as the output runtime reports it.
type Key struct {
	Name string
	Code int
}

// Runtime codes of the non-printing keys.
var (
	KeyLeft  = Key{"left", 1}
	KeyRight = Key{"right", 2}
	KeyEnter = Key{"enter", 13}
	KeyUp    = Key{"up", 14}
	KeyDown  = Key{"down", 15}
)

func char(c rune) Key {
	return Key{Name: string(c), Code: int(c)}
}

// Binding maps a key to a move by Delta, or to opening the current photo.
type Binding struct {
	Key   Key
	Delta int
	Open  bool
}

// Bindings covers the cursor keys plus Emacs and vi style letters. Vertical
// moves step by a full grid row.
func Bindings(cols int) []Binding {
	return []Binding{
		{Key: char(' '), Delta: 1},

		{Key: char('f'), Delta: 1},
		{Key: char('b'), Delta: -1},
		{Key: char('n'), Delta: cols},
		{Key: char('p'), Delta: -cols},

		{Key: KeyRight, Delta: 1},
		{Key: KeyLeft, Delta: -1},
		{Key: KeyDown, Delta: cols},
		{Key: KeyUp, Delta: -cols},

		{Key: char('l'), Delta: 1},
		{Key: char('h'), Delta: -1},
		{Key: char('j'), Delta: cols},
		{Key: char('k'), Delta: -cols},

		{Key: char('o'), Open: true},
		{Key: KeyEnter, Open: true},
	}
}
