package menu

// Item represents a selectable popup entry.
type Item struct {
	Label   string
	Command string
}

// Kind classifies where a popup was triggered.
type Kind int

const (
	KindEmpty Kind = iota
	KindWord
	KindSelection
)

var kindNames = map[Kind]string{
	KindEmpty:     "on-nothing",
	KindWord:      "on-word",
	KindSelection: "on-selection",
}

// Kinds lists every context kind in display order.
func Kinds() []Kind {
	return []Kind{KindWord, KindSelection, KindEmpty}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Var returns the configuration variable holding the command table for k.
func (k Kind) Var() string {
	return varPrefix + k.String()
}

// KindFromName maps a table name such as "on-word" back to its Kind.
func KindFromName(name string) (Kind, bool) {
	for kind, n := range kindNames {
		if n == name {
			return kind, true
		}
	}
	return KindEmpty, false
}

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
