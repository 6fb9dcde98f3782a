package menu

import (
	"github.com/atomicstack/mouse-menu/internal/logging/events"
	"github.com/kballard/go-shellquote"
)

const varPrefix = "mouse-menu-"

// Store is the configuration variable store command tables are read from.
type Store interface {
	Get(name string) (string, bool)
	Set(name, value string)
}

var defaultTables = map[Kind]string{
	KindWord:      "Paste paste-yank-buffer",
	KindSelection: "Copy yank-selection Delete delete-back",
	KindEmpty:     "'Frame New' frame-new 'Frame Delete' frame-delete 'Frame Next' frame-next Quit quit",
}

// DefaultTable returns the built-in table string for kind.
func DefaultTable(kind Kind) string {
	return defaultTables[kind]
}

// InstallDefaults sets every table variable that is not yet present.
func InstallDefaults(store Store) {
	if store == nil {
		return
	}
	for _, kind := range Kinds() {
		if _, ok := store.Get(kind.Var()); ok {
			continue
		}
		store.Set(kind.Var(), defaultTables[kind])
	}
}

// Split tokenises a table or command string using shell quoting rules.
func Split(name, value string) ([]string, error) {
	tokens, err := shellquote.Split(value)
	if err != nil {
		return nil, &ConfigSyntaxError{Var: name, Err: err}
	}
	return tokens, nil
}

// Resolve pairs up alternating label/command tokens.
func Resolve(name string, tokens []string) ([]Item, error) {
	if len(tokens)%2 != 0 {
		return nil, &ConfigShapeError{Var: name, Tokens: len(tokens)}
	}
	items := make([]Item, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		items = append(items, Item{Label: tokens[i], Command: tokens[i+1]})
	}
	return items, nil
}

// Source resolves command tables from a Store on every request, so edits to
// the store are visible without rebuilding the source.
type Source struct {
	store Store
}

// NewSource wraps store.
func NewSource(store Store) *Source {
	return &Source{store: store}
}

// Table returns the raw token list for kind. Absent variables fall back to the
// built-in default.
func (s *Source) Table(kind Kind) ([]string, error) {
	name := kind.Var()
	value, ok := "", false
	if s != nil && s.store != nil {
		value, ok = s.store.Get(name)
	}
	if !ok {
		value = defaultTables[kind]
	}
	return Split(name, value)
}

// Items resolves the menu entries for kind. On any error the returned slice is
// empty.
func (s *Source) Items(kind Kind) ([]Item, error) {
	tokens, err := s.Table(kind)
	if err != nil {
		events.Menu.ConfigError(kind.String(), err)
		return nil, err
	}
	items, err := Resolve(kind.Var(), tokens)
	if err != nil {
		events.Menu.ConfigError(kind.String(), err)
		return nil, err
	}
	events.Menu.Resolve(kind.String(), len(items))
	return items, nil
}

// Command returns the command string stored for the item at index, reading
// the table afresh.
func (s *Source) Command(kind Kind, index int) (string, error) {
	tokens, err := s.Table(kind)
	if err != nil {
		return "", err
	}
	if len(tokens)%2 != 0 {
		return "", &ConfigShapeError{Var: kind.Var(), Tokens: len(tokens)}
	}
	pos := 2*index + 1
	if index < 0 || pos >= len(tokens) {
		return "", &IndexOutOfRangeError{Var: kind.Var(), Index: index, Items: len(tokens) / 2}
	}
	return tokens[pos], nil
}
