package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/mouse-menu/internal/logging/events"
	"github.com/atomicstack/mouse-menu/internal/menu"
)

// Tables maps each menu kind to the table string read from the file. Kinds
// missing from the file are absent.
type Tables map[menu.Kind]string

type tablesFile struct {
	Menu map[string]string `toml:"menu"`
}

// UnknownTableError reports a key under [menu] that names no context.
type UnknownTableError struct {
	Path string
	Key  string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("%s: unknown menu table %q (want one of %s)", e.Path, e.Key, strings.Join(kindNames(), ", "))
}

// LoadTables reads the [menu] section of the TOML file at path. A missing
// file or empty path yields no tables.
func LoadTables(path string) (Tables, error) {
	tables := Tables{}
	if strings.TrimSpace(path) == "" {
		return tables, nil
	}
	var file tablesFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			events.Config.Load(path, 0)
			return tables, nil
		}
		return nil, fmt.Errorf("load menu tables: %w", err)
	}
	for key, value := range file.Menu {
		kind, ok := menu.KindFromName(key)
		if !ok {
			return nil, &UnknownTableError{Path: path, Key: key}
		}
		tables[kind] = value
	}
	events.Config.Load(path, len(tables))
	return tables, nil
}

// Apply writes every table variable into store. Kinds missing from t are
// reset to the built-in default so removing a key from the file restores it.
func (t Tables) Apply(store menu.Store) {
	if store == nil {
		return
	}
	for _, kind := range menu.Kinds() {
		value, ok := t[kind]
		if !ok {
			value = menu.DefaultTable(kind)
		}
		store.Set(kind.Var(), value)
	}
}

// Changed lists the variable names whose value differs between store and t.
func (t Tables) Changed(store menu.Store) []string {
	var changed []string
	for _, kind := range menu.Kinds() {
		want, ok := t[kind]
		if !ok {
			want = menu.DefaultTable(kind)
		}
		if store == nil {
			changed = append(changed, kind.Var())
			continue
		}
		if got, present := store.Get(kind.Var()); !present || got != want {
			changed = append(changed, kind.Var())
		}
	}
	sort.Strings(changed)
	return changed
}

func kindNames() []string {
	names := make([]string, 0, len(menu.Kinds()))
	for _, kind := range menu.Kinds() {
		names = append(names, kind.String())
	}
	return names
}
