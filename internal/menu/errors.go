package menu

import "fmt"

// ConfigShapeError reports a command table with an unpaired label.
type ConfigShapeError struct {
	Var    string
	Tokens int
}

func (e *ConfigShapeError) Error() string {
	return fmt.Sprintf("%s: too few arguments (%d tokens, expected label/command pairs)", e.Var, e.Tokens)
}

// ConfigSyntaxError reports a table string that could not be tokenised.
type ConfigSyntaxError struct {
	Var string
	Err error
}

func (e *ConfigSyntaxError) Error() string {
	return fmt.Sprintf("%s: %v", e.Var, e.Err)
}

func (e *ConfigSyntaxError) Unwrap() error {
	return e.Err
}

// IndexOutOfRangeError reports a selection that no longer exists in the table,
// typically because the configuration changed while the popup was open.
type IndexOutOfRangeError struct {
	Var   string
	Index int
	Items int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: selection %d out of range (%d items)", e.Var, e.Index, e.Items)
}
