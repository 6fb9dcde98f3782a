package popup

// Content exposes the buffer shown in a viewport. Lines are 1-based.
type Content interface {
	LineCount() int
	VisualWidth(line int) int
}

// Viewport is a snapshot of the host frame the popup was triggered in. All
// coordinates are screen cells.
type Viewport struct {
	Top       int
	Left      int
	Width     int
	Height    int
	ScrollRow int
	ScrollCol int
	Gutter    int
	Selection bool
	CursorRow int
	CursorCol int
	Content   Content
}

// Style selects how a popup row is presented.
type Style int

const (
	StyleNormal Style = iota
	StyleHighlight
)

func (s Style) String() string {
	if s == StyleHighlight {
		return "highlight"
	}
	return "normal"
}

// Handle references a single line issued to the host renderer.
type Handle int

// Drawer is the host's direct-draw primitive.
type Drawer interface {
	Issue(row, col int, style Style, text string) Handle
	MarkDirty(Handle)
	Release(Handle)
}

// Executor runs a tokenised command on the host.
type Executor interface {
	Execute(tokens []string) error
}

// Reporter surfaces recoverable errors to the user.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a plain function to Reporter.
type ReporterFunc func(error)

func (f ReporterFunc) Report(err error) {
	if f != nil {
		f(err)
	}
}
