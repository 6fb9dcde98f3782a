package popup

// Key is a keyboard event relevant to an open popup.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyTab
	KeyShiftTab
	KeyEnter
	KeyEscape
)

// MouseButton identifies the button of a mouse event.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
)

var buttonNames = []string{"none", "left", "middle", "right", "wheel-up", "wheel-down"}

func (b MouseButton) String() string {
	if int(b) >= 0 && int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "unknown"
}

// MouseAction is the kind of mouse event.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseDrag
	MouseMove
)

// Mouse is a mouse event in screen cells.
type Mouse struct {
	Button MouseButton
	Action MouseAction
	Row    int
	Col    int
}

// IsWheel reports whether the event is a scroll.
func (m Mouse) IsWheel() bool {
	return m.Button == ButtonWheelUp || m.Button == ButtonWheelDown
}
