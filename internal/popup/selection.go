package popup

// NoSelection is the selection index before any navigation.
const NoSelection = -1

// Selection tracks the highlighted item of an n-item menu.
type Selection struct {
	index int
	n     int
}

// NewSelection starts with nothing highlighted.
func NewSelection(n int) Selection {
	if n < 0 {
		n = 0
	}
	return Selection{index: NoSelection, n: n}
}

// Index returns the highlighted item or NoSelection.
func (s Selection) Index() int {
	return s.index
}

// Len returns the item count.
func (s Selection) Len() int {
	return s.n
}

// Valid reports whether an item is highlighted.
func (s Selection) Valid() bool {
	return s.index >= 0 && s.index < s.n
}

// Next moves down, wrapping to the first item.
func (s *Selection) Next() bool {
	if s.n == 0 {
		return false
	}
	if s.index < 0 {
		s.index = 0
		return true
	}
	s.index = (s.index + 1) % s.n
	return true
}

// Prev moves up, wrapping to the last item.
func (s *Selection) Prev() bool {
	if s.n == 0 {
		return false
	}
	if s.index < 0 {
		s.index = s.n - 1
		return true
	}
	s.index = (s.index - 1 + s.n) % s.n
	return true
}

// Set highlights item i. Out-of-range values leave the selection unchanged.
func (s *Selection) Set(i int) bool {
	if i < 0 || i >= s.n || i == s.index {
		return false
	}
	s.index = i
	return true
}
