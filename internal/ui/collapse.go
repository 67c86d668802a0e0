package ui

// CollapseState is the open/closed state of one module card.
type CollapseState int

const (
	Collapsed CollapseState = iota
	Expanded
)

func (c CollapseState) String() string {
	if c == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Toggle flips the state. Toggling twice returns to the start.
func (c CollapseState) Toggle() CollapseState {
	if c == Collapsed {
		return Expanded
	}
	return Collapsed
}

// IndicatorAngle is the rotation of the card's chevron glyph in
// degrees: 0 collapsed, 180 expanded.
func (c CollapseState) IndicatorAngle() int {
	if c == Expanded {
		return 180
	}
	return 0
}

// ParseCollapseState maps the state keyword used in fragment URLs.
// Anything but "expanded" reads as collapsed, the initial state.
func ParseCollapseState(s string) CollapseState {
	if s == "expanded" {
		return Expanded
	}
	return Collapsed
}

// ModuleStates tracks the collapse state of every module card. A fresh
// page starts fully collapsed; entries toggle independently, with no
// accordion exclusivity.
type ModuleStates struct {
	states []CollapseState
}

// NewModuleStates creates the state set for n module cards.
func NewModuleStates(n int) *ModuleStates {
	if n < 0 {
		n = 0
	}
	return &ModuleStates{states: make([]CollapseState, n)}
}

// Len returns the number of tracked cards.
func (m *ModuleStates) Len() int { return len(m.states) }

// State returns the state of card i; out-of-range indexes read as
// collapsed.
func (m *ModuleStates) State(i int) CollapseState {
	if i < 0 || i >= len(m.states) {
		return Collapsed
	}
	return m.states[i]
}

// Toggle flips card i and returns its new state. Out-of-range indexes
// are ignored.
func (m *ModuleStates) Toggle(i int) (CollapseState, bool) {
	if i < 0 || i >= len(m.states) {
		return Collapsed, false
	}
	m.states[i] = m.states[i].Toggle()
	return m.states[i], true
}
