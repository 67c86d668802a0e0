package ui

import "sort"

// MenuState is the mobile navigation drawer state.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (m MenuState) String() string {
	if m == MenuOpen {
		return "open"
	}
	return "closed"
}

// Toggle flips the drawer.
func (m MenuState) Toggle() MenuState {
	if m == MenuClosed {
		return MenuOpen
	}
	return MenuClosed
}

// Navigate is the transition taken when any navigation link is
// activated: the drawer always ends closed.
func (m MenuState) Navigate() MenuState { return MenuClosed }

// Band is the vertical extent of one page section. An offset falls in
// the band when it lies in the half-open interval [Top, Top+Height).
type Band struct {
	ID     string
	Top    int
	Height int
}

func (b Band) contains(offset int) bool {
	return offset >= b.Top && offset < b.Top+b.Height
}

// ActiveSection returns the id of the band containing the probed scroll
// offset. With disjoint bands at most one matches; should bands overlap,
// the last match wins.
func ActiveSection(offset int, bands []Band) (string, bool) {
	id, ok := "", false
	for _, b := range bands {
		if b.contains(offset) {
			id, ok = b.ID, true
		}
	}
	return id, ok
}

// Disjoint reports whether no two bands overlap, the condition under
// which exactly one navigation link is active for any in-band offset.
func Disjoint(bands []Band) bool {
	sorted := make([]Band, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Top < sorted[j].Top })
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Top+sorted[i-1].Height > sorted[i].Top {
			return false
		}
	}
	return true
}
