package ui

// Scroll thresholds, in pixels. Both comparisons are strict: at the
// threshold itself the state is still off.
const (
	// NavbarThreshold is where the navigation bar takes its condensed
	// "scrolled" look.
	NavbarThreshold = 50

	// BackToTopThreshold is where the back-to-top control appears:
	// visible above 500, hidden at or below.
	BackToTopThreshold = 500

	// ScrollProbe is added to the raw scroll offset before matching
	// section bands, so the section under the fixed navbar counts as
	// current rather than the one scrolled just past.
	ScrollProbe = 100
)

// NavbarScrolled reports whether the navbar shows its scrolled state.
func NavbarScrolled(offset int) bool { return offset > NavbarThreshold }

// BackToTopVisible reports whether the back-to-top control is shown.
func BackToTopVisible(offset int) bool { return offset > BackToTopThreshold }

// ProbeOffset converts a raw scroll offset into the probed offset used
// for section-band matching.
func ProbeOffset(scrollY int) int { return scrollY + ScrollProbe }
