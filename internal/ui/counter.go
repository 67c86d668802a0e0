package ui

import "math"

// CounterSpeed is the fixed divisor of the counter animation: every
// tick advances by target/CounterSpeed, rounded up.
const CounterSpeed = 200

// Counter animates one hero stat from zero up to its target.
type Counter struct {
	target int
	value  int
}

// NewCounter creates a counter for the given target. Negative targets
// clamp to zero.
func NewCounter(target int) *Counter {
	if target < 0 {
		target = 0
	}
	return &Counter{target: target}
}

// Value returns the currently displayed number.
func (c *Counter) Value() int { return c.value }

// Target returns the final number.
func (c *Counter) Target() int { return c.target }

// Done reports whether the animation has reached the target.
func (c *Counter) Done() bool { return c.value >= c.target }

// Tick advances the displayed value by one step and returns it. Each
// step adds target/CounterSpeed rounded up, so the value strictly
// increases until it lands exactly on the target; further ticks keep
// returning the target.
func (c *Counter) Tick() int {
	if c.Done() {
		c.value = c.target
		return c.value
	}
	next := int(math.Ceil(float64(c.value) + float64(c.target)/CounterSpeed))
	if next > c.target {
		next = c.target
	}
	c.value = next
	return c.value
}

// Observer arms a counter exactly once. The first visible sighting
// starts the animation; after that the observer stays disengaged and
// re-entering the viewport never restarts it.
type Observer struct {
	fired bool
}

// Observe reports whether this sighting starts the animation.
func (o *Observer) Observe(visible bool) bool {
	if !visible || o.fired {
		return false
	}
	o.fired = true
	return true
}

// Engaged reports whether the observer is still waiting for its first
// sighting.
func (o *Observer) Engaged() bool { return !o.fired }
