package game

// Clock counts down the session in whole time units.
type Clock struct {
	remaining int
}

// NewClock creates a clock with the given number of units left.
func NewClock(units int) *Clock {
	c := &Clock{}
	c.Reset(units)
	return c
}

// Reset sets the remaining units. Negative values become zero.
func (c *Clock) Reset(units int) {
	if units < 0 {
		units = 0
	}
	c.remaining = units
}

// Remaining returns the units left. Never negative.
func (c *Clock) Remaining() int {
	return c.remaining
}

// Tick consumes one unit and reports whether the clock has run out.
// A clock already at zero stays there and keeps reporting expiry.
func (c *Clock) Tick() bool {
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining == 0
}
