package component

// Countdown counts frames down to zero. A disarmed countdown sits at -1.
type Countdown struct {
	Remaining int
}

// NewCountdown returns a disarmed countdown.
func NewCountdown() Countdown {
	return Countdown{Remaining: -1}
}

// Arm restarts the countdown at frames.
func (c *Countdown) Arm(frames int) {
	c.Remaining = frames
}

// Active reports whether frames remain.
func (c *Countdown) Active() bool {
	return c.Remaining > 0
}

// Tick advances one frame and reports whether the countdown expired on this frame.
func (c *Countdown) Tick() bool {
	if c.Remaining <= 0 {
		return false
	}
	c.Remaining--
	return c.Remaining <= 0
}
