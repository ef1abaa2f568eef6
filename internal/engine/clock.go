package engine

import (
	"fmt"
	"time"
)

type ClockState int

const (
	ClockStopped ClockState = iota
	ClockRunning
	ClockPaused
)

func (s ClockState) String() string {
	switch s {
	case ClockStopped:
		return "stopped"
	case ClockRunning:
		return "running"
	case ClockPaused:
		return "paused"
	}
	return fmt.Sprintf("ClockState(%d)", int(s))
}

// Clock is a whole-second countdown. It does not own a goroutine: the
// driver calls Tick once per second, or Advance with elapsed frame time.
// Ticks delivered while the clock is not running are dropped, so nothing
// reaches the listeners after Stop returns.
type Clock struct {
	state     ClockState
	remaining int
	pending   time.Duration

	onTick   func(remaining int)
	onExpire func()
}

// NewClock creates a stopped clock. onTick receives every new remaining
// value; onExpire runs once when the countdown reaches zero, after the
// clock has stopped. Either may be nil.
func NewClock(onTick func(remaining int), onExpire func()) *Clock {
	return &Clock{onTick: onTick, onExpire: onExpire}
}

func (c *Clock) Start(seconds int) error {
	if c.state != ClockStopped {
		return fmt.Errorf("start %ds clock: %w", seconds, ErrAlreadyRunning)
	}
	c.state = ClockRunning
	c.remaining = seconds
	c.pending = 0
	return nil
}

func (c *Clock) Stop() {
	c.state = ClockStopped
	c.pending = 0
}

func (c *Clock) Pause() {
	if c.state == ClockRunning {
		c.state = ClockPaused
	}
}

func (c *Clock) Resume() {
	if c.state == ClockPaused {
		c.state = ClockRunning
	}
}

// Tick consumes one second. It reports whether the clock expired on this tick.
func (c *Clock) Tick() bool {
	if c.state != ClockRunning {
		return false
	}
	c.remaining--
	expired := c.remaining <= 0
	if expired {
		c.remaining = 0
		c.Stop()
	}
	if c.onTick != nil {
		c.onTick(c.remaining)
	}
	if expired {
		if c.onExpire != nil {
			c.onExpire()
		}
		return true
	}
	return false
}

// Advance adds elapsed time and ticks once per whole second accumulated.
func (c *Clock) Advance(d time.Duration) {
	if c.state != ClockRunning || d <= 0 {
		return
	}
	c.pending += d
	for c.pending >= time.Second && c.state == ClockRunning {
		c.pending -= time.Second
		c.Tick()
	}
}

func (c *Clock) State() ClockState { return c.state }

func (c *Clock) Running() bool { return c.state == ClockRunning }

func (c *Clock) Remaining() int { return c.remaining }
