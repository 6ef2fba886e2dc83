package reservation

import "fmt"

// countdown tracks the hold-expiry countdown for one session. It is advanced
// only by Session.Tick, under the session mutex, so it needs no locking of
// its own.
type countdown struct {
	total            int
	remaining        int
	warningThreshold int
	running          bool
}

func newCountdown(total, warningThreshold int) *countdown {
	return &countdown{
		total:            total,
		remaining:        total,
		warningThreshold: warningThreshold,
	}
}

func (c *countdown) start() {
	c.remaining = c.total
	c.running = true
}

func (c *countdown) stop() {
	c.running = false
}

// tick decrements the remaining time by one second and reports whether the
// countdown just reached zero. Stopped or already-expired countdowns are
// never ticked past zero.
func (c *countdown) tick() (expired bool) {
	if !c.running || c.remaining <= 0 {
		return false
	}

	c.remaining--
	if c.remaining == 0 {
		c.running = false
		return true
	}

	return false
}

func (c *countdown) warning() bool {
	return c.running && c.remaining <= c.warningThreshold
}

// display renders the remaining time in the minutes:seconds form the
// presentation layer shows verbatim.
func (c *countdown) display() string {
	return fmt.Sprintf("%d:%02d", c.remaining/60, c.remaining%60)
}
