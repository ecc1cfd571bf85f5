package services

import (
	"sync"
	"time"
)

// Countdown counts whole seconds down to zero in a background goroutine.
//
// onExpire is called once from that goroutine when zero is reached.
// Stop may be called any number of times; after Stop no callback runs.
type Countdown struct {
	ticker   *time.Ticker
	stopChan chan struct{}
	stopOnce sync.Once
	onExpire func()

	mu        sync.Mutex
	remaining int
}

// NewCountdown creates a countdown of the given number of ticks.
// tick is the length of one second and is shortened in tests.
func NewCountdown(seconds int, tick time.Duration, onExpire func()) *Countdown {
	return &Countdown{
		ticker:    time.NewTicker(tick),
		stopChan:  make(chan struct{}),
		onExpire:  onExpire,
		remaining: seconds,
	}
}

// Start starts the countdown
func (c *Countdown) Start() {
	go c.run()
}

// Stop stops the countdown without calling onExpire
func (c *Countdown) Stop() {
	c.stopOnce.Do(func() {
		c.ticker.Stop()
		close(c.stopChan)
	})
}

// Remaining returns the number of seconds left
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// run executes the countdown loop
func (c *Countdown) run() {
	for {
		select {
		case <-c.ticker.C:
			if c.decrement() > 0 {
				continue
			}
			c.ticker.Stop()
			select {
			case <-c.stopChan:
			default:
				c.onExpire()
			}
			return
		case <-c.stopChan:
			return
		}
	}
}

func (c *Countdown) decrement() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining
}
