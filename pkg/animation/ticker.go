// Package animation provides the tween and timing primitives that feed
// animated values into widget builds.
//
// A Controller advances a value from 0 to 1 over a duration, optionally
// shaped by an easing curve; a Tween maps that progress onto concrete
// value ranges (floats, offsets, colors, insets). Controllers run on
// Tickers, which the render loop advances once per cycle via
// StepTickers. Nothing here spawns goroutines or timers: a scheduled
// animation is just state that the next cycle samples.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker invokes a callback with its elapsed running time, once per
// render cycle while active.
type Ticker struct {
	callback func(elapsed time.Duration)
	active   bool
	start    time.Time
}

// NewTicker creates an inactive ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{callback: callback}
}

// Start activates the ticker. Starting an active ticker is a no-op.
func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker. Stopping an inactive ticker is a no-op.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// Active reports whether the ticker is currently running.
func (t *Ticker) Active() bool { return t.active }

// Elapsed returns the time since the ticker started, zero when stopped.
func (t *Ticker) Elapsed() time.Duration {
	if !t.active {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances every active ticker against the given timestamp.
// The render loop calls it once per cycle with the cycle's sampled time,
// so all animations within one frame observe the same instant.
func StepTickers(now time.Time) {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Copy before invoking callbacks; a callback may start or stop
	// tickers.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for t := range activeTickers {
		tickers = append(tickers, t)
	}
	tickerMu.Unlock()

	for _, t := range tickers {
		if t.active && t.callback != nil {
			t.callback(now.Sub(t.start))
		}
	}
}

// HasActiveTickers reports whether any ticker is running, letting loop
// embedders keep scheduling frames while animations are in flight.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// CancelAll stops every active ticker. This is the one cancellation
// point of the system: in-progress builds always complete, but scheduled
// animations can be dropped wholesale, for example when tearing a screen
// down.
func CancelAll() {
	tickerMu.Lock()
	tickers := make([]*Ticker, 0, len(activeTickers))
	for t := range activeTickers {
		tickers = append(tickers, t)
	}
	tickerMu.Unlock()
	for _, t := range tickers {
		t.Stop()
	}
}
