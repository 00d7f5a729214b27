package tracking

import (
	"sync"
	"time"
)

// RegionObserver fires a callback once a content region has stayed at
// or above a visibility threshold for a continuous hold interval. A
// report below the threshold cancels the pending hold, so a quick
// scroll-past never counts. The observer fires at most once.
type RegionObserver struct {
	threshold float64
	hold      time.Duration
	fn        func()

	mu      sync.Mutex
	timer   *time.Timer
	fired   bool
	stopped bool
}

// NewRegionObserver creates an observer with the given threshold in
// [0,1], hold interval and callback. A non-positive hold fires the
// callback synchronously from the qualifying Report.
func NewRegionObserver(threshold float64, hold time.Duration, fn func()) *RegionObserver {
	return &RegionObserver{
		threshold: threshold,
		hold:      hold,
		fn:        fn,
	}
}

// Report feeds the observer the currently visible fraction of the region
func (o *RegionObserver) Report(fraction float64) {
	o.mu.Lock()

	if o.fired || o.stopped {
		o.mu.Unlock()
		return
	}

	if fraction < o.threshold {
		// Dropped below threshold: the hold must restart
		if o.timer != nil {
			o.timer.Stop()
			o.timer = nil
		}
		o.mu.Unlock()
		return
	}

	if o.hold <= 0 {
		o.fired = true
		o.mu.Unlock()
		o.fn()
		return
	}

	if o.timer == nil {
		o.timer = time.AfterFunc(o.hold, o.holdElapsed)
	}
	o.mu.Unlock()
}

func (o *RegionObserver) holdElapsed() {
	o.mu.Lock()
	if o.fired || o.stopped {
		o.mu.Unlock()
		return
	}
	o.fired = true
	o.timer = nil
	o.mu.Unlock()

	o.fn()
}

// Stop tears the observer down; subsequent reports are ignored
func (o *RegionObserver) Stop() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopped = true
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}

// Fired reports whether the observer has emitted its signal
func (o *RegionObserver) Fired() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.fired
}
