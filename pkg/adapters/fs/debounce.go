package fs

import (
	"sync"
	"time"

	"github.com/aretw0/taskpaper/pkg/core"
)

// debouncer coalesces bursts of filesystem events for the same document
// into a single delivery. Editors commonly fire several events per save.
type debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{
		window: window,
		timers: make(map[string]*time.Timer),
	}
}

// add schedules the event for delivery after the debounce window. Another
// event for the same document inside the window resets the timer; the
// first event of the burst wins, so a create followed by writes during a
// save surfaces as one create.
func (d *debouncer) add(event core.Event, deliver func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	key := event.Name
	if t, ok := d.timers[key]; ok {
		if t.Stop() {
			t.Reset(d.window)
			return
		}
		// Timer already fired; fall through and arm a fresh one.
	}

	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.window, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.timers[key] == t {
			delete(d.timers, key)
		}
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			deliver(event)
		}
	})
	d.timers[key] = t
}

// stopAndWait rejects further events, cancels pending timers and waits for
// in-flight deliveries to finish, bounded by timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
