package pages

import (
	"sync"
	"time"
)

const defaultQuietWindow = 500 * time.Millisecond

// Refresher collapses rapid foreground-visibility signals into a single
// reload after a quiet window. One timer is live per page instance; Close
// stops it so an unmounted page never reloads.
type Refresher struct {
	mu     sync.Mutex
	quiet  time.Duration
	timer  *time.Timer
	reload func()
	closed bool
}

func NewRefresher(quiet time.Duration, reload func()) *Refresher {
	if quiet <= 0 {
		quiet = defaultQuietWindow
	}
	return &Refresher{quiet: quiet, reload: reload}
}

// Visible signals that the page regained foreground visibility.
func (r *Refresher) Visible() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.quiet, func() {
		r.mu.Lock()
		closed := r.closed
		r.mu.Unlock()
		if !closed {
			r.reload()
		}
	})
}

func (r *Refresher) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	if r.timer != nil {
		r.timer.Stop()
	}
}
