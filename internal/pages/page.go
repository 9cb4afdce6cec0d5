// Package pages holds the guarded per-role view controllers. Every page walks
// the same lifecycle: checking-auth, then either redirecting or loading-data,
// then ready or error. A reload from ready keeps the previously loaded data on
// screen (stale render over blank).
package pages

import (
	"errors"
	"sync"

	"github.com/stayease/stayease/internal/domain"
	"github.com/stayease/stayease/internal/session"
)

var errNotSignedIn = errors.New("not signed in")

type State string

const (
	StateUninitialized State = "uninitialized"
	StateCheckingAuth  State = "checking-auth"
	StateRedirecting   State = "redirecting"
	StateLoading       State = "loading-data"
	StateReady         State = "ready"
	StateError         State = "error"
)

// Routes pages redirect to when a guard fails.
const (
	RouteSignIn             = "/auth"
	RouteHome               = "/"
	RouteTenantDashboard    = "/user/dashboard"
	RouteOwnerDashboard     = "/owner/dashboard"
	RouteTenantListings     = "/user/listings"
	RouteTenantAppointments = "/user/appointments"
	RouteOwnerAppointments  = "/owner/appointments"
)

type page struct {
	mu       sync.Mutex
	state    State
	errMsg   string
	redirect string
	closed   bool
}

func (p *page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == "" {
		return StateUninitialized
	}
	return p.state
}

// Err returns the page-local error slot, empty when the last load succeeded.
func (p *page) Err() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// Redirect is non-empty once a guard has bounced this page instance. It is
// terminal: the instance never loads afterwards.
func (p *page) Redirect() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.redirect
}

// Close marks the page unmounted. In-flight loads are not aborted, but their
// results are discarded instead of mutating a discarded view.
func (p *page) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

// guard runs the checking-auth step. It hands back the current identity when
// the page may load, or records the redirect target and reports false.
func (p *page) guard(sess *session.Store, want domain.Role, mismatchRoute string) (*domain.User, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.redirect != "" {
		return nil, false
	}
	p.state = StateCheckingAuth

	user := sess.Current()
	if user == nil {
		p.state = StateRedirecting
		p.redirect = RouteSignIn
		return nil, false
	}
	if user.Role != want {
		p.state = StateRedirecting
		p.redirect = mismatchRoute
		return nil, false
	}

	p.state = StateLoading
	return user, true
}

// commit finishes a load. The apply callback swaps in freshly fetched data and
// runs under the page lock; it is skipped on failure so stale content stays
// rendered next to the error message.
func (p *page) commit(err error, apply func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	if err != nil {
		p.state = StateError
		p.errMsg = err.Error()
		return
	}
	if apply != nil {
		apply()
	}
	p.state = StateReady
	p.errMsg = ""
}

// fail records an action error without touching loaded data.
func (p *page) fail(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.errMsg = msg
}
