// Package guard decides whether a protected surface may render for the
// current session state. It is deliberately tiny: the one rule it encodes
// is that an unresolved session defers rather than redirects, so a user
// with a valid stored token is never bounced to login during startup.
package guard

import (
	"github.com/wmstack/wmsctl/internal/auth"
)

// Decision is the outcome of evaluating a protected surface
type Decision int

const (
	// DecisionWait means the session is still resolving; show a loading
	// indicator and re-evaluate on the next state change.
	DecisionWait Decision = iota
	// DecisionRedirect means there is no session; go to login
	DecisionRedirect
	// DecisionAllow means the surface may render
	DecisionAllow
)

// String returns the decision name
func (d Decision) String() string {
	switch d {
	case DecisionWait:
		return "wait"
	case DecisionRedirect:
		return "redirect"
	case DecisionAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// Decide evaluates a session state for a protected surface. Loading defers,
// authenticated allows, everything else redirects to login. A failed login
// attempt counts as no session.
func Decide(state auth.State) Decision {
	switch state.Status {
	case auth.StatusLoading:
		return DecisionWait
	case auth.StatusAuthenticated:
		return DecisionAllow
	default:
		return DecisionRedirect
	}
}
