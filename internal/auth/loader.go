package auth

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/wmstack/wmsctl/internal/api"
	"github.com/wmstack/wmsctl/internal/log"
)

// Loader resolves the persisted session exactly once per process. With no
// stored token it settles the state to anonymous without touching the
// network; with one it validates the token against the backend and either
// restores the session or clears the stale token.
type Loader struct {
	manager *Manager
	logger  *log.Logger
	started atomic.Bool
}

// NewLoader creates a loader bound to a session manager
func NewLoader(manager *Manager) *Loader {
	return &Loader{
		manager: manager,
		logger:  log.DefaultLogger(),
	}
}

// SetLogger overrides the logger
func (l *Loader) SetLogger(logger *log.Logger) {
	l.logger = logger
}

// Load resolves the persisted session. Calls after the first return
// immediately without touching state, even if the first call is still in
// flight. If the user logs in or out while the validation request is
// pending, the request's outcome is discarded rather than applied on top
// of the newer state.
func (l *Loader) Load(ctx context.Context) {
	if !l.started.CompareAndSwap(false, true) {
		return
	}

	token, _ := l.manager.store.Load()
	if token == "" {
		l.manager.resolveLoad(l.manager.beginLoad(), State{Status: StatusAnonymous})
		l.logger.Debug("no stored session")
		return
	}

	gen := l.manager.beginLoad()

	user, err := l.manager.client.CurrentUser(ctx)
	if err != nil {
		// A 401 already forced the session out through the client hook;
		// resolveLoad below is then stale and drops out with no error
		// shown, a soft re-auth prompt. Anything else (network down, 5xx)
		// also ends anonymous, carrying the reason: an unvalidated token
		// must not present as a session.
		resolved := State{Status: StatusAnonymous}
		if !errors.Is(err, api.ErrUnauthenticated) {
			l.manager.store.Clear()
			resolved.Err = api.ErrorMessage(err)
		}
		l.logger.Info("stored session rejected", "error", err.Error())
		l.manager.resolveLoad(gen, resolved)
		return
	}

	l.logger.Info("session restored", "username", user.Username, "role", user.Role)
	l.manager.resolveLoad(gen, State{Status: StatusAuthenticated, User: user, Token: token})
}
