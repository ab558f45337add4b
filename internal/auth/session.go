package auth

import (
	"context"
	"sync"
	"time"

	"github.com/wmstack/wmsctl/internal/api"
	"github.com/wmstack/wmsctl/internal/log"
)

// revokeTimeout bounds the logout revocation request. Short enough that a
// one-shot command against a dead backend still exits promptly.
const revokeTimeout = 3 * time.Second

// Status is the session lifecycle state
type Status int

const (
	// StatusLoading means the persisted session has not resolved yet
	StatusLoading Status = iota
	// StatusAnonymous means there is no session
	StatusAnonymous
	// StatusAuthenticated means the session is established
	StatusAuthenticated
	// StatusFailed means the last login attempt was rejected
	StatusFailed
)

// String returns the status name
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of the session. User is non-nil exactly
// when Status is StatusAuthenticated. Err carries the message of a rejected
// login attempt (StatusFailed) or of a startup validation that failed
// without the backend rejecting the token (StatusAnonymous).
type State struct {
	Status Status
	User   *api.User
	Token  string
	Err    string
}

// Authenticated reports whether the session is established
func (s State) Authenticated() bool {
	return s.Status == StatusAuthenticated
}

// Loading reports whether the session is still resolving
func (s State) Loading() bool {
	return s.Status == StatusLoading
}

// Manager is the single owner of session state. All transitions go through
// it: login, logout, forced logout on a 401, and startup resolution via the
// Loader. It is safe for concurrent use.
type Manager struct {
	mu         sync.Mutex
	client     *api.Client
	store      *Store
	logger     *log.Logger
	state      State
	generation uint64
	listeners  []func(State)

	revokeOnLogout bool
}

// NewManager wires the store and client into a session manager. The store
// becomes the client's token source, so every request rereads the persisted
// token, and the client's 401 hook feeds back into HandleUnauthorized.
//
// The initial state is StatusLoading until a Loader resolves it.
func NewManager(client *api.Client, store *Store) *Manager {
	m := &Manager{
		client: client,
		store:  store,
		logger: log.DefaultLogger(),
		state:  State{Status: StatusLoading},
	}
	client.SetTokenSource(store)
	client.SetUnauthorizedHook(m.HandleUnauthorized)
	return m
}

// SetLogger overrides the logger
func (m *Manager) SetLogger(logger *log.Logger) {
	m.logger = logger
}

// EnableLogoutRevocation makes Logout also ask the backend to invalidate
// the token. The local session ends either way.
func (m *Manager) EnableLogoutRevocation() {
	m.revokeOnLogout = true
}

// State returns a snapshot of the current session state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers a listener invoked after every state transition with
// the new snapshot. Listeners are called outside the manager's lock.
func (m *Manager) Subscribe(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// Login exchanges credentials for a session. On success the token and user
// snapshot are persisted before the state flips to authenticated, so a
// crash in between leaves a resumable session rather than a phantom one.
// On rejection the store is cleared and the state carries the normalized
// error message for display.
func (m *Manager) Login(ctx context.Context, creds api.Credentials) error {
	m.setState(State{Status: StatusLoading}, true)

	resp, err := m.client.Login(ctx, creds)
	if err != nil {
		m.store.Clear()
		m.setState(State{Status: StatusFailed, Err: api.LoginErrorMessage(err)}, true)
		m.logger.Info("login failed", "username", creds.Username)
		return err
	}

	user := resp.User
	if saveErr := m.store.Save(resp.Token, user); saveErr != nil {
		m.store.Clear()
		m.setState(State{Status: StatusFailed, Err: saveErr.Error()}, true)
		return saveErr
	}

	// Some backends omit the profile from the login payload. Fetch it while
	// the token is already persisted; a missing profile is not fatal.
	if user == nil {
		if profile, perr := m.client.CurrentUser(ctx); perr == nil {
			user = profile
			_ = m.store.Save(resp.Token, user)
		} else {
			user = &api.User{Username: creds.Username}
		}
	}

	m.setState(State{Status: StatusAuthenticated, User: user, Token: resp.Token}, true)
	m.logger.Info("login succeeded", "username", user.Username, "role", user.Role)
	return nil
}

// Logout ends the session unconditionally. With revocation enabled the
// backend is then asked to invalidate the token; that request is bounded
// and its outcome never surfaces, so an unreachable backend can neither
// keep a user logged in nor hang the command.
func (m *Manager) Logout() {
	token := m.store.Token()

	// Transition before clearing so an in-flight session load sees the
	// bumped generation and cannot re-persist the token afterwards.
	m.setState(State{Status: StatusAnonymous}, true)
	m.store.Clear()

	if m.revokeOnLogout && token != "" {
		m.revoke(token)
	}
	m.logger.Info("logged out")
}

// revoke asks the backend to invalidate a token that is no longer the
// session's. It runs synchronously so a one-shot command gets the request
// out before the process exits, on a detached client copy with the
// captured token so the already-cleared store is not consulted and no 401
// feedback loop fires.
func (m *Manager) revoke(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), revokeTimeout)
	defer cancel()

	revoker := *m.client
	revoker.SetTokenSource(staticToken(token))
	revoker.SetUnauthorizedHook(nil)

	if err := revoker.RevokeToken(ctx); err != nil {
		m.logger.Debug("token revocation failed", "error", err.Error())
	}
}

// HandleUnauthorized is the forced-logout path, invoked by the HTTP client
// whenever the backend answers 401. Idempotent: repeated 401s from
// concurrent requests collapse into one transition.
func (m *Manager) HandleUnauthorized() {
	m.mu.Lock()
	already := m.state.Status == StatusAnonymous
	if !already {
		m.state = State{Status: StatusAnonymous}
		m.generation++
	}
	snapshot := m.state
	listeners := m.listeners
	m.mu.Unlock()

	m.store.Clear()

	if already {
		return
	}
	m.logger.Info("session expired, forcing logout")
	for _, fn := range listeners {
		fn(snapshot)
	}
}

// ClearError discards a displayed login failure without any other effect
func (m *Manager) ClearError() {
	m.mu.Lock()
	if m.state.Err == "" {
		m.mu.Unlock()
		return
	}
	m.state.Err = ""
	if m.state.Status == StatusFailed {
		m.state.Status = StatusAnonymous
	}
	snapshot := m.state
	listeners := m.listeners
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// beginLoad flips the state to loading and returns the generation the
// Loader must present when resolving. Any intervening login, logout, or
// forced logout bumps the generation and strands the in-flight load.
func (m *Manager) beginLoad() uint64 {
	m.mu.Lock()
	m.state = State{Status: StatusLoading}
	gen := m.generation
	snapshot := m.state
	listeners := m.listeners
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
	return gen
}

// resolveLoad applies a load outcome if the session has not moved on since
// beginLoad. Stale outcomes are dropped. The refreshed snapshot is written
// back under the same check, so a logout racing the validation request can
// never have its cleared store repopulated.
func (m *Manager) resolveLoad(gen uint64, state State) {
	m.mu.Lock()
	if m.generation != gen {
		m.mu.Unlock()
		m.logger.Debug("discarding stale session load result")
		return
	}
	if state.Authenticated() {
		_ = m.store.Save(state.Token, state.User)
	}
	m.state = state
	snapshot := m.state
	listeners := m.listeners
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// setState replaces the state, optionally invalidating in-flight loads,
// and notifies listeners outside the lock.
func (m *Manager) setState(state State, bumpGeneration bool) {
	m.mu.Lock()
	m.state = state
	if bumpGeneration {
		m.generation++
	}
	snapshot := m.state
	listeners := m.listeners
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// staticToken is a fixed token source for detached requests
type staticToken string

// Token returns the fixed token
func (t staticToken) Token() string {
	return string(t)
}
