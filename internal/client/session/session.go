// Package session owns the client's authentication state. It is the single
// authoritative source for the bearer token: the durable store is read once
// at construction, and the two are kept in sync at the explicit lifecycle
// points (login, logout, detected expiry). Everything that needs to know
// whether the client is authenticated (the HTTP layer, the stores, the
// navigation guard) asks this package.
package session

import (
	"context"
	"sync"

	"github.com/mpetrova/studytrack/internal/client/repositories/credentials"
	"github.com/mpetrova/studytrack/internal/logging"
)

// Navigator is the outward navigation surface the session drives on forced
// teardown. The CLI front end implements it by switching the active view.
type Navigator interface {
	ToLogin()
}

// Session holds the in-memory credential and keeps the durable store in
// step with it. The token is opaque: it is never parsed or validated
// locally; the first authorized request decides whether it is still good.
type Session struct {
	mu    sync.Mutex
	token string

	store credentials.Repository
	nav   Navigator
	log   logging.Logger
}

// New seeds the in-memory token from the durable store. A missing token is
// not an error; the session simply starts anonymous.
func New(ctx context.Context, store credentials.Repository, log logging.Logger) (*Session, error) {
	token, err := store.Token(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{token: token, store: store, log: log}, nil
}

// SetNavigator wires the navigation surface. It is set after construction
// because the front end that implements it is built around the session.
func (s *Session) SetNavigator(nav Navigator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav = nav
}

// Token returns the current bearer token, empty when anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Authenticated reports whether a credential is present. Presence, not
// validity: an expired token still counts until the server says otherwise.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Establish persists the freshly issued token and makes it current.
// The durable write happens first so that the in-memory state never claims
// a credential that would not survive a restart.
func (s *Session) Establish(ctx context.Context, token string) error {
	if err := s.store.Save(ctx, token); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Logout clears the credential from durable storage and memory. It issues
// no network call; the server keeps no session state worth revoking here.
func (s *Session) Logout(ctx context.Context) error {
	err := s.store.Clear(ctx)

	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()

	return err
}

// HandleExpired is the forced-teardown path, invoked by the HTTP layer when
// any response reports the authorization as expired. It clears the
// credential and sends the user to the login entry point. Safe to call
// repeatedly: concurrent in-flight requests may each observe the same
// expiry, and every invocation leaves the same final state.
func (s *Session) HandleExpired(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear expired credential", "error", err)
	}

	s.mu.Lock()
	s.token = ""
	nav := s.nav
	s.mu.Unlock()

	s.log.Warn(ctx, "session expired, redirecting to login")

	if nav != nil {
		nav.ToLogin()
	}
}
