package user

import (
	"context"
	"errors"
	"sync"
	"time"

	"clickmart/internal/logger"
	"clickmart/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenKey is the durable slot holding the access token between runs.
const TokenKey = "click-mart-auth"

type EventType string

const (
	EventLogin  EventType = "login"
	EventLogout EventType = "logout"
)

// Event is the auth state change broadcast. Independent views register with
// OnChange and resynchronize whenever the session flips.
type Event struct {
	Type EventType
}

// Session holds the access token, mirrors it to durable storage, and fans
// out auth state changes. It also serves as the api.TokenSource for the
// backend client. The session itself never touches the cart; wiring code
// decides whether logout clears it.
type Session struct {
	mu        sync.Mutex
	slot      storage.Store
	token     string
	listeners []func(Event)
}

// NewSession rehydrates the token from the slot; a missing or unreadable
// slot simply means logged out.
func NewSession(slot storage.Store) *Session {
	s := &Session{slot: slot}

	data, err := slot.Get(context.Background(), TokenKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		logger.L().Warn("auth token load failed", zap.Error(err))
	}
	s.token = string(data)
	return s
}

// AccessToken implements api.TokenSource.
func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken stores a fresh access token and broadcasts a login event.
// Persistence is best effort; the in-memory session wins.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	if err := s.slot.Set(context.Background(), TokenKey, []byte(token)); err != nil {
		logger.L().Warn("auth token persist failed", zap.Error(err))
	}
	listeners := s.listenersLocked()
	s.mu.Unlock()

	broadcast(listeners, Event{Type: EventLogin})
}

// Logout drops the token, deletes the persisted copy and broadcasts a
// logout event.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	if err := s.slot.Delete(context.Background(), TokenKey); err != nil {
		logger.L().Warn("auth token delete failed", zap.Error(err))
	}
	listeners := s.listenersLocked()
	s.mu.Unlock()

	broadcast(listeners, Event{Type: EventLogout})
}

// Authenticated reports whether a token is present and, when it carries an
// exp claim, not yet expired. The client never verifies the signature; the
// backend does that on every call.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return false
	}
	if exp, ok := expiry(token); ok {
		return time.Now().Before(exp)
	}
	return true
}

// ExpiresAt returns the token's exp claim when one is readable.
func (s *Session) ExpiresAt() (time.Time, bool) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	return expiry(token)
}

// OnChange registers a listener for auth state changes. Listeners run on
// the goroutine that triggered the change.
func (s *Session) OnChange(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Session) listenersLocked() []func(Event) {
	listeners := make([]func(Event), len(s.listeners))
	copy(listeners, s.listeners)
	return listeners
}

func expiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

func broadcast(listeners []func(Event), ev Event) {
	for _, fn := range listeners {
		fn(ev)
	}
}
