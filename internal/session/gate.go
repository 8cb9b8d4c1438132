// Package session holds the edit-mode flag. It is a UI gate matched against
// fixed owner credentials, not a security boundary.
package session

import (
	"context"
	"sync"

	"github.com/pbaille/portfolio/internal/kv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultKey is the key the flag is stored under
const DefaultKey = "portfolioAuth"

const flagValue = "true"

// Credentials are the owner's login
type Credentials struct {
	Email    string
	Password string
}

// Gate tracks whether the owner is logged in
type Gate struct {
	mu            sync.RWMutex
	kv            kv.Store
	key           string
	creds         Credentials
	authenticated bool
	log           zerolog.Logger
}

// NewGate creates a logged-out gate
func NewGate(store kv.Store, creds Credentials, log zerolog.Logger) *Gate {
	return &Gate{kv: store, key: DefaultKey, creds: creds, log: log}
}

// WithKey changes the storage key
func (g *Gate) WithKey(key string) *Gate {
	g.key = key
	return g
}

// Configured reports whether an owner login exists. Without one Login
// always fails and edit mode cannot be reached.
func (g *Gate) Configured() bool {
	return g.creds.Email != ""
}

// Restore picks up a flag saved by an earlier session
func (g *Gate) Restore(ctx context.Context) {
	v, err := g.kv.Get(ctx, g.key)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		g.log.Warn().Err(err).Msg("read session flag")
	}

	g.mu.Lock()
	g.authenticated = err == nil && string(v) == flagValue
	g.mu.Unlock()
}

// IsAuthenticated reports whether mutations may be offered
func (g *Gate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.authenticated
}

// Login compares exactly, case included, against the owner credentials. On a
// match the flag is set and saved; a failed save only logs.
func (g *Gate) Login(ctx context.Context, email, password string) bool {
	if g.creds.Email == "" || email != g.creds.Email || password != g.creds.Password {
		return false
	}

	g.mu.Lock()
	g.authenticated = true
	g.mu.Unlock()

	if err := g.kv.Set(ctx, g.key, []byte(flagValue)); err != nil {
		g.log.Warn().Err(err).Msg("save session flag")
	}
	return true
}

// Logout clears the flag
func (g *Gate) Logout(ctx context.Context) {
	g.mu.Lock()
	g.authenticated = false
	g.mu.Unlock()

	if err := g.kv.Delete(ctx, g.key); err != nil {
		g.log.Warn().Err(err).Msg("clear session flag")
	}
}
