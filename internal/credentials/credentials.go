// Package credentials holds the marketplace OAuth token pair behind a small
// key-value contract so the token refresh client and item fetcher never touch
// process-wide state.
package credentials

import (
	"context"
	"sync"
)

// Key names one stored credential.
type Key string

// Credential keys. The values double as the persisted row keys.
const (
	AccessToken  Key = "MERCADOLIBRE_ACCESS_TOKEN"
	RefreshToken Key = "MERCADOLIBRE_REFRESH_TOKEN"
)

// TokenPair is an access/refresh token pair as issued by the token endpoint.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	TokenType    string
}

// Store persists credentials. Get reports ok=false when no value exists.
// SetPair must write both tokens so that no reader observes one without the
// other.
type Store interface {
	Get(ctx context.Context, key Key) (value string, ok bool, err error)
	Set(ctx context.Context, key Key, value string) error
	SetPair(ctx context.Context, pair TokenPair) error
}

// MemoryStore is an in-process Store. The zero value is ready to use.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[Key]string
}

// NewMemoryStore returns a MemoryStore seeded with the given values.
func NewMemoryStore(seed map[Key]string) *MemoryStore {
	m := &MemoryStore{values: make(map[Key]string, len(seed))}
	for k, v := range seed {
		m.values[k] = v
	}
	return m
}

// Get implements Store.
func (m *MemoryStore) Get(_ context.Context, key Key) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements Store.
func (m *MemoryStore) Set(_ context.Context, key Key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	m.values[key] = value
	return nil
}

// SetPair implements Store. Both keys are written under one lock.
func (m *MemoryStore) SetPair(_ context.Context, pair TokenPair) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	m.values[AccessToken] = pair.AccessToken
	m.values[RefreshToken] = pair.RefreshToken
	return nil
}

// Snapshot returns both tokens as seen by a single reader.
func (m *MemoryStore) Snapshot() (access, refresh string) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[AccessToken], m.values[RefreshToken]
}

func (m *MemoryStore) init() {
	if m.values == nil {
		m.values = make(map[Key]string)
	}
}

// bootstrapStore falls back to configuration-supplied values on read.
type bootstrapStore struct {
	Store
	defaults map[Key]string
}

// WithBootstrap wraps s so that reads of a key with no stored value return
// the configured default. Defaults are never written back to s.
func WithBootstrap(s Store, defaults map[Key]string) Store {
	d := make(map[Key]string, len(defaults))
	for k, v := range defaults {
		if v != "" {
			d[k] = v
		}
	}
	return &bootstrapStore{Store: s, defaults: d}
}

func (b *bootstrapStore) Get(ctx context.Context, key Key) (string, bool, error) {
	v, ok, err := b.Store.Get(ctx, key)
	if err != nil {
		return "", false, err
	}
	if ok && v != "" {
		return v, true, nil
	}
	v, ok = b.defaults[key]
	return v, ok, nil
}
