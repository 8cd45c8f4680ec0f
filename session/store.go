package session

import (
	"context"
	"fmt"
	"sync"
)

// TokenStore is the durable persistence port for the bearer token. Load
// returns "" with a nil error when no token is stored. Implementations must
// be safe for concurrent use.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Snapshot is one synchronous read of the session state.
type Snapshot struct {
	Token      string
	IsLoading  bool
	Error      string
	Generation uint64
}

// Store holds the process-wide session state. The zero value is not usable;
// construct through [NewStore], which hydrates the token from the durable
// store exactly once.
type Store struct {
	tokens TokenStore

	mu      sync.RWMutex
	token   string
	loading bool
	err     string
	gen     uint64
}

// NewStore describes the newstore operation and its observable behavior.
//
// NewStore may return an error when input validation, dependency calls, or security checks fail.
func NewStore(ctx context.Context, tokens TokenStore) (*Store, error) {
	if tokens == nil {
		tokens = NewMemoryTokenStore()
	}
	token, err := tokens.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("hydrate token: %w", err)
	}
	return &Store{tokens: tokens, token: token}, nil
}

// Snapshot returns the current session state. No staleness window beyond
// the caller's own scheduling: the read happens under the lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Token:      s.token,
		IsLoading:  s.loading,
		Error:      s.err,
		Generation: s.gen,
	}
}

// Token returns the current token and whether one is present.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Generation returns the current token generation. It advances on every
// SetToken and ClearToken.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// SetToken commits token to memory, advances the generation, then persists
// through the durable port. The in-memory commit stands even when
// persistence fails; the error reports the persistence outcome only.
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.gen++
	s.mu.Unlock()

	if err := s.tokens.Save(ctx, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}

// ClearToken removes the token and the cached error from memory and durable
// storage. Clearing an already-empty session is a no-op that still
// advances the generation, so in-flight validations are superseded by an
// external logout. Idempotent.
func (s *Store) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.err = ""
	s.gen++
	s.mu.Unlock()

	if err := s.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// SetLoading describes the setloading operation and its observable behavior.
func (s *Store) SetLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// TryBeginRequest flips the loading flag from false to true. It returns
// false when a request is already in flight, which makes duplicate
// submissions a no-op at the source.
func (s *Store) TryBeginRequest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return false
	}
	s.loading = true
	return true
}

// EndRequest clears the loading flag. Always runs regardless of the request
// outcome.
func (s *Store) EndRequest() {
	s.SetLoading(false)
}

// IsLoading describes the isloading operation and its observable behavior.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetError describes the seterror operation and its observable behavior.
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}

// ClearError describes the clearerror operation and its observable behavior.
func (s *Store) ClearError() {
	s.SetError("")
}

// Error returns the last request error message, "" when none.
func (s *Store) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
