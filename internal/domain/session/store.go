// internal/domain/session/store.go
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/your-org/storefront-api/internal/infrastructure/storage"
)

// Namespace is the fixed storage namespace for session entries
const Namespace = "user:"

// placeholderUserID is the fixed identifier assigned at login. There is no
// user database; every session gets the same id.
const placeholderUserID = 1

// Store holds at most one User per client session, restored from durable
// storage at construction and persisted on login/logout. It does not gate
// cart mutation itself; callers check IsLoggedIn at the boundary.
type Store struct {
	mu      sync.Mutex
	user    *User
	storage storage.Store
	key     string
}

// NewStore creates a session store bound to a storage key, restoring any
// previously persisted user.
func NewStore(ctx context.Context, st storage.Store, key string) (*Store, error) {
	s := &Store{
		storage: st,
		key:     key,
	}

	var user User
	found, err := st.Load(ctx, key, &user)
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	if found {
		s.user = &user
	}

	return s, nil
}

// Login succeeds whenever both username and password are non-empty,
// creating the session user. It reports false with no state change
// otherwise. This is a placeholder, not a security boundary.
func (s *Store) Login(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &User{
		ID:         placeholderUserID,
		Username:   username,
		Email:      username + "@example.com",
		IsLoggedIn: true,
	}

	if err := s.storage.Save(ctx, s.key, s.user); err != nil {
		return true, fmt.Errorf("failed to persist session: %w", err)
	}

	return true, nil
}

// Logout clears the session user
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil

	if err := s.storage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear persisted session: %w", err)
	}

	return nil
}

// IsLoggedIn reports whether a user exists and is flagged logged in
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user != nil && s.user.IsLoggedIn
}

// Current returns a copy of the session user, or nil when logged out
func (s *Store) Current() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	user := *s.user
	return &user
}
