package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-api/internal/infrastructure/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(context.Background(), storage.NewMemory(), Namespace+"test")
	require.NoError(t, err)
	return store
}

func TestLogin_NonEmptyCredentialsSucceed(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ok, err := store.Login(ctx, "alice", "x")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, store.IsLoggedIn())

	user := store.Current()
	require.NotNil(t, user)
	assert.Equal(t, 1, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestLogin_EmptyCredentialsFail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, creds := range [][2]string{{"", "secret"}, {"alice", ""}, {"", ""}} {
		ok, err := store.Login(ctx, creds[0], creds[1])
		require.NoError(t, err)
		assert.False(t, ok)
	}

	assert.False(t, store.IsLoggedIn())
	assert.Nil(t, store.Current())
}

func TestLogout_ClearsUser(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	ok, err := store.Login(ctx, "alice", "x")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Logout(ctx))
	assert.False(t, store.IsLoggedIn())
	assert.Nil(t, store.Current())
}

func TestStore_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()

	store, err := NewStore(ctx, mem, Namespace+"alice")
	require.NoError(t, err)
	ok, err := store.Login(ctx, "alice", "x")
	require.NoError(t, err)
	require.True(t, ok)

	restored, err := NewStore(ctx, mem, Namespace+"alice")
	require.NoError(t, err)
	assert.True(t, restored.IsLoggedIn())

	user := restored.Current()
	require.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestStore_LogoutRemovesPersistedSession(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()

	store, err := NewStore(ctx, mem, Namespace+"alice")
	require.NoError(t, err)
	_, err = store.Login(ctx, "alice", "x")
	require.NoError(t, err)
	require.NoError(t, store.Logout(ctx))

	restored, err := NewStore(ctx, mem, Namespace+"alice")
	require.NoError(t, err)
	assert.False(t, restored.IsLoggedIn())
}

func TestManager_IsolatesSessions(t *testing.T) {
	ctx := context.Background()
	manager := NewManager(storage.NewMemory())

	alice, err := manager.ForSession(ctx, "alice")
	require.NoError(t, err)
	bob, err := manager.ForSession(ctx, "bob")
	require.NoError(t, err)

	_, err = alice.Login(ctx, "alice", "x")
	require.NoError(t, err)

	assert.True(t, alice.IsLoggedIn())
	assert.False(t, bob.IsLoggedIn())
}
