package memory

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry("owner", discardLogger())
	require.NoError(t, err)
	return r
}

func TestRegistryAdmins(t *testing.T) {
	t.Run("Owner Is Not Reported As Admin", func(t *testing.T) {
		r := newTestRegistry(t)
		assert.False(t, r.CheckAdmin("owner"))
		assert.Equal(t, "owner", string(r.Owner()))
	})

	t.Run("Owner And Admins Add Admins", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.AddAdmin("owner", "alice"))
		require.NoError(t, r.AddAdmin("alice", "bob"))
		require.NoError(t, r.AddAdmin("alice", "bob"))

		assert.True(t, r.CheckAdmin("alice"))
		assert.True(t, r.CheckAdmin("bob"))
	})

	t.Run("Stranger Cannot Add Admin", func(t *testing.T) {
		r := newTestRegistry(t)
		assert.ErrorIs(t, r.AddAdmin("mallory", "mallory"), storage.ErrUnauthorized)
		assert.False(t, r.CheckAdmin("mallory"))
	})

	t.Run("Zero Target", func(t *testing.T) {
		r := newTestRegistry(t)
		assert.ErrorIs(t, r.AddAdmin("owner", ""), storage.ErrInvalidArgument)
	})

	t.Run("Only Owner Removes Admins", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.AddAdmin("owner", "alice"))
		require.NoError(t, r.AddAdmin("owner", "bob"))

		assert.ErrorIs(t, r.RemoveAdmin("alice", "bob"), storage.ErrUnauthorized)
		assert.True(t, r.CheckAdmin("bob"))

		require.NoError(t, r.RemoveAdmin("owner", "bob"))
		require.NoError(t, r.RemoveAdmin("owner", "bob"))
		assert.False(t, r.CheckAdmin("bob"))
	})
}

func TestRegistryStoreOwners(t *testing.T) {
	t.Run("Requests Keep Order And Duplicates", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.RequestStoreOwnerStatus("carol"))
		require.NoError(t, r.RequestStoreOwnerStatus("dave"))
		require.NoError(t, r.RequestStoreOwnerStatus("carol"))

		n, err := r.GetRequestedStoreOwnersLength()
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		first, err := r.GetRequestedStoreOwner(0)
		require.NoError(t, err)
		last, err := r.GetRequestedStoreOwner(2)
		require.NoError(t, err)
		assert.Equal(t, first, last)

		_, err = r.GetRequestedStoreOwner(3)
		assert.ErrorIs(t, err, storage.ErrInvalidArgument)
		assert.False(t, r.CheckStoreOwnerStatus("carol"))
	})

	t.Run("Approval Without Request", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.AddAdmin("owner", "alice"))
		require.NoError(t, r.ApproveStoreOwnerStatus("alice", "erin"))
		assert.True(t, r.CheckStoreOwnerStatus("erin"))

		require.NoError(t, r.RemoveStoreOwnerStatus("alice", "erin"))
		assert.False(t, r.CheckStoreOwnerStatus("erin"))
	})

	t.Run("Owner Must Be Admin To Approve", func(t *testing.T) {
		r := newTestRegistry(t)
		assert.ErrorIs(t, r.ApproveStoreOwnerStatus("owner", "erin"), storage.ErrUnauthorized)
		assert.False(t, r.CheckStoreOwnerStatus("erin"))
	})

	t.Run("Non Admin Cannot Revoke", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.AddAdmin("owner", "alice"))
		require.NoError(t, r.ApproveStoreOwnerStatus("alice", "erin"))

		assert.ErrorIs(t, r.RemoveStoreOwnerStatus("erin", "erin"), storage.ErrUnauthorized)
		assert.True(t, r.CheckStoreOwnerStatus("erin"))
	})

	t.Run("Admin And Store Owner Are Independent", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.AddAdmin("owner", "alice"))
		require.NoError(t, r.ApproveStoreOwnerStatus("alice", "alice"))
		assert.True(t, r.CheckAdmin("alice"))
		assert.True(t, r.CheckStoreOwnerStatus("alice"))

		require.NoError(t, r.RemoveAdmin("owner", "alice"))
		assert.True(t, r.CheckStoreOwnerStatus("alice"))
	})
}

func TestRegistryGate(t *testing.T) {
	t.Run("Paused Rejects Before Auth", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.Pause("owner"))

		assert.ErrorIs(t, r.AddAdmin("mallory", "mallory"), storage.ErrPaused)
		assert.ErrorIs(t, r.RequestStoreOwnerStatus("carol"), storage.ErrPaused)

		n, err := r.GetRequestedStoreOwnersLength()
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("Shutdown", func(t *testing.T) {
		r := newTestRegistry(t)
		require.NoError(t, r.AddAdmin("owner", "alice"))
		assert.ErrorIs(t, r.Shutdown(context.Background(), "alice"), storage.ErrUnauthorized)
		require.NoError(t, r.Shutdown(context.Background(), "owner"))

		assert.ErrorIs(t, r.AddAdmin("owner", "bob"), storage.ErrTerminated)
		assert.False(t, r.CheckAdmin("alice"))
		_, err := r.GetRequestedStoreOwnersLength()
		assert.ErrorIs(t, err, storage.ErrTerminated)
	})
}
