package memory

import (
	"errors"
	"testing"

	"github.com/chris/marketplace-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	t.Run("Zero Owner", func(t *testing.T) {
		_, err := NewGate("")
		assert.ErrorIs(t, err, storage.ErrInvalidArgument)
	})

	t.Run("Pause And Unpause", func(t *testing.T) {
		g, err := NewGate("owner")
		require.NoError(t, err)

		require.NoError(t, g.Pause("owner"))
		assert.True(t, g.Paused())
		require.NoError(t, g.Pause("owner"))

		_, err = g.enter()
		assert.ErrorIs(t, err, storage.ErrPaused)

		release, err := g.view()
		require.NoError(t, err)
		release()

		require.NoError(t, g.Unpause("owner"))
		assert.False(t, g.Paused())
		release, err = g.enter()
		require.NoError(t, err)
		release()
	})

	t.Run("Non Owner", func(t *testing.T) {
		g, err := NewGate("owner")
		require.NoError(t, err)

		assert.ErrorIs(t, g.Pause("mallory"), storage.ErrUnauthorized)
		assert.ErrorIs(t, g.Unpause("mallory"), storage.ErrUnauthorized)
		assert.ErrorIs(t, g.terminate("mallory", nil), storage.ErrUnauthorized)
		assert.False(t, g.Paused())
	})

	t.Run("Failed Drain Keeps Gate Open", func(t *testing.T) {
		g, err := NewGate("owner")
		require.NoError(t, err)

		boom := errors.New("boom")
		assert.ErrorIs(t, g.terminate("owner", func() error { return boom }), boom)

		release, err := g.enter()
		require.NoError(t, err)
		release()
	})

	t.Run("Terminated", func(t *testing.T) {
		g, err := NewGate("owner")
		require.NoError(t, err)
		require.NoError(t, g.Pause("owner"))
		require.NoError(t, g.terminate("owner", nil))

		_, err = g.enter()
		assert.ErrorIs(t, err, storage.ErrTerminated)
		_, err = g.view()
		assert.ErrorIs(t, err, storage.ErrTerminated)
		assert.ErrorIs(t, g.Unpause("owner"), storage.ErrTerminated)
		assert.ErrorIs(t, g.terminate("owner", nil), storage.ErrTerminated)
	})
}
