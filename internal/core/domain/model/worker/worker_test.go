package worker_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/worker"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorker(t *testing.T) {
	t.Run("creates a worker profile", func(t *testing.T) {
		id := kernel.NewUUID()

		w, err := worker.NewWorker(id, "Ivan", "turner")

		require.NoError(t, err)
		require.NoError(t, w.Validate())
		assert.True(t, w.ID().IsEqual(id))
		assert.Equal(t, "Ivan", w.Name())
		assert.Equal(t, "turner", w.PositionName())
	})

	t.Run("requires name and position", func(t *testing.T) {
		_, err := worker.NewWorker(kernel.NewUUID(), "", "turner")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = worker.NewWorker(kernel.NewUUID(), "Ivan", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewPosition(t *testing.T) {
	t.Run("creates a position with chill time", func(t *testing.T) {
		p, err := worker.NewPosition("turner", 30*time.Minute)

		require.NoError(t, err)
		assert.Equal(t, "turner", p.Name())
		assert.Equal(t, 30*time.Minute, p.ChillTime())
	})

	t.Run("rejects negative chill time", func(t *testing.T) {
		_, err := worker.NewPosition("turner", -time.Minute)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := worker.NewPosition("", time.Minute)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
