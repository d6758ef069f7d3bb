package session

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoterm/internal/store"
)

func TestNewIDNeverSentinel(t *testing.T) {
	for i := 0; i < 10_000; i++ {
		assert.NotEqual(t, uint32(math.MaxUint32), newID())
	}
}

func TestInsertWithFreshIDReturnsWinningID(t *testing.T) {
	var seen uint32
	id, err := insertWithFreshID(context.Background(), func(_ context.Context, id uint32) error {
		seen = id
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, seen, id)
}

func TestInsertWithFreshIDRegeneratesOnCollision(t *testing.T) {
	ids := make(map[uint32]struct{})
	collisions := 4

	id, err := insertWithFreshID(context.Background(), func(_ context.Context, id uint32) error {
		ids[id] = struct{}{}
		if collisions > 0 {
			collisions--
			return store.ErrConstraintViolation
		}
		return nil
	})

	require.NoError(t, err)
	assert.Len(t, ids, 5, "each retry draws a fresh identifier")
	_, ok := ids[id]
	assert.True(t, ok)
}

func TestInsertWithFreshIDGivesUpAfterCap(t *testing.T) {
	calls := 0
	_, err := insertWithFreshID(context.Background(), func(context.Context, uint32) error {
		calls++
		return store.ErrConstraintViolation
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrConstraintViolation)
	assert.Equal(t, idAttempts+1, calls, "initial attempt plus the capped retries")
}

func TestInsertWithFreshIDAbortsOnOtherErrors(t *testing.T) {
	boom := errors.New("disk I/O error")
	calls := 0

	_, err := insertWithFreshID(context.Background(), func(context.Context, uint32) error {
		calls++
		return boom
	})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls, "non-constraint errors are not retried")
}
