package session

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"github.com/sethvargo/go-retry"

	"todoterm/internal/store"
)

// idAttempts caps identifier regeneration so an insert loop provably
// terminates even on a pathologically full ID space.
const idAttempts = 64

// newID draws a random 32-bit identifier. math.MaxUint32 is reserved as a
// sentinel; rand.N's half-open range excludes it.
func newID() uint32 {
	return rand.N(uint32(math.MaxUint32))
}

// insertWithFreshID runs insert with freshly generated identifiers until one
// sticks. Constraint violations mean the identifier was taken and trigger a
// regeneration; any other storage error aborts immediately. The winning
// identifier is returned.
func insertWithFreshID(ctx context.Context, insert func(ctx context.Context, id uint32) error) (uint32, error) {
	var id uint32

	backoff := retry.WithMaxRetries(idAttempts, retry.NewConstant(time.Microsecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		id = newID()

		if insertErr := insert(ctx, id); insertErr != nil {
			if errors.Is(insertErr, store.ErrConstraintViolation) {
				return retry.RetryableError(insertErr)
			}
			return insertErr
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}
