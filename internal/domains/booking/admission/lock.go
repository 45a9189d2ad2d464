package admission

import (
	"context"
	"fmt"
	"sync"
)

// CarLocks serializes booking admission per car. Holding a car's lock
// from the overlap read through the insert closes the check-then-act
// window where two requests could both observe a conflict-free state.
// Locks for different cars are independent, so unrelated cars book in
// parallel.
type CarLocks struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func NewCarLocks() *CarLocks {
	return &CarLocks{
		locks: make(map[string]chan struct{}),
	}
}

// Acquire blocks until the car's lock is free or ctx is done, and
// returns the release function. Callers must defer the release on every
// exit path. A context timeout surfaces as an error so a saturated car
// never hangs a request indefinitely.
func (c *CarLocks) Acquire(ctx context.Context, carID string) (func(), error) {
	lock := c.lockFor(carID)

	select {
	case lock <- struct{}{}:
		return func() { <-lock }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("waiting for car admission lock: %w", ctx.Err())
	}
}

func (c *CarLocks) lockFor(carID string) chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[carID]
	if !ok {
		lock = make(chan struct{}, 1)
		c.locks[carID] = lock
	}

	return lock
}
