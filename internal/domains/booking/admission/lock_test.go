package admission_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"carrent/internal/domains/booking/admission"
)

func TestCarLocks_MutualExclusionPerCar(t *testing.T) {
	locks := admission.NewCarLocks()

	const workers = 50

	var (
		wg      sync.WaitGroup
		holders int
		maxSeen int
		mu      sync.Mutex
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			release, err := locks.Acquire(context.Background(), "car-1")
			if err != nil {
				t.Errorf("unexpected error: %v", err)

				return
			}
			defer release()

			mu.Lock()
			holders++
			if holders > maxSeen {
				maxSeen = holders
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			holders--
			mu.Unlock()
		}()
	}

	wg.Wait()

	if maxSeen != 1 {
		t.Errorf("expected at most one holder of a car lock, saw %d", maxSeen)
	}
}

func TestCarLocks_DifferentCarsDoNotBlock(t *testing.T) {
	locks := admission.NewCarLocks()

	release1, err := locks.Acquire(context.Background(), "car-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer release1()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	release2, err := locks.Acquire(ctx, "car-2")
	if err != nil {
		t.Fatalf("second car should acquire immediately, got %v", err)
	}

	release2()
}

func TestCarLocks_AcquireRespectsContext(t *testing.T) {
	locks := admission.NewCarLocks()

	release, err := locks.Acquire(context.Background(), "car-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := locks.Acquire(ctx, "car-1"); err == nil {
		t.Error("expected an error when the lock wait exceeds the context deadline")
	}
}

func TestCarLocks_ReleaseHandsOver(t *testing.T) {
	locks := admission.NewCarLocks()

	release, err := locks.Acquire(context.Background(), "car-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	release()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	release, err = locks.Acquire(ctx, "car-1")
	if err != nil {
		t.Fatalf("lock should be free after release, got %v", err)
	}

	release()
}
