// Package lockfile guards an export target with an exclusive flock on
// "<path>.lock" so two labeler processes never write the same dump at once.
package lockfile

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

const (
	retry   = 50 * time.Millisecond
	timeout = 5 * time.Second
)

// Acquire blocks until the lock for path is held, ctx ends, or the lock
// timeout passes. The returned func releases it.
func Acquire(ctx context.Context, path string) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLockContext(ctx, retry)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return nil, fmt.Errorf("lock %s: busy", lock.Path())
	}
	return func() { _ = lock.Unlock() }, nil
}
