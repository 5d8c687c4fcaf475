package config

import (
	"fmt"
	"time"

	"github.com/gofrs/flock"
)

// acquireLock obtains an exclusive lock on lockPath, polling until timeout.
// The returned func releases it.
func acquireLock(lockPath string, timeout time.Duration) (func(), error) {
	l := flock.New(lockPath)
	deadline := time.Now().Add(timeout)
	for {
		locked, err := l.TryLock()
		if err != nil {
			return func() {}, fmt.Errorf("cannot acquire config lock: %w", err)
		}
		if locked {
			return func() { _ = l.Unlock() }, nil
		}
		if time.Now().After(deadline) {
			return func() {}, fmt.Errorf("config is being written by another process (lock: %s)", lockPath)
		}
		time.Sleep(50 * time.Millisecond)
	}
}
