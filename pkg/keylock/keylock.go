// Package keylock provides keyed mutual exclusion with bounded waits.
//
// Callers acquire one or more string keys together. Keys are acquired in sorted
// order so two callers locking overlapping sets cannot deadlock. When the wait
// exceeds the configured timeout, Acquire returns ErrTimeout.
package keylock

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrTimeout indicates a lock could not be acquired before the timeout elapsed.
var ErrTimeout = errors.New("keylock: timed out waiting for lock")

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// Locker hands out per-key exclusive locks.
type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
	timeout time.Duration
}

// New creates a Locker whose Acquire waits at most timeout.
// A zero timeout waits until the context is done.
func New(timeout time.Duration) *Locker {
	return &Locker{
		entries: make(map[string]*entry),
		timeout: timeout,
	}
}

// Acquire locks every key and returns a release function.
// The release function is safe to call more than once.
func (l *Locker) Acquire(ctx context.Context, keys ...string) (func(), error) {
	keys = unique(keys)

	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	held := make([]string, 0, len(keys))
	for _, key := range keys {
		e := l.ref(key)
		if err := e.sem.Acquire(ctx, 1); err != nil {
			l.unref(key)
			l.release(held)
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, ErrTimeout
			}
			return nil, err
		}
		held = append(held, key)
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(held) })
	}, nil
}

// Held reports the number of keys currently tracked.
func (l *Locker) Held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Locker) release(keys []string) {
	for i := len(keys) - 1; i >= 0; i-- {
		l.mu.Lock()
		e := l.entries[keys[i]]
		l.mu.Unlock()

		e.sem.Release(1)
		l.unref(keys[i])
	}
}

func (l *Locker) ref(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *Locker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

func unique(keys []string) []string {
	out := slices.Clone(keys)
	slices.Sort(out)
	return slices.Compact(out)
}
