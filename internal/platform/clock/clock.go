// Package clock provides the time source used by services.
//
// Services never read ambient wall-clock time. They hold a Clock and call it,
// so tests can pin or advance time deterministically.
package clock

import (
	"sync"
	"time"
)

// Clock is an injectable time source.
type Clock func() time.Time

// System returns the real time source.
func System() Clock {
	return time.Now
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}

// Fake is a manually controlled time source for tests.
type Fake struct {
	mu  sync.Mutex
	now time.Time
}

// NewFake creates a Fake pinned to start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now reports the fake's current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Set pins the fake to t.
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t
}

// Advance moves the fake forward by d. Negative d moves it backward.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

// Clock adapts the fake to the Clock function type.
func (f *Fake) Clock() Clock {
	return f.Now
}
