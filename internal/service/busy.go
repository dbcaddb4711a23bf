package service

import (
	"errors"
	"sync/atomic"
)

// ErrBusy is returned when the same operation is already in flight.
var ErrBusy = errors.New("operation already in progress")

// busyGuard rejects re-entrant calls instead of queueing them.
type busyGuard struct {
	running atomic.Bool
}

func (g *busyGuard) tryAcquire() bool { return g.running.CompareAndSwap(false, true) }

func (g *busyGuard) release() { g.running.Store(false) }

func (g *busyGuard) busy() bool { return g.running.Load() }
