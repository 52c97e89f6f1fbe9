// Package fetch provides the loading side of a list view: an adapter that
// wraps an asynchronous data source and owns its loading / loaded / errored
// state.
//
// An adapter allows one in-flight request at a time. Starting a new load
// cancels and supersedes the previous one; only the latest load's resolution
// updates the visible snapshot, so out-of-order responses can never clobber
// newer data.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// DefaultTimeout bounds a single load. A source that never resolves becomes
// a timeout error rather than leaving the view loading forever.
const DefaultTimeout = 30 * time.Second

// Loader resolves to the full collection for a view. The injected api
// client owns transport, auth and response normalization.
type Loader[T any] func(ctx context.Context) ([]T, error)

// FetchError is the only user-visible failure class of a list view. Timeout
// marks loads that exceeded the adapter's deadline.
type FetchError struct {
	Timeout bool
	Err     error
}

func (e *FetchError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("fetch timed out: %v", e.Err)
	}
	return fmt.Sprintf("fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Snapshot is the adapter's observable state. The three cases a host must
// render distinctly:
//
//	Loading true              — request in flight
//	Loading false, Err nil    — loaded (Items may be empty)
//	Loading false, Err != nil — errored, Items empty, retry by calling Load
type Snapshot[T any] struct {
	Loading bool
	Err     error
	Items   []T
}

// Adapter owns the fetch state for one collection.
type Adapter[T any] struct {
	load    Loader[T]
	timeout time.Duration

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	snap   Snapshot[T]
}

// NewAdapter wraps a loader. A timeout of 0 means DefaultTimeout.
func NewAdapter[T any](load Loader[T], timeout time.Duration) *Adapter[T] {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Adapter[T]{
		load:    load,
		timeout: timeout,
		snap:    Snapshot[T]{Items: []T{}},
	}
}

// Snapshot returns the current observable state.
func (a *Adapter[T]) Snapshot() Snapshot[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snap
}

// Load starts a new fetch, cancelling and superseding any in-flight one.
// It returns immediately; the channel receives the adapter's snapshot once
// this load resolves (or, if superseded, once the superseding resolution is
// known — stale results are discarded, never applied).
func (a *Adapter[T]) Load(ctx context.Context) <-chan Snapshot[T] {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
	}
	lctx, cancel := context.WithTimeout(ctx, a.timeout)
	a.cancel = cancel
	a.gen++
	gen := a.gen
	a.snap.Loading = true
	a.snap.Err = nil
	a.mu.Unlock()

	done := make(chan Snapshot[T], 1)
	go func() {
		defer cancel()
		items, err := a.load(lctx)

		a.mu.Lock()
		defer a.mu.Unlock()
		if gen != a.gen {
			// Superseded while in flight: report whatever is current,
			// never apply the stale result.
			done <- a.snap
			return
		}
		a.snap.Loading = false
		if err != nil {
			a.snap.Err = &FetchError{
				Timeout: errors.Is(err, context.DeadlineExceeded) || lctx.Err() == context.DeadlineExceeded,
				Err:     err,
			}
			a.snap.Items = []T{}
		} else {
			a.snap.Err = nil
			if items == nil {
				items = []T{}
			}
			a.snap.Items = items
		}
		done <- a.snap
	}()
	return done
}
