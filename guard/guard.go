// Package guard serializes the state transitions of one component and rejects re-entrant calls.
//
// An operation acquires the guard and receives a derived context. Calls out of the operation
// (asset capabilities, verifiers) run through Call, which marks the guard as busy while they are
// in flight. Any guarded operation entered during that window is rejected at once, whichever
// context it carries; it never waits for the outer operation it would otherwise deadlock on.
package guard

import (
	"context"
	"sync/atomic"

	"github.com/0xPolygon/obridge/bridgeerrors"
)

// ErrReentrantCall is returned when a guarded operation is entered from inside another one
var ErrReentrantCall = bridgeerrors.New(bridgeerrors.ErrPrecondition, "reentrant call")

type ctxKey struct {
	g *Guard
}

// Guard is a per-instance non-reentrant lock
type Guard struct {
	name     string
	sem      chan struct{}
	inFlight atomic.Int32
}

// New returns a released guard
func New(name string) *Guard {
	return &Guard{
		name: name,
		sem:  make(chan struct{}, 1),
	}
}

// Name of the component owning the guard
func (g *Guard) Name() string {
	return g.name
}

// Enter waits for the guard and returns the context to pass downstream together with the
// release func, which must be called on every exit path. It fails fast with ErrReentrantCall
// when ctx was derived inside g or when g is calling out.
func (g *Guard) Enter(ctx context.Context) (context.Context, func(), error) {
	if Held(ctx, g) || g.CallingOut() {
		return nil, nil, ErrReentrantCall
	}
	select {
	case g.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
	var released atomic.Bool
	release := func() {
		if released.CompareAndSwap(false, true) {
			<-g.sem
		}
	}
	return context.WithValue(ctx, ctxKey{g: g}, struct{}{}), release, nil
}

// Run executes fn while holding the guard
func (g *Guard) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	guarded, release, err := g.Enter(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(guarded)
}

// Call runs fn, a call out of a guarded operation. Until it returns every Enter on g fails.
func (g *Guard) Call(ctx context.Context, fn func(ctx context.Context) error) error {
	g.inFlight.Add(1)
	defer g.inFlight.Add(-1)
	return fn(ctx)
}

// CallingOut reports whether a Call is in flight
func (g *Guard) CallingOut() bool {
	return g.inFlight.Load() > 0
}

// Held reports whether ctx was derived inside g
func Held(ctx context.Context, g *Guard) bool {
	return ctx.Value(ctxKey{g: g}) != nil
}
