package guard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/stretchr/testify/require"
)

func TestReentrantCallRejected(t *testing.T) {
	g := New("test")
	var inner error
	err := g.Run(context.Background(), func(ctx context.Context) error {
		require.True(t, Held(ctx, g))
		inner = g.Run(ctx, func(context.Context) error {
			t.Fatal("re-entered")
			return nil
		})
		return nil
	})
	require.NoError(t, err)
	require.ErrorIs(t, inner, ErrReentrantCall)
	require.ErrorIs(t, inner, bridgeerrors.ErrPrecondition)

	// released afterwards
	require.NoError(t, g.Run(context.Background(), func(context.Context) error { return nil }))
}

func TestOtherGuardNotAffected(t *testing.T) {
	a, b := New("a"), New("b")
	err := a.Run(context.Background(), func(ctx context.Context) error {
		return b.Run(ctx, func(ctx context.Context) error {
			require.True(t, Held(ctx, a))
			require.True(t, Held(ctx, b))
			return nil
		})
	})
	require.NoError(t, err)
}

func TestReleasedOnErrorAndPanic(t *testing.T) {
	g := New("test")
	errBoom := errors.New("boom")
	require.ErrorIs(t, g.Run(context.Background(), func(context.Context) error { return errBoom }), errBoom)

	require.Panics(t, func() {
		_ = g.Run(context.Background(), func(context.Context) error { panic("boom") })
	})

	require.NoError(t, g.Run(context.Background(), func(context.Context) error { return nil }))
}

func TestReleaseIsIdempotent(t *testing.T) {
	g := New("test")
	_, release, err := g.Enter(context.Background())
	require.NoError(t, err)
	release()
	release()

	_, release, err = g.Enter(context.Background())
	require.NoError(t, err)
	release()
}

func TestSerializes(t *testing.T) {
	g := New("test")
	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = g.Run(context.Background(), func(context.Context) error {
				n := atomic.AddInt32(&inside, 1)
				if n > atomic.LoadInt32(&maxInside) {
					atomic.StoreInt32(&maxInside, n)
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
		}()
	}
	wg.Wait()
	require.Equal(t, int32(1), maxInside)
}

func TestEnterHonoursContext(t *testing.T) {
	g := New("test")
	_, release, err := g.Enter(context.Background())
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, _, err = g.Enter(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCallRejectsEntryWithAnyContext(t *testing.T) {
	g := New("test")
	done := make(chan error, 1)
	err := g.Run(context.Background(), func(ctx context.Context) error {
		return g.Call(ctx, func(context.Context) error {
			require.True(t, g.CallingOut())
			// a callback that drops the guarded context must not block on the held guard
			go func() {
				done <- g.Run(context.Background(), func(context.Context) error { return nil })
			}()
			select {
			case err := <-done:
				require.ErrorIs(t, err, ErrReentrantCall)
			case <-time.After(time.Second):
				t.Fatal("re-entry blocked")
			}
			return nil
		})
	})
	require.NoError(t, err)
	require.False(t, g.CallingOut())
	require.NoError(t, g.Run(context.Background(), func(context.Context) error { return nil }))
}
