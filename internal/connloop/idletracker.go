package connloop

import (
	"context"
	"net"
	"sync/atomic"
	"time"
)

// IdleTracker cancels a context when no connection it tracks has seen any
// read or write activity during a whole IdleTimeout window. A zero-value
// IdleTracker (IdleTimeout == 0) tracks nothing.
type IdleTracker struct {
	IdleTimeout time.Duration

	currentCounter  uint64
	previousCounter uint64
}

// Start launches the tracking goroutine, or calls d.Done immediately if
// IdleTimeout is <= 0.
func (t *IdleTracker) Start(ctx context.Context, cancel func(), d Doner) {
	if t.IdleTimeout <= 0 {
		d.Done()
		return
	}
	go t.track(ctx, cancel, d)
}

func (t *IdleTracker) track(ctx context.Context, cancel func(), d Doner) {
	defer d.Done()

	done := ctx.Done()
	for {
		select {
		case <-time.After(t.IdleTimeout):
			current := atomic.LoadUint64(&t.currentCounter)
			previous := atomic.LoadUint64(&t.previousCounter)
			if current == previous {
				cancel()
				return
			}
			atomic.CompareAndSwapUint64(&t.previousCounter, previous, current)
		case <-done:
			return
		}
	}
}

// Touch notifies the tracker of activity.
func (t *IdleTracker) Touch() {
	atomic.AddUint64(&t.currentCounter, 1)
}

var _ net.Conn = activityConn{}

type activityConn struct {
	net.Conn
	i *uint64
}

func (c activityConn) Read(b []byte) (int, error) {
	atomic.AddUint64(c.i, 1)
	return c.Conn.Read(b)
}

func (c activityConn) Write(b []byte) (int, error) {
	atomic.AddUint64(c.i, 1)
	return c.Conn.Write(b)
}

// TrackConn wraps c so every Read/Write counts as activity.
func (t *IdleTracker) TrackConn(c net.Conn) net.Conn {
	if t.IdleTimeout <= 0 {
		return c
	}
	return activityConn{c, &t.currentCounter}
}
