package connloop

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// RetryServer accepts connections on a Listener, retrying temporary
// Accept errors with exponential backoff, and dispatches each accepted
// connection to a handler goroutine.
type RetryServer struct {
	// Listener to accept connections from.
	Listener net.Listener

	// Dispatch is called in a goroutine for each accepted connection. On
	// exit it must close conn and call d.Done.
	Dispatch func(ctx context.Context, d Doner, conn net.Conn)

	// If non-nil, errors are reported on this channel (non-blocking
	// send, dropped if it would block). If nil, errors are logged.
	ErrChan chan<- error

	// If IdleTracker.IdleTimeout > 0, the server shuts itself down after
	// that long without any read/write activity on any connection.
	IdleTracker IdleTracker

	wg sync.WaitGroup
}

// Serve blocks accepting connections until ctx is canceled or the
// Listener returns a non-temporary error. It always returns a non-nil
// error.
func (s *RetryServer) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	done := ctx.Done()

	defer func() {
		s.Listener.Close()
		cancel()
		s.wg.Wait()
	}()

	s.wg.Add(1)
	go func() {
		<-done
		s.Listener.Close()
		s.wg.Done()
	}()

	s.wg.Add(1)
	s.IdleTracker.Start(ctx, cancel, &s.wg)

	var delay time.Duration
	for {
		conn, err := s.Listener.Accept()
		if err != nil {
			err = errors.Wrap(err, "accept error")

			select {
			case <-done:
				return err
			default:
			}

			if s.handleTemporary(&delay, err) {
				continue
			}
			return err
		}

		delay = 0
		s.IdleTracker.Touch()
		s.wg.Add(1)
		go s.Dispatch(ctx, &s.wg, s.IdleTracker.TrackConn(conn))
	}
}

// handleTemporary sleeps for an increasing delay and reports true if err
// is a temporary error worth retrying.
func (s *RetryServer) handleTemporary(delay *time.Duration, err error) bool {
	root := errors.Cause(err)

	if te, ok := root.(interface{ Temporary() bool }); ok && te.Temporary() {
		if *delay == 0 {
			*delay = 5 * time.Millisecond
		} else {
			*delay *= 2
		}
		if max := 1 * time.Second; *delay > max {
			*delay = max
		}

		HandleError(errors.Wrap(err, fmt.Sprintf("temporary error, retrying in %v", *delay)), s.ErrChan)
		time.Sleep(*delay)
		return true
	}

	return false
}

// HandleError sends err on errChan (dropped if the send would block), or
// logs it if errChan is nil.
func HandleError(err error, errChan chan<- error) {
	select {
	case errChan <- err:
	default:
		if errChan == nil {
			log.Print(err)
		}
	}
}
