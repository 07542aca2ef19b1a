// Package connloop is the accept-retry loop and per-connection request
// loop: an accept loop that retries temporary errors with backoff, and
// a per-connection loop that feeds bytes to the decoder, dispatches the
// resulting frame as a command, and writes back the encoded response.
package connloop

import "sync"

// Doner is the interface for a sync.WaitGroup that can only call Done.
type Doner interface {
	Done()
}

var _ Doner = (*sync.WaitGroup)(nil)
