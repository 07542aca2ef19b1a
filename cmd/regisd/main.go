// Command regisd listens for RESP connections and serves them against a
// single shared in-memory store.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"

	"github.com/harfangapps/regis-kv/internal/connloop"
	"github.com/harfangapps/regis-kv/store"
)

var (
	addrFlag         = flag.String("addr", "127.0.0.1:6380", "Listen `address`.")
	writeTimeoutFlag = flag.Duration("write-timeout", 0, "Write `timeout` before a connection is dropped. 0 disables it.")
	idleTimeoutFlag  = flag.Duration("idle-timeout", 0, "Shut down after this long without activity on any connection. 0 disables it.")
	shardsFlag       = flag.Int("shards", 0, "Number of shards per namespace in the backend store. 0 uses the default.")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	addr, err := net.ResolveTCPAddr("tcp", *addrFlag)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	l, err := net.ListenTCP("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	s := newStore(*shardsFlag)
	handler := &connloop.Handler{Store: s, WriteTimeout: *writeTimeoutFlag}

	server := &connloop.RetryServer{
		Listener: l,
		Dispatch: handler.ServeConn,
	}
	server.IdleTracker.IdleTimeout = *idleTimeoutFlag

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		<-ch
		cancel()
	}()

	log.Printf("listening on %s", l.Addr())
	err = server.Serve(ctx)
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func newStore(shards int) *store.Store {
	if shards <= 0 {
		return store.New()
	}
	return store.NewWithShards(shards)
}
