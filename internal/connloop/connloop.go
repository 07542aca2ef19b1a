package connloop

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/harfangapps/regis-kv/command"
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
	"github.com/pkg/errors"
)

// readChunkSize is how many bytes ServeConn asks the connection for at a
// time when the buffer doesn't yet hold a complete frame.
const readChunkSize = 4096

// Handler turns an accepted connection into a request/response loop over
// a Store. ErrChan is an optional error reporting channel; WriteTimeout
// is an optional deadline before a write is considered hung.
type Handler struct {
	Store        *store.Store
	ErrChan      chan<- error
	WriteTimeout time.Duration
}

// ServeConn is the Dispatch function a RetryServer.Dispatch field
// expects: it runs the connection's request loop until the connection
// errors, the client disconnects, or ctx is canceled, then closes conn
// and calls d.Done.
func (h *Handler) ServeConn(ctx context.Context, d Doner, conn net.Conn) {
	wg := &sync.WaitGroup{}
	ctx, cancel := context.WithCancel(ctx)
	done := ctx.Done()

	defer func() {
		conn.Close()
		cancel()
		wg.Wait()
		d.Done()
	}()

	wg.Add(1)
	go h.readWriteLoop(cancel, wg, conn)

	<-done
}

func (h *Handler) readWriteLoop(cancel func(), d Doner, conn net.Conn) {
	defer func() {
		cancel()
		d.Done()
	}()

	buf := resp.NewBuffer()
	dec := resp.NewDecoder(buf)
	chunk := make([]byte, readChunkSize)

	for {
		req, err := h.decodeNext(dec, buf, conn, chunk)
		if err != nil {
			err = errors.Wrap(err, "decode request error")
			HandleError(err, h.ErrChan)
			return
		}

		res, err := command.Dispatch(req, h.Store)
		if err != nil {
			res = resp.SimpleError(err.Error())
		}

		if h.WriteTimeout > 0 {
			if err := conn.SetWriteDeadline(time.Now().Add(h.WriteTimeout)); err != nil {
				HandleError(errors.Wrap(err, "set write deadline"), h.ErrChan)
				return
			}
		}
		if _, err := conn.Write(resp.Encode(res)); err != nil {
			HandleError(errors.Wrap(err, "write response error"), h.ErrChan)
			return
		}
	}
}

// decodeNext reads from conn into buf, retrying Decode, until a frame is
// complete. Any error other than resp.ErrNeedMore is fatal for the
// connection: a malformed frame can't be resynchronized against, so the
// loop gives up rather than guess where the next frame starts.
func (h *Handler) decodeNext(dec *resp.Decoder, buf *resp.Buffer, conn net.Conn, chunk []byte) (resp.Frame, error) {
	for {
		frame, err := dec.Decode()
		if err == nil {
			return frame, nil
		}
		if !resp.IsNeedMore(err) {
			return resp.Frame{}, err
		}

		n, err := conn.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if err != nil {
			return resp.Frame{}, err
		}
	}
}
