package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// Unrecognized is any command name outside the supported set. It is
// silently accepted rather than rejected, which masks client typos
// but keeps the connection open for a client that sent a command name
// this server doesn't implement yet.
type Unrecognized struct{}

// Execute always replies OK.
func (c Unrecognized) Execute(s *store.Store) resp.Frame {
	return okFrame
}
