package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// Echo is ECHO value.
type Echo struct {
	value resp.Frame
}

func parseEcho(args []resp.Frame) (Command, error) {
	if err := validateArity("echo", len(args), 1, false); err != nil {
		return nil, err
	}
	if !args[0].IsBulkString() {
		return nil, errInvalidArgf("echo", "value must be a bulk string")
	}
	return Echo{value: args[0]}, nil
}

// Execute returns its argument unchanged.
func (c Echo) Execute(s *store.Store) resp.Frame {
	return c.value
}
