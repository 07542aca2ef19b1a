package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// Set is SET key value. value may be any frame, not just BulkString.
type Set struct {
	key   string
	value resp.Frame
}

func parseSet(args []resp.Frame) (Command, error) {
	if err := validateArity("set", len(args), 2, false); err != nil {
		return nil, err
	}
	key, err := bulkStringText("set", args[0])
	if err != nil {
		return nil, err
	}
	return Set{key: key, value: args[1]}, nil
}

// Execute overwrites the string-namespace value for key and replies OK.
func (c Set) Execute(s *store.Store) resp.Frame {
	s.Set(c.key, c.value)
	return okFrame
}
