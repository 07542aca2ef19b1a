package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// HSet is HSET key field value. value may be any frame.
type HSet struct {
	key   string
	field string
	value resp.Frame
}

func parseHSet(args []resp.Frame) (Command, error) {
	if err := validateArity("hset", len(args), 3, false); err != nil {
		return nil, err
	}
	key, err := bulkStringText("hset", args[0])
	if err != nil {
		return nil, err
	}
	field, err := bulkStringText("hset", args[1])
	if err != nil {
		return nil, err
	}
	return HSet{key: key, field: field, value: args[2]}, nil
}

// Execute overwrites field's value in hash key, creating the hash if it
// doesn't exist, and replies OK.
func (c HSet) Execute(s *store.Store) resp.Frame {
	s.HSet(c.key, c.field, c.value)
	return okFrame
}
