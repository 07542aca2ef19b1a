package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// HMGet is HMGET key field [field ...].
type HMGet struct {
	key    string
	fields []string
}

func parseHMGet(args []resp.Frame) (Command, error) {
	if err := validateArity("hmget", len(args), 2, true); err != nil {
		return nil, err
	}
	key, err := bulkStringText("hmget", args[0])
	if err != nil {
		return nil, err
	}
	fields := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		f, err := bulkStringText("hmget", a)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return HMGet{key: key, fields: fields}, nil
}

// Execute returns an array with one element per requested field: the
// field's value, or Null if the hash or the field is absent.
func (c HMGet) Execute(s *store.Store) resp.Frame {
	results := make([]resp.Frame, len(c.fields))
	for i, f := range c.fields {
		if v, ok := s.HGet(c.key, f); ok {
			results[i] = v
		} else {
			results[i] = resp.Null()
		}
	}
	return resp.Array(results)
}
