package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// SAdd is SADD key member [member ...].
type SAdd struct {
	key     string
	members []string
}

func parseSAdd(args []resp.Frame) (Command, error) {
	if err := validateArity("sadd", len(args), 2, true); err != nil {
		return nil, err
	}
	key, err := bulkStringText("sadd", args[0])
	if err != nil {
		return nil, err
	}
	members := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		m, err := bulkStringText("sadd", a)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return SAdd{key: key, members: members}, nil
}

// Execute adds every member to set key and returns the count of those
// that were newly added.
func (c SAdd) Execute(s *store.Store) resp.Frame {
	var added int64
	for _, m := range c.members {
		if s.SAdd(c.key, m) {
			added++
		}
	}
	return resp.Integer(added)
}
