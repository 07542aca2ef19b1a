package command

import (
	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
)

// SIsMember is SISMEMBER key member.
type SIsMember struct {
	key    string
	member string
}

func parseSIsMember(args []resp.Frame) (Command, error) {
	if err := validateArity("sismember", len(args), 2, false); err != nil {
		return nil, err
	}
	key, err := bulkStringText("sismember", args[0])
	if err != nil {
		return nil, err
	}
	member, err := bulkStringText("sismember", args[1])
	if err != nil {
		return nil, err
	}
	return SIsMember{key: key, member: member}, nil
}

// Execute returns 1 if member belongs to set key, 0 otherwise.
func (c SIsMember) Execute(s *store.Store) resp.Frame {
	if s.SIsMember(c.key, c.member) {
		return resp.Integer(1)
	}
	return resp.Integer(0)
}
