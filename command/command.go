// Package command implements the dispatcher that turns a decoded array
// frame into one of the supported commands, validates it, and executes
// it against a store.Store.
package command

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/harfangapps/regis-kv/resp"
	"github.com/harfangapps/regis-kv/store"
	"github.com/pkg/errors"
)

// Command is one parsed, ready-to-run request.
type Command interface {
	Execute(s *store.Store) resp.Frame
}

// factory parses the arguments following the command name (req[1:], as
// raw frames) into a Command, or returns an error describing why the
// request doesn't fit that command's shape.
type factory func(args []resp.Frame) (Command, error)

// assigned in init, mirroring server/server.go's supportedCommands map
var (
	supportedCommands map[string]factory
	commandNames      []string
)

func init() {
	supportedCommands = map[string]factory{
		"echo":      parseEcho,
		"get":       parseGet,
		"set":       parseSet,
		"hget":      parseHGet,
		"hset":      parseHSet,
		"hgetall":   parseHGetAll,
		"hmget":     parseHMGet,
		"sadd":      parseSAdd,
		"smembers":  parseSMembers,
		"sismember": parseSIsMember,
	}

	for k := range supportedCommands {
		commandNames = append(commandNames, k)
	}
	sort.Strings(commandNames)
}

// okFrame is the canned response for SET, HSET, and unrecognized
// command names.
var okFrame = resp.SimpleString("OK")

// Dispatch parses req (the full request array, including the command
// name as its first element) and executes it against s. Any error
// returned is a dispatch-level error (ErrEmptyCommand, ErrInvalidCommand,
// ErrInvalidArgument, ErrInvalidUTF8); these don't imply the connection
// should close, only that the caller should reply with a SimpleError.
func Dispatch(req resp.Frame, s *store.Store) (resp.Frame, error) {
	elements, isArray := req.Elements()
	if req.Kind() != resp.KindArray || !isArray {
		return resp.Frame{}, errors.Wrap(ErrInvalidCommand, "request must be a non-null array")
	}
	if len(elements) == 0 {
		return resp.Frame{}, ErrEmptyCommand
	}

	if !elements[0].IsBulkString() {
		return resp.Frame{}, errors.Wrap(ErrInvalidCommand, "command name must be a bulk string")
	}
	rawName, _ := elements[0].Bulk()
	name := strings.ToLower(string(rawName))

	parse, ok := supportedCommands[name]
	if !ok {
		return Unrecognized{}.Execute(s), nil
	}

	cmd, err := parse(elements[1:])
	if err != nil {
		return resp.Frame{}, err
	}
	return cmd.Execute(s), nil
}

// validateArity checks got against want according to variadic: if
// variadic, got must be >= want; otherwise got must equal want exactly.
func validateArity(name string, got, want int, variadic bool) error {
	if variadic {
		if got >= want {
			return nil
		}
		return errors.Wrapf(ErrInvalidArgument, "%s: expected at least %d arguments, got %d", name, want, got)
	}
	if got == want {
		return nil
	}
	return errors.Wrapf(ErrInvalidArgument, "%s: expected %d arguments, got %d", name, want, got)
}

// errInvalidArgf wraps ErrInvalidArgument with a formatted message.
func errInvalidArgf(name, msg string) error {
	return errors.Wrapf(ErrInvalidArgument, "%s: %s", name, msg)
}

// bulkStringText extracts a UTF-8 string from a frame that must be a
// non-null BulkString.
func bulkStringText(name string, f resp.Frame) (string, error) {
	if !f.IsBulkString() {
		return "", errors.Wrapf(ErrInvalidArgument, "%s: argument must be a bulk string", name)
	}
	b, _ := f.Bulk()
	if !utf8.Valid(b) {
		return "", errors.Wrapf(ErrInvalidUTF8, "%s: argument is not valid utf-8", name)
	}
	return string(b), nil
}
