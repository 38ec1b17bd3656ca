package decode

import (
	"errors"
	"fmt"
)

var ErrFormat = errors.New("unsupported format")

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type OptionError struct {
	Option string
	Panel  string
	Value  string
}

func (e OptionError) Error() string {
	return fmt.Sprintf("%s: invalid value %q for option %s", e.Panel, e.Value, e.Option)
}

type DecodeError struct {
	Message string
	File    string
	Position
}

func (e DecodeError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s: %s", e.Position, e.Message)
	}
	return fmt.Sprintf("%s:%s: %s", e.File, e.Position, e.Message)
}
