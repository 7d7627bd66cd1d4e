// Package greeting formats the command-line greeting.
//
// Arguments carries the single positional argument (a name); Greeting turns
// it into "Hello, <name>!". An empty name is a usage error reported by
// Validate so that the command can exit with status ExitNoArguments.
package greeting

import (
	"errors"
	"fmt"
)

// DefaultName is used by DefaultGreeting.
const DefaultName = "world"

// ExitNoArguments is the process exit status when no name was given.
const ExitNoArguments = 1

// ErrNoArguments indicates that no name was supplied.
var ErrNoArguments = errors.New("greeting: no arguments")

// Arguments holds the parsed positional arguments.
type Arguments struct {
	Name string
}

// NewArguments returns empty Arguments.
func NewArguments() Arguments { return Arguments{} }

// ArgumentsFrom returns Arguments for the given name.
func ArgumentsFrom(name string) Arguments { return Arguments{Name: name} }

// ArgumentsFromArgs takes the first positional argument, or an empty name
// when there is none. argv excludes the program name.
func ArgumentsFromArgs(argv []string) Arguments {
	if len(argv) == 0 {
		return NewArguments()
	}

	return ArgumentsFrom(argv[0])
}

// Validate returns ErrNoArguments for an empty name.
func (a Arguments) Validate() error {
	if a.Name == "" {
		return ErrNoArguments
	}

	return nil
}

// String implements fmt.Stringer.
func (a Arguments) String() string {
	return fmt.Sprintf("Arguments{Name: %q}", a.Name)
}

// Greeting returns "Hello, <name>!".
func Greeting(a Arguments) string {
	return fmt.Sprintf("Hello, %s!", a.Name)
}

// DefaultGreeting returns "Hello, world!".
func DefaultGreeting() string {
	return Greeting(ArgumentsFrom(DefaultName))
}
