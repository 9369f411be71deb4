package interpreter

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lox-lang/lox/internal/loxerrors"
	"github.com/lox-lang/lox/internal/token"
)

// environment is the single flat namespace mapping variable names to runtime
// values. Define overwrites unconditionally; there are no nested frames in
// this language version.
type environment struct {
	values map[string]any
}

func NewEnvironment() *environment {
	return &environment{}
}

func (e *environment) Define(name string, value any) {
	if e.values == nil {
		e.values = make(map[string]any)
	}
	e.values[name] = value
}

func (e *environment) Get(name *token.Token) (any, error) {
	if value, ok := e.values[name.Lexeme]; ok {
		return value, nil
	}

	return nil, e.undefinedVariable(name)
}

// Names returns the bound variable names in sorted order.
func (e *environment) Names() []string {
	names := maps.Keys(e.values)
	slices.Sort(names)
	return names
}

func (e *environment) undefinedVariable(name *token.Token) error {
	return loxerrors.NewRuntimeError(name, loxerrors.ErrRuntimeUndefinedVariableError(name.Lexeme))
}

func (e *environment) String() string {
	w := new(strings.Builder)

	w.WriteString("{")
	for _, name := range e.Names() {
		fmt.Fprintf(w, "%s=%v,", name, e.values[name])
	}
	w.WriteString("}")

	return w.String()
}

var _ fmt.Stringer = (*environment)(nil)
