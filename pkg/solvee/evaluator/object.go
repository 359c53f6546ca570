package evaluator

import (
	"fmt"

	serrors "github.com/GiuseppeAngenica/Solvee/pkg/solvee/errors"
	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/units"
)

// ObjectType identifies the runtime type of a value.
type ObjectType string

const (
	NUMBER_OBJ  = "NUMBER"
	BUILTIN_OBJ = "BUILTIN"
	ERROR_OBJ   = "ERROR"
)

// Object is implemented by every runtime value the evaluator produces.
type Object interface {
	Type() ObjectType
	Inspect() string
}

// Number is the single numeric type: a float64 magnitude with an optional
// unit. Plain expressions and scope variables are always dimensionless
// (Unit == nil); unit-bearing numbers exist only inside the conversion
// resolver's quantity arithmetic.
type Number struct {
	Value float64
	Unit  *units.Unit
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }

func (n *Number) Inspect() string {
	if n.Unit != nil {
		return FormatNumber(n.Value) + " " + n.Unit.DisplayLabel()
	}
	return FormatNumber(n.Value)
}

// BuiltinFunction is the signature shared by all builtin functions. Arity
// is checked by the evaluator before the call, so implementations may index
// args directly.
type BuiltinFunction func(args ...float64) (float64, *serrors.SolveeError)

// Builtin is a named fixed-arity function seeded into every fresh scope.
type Builtin struct {
	Name  string
	Arity int
	Fn    BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }

func (b *Builtin) Inspect() string {
	return fmt.Sprintf("<builtin function %s>", b.Name)
}

// Error wraps a structured error as an evaluation result so that it can
// flow out of Eval like any other object.
type Error struct {
	Err *serrors.SolveeError
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }

func (e *Error) Inspect() string { return "ERROR: " + e.Err.Message }

// newError builds an Error result from the catalog.
func newError(code string, data map[string]any) *Error {
	return &Error{Err: serrors.New(code, data)}
}

// newErrorAt builds an Error result carrying the position of tok.
func newErrorAt(code string, line, column int, data map[string]any) *Error {
	return &Error{Err: serrors.NewWithPosition(code, line, column, data)}
}

// isError reports whether obj is an error result. Used to short-circuit
// evaluation on the first failure.
func isError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}
