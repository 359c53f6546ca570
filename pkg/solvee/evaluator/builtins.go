package evaluator

import (
	"math"
	"sort"

	serrors "github.com/GiuseppeAngenica/Solvee/pkg/solvee/errors"
)

// builtins is the immutable builtin table: math constants plus fixed-arity
// functions. NewScope copies it, so a document that shadows a name ("10 ==
// pi") never affects any other document. The set is part of the language's
// documented surface; additions are fine, renames are not.
var builtins = map[string]Object{
	// constants
	"pi":  &Number{Value: math.Pi},
	"e":   &Number{Value: math.E},
	"tau": &Number{Value: 2 * math.Pi},
	"inf": &Number{Value: math.Inf(1)},
	"nan": &Number{Value: math.NaN()},

	// one-argument functions
	"sqrt":    &Builtin{Name: "sqrt", Arity: 1, Fn: mathSqrt},
	"cbrt":    &Builtin{Name: "cbrt", Arity: 1, Fn: total1(math.Cbrt)},
	"exp":     &Builtin{Name: "exp", Arity: 1, Fn: total1(math.Exp)},
	"log":     &Builtin{Name: "log", Arity: 1, Fn: mathLog("log", math.Log)},
	"log2":    &Builtin{Name: "log2", Arity: 1, Fn: mathLog("log2", math.Log2)},
	"log10":   &Builtin{Name: "log10", Arity: 1, Fn: mathLog("log10", math.Log10)},
	"sin":     &Builtin{Name: "sin", Arity: 1, Fn: total1(math.Sin)},
	"cos":     &Builtin{Name: "cos", Arity: 1, Fn: total1(math.Cos)},
	"tan":     &Builtin{Name: "tan", Arity: 1, Fn: total1(math.Tan)},
	"asin":    &Builtin{Name: "asin", Arity: 1, Fn: mathArc("asin", math.Asin)},
	"acos":    &Builtin{Name: "acos", Arity: 1, Fn: mathArc("acos", math.Acos)},
	"atan":    &Builtin{Name: "atan", Arity: 1, Fn: total1(math.Atan)},
	"sinh":    &Builtin{Name: "sinh", Arity: 1, Fn: total1(math.Sinh)},
	"cosh":    &Builtin{Name: "cosh", Arity: 1, Fn: total1(math.Cosh)},
	"tanh":    &Builtin{Name: "tanh", Arity: 1, Fn: total1(math.Tanh)},
	"floor":   &Builtin{Name: "floor", Arity: 1, Fn: total1(math.Floor)},
	"ceil":    &Builtin{Name: "ceil", Arity: 1, Fn: total1(math.Ceil)},
	"trunc":   &Builtin{Name: "trunc", Arity: 1, Fn: total1(math.Trunc)},
	"round":   &Builtin{Name: "round", Arity: 1, Fn: total1(math.Round)},
	"abs":     &Builtin{Name: "abs", Arity: 1, Fn: total1(math.Abs)},
	"sign":    &Builtin{Name: "sign", Arity: 1, Fn: total1(mathSign)},
	"degrees": &Builtin{Name: "degrees", Arity: 1, Fn: total1(mathDegrees)},
	"radians": &Builtin{Name: "radians", Arity: 1, Fn: total1(mathRadians)},

	// two-argument functions
	"atan2": &Builtin{Name: "atan2", Arity: 2, Fn: total2(math.Atan2)},
	"hypot": &Builtin{Name: "hypot", Arity: 2, Fn: total2(math.Hypot)},
	"pow":   &Builtin{Name: "pow", Arity: 2, Fn: mathPow},
	"fmod":  &Builtin{Name: "fmod", Arity: 2, Fn: mathFmod},
	"min":   &Builtin{Name: "min", Arity: 2, Fn: total2(math.Min)},
	"max":   &Builtin{Name: "max", Arity: 2, Fn: total2(math.Max)},
}

// BuiltinNames returns the builtin table's names, sorted. Used for REPL
// completion and the :help listing.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// total1 adapts a total one-argument function (one that cannot fail).
func total1(f func(float64) float64) BuiltinFunction {
	return func(args ...float64) (float64, *serrors.SolveeError) {
		return f(args[0]), nil
	}
}

// total2 adapts a total two-argument function.
func total2(f func(float64, float64) float64) BuiltinFunction {
	return func(args ...float64) (float64, *serrors.SolveeError) {
		return f(args[0], args[1]), nil
	}
}

func mathSqrt(args ...float64) (float64, *serrors.SolveeError) {
	if args[0] < 0 {
		return 0, serrors.New("MATH-0002", map[string]any{
			"Detail": "square root of a negative number",
		})
	}
	return math.Sqrt(args[0]), nil
}

// mathLog wraps a logarithm, rejecting non-positive arguments.
func mathLog(name string, f func(float64) float64) BuiltinFunction {
	return func(args ...float64) (float64, *serrors.SolveeError) {
		if args[0] <= 0 {
			return 0, serrors.New("MATH-0002", map[string]any{
				"Detail": name + " of a non-positive number",
			})
		}
		return f(args[0]), nil
	}
}

// mathArc wraps asin/acos, whose domain is [-1, 1].
func mathArc(name string, f func(float64) float64) BuiltinFunction {
	return func(args ...float64) (float64, *serrors.SolveeError) {
		if args[0] < -1 || args[0] > 1 {
			return 0, serrors.New("MATH-0002", map[string]any{
				"Detail": name + " outside [-1, 1]",
			})
		}
		return f(args[0]), nil
	}
}

func mathPow(args ...float64) (float64, *serrors.SolveeError) {
	result := math.Pow(args[0], args[1])
	if math.IsNaN(result) && !math.IsNaN(args[0]) && !math.IsNaN(args[1]) {
		return 0, serrors.New("MATH-0002", map[string]any{
			"Detail": "fractional power of a negative number",
		})
	}
	return result, nil
}

func mathFmod(args ...float64) (float64, *serrors.SolveeError) {
	if args[1] == 0 {
		return 0, serrors.New("MATH-0001", nil)
	}
	return math.Mod(args[0], args[1]), nil
}

func mathSign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return v // 0, -0 and NaN pass through
	}
}

func mathDegrees(v float64) float64 { return v * 180 / math.Pi }

func mathRadians(v float64) float64 { return v * math.Pi / 180 }
