// Package evaluator executes expression trees against a scope and drives
// the per-line document recompute: conversion first, then percentage
// rewriting, then assignment or plain evaluation, with per-line error
// suppression.
package evaluator

import (
	"math"

	"github.com/GiuseppeAngenica/Solvee/pkg/solvee/ast"
	serrors "github.com/GiuseppeAngenica/Solvee/pkg/solvee/errors"
)

// Eval evaluates an expression tree against a scope. The result is a
// *Number, a *Builtin (when a line names a function without calling it) or
// an *Error.
func Eval(node ast.Node, scope *Scope) Object {
	switch node := node.(type) {
	case *ast.NumberLiteral:
		return &Number{Value: node.Value}

	case *ast.Identifier:
		return evalIdentifier(node, scope)

	case *ast.PrefixExpression:
		right := Eval(node.Right, scope)
		if isError(right) {
			return right
		}
		return evalPrefixExpression(node, right)

	case *ast.InfixExpression:
		left := Eval(node.Left, scope)
		if isError(left) {
			return left
		}
		right := Eval(node.Right, scope)
		if isError(right) {
			return right
		}
		return evalInfixExpression(node, left, right)

	case *ast.CallExpression:
		return evalCallExpression(node, scope)
	}

	return newError("INTERNAL-0001", map[string]any{
		"message": "unhandled expression node",
	})
}

func evalIdentifier(node *ast.Identifier, scope *Scope) Object {
	if obj, ok := scope.Get(node.Value); ok {
		return obj
	}
	err := serrors.NewUndefinedIdentifier(node.Value, scope.Names())
	return &Error{Err: err.WithPosition(node.Token.Line, node.Token.Column)}
}

func evalPrefixExpression(node *ast.PrefixExpression, right Object) Object {
	num, ok := right.(*Number)
	if !ok {
		return operandError(node.Token.Line, node.Token.Column, right)
	}
	// the lexer only produces MINUS as a prefix operator
	return &Number{Value: -num.Value, Unit: num.Unit}
}

func evalInfixExpression(node *ast.InfixExpression, left, right Object) Object {
	l, ok := left.(*Number)
	if !ok {
		return operandError(node.Token.Line, node.Token.Column, left)
	}
	r, ok := right.(*Number)
	if !ok {
		return operandError(node.Token.Line, node.Token.Column, right)
	}

	switch node.Operator {
	case "+":
		return &Number{Value: l.Value + r.Value}
	case "-":
		return &Number{Value: l.Value - r.Value}
	case "*":
		return &Number{Value: l.Value * r.Value}
	case "/":
		if r.Value == 0 {
			return newErrorAt("MATH-0001", node.Token.Line, node.Token.Column, nil)
		}
		return &Number{Value: l.Value / r.Value}
	case "%":
		if r.Value == 0 {
			return newErrorAt("MATH-0001", node.Token.Line, node.Token.Column, nil)
		}
		return &Number{Value: math.Mod(l.Value, r.Value)}
	case "^":
		result := math.Pow(l.Value, r.Value)
		if math.IsNaN(result) && !math.IsNaN(l.Value) && !math.IsNaN(r.Value) {
			return newErrorAt("MATH-0002", node.Token.Line, node.Token.Column, map[string]any{
				"Detail": "fractional power of a negative number",
			})
		}
		return &Number{Value: result}
	}

	return newError("INTERNAL-0001", map[string]any{
		"message": "unhandled operator " + node.Operator,
	})
}

func evalCallExpression(node *ast.CallExpression, scope *Scope) Object {
	callee, ok := scope.Get(node.Function.Value)
	if !ok {
		err := serrors.NewUndefinedIdentifier(node.Function.Value, scope.Names())
		return &Error{Err: err.WithPosition(node.Function.Token.Line, node.Function.Token.Column)}
	}

	builtin, ok := callee.(*Builtin)
	if !ok {
		return newErrorAt("NAME-0002", node.Function.Token.Line, node.Function.Token.Column, map[string]any{
			"Name": node.Function.Value,
		})
	}

	if len(node.Arguments) != builtin.Arity {
		return newErrorAt("ARITY-0001", node.Token.Line, node.Token.Column, map[string]any{
			"Function": builtin.Name,
			"Got":      len(node.Arguments),
			"Want":     builtin.Arity,
		})
	}

	args := make([]float64, len(node.Arguments))
	for i, argNode := range node.Arguments {
		arg := Eval(argNode, scope)
		if isError(arg) {
			return arg
		}
		num, ok := arg.(*Number)
		if !ok {
			return operandError(node.Token.Line, node.Token.Column, arg)
		}
		args[i] = num.Value
	}

	result, err := builtin.Fn(args...)
	if err != nil {
		return &Error{Err: err.WithPosition(node.Token.Line, node.Token.Column)}
	}
	return &Number{Value: result}
}

// operandError reports a non-number where a number was required, e.g.
// "sin + 1" or "sqrt(cos)".
func operandError(line, column int, got Object) Object {
	name := string(got.Type())
	if b, ok := got.(*Builtin); ok {
		name = b.Name
	}
	return newErrorAt("NAME-0003", line, column, map[string]any{"Name": name})
}
