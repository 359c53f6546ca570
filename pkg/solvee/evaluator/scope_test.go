package evaluator

import (
	"math"
	"testing"
)

func TestScopeSetGet(t *testing.T) {
	scope := NewScope()

	if _, ok := scope.Get("x"); ok {
		t.Fatal("x should not resolve in a fresh scope")
	}

	scope.Set("x", &Number{Value: 15})
	obj, ok := scope.Get("x")
	if !ok {
		t.Fatal("x not found after Set")
	}
	if obj.(*Number).Value != 15 {
		t.Errorf("x = %v, expected 15", obj.(*Number).Value)
	}
}

func TestScopeShadowsBuiltins(t *testing.T) {
	scope := NewScope()

	obj, ok := scope.Get("pi")
	if !ok || obj.(*Number).Value != math.Pi {
		t.Fatal("fresh scope should resolve pi to the constant")
	}

	scope.Set("pi", &Number{Value: 10})
	obj, _ = scope.Get("pi")
	if obj.(*Number).Value != 10 {
		t.Errorf("shadowed pi = %v, expected 10", obj.(*Number).Value)
	}
}

func TestScopeIsolation(t *testing.T) {
	a := NewScope()
	b := NewScope()

	a.Set("pi", &Number{Value: 10})

	obj, _ := b.Get("pi")
	if obj.(*Number).Value != math.Pi {
		t.Error("shadowing pi in one scope must not leak into another")
	}
}

func TestScopeVariables(t *testing.T) {
	scope := NewScope()
	scope.Set("x", &Number{Value: 1})
	scope.Set("rate", &Number{Value: 2})
	scope.Set("pi", &Number{Value: 3}) // shadowed builtin counts as a variable

	vars := scope.Variables()
	if len(vars) != 3 {
		t.Fatalf("Variables() returned %d entries, expected 3", len(vars))
	}
	if _, ok := vars["sqrt"]; ok {
		t.Error("unshadowed builtins must not appear in Variables()")
	}

	names := scope.VariableNames()
	expected := []string{"pi", "rate", "x"}
	if len(names) != len(expected) {
		t.Fatalf("VariableNames() = %v", names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("VariableNames()[%d] = %q, expected %q", i, names[i], expected[i])
		}
	}
}

func TestScopeNamesContainBuiltinsAndVariables(t *testing.T) {
	scope := NewScope()
	scope.Set("myvar", &Number{Value: 1})

	names := scope.Names()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	for _, required := range []string{"pi", "sqrt", "myvar"} {
		if !found[required] {
			t.Errorf("Names() missing %q", required)
		}
	}
}
