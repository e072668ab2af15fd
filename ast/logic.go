// ==============================================================================================
// FILE: ast/logic.go
// ==============================================================================================
// PURPOSE: Or, And, Not, Comparison. Or/And evaluate both sides unconditionally (no
//          short-circuit), so a side effect on the right-hand side always runs regardless of
//          the left-hand side's truth value.
// ==============================================================================================

package ast

import "github.com/pyrite-lang/pyrite/object"

// Or evaluates both sides (no short-circuit) and returns an owned Bool.
type Or struct{ LHS, RHS Node }

func (o *Or) Execute(scope *object.Scope) (object.Holder, error) {
	lh, err := o.LHS.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	rh, err := o.RHS.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	return object.Own(object.Bool{V: lh.IsTrue() || rh.IsTrue()}), nil
}

// And evaluates both sides (no short-circuit) and returns an owned Bool.
type And struct{ LHS, RHS Node }

func (a *And) Execute(scope *object.Scope) (object.Holder, error) {
	lh, err := a.LHS.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	rh, err := a.RHS.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	return object.Own(object.Bool{V: lh.IsTrue() && rh.IsTrue()}), nil
}

// Not negates the truthiness of its operand.
type Not struct{ Operand Node }

func (n *Not) Execute(scope *object.Scope) (object.Holder, error) {
	h, err := n.Operand.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	return object.Own(object.Bool{V: !h.IsTrue()}), nil
}

// Comparator is the pluggable (left, right) -> bool function a Comparison
// node applies.
type Comparator func(lhs, rhs object.Holder) bool

// Comparison evaluates both sides and applies Cmp, returning an owned
// Bool. The four derived comparators (!=, <=, >=, >) are defined below in
// this file by composing Equal/Less with negation and swapped operands.
type Comparison struct {
	LHS, RHS Node
	Cmp      Comparator
}

func (c *Comparison) Execute(scope *object.Scope) (object.Holder, error) {
	lh, err := c.LHS.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	rh, err := c.RHS.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	return object.Own(object.Bool{V: c.Cmp(lh, rh)}), nil
}

// Equal is the `==` comparator.
func Equal(lhs, rhs object.Holder) bool { return object.Equal(lhs, rhs) }

// Less is the `<` comparator.
func Less(lhs, rhs object.Holder) bool { return object.Less(lhs, rhs) }

// NotEqual is the `!=` comparator, derived from Equal.
func NotEqual(lhs, rhs object.Holder) bool { return !object.Equal(lhs, rhs) }

// Greater is the `>` comparator, derived from Less with swapped operands.
func Greater(lhs, rhs object.Holder) bool { return object.Less(rhs, lhs) }

// LessOrEqual is the `<=` comparator: not greater-than.
func LessOrEqual(lhs, rhs object.Holder) bool { return !object.Less(rhs, lhs) }

// GreaterOrEqual is the `>=` comparator: not less-than.
func GreaterOrEqual(lhs, rhs object.Holder) bool { return !object.Less(lhs, rhs) }
