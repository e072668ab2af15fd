// ==============================================================================================
// FILE: ast/control.go
// ==============================================================================================
// PURPOSE: Compound, Return, IfElse: the control-flow nodes, and the return-propagation rule
//          that stitches them together. A child's non-empty result only propagates outward when
//          that child was itself a Return, an IfElse, or a nested Compound; any other statement
//          kind's result (an Assignment's bound holder, a FieldAssignment's stored holder, and so
//          on) is discarded, since only those three shapes can carry a `return` up from somewhere
//          deeper in the tree.
// ==============================================================================================

package ast

import "github.com/pyrite-lang/pyrite/object"

// Compound is an ordered list of statements, a block body. It executes
// each child in order and implements return-propagation: once a Return,
// IfElse, or nested Compound child produces a non-empty holder, Compound
// stops and returns that holder immediately rather than running the
// remaining statements.
type Compound struct {
	Statements []Node
}

func (c *Compound) Execute(scope *object.Scope) (object.Holder, error) {
	for _, stmt := range c.Statements {
		result, err := stmt.Execute(scope)
		if err != nil {
			return object.Holder{}, err
		}

		switch stmt.(type) {
		case *Return, *IfElse, *Compound:
			if !result.IsEmpty() {
				return result, nil
			}
		}
	}
	return object.EmptyHolder, nil
}

// Return executes its sub-statement and returns its value unchanged; the
// enclosing Compound is what actually detects and propagates it.
type Return struct {
	Value Node
}

func (r *Return) Execute(scope *object.Scope) (object.Holder, error) {
	return r.Value.Execute(scope)
}

// IfElse evaluates Condition for truthiness and executes whichever branch
// applies. With no Else and a false Condition, it returns an empty
// holder.
type IfElse struct {
	Condition Node
	ThenBody  Node
	ElseBody  Node // nil when there is no else clause
}

func (ie *IfElse) Execute(scope *object.Scope) (object.Holder, error) {
	cond, err := ie.Condition.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	if cond.IsTrue() {
		return ie.ThenBody.Execute(scope)
	}
	if ie.ElseBody != nil {
		return ie.ElseBody.Execute(scope)
	}
	return object.EmptyHolder, nil
}
