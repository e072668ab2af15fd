// ==============================================================================================
// FILE: ast/literal.go
// ==============================================================================================
// PURPOSE: The constant leaves of the AST: numbers, strings, booleans, and the None literal.
//          Each always produces the same Owned holder regardless of scope.
// ==============================================================================================

package ast

import "github.com/pyrite-lang/pyrite/object"

// NumberLiteral is a literal integer constant.
type NumberLiteral struct{ Value int64 }

func (n *NumberLiteral) Execute(*object.Scope) (object.Holder, error) {
	return object.Own(object.Number{V: n.Value}), nil
}

// StringLiteral is a literal string constant.
type StringLiteral struct{ Value string }

func (n *StringLiteral) Execute(*object.Scope) (object.Holder, error) {
	return object.Own(object.String{V: n.Value}), nil
}

// BoolLiteral is the `True`/`False` constant.
type BoolLiteral struct{ Value bool }

func (n *BoolLiteral) Execute(*object.Scope) (object.Holder, error) {
	return object.Own(object.Bool{V: n.Value}), nil
}

// NoneLiteral is the `None` constant.
type NoneLiteral struct{}

func (n *NoneLiteral) Execute(*object.Scope) (object.Holder, error) {
	return object.Own(object.None), nil
}
