// ==============================================================================================
// FILE: ast/ast.go
// ==============================================================================================
// PACKAGE: ast
// PURPOSE: The statement/expression node family and their Execute contracts. There is no
//          separate evaluator package: each node owns its own evaluation rule via its own Execute
//          method. A Compound's return-propagation rule is the one place that needs to know what
//          kind of child it just ran, so Node stays a closed, type-switched interface rather than
//          something more generic.
// ==============================================================================================

package ast

import "github.com/pyrite-lang/pyrite/object"

// Node is any statement or expression: the one contract every AST member
// satisfies. Expressions and statements are not distinguished at the type
// level: every variant gets the same Execute(scope) shape, and Pyrite has
// no statement-only or expression-only positions that would need the
// distinction enforced by the type system.
type Node interface {
	Execute(scope *object.Scope) (object.Holder, error)
}
