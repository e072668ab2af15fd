// ==============================================================================================
// FILE: ast/arithmetic.go
// ==============================================================================================
// PURPOSE: Add, Sub, Mult, Div. Add's __add__ path evaluates its RHS once, in the outer scope,
//          and passes the resulting value into the method call, rather than re-evaluating it
//          against the instance's own field scope, which would let an RHS expression resolve
//          unrelated names against the wrong scope.
// ==============================================================================================

package ast

import (
	"github.com/pyrite-lang/pyrite/langerr"
	"github.com/pyrite-lang/pyrite/object"
)

// Add implements `lhs + rhs`: operator-overload dispatch on a ClassInstance
// with an arity-1 `__add__`, else Number+Number, else String+String.
type Add struct{ LHS, RHS Node }

func (a *Add) Execute(scope *object.Scope) (object.Holder, error) {
	lhsHolder, err := a.LHS.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}

	if inst, ok := object.TryAs[*object.ClassInstance](lhsHolder); ok {
		if m := inst.Class.GetMethod("__add__"); m != nil && len(m.Params) == 1 {
			rhsHolder, err := a.RHS.Execute(scope)
			if err != nil {
				return object.Holder{}, err
			}
			return callMethod(inst, m, []object.Holder{rhsHolder})
		}
	}

	rhsHolder, err := a.RHS.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}

	if ln, ok := object.TryAs[object.Number](lhsHolder); ok {
		if rn, ok := object.TryAs[object.Number](rhsHolder); ok {
			return object.Own(object.Number{V: ln.V + rn.V}), nil
		}
	}
	if ls, ok := object.TryAs[object.String](lhsHolder); ok {
		if rs, ok := object.TryAs[object.String](rhsHolder); ok {
			return object.Own(object.String{V: ls.V + rs.V}), nil
		}
	}
	return object.Holder{}, langerr.NewRuntime("invalid arguments")
}

// Sub implements `lhs - rhs`: Number-only.
type Sub struct{ LHS, RHS Node }

func (s *Sub) Execute(scope *object.Scope) (object.Holder, error) {
	ln, rn, err := numericOperands(scope, s.LHS, s.RHS)
	if err != nil {
		return object.Holder{}, err
	}
	return object.Own(object.Number{V: ln.V - rn.V}), nil
}

// Mult implements `lhs * rhs`: Number-only.
type Mult struct{ LHS, RHS Node }

func (m *Mult) Execute(scope *object.Scope) (object.Holder, error) {
	ln, rn, err := numericOperands(scope, m.LHS, m.RHS)
	if err != nil {
		return object.Holder{}, err
	}
	return object.Own(object.Number{V: ln.V * rn.V}), nil
}

// Div implements `lhs / rhs`: Number-only, truncating toward zero (Go's
// native integer division semantics). Division by zero panics with a
// runtime division error rather than being intercepted.
type Div struct{ LHS, RHS Node }

func (d *Div) Execute(scope *object.Scope) (object.Holder, error) {
	ln, rn, err := numericOperands(scope, d.LHS, d.RHS)
	if err != nil {
		return object.Holder{}, err
	}
	return object.Own(object.Number{V: ln.V / rn.V}), nil
}

func numericOperands(scope *object.Scope, lhs, rhs Node) (object.Number, object.Number, error) {
	lhsHolder, err := lhs.Execute(scope)
	if err != nil {
		return object.Number{}, object.Number{}, err
	}
	rhsHolder, err := rhs.Execute(scope)
	if err != nil {
		return object.Number{}, object.Number{}, err
	}
	ln, ok := object.TryAs[object.Number](lhsHolder)
	if !ok {
		return object.Number{}, object.Number{}, langerr.NewRuntime("invalid arguments")
	}
	rn, ok := object.TryAs[object.Number](rhsHolder)
	if !ok {
		return object.Number{}, object.Number{}, langerr.NewRuntime("invalid arguments")
	}
	return ln, rn, nil
}
