// ==============================================================================================
// FILE: ast/variable.go
// ==============================================================================================
// PURPOSE: VariableValue (dotted-path lookup), Assignment, and FieldAssignment: the three nodes
//          that read or write a Scope or a ClassInstance's fields.
// ==============================================================================================

package ast

import (
	"github.com/pyrite-lang/pyrite/langerr"
	"github.com/pyrite-lang/pyrite/object"
)

// VariableValue is a dotted identifier chain: `x` (length 1) or `x.field`
// (length 2). Chains longer than two are rejected outright with a runtime
// error rather than silently truncated or walked arbitrarily deep.
type VariableValue struct {
	DottedIDs []string
}

// NewVariableValue builds a single-segment VariableValue, the common case.
func NewVariableValue(name string) *VariableValue {
	return &VariableValue{DottedIDs: []string{name}}
}

func (v *VariableValue) Execute(scope *object.Scope) (object.Holder, error) {
	switch len(v.DottedIDs) {
	case 1:
		h, ok := scope.Get(v.DottedIDs[0])
		if !ok {
			return object.Holder{}, langerr.NewRuntime("variable is not defined: %s", v.DottedIDs[0])
		}
		return h, nil
	case 2:
		head, ok := scope.Get(v.DottedIDs[0])
		if !ok {
			return object.Holder{}, langerr.NewRuntime("variable is not defined: %s", v.DottedIDs[0])
		}
		inst, ok := object.TryAs[*object.ClassInstance](head)
		if !ok {
			return object.Holder{}, langerr.NewRuntime("%s is not a class instance", v.DottedIDs[0])
		}
		field, ok := inst.Fields.Get(v.DottedIDs[1])
		if !ok {
			return object.Holder{}, langerr.NewRuntime("variable is not defined: %s.%s", v.DottedIDs[0], v.DottedIDs[1])
		}
		return field, nil
	default:
		return object.Holder{}, langerr.NewRuntime("dotted path too deep: %v", v.DottedIDs)
	}
}

// Assignment evaluates RHS and binds it under Name in scope, returning
// the bound holder.
type Assignment struct {
	Name  string
	Value Node
}

func (a *Assignment) Execute(scope *object.Scope) (object.Holder, error) {
	h, err := a.Value.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	scope.Set(a.Name, h)
	bound, _ := scope.Get(a.Name)
	return bound, nil
}

// FieldAssignment evaluates Target to a ClassInstance, evaluates Value in
// the outer (caller's) scope, not the instance's fields, and binds
// FieldName in the instance's own fields.
type FieldAssignment struct {
	Target    *VariableValue
	FieldName string
	Value     Node
}

func (f *FieldAssignment) Execute(scope *object.Scope) (object.Holder, error) {
	targetHolder, err := f.Target.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	inst, ok := object.TryAs[*object.ClassInstance](targetHolder)
	if !ok {
		return object.Holder{}, langerr.NewRuntime("field assignment target is not a class instance")
	}
	valueHolder, err := f.Value.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	inst.Fields.Set(f.FieldName, valueHolder)
	stored, _ := inst.Fields.Get(f.FieldName)
	return stored, nil
}
