// ==============================================================================================
// FILE: ast/class.go
// ==============================================================================================
// PURPOSE: ClassDefinition, NewInstance, MethodCall, and the callMethod helper every method
//          dispatch funnels through. Each call gets a fresh Scope seeded with a copy of the
//          instance's fields, `self`, and the bound parameters, rather than writing parameters
//          directly into the instance's own fields (which would overwrite same-named fields for
//          the call's duration and leak afterward). Because the copy is seeded from the fields,
//          a method body can read a field by its bare name as well as through `self.`.
// ==============================================================================================

package ast

import (
	"github.com/pyrite-lang/pyrite/langerr"
	"github.com/pyrite-lang/pyrite/object"
)

// ClassDefinition installs Class under its own name in scope.
type ClassDefinition struct {
	Class *object.Class
}

func (cd *ClassDefinition) Execute(scope *object.Scope) (object.Holder, error) {
	h := object.Own(cd.Class)
	scope.Set(cd.Class.Name, h)
	bound, _ := scope.Get(cd.Class.Name)
	return bound, nil
}

// NewInstance constructs a fresh instance of Class and, if it declares an
// __init__ whose arity matches the supplied arguments, calls it and
// discards its return value.
type NewInstance struct {
	Class *object.Class
	Args  []Node
}

func (ni *NewInstance) Execute(scope *object.Scope) (object.Holder, error) {
	inst := object.NewInstance(ni.Class)

	if m := ni.Class.GetMethod("__init__"); m != nil && len(m.Params) == len(ni.Args) {
		args := make([]object.Holder, len(ni.Args))
		for i, a := range ni.Args {
			h, err := a.Execute(scope)
			if err != nil {
				return object.Holder{}, err
			}
			args[i] = h
		}
		if _, err := callMethod(inst, m, args); err != nil {
			return object.Holder{}, err
		}
	}

	return object.Own(inst), nil
}

// MethodCall evaluates Receiver (must resolve to a ClassInstance),
// evaluates Args left to right, and dispatches via the instance's class.
type MethodCall struct {
	Receiver Node
	Method   string
	Args     []Node
}

func (mc *MethodCall) Execute(scope *object.Scope) (object.Holder, error) {
	recvHolder, err := mc.Receiver.Execute(scope)
	if err != nil {
		return object.Holder{}, err
	}
	inst, ok := object.TryAs[*object.ClassInstance](recvHolder)
	if !ok {
		return object.Holder{}, langerr.NewRuntime("method call target is not a class instance")
	}

	m := inst.Class.GetMethod(mc.Method)
	if m == nil {
		return object.Holder{}, langerr.NewRuntime("class %s has no method %s", inst.Class.Name, mc.Method)
	}

	args := make([]object.Holder, len(mc.Args))
	for i, a := range mc.Args {
		h, err := a.Execute(scope)
		if err != nil {
			return object.Holder{}, err
		}
		args[i] = h
	}

	return callMethod(inst, m, args)
}

// callMethod runs m's body in a fresh Scope copied from inst's fields, then
// overlaid with `self` and the bound parameters, and executes m's body
// against that scope. Starting from a copy means a bare-name read inside
// the body resolves against the instance's fields, while a parameter
// sharing a field's name wins for the duration of the call. Writes made
// through `self.name = ...` still land on inst's own fields, not on this
// copy, so they persist after the call returns; a plain assignment to a
// bare name only rebinds the copy and is discarded when the call ends.
func callMethod(inst *object.ClassInstance, m *object.Method, args []object.Holder) (object.Holder, error) {
	if len(args) != len(m.Params) {
		return object.Holder{}, langerr.NewRuntime("not all arguments provided")
	}

	callScope := object.NewScope()
	for _, name := range inst.Fields.Names() {
		h, _ := inst.Fields.Get(name)
		callScope.Set(name, h)
	}
	callScope.Set("self", object.Borrow(inst))
	for i, name := range m.Params {
		callScope.Set(name, args[i])
	}

	return m.Body.Execute(callScope)
}
