// ==============================================================================================
// FILE: object/class.go
// ==============================================================================================
// PURPOSE: The class model: Class (a ClassRef value, holding its own method list and optional
//          parent), Method (name, parameter names, body), and ClassInstance (a class pointer plus
//          a flat field Scope). Method lookup walks declaration order within a class, then the
//          parent chain (no overload resolution by arity; arity is checked only once a method is
//          actually found, at call time).
// ==============================================================================================

package object

// MethodBody is satisfied by ast.Compound; object cannot import ast (ast
// imports object for Scope/Holder), so the body is kept abstract here and
// executed by whatever calls Method.Body.Execute.
type MethodBody interface {
	Execute(scope *Scope) (Holder, error)
}

// Method is one class member function: a name, its declared parameter
// names (not counting the implicit receiver), and a body.
type Method struct {
	Name   string
	Params []string
	Body   MethodBody
}

// Class is the runtime representation of a `class` statement: a ClassRef
// value in its own right (so `SomeClass` can be referenced, though it is
// always falsy and prints only its own name), carrying its declared methods
// and an optional parent for single inheritance.
type Class struct {
	Name    string
	Parent  *Class
	Methods []*Method
}

func (*Class) Kind() Kind      { return KindClass }
func (c *Class) Print() string { return c.Name }

// GetMethod looks up name in declaration order within c, then recurses up
// the parent chain. Returns nil if no class in the chain declares the
// method.
func (c *Class) GetMethod(name string) *Method {
	for cur := c; cur != nil; cur = cur.Parent {
		for _, m := range cur.Methods {
			if m.Name == name {
				return m
			}
		}
	}
	return nil
}

// IsSubclassOf reports whether c is other or descends from other,
// walking the parent chain.
func (c *Class) IsSubclassOf(other *Class) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// ClassInstance is a live object: a pointer to its Class plus a flat,
// mutable field Scope. Fields come into existence the first time they are
// assigned, so Fields starts with only the `self` back-reference that
// NewInstance installs.
type ClassInstance struct {
	Class  *Class
	Fields *Scope
}

func (*ClassInstance) Kind() Kind { return KindInstance }

// Print renders a ClassInstance in its opaque default form. An instance
// whose class declares __str__ is given a chance to override this, but
// that requires invoking a method body, something Print cannot do without
// an evaluation context, so that dispatch lives in ast's renderText helper
// (shared by Print and Stringify) instead; renderText only falls back to
// this Print for instances with no __str__.
func (ci *ClassInstance) Print() string {
	return "<" + ci.Class.Name + " instance>"
}

// NewInstance allocates an instance of c whose only field, initially, is a
// borrowed "self" back-reference to itself. Borrowed, because Go's garbage
// collector already owns the instance's lifetime, and nothing about the
// self-cycle this creates should be allowed to look like an additional
// owner.
func NewInstance(c *Class) *ClassInstance {
	ci := &ClassInstance{Class: c, Fields: NewScope()}
	ci.Fields.Set("self", Borrow(ci))
	return ci
}
