// ==============================================================================================
// FILE: object/object.go
// ==============================================================================================
// PACKAGE: object
// PURPOSE: The runtime value universe (Number, String, Bool, Class, ClassInstance, and the
//          language-level None), plus the textual form each one prints as. Value is a closed,
//          tag-dispatched union on purpose: method dispatch on ClassInstance is the only place
//          real polymorphism is needed, and it is handled by Class.GetMethod instead.
// ==============================================================================================

package object

import "fmt"

// Kind tags which Value variant a given value is.
type Kind int

const (
	KindNone Kind = iota
	KindNumber
	KindString
	KindBool
	KindClass
	KindInstance
)

// Value is the closed set of runtime value variants. Every Value also knows
// how to print its canonical textual form.
type Value interface {
	Kind() Kind
	Print() string
}

// Number is an owned, by-value integer (the language has no floating point).
type Number struct{ V int64 }

func (Number) Kind() Kind        { return KindNumber }
func (n Number) Print() string   { return fmt.Sprintf("%d", n.V) }

// String is an owned, by-value string.
type String struct{ V string }

func (String) Kind() Kind      { return KindString }
func (s String) Print() string { return s.V }

// Bool is an owned, by-value boolean.
type Bool struct{ V bool }

func (Bool) Kind() Kind { return KindBool }
func (b Bool) Print() string {
	if b.V {
		return "True"
	}
	return "False"
}

// NoneValue is the language-level `None` literal, a Value in its own right,
// distinct from an empty Holder even though both print as "None" and are
// both falsy.
type NoneValue struct{}

func (NoneValue) Kind() Kind      { return KindNone }
func (NoneValue) Print() string   { return "None" }

// None is the shared instance of the language-level None value.
var None Value = NoneValue{}
