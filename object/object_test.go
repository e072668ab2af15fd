// ==============================================================================================
// FILE: object/object_test.go
// ==============================================================================================

package object

import "testing"

func TestPrintForms(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"number", Number{V: 42}, "42"},
		{"negative number", Number{V: -3}, "-3"},
		{"string", String{V: "hello"}, "hello"},
		{"bool true", Bool{V: true}, "True"},
		{"bool false", Bool{V: false}, "False"},
		{"none", NoneValue{}, "None"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.v.Print(); got != c.want {
				t.Fatalf("Print() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestHolderTruthiness(t *testing.T) {
	cases := []struct {
		name string
		h    Holder
		want bool
	}{
		{"empty holder", EmptyHolder, false},
		{"none value", Own(None), false},
		{"zero number", Own(Number{V: 0}), false},
		{"nonzero number", Own(Number{V: 1}), true},
		{"empty string", Own(String{V: ""}), false},
		{"nonempty string", Own(String{V: "x"}), true},
		{"false bool", Own(Bool{V: false}), false},
		{"true bool", Own(Bool{V: true}), true},
		{"class ref", Own(&Class{Name: "Animal"}), false},
		{"instance", Own(NewInstance(&Class{Name: "Animal"})), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.h.IsTrue(); got != c.want {
				t.Fatalf("IsTrue() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestHolderEmptyVsNoneValue(t *testing.T) {
	empty := EmptyHolder
	noneHolder := Own(None)

	if !empty.IsEmpty() {
		t.Fatalf("EmptyHolder.IsEmpty() = false, want true")
	}
	if noneHolder.IsEmpty() {
		t.Fatalf("Own(None).IsEmpty() = true, want false")
	}
	if empty.Value().Print() != noneHolder.Value().Print() {
		t.Fatalf("empty and None holders should print the same textual form")
	}
}

func TestTryAsNarrowing(t *testing.T) {
	h := Own(Number{V: 7})
	n, ok := TryAs[Number](h)
	if !ok || n.V != 7 {
		t.Fatalf("TryAs[Number] = %v, %v; want 7, true", n, ok)
	}
	if _, ok := TryAs[String](h); ok {
		t.Fatalf("TryAs[String] on a Number holder should fail")
	}
}

func TestScopeGetSetHas(t *testing.T) {
	s := NewScope()
	if s.Has("x") {
		t.Fatalf("fresh scope should not have x")
	}
	s.Set("x", Own(Number{V: 10}))
	h, ok := s.Get("x")
	if !ok {
		t.Fatalf("expected x to be bound")
	}
	n, _ := TryAs[Number](h)
	if n.V != 10 {
		t.Fatalf("x = %d, want 10", n.V)
	}
	s.Set("x", Own(Number{V: 20}))
	h, _ = s.Get("x")
	n, _ = TryAs[Number](h)
	if n.V != 20 {
		t.Fatalf("x after reassignment = %d, want 20", n.V)
	}
}

func TestClassMethodLookupDeclarationOrderThenParent(t *testing.T) {
	animal := &Class{
		Name: "Animal",
		Methods: []*Method{
			{Name: "speak"},
			{Name: "eat"},
		},
	}
	dog := &Class{
		Name:   "Dog",
		Parent: animal,
		Methods: []*Method{
			{Name: "speak"}, // overrides Animal.speak
			{Name: "fetch"},
		},
	}

	if m := dog.GetMethod("speak"); m == nil || m != dog.Methods[0] {
		t.Fatalf("GetMethod(speak) should resolve to Dog's own override")
	}
	if m := dog.GetMethod("eat"); m == nil || m != animal.Methods[1] {
		t.Fatalf("GetMethod(eat) should fall through to Animal's declaration")
	}
	if m := dog.GetMethod("fly"); m != nil {
		t.Fatalf("GetMethod(fly) should be nil, got %v", m)
	}
}

func TestClassIsSubclassOf(t *testing.T) {
	animal := &Class{Name: "Animal"}
	dog := &Class{Name: "Dog", Parent: animal}
	cat := &Class{Name: "Cat", Parent: animal}

	if !dog.IsSubclassOf(animal) {
		t.Fatalf("Dog should be a subclass of Animal")
	}
	if !dog.IsSubclassOf(dog) {
		t.Fatalf("a class is always its own subclass")
	}
	if dog.IsSubclassOf(cat) {
		t.Fatalf("Dog should not be a subclass of Cat")
	}
}

func TestNewInstanceFieldsStartWithOnlySelf(t *testing.T) {
	c := &Class{Name: "Point"}
	inst := NewInstance(c)
	if inst.Fields == nil {
		t.Fatalf("Fields scope should be initialized, not nil")
	}
	if !inst.Fields.Has("self") {
		t.Fatalf("a fresh instance should carry its self back-reference")
	}
	if inst.Fields.Has("x") {
		t.Fatalf("a fresh instance should have no fields besides self yet")
	}
}

func TestInstancePrintIsOpaque(t *testing.T) {
	c := &Class{Name: "Point"}
	inst := NewInstance(c)
	want := "<Point instance>"
	if got := inst.Print(); got != want {
		t.Fatalf("Print() = %q, want %q", got, want)
	}
}
