// ==============================================================================================
// FILE: parser/parser_test.go
// ==============================================================================================

package parser

import (
	"testing"

	"github.com/pyrite-lang/pyrite/ast"
)

func mustParse(t *testing.T, src string) *ast.Compound {
	t.Helper()
	prog, err := ParseProgram(src)
	if err != nil {
		t.Fatalf("ParseProgram(%q) failed: %v", src, err)
	}
	return prog
}

func TestParseSimpleArithmeticStatement(t *testing.T) {
	prog := mustParse(t, "print 1 + 2\n")
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	p, ok := prog.Statements[0].(*ast.Print)
	if !ok {
		t.Fatalf("expected *ast.Print, got %T", prog.Statements[0])
	}
	add, ok := p.Args[0].(*ast.Add)
	if !ok {
		t.Fatalf("expected *ast.Add, got %T", p.Args[0])
	}
	if _, ok := add.LHS.(*ast.NumberLiteral); !ok {
		t.Fatalf("expected LHS NumberLiteral, got %T", add.LHS)
	}
}

func TestParseAssignment(t *testing.T) {
	prog := mustParse(t, "x = 10\n")
	assign, ok := prog.Statements[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected *ast.Assignment, got %T", prog.Statements[0])
	}
	if assign.Name != "x" {
		t.Fatalf("got name %q, want x", assign.Name)
	}
}

func TestParseIfElse(t *testing.T) {
	src := "x = 10\nif x > 5:\n  print \"big\"\nelse:\n  print \"small\"\n"
	prog := mustParse(t, src)
	if len(prog.Statements) != 2 {
		t.Fatalf("expected 2 top-level statements, got %d", len(prog.Statements))
	}
	ie, ok := prog.Statements[1].(*ast.IfElse)
	if !ok {
		t.Fatalf("expected *ast.IfElse, got %T", prog.Statements[1])
	}
	if ie.ElseBody == nil {
		t.Fatalf("expected an else body")
	}
}

func TestParseClassWithInheritanceAndMethodCalls(t *testing.T) {
	src := "" +
		"class A:\n" +
		"  def hi(self):\n" +
		"    return \"A\"\n" +
		"class B(A):\n" +
		"  def hi(self):\n" +
		"    return \"B\"\n" +
		"print B().hi()\n" +
		"print A().hi()\n"
	prog := mustParse(t, src)
	if len(prog.Statements) != 4 {
		t.Fatalf("expected 4 top-level statements, got %d", len(prog.Statements))
	}
	classB, ok := prog.Statements[1].(*ast.ClassDefinition)
	if !ok {
		t.Fatalf("expected *ast.ClassDefinition, got %T", prog.Statements[1])
	}
	if classB.Class.Parent == nil || classB.Class.Parent.Name != "A" {
		t.Fatalf("expected B's parent to be A, got %v", classB.Class.Parent)
	}
	printB, ok := prog.Statements[2].(*ast.Print)
	if !ok {
		t.Fatalf("expected *ast.Print, got %T", prog.Statements[2])
	}
	call, ok := printB.Args[0].(*ast.MethodCall)
	if !ok {
		t.Fatalf("expected *ast.MethodCall, got %T", printB.Args[0])
	}
	if call.Method != "hi" {
		t.Fatalf("got method %q, want hi", call.Method)
	}
	if _, ok := call.Receiver.(*ast.NewInstance); !ok {
		t.Fatalf("expected receiver *ast.NewInstance, got %T", call.Receiver)
	}
}

func TestParseClassWithInitAndFieldAssignment(t *testing.T) {
	src := "" +
		"class P:\n" +
		"  def __init__(self, n):\n" +
		"    self.n = n\n" +
		"  def __str__(self):\n" +
		"    return str(self.n)\n" +
		"p = P(7)\n" +
		"print p\n"
	prog := mustParse(t, src)
	classDef, ok := prog.Statements[0].(*ast.ClassDefinition)
	if !ok {
		t.Fatalf("expected *ast.ClassDefinition, got %T", prog.Statements[0])
	}
	initMethod := classDef.Class.GetMethod("__init__")
	if initMethod == nil {
		t.Fatalf("expected __init__ to be declared")
	}
	if len(initMethod.Params) != 1 || initMethod.Params[0] != "n" {
		t.Fatalf("expected __init__ params [n] (self stripped), got %v", initMethod.Params)
	}
	body, ok := initMethod.Body.(*ast.Compound)
	if !ok {
		t.Fatalf("expected method body *ast.Compound, got %T", initMethod.Body)
	}
	fa, ok := body.Statements[0].(*ast.FieldAssignment)
	if !ok {
		t.Fatalf("expected *ast.FieldAssignment, got %T", body.Statements[0])
	}
	if fa.FieldName != "n" {
		t.Fatalf("got field name %q, want n", fa.FieldName)
	}

	assign, ok := prog.Statements[1].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected *ast.Assignment, got %T", prog.Statements[1])
	}
	if _, ok := assign.Value.(*ast.NewInstance); !ok {
		t.Fatalf("expected assignment RHS *ast.NewInstance, got %T", assign.Value)
	}
}

func TestParseReturnThroughNestedIfElse(t *testing.T) {
	src := "" +
		"class C:\n" +
		"  def m(self):\n" +
		"    if True:\n" +
		"      return 1\n" +
		"    print 2\n"
	prog := mustParse(t, src)
	classDef := prog.Statements[0].(*ast.ClassDefinition)
	m := classDef.Class.GetMethod("m")
	body := m.Body.(*ast.Compound)
	if len(body.Statements) != 2 {
		t.Fatalf("expected 2 statements in method body, got %d", len(body.Statements))
	}
	if _, ok := body.Statements[0].(*ast.IfElse); !ok {
		t.Fatalf("expected first statement *ast.IfElse, got %T", body.Statements[0])
	}
}

func TestParseComparisonOperators(t *testing.T) {
	cases := []string{
		"print 1 == 2\n",
		"print 1 != 2\n",
		"print 1 <= 2\n",
		"print 1 >= 2\n",
		"print 1 < 2\n",
		"print 1 > 2\n",
	}
	for _, src := range cases {
		prog := mustParse(t, src)
		p := prog.Statements[0].(*ast.Print)
		if _, ok := p.Args[0].(*ast.Comparison); !ok {
			t.Fatalf("%q: expected *ast.Comparison, got %T", src, p.Args[0])
		}
	}
}

func TestParseOrAndNot(t *testing.T) {
	prog := mustParse(t, "print True or False and not False\n")
	p := prog.Statements[0].(*ast.Print)
	if _, ok := p.Args[0].(*ast.Or); !ok {
		t.Fatalf("expected top-level *ast.Or, got %T", p.Args[0])
	}
}

func TestParseUnexpectedTokenFails(t *testing.T) {
	_, err := ParseProgram("print )\n")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}
