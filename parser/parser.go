// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: A recursive-descent parser with Pratt-style expression parsing, consuming the
//          Lexer's Current()/Next() token stream and building ast nodes, keyed by a prefix/infix
//          function table per token kind. The Indent/Dedent tokens the Lexer already synthesizes
//          let block structure be parsed with ordinary recursive descent; no separate layout pass
//          is needed here.
// ==============================================================================================

package parser

import (
	"github.com/pyrite-lang/pyrite/ast"
	"github.com/pyrite-lang/pyrite/langerr"
	"github.com/pyrite-lang/pyrite/lexer"
	"github.com/pyrite-lang/pyrite/object"
	"github.com/pyrite-lang/pyrite/token"
)

// Precedence levels, lowest to highest:
// or, and, not, comparisons, +/-, */divide, unary, call/field-access, atom.
const (
	_ int = iota
	lowest
	orPrec
	andPrec
	notPrec
	comparePrec
	sumPrec
	productPrec
	unaryPrec
	callPrec
)

var precedences = map[token.Kind]int{
	token.Or:          orPrec,
	token.And:         andPrec,
	token.Eq:          comparePrec,
	token.NotEq:       comparePrec,
	token.LessOrEq:    comparePrec,
	token.GreaterOrEq: comparePrec,
}

// Parser builds an ast.Node tree from a Lexer's token stream.
type Parser struct {
	l *lexer.Lexer

	// resolvedClasses lets `class Dog(Animal):` look up Animal's *object.Class
	// by name; Pyrite has no forward references, so a parent must already
	// have been parsed by the time a subclass names it.
	resolvedClasses map[string]*object.Class
}

// New constructs a Parser over source text using the lexer's default
// two-space indent unit.
func New(source string) *Parser {
	return NewWithIndent(source, 0)
}

// NewWithIndent constructs a Parser over source text using indentUnit
// spaces per nesting level (0 or negative falls back to the default).
func NewWithIndent(source string, indentUnit int) *Parser {
	return &Parser{l: lexer.NewWithIndent(source, indentUnit), resolvedClasses: make(map[string]*object.Class)}
}

func (p *Parser) cur() token.Token  { return p.l.Current() }
func (p *Parser) next() token.Token { return p.l.Next() }

func (p *Parser) errorf(format string, args ...any) error {
	c := p.cur()
	return langerr.NewLex(c.Line, c.Column, format, args...)
}

func (p *Parser) expect(kind token.Kind) error {
	if p.cur().Kind != kind {
		return p.errorf("expected %s, got %s", kind, p.cur().Kind)
	}
	return nil
}

func (p *Parser) expectAndConsume(kind token.Kind) error {
	if err := p.expect(kind); err != nil {
		return err
	}
	p.next()
	return nil
}

// ParseProgram parses the entire token stream as one Compound of
// top-level statements, using the lexer's default two-space indent unit.
func ParseProgram(source string) (*ast.Compound, error) {
	p := New(source)
	return p.parseProgram()
}

// ParseProgramWithIndent is ParseProgram with an explicit indent width.
func ParseProgramWithIndent(source string, indentUnit int) (*ast.Compound, error) {
	p := NewWithIndent(source, indentUnit)
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Compound, error) {
	var stmts []ast.Node
	for p.cur().Kind != token.Eof {
		if p.cur().Kind == token.Newline {
			p.next()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Compound{Statements: stmts}, nil
}

// parseSuite parses an indented block: Newline Indent stmt* Dedent.
func (p *Parser) parseSuite() (*ast.Compound, error) {
	if err := p.expectAndConsume(token.Newline); err != nil {
		return nil, err
	}
	if err := p.expectAndConsume(token.Indent); err != nil {
		return nil, err
	}
	var stmts []ast.Node
	for p.cur().Kind != token.Dedent && p.cur().Kind != token.Eof {
		if p.cur().Kind == token.Newline {
			p.next()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if err := p.expectAndConsume(token.Dedent); err != nil {
		return nil, err
	}
	return &ast.Compound{Statements: stmts}, nil
}

func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur().Kind {
	case token.Class:
		return p.parseClassDefinition()
	case token.If:
		return p.parseIfElse()
	case token.Print:
		return p.parsePrint()
	case token.Return:
		return p.parseReturn()
	default:
		return p.parseAssignmentOrExpressionStatement()
	}
}

func (p *Parser) endStatement() error {
	switch p.cur().Kind {
	case token.Newline:
		p.next()
		return nil
	case token.Eof, token.Dedent:
		return nil
	default:
		return p.errorf("expected end of statement, got %s", p.cur().Kind)
	}
}

func (p *Parser) parsePrint() (ast.Node, error) {
	p.next() // consume 'print'
	var args []ast.Node
	for {
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur().Kind == token.Char && p.cur().Str == "," {
			p.next()
			continue
		}
		break
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &ast.Print{Args: args}, nil
}

func (p *Parser) parseReturn() (ast.Node, error) {
	p.next() // consume 'return'
	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return &ast.Return{Value: expr}, nil
}

func (p *Parser) parseIfElse() (ast.Node, error) {
	p.next() // consume 'if'
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectAndConsumeChar(":"); err != nil {
		return nil, err
	}
	thenBody, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	ie := &ast.IfElse{Condition: cond, ThenBody: thenBody}
	if p.cur().Kind == token.Else {
		p.next()
		if err := p.expectAndConsumeChar(":"); err != nil {
			return nil, err
		}
		elseBody, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		ie.ElseBody = elseBody
	}
	return ie, nil
}

// curIsChar/expectChar match (Kind, Str) pairs rather than dedicated
// Kinds for every punctuation mark, since the lexer reports single
// characters uniformly as token.Char with the rune as its Str payload.
func (p *Parser) curIsChar(s string) bool {
	return p.cur().Kind == token.Char && p.cur().Str == s
}

func (p *Parser) expectChar(s string) error {
	if !p.curIsChar(s) {
		return p.errorf("expected %q, got %s", s, p.cur().Kind)
	}
	return nil
}

func (p *Parser) expectAndConsumeChar(s string) error {
	if err := p.expectChar(s); err != nil {
		return err
	}
	p.next()
	return nil
}

// parseAssignmentOrExpressionStatement disambiguates `name = expr`,
// `target.field = expr`, and a bare expression statement, all of which
// begin with an identifier (or another primary expression) under LL(1)
// lookahead on '='.
func (p *Parser) parseAssignmentOrExpressionStatement() (ast.Node, error) {
	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if p.curIsChar("=") {
		p.next()
		rhs, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if err := p.endStatement(); err != nil {
			return nil, err
		}
		switch target := expr.(type) {
		case *ast.VariableValue:
			if len(target.DottedIDs) == 1 {
				return &ast.Assignment{Name: target.DottedIDs[0], Value: rhs}, nil
			}
			if len(target.DottedIDs) == 2 {
				return &ast.FieldAssignment{
					Target:    ast.NewVariableValue(target.DottedIDs[0]),
					FieldName: target.DottedIDs[1],
					Value:     rhs,
				}, nil
			}
			return nil, p.errorf("invalid assignment target")
		default:
			return nil, p.errorf("invalid assignment target")
		}
	}
	if err := p.endStatement(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseClassDefinition() (ast.Node, error) {
	p.next() // consume 'class'
	if err := p.expect(token.Id); err != nil {
		return nil, err
	}
	name := p.cur().Str
	p.next()

	class := &object.Class{Name: name}

	if p.curIsChar("(") {
		p.next()
		if err := p.expect(token.Id); err != nil {
			return nil, err
		}
		parentName := p.cur().Str
		p.next()
		parentClass, ok := p.resolvedClasses[parentName]
		if !ok {
			return nil, p.errorf("unknown parent class %s", parentName)
		}
		class.Parent = parentClass
		if err := p.expectAndConsumeChar(")"); err != nil {
			return nil, err
		}
	}

	if err := p.expectAndConsumeChar(":"); err != nil {
		return nil, err
	}
	if err := p.expectAndConsume(token.Newline); err != nil {
		return nil, err
	}
	if err := p.expectAndConsume(token.Indent); err != nil {
		return nil, err
	}

	for p.cur().Kind != token.Dedent && p.cur().Kind != token.Eof {
		if p.cur().Kind == token.Newline {
			p.next()
			continue
		}
		method, err := p.parseMethod()
		if err != nil {
			return nil, err
		}
		class.Methods = append(class.Methods, method)
	}
	if err := p.expectAndConsume(token.Dedent); err != nil {
		return nil, err
	}

	p.resolvedClasses[name] = class
	return &ast.ClassDefinition{Class: class}, nil
}

func (p *Parser) parseMethod() (*object.Method, error) {
	if err := p.expectAndConsume(token.Def); err != nil {
		return nil, err
	}
	if err := p.expect(token.Id); err != nil {
		return nil, err
	}
	name := p.cur().Str
	p.next()
	if err := p.expectAndConsumeChar("("); err != nil {
		return nil, err
	}
	var params []string
	for !p.curIsChar(")") {
		if err := p.expect(token.Id); err != nil {
			return nil, err
		}
		params = append(params, p.cur().Str)
		p.next()
		if p.curIsChar(",") {
			p.next()
		}
	}
	p.next() // consume ')'
	if err := p.expectAndConsumeChar(":"); err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	// The first declared parameter is the implicit receiver, `self`; it
	// is not part of the call-time arity since callMethod always seeds
	// `self` itself (object/class.go, ast/class.go).
	if len(params) > 0 && params[0] == "self" {
		params = params[1:]
	}
	return &object.Method{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) parseExpression(precedence int) (ast.Node, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind != token.Newline && p.cur().Kind != token.Eof && precedence < p.currentPrecedence() {
		left, err = p.parseInfix(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *Parser) currentPrecedence() int {
	if p.curIsChar("+") || p.curIsChar("-") {
		return sumPrec
	}
	if p.curIsChar("*") || p.curIsChar("/") {
		return productPrec
	}
	if p.curIsChar(">") {
		return comparePrec
	}
	if p.curIsChar("<") {
		return comparePrec
	}
	if p.curIsChar(".") {
		return callPrec
	}
	if prec, ok := precedences[p.cur().Kind]; ok {
		return prec
	}
	return lowest
}

// parsePrefix parses an atom or a prefix operator: literals, identifiers
// (which may turn out to be a variable, a constructor call, or the `str`
// builtin), parenthesized sub-expressions, unary `not`, and unary `-`.
func (p *Parser) parsePrefix() (ast.Node, error) {
	switch p.cur().Kind {
	case token.Number:
		v := p.cur().Int
		p.next()
		return &ast.NumberLiteral{Value: v}, nil
	case token.String:
		v := p.cur().Str
		p.next()
		return &ast.StringLiteral{Value: v}, nil
	case token.True:
		p.next()
		return &ast.BoolLiteral{Value: true}, nil
	case token.False:
		p.next()
		return &ast.BoolLiteral{Value: false}, nil
	case token.None:
		p.next()
		return &ast.NoneLiteral{}, nil
	case token.Not:
		p.next()
		operand, err := p.parseExpression(notPrec)
		if err != nil {
			return nil, err
		}
		return &ast.Not{Operand: operand}, nil
	case token.Id:
		return p.parseIdentifierExpression()
	case token.Char:
		switch p.cur().Str {
		case "(":
			p.next()
			expr, err := p.parseExpression(lowest)
			if err != nil {
				return nil, err
			}
			if err := p.expectAndConsumeChar(")"); err != nil {
				return nil, err
			}
			return expr, nil
		case "-":
			p.next()
			operand, err := p.parseExpression(unaryPrec)
			if err != nil {
				return nil, err
			}
			return &ast.Sub{LHS: &ast.NumberLiteral{Value: 0}, RHS: operand}, nil
		}
	}
	return nil, p.errorf("unexpected token %s in expression", p.cur().Kind)
}

// parseIdentifierExpression resolves a bare identifier into a variable
// reference, a `str(...)` stringify call, or a class constructor call:
// the three things an Id token can start in expression position.
func (p *Parser) parseIdentifierExpression() (ast.Node, error) {
	name := p.cur().Str
	p.next()

	if name == "str" && p.curIsChar("(") {
		p.next()
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if err := p.expectAndConsumeChar(")"); err != nil {
			return nil, err
		}
		return &ast.Stringify{Argument: arg}, nil
	}

	if p.curIsChar("(") {
		class, ok := p.resolvedClasses[name]
		if !ok {
			return nil, p.errorf("unknown class %s", name)
		}
		p.next()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return &ast.NewInstance{Class: class, Args: args}, nil
	}

	return ast.NewVariableValue(name), nil
}

// parseArgs parses a comma-separated argument list, assuming the opening
// '(' has already been consumed; it consumes the closing ')'.
func (p *Parser) parseArgs() ([]ast.Node, error) {
	var args []ast.Node
	for !p.curIsChar(")") {
		arg, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curIsChar(",") {
			p.next()
			continue
		}
		break
	}
	if err := p.expectAndConsumeChar(")"); err != nil {
		return nil, err
	}
	return args, nil
}

// parseInfix consumes one infix or postfix operator starting at the
// current token and combines it with left, matching the precedence table
// at the top of this file.
func (p *Parser) parseInfix(left ast.Node) (ast.Node, error) {
	switch {
	case p.curIsChar("."):
		p.next()
		if err := p.expect(token.Id); err != nil {
			return nil, err
		}
		name := p.cur().Str
		p.next()
		if p.curIsChar("(") {
			p.next()
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			return &ast.MethodCall{Receiver: left, Method: name, Args: args}, nil
		}
		if v, ok := left.(*ast.VariableValue); ok && len(v.DottedIDs) == 1 {
			return &ast.VariableValue{DottedIDs: []string{v.DottedIDs[0], name}}, nil
		}
		return nil, p.errorf("unsupported dotted field access")

	case p.curIsChar("+"):
		p.next()
		rhs, err := p.parseExpression(sumPrec)
		if err != nil {
			return nil, err
		}
		return &ast.Add{LHS: left, RHS: rhs}, nil

	case p.curIsChar("-"):
		p.next()
		rhs, err := p.parseExpression(sumPrec)
		if err != nil {
			return nil, err
		}
		return &ast.Sub{LHS: left, RHS: rhs}, nil

	case p.curIsChar("*"):
		p.next()
		rhs, err := p.parseExpression(productPrec)
		if err != nil {
			return nil, err
		}
		return &ast.Mult{LHS: left, RHS: rhs}, nil

	case p.curIsChar("/"):
		p.next()
		rhs, err := p.parseExpression(productPrec)
		if err != nil {
			return nil, err
		}
		return &ast.Div{LHS: left, RHS: rhs}, nil

	case p.curIsChar("<"):
		p.next()
		rhs, err := p.parseExpression(comparePrec)
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{LHS: left, RHS: rhs, Cmp: ast.Less}, nil

	case p.curIsChar(">"):
		p.next()
		rhs, err := p.parseExpression(comparePrec)
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{LHS: left, RHS: rhs, Cmp: ast.Greater}, nil

	case p.cur().Kind == token.Eq:
		p.next()
		rhs, err := p.parseExpression(comparePrec)
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{LHS: left, RHS: rhs, Cmp: ast.Equal}, nil

	case p.cur().Kind == token.NotEq:
		p.next()
		rhs, err := p.parseExpression(comparePrec)
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{LHS: left, RHS: rhs, Cmp: ast.NotEqual}, nil

	case p.cur().Kind == token.LessOrEq:
		p.next()
		rhs, err := p.parseExpression(comparePrec)
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{LHS: left, RHS: rhs, Cmp: ast.LessOrEqual}, nil

	case p.cur().Kind == token.GreaterOrEq:
		p.next()
		rhs, err := p.parseExpression(comparePrec)
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{LHS: left, RHS: rhs, Cmp: ast.GreaterOrEqual}, nil

	case p.cur().Kind == token.And:
		p.next()
		rhs, err := p.parseExpression(andPrec)
		if err != nil {
			return nil, err
		}
		return &ast.And{LHS: left, RHS: rhs}, nil

	case p.cur().Kind == token.Or:
		p.next()
		rhs, err := p.parseExpression(orPrec)
		if err != nil {
			return nil, err
		}
		return &ast.Or{LHS: left, RHS: rhs}, nil

	default:
		return nil, p.errorf("unexpected token %s in expression", p.cur().Kind)
	}
}
