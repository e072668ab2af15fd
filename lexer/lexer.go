// ==============================================================================================
// FILE: lexer/lexer.go
// ==============================================================================================
// PACKAGE: lexer
// PURPOSE: Converts Pyrite source text into a stream of Tokens, including the synthetic
//          Indent/Dedent markers that hide the whitespace-sensitive grammar from the Parser.
//          Tokens are produced on demand: Current() never advances, Next() always does.
// ==============================================================================================

package lexer

import (
	"strconv"

	"github.com/pyrite-lang/pyrite/langerr"
	"github.com/pyrite-lang/pyrite/token"
)

// defaultIndentUnit is the number of spaces that make up one level of
// nesting when no explicit indent width is configured.
const defaultIndentUnit = 2

// Lexer scans Pyrite source text and synthesizes the indentation protocol
// on top of a flat character stream.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           rune
	line         int
	column       int

	current Token

	indentUnit   int // number of spaces that make up one level of nesting
	indentLevel  int // current nesting depth, in spaces
	pendingUnits int // leftover indentation change, in spaces, still to be emitted as Indent/Dedent
}

// Token is an alias kept local so lexer code reads naturally; it is the
// same type the parser consumes.
type Token = token.Token

// New constructs a Lexer over input using the default two-space indent
// unit, and eagerly produces the first token: the lexer is never in a
// state before its first token exists.
func New(input string) *Lexer {
	return NewWithIndent(input, defaultIndentUnit)
}

// NewWithIndent constructs a Lexer over input using indentUnit spaces per
// nesting level. indentUnit <= 0 falls back to the default.
func NewWithIndent(input string, indentUnit int) *Lexer {
	if indentUnit <= 0 {
		indentUnit = defaultIndentUnit
	}
	l := &Lexer{input: input, line: 1, column: 0, indentUnit: indentUnit}
	l.readChar()
	l.current = Token{Kind: token.Eof}
	l.current = l.readToken()
	return l
}

// Current returns the token last produced, without advancing.
func (l *Lexer) Current() Token { return l.current }

// Next advances the lexer and returns the new current token. Once the
// stream is exhausted, Next keeps returning Eof indefinitely.
func (l *Lexer) Next() Token {
	l.current = l.readToken()
	return l.current
}

// Expect asserts the current token has the given kind, returning a
// *langerr.LexError if it does not.
func (l *Lexer) Expect(kind token.Kind) error {
	if l.current.Kind != kind {
		return langerr.NewLex(l.current.Line, l.current.Column,
			"expected %s, got %s", kind, l.current.Kind)
	}
	return nil
}

// ExpectNext advances and then asserts the new current token has the given
// kind, the composition the parser uses most often.
func (l *Lexer) ExpectNext(kind token.Kind) error {
	l.Next()
	return l.Expect(kind)
}

// --- character-level plumbing -----------------------------------------------------------------

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	l.ch = rune(l.input[l.readPosition])
	l.position = l.readPosition
	l.readPosition++
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return rune(l.input[l.readPosition])
}

func (l *Lexer) atEOF() bool { return l.ch == 0 }

func (l *Lexer) tok(kind token.Kind) Token {
	return Token{Kind: kind, Line: l.line, Column: l.column}
}

// --- the tokenization algorithm -----------------------------------------------------------------

func (l *Lexer) readToken() Token {
	if l.atEOF() {
		return l.handleEOF()
	}

	if l.pendingUnits != 0 {
		if l.pendingUnits > 0 {
			l.indentLevel += l.indentUnit
			l.pendingUnits -= l.indentUnit
			return l.tok(token.Indent)
		}
		l.indentLevel -= l.indentUnit
		l.pendingUnits += l.indentUnit
		return l.tok(token.Dedent)
	}

	if l.current.Kind == token.Newline {
		for l.ch == '\n' {
			l.readChar()
		}
		spaces := l.countBlanks()
		switch {
		case spaces > l.indentLevel:
			l.indentLevel += l.indentUnit
			l.pendingUnits = spaces - l.indentLevel
			return l.tok(token.Indent)
		case spaces < l.indentLevel:
			l.indentLevel -= l.indentUnit
			l.pendingUnits = spaces - l.indentLevel
			return l.tok(token.Dedent)
		default:
			l.current = Token{Kind: token.Eof}
			return l.readToken()
		}
	}

	if l.ch == '\n' {
		return l.handleNewlineChar()
	}

	if isPunct(l.ch) {
		return l.readPunct()
	}

	if isDigit(l.ch) {
		return l.readNumber()
	}

	if isWordChar(l.ch) {
		return l.readWord()
	}

	if isBlank(l.ch) {
		l.countBlanks()
		return l.readToken()
	}

	return l.tok(token.Eof)
}

func (l *Lexer) handleEOF() Token {
	if l.indentLevel > 0 {
		l.indentLevel -= l.indentUnit
		return l.tok(token.Dedent)
	}
	if l.current.Kind == token.Newline || l.current.Kind == token.Eof {
		return l.tok(token.Eof)
	}
	return l.tok(token.Newline)
}

func (l *Lexer) handleNewlineChar() Token {
	l.readChar() // consume '\n'
	if l.current.Kind == token.Newline || l.current.Kind == token.Eof {
		return l.readToken()
	}
	return l.tok(token.Newline)
}

func (l *Lexer) readPunct() Token {
	line, col := l.line, l.column
	c := l.ch
	l.readChar()

	if (c == '!' || c == '=' || c == '>' || c == '<') && l.ch == '=' {
		digraph := string(c) + "="
		l.readChar()
		kind, _ := token.LookupKeyword(digraph)
		return Token{Kind: kind, Line: line, Column: col}
	}

	if c == '"' || c == '\'' {
		var sb []rune
		for l.ch != c && !l.atEOF() {
			sb = append(sb, l.ch)
			l.readChar()
		}
		l.readChar() // consume closing quote
		return Token{Kind: token.String, Str: string(sb), Line: line, Column: col}
	}

	if isWordChar(c) {
		rest := l.collectWord()
		return Token{Kind: token.Id, Str: string(c) + rest, Line: line, Column: col}
	}

	return Token{Kind: token.Char, Str: string(c), Line: line, Column: col}
}

func (l *Lexer) readNumber() Token {
	line, col := l.line, l.column
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	text := l.input[start:l.position]
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		n = 0
	}
	return Token{Kind: token.Number, Int: n, Line: line, Column: col}
}

func (l *Lexer) readWord() Token {
	line, col := l.line, l.column
	start := l.position
	for isWordChar(l.ch) {
		l.readChar()
	}
	text := l.input[start:l.position]
	if kind, ok := token.LookupKeyword(text); ok {
		return Token{Kind: kind, Line: line, Column: col}
	}
	return Token{Kind: token.Id, Str: text, Line: line, Column: col}
}

func (l *Lexer) collectWord() string {
	start := l.position
	for isWordChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) countBlanks() int {
	n := 0
	for isBlank(l.ch) {
		n++
		l.readChar()
	}
	return n
}

// --- character classes, deliberately ASCII-only ------------------------------------------------

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isWordChar(ch rune) bool {
	return ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		isDigit(ch)
}

func isBlank(ch rune) bool { return ch == ' ' || ch == '\t' }

func isPunct(ch rune) bool {
	if ch == 0 || ch == '\n' || isBlank(ch) || isWordChar(ch) {
		return false
	}
	return ch > 0x20 && ch < 0x7f
}
