// ==============================================================================================
// FILE: token/token.go
// ==============================================================================================
// PACKAGE: token
// PURPOSE: Defines the vocabulary of the Pyrite language's lexer: the tagged union of token
//          kinds the Lexer produces and the Parser consumes. Tokens carry a payload only for
//          the kinds that need one (numbers, identifiers, raw characters, strings); every other
//          kind is a zero-payload marker.
// ==============================================================================================

package token

import "fmt"

// Kind identifies which variant of the token union a Token holds.
type Kind int

const (
	Number Kind = iota // payload: Int
	Id                 // payload: Str (identifier text)
	Char               // payload: Str (single punctuation rune, as text)
	String             // payload: Str (literal contents, unescaped)

	Class
	Return
	If
	Else
	Def
	Newline
	Print
	Indent
	Dedent
	And
	Or
	Not
	Eq
	NotEq
	LessOrEq
	GreaterOrEq
	None
	True
	False
	Eof
)

var names = map[Kind]string{
	Number:      "Number",
	Id:          "Id",
	Char:        "Char",
	String:      "String",
	Class:       "Class",
	Return:      "Return",
	If:          "If",
	Else:        "Else",
	Def:         "Def",
	Newline:     "Newline",
	Print:       "Print",
	Indent:      "Indent",
	Dedent:      "Dedent",
	And:         "And",
	Or:          "Or",
	Not:         "Not",
	Eq:          "Eq",
	NotEq:       "NotEq",
	LessOrEq:    "LessOrEq",
	GreaterOrEq: "GreaterOrEq",
	None:        "None",
	True:        "True",
	False:       "False",
	Eof:         "Eof",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is the atom the Lexer produces and the Parser consumes exactly once.
// Int is populated for Number, Str for Id/Char/String; every other kind
// carries no payload. Line/Column are 1-based, for error reporting; for a
// number, word, string or punctuation token they point at its first rune,
// while synthesized Newline/Indent/Dedent/Eof tokens carry the scanner's
// position at the moment they were emitted.
type Token struct {
	Kind   Kind
	Int    int64
	Str    string
	Line   int
	Column int
}

// Equal reports whether two tokens have the same kind and, for payload
// kinds, the same payload. Line/Column are not part of the equality
// contract: two tokens scanned from different positions but carrying
// the same semantic content compare equal.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Number:
		return t.Int == o.Int
	case Id, Char, String:
		return t.Str == o.Str
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number{%d}", t.Int)
	case Id, Char, String:
		return fmt.Sprintf("%s{%s}", t.Kind, t.Str)
	default:
		return t.Kind.String()
	}
}

// keywords maps exact source spellings to zero-payload token kinds. Only
// multi-character identifiers and the comparison digraphs participate;
// single-character punctuation is classified directly by the lexer.
var keywords = map[string]Kind{
	"class":  Class,
	"return": Return,
	"if":     If,
	"else":   Else,
	"def":    Def,
	"print":  Print,
	"or":     Or,
	"and":    And,
	"not":    Not,
	"None":   None,
	"True":   True,
	"False":  False,
	"==":     Eq,
	"!=":     NotEq,
	">=":     GreaterOrEq,
	"<=":     LessOrEq,
}

// LookupKeyword reports whether text names a reserved keyword and, if so,
// which Kind it maps to.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
