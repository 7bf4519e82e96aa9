package ast

import (
	"fmt"

	"github.com/ariel-ortiz/sel/compiler/token"
)

type (
	// Node is one of Program, Add, Mul, Pow or IntLit.
	// Trees are built once by the parser and not mutated after.
	Node interface{}

	Program struct {
		Tok  token.Token // the End token
		Expr Node
	}

	Add struct {
		Tok token.Token

		Left  Node
		Right Node
	}

	Mul struct {
		Tok token.Token

		Left  Node
		Right Node
	}

	Pow struct {
		Tok token.Token

		Left  Node
		Right Node
	}

	IntLit struct {
		Tok token.Token // Lexeme is a non-empty run of decimal digits
	}
)

// Dump renders the tree as indented multi-line text, one node per
// line, children one level deeper than their parent.
func Dump(x Node) string {
	return string(appendDump(nil, x, 0))
}

func appendDump(b []byte, x Node, d int) []byte {
	kind := ""
	lex := ""
	var kids []Node

	switch x := x.(type) {
	case Program:
		kind = "Program"
		kids = []Node{x.Expr}
	case Add:
		kind, lex = "Add", x.Tok.Lexeme
		kids = []Node{x.Left, x.Right}
	case Mul:
		kind, lex = "Multiply", x.Tok.Lexeme
		kids = []Node{x.Left, x.Right}
	case Pow:
		kind, lex = "Power", x.Tok.Lexeme
		kids = []Node{x.Left, x.Right}
	case IntLit:
		kind, lex = "IntegerLiteral", x.Tok.Lexeme
	default:
		panic(x)
	}

	for i := 0; i < d; i++ {
		b = append(b, "  "...)
	}

	if lex != "" {
		b = fmt.Appendf(b, "%s %s\n", kind, lex)
	} else {
		b = fmt.Appendf(b, "%s\n", kind)
	}

	for _, kid := range kids {
		b = appendDump(b, kid, d+1)
	}

	return b
}
