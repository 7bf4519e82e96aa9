package analyze

import (
	"context"
	"fmt"
	"strconv"

	"tlog.app/go/tlog"

	"github.com/ariel-ortiz/sel/compiler/ast"
	"github.com/ariel-ortiz/sel/compiler/token"
)

type (
	LiteralRangeError struct {
		Tok token.Token
	}
)

// Analyze checks every integer literal in the tree for i32
// representability, leftmost literal first. The grammar has no
// identifiers, so there is nothing else to check.
func Analyze(ctx context.Context, x ast.Node) (err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "analyze")
	defer tr.Finish("err", &err)

	return walk(ctx, x)
}

func walk(ctx context.Context, x ast.Node) error {
	switch x := x.(type) {
	case ast.Program:
		return walk(ctx, x.Expr)
	case ast.Add:
		return walkBin(ctx, x.Left, x.Right)
	case ast.Mul:
		return walkBin(ctx, x.Left, x.Right)
	case ast.Pow:
		return walkBin(ctx, x.Left, x.Right)
	case ast.IntLit:
		_, err := strconv.ParseInt(x.Tok.Lexeme, 10, 32)
		if err != nil {
			return NewLiteralRange(x.Tok)
		}

		return nil
	default:
		panic(x)
	}
}

func walkBin(ctx context.Context, l, r ast.Node) error {
	err := walk(ctx, l)
	if err != nil {
		return err
	}

	return walk(ctx, r)
}

func NewLiteralRange(tok token.Token) error {
	return LiteralRangeError{
		Tok: tok,
	}
}

func (e LiteralRangeError) Error() string {
	return fmt.Sprintf("integer literal out of i32 range: %v at pos %d", e.Tok.Lexeme, e.Tok.Pos)
}
