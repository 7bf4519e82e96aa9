package analyze

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-ortiz/sel/compiler/ast"
	"github.com/ariel-ortiz/sel/compiler/token"
)

func lit(s string) ast.IntLit {
	return ast.IntLit{Tok: token.Token{Kind: token.Int, Lexeme: s}}
}

func TestAnalyzeInRange(t *testing.T) {
	ctx := context.Background()

	for _, s := range []string{"0", "1", "42", "2147483647"} {
		err := Analyze(ctx, ast.Program{Expr: lit(s)})
		assert.NoError(t, err, "literal %v", s)
	}
}

func TestAnalyzeOutOfRange(t *testing.T) {
	ctx := context.Background()

	for _, s := range []string{"2147483648", "4294967296", "99999999999999999999999999"} {
		err := Analyze(ctx, ast.Program{Expr: lit(s)})
		require.Error(t, err, "literal %v", s)

		var re LiteralRangeError
		require.True(t, stderrors.As(err, &re), "literal %v: %v", s, err)
		assert.Equal(t, s, re.Tok.Lexeme)
	}
}

func TestAnalyzeReportsLeftmostFirst(t *testing.T) {
	x := ast.Program{
		Expr: ast.Add{
			Tok:   token.Token{Kind: token.Plus, Lexeme: "+"},
			Left:  lit("99999999999"),
			Right: lit("88888888888"),
		},
	}

	err := Analyze(context.Background(), x)
	require.Error(t, err)

	var re LiteralRangeError
	require.True(t, stderrors.As(err, &re))
	assert.Equal(t, "99999999999", re.Tok.Lexeme)
}

func TestAnalyzeWalksAllKinds(t *testing.T) {
	x := ast.Program{
		Expr: ast.Mul{
			Tok:  token.Token{Kind: token.Times, Lexeme: "*"},
			Left: lit("2"),
			Right: ast.Pow{
				Tok:   token.Token{Kind: token.Pow, Lexeme: "^"},
				Left:  lit("3"),
				Right: lit("2147483648"),
			},
		},
	}

	err := Analyze(context.Background(), x)
	assert.Error(t, err)
}
