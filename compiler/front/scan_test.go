package front

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-ortiz/sel/compiler/token"
)

func TestScanKinds(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		in   string
		want []token.Kind
	}{
		{"", []token.Kind{token.End}},
		{"   \t\n", []token.Kind{token.End}},
		{"2+3", []token.Kind{token.Int, token.Plus, token.Int, token.End}},
		{"(1+2)*3", []token.Kind{token.LParen, token.Int, token.Plus, token.Int, token.RParen, token.Times, token.Int, token.End}},
		{"2^3^2", []token.Kind{token.Int, token.Pow, token.Int, token.Pow, token.Int, token.End}},
		{" 12 * 34 ", []token.Kind{token.Int, token.Times, token.Int, token.End}},
		{"@", []token.Kind{token.Unrecognized, token.End}},
		{"1 @ 2", []token.Kind{token.Int, token.Unrecognized, token.Int, token.End}},
	} {
		toks := Scan(ctx, []byte(tc.in))

		kinds := make([]token.Kind, len(toks))
		for i, tk := range toks {
			kinds[i] = tk.Kind
		}

		assert.Equal(t, tc.want, kinds, "input %q", tc.in)
	}
}

func TestScanMaximalMunch(t *testing.T) {
	toks := Scan(context.Background(), []byte("1234567890123456789012345"))

	require.Len(t, toks, 2)
	assert.Equal(t, token.Int, toks[0].Kind)
	assert.Equal(t, "1234567890123456789012345", toks[0].Lexeme)
	assert.Equal(t, token.End, toks[1].Kind)
}

func TestScanLexemesAndPos(t *testing.T) {
	toks := Scan(context.Background(), []byte(" 12+(3)"))

	want := []token.Token{
		{Kind: token.Int, Lexeme: "12", Pos: 1},
		{Kind: token.Plus, Lexeme: "+", Pos: 3},
		{Kind: token.LParen, Lexeme: "(", Pos: 4},
		{Kind: token.Int, Lexeme: "3", Pos: 5},
		{Kind: token.RParen, Lexeme: ")", Pos: 6},
		{Kind: token.End, Pos: 7},
	}

	assert.Equal(t, want, toks)
}

func TestScanUnrecognizedCarriesChar(t *testing.T) {
	toks := Scan(context.Background(), []byte("@"))

	require.Len(t, toks, 2)
	assert.Equal(t, token.Unrecognized, toks[0].Kind)
	assert.Equal(t, "@", toks[0].Lexeme)
}
