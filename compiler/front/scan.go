package front

import (
	"context"

	"tlog.app/go/tlog"

	"github.com/ariel-ortiz/sel/compiler/token"
)

// Scan converts source text into a token sequence terminated by
// exactly one End token. It never fails: input it cannot classify
// becomes an Unrecognized token for the parser to reject.
func Scan(ctx context.Context, b []byte) []token.Token {
	var toks []token.Token

	for i := 0; i < len(b); {
		c := b[i]

		switch c {
		case ' ', '\t', '\r', '\n':
			i++
			continue
		case '+':
			toks = append(toks, token.Token{Kind: token.Plus, Lexeme: "+", Pos: i})
			i++
			continue
		case '*':
			toks = append(toks, token.Token{Kind: token.Times, Lexeme: "*", Pos: i})
			i++
			continue
		case '^':
			toks = append(toks, token.Token{Kind: token.Pow, Lexeme: "^", Pos: i})
			i++
			continue
		case '(':
			toks = append(toks, token.Token{Kind: token.LParen, Lexeme: "(", Pos: i})
			i++
			continue
		case ')':
			toks = append(toks, token.Token{Kind: token.RParen, Lexeme: ")", Pos: i})
			i++
			continue
		}

		if c >= '0' && c <= '9' {
			e := skipDigits(b, i)
			toks = append(toks, token.Token{Kind: token.Int, Lexeme: string(b[i:e]), Pos: i})
			i = e

			continue
		}

		toks = append(toks, token.Token{Kind: token.Unrecognized, Lexeme: string(b[i : i+1]), Pos: i})
		i++
	}

	toks = append(toks, token.Token{Kind: token.End, Pos: len(b)})

	if tr := tlog.SpanFromContext(ctx); tr.If("tokens") {
		for j, tk := range toks {
			tr.Printw("token", "i", j, "kind", tk.Kind, "lexeme", tk.Lexeme, "pos", tk.Pos)
		}
	}

	return toks
}

func skipDigits(b []byte, i int) int {
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}

	return i
}
