package front

import (
	"context"
	"fmt"
	"strings"

	"tlog.app/go/errors"
	"tlog.app/go/loc"
	"tlog.app/go/tlog"

	"github.com/ariel-ortiz/sel/compiler/ast"
	"github.com/ariel-ortiz/sel/compiler/token"
)

// Grammar, precedence increasing top to bottom.
//
//	Program ::= Expr END
//	Expr    ::= Term ('+' Term)*
//	Term    ::= Power ('*' Power)*
//	Power   ::= Factor ('^' Power)?
//	Factor  ::= INT | '(' Expr ')'
//
// '^' is right-associative, '+' and '*' are left-associative.
type (
	parser struct {
		tr tlog.Span

		toks []token.Token
		pos  int
	}

	UnexpectedError struct {
		Token token.Token
		Want  []token.Kind
	}
)

// Parse consumes the token sequence with one token of lookahead and
// builds the syntax tree. The sequence must be End-terminated as
// produced by Scan. The first grammar mismatch abandons the attempt.
func Parse(ctx context.Context, toks []token.Token) (x ast.Node, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "front: parse", "tokens", len(toks))
	defer tr.Finish("err", &err)

	p := &parser{tr: tr, toks: toks}

	x, err = p.parseProgram(ctx)
	if err != nil {
		return nil, err
	}

	if tr.If("dump_ast") {
		tr.Printw("syntax tree", "ast", ast.Dump(x))
	}

	return x, nil
}

func (p *parser) parseProgram(ctx context.Context) (ast.Node, error) {
	x, err := p.parseExpr(ctx)
	if err != nil {
		return nil, err
	}

	end, err := p.expect(token.End)
	if err != nil {
		return nil, err
	}

	return ast.Program{Tok: end, Expr: x}, nil
}

func (p *parser) parseExpr(ctx context.Context) (x ast.Node, err error) {
	x, err = p.parseTerm(ctx)
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == token.Plus {
		op := p.next()

		r, err := p.parseTerm(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "sum operand")
		}

		x = ast.Add{Tok: op, Left: x, Right: r}
	}

	return x, nil
}

func (p *parser) parseTerm(ctx context.Context) (x ast.Node, err error) {
	x, err = p.parsePower(ctx)
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == token.Times {
		op := p.next()

		r, err := p.parsePower(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "product operand")
		}

		x = ast.Mul{Tok: op, Left: x, Right: r}
	}

	return x, nil
}

func (p *parser) parsePower(ctx context.Context) (x ast.Node, err error) {
	x, err = p.parseFactor(ctx)
	if err != nil {
		return nil, err
	}

	// right-recursive so chains group to the right
	if p.peek().Kind == token.Pow {
		op := p.next()

		r, err := p.parsePower(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "power operand")
		}

		x = ast.Pow{Tok: op, Left: x, Right: r}
	}

	return x, nil
}

func (p *parser) parseFactor(ctx context.Context) (ast.Node, error) {
	switch tk := p.peek(); tk.Kind {
	case token.Int:
		return ast.IntLit{Tok: p.next()}, nil
	case token.LParen:
		p.next()

		x, err := p.parseExpr(ctx)
		if err != nil {
			return nil, err
		}

		_, err = p.expect(token.RParen)
		if err != nil {
			return nil, err
		}

		// parens only group, they leave no node
		return x, nil
	default:
		return nil, NewUnexpected(tk, token.Int, token.LParen)
	}
}

func (p *parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *parser) next() (tk token.Token) {
	tk = p.toks[p.pos]

	if p.pos+1 < len(p.toks) {
		p.pos++
	}

	if p.tr.If("next_token") {
		p.tr.Printw("next token", "pos", p.pos, "tk", tk, "from", loc.Caller(1))
	}

	return tk
}

func (p *parser) expect(k token.Kind) (token.Token, error) {
	if tk := p.peek(); tk.Kind != k {
		return tk, NewUnexpected(tk, k)
	}

	return p.next(), nil
}

func NewUnexpected(got token.Token, want ...token.Kind) error {
	return UnexpectedError{
		Token: got,
		Want:  want,
	}
}

func (e UnexpectedError) Error() string {
	l := make([]string, len(e.Want))

	for i := range e.Want {
		l[i] = e.Want[i].String()
	}

	return fmt.Sprintf("unexpected token: %v at pos %d, want: %v", e.Token, e.Token.Pos, strings.Join(l, ", "))
}
