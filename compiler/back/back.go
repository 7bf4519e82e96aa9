package back

import (
	"context"
	"fmt"
	"strconv"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/ariel-ortiz/sel/compiler/ast"
)

// Emit appends the WAT module for the validated tree to b. One
// instruction line per operation, post-order, so operand pushes
// precede their operator. Pure text construction, no I/O.
func Emit(ctx context.Context, b []byte, x ast.Node) (_ []byte, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "back: emit")
	defer tr.Finish("err", &err)

	prog, ok := x.(ast.Program)
	if !ok {
		return nil, errors.New("program expected, got %T", x)
	}

	b = append(b, `(module
  (import "math" "pow" (func $pow (param i32 i32) (result i32)))
  (func
    (export "start")
    (result i32)
`...)

	b, err = emitExpr(ctx, b, prog.Expr)
	if err != nil {
		return nil, err
	}

	b = append(b, `  )
)
`...)

	return b, nil
}

func emitExpr(ctx context.Context, b []byte, x ast.Node) (_ []byte, err error) {
	switch x := x.(type) {
	case ast.IntLit:
		v, err := strconv.ParseInt(x.Tok.Lexeme, 10, 32)
		if err != nil {
			return nil, errors.Wrap(err, "literal %v", x.Tok.Lexeme)
		}

		b = fmt.Appendf(b, "    i32.const %d\n", v)

		return b, nil
	case ast.Add:
		return emitBin(ctx, b, x.Left, x.Right, "    i32.add\n")
	case ast.Mul:
		return emitBin(ctx, b, x.Left, x.Right, "    i32.mul\n")
	case ast.Pow:
		// no native exponentiation opcode, always a call
		return emitBin(ctx, b, x.Left, x.Right, "    call $pow\n")
	default:
		panic(x)
	}
}

func emitBin(ctx context.Context, b []byte, l, r ast.Node, op string) (_ []byte, err error) {
	b, err = emitExpr(ctx, b, l)
	if err != nil {
		return nil, errors.Wrap(err, "left")
	}

	b, err = emitExpr(ctx, b, r)
	if err != nil {
		return nil, errors.Wrap(err, "right")
	}

	return append(b, op...), nil
}
