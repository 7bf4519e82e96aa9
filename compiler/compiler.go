package compiler

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/ariel-ortiz/sel/compiler/analyze"
	"github.com/ariel-ortiz/sel/compiler/back"
	"github.com/ariel-ortiz/sel/compiler/front"
)

func CompileFile(ctx context.Context, name string) (obj []byte, err error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Compile(ctx, name, text)
}

func Compile(ctx context.Context, name string, text []byte) (obj []byte, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "compile", "name", name, "size", len(text))
	defer tr.Finish("err", &err)

	toks := front.Scan(ctx, text)

	x, err := front.Parse(ctx, toks)
	if err != nil {
		return nil, errors.Wrap(err, "parse text")
	}

	err = analyze.Analyze(ctx, x)
	if err != nil {
		return nil, errors.Wrap(err, "analyze")
	}

	obj, err = back.Emit(ctx, nil, x)
	if err != nil {
		return nil, errors.Wrap(err, "emit")
	}

	return obj, nil
}
