package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/ariel-ortiz/sel/compiler"
	"github.com/ariel-ortiz/sel/compiler/ast"
	"github.com/ariel-ortiz/sel/compiler/front"
)

func main() {
	scanCmd := &cli.Command{
		Name:   "scan",
		Action: scanAct,
		Args:   cli.Args{},
	}

	parseCmd := &cli.Command{
		Name:   "parse",
		Action: parseAct,
		Args:   cli.Args{},
	}

	compileCmd := &cli.Command{
		Name:   "compile",
		Action: compileAct,
		Args:   cli.Args{},
	}

	app := &cli.Command{
		Name:        "sel",
		Description: "sel compiles simple expression language programs to wasm text",
		Commands: []*cli.Command{
			scanCmd,
			parseCmd,
			compileCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func scanAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		text, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		for _, tk := range front.Scan(ctx, text) {
			fmt.Printf("%v\n", tk)
		}
	}

	return nil
}

func parseAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		text, err := os.ReadFile(a)
		if err != nil {
			return errors.Wrap(err, "read %v", a)
		}

		x, err := front.Parse(ctx, front.Scan(ctx, text))
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		fmt.Printf("%s", ast.Dump(x))
	}

	return nil
}

func compileAct(c *cli.Command) (err error) {
	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	for _, a := range c.Args {
		obj, err := compiler.CompileFile(ctx, a)
		if err != nil {
			return errors.Wrap(err, "compile %v", a)
		}

		fmt.Printf("%s", obj)
	}

	return nil
}
