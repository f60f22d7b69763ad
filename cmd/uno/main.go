package main

import (
	"context"
	"fmt"
	"os"

	"nikand.dev/go/cli"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/AlexPikalov/uno/compiler"
)

func main() {
	parseCmd := &cli.Command{
		Name:        "parse",
		Description: "parse files and print abstract syntax tree",
		Action:      parseAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("verbose", "", "tlog verbosity topics (parse_rule, parse_error)"),
		},
	}

	fmtCmd := &cli.Command{
		Name:        "fmt",
		Description: "print files in canonical form",
		Action:      fmtAct,
		Args:        cli.Args{},
		Flags: []*cli.Flag{
			cli.NewFlag("verbose", "", "tlog verbosity topics (parse_rule, parse_error)"),
		},
	}

	app := &cli.Command{
		Name:        "uno",
		Description: "uno is a tool for managing uno source code",
		Flags: []*cli.Flag{
			cli.HelpFlag,
		},
		Commands: []*cli.Command{
			parseCmd,
			fmtCmd,
		},
	}

	cli.RunAndExit(app, os.Args, os.Environ())
}

func parseAct(c *cli.Command) (err error) {
	ctx := setup(c)

	for _, a := range c.Args {
		x, err := compiler.ParseFiles(ctx, a)
		if err != nil {
			return errors.Wrap(err, "parse %v", a)
		}

		fmt.Printf("ast: %+v\n", x)
	}

	return nil
}

func fmtAct(c *cli.Command) (err error) {
	ctx := setup(c)

	for _, a := range c.Args {
		text, err := compiler.Format(ctx, a)
		if err != nil {
			return errors.Wrap(err, "format %v", a)
		}

		_, err = os.Stdout.Write(text)
		if err != nil {
			return errors.Wrap(err, "write")
		}
	}

	return nil
}

func setup(c *cli.Command) context.Context {
	if v := c.String("verbose"); v != "" {
		tlog.SetVerbosity(v)
	}

	ctx := context.Background()
	ctx = tlog.ContextWithSpan(ctx, tlog.Root())

	return ctx
}
