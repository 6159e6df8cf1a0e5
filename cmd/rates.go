package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook/renderer"
)

type ratesCmd struct {
	base string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "list the whole exchange-rate table" }
func (*ratesCmd) Usage() string {
	return `pkb rates [-base <code>]

  Lists every known currency with its rate relative to the base currency.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "USD", "Base currency code.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conv, err := Converter()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if !conv.Has(c.base) {
		fmt.Fprintf(os.Stderr, "Error: unknown base currency %q.\n", c.base)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Rates(conv, c.base))
	return subcommands.ExitSuccess
}
