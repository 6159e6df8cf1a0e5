package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook"
)

type rateCmd struct {
	from string
	to   string
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "show the effective exchange rate between two currencies" }
func (*rateCmd) Usage() string {
	return `pkb rate [-from <code>] [-to <code>]

  Shows the exchange rate for display, rounded to 4 decimal places.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "USD", "Source currency code.")
	f.StringVar(&c.to, "to", "GBP", "Target currency code.")
}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	conv, err := Converter()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rate, err := conv.DisplayRate(c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conversion failed (%v). Please try again.\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s 1 %s = %s %s %s\n",
		pocketbook.Flag(c.from), c.from, rate, c.to, pocketbook.Flag(c.to))
	return subcommands.ExitSuccess
}
