package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook"
	"github.com/jmorel/pocketbook/renderer"
)

type convertCmd struct {
	amount string
	from   string
	to     string
	swap   bool
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `pkb convert -a <amount> [-from <code>] [-to <code>] [-swap]

  Converts an amount using the rate table. -swap exchanges the two
  currencies before converting.

Usage Examples:
$ pkb convert -a 100 -from USD -to GBP
$ pkb convert -a 100 -from USD -to GBP -swap
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "100", "Amount to convert.")
	f.StringVar(&c.from, "from", "USD", "Source currency code.")
	f.StringVar(&c.to, "to", "GBP", "Target currency code.")
	f.BoolVar(&c.swap, "swap", false, "Swap the source and target currencies.")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := strconv.ParseFloat(c.amount, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q.\n", c.amount)
		return subcommands.ExitUsageError
	}
	conv, err := Converter()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	from, to := c.from, c.to
	if c.swap {
		from, to = to, from
	}

	result, err := conv.Convert(amount, from, to)
	if err != nil {
		// The conversion path degrades to a zero result, it never crashes.
		if errors.Is(err, pocketbook.ErrInvalidCurrency) {
			fmt.Fprintf(os.Stderr, "Conversion failed (%v). Please try again.\n", err)
			fmt.Printf("0.00\n")
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	rate, err := conv.DisplayRate(from, to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Conversion(amount, from, result, to, rate))
	return subcommands.ExitSuccess
}
