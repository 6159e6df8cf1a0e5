package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion for the subcommands and their common
// flags. It is a no-op outside of a completion request.
func completion() {
	currencies := predict.Set{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY", "INR", "NPR"}
	currencyFlags := map[string]complete.Predictor{
		"from": currencies,
		"to":   currencies,
	}

	pkb := &complete.Command{
		Flags: map[string]complete.Predictor{
			"store-file": predict.Files("*.json"),
			"rates-file": predict.Files("*.json"),
			"currency":   currencies,
		},
		Sub: map[string]*complete.Command{
			"register": {},
			"login":    {},
			"logout":   {},
			"status":   {},
			"add":      {Flags: map[string]complete.Predictor{"type": predict.Set{"income", "expense"}}},
			"edit":     {Flags: map[string]complete.Predictor{"type": predict.Set{"income", "expense"}}},
			"rm":       {},
			"tx":       {},
			"summary":  {},
			"convert":  {Flags: currencyFlags},
			"rate":     {Flags: currencyFlags},
			"rates":    {Flags: map[string]complete.Predictor{"base": currencies}},
			"calendar": {},
			"export":   {Flags: map[string]complete.Predictor{"format": predict.Set{"json", "csv", "yaml"}}},
			"import":   {Flags: map[string]complete.Predictor{"format": predict.Set{"json", "csv", "yaml"}}},
			"topic":    {},
		},
	}
	pkb.Complete("pkb")
}
