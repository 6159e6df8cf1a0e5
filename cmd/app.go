// Package cmd implements the CLI application to manage a pocketbook.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook"
	"github.com/joho/godotenv"
)

// Commands lists every subcommand of the application. A main package
// registers them on a commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&registerCmd{},
	&loginCmd{},
	&logoutCmd{},
	&statusCmd{},
	&addCmd{},
	&editCmd{},
	&rmCmd{},
	&txCmd{},
	&summaryCmd{},
	&convertCmd{},
	&rateCmd{},
	&ratesCmd{},
	&calendarCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var storeFile = flag.String("store-file", "", "Path to the store file (JSON). Defaults to $POCKETBOOK_FILE or ~/.pocketbook/pocketbook.json")
var ratesFile = flag.String("rates-file", "", "Path to a JSON document holding a custom rate table")
var ratesPath = flag.String("rates-path", "$.rates", "JSONPath of the rate object inside the rates file")
var homeCurrency = flag.String("currency", "USD", "Home currency code used to display amounts")

// StorePath resolves the store file location: the -store-file flag, then the
// POCKETBOOK_FILE environment variable (a .env file is honored), then the
// default under the user's home directory.
func StorePath() string {
	if *storeFile != "" {
		return *storeFile
	}
	_ = godotenv.Load() // a missing .env file is fine
	if v := os.Getenv("POCKETBOOK_FILE"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pocketbook.json"
	}
	return filepath.Join(home, ".pocketbook", "pocketbook.json")
}

// Store opens the application record store.
func Store() *pocketbook.Store {
	return pocketbook.NewStore(StorePath())
}

// Ledger opens the transaction repository over the application store.
func Ledger() *pocketbook.Ledger {
	return pocketbook.NewLedger(Store())
}

// Session opens the session gate over the application store.
func Session() *pocketbook.Session {
	return pocketbook.NewSession(Store())
}

// Converter returns the currency converter: the built-in rate table, or the
// one loaded from -rates-file.
func Converter() (*pocketbook.Converter, error) {
	if *ratesFile == "" {
		return pocketbook.NewConverter(), nil
	}
	f, err := os.Open(*ratesFile)
	if err != nil {
		return nil, fmt.Errorf("could not open rates file: %w", err)
	}
	defer f.Close()
	rates, err := pocketbook.LoadRates(f, *ratesPath)
	if err != nil {
		return nil, err
	}
	return pocketbook.NewConverterWith(rates), nil
}

// requireAuth refuses ledger access for anonymous users, pointing at the
// login flow instead.
func requireAuth() error {
	if !Session().IsAuthenticated() {
		return fmt.Errorf("not logged in: run `pkb login` first")
	}
	return nil
}

// printMarkdown renders markdown for the terminal. If rendering fails the
// raw markdown is printed instead.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
