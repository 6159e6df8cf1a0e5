package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/jmorel/pocketbook/renderer"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the current session state" }
func (*statusCmd) Usage() string {
	return `pkb status

  Shows whether a user is registered and logged in.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session := Session()
	name, _ := session.Username()
	printMarkdown(renderer.Status(session.Registered(), session.IsAuthenticated(), name))
	return subcommands.ExitSuccess
}
