package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// fmtCmd rewrites the plan file into its canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the plan file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `bpl fmt

  Validates and formats the plan file. This command reads all records,
  validates them, sorts assets by maturity and events by date, and writes
  them back in a canonical JSONL format.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStoreFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load plan: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, a := range s.Assets {
		if err := a.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid asset record: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	for _, e := range s.Events {
		if err := e.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid event record: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	if err := EncodeStoreFile(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted plan: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %s.\n", *storeFile)
	return subcommands.ExitSuccess
}
