package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/quantrail/bondplan"
	"github.com/quantrail/bondplan/renderer"
)

// timelineCmd holds the flags for the 'timeline' subcommand.
type timelineCmd struct {
	date   string
	months int
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "display the monthly cash-flow projection" }
func (*timelineCmd) Usage() string {
	return `bpl timeline [-d <date>] [-months <n>]

  Projects maturing face value against planned outflows, month by month, in
  the profile's currency.
`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Start date of the projection.")
	f.IntVar(&c.months, "months", 24, "Number of months to project.")
}

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := bondplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.months <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -months must be positive.")
		return subcommands.ExitUsageError
	}

	s, err := DecodeStoreFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if s.Profile == nil {
		fmt.Fprintln(os.Stderr, "Error: no profile yet. Create one with 'bpl profile'.")
		return subcommands.ExitFailure
	}

	months := bondplan.NewTimeline(on, *s.Profile, s.Assets, s.Events, c.months)
	printMarkdown(renderer.TimelineMarkdown(s.Profile.Currency, months))
	return subcommands.ExitSuccess
}
