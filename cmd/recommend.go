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

// recommendCmd holds the flags for the 'recommend' subcommand.
type recommendCmd struct {
	date string
}

func (*recommendCmd) Name() string     { return "recommend" }
func (*recommendCmd) Synopsis() string { return "analyse the plan and display recommendations" }
func (*recommendCmd) Usage() string {
	return `bpl recommend [-d <date>]

  Runs the rollover, diversification, laddering, liquidity and yield analyses
  against the plan and displays the resulting recommendations. When a
  benchmark-rate feed is configured (see 'bpl topic rates'), its rates are
  overlaid on the built-in snapshot.
`
}

func (c *recommendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date to analyse on. See the user manual for supported date formats.")
}

func (c *recommendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := bondplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
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

	rates := bondplan.ApproximateRates()
	if feed := bondplan.FeedRates(); feed != nil {
		rates = rates.Merge(feed)
	}

	recs := bondplan.GenerateRecommendationsWith(on, s.Profile, s.Assets, s.Events, rates)
	printMarkdown(renderer.RecommendationsMarkdown(on, recs))
	return subcommands.ExitSuccess
}
