package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/quantrail/bondplan/docs"
)

// topicCmd shows pages of the embedded user manual.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show a page of the user manual" }
func (*topicCmd) Usage() string {
	return `bpl topic [<topic> ...]

  Shows pages of the user manual. Without arguments the readme is shown,
  listing the available topics; '*' shows them all.

Usage Examples:
$ bpl topic dates
$ bpl topic assets rates
`
}

func (*topicCmd) SetFlags(*flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	pages := f.Args()
	if len(pages) == 0 {
		pages = []string{"readme"}
	}

	doc, err := docs.GetTopics(pages...)
	if err != nil {
		known, _ := docs.GetAllTopics()
		fmt.Fprintf(os.Stderr, "Error: %v\nKnown topics: %s\n", err, strings.Join(known, ", "))
		return subcommands.ExitUsageError
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
