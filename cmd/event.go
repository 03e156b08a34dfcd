package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/quantrail/bondplan"
)

// addEventCmd holds the flags for the 'add-event' subcommand.
type addEventCmd struct {
	amount      float64
	currency    string
	date        string
	description string
}

func (*addEventCmd) Name() string     { return "add-event" }
func (*addEventCmd) Synopsis() string { return "record a planned cash outflow" }
func (*addEventCmd) Usage() string {
	return `bpl add-event -amount <amount> -date <date> [-desc <text>]

  Validates and appends one liquidity event to the plan file.

Usage Examples:
$ bpl add-event -amount 5000 -date 2026-09-01 -desc "tuition"
$ bpl add-event -amount 1200 -date +3m -desc "insurance premium"
`
}

func (c *addEventCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount of the planned outflow.")
	f.StringVar(&c.currency, "currency", "EUR", "Currency code of the amount.")
	f.StringVar(&c.date, "date", "", "Date of the outflow. See the user manual for supported date formats.")
	f.StringVar(&c.description, "desc", "", "Short description of the outflow.")
}

func (c *addEventCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStoreFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	date, err := bondplan.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	e := bondplan.LiquidityEvent{
		ID:          uuid.NewString(),
		Amount:      bondplan.M(c.amount, c.currency),
		Date:        date,
		Description: c.description,
	}
	if s.Profile != nil {
		e.UserID = s.Profile.ID
	}

	if err := e.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return AppendRecord(bondplan.RecordEvent, e)
}

// listEventsCmd holds the flags for the 'events' subcommand.
type listEventsCmd struct{}

func (*listEventsCmd) Name() string     { return "events" }
func (*listEventsCmd) Synopsis() string { return "list the planned cash outflows" }
func (*listEventsCmd) Usage() string {
	return `bpl events

  Lists every liquidity event in the plan with its id, amount and date.
`
}

func (*listEventsCmd) SetFlags(*flag.FlagSet) {}

func (c *listEventsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStoreFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(s.Events) == 0 {
		fmt.Println("No planned outflows. Add one with 'bpl add-event'.")
		return subcommands.ExitSuccess
	}
	for _, e := range s.Events {
		fmt.Printf("%s  %s  %12s  %s\n", e.ID, e.Date, e.Amount, e.Description)
	}
	return subcommands.ExitSuccess
}

// deleteEventCmd holds the flags for the 'delete-event' subcommand.
type deleteEventCmd struct{}

func (*deleteEventCmd) Name() string     { return "delete-event" }
func (*deleteEventCmd) Synopsis() string { return "remove a planned outflow from the plan" }
func (*deleteEventCmd) Usage() string {
	return `bpl delete-event <id>

  Removes the liquidity event with the given id and rewrites the plan file.
`
}

func (*deleteEventCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteEventCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one event id.")
		return subcommands.ExitUsageError
	}
	s, err := DecodeStoreFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	id := f.Arg(0)
	if !s.RemoveEvent(id) {
		fmt.Fprintf(os.Stderr, "Error: no event with id %q.\n", id)
		return subcommands.ExitFailure
	}
	if err := EncodeStoreFile(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed event %s\n", id)
	return subcommands.ExitSuccess
}
