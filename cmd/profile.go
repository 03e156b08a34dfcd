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

// profileCmd creates or updates the single user profile of the plan.
type profileCmd struct {
	name     string
	email    string
	currency string
	region   string
	risk     string
}

func (*profileCmd) Name() string     { return "profile" }
func (*profileCmd) Synopsis() string { return "create or update the plan's user profile" }
func (*profileCmd) Usage() string {
	return `bpl profile [-name <name>] [-email <email>] [-currency <code>] [-region <region>] [-risk <tolerance>]

  Creates the profile on first use, updates only the given fields afterwards.
  Without flags, displays the current profile.

Usage Examples:
$ bpl profile -name "Ada" -currency EUR -region eurozone -risk moderate
$ bpl profile -risk aggressive
`
}

func (c *profileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Display name.")
	f.StringVar(&c.email, "email", "", "Contact email.")
	f.StringVar(&c.currency, "currency", "", "Preferred currency code, like EUR or USD.")
	f.StringVar(&c.region, "region", "", "Home region (eurozone, us, uk, switzerland, japan, emerging, global).")
	f.StringVar(&c.risk, "risk", "", "Risk tolerance (conservative, moderate, aggressive).")
}

func (c *profileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStoreFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.name == "" && c.email == "" && c.currency == "" && c.region == "" && c.risk == "" {
		if s.Profile == nil {
			fmt.Println("No profile yet. Create one with 'bpl profile -name ... -currency ... -risk ...'")
			return subcommands.ExitSuccess
		}
		u := s.Profile
		fmt.Printf("%s <%s>\n  currency: %s\n  region: %s\n  risk: %s\n", u.Name, u.Email, u.Currency, u.Region, u.Risk)
		return subcommands.ExitSuccess
	}

	if s.Profile == nil {
		s.Profile = &bondplan.User{ID: uuid.NewString(), Currency: "EUR", Region: bondplan.Global}
	}
	if c.name != "" {
		s.Profile.Name = c.name
	}
	if c.email != "" {
		s.Profile.Email = c.email
	}
	if c.currency != "" {
		s.Profile.Currency = c.currency
	}
	if c.region != "" {
		s.Profile.Region = bondplan.Region(c.region)
	}
	if c.risk != "" {
		risk, err := bondplan.ParseRiskTolerance(c.risk)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		s.Profile.Risk = risk
	}

	if err := EncodeStoreFile(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Profile saved to %s\n", *storeFile)
	return subcommands.ExitSuccess
}
