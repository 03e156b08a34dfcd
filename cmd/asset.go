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

// addAssetCmd holds the flags for the 'add-asset' subcommand.
type addAssetCmd struct {
	name      string
	typ       string
	issuer    string
	purchase  string
	maturity  string
	face      float64
	price     float64
	current   float64
	rate      float64
	frequency string
	currency  string
	region    string
	rating    string
	agency    string
	callable  bool
	callDate  string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "record a fixed-income asset in the plan" }
func (*addAssetCmd) Usage() string {
	return `bpl add-asset -name <name> -type <type> -face <amount> -price <amount> [-rate <pct>] [-maturity <date>] ...

  Validates and appends one asset record to the plan file.

Usage Examples:
$ bpl add-asset -name "Bund 2030" -type governmentBond -face 10000 -price 9800 -rate 2.0 -maturity 2030-06-01
$ bpl add-asset -name "CoCo AT1" -type perpetualBond -issuer bank -face 5000 -price 4750 -rate 5.5
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Asset display name.")
	f.StringVar(&c.typ, "type", "", "Asset type, like governmentBond or corporateBond. See 'bpl topic assets'.")
	f.StringVar(&c.issuer, "issuer", "government", "Issuer type (government, corporate, municipal, bank, other).")
	f.StringVar(&c.purchase, "purchase", "0d", "Purchase date. See the user manual for supported date formats.")
	f.StringVar(&c.maturity, "maturity", "", "Maturity date. Required except for perpetual instruments.")
	f.Float64Var(&c.face, "face", 0, "Face value.")
	f.Float64Var(&c.price, "price", 0, "Purchase price.")
	f.Float64Var(&c.current, "current", 0, "Current market price, if known.")
	f.Float64Var(&c.rate, "rate", 0, "Nominal interest rate in percent.")
	f.StringVar(&c.frequency, "frequency", "annual", "Coupon frequency (annual, semiAnnual, quarterly, monthly, atMaturity).")
	f.StringVar(&c.currency, "currency", "EUR", "Currency code of the amounts.")
	f.StringVar(&c.region, "region", "", "Issuer region. Defaults to the profile's region.")
	f.StringVar(&c.rating, "rating", "", "Credit rating, like AAA.")
	f.StringVar(&c.agency, "agency", "", "Rating agency, like S&P.")
	f.BoolVar(&c.callable, "callable", false, "Whether the issuer can call the asset early.")
	f.StringVar(&c.callDate, "call-date", "", "First call date for callable assets.")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStoreFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	typ, err := bondplan.ParseAssetType(c.typ)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	purchase, err := bondplan.ParseDate(c.purchase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing purchase date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a := bondplan.FixedIncomeAsset{
		ID:            uuid.NewString(),
		Name:          c.name,
		Type:          typ,
		Issuer:        bondplan.IssuerType(c.issuer),
		Purchase:      purchase,
		FaceValue:     bondplan.M(c.face, c.currency),
		PurchasePrice: bondplan.M(c.price, c.currency),
		InterestRate:  bondplan.Percent(c.rate),
		Frequency:     bondplan.PaymentFrequency(c.frequency),
		Region:        bondplan.Region(c.region),
		Rating:        c.rating,
		RatingAgency:  c.agency,
		Callable:      c.callable,
	}
	if s.Profile != nil {
		a.UserID = s.Profile.ID
		if a.Region == "" {
			a.Region = s.Profile.Region
		}
	}
	if c.current > 0 {
		a.CurrentPrice = bondplan.M(c.current, c.currency)
	}
	if c.maturity != "" {
		if a.Maturity, err = bondplan.ParseDate(c.maturity); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing maturity date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.callDate != "" {
		if a.CallDate, err = bondplan.ParseDate(c.callDate); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing call date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	if err := a.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return AppendRecord(bondplan.RecordAsset, a)
}

// listAssetsCmd holds the flags for the 'assets' subcommand.
type listAssetsCmd struct{}

func (*listAssetsCmd) Name() string     { return "assets" }
func (*listAssetsCmd) Synopsis() string { return "list the recorded fixed-income assets" }
func (*listAssetsCmd) Usage() string {
	return `bpl assets

  Lists every asset in the plan with its id, value and maturity.
`
}

func (*listAssetsCmd) SetFlags(*flag.FlagSet) {}

func (c *listAssetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeStoreFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if len(s.Assets) == 0 {
		fmt.Println("No assets recorded. Add one with 'bpl add-asset'.")
		return subcommands.ExitSuccess
	}

	for _, a := range s.Assets {
		maturity := "perpetual"
		if !a.Maturity.IsZero() {
			maturity = a.Maturity.String()
		}
		fmt.Printf("%s  %-24s %-20s %12s  %5s  %s\n",
			a.ID, a.Name, a.Type, bondplan.MarketValue(a), a.InterestRate, maturity)
	}
	return subcommands.ExitSuccess
}

// deleteAssetCmd holds the flags for the 'delete-asset' subcommand.
type deleteAssetCmd struct{}

func (*deleteAssetCmd) Name() string     { return "delete-asset" }
func (*deleteAssetCmd) Synopsis() string { return "remove an asset from the plan" }
func (*deleteAssetCmd) Usage() string {
	return `bpl delete-asset <id>

  Removes the asset with the given id and rewrites the plan file.
`
}

func (*deleteAssetCmd) SetFlags(*flag.FlagSet) {}

func (c *deleteAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one asset id.")
		return subcommands.ExitUsageError
	}
	s, err := DecodeStoreFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	id := f.Arg(0)
	if !s.RemoveAsset(id) {
		fmt.Fprintf(os.Stderr, "Error: no asset with id %q.\n", id)
		return subcommands.ExitFailure
	}
	if err := EncodeStoreFile(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed asset %s\n", id)
	return subcommands.ExitSuccess
}
