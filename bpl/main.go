package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/quantrail/bondplan/cmd"
)

func main() {
	// optional .env file for GEMINI_API_KEY, BONDPLAN_RATES_URL and friends
	godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion wires shell completion. It is a no-op unless the completion
// environment variables are set by the shell hook.
func completion() {
	spec := &complete.Command{
		Sub: map[string]*complete.Command{
			"profile":      {Flags: map[string]complete.Predictor{"name": predict.Something, "email": predict.Something, "currency": predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"}, "region": regions, "risk": predict.Set{"conservative", "moderate", "aggressive"}}},
			"add-asset":    {Flags: map[string]complete.Predictor{"name": predict.Something, "type": assetTypes, "issuer": predict.Set{"government", "corporate", "municipal", "bank", "other"}, "maturity": predict.Something, "face": predict.Something, "price": predict.Something, "rate": predict.Something, "region": regions}},
			"assets":       {},
			"delete-asset": {Args: predict.Something},
			"add-event":    {Flags: map[string]complete.Predictor{"amount": predict.Something, "date": predict.Something, "desc": predict.Something}},
			"events":       {},
			"delete-event": {Args: predict.Something},
			"recommend":    {Flags: map[string]complete.Predictor{"d": predict.Something}},
			"summary":      {Flags: map[string]complete.Predictor{"d": predict.Something}},
			"timeline":     {Flags: map[string]complete.Predictor{"d": predict.Something, "months": predict.Something}},
			"fmt":          {},
			"topic":        {Args: predict.Set{"readme", "dates", "assets", "events", "recommendations", "rates"}},
			"assist":       {},
		},
		Flags: map[string]complete.Predictor{
			"store-file": predict.Files("*.jsonl"),
		},
	}
	spec.Complete("bpl")
}

var regions = predict.Set{"eurozone", "us", "uk", "switzerland", "japan", "emerging", "global"}

var assetTypes = predict.Set{
	"governmentBond", "treasuryBill", "treasuryNote", "inflationLinkedBond", "agencyBond",
	"corporateBond", "convertibleBond", "highYieldBond", "subordinatedBond", "coveredBond",
	"municipalBond", "revenueBond", "generalObligationBond",
	"savingsAccount", "timeDeposit", "certificateOfDeposit",
	"perpetualBond", "structuredNote", "other",
}
