package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/quantrail/bondplan"
)

var asOf = bondplan.NewDate(2026, time.March, 15)

func user() bondplan.User {
	return bondplan.User{ID: "u1", Name: "Test User", Risk: bondplan.Moderate, Currency: "EUR", Region: bondplan.Eurozone}
}

func TestRecommendationsMarkdown(t *testing.T) {
	recs := []bondplan.Recommendation{
		{
			Category:    bondplan.CategoryRollover,
			Title:       "Maturing soon: BTP Italia",
			Description: "BTP Italia (governmentBond) worth €9.800 matures in 45 days.",
			Actions:     []string{"Keep €5.000 liquid", "Reinvest the remaining €4.800"},
		},
		{
			Category:    bondplan.CategoryYield,
			Title:       "Portfolio yield below market",
			Description: "Your weighted average yield sits below the reference.",
			Actions:     []string{"Consider peripheral eurozone sovereign debt"},
		},
	}

	out := RecommendationsMarkdown(asOf, recs)
	if !strings.Contains(out, "# Recommendations on 2026-03-15") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "## Maturing Assets") || !strings.Contains(out, "## Yield") {
		t.Errorf("missing category headings:\n%s", out)
	}
	// empty categories leave no heading behind
	if strings.Contains(out, "## Cash Flow") {
		t.Errorf("empty category rendered a heading:\n%s", out)
	}
	if !strings.Contains(out, "- Keep €5.000 liquid") {
		t.Errorf("missing action bullet:\n%s", out)
	}
	// rollover section comes before yield
	if strings.Index(out, "## Maturing Assets") > strings.Index(out, "## Yield") {
		t.Errorf("sections out of order:\n%s", out)
	}
}

func TestRecommendationsMarkdownEmpty(t *testing.T) {
	out := RecommendationsMarkdown(asOf, nil)
	if !strings.Contains(out, "Nothing needs your attention") {
		t.Errorf("empty list not handled:\n%s", out)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	assets := []bondplan.FixedIncomeAsset{
		{
			ID: "a1", Name: "Bund 2030", Type: bondplan.GovernmentBond,
			Issuer: bondplan.IssuerGovernment, Maturity: bondplan.NewDate(2030, time.June, 1),
			FaceValue: bondplan.M(10000, "EUR"), PurchasePrice: bondplan.M(9800, "EUR"),
			InterestRate: 2, Region: bondplan.Eurozone,
		},
	}
	s := bondplan.NewSummary(asOf, user(), assets, nil)

	out := SummaryMarkdown(s)
	if !strings.Contains(out, "# Portfolio Summary on 2026-03-15") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "| EUR | 1 | €9.800 |") {
		t.Errorf("missing holdings row:\n%s", out)
	}
	if !strings.Contains(out, "## Allocation (moderate profile)") {
		t.Errorf("missing allocation section:\n%s", out)
	}
	if !strings.Contains(out, "- eurozone: 100.00%") {
		t.Errorf("missing region share:\n%s", out)
	}
}

func TestTimelineMarkdown(t *testing.T) {
	assets := []bondplan.FixedIncomeAsset{
		{
			ID: "a1", Name: "Bill", Type: bondplan.TreasuryBill,
			Issuer: bondplan.IssuerGovernment, Maturity: asOf.AddMonth(2),
			FaceValue: bondplan.M(3000, "EUR"), PurchasePrice: bondplan.M(2950, "EUR"),
			Region: bondplan.Eurozone,
		},
	}
	events := []bondplan.LiquidityEvent{
		{ID: "e1", Amount: bondplan.M(1000, "EUR"), Date: asOf.AddMonth(1), Description: "rent"},
	}
	months := bondplan.NewTimeline(asOf, user(), assets, events, 6)

	out := TimelineMarkdown("EUR", months)
	if !strings.Contains(out, "# Cash-Flow Timeline (EUR)") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "| April 2026 |") || !strings.Contains(out, "| May 2026 |") {
		t.Errorf("missing month rows:\n%s", out)
	}
	// quiet months are skipped
	if strings.Contains(out, "| March 2026 |") {
		t.Errorf("a month without activity was rendered:\n%s", out)
	}
}

func TestTimelineMarkdownQuiet(t *testing.T) {
	months := bondplan.NewTimeline(asOf, user(), nil, nil, 3)
	out := TimelineMarkdown("EUR", months)
	if !strings.Contains(out, "No maturities or planned outflows") {
		t.Errorf("quiet horizon not handled:\n%s", out)
	}
}
